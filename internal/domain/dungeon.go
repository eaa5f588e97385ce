package domain

// Dungeon — агрегат сетки комнат.
//
// Комнаты хранятся в мапе по ключу позиции, порядок добавления сохраняется
// отдельно: обход комнат должен быть детерминированным, иначе один и тот же
// сид даст разные подземелья.
type Dungeon struct {
	Width      int
	Height     int
	Difficulty int
	Entrance   Position
	Exit       Position

	rooms map[string]*Room
	order []string
}

func NewDungeon(width, height, difficulty int) *Dungeon {
	return &Dungeon{
		Width:      width,
		Height:     height,
		Difficulty: difficulty,
		rooms:      make(map[string]*Room),
	}
}

// AddRoom добавляет комнату. Повторное добавление на ту же позицию
// замещает комнату, сохраняя место в порядке обхода.
func (d *Dungeon) AddRoom(r *Room) {
	key := r.Pos.Key()
	if _, exists := d.rooms[key]; !exists {
		d.order = append(d.order, key)
	}
	d.rooms[key] = r
}

// RoomAt возвращает комнату на позиции или nil.
func (d *Dungeon) RoomAt(p Position) *Room {
	return d.rooms[p.Key()]
}

// Rooms возвращает комнаты в порядке добавления.
func (d *Dungeon) Rooms() []*Room {
	out := make([]*Room, 0, len(d.rooms))
	for _, key := range d.order {
		out = append(out, d.rooms[key])
	}
	return out
}

func (d *Dungeon) RoomCount() int {
	return len(d.rooms)
}

// Neighbor возвращает соседнюю комнату в направлении dir или nil.
func (d *Dungeon) Neighbor(p Position, dir Direction) *Room {
	next, err := p.Move(dir)
	if err != nil {
		return nil
	}
	return d.RoomAt(next)
}

// Connect создает проход между комнатой на from и ее соседом в направлении
// dir. Обе стороны выставляются вместе, по одной — никогда.
// Возвращает false, если одной из комнат не существует.
func (d *Dungeon) Connect(from Position, dir Direction) bool {
	room := d.RoomAt(from)
	if room == nil {
		return false
	}
	neighbor := d.Neighbor(from, dir)
	if neighbor == nil {
		return false
	}
	room.connections[dir] = true
	neighbor.connections[dir.Opposite()] = true
	return true
}

// ReplaceRoom ставит новую комнату на место старой, перенося ее связи.
// Используется генератором при установке комнаты-выхода.
func (d *Dungeon) ReplaceRoom(fresh *Room) {
	old := d.RoomAt(fresh.Pos)
	if old != nil {
		fresh.connections = old.connections
	}
	d.AddRoom(fresh)
}

// Reachable — обход в ширину по связям от позиции start.
// Возвращает множество ключей достижимых комнат.
func (d *Dungeon) Reachable(start Position) map[string]bool {
	visited := make(map[string]bool)
	if d.RoomAt(start) == nil {
		return visited
	}

	queue := []Position{start}
	visited[start.Key()] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		room := d.RoomAt(cur)
		for _, dir := range AllDirections {
			if !room.Connected(dir) {
				continue
			}
			next := d.Neighbor(cur, dir)
			if next == nil || visited[next.Pos.Key()] {
				continue
			}
			visited[next.Pos.Key()] = true
			queue = append(queue, next.Pos)
		}
	}
	return visited
}

// HasPath сообщает, достижима ли to из from по связям.
func (d *Dungeon) HasPath(from, to Position) bool {
	return d.Reachable(from)[to.Key()]
}
