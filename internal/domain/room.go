package domain

// Room — комната подземелья.
//
// Связи хранятся по направлениям и выставляются только через Dungeon.Connect,
// поэтому асимметричная связь (у меня дверь на север, у соседа на юг нет)
// невозможна по построению.
type Room struct {
	ID          string
	Pos         Position
	Description string
	Monster     *Monster
	Treasures   []Item
	IsExit      bool
	Visited     bool

	connections [4]bool
}

func NewRoom(id string, pos Position, description string) *Room {
	return &Room{
		ID:          id,
		Pos:         pos,
		Description: description,
	}
}

// Connected сообщает, есть ли проход в направлении d.
func (r *Room) Connected(d Direction) bool {
	return r.connections[d]
}

// Directions возвращает доступные выходы в фиксированном порядке обхода.
func (r *Room) Directions() []Direction {
	var dirs []Direction
	for _, d := range AllDirections {
		if r.connections[d] {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// ConnectionCount — число выходов из комнаты.
func (r *Room) ConnectionCount() int {
	n := 0
	for _, c := range r.connections {
		if c {
			n++
		}
	}
	return n
}

// HasLiveMonster — есть ли в комнате живой монстр.
func (r *Room) HasLiveMonster() bool {
	return r.Monster != nil && !r.Monster.IsDead()
}

// AddTreasure кладет сокровище на пол комнаты.
func (r *Room) AddTreasure(it Item) {
	r.Treasures = append(r.Treasures, it)
}

// TakeTreasures забирает все сокровища из комнаты.
func (r *Room) TakeTreasures() []Item {
	taken := r.Treasures
	r.Treasures = nil
	return taken
}

// ClearMonster убирает монстра из комнаты (после победы).
func (r *Room) ClearMonster() {
	r.Monster = nil
}
