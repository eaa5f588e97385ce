package dungeon

import (
	"math/rand"

	"crawl-server/internal/domain"
	"crawl-server/pkg/logger"
	"crawl-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Вероятности размещения. Контракт генерации, менять осторожно.
const (
	borderRoomChance   = 0.90
	interiorRoomChance = 0.85
	connectionChance   = 0.75
	minRooms           = 4
)

// Generator строит подземелье. Генератор случайностей инжектируется:
// одно зерно — одно и то же подземелье.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate создает подземелье по конфигу.
//
// Порядок проходов фиксирован: размещение комнат, вероятностные связи,
// склейка компонент, вход/выход, страховка пути, заселение.
func (g *Generator) Generate(cfg Config) (*domain.Dungeon, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := domain.NewDungeon(cfg.Width, cfg.Height, cfg.Difficulty)

	g.placeRooms(d, cfg)
	g.connectRooms(d)
	g.mergeComponents(d)

	if err := g.placeEntranceExit(d); err != nil {
		return nil, err
	}
	g.ensureExitPath(d)
	g.populate(d, cfg)

	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon_generator",
		"rooms":     d.RoomCount(),
		"entrance":  d.Entrance.String(),
		"exit":      d.Exit.String(),
	}).Info("Dungeon generated")

	return d, nil
}

// placeRooms раскидывает комнаты по сетке.
// Углы — всегда, граница — 90%, внутренние клетки — 85%.
func (g *Generator) placeRooms(d *domain.Dungeon, cfg Config) {
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			pos := domain.Position{X: x, Y: y}

			chance := interiorRoomChance
			switch {
			case g.isCorner(pos, cfg):
				chance = 1.0
			case g.isBorder(pos, cfg):
				chance = borderRoomChance
			}

			if g.rng.Float64() < chance {
				g.addRoom(d, pos)
			}
		}
	}

	// Страховка: совсем пустое подземелье добиваем углами.
	if d.RoomCount() < minRooms {
		for _, pos := range g.corners(cfg) {
			if d.RoomAt(pos) == nil {
				g.addRoom(d, pos)
			}
		}
	}
}

func (g *Generator) addRoom(d *domain.Dungeon, pos domain.Position) {
	d.AddRoom(domain.NewRoom(
		utils.DeterministicID(g.rng, "r_"),
		pos,
		RollDescription(g.rng),
	))
}

func (g *Generator) corners(cfg Config) [4]domain.Position {
	return [4]domain.Position{
		{X: 0, Y: 0},
		{X: cfg.Width - 1, Y: 0},
		{X: 0, Y: cfg.Height - 1},
		{X: cfg.Width - 1, Y: cfg.Height - 1},
	}
}

func (g *Generator) isCorner(pos domain.Position, cfg Config) bool {
	for _, c := range g.corners(cfg) {
		if pos == c {
			return true
		}
	}
	return false
}

func (g *Generator) isBorder(pos domain.Position, cfg Config) bool {
	return pos.X == 0 || pos.Y == 0 || pos.X == cfg.Width-1 || pos.Y == cfg.Height-1
}

// connectRooms - вероятностный проход по связям: каждая пара
// комната-сосед соединяется с шансом 75%. Связь всегда двусторонняя,
// за симметрию отвечает Dungeon.Connect.
func (g *Generator) connectRooms(d *domain.Dungeon) {
	for _, room := range d.Rooms() {
		for _, dir := range domain.AllDirections {
			if room.Connected(dir) {
				continue // Сосед уже соединил нас со своей стороны
			}
			if d.Neighbor(room.Pos, dir) == nil {
				continue
			}
			if g.rng.Float64() < connectionChance {
				d.Connect(room.Pos, dir)
			}
		}
	}
}

// mergeComponents гарантирует связность: обход в ширину от первой комнаты,
// каждая недостижимая комната принудительно соединяется с первым доступным
// соседом. Повторяется, пока граф не станет связным.
func (g *Generator) mergeComponents(d *domain.Dungeon) {
	rooms := d.Rooms()
	if len(rooms) == 0 {
		return
	}
	start := rooms[0].Pos

	for pass := 0; pass < d.RoomCount()*4+8; pass++ {
		reached := d.Reachable(start)
		if len(reached) == d.RoomCount() {
			return
		}

		merged := false
		for _, room := range d.Rooms() {
			if reached[room.Pos.Key()] {
				continue
			}
			for _, dir := range domain.AllDirections {
				if d.Neighbor(room.Pos, dir) != nil {
					d.Connect(room.Pos, dir)
					merged = true
					break
				}
			}
		}

		// Комната вообще без соседей: на разреженной сетке такое возможно,
		// прокладываем к ней комнаты-перемычки.
		if !merged {
			g.bridgeIsolated(d, start)
		}
	}

	logger.Log.WithField("component", "dungeon_generator").
		Warn("mergeComponents exhausted passes, dungeon may be disconnected")
}

// bridgeIsolated прокладывает цепочку комнат от изолированной комнаты
// по прямой к стартовой, соединяя каждую пару по пути.
func (g *Generator) bridgeIsolated(d *domain.Dungeon, start domain.Position) {
	reached := d.Reachable(start)

	for _, room := range d.Rooms() {
		if reached[room.Pos.Key()] {
			continue
		}

		pos := room.Pos
		for pos != start {
			dir := stepToward(pos, start)
			next, err := pos.Move(dir)
			if err != nil {
				return
			}
			if d.RoomAt(next) == nil {
				g.addRoom(d, next)
			}
			d.Connect(pos, dir)
			if reached[next.Key()] {
				return
			}
			pos = next
		}
		return
	}
}

// stepToward - направление одного шага от from к to (сначала по X).
func stepToward(from, to domain.Position) domain.Direction {
	switch {
	case from.X < to.X:
		return domain.East
	case from.X > to.X:
		return domain.West
	case from.Y < to.Y:
		return domain.South
	default:
		return domain.North
	}
}

// placeEntranceExit выбирает вход в верхне-левом квадранте и выход
// в нижне-правом. Комната выхода замещается свежей: флаг выхода,
// без монстра и сокровищ, связи переносятся.
func (g *Generator) placeEntranceExit(d *domain.Dungeon) error {
	rooms := d.Rooms()
	if len(rooms) < 2 {
		return ErrTooFewRooms
	}

	var topLeft []*domain.Room
	for _, room := range rooms {
		if room.Pos.X < d.Width/2 && room.Pos.Y < d.Height/2 {
			topLeft = append(topLeft, room)
		}
	}
	if len(topLeft) == 0 {
		topLeft = rooms // Квадрант пуст, берем любую комнату
	}
	entrance := topLeft[g.rng.Intn(len(topLeft))]
	entrance.Description = EntranceDescription
	d.Entrance = entrance.Pos

	var bottomRight []*domain.Room
	for _, room := range rooms {
		if room.Pos == entrance.Pos {
			continue
		}
		if room.Pos.X >= d.Width/2 && room.Pos.Y >= d.Height/2 {
			bottomRight = append(bottomRight, room)
		}
	}
	if len(bottomRight) == 0 {
		for _, room := range rooms {
			if room.Pos != entrance.Pos {
				bottomRight = append(bottomRight, room)
			}
		}
	}
	exit := bottomRight[g.rng.Intn(len(bottomRight))]

	fresh := domain.NewRoom(utils.DeterministicID(g.rng, "r_"), exit.Pos, ExitDescription)
	fresh.IsExit = true
	d.ReplaceRoom(fresh)
	d.Exit = fresh.Pos

	return nil
}

// ensureExitPath - страховка пути вход-выход из оригинальной версии
// алгоритма: принудительная связь для комнат вовсе без выходов.
// Сама по себе путь она не гарантирует, но к этому моменту
// mergeComponents уже склеил граф, так что ветка почти мертвая.
func (g *Generator) ensureExitPath(d *domain.Dungeon) {
	if d.HasPath(d.Entrance, d.Exit) {
		return
	}

	logger.Log.WithField("component", "dungeon_generator").
		Warn("No entrance-exit path after placement, forcing connections")

	for _, room := range d.Rooms() {
		if room.ConnectionCount() > 0 {
			continue
		}
		for _, dir := range domain.AllDirections {
			if d.Neighbor(room.Pos, dir) != nil {
				d.Connect(room.Pos, dir)
				break
			}
		}
	}
}

// populate заселяет комнаты монстрами и сокровищами.
// Вход и выход всегда остаются пустыми.
func (g *Generator) populate(d *domain.Dungeon, cfg Config) {
	monsters, treasures := 0, 0

	for _, room := range d.Rooms() {
		if room.Pos == d.Entrance || room.Pos == d.Exit {
			continue
		}

		// Броски независимые: в комнате может быть и монстр, и сокровище.
		if g.rng.Float64() < cfg.MonsterDensity {
			room.Monster = SpawnMonster(g.rng, cfg.Difficulty)
			monsters++
		}
		if g.rng.Float64() < cfg.TreasureDensity {
			room.AddTreasure(RollTreasure(g.rng, domain.RarityCommon))
			treasures++
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "dungeon_generator",
		"monsters":  monsters,
		"treasures": treasures,
	}).Debug("Dungeon populated")
}
