package systems

import (
	"fmt"

	"crawl-server/internal/domain"
	"crawl-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// MovementResult - результат одного шага между комнатами.
// Неизменяемая запись: создается на каждое действие заново.
type MovementResult struct {
	Success bool
	Message string

	// Блок: в целевой комнате живой монстр. Герой остается на месте,
	// но это не обычный отказ — вызывающий слой запоминает монстра,
	// чтобы следующая атака разрешила именно этот блок.
	Blocked   bool
	BlockedBy *domain.Monster

	// Заполняются при успешном шаге.
	Description string
	HasTreasure bool
	IsExit      bool
	Exits       []domain.Direction
}

func failure(msg string) MovementResult {
	return MovementResult{Message: msg}
}

// Move выполняет один шаг героя в направлении dir.
// Отказы движения — ожидаемые игровые исходы, не ошибки.
func Move(player *domain.Player, dir domain.Direction, dungeon *domain.Dungeon) MovementResult {
	current := dungeon.RoomAt(player.Pos)
	if current == nil {
		// Инвариант генератора нарушен, но играбельно не падаем.
		logger.Log.WithField("pos", player.Pos.String()).Error("Player is outside any room")
		return failure("Вы стоите в пустоте. Здесь некуда идти.")
	}

	// Пока в комнате живой монстр, герой не может ее покинуть.
	if current.HasLiveMonster() {
		return failure(fmt.Sprintf("%s не выпускает вас из комнаты!", current.Monster.Name))
	}

	if !current.Connected(dir) {
		return failure("Путь прегражден глухой стеной.")
	}

	dest := dungeon.Neighbor(player.Pos, dir)
	if dest == nil {
		return failure("За дверью лишь обвал и темнота.")
	}

	if dest.HasLiveMonster() {
		logger.Log.WithFields(logrus.Fields{
			"component": "movement_system",
			"direction": dir.String(),
			"monster":   dest.Monster.Name,
		}).Info("Move blocked by monster")

		return MovementResult{
			Blocked:   true,
			BlockedBy: dest.Monster,
			Message:   fmt.Sprintf("Путь на %s преграждает %s!", dir, dest.Monster.Name),
		}
	}

	player.Pos = dest.Pos
	dest.Visited = true

	return MovementResult{
		Success:     true,
		Message:     dest.Description,
		Description: dest.Description,
		HasTreasure: len(dest.Treasures) > 0,
		IsExit:      dest.IsExit,
		Exits:       dest.Directions(),
	}
}
