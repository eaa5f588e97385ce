package actions

import (
	"fmt"
	"strings"

	"crawl-server/internal/domain"
	"crawl-server/internal/engine/handlers"
)

// Look описывает текущую комнату: монстр, сокровища, выходы.
// Осмотр бесплатный, ход не тратит.
func Look(ctx *handlers.Context) (handlers.Result, error) {
	var res handlers.Result

	room := ctx.Game.CurrentRoom()
	if room == nil {
		res.Add("Вокруг непроглядная тьма.", handlers.MsgError)
		return res, nil
	}

	res.Add(room.Description, handlers.MsgInfo)

	if room.Monster != nil {
		if room.Monster.IsDead() {
			res.Add(fmt.Sprintf("На полу лежит труп: %s.", room.Monster.Name), handlers.MsgInfo)
		} else {
			res.Add(fmt.Sprintf("Перед вами %s. %s", room.Monster.Name, room.Monster.Description), handlers.MsgCombat)
		}
	}

	if blocked := ctx.Game.BlockedBy; blocked != nil {
		res.Add(fmt.Sprintf("Путь на %s все еще преграждает %s.", ctx.Game.BlockedDir, blocked.Name), handlers.MsgCombat)
	}

	for _, it := range room.Treasures {
		res.Add(fmt.Sprintf("Здесь лежит: %s.", it.Name), handlers.MsgInfo)
	}

	if room.IsExit {
		res.Add("Это выход из подземелья!", handlers.MsgInfo)
	}

	res.Add(exitsLine(room), handlers.MsgInfo)
	return res, nil
}

// exitsLine - строка с перечислением выходов комнаты.
func exitsLine(room *domain.Room) string {
	dirs := room.Directions()
	if len(dirs) == 0 {
		return "Выходов не видно."
	}
	names := make([]string, 0, len(dirs))
	for _, d := range dirs {
		names = append(names, d.String())
	}
	return fmt.Sprintf("Выходы: %s.", strings.Join(names, ", "))
}
