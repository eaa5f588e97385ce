package actions

import (
	"crawl-server/internal/domain"
	"crawl-server/internal/engine/handlers"
	"crawl-server/internal/systems"
	"crawl-server/pkg/api"
)

// Move - шаг героя в соседнюю комнату.
//
// Три исхода: шаг сделан (ход потрачен), путь преградил монстр
// (блок запомнен, ход потрачен), отказ у стены (ход не потрачен).
func Move(ctx *handlers.Context, payload api.DirectionPayload) (handlers.Result, error) {
	var res handlers.Result

	dir, err := domain.ParseDirection(payload.Direction)
	if err != nil {
		res.Add("Такого направления нет.", handlers.MsgError)
		return res, nil
	}

	if ctx.Game.InCombat {
		res.Add("В бою не ходят. Атакуйте или бегите.", handlers.MsgError)
		return res, nil
	}

	moved := systems.Move(ctx.Game.Player, dir, ctx.Game.Dungeon)

	if moved.Blocked {
		ctx.Game.SetBlocked(moved.BlockedBy, dir)
		res.Add(moved.Message, handlers.MsgCombat)
		res.TurnSpent = true
		return res, nil
	}

	if !moved.Success {
		res.Add(moved.Message, handlers.MsgError)
		return res, nil
	}

	// Герой сменил комнату: старый блок больше не актуален.
	ctx.Game.ClearBlocked()
	res.TurnSpent = true
	res.Add(moved.Description, handlers.MsgInfo)

	if moved.HasTreasure {
		res.Add("В комнате что-то блестит.", handlers.MsgInfo)
	}
	if moved.IsExit {
		res.Add("Это выход из подземелья!", handlers.MsgInfo)
	}
	if room := ctx.Game.CurrentRoom(); room != nil {
		res.Add(exitsLine(room), handlers.MsgInfo)
	}
	return res, nil
}
