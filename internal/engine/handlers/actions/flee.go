package actions

import (
	"crawl-server/internal/engine/handlers"
)

// Flee - попытка выйти из боя. Успех снимает блок и боевой режим,
// провал оборачивается безответным ударом в спину.
func Flee(ctx *handlers.Context) (handlers.Result, error) {
	var res handlers.Result

	_, target := combatTarget(ctx.Game)
	if target == nil || target.IsDead() {
		res.Add("Не от кого бежать.", handlers.MsgError)
		return res, nil
	}

	fled := ctx.Combat.Flee(ctx.Game.Player, target)
	res.TurnSpent = true
	res.Add(fled.Message, handlers.MsgCombat)

	if fled.Success {
		ctx.Game.ClearBlocked()
		ctx.Game.InCombat = false
		return res, nil
	}

	ctx.Game.InCombat = true
	if fled.Punishment != nil {
		res.Add(fled.Punishment.Message, handlers.MsgCombat)
	}
	return res, nil
}
