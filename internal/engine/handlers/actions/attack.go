package actions

import (
	"crawl-server/internal/domain"
	"crawl-server/internal/engine/handlers"
)

// Attack - раунд боя с целью: преграждающий монстр, если активен блок,
// иначе монстр в текущей комнате.
func Attack(ctx *handlers.Context) (handlers.Result, error) {
	var res handlers.Result

	room, target := combatTarget(ctx.Game)
	if target == nil || target.IsDead() {
		res.Add("Здесь некого атаковать.", handlers.MsgError)
		return res, nil
	}

	round := ctx.Combat.Round(ctx.Game.Player, target)
	res.TurnSpent = true
	res.Add(round.PlayerAttack.Message, handlers.MsgCombat)

	if round.MonsterDied {
		if room != nil {
			room.ClearMonster()
			if drop := round.PlayerAttack.Drop; drop != nil {
				room.AddTreasure(*drop)
			}
		}
		// Счет растет на опыт убитого. Ошибка невозможна: опыт положительный.
		_ = ctx.Game.AddScore(round.PlayerAttack.ExpGained)
		ctx.Game.ClearBlocked()
		ctx.Game.InCombat = false
		return res, nil
	}

	ctx.Game.InCombat = true
	if round.MonsterAttack != nil {
		res.Add(round.MonsterAttack.Message, handlers.MsgCombat)
	}
	return res, nil
}

// combatTarget выбирает цель боя и ее комнату.
func combatTarget(game *domain.Game) (*domain.Room, *domain.Monster) {
	if game.IsBlocked() {
		return game.BlockedRoom(), game.BlockedBy
	}
	room := game.CurrentRoom()
	if room == nil {
		return nil, nil
	}
	return room, room.Monster
}
