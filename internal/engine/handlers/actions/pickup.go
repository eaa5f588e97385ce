package actions

import (
	"fmt"

	"crawl-server/internal/domain"
	"crawl-server/internal/engine/handlers"
)

// Pickup подбирает все сокровища из текущей комнаты.
//
// Золото и артефакты сразу конвертируются в счет, оружие усиливает
// атаку героя. Все предметы при этом ложатся в инвентарь.
func Pickup(ctx *handlers.Context) (handlers.Result, error) {
	var res handlers.Result

	room := ctx.Game.CurrentRoom()
	if room == nil || len(room.Treasures) == 0 {
		res.Add("Здесь нечего подбирать.", handlers.MsgError)
		return res, nil
	}
	if room.HasLiveMonster() {
		res.Add(fmt.Sprintf("%s не подпускает вас к сокровищам!", room.Monster.Name), handlers.MsgCombat)
		return res, nil
	}

	res.TurnSpent = true
	for _, it := range room.TakeTreasures() {
		switch it.Kind {
		case domain.ItemGold, domain.ItemArtifact:
			_ = ctx.Game.AddScore(it.Value)
			res.Add(fmt.Sprintf("Вы подбираете: %s. +%d очков.", it.Name, it.Value), handlers.MsgInfo)
		case domain.ItemWeapon:
			ctx.Game.Player.Attack += it.Effect
			res.Add(fmt.Sprintf("Вы берете %s. Атака +%d.", it.Name, it.Effect), handlers.MsgInfo)
		default:
			res.Add(fmt.Sprintf("Вы подбираете: %s.", it.Name), handlers.MsgInfo)
		}
		ctx.Game.Player.AddItem(it)
	}
	return res, nil
}
