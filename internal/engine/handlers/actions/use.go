package actions

import (
	"fmt"

	"crawl-server/internal/domain"
	"crawl-server/internal/engine/handlers"
	"crawl-server/pkg/api"
)

// Use выпивает зелье из инвентаря: по ID, если он указан,
// иначе первое попавшееся. Выпитое зелье исчезает.
func Use(ctx *handlers.Context, payload api.ItemPayload) (handlers.Result, error) {
	var res handlers.Result

	potion, ok := findPotion(ctx.Game.Player, payload.ItemID)
	if !ok {
		res.Add("В инвентаре нет подходящего зелья.", handlers.MsgError)
		return res, nil
	}

	ctx.Game.Player.HealBy(potion.Effect)
	ctx.Game.Player.RemoveItem(potion.ID)

	res.TurnSpent = true
	res.Add(fmt.Sprintf("Вы выпиваете %s. Здоровье: %d/%d.",
		potion.Name, ctx.Game.Player.Health.Current, ctx.Game.Player.Health.Max), handlers.MsgInfo)
	return res, nil
}

func findPotion(player *domain.Player, id string) (domain.Item, bool) {
	for _, it := range player.Inventory {
		if it.Kind != domain.ItemPotion {
			continue
		}
		if id == "" || it.ID == id {
			return it, true
		}
	}
	return domain.Item{}, false
}
