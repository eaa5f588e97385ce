package actions

import (
	"fmt"

	"crawl-server/internal/engine/handlers"
	"crawl-server/pkg/api"
)

// Init - первая команда сессии: именует героя и описывает вход.
// Ход не тратит.
func Init(ctx *handlers.Context, payload api.InitPayload) (handlers.Result, error) {
	if payload.Name != "" {
		ctx.Game.Player.Name = payload.Name
	}

	var res handlers.Result
	res.Add(fmt.Sprintf("%s спускается в подземелье.", ctx.Game.Player.Name), handlers.MsgInfo)

	if room := ctx.Game.CurrentRoom(); room != nil {
		res.Add(room.Description, handlers.MsgInfo)
		res.Add(exitsLine(room), handlers.MsgInfo)
	}
	return res, nil
}
