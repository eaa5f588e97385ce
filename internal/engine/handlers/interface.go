package handlers

import (
	"encoding/json"
	"math/rand"

	"crawl-server/internal/domain"
	"crawl-server/internal/systems"
)

// MsgType классифицирует сообщения для игрового лога.
const (
	MsgInfo   = "INFO"
	MsgCombat = "COMBAT"
	MsgError  = "ERROR"
)

// Context - все, что нужно хендлеру действия: партия, боевой
// резолвер и генератор случайностей сессии.
type Context struct {
	Game   *domain.Game
	Combat *systems.Resolver
	Rng    *rand.Rand
}

// Message - одна строка результата для игрового лога.
type Message struct {
	Text string
	Type string
}

// Result - результат обработки действия.
type Result struct {
	Messages []Message

	// TurnSpent true, если действие потратило ход.
	TurnSpent bool
}

// Add добавляет сообщение в результат.
func (r *Result) Add(text, msgType string) {
	r.Messages = append(r.Messages, Message{Text: text, Type: msgType})
}

// HandlerFunc - обработчик одного действия с уже распакованным payload.
type HandlerFunc func(ctx *Context, payload json.RawMessage) (Result, error)
