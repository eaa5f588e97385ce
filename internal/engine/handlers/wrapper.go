package handlers

import (
	"encoding/json"
	"fmt"

	"crawl-server/pkg/api"
)

// WithPayload оборачивает типизированный хендлер: распаковывает JSON
// payload в T и, если T реализует api.Validator, валидирует его
// до вызова. Хендлеру достается уже проверенная структура.
func WithPayload[T any](fn func(ctx *Context, payload T) (Result, error)) HandlerFunc {
	return func(ctx *Context, raw json.RawMessage) (Result, error) {
		var payload T

		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &payload); err != nil {
				return Result{}, fmt.Errorf("decode payload: %w", err)
			}
		}

		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return Result{}, fmt.Errorf("invalid payload: %w", err)
			}
		}

		return fn(ctx, payload)
	}
}

// WithEmptyPayload - для действий без параметров (ATTACK, FLEE, LOOK).
// Payload, если пришел, игнорируется.
func WithEmptyPayload(fn func(ctx *Context) (Result, error)) HandlerFunc {
	return func(ctx *Context, _ json.RawMessage) (Result, error) {
		return fn(ctx)
	}
}
