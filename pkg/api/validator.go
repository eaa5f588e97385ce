package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO.
// Обертка хендлеров вызывает Validate автоматически.
type Validator interface {
	Validate() error
}

func (p DirectionPayload) Validate() error {
	if p.Direction == "" {
		return errors.New("direction is required")
	}
	return nil
}

func (p InitPayload) Validate() error {
	if len(p.Name) > 32 {
		return errors.New("player name too long")
	}
	return nil
}
