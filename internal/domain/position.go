package domain

import (
	"fmt"
	"strings"
)

// Direction — направление движения по сетке комнат.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// AllDirections — фиксированный порядок обхода направлений.
// От него зависит детерминизм генератора, менять нельзя.
var AllDirections = [4]Direction{North, South, East, West}

var directionNames = map[Direction]string{
	North: "north",
	South: "south",
	East:  "east",
	West:  "west",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "unknown"
}

// Opposite возвращает противоположное направление.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// ParseDirection принимает полные имена и односимвольные алиасы ("north", "n").
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, nil
	case "south", "s":
		return South, nil
	case "east", "e":
		return East, nil
	case "west", "w":
		return West, nil
	default:
		return North, fmt.Errorf("unknown direction: %q", s)
	}
}

// Position — неизменяемая пара неотрицательных координат на сетке.
// Начало координат в левом верхнем углу, Y растет на юг.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Move возвращает новую позицию, сдвинутую в направлении d.
// Ошибка, если координата ушла бы в минус.
func (p Position) Move(d Direction) (Position, error) {
	next := p
	switch d {
	case North:
		next.Y--
	case South:
		next.Y++
	case East:
		next.X++
	case West:
		next.X--
	}
	if next.X < 0 || next.Y < 0 {
		return Position{}, fmt.Errorf("position (%d,%d) is out of the grid", next.X, next.Y)
	}
	return next, nil
}

// Key — ключ позиции для мапы комнат.
func (p Position) Key() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
