package domain

import "testing"

func TestParseDirection(t *testing.T) {
	cases := map[string]Direction{
		"north": North,
		"NORTH": North,
		"n":     North,
		"south": South,
		"s":     South,
		"east":  East,
		"e":     East,
		"west":  West,
		"w":     West,
		" n ":   North,
	}

	for input, want := range cases {
		got, err := ParseDirection(input)
		if err != nil {
			t.Errorf("ParseDirection(%q) returned error: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ParseDirection(%q) = %v, want %v", input, got, want)
		}
	}

	if _, err := ParseDirection("up"); err == nil {
		t.Error("Expected error for unknown direction")
	}
	if _, err := ParseDirection(""); err == nil {
		t.Error("Expected error for empty direction")
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range AllDirections {
		if d.Opposite().Opposite() != d {
			t.Errorf("Opposite of opposite of %v is not itself", d)
		}
	}
}

func TestPositionMove(t *testing.T) {
	p := Position{X: 2, Y: 2}

	cases := []struct {
		dir  Direction
		want Position
	}{
		{North, Position{X: 2, Y: 1}},
		{South, Position{X: 2, Y: 3}},
		{East, Position{X: 3, Y: 2}},
		{West, Position{X: 1, Y: 2}},
	}

	for _, c := range cases {
		got, err := p.Move(c.dir)
		if err != nil {
			t.Fatalf("Move(%v) returned error: %v", c.dir, err)
		}
		if got != c.want {
			t.Errorf("Move(%v) = %v, want %v", c.dir, got, c.want)
		}
	}
}

func TestPositionMoveOutOfGrid(t *testing.T) {
	// Шаг за левую или верхнюю границу — ошибка, позиция не меняется
	origin := Position{X: 0, Y: 0}

	if _, err := origin.Move(North); err == nil {
		t.Error("Expected error moving north from (0,0)")
	}
	if _, err := origin.Move(West); err == nil {
		t.Error("Expected error moving west from (0,0)")
	}
	if origin != (Position{X: 0, Y: 0}) {
		t.Error("Failed move must not mutate position")
	}
}
