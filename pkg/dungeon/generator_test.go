package dungeon

import (
	"errors"
	"math/rand"
	"testing"

	"crawl-server/internal/domain"
)

func generate(t *testing.T, seed int64, cfg Config) *domain.Dungeon {
	t.Helper()
	d, err := NewGenerator(rand.New(rand.NewSource(seed))).Generate(cfg)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return d
}

func TestGenerateConnectivity(t *testing.T) {
	// Связность — жесткий инвариант, гоняем на пачке зерен
	for seed := int64(1); seed <= 25; seed++ {
		d := generate(t, seed, DefaultConfig())

		reached := d.Reachable(d.Entrance)
		if len(reached) != d.RoomCount() {
			t.Errorf("Seed %d: %d of %d rooms reachable from entrance", seed, len(reached), d.RoomCount())
		}
		if !d.HasPath(d.Entrance, d.Exit) {
			t.Errorf("Seed %d: no path from entrance to exit", seed)
		}
	}
}

func TestGenerateEntranceAndExit(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		d := generate(t, seed, DefaultConfig())

		if d.Entrance == d.Exit {
			t.Fatalf("Seed %d: entrance and exit share a room", seed)
		}

		entrance := d.RoomAt(d.Entrance)
		if entrance == nil {
			t.Fatalf("Seed %d: no room at entrance", seed)
		}
		if entrance.IsExit {
			t.Errorf("Seed %d: entrance room carries the exit flag", seed)
		}

		exit := d.RoomAt(d.Exit)
		if exit == nil {
			t.Fatalf("Seed %d: no room at exit", seed)
		}
		if !exit.IsExit {
			t.Errorf("Seed %d: exit room missing the exit flag", seed)
		}
		// Комната выхода всегда чистая
		if exit.Monster != nil || len(exit.Treasures) != 0 {
			t.Errorf("Seed %d: exit room is not empty", seed)
		}
		if entrance.Monster != nil || len(entrance.Treasures) != 0 {
			t.Errorf("Seed %d: entrance room is not empty", seed)
		}
	}
}

func TestGenerateCornersAlwaysPresent(t *testing.T) {
	cfg := DefaultConfig()
	for seed := int64(1); seed <= 10; seed++ {
		d := generate(t, seed, cfg)

		corners := []domain.Position{
			{X: 0, Y: 0},
			{X: cfg.Width - 1, Y: 0},
			{X: 0, Y: cfg.Height - 1},
			{X: cfg.Width - 1, Y: cfg.Height - 1},
		}
		for _, c := range corners {
			if d.RoomAt(c) == nil {
				t.Errorf("Seed %d: corner %v has no room", seed, c)
			}
		}
	}
}

func TestGenerateDeterminism(t *testing.T) {
	cfg := DefaultConfig()
	first := generate(t, 42, cfg)
	second := generate(t, 42, cfg)

	if first.RoomCount() != second.RoomCount() {
		t.Fatalf("Same seed produced %d and %d rooms", first.RoomCount(), second.RoomCount())
	}
	if first.Entrance != second.Entrance || first.Exit != second.Exit {
		t.Error("Same seed produced different entrance/exit")
	}

	firstRooms := first.Rooms()
	secondRooms := second.Rooms()
	for i := range firstRooms {
		a, b := firstRooms[i], secondRooms[i]
		if a.Pos != b.Pos || a.ID != b.ID || a.Description != b.Description {
			t.Fatalf("Room %d differs between runs: %v vs %v", i, a.Pos, b.Pos)
		}
		if a.ConnectionCount() != b.ConnectionCount() {
			t.Fatalf("Room %d connections differ between runs", i)
		}
		if (a.Monster == nil) != (b.Monster == nil) {
			t.Fatalf("Room %d monster presence differs between runs", i)
		}
		if a.Monster != nil && a.Monster.Name != b.Monster.Name {
			t.Fatalf("Room %d monster differs: %s vs %s", i, a.Monster.Name, b.Monster.Name)
		}
	}
}

func TestGenerateZeroDensity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MonsterDensity = 0
	cfg.TreasureDensity = 0

	d := generate(t, 7, cfg)

	for _, room := range d.Rooms() {
		if room.Monster != nil {
			t.Errorf("Room %v has a monster at zero density", room.Pos)
		}
		if len(room.Treasures) != 0 {
			t.Errorf("Room %v has treasure at zero density", room.Pos)
		}
	}
	if d.RoomCount() < 4 {
		t.Errorf("Expected at least the 4 corner rooms, got %d", d.RoomCount())
	}
}

func TestGenerateInvalidConfig(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)))

	cases := []struct {
		name string
		cfg  Config
		want error
	}{
		{"tiny grid", Config{Width: 2, Height: 8, Difficulty: 1}, ErrInvalidSize},
		{"zero difficulty", Config{Width: 8, Height: 8, Difficulty: 0}, ErrInvalidDifficulty},
		{"monster density above 1", Config{Width: 8, Height: 8, Difficulty: 1, MonsterDensity: 1.5}, ErrInvalidDensity},
		{"negative treasure density", Config{Width: 8, Height: 8, Difficulty: 1, TreasureDensity: -0.1}, ErrInvalidDensity},
	}

	for _, c := range cases {
		if _, err := g.Generate(c.cfg); !errors.Is(err, c.want) {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, err)
		}
	}
}
