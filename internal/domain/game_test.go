package domain

import (
	"errors"
	"testing"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	d := buildGrid(t, 3, 3)
	d.Entrance = Position{X: 0, Y: 0}
	d.Exit = Position{X: 2, Y: 2}
	d.RoomAt(d.Exit).IsExit = true
	return NewGame(NewPlayer("Тест"), d)
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t)

	if g.Player.Pos != g.Dungeon.Entrance {
		t.Errorf("Player must start at entrance, got %v", g.Player.Pos)
	}
	if !g.CurrentRoom().Visited {
		t.Error("Entrance must be marked visited")
	}
	if g.Turn != 1 {
		t.Errorf("Turn counter must start at 1, got %d", g.Turn)
	}
}

func TestAddScoreRejectsNegative(t *testing.T) {
	g := newTestGame(t)

	if err := g.AddScore(25); err != nil {
		t.Fatalf("AddScore(25) returned error: %v", err)
	}
	if err := g.AddScore(-1); !errors.Is(err, ErrNegativeScore) {
		t.Errorf("Expected ErrNegativeScore, got %v", err)
	}
	if g.Score != 25 {
		t.Errorf("Score must stay 25 after rejected add, got %d", g.Score)
	}
}

func TestBlockedRoom(t *testing.T) {
	g := newTestGame(t)
	monster := &Monster{Name: "Страж", Health: NewHealth(30)}
	g.Dungeon.RoomAt(Position{X: 1, Y: 0}).Monster = monster

	g.SetBlocked(monster, East)
	if !g.IsBlocked() {
		t.Fatal("Game must be blocked after SetBlocked")
	}
	if room := g.BlockedRoom(); room == nil || room.Pos != (Position{X: 1, Y: 0}) {
		t.Error("BlockedRoom must be the east neighbor")
	}

	g.ClearBlocked()
	if g.IsBlocked() || g.BlockedRoom() != nil {
		t.Error("ClearBlocked must drop the block entirely")
	}
}

func TestAtExit(t *testing.T) {
	g := newTestGame(t)

	if g.AtExit() {
		t.Error("Player at entrance is not at exit")
	}

	g.MovePlayer(g.Dungeon.Exit)
	if !g.AtExit() {
		t.Error("Player standing in exit room must be at exit")
	}

	// Живой монстр в комнате выхода откладывает победу
	g.CurrentRoom().Monster = &Monster{Name: "Страж выхода", Health: NewHealth(50)}
	if g.AtExit() {
		t.Error("Live monster in exit room must block victory")
	}

	g.CurrentRoom().Monster.TakeDamage(50)
	if !g.AtExit() {
		t.Error("Dead monster must not block victory")
	}
}
