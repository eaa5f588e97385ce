package engine

import (
	"encoding/json"
	"math/rand"
	"testing"

	"crawl-server/internal/domain"
	"crawl-server/internal/systems"
	"crawl-server/pkg/api"
	"crawl-server/pkg/dungeon"
)

func command(t *testing.T, action string, payload interface{}) api.ClientCommand {
	t.Helper()
	cmd := api.ClientCommand{Action: action}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		cmd.Payload = raw
	}
	return cmd
}

// handcraftedSession собирает партию на коридоре (0,0)-(1,0)-(2,0):
// страж в средней комнате, выход в правой.
func handcraftedSession(t *testing.T, guard *domain.Monster) *Session {
	t.Helper()

	d := domain.NewDungeon(3, 1, 1)
	for x := 0; x < 3; x++ {
		pos := domain.Position{X: x, Y: 0}
		room := domain.NewRoom("r_"+pos.Key(), pos, "комната")
		d.AddRoom(room)
	}
	d.Connect(domain.Position{X: 0, Y: 0}, domain.East)
	d.Connect(domain.Position{X: 1, Y: 0}, domain.East)
	d.Entrance = domain.Position{X: 0, Y: 0}
	d.Exit = domain.Position{X: 2, Y: 0}
	d.RoomAt(d.Exit).IsExit = true
	d.RoomAt(domain.Position{X: 1, Y: 0}).Monster = guard

	rng := rand.New(rand.NewSource(1))
	s := &Session{
		ID:     "test_session",
		Seed:   1,
		Game:   domain.NewGame(domain.NewPlayer("Тест"), d),
		Combat: systems.NewResolver(rng),
		Rng:    rng,
		Replay: &domain.ReplaySession{Seed: 1},
	}
	s.registerHandlers()
	return s
}

func TestSessionInit(t *testing.T) {
	s, err := NewSession(7, dungeon.DefaultConfig(), "")
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	resp := s.ProcessCommand(command(t, "INIT", api.InitPayload{Name: "Арагорн"}))

	if resp.Type != "INIT" {
		t.Errorf("Response type = %q, want INIT", resp.Type)
	}
	if resp.State != "EXPLORING" {
		t.Errorf("State = %q, want EXPLORING", resp.State)
	}
	if resp.Player == nil || resp.Player.Name != "Арагорн" {
		t.Error("INIT payload name must rename the player")
	}
	if resp.Turn != 1 {
		t.Errorf("INIT must not spend a turn, got turn %d", resp.Turn)
	}
	if resp.Room == nil || len(resp.Logs) == 0 {
		t.Error("INIT response must carry room and log entries")
	}
}

func TestSessionUnknownAction(t *testing.T) {
	s := handcraftedSession(t, nil)

	resp := s.ProcessCommand(command(t, "TELEPORT", nil))

	if resp.Turn != 1 {
		t.Errorf("Unknown action must not spend a turn, got %d", resp.Turn)
	}
	if len(resp.Logs) == 0 || resp.Logs[0].Type != "ERROR" {
		t.Error("Unknown action must produce an error log entry")
	}
	if len(s.Replay.Actions) != 0 {
		t.Error("Unknown action must not be recorded")
	}
}

func TestSessionBlockedThenVictory(t *testing.T) {
	guard := &domain.Monster{Name: "Страж", Health: domain.NewHealth(1), Attack: 1, Exp: 10}
	s := handcraftedSession(t, guard)

	// Шаг на восток упирается в стража
	resp := s.ProcessCommand(command(t, "MOVE", api.DirectionPayload{Direction: "east"}))
	if resp.State != "BLOCKED" {
		t.Fatalf("State = %q, want BLOCKED", resp.State)
	}
	if s.Game.Player.Pos != (domain.Position{X: 0, Y: 0}) {
		t.Fatal("Blocked move must keep the player in place")
	}
	if resp.Turn != 2 {
		t.Errorf("Blocked move spends a turn, got %d", resp.Turn)
	}

	// Страж с 1 HP умирает от любого удара
	resp = s.ProcessCommand(command(t, "ATTACK", nil))
	if resp.State != "EXPLORING" {
		t.Fatalf("State after kill = %q, want EXPLORING", resp.State)
	}
	if s.Game.IsBlocked() {
		t.Error("Killing the blocker must clear the block")
	}
	if s.Game.Score != 10 {
		t.Errorf("Score = %d, want 10 exp from the kill", s.Game.Score)
	}
	if s.Game.Dungeon.RoomAt(domain.Position{X: 1, Y: 0}).Monster != nil {
		t.Error("Dead blocker must be removed from its room")
	}

	// Дорога свободна: два шага до выхода
	s.ProcessCommand(command(t, "MOVE", api.DirectionPayload{Direction: "east"}))
	resp = s.ProcessCommand(command(t, "MOVE", api.DirectionPayload{Direction: "east"}))

	if resp.State != "VICTORY" {
		t.Fatalf("State = %q, want VICTORY", resp.State)
	}
	if !s.State().Over() {
		t.Error("Victory must end the game")
	}

	// Оконченная партия не принимает команды
	before := s.Game.Turn
	resp = s.ProcessCommand(command(t, "MOVE", api.DirectionPayload{Direction: "west"}))
	if s.Game.Turn != before {
		t.Error("Finished game must not spend turns")
	}
	if resp.State != "VICTORY" {
		t.Errorf("Finished game state must stay VICTORY, got %q", resp.State)
	}
}

func TestSessionDefeat(t *testing.T) {
	guard := &domain.Monster{Name: "Палач", Health: domain.NewHealth(100000), Attack: 60}
	s := handcraftedSession(t, guard)

	s.ProcessCommand(command(t, "MOVE", api.DirectionPayload{Direction: "east"}))

	for i := 0; i < 100 && !s.State().Over(); i++ {
		s.ProcessCommand(command(t, "ATTACK", nil))
	}

	if s.State() != StateDefeat {
		t.Fatalf("State = %v, want DEFEAT", s.State())
	}
	if !s.Game.Player.IsDead() {
		t.Error("Defeat requires a dead player")
	}
}

func TestSessionWallMoveDoesNotSpendTurn(t *testing.T) {
	s := handcraftedSession(t, nil)

	resp := s.ProcessCommand(command(t, "MOVE", api.DirectionPayload{Direction: "north"}))

	if resp.Turn != 1 {
		t.Errorf("Move into a wall must not spend a turn, got %d", resp.Turn)
	}
	if resp.State != "EXPLORING" {
		t.Errorf("State = %q, want EXPLORING", resp.State)
	}
}

func TestSessionLookIsFree(t *testing.T) {
	s := handcraftedSession(t, nil)

	resp := s.ProcessCommand(command(t, "LOOK", nil))

	if resp.Turn != 1 {
		t.Errorf("LOOK must not spend a turn, got %d", resp.Turn)
	}
	if len(resp.Logs) == 0 {
		t.Error("LOOK must describe the room")
	}
}

func TestSessionPickupAndUse(t *testing.T) {
	s := handcraftedSession(t, nil)
	room := s.Game.CurrentRoom()
	room.AddTreasure(domain.Item{ID: "i_gold", Kind: domain.ItemGold, Name: "Горсть монет", Value: 10})
	room.AddTreasure(domain.Item{ID: "i_potion", Kind: domain.ItemPotion, Name: "Малое зелье лечения", Effect: 20})
	room.AddTreasure(domain.Item{ID: "i_sword", Kind: domain.ItemWeapon, Name: "Железный меч", Effect: 5})

	attackBefore := s.Game.Player.Attack
	s.ProcessCommand(command(t, "PICKUP", nil))

	if s.Game.Score != 10 {
		t.Errorf("Gold pickup must add value to score, got %d", s.Game.Score)
	}
	if s.Game.Player.Attack != attackBefore+5 {
		t.Errorf("Weapon pickup must raise attack, got %d", s.Game.Player.Attack)
	}
	if len(s.Game.Player.Inventory) != 3 {
		t.Fatalf("Expected 3 items in inventory, got %d", len(s.Game.Player.Inventory))
	}
	if len(room.Treasures) != 0 {
		t.Error("Pickup must empty the room")
	}

	// Лечимся после пропущенного удара
	s.Game.Player.TakeDamage(30)
	s.ProcessCommand(command(t, "USE", api.ItemPayload{}))

	if s.Game.Player.Health.Current != 90 {
		t.Errorf("Potion must heal 20, health = %d", s.Game.Player.Health.Current)
	}
	for _, it := range s.Game.Player.Inventory {
		if it.ID == "i_potion" {
			t.Error("Used potion must leave the inventory")
		}
	}
}

func TestPlaybackReproducesGame(t *testing.T) {
	cfg := dungeon.DefaultConfig()

	original, err := NewSession(99, cfg, "Тест")
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	script := []api.ClientCommand{
		command(t, "INIT", api.InitPayload{Name: "Тест"}),
		command(t, "LOOK", nil),
		command(t, "MOVE", api.DirectionPayload{Direction: "east"}),
		command(t, "MOVE", api.DirectionPayload{Direction: "south"}),
		command(t, "ATTACK", nil),
		command(t, "MOVE", api.DirectionPayload{Direction: "south"}),
		command(t, "PICKUP", nil),
	}
	for _, cmd := range script {
		original.ProcessCommand(cmd)
	}

	replayed, err := Playback(original.Replay, cfg)
	if err != nil {
		t.Fatalf("Playback failed: %v", err)
	}

	if replayed.Game.Turn != original.Game.Turn {
		t.Errorf("Turn mismatch: %d vs %d", replayed.Game.Turn, original.Game.Turn)
	}
	if replayed.Game.Score != original.Game.Score {
		t.Errorf("Score mismatch: %d vs %d", replayed.Game.Score, original.Game.Score)
	}
	if replayed.Game.Player.Pos != original.Game.Player.Pos {
		t.Errorf("Position mismatch: %v vs %v", replayed.Game.Player.Pos, original.Game.Player.Pos)
	}
	if replayed.Game.Player.Health != original.Game.Player.Health {
		t.Errorf("Health mismatch: %v vs %v", replayed.Game.Player.Health, original.Game.Player.Health)
	}
	if replayed.State() != original.State() {
		t.Errorf("State mismatch: %v vs %v", replayed.State(), original.State())
	}
}
