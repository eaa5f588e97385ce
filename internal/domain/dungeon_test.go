package domain

import "testing"

func buildGrid(t *testing.T, width, height int) *Dungeon {
	t.Helper()
	d := NewDungeon(width, height, 1)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pos := Position{X: x, Y: y}
			d.AddRoom(NewRoom("r_"+pos.Key(), pos, "комната"))
		}
	}
	return d
}

func TestConnectIsSymmetric(t *testing.T) {
	d := buildGrid(t, 3, 3)

	if !d.Connect(Position{X: 1, Y: 1}, East) {
		t.Fatal("Connect failed on existing rooms")
	}

	center := d.RoomAt(Position{X: 1, Y: 1})
	east := d.RoomAt(Position{X: 2, Y: 1})

	if !center.Connected(East) {
		t.Error("Center room must have east connection")
	}
	if !east.Connected(West) {
		t.Error("East neighbor must have west connection")
	}
}

func TestConnectMissingRoom(t *testing.T) {
	d := NewDungeon(3, 3, 1)
	d.AddRoom(NewRoom("r_0", Position{X: 0, Y: 0}, "комната"))

	// Сосед не существует — связь не создается ни с одной стороны
	if d.Connect(Position{X: 0, Y: 0}, East) {
		t.Error("Connect to missing room must fail")
	}
	if d.RoomAt(Position{X: 0, Y: 0}).ConnectionCount() != 0 {
		t.Error("Failed connect must not leave a half-connection")
	}
}

func TestReplaceRoomKeepsConnections(t *testing.T) {
	d := buildGrid(t, 3, 3)
	pos := Position{X: 1, Y: 1}
	d.Connect(pos, North)
	d.Connect(pos, East)

	fresh := NewRoom("r_fresh", pos, "выход")
	fresh.IsExit = true
	d.ReplaceRoom(fresh)

	got := d.RoomAt(pos)
	if got.ID != "r_fresh" {
		t.Fatalf("Expected replaced room, got %s", got.ID)
	}
	if !got.Connected(North) || !got.Connected(East) {
		t.Error("Replaced room must inherit old connections")
	}
	if got.Connected(South) || got.Connected(West) {
		t.Error("Replaced room gained connections it never had")
	}
}

func TestRoomsOrderIsStable(t *testing.T) {
	d := NewDungeon(3, 3, 1)
	positions := []Position{{X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
	for _, pos := range positions {
		d.AddRoom(NewRoom("r_"+pos.Key(), pos, "комната"))
	}

	// Замещение не двигает комнату в порядке обхода
	d.AddRoom(NewRoom("r_new", positions[1], "новая"))

	rooms := d.Rooms()
	if len(rooms) != 3 {
		t.Fatalf("Expected 3 rooms, got %d", len(rooms))
	}
	for i, pos := range positions {
		if rooms[i].Pos != pos {
			t.Errorf("Room %d at %v, want %v", i, rooms[i].Pos, pos)
		}
	}
	if rooms[1].ID != "r_new" {
		t.Error("Replacement must keep its slot in iteration order")
	}
}

func TestReachable(t *testing.T) {
	d := buildGrid(t, 3, 1)
	d.Connect(Position{X: 0, Y: 0}, East)
	// Комната (2,0) осталась отрезанной

	reached := d.Reachable(Position{X: 0, Y: 0})
	if len(reached) != 2 {
		t.Fatalf("Expected 2 reachable rooms, got %d", len(reached))
	}
	if d.HasPath(Position{X: 0, Y: 0}, Position{X: 2, Y: 0}) {
		t.Error("Disconnected room must not be reachable")
	}

	d.Connect(Position{X: 1, Y: 0}, East)
	if !d.HasPath(Position{X: 0, Y: 0}, Position{X: 2, Y: 0}) {
		t.Error("Connected room must be reachable")
	}
}
