package engine

import (
	"crawl-server/internal/domain"
	"crawl-server/pkg/api"
)

// BuildResponse собирает клиентский снимок видимого состояния партии.
// Type и Logs заполняет вызывающий.
func BuildResponse(game *domain.Game, state State) api.ServerResponse {
	return api.ServerResponse{
		State:  state.String(),
		Turn:   game.Turn,
		Score:  game.Score,
		Room:   buildRoomView(game.CurrentRoom()),
		Player: buildPlayerView(game.Player),
	}
}

func buildRoomView(room *domain.Room) *api.RoomView {
	if room == nil {
		return nil
	}

	exits := make([]string, 0, 4)
	for _, d := range room.Directions() {
		exits = append(exits, d.String())
	}

	view := &api.RoomView{
		ID:          room.ID,
		Description: room.Description,
		Exits:       exits,
		IsExit:      room.IsExit,
		Visited:     room.Visited,
		Treasures:   buildItemViews(room.Treasures),
	}
	if room.Monster != nil {
		view.Monster = &api.MonsterView{
			Name:      room.Monster.Name,
			Health:    room.Monster.Health.Current,
			MaxHealth: room.Monster.Health.Max,
			IsDead:    room.Monster.IsDead(),
		}
	}
	return view
}

func buildPlayerView(player *domain.Player) *api.PlayerView {
	return &api.PlayerView{
		Name:      player.Name,
		Health:    player.Health.Current,
		MaxHealth: player.Health.Max,
		Attack:    player.Attack,
		Exp:       player.Exp,
		Inventory: buildItemViews(player.Inventory),
	}
}

func buildItemViews(items []domain.Item) []api.ItemView {
	views := make([]api.ItemView, 0, len(items))
	for _, it := range items {
		views = append(views, api.ItemView{
			ID:     it.ID,
			Kind:   string(it.Kind),
			Name:   it.Name,
			Rarity: string(it.Rarity),
			Value:  it.Value,
			Effect: it.Effect,
		})
	}
	return views
}

// Snapshot - полный снимок партии для внешнего хранилища.
// Обходит комнаты в порядке вставки, снимок воспроизводим.
func (s *Session) Snapshot() api.GameSnapshot {
	game := s.Game
	d := game.Dungeon

	rooms := make([]api.RoomSnapshot, 0, d.RoomCount())
	for _, room := range d.Rooms() {
		rooms = append(rooms, buildRoomSnapshot(room))
	}

	return api.GameSnapshot{
		Seed:     s.Seed,
		Turn:     game.Turn,
		Score:    game.Score,
		InCombat: game.InCombat,
		Position: api.PositionView{X: game.Player.Pos.X, Y: game.Player.Pos.Y},
		Player: api.PlayerSnapshot{
			Name:      game.Player.Name,
			Health:    game.Player.Health.Current,
			MaxHealth: game.Player.Health.Max,
			Attack:    game.Player.Attack,
			Exp:       game.Player.Exp,
			Inventory: buildItemViews(game.Player.Inventory),
		},
		Dungeon: api.DungeonSnapshot{
			Width:      d.Width,
			Height:     d.Height,
			Difficulty: d.Difficulty,
			Entrance:   api.PositionView{X: d.Entrance.X, Y: d.Entrance.Y},
			Exit:       api.PositionView{X: d.Exit.X, Y: d.Exit.Y},
			Rooms:      rooms,
		},
	}
}

func buildRoomSnapshot(room *domain.Room) api.RoomSnapshot {
	connections := make(map[string]bool, 4)
	for _, d := range domain.AllDirections {
		if room.Connected(d) {
			connections[d.String()] = true
		}
	}

	snap := api.RoomSnapshot{
		ID:          room.ID,
		Pos:         api.PositionView{X: room.Pos.X, Y: room.Pos.Y},
		Description: room.Description,
		IsExit:      room.IsExit,
		Visited:     room.Visited,
		Connections: connections,
		Treasures:   buildItemViews(room.Treasures),
	}
	if room.Monster != nil {
		snap.Monster = &api.MonsterSnapshot{
			ID:        room.Monster.ID,
			Name:      room.Monster.Name,
			Health:    room.Monster.Health.Current,
			MaxHealth: room.Monster.Health.Max,
			Attack:    room.Monster.Attack,
			Exp:       room.Monster.Exp,
		}
	}
	return snap
}
