package domain

import "errors"

// ErrNegativeScore возвращается при попытке уменьшить счет.
var ErrNegativeScore = errors.New("score cannot decrease")

// Game — корневой агрегат одной игровой партии.
// Единственный изменяемый корень: резолверы движения и боя
// мутируют состояние только через него и его комнаты.
type Game struct {
	Player  *Player
	Dungeon *Dungeon

	Turn     int  // Счетчик ходов, начинается с 1
	Score    int  // Монотонно неубывающий счет
	InCombat bool

	// Преграждающий путь монстр и направление, в котором его комната.
	// Переходное состояние: очищается, как только бой разрешен.
	BlockedBy  *Monster
	BlockedDir Direction
}

func NewGame(player *Player, dungeon *Dungeon) *Game {
	player.Pos = dungeon.Entrance
	if entrance := dungeon.RoomAt(dungeon.Entrance); entrance != nil {
		entrance.Visited = true
	}
	return &Game{
		Player:  player,
		Dungeon: dungeon,
		Turn:    1,
	}
}

// AddScore начисляет очки. Отрицательные значения — ошибка,
// счет не может уменьшаться.
func (g *Game) AddScore(points int) error {
	if points < 0 {
		return ErrNegativeScore
	}
	g.Score += points
	return nil
}

// IncrementTurn увеличивает счетчик после завершенного действия.
func (g *Game) IncrementTurn() {
	g.Turn++
}

// MovePlayer переставляет героя на позицию pos.
func (g *Game) MovePlayer(pos Position) {
	g.Player.Pos = pos
}

// CurrentRoom — комната, в которой стоит герой.
func (g *Game) CurrentRoom() *Room {
	return g.Dungeon.RoomAt(g.Player.Pos)
}

// BlockedRoom — комната с преграждающим монстром (если блок активен).
func (g *Game) BlockedRoom() *Room {
	if g.BlockedBy == nil {
		return nil
	}
	return g.Dungeon.Neighbor(g.Player.Pos, g.BlockedDir)
}

// SetBlocked запоминает монстра, преградившего путь, и направление.
func (g *Game) SetBlocked(m *Monster, dir Direction) {
	g.BlockedBy = m
	g.BlockedDir = dir
}

// ClearBlocked сбрасывает блок (монстр убит, герой сбежал или ушел).
func (g *Game) ClearBlocked() {
	g.BlockedBy = nil
	g.BlockedDir = North
}

// IsBlocked — активен ли блок.
func (g *Game) IsBlocked() bool {
	return g.BlockedBy != nil
}

// AtExit — стоит ли герой в комнате-выходе без живого монстра.
// Это и есть условие победы.
func (g *Game) AtExit() bool {
	room := g.CurrentRoom()
	return room != nil && room.IsExit && !room.HasLiveMonster()
}
