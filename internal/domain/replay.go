package domain

// ReplayAction — одно записанное действие игрока.
type ReplayAction struct {
	Turn    int
	Action  ActionType
	Payload []byte
}

// ReplaySession — лента действий одной партии.
// Вместе с зерном позволяет детерминированно пересобрать всю игру.
type ReplaySession struct {
	Seed      int64
	Timestamp int64
	Actions   []ReplayAction
}

// Record добавляет действие в ленту.
func (r *ReplaySession) Record(turn int, action ActionType, payload []byte) {
	r.Actions = append(r.Actions, ReplayAction{
		Turn:    turn,
		Action:  action,
		Payload: payload,
	})
}
