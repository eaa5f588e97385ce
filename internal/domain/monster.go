package domain

// Monster — монстр, охраняющий комнату.
type Monster struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Health      Health `json:"health"`
	Attack      int    `json:"attack"`
	Exp         int    `json:"exp"` // Награда опытом за убийство
}

// TakeDamage наносит урон. Возвращает true, если монстр погиб.
// Мертвого монстра бить бесполезно — урон не проходит.
func (m *Monster) TakeDamage(amount int) bool {
	if m.IsDead() {
		return false
	}
	m.Health.Reduce(amount)
	return m.IsDead()
}

func (m *Monster) IsDead() bool {
	return m.Health.IsDead()
}

// HealthPercent — здоровье монстра в процентах (для расчета побега).
func (m *Monster) HealthPercent() float64 {
	return m.Health.Percent()
}
