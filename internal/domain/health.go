package domain

// Health — пул здоровья с жесткими границами [0, Max].
type Health struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

func NewHealth(max int) Health {
	return Health{Current: max, Max: max}
}

// Reduce наносит урон. Текущее здоровье никогда не уходит ниже нуля.
func (h *Health) Reduce(amount int) {
	if amount < 0 {
		amount = 0
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

// Heal восстанавливает здоровье до предела Max.
func (h *Health) Heal(amount int) {
	if amount < 0 {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

func (h Health) IsDead() bool {
	return h.Current <= 0
}

func (h Health) IsFull() bool {
	return h.Current >= h.Max
}

// Percent возвращает здоровье в процентах [0, 100].
func (h Health) Percent() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max) * 100
}
