package domain

// Стартовые характеристики героя.
const (
	PlayerStartHealth = 100
	PlayerStartAttack = 10
)

// Player — герой. Мутируется движением, уроном, лечением и экипировкой.
type Player struct {
	Name      string   `json:"name"`
	Health    Health   `json:"health"`
	Pos       Position `json:"pos"`
	Attack    int      `json:"attack"`
	Inventory []Item   `json:"inventory"`
	Exp       int      `json:"exp"`
}

func NewPlayer(name string) *Player {
	if name == "" {
		name = "Герой"
	}
	return &Player{
		Name:      name,
		Health:    NewHealth(PlayerStartHealth),
		Attack:    PlayerStartAttack,
		Inventory: make([]Item, 0),
	}
}

// TakeDamage наносит урон. Возвращает true, если герой погиб.
func (p *Player) TakeDamage(amount int) bool {
	if p.IsDead() {
		return false
	}
	p.Health.Reduce(amount)
	return p.IsDead()
}

// HealBy восстанавливает здоровье (зелья, отдых).
func (p *Player) HealBy(amount int) {
	if p.IsDead() {
		return // Некромантии нет
	}
	p.Health.Heal(amount)
}

func (p *Player) IsDead() bool {
	return p.Health.IsDead()
}

func (p *Player) HealthPercent() float64 {
	return p.Health.Percent()
}

// AddExp начисляет опыт за убитого монстра.
func (p *Player) AddExp(amount int) {
	if amount > 0 {
		p.Exp += amount
	}
}

// AddItem кладет предмет в конец инвентаря (порядок подбора сохраняется).
func (p *Player) AddItem(it Item) {
	p.Inventory = append(p.Inventory, it)
}

// RemoveItem убирает предмет по ID. Возвращает false, если его нет.
func (p *Player) RemoveItem(id string) bool {
	for i, it := range p.Inventory {
		if it.ID == id {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			return true
		}
	}
	return false
}
