package systems

import (
	"fmt"
	"math/rand"

	"crawl-server/internal/domain"
	"crawl-server/pkg/dungeon"
	"crawl-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Боевые константы. Вероятности — контракт баланса, менять осторожно.
const (
	PlayerDamageSpread  = 0.20 // ±20% к базовому урону героя
	MonsterDamageSpread = 0.10 // ±10% к базовому урону монстра
	CritChance          = 0.10
	CritMultiplier      = 1.5
	DodgeChance         = 0.15 // Шанс героя уклониться от любой атаки
	DropChance          = 0.30 // Шанс дропа с убитого монстра

	FleeBaseChance = 30
	FleeMaxChance  = 75
)

// CombatResult - исход одной атаки.
type CombatResult struct {
	Success bool
	Message string

	Damage     int
	Critical   bool
	Dodged     bool
	TargetDied bool

	PlayerHealth  domain.Health
	MonsterHealth domain.Health

	ExpGained int
	Drop      *domain.Item
}

// RoundResult - полный раунд: атака героя и, если монстр выжил, ответный удар.
type RoundResult struct {
	PlayerAttack  CombatResult
	MonsterAttack *CombatResult

	MonsterDied bool
	PlayerDied  bool
}

// FleeResult - исход попытки побега.
type FleeResult struct {
	Success bool
	Message string
	Chance  int

	// Безответный удар в спину при провале побега.
	Punishment *CombatResult
}

// Resolver разрешает бои. Генератор случайностей инжектируется,
// чтобы бой был воспроизводим от зерна.
type Resolver struct {
	rng *rand.Rand
}

func NewResolver(rng *rand.Rand) *Resolver {
	return &Resolver{rng: rng}
}

// Attack - одна атака героя по монстру. Ответного удара здесь нет,
// за раунд целиком отвечает Round.
func (r *Resolver) Attack(player *domain.Player, monster *domain.Monster) CombatResult {
	if res, ok := r.checkCombatants(player, monster); !ok {
		return res
	}

	damage := r.rollDamage(player.Attack, PlayerDamageSpread)
	critical := r.rng.Float64() < CritChance
	if critical {
		damage = int(float64(damage) * CritMultiplier)
	}

	died := monster.TakeDamage(damage)

	result := CombatResult{
		Success:       true,
		Damage:        damage,
		Critical:      critical,
		TargetDied:    died,
		PlayerHealth:  player.Health,
		MonsterHealth: monster.Health,
	}
	result.Message = fmt.Sprintf("Вы наносите %d урона по %s.", damage, monster.Name)
	if critical {
		result.Message = fmt.Sprintf("Критический удар! Вы наносите %d урона по %s.", damage, monster.Name)
	}

	fields := logrus.Fields{
		"component":   "combat_system",
		"target":      monster.Name,
		"damage":      damage,
		"critical":    critical,
		"target_hp":   monster.Health.Current,
		"target_died": died,
	}

	if died {
		player.AddExp(monster.Exp)
		result.ExpGained = monster.Exp
		result.Message += fmt.Sprintf(" %s погибает. +%d опыта.", monster.Name, monster.Exp)

		// Бросок на дроп: редкость привязана к максимальному здоровью жертвы.
		if r.rng.Float64() < DropChance {
			drop := dungeon.RollTreasure(r.rng, dungeon.DropRarity(monster.Health.Max))
			result.Drop = &drop
			result.Message += fmt.Sprintf(" Из монстра выпадает: %s.", drop.Name)
		}
	}

	logger.Log.WithFields(fields).Info("Attack resolved.")
	return result
}

// MonsterAttack - удар монстра по герою. Герой может уклониться,
// если canDodge (удар в спину при провале побега не уклоняется).
func (r *Resolver) MonsterAttack(player *domain.Player, monster *domain.Monster, canDodge bool) CombatResult {
	if res, ok := r.checkCombatants(player, monster); !ok {
		return res
	}

	if canDodge && r.rng.Float64() < DodgeChance {
		return CombatResult{
			Success:       true,
			Dodged:        true,
			Message:       fmt.Sprintf("Вы уклоняетесь от атаки %s!", monster.Name),
			PlayerHealth:  player.Health,
			MonsterHealth: monster.Health,
		}
	}

	damage := r.rollDamage(monster.Attack, MonsterDamageSpread)
	died := player.TakeDamage(damage)

	result := CombatResult{
		Success:       true,
		Damage:        damage,
		TargetDied:    died,
		PlayerHealth:  player.Health,
		MonsterHealth: monster.Health,
		Message:       fmt.Sprintf("%s бьет вас на %d урона!", monster.Name, damage),
	}
	if died {
		result.Message += " Вы погибаете..."
	}

	logger.Log.WithFields(logrus.Fields{
		"component":   "combat_system",
		"attacker":    monster.Name,
		"damage":      damage,
		"player_hp":   player.Health.Current,
		"player_died": died,
	}).Info("Monster attack resolved.")

	return result
}

// Round - полный раунд боя: атака героя, затем ответ выжившего монстра.
func (r *Resolver) Round(player *domain.Player, monster *domain.Monster) RoundResult {
	round := RoundResult{PlayerAttack: r.Attack(player, monster)}

	if !round.PlayerAttack.Success {
		return round
	}
	if round.PlayerAttack.TargetDied {
		round.MonsterDied = true
		return round
	}

	counter := r.MonsterAttack(player, monster, true)
	round.MonsterAttack = &counter
	round.PlayerDied = counter.TargetDied
	return round
}

// Flee - попытка сбежать из боя.
//
// Шанс = 30 + (100 - здоровье героя %)/2 - здоровье монстра %/4.
// Сверху шанс зажат до 75%; снизу не зажат — может уйти в минус,
// что означает гарантированный провал.
func (r *Resolver) Flee(player *domain.Player, monster *domain.Monster) FleeResult {
	if player.IsDead() {
		return FleeResult{Message: "Мертвые не бегают."}
	}
	if monster == nil || monster.IsDead() {
		return FleeResult{Message: "Не от кого бежать."}
	}

	chance := FleeChance(player.HealthPercent(), monster.HealthPercent())
	roll := r.rng.Intn(100)

	logger.Log.WithFields(logrus.Fields{
		"component": "combat_system",
		"chance":    chance,
		"roll":      roll,
	}).Debug("Flee attempt")

	if roll < chance {
		return FleeResult{
			Success: true,
			Chance:  chance,
			Message: fmt.Sprintf("Вы ускользаете от %s!", monster.Name),
		}
	}

	// Провал: монстр бьет в спину, без уклонения.
	punishment := r.MonsterAttack(player, monster, false)
	return FleeResult{
		Chance:     chance,
		Message:    fmt.Sprintf("Сбежать не вышло — %s бьет вам в спину!", monster.Name),
		Punishment: &punishment,
	}
}

// FleeChance вычисляет шанс побега в процентах. Верхняя граница 75.
func FleeChance(playerHealthPercent, monsterHealthPercent float64) int {
	chance := FleeBaseChance + int((100-playerHealthPercent)/2) - int(monsterHealthPercent/4)
	if chance > FleeMaxChance {
		chance = FleeMaxChance
	}
	return chance
}

// rollDamage - базовый урон со случайным разбросом ±spread. Минимум 1.
func (r *Resolver) rollDamage(base int, spread float64) int {
	factor := 1 - spread + r.rng.Float64()*2*spread
	damage := int(float64(base) * factor)
	if damage < 1 {
		damage = 1
	}
	return damage
}

// checkCombatants отсекает бой с участием мертвецов.
// Это ошибочный результат, а не паника: команда пришла от игрока.
func (r *Resolver) checkCombatants(player *domain.Player, monster *domain.Monster) (CombatResult, bool) {
	if monster == nil {
		return CombatResult{Message: "Здесь некого атаковать."}, false
	}
	if monster.IsDead() {
		return CombatResult{
			Message:       fmt.Sprintf("%s уже мертв.", monster.Name),
			PlayerHealth:  player.Health,
			MonsterHealth: monster.Health,
		}, false
	}
	if player.IsDead() {
		return CombatResult{
			Message:       "Вы мертвы и не можете сражаться.",
			PlayerHealth:  player.Health,
			MonsterHealth: monster.Health,
		}, false
	}
	return CombatResult{}, true
}
