package dungeon

import (
	"math/rand"

	"crawl-server/internal/domain"
	"crawl-server/pkg/utils"
)

// MonsterTemplate - шаблон монстра. Архетипы фиксированные и именованные,
// статы по сложности не масштабируются.
type MonsterTemplate struct {
	Name        string
	Description string
	MaxHealth   int
	Attack      int
	Exp         int
}

// Spawn создает монстра из шаблона с детерминированным ID.
func (t MonsterTemplate) Spawn(rng *rand.Rand) *domain.Monster {
	return &domain.Monster{
		ID:          utils.DeterministicID(rng, "m_"),
		Name:        t.Name,
		Description: t.Description,
		Health:      domain.NewHealth(t.MaxHealth),
		Attack:      t.Attack,
		Exp:         t.Exp,
	}
}

// --- АРХЕТИПЫ ---

var Goblin = MonsterTemplate{
	Name:        "Хитрый Гоблин",
	Description: "Мелкий пакостный гоблин, воровато оглядывается.",
	MaxHealth:   30,
	Attack:      8,
	Exp:         10,
}

var Orc = MonsterTemplate{
	Name:        "Свирепый Орк",
	Description: "Огромный зеленокожий орк с тяжелой дубиной.",
	MaxHealth:   60,
	Attack:      12,
	Exp:         25,
}

var Troll = MonsterTemplate{
	Name:        "Каменный Тролль",
	Description: "Массивное существо с каменной кожей.",
	MaxHealth:   120,
	Attack:      20,
	Exp:         100,
}

// SpawnMonster выбирает архетип по сложности подземелья.
//
// Сложность <= 2: 70% гоблин / 30% орк.
// Сложность <= 4: 40% гоблин / 60% орк.
// Сложность >= 5: 10% тролль / 40% гоблин / 50% орк.
func SpawnMonster(rng *rand.Rand, difficulty int) *domain.Monster {
	roll := rng.Float64()

	switch {
	case difficulty <= 2:
		if roll < 0.70 {
			return Goblin.Spawn(rng)
		}
		return Orc.Spawn(rng)

	case difficulty <= 4:
		if roll < 0.40 {
			return Goblin.Spawn(rng)
		}
		return Orc.Spawn(rng)

	default:
		if roll < 0.10 {
			return Troll.Spawn(rng)
		}
		if roll < 0.50 {
			return Goblin.Spawn(rng)
		}
		return Orc.Spawn(rng)
	}
}

// --- СОКРОВИЩА ---

// treasureTables - таблицы сокровищ по редкости.
var treasureTables = map[domain.Rarity][]domain.Item{
	domain.RarityCommon: {
		{Kind: domain.ItemGold, Name: "Горсть монет", Rarity: domain.RarityCommon, Value: 10},
		{Kind: domain.ItemPotion, Name: "Малое зелье лечения", Rarity: domain.RarityCommon, Value: 5, Effect: 20},
	},
	domain.RarityUncommon: {
		{Kind: domain.ItemGold, Name: "Кошель золота", Rarity: domain.RarityUncommon, Value: 50},
		{Kind: domain.ItemPotion, Name: "Зелье лечения", Rarity: domain.RarityUncommon, Value: 25, Effect: 40},
		{Kind: domain.ItemWeapon, Name: "Железный меч", Rarity: domain.RarityUncommon, Value: 50, Effect: 5},
	},
	domain.RarityRare: {
		{Kind: domain.ItemGold, Name: "Сундук с золотом", Rarity: domain.RarityRare, Value: 200},
		{Kind: domain.ItemWeapon, Name: "Стальной клинок", Rarity: domain.RarityRare, Value: 150, Effect: 12},
		{Kind: domain.ItemArtifact, Name: "Древний артефакт", Rarity: domain.RarityRare, Value: 500},
	},
}

// RollTreasure выбирает случайное сокровище заданной редкости.
func RollTreasure(rng *rand.Rand, rarity domain.Rarity) domain.Item {
	table, ok := treasureTables[rarity]
	if !ok {
		table = treasureTables[domain.RarityCommon]
	}
	item := table[rng.Intn(len(table))]
	item.ID = utils.DeterministicID(rng, "i_")
	return item
}

// DropRarity - редкость дропа по максимальному здоровью убитого монстра.
func DropRarity(maxHealth int) domain.Rarity {
	switch {
	case maxHealth >= 100:
		return domain.RarityRare
	case maxHealth >= 50:
		return domain.RarityUncommon
	default:
		return domain.RarityCommon
	}
}

// --- ОПИСАНИЯ КОМНАТ ---

var roomDescriptions = []string{
	"Сырая каменная комната. С потолка капает вода.",
	"Зал с обвалившимися колоннами. Пахнет плесенью.",
	"Узкая пещера, стены покрыты светящимся мхом.",
	"Старая оружейная. На стенах ржавые крепления.",
	"Комната с остатками костра. Кто-то здесь ночевал.",
	"Затопленный по щиколотку коридор. Вода ледяная.",
	"Круглый зал с выцветшими фресками на стенах.",
	"Тесная каморка, заваленная гнилыми досками.",
}

// RollDescription выбирает случайное описание комнаты.
func RollDescription(rng *rand.Rand) string {
	return roomDescriptions[rng.Intn(len(roomDescriptions))]
}

// EntranceDescription и ExitDescription - фиксированные описания
// входа и выхода.
const (
	EntranceDescription = "Вход в подземелье. Позади лестница на поверхность."
	ExitDescription     = "Выход из подземелья! Впереди дневной свет."
)
