package domain

// ItemKind — вид предмета. Единый тегированный тип вместо
// зоопарка из "предметов" и "сокровищ".
type ItemKind string

const (
	ItemGold     ItemKind = "GOLD"
	ItemPotion   ItemKind = "POTION"
	ItemWeapon   ItemKind = "WEAPON"
	ItemArtifact ItemKind = "ARTIFACT"
)

// Rarity — редкость предмета. Определяет таблицу дропа после боя.
type Rarity string

const (
	RarityCommon   Rarity = "COMMON"
	RarityUncommon Rarity = "UNCOMMON"
	RarityRare     Rarity = "RARE"
)

// Item — предмет в комнате или в инвентаре.
//
// Value — очки/золото при подборе.
// Effect — сила эффекта: лечение для зелий, бонус атаки для оружия.
type Item struct {
	ID     string   `json:"id"`
	Kind   ItemKind `json:"kind"`
	Name   string   `json:"name"`
	Rarity Rarity   `json:"rarity"`
	Value  int      `json:"value"`
	Effect int      `json:"effect,omitempty"`
}
