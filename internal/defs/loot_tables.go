// internal/defs/loot_tables.go
package defs

// WeightedEntry is one row of a weighted draw.
// Weight is relative to the sum of the table, not a percentage.
type WeightedEntry struct {
	ID     string `json:"id"`
	Weight int    `json:"weight"`
}

// EnemySpawnWeights is the type table the spawner draws from.
var EnemySpawnWeights = []WeightedEntry{
	{ID: string(EnemyZombie), Weight: 60},
	{ID: string(EnemyGhost), Weight: 25},
	{ID: string(EnemyVampire), Weight: 12},
	{ID: string(EnemyBoss), Weight: 3},
}

// RarityDefinition is a tier's cumulative drop threshold and effect multiplier.
type RarityDefinition struct {
	Rarity     Rarity  `json:"rarity"`
	Chance     float64 `json:"chance"`
	Multiplier float64 `json:"multiplier"`
}

// RarityTable is ordered rarest first. A roll below Chance picks the tier;
// rolls past every row fall back to common.
var RarityTable = []RarityDefinition{
	{Rarity: RarityEpic, Chance: 0.025, Multiplier: 4.0},
	{Rarity: RarityRare, Chance: 0.05, Multiplier: 3.0},
	{Rarity: RarityUncommon, Chance: 0.15, Multiplier: 2.0},
	{Rarity: RarityCommon, Chance: 0.4, Multiplier: 1.0},
}

// RollRarity maps a uniform roll in [0,1) to a tier.
func RollRarity(roll float64) Rarity {
	for _, r := range RarityTable {
		if roll < r.Chance {
			return r.Rarity
		}
	}
	return RarityCommon
}

// RarityMultiplier returns the effect scalar for a tier, 1.0 if unknown.
func RarityMultiplier(r Rarity) float64 {
	for _, def := range RarityTable {
		if def.Rarity == r {
			return def.Multiplier
		}
	}
	return 1.0
}

// DropChance is the probability that an enemy worth exp experience drops an item.
func DropChance(exp int) float64 {
	return 0.3 + (float64(exp)/1000)*0.1
}
