package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// Tier grades an enemy's threat
type Tier string

// Enemy tiers
const (
	TierNormal   Tier = "normal"
	TierElite    Tier = "elite"
	TierMiniboss Tier = "miniboss"
	TierBoss     Tier = "boss"
)

// Tiers lists every tier
var Tiers = []Tier{TierNormal, TierElite, TierMiniboss, TierBoss}

// ValidTier reports whether the tier is known
func ValidTier(t Tier) bool {
	for _, known := range Tiers {
		if t == known {
			return true
		}
	}
	return false
}

// Behavior selects the action policy an enemy fights with
type Behavior string

// Enemy behaviors
const (
	BehaviorAggressive  Behavior = "aggressive"
	BehaviorDefensive   Behavior = "defensive"
	BehaviorBalanced    Behavior = "balanced"
	BehaviorHealer      Behavior = "healer"
	BehaviorSpellcaster Behavior = "spellcaster"
)

// Behaviors lists every behavior
var Behaviors = []Behavior{
	BehaviorAggressive, BehaviorDefensive, BehaviorBalanced,
	BehaviorHealer, BehaviorSpellcaster,
}

// ValidBehavior reports whether the behavior is known
func ValidBehavior(b Behavior) bool {
	for _, known := range Behaviors {
		if b == known {
			return true
		}
	}
	return false
}

// enemyBase is the stat line every enemy starts from
var enemyBase = StatBlock{
	StatHealth:    80,
	StatMaxHealth: 80,
	StatEnergy:    40,
	StatMaxEnergy: 40,
	StatAttack:    8,
	StatDefense:   4,
	StatSpeed:     8,
}

// tierBonuses shift the starting stat line per tier. Health bonuses raise
// both the pool and its maximum.
var tierBonuses = map[Tier]StatBlock{
	TierNormal: {},
	TierElite: {
		StatHealth: 50, StatMaxHealth: 50,
		StatAttack: 5, StatDefense: 3, StatSpeed: 2,
	},
	TierMiniboss: {
		StatHealth: 100, StatMaxHealth: 100,
		StatAttack: 8, StatDefense: 5, StatSpeed: 3,
	},
	TierBoss: {
		StatHealth: 200, StatMaxHealth: 200,
		StatAttack: 15, StatDefense: 10, StatSpeed: 5,
	},
}

// rewardMultipliers scale experience and gold rewards per tier, expressed
// in tenths.
var rewardMultipliers = map[Tier]int{
	TierNormal:   10,
	TierElite:    15,
	TierMiniboss: 20,
	TierBoss:     30,
}

// LootEntry is one possible drop: an item reference with a percent chance
// and a quantity.
type LootEntry struct {
	ItemID   string
	Chance   int
	Quantity int
}

// Drop is a rolled loot result
type Drop struct {
	ItemID   string
	Quantity int
}

// Enemy is an AI-controlled combatant with a tier, a behavior, rewards on
// defeat, and a loot table.
type Enemy struct {
	*Combatant

	tier     Tier
	behavior Behavior

	experienceReward int
	goldReward       int

	cooldowns map[string]int
	lootTable []LootEntry
}

var _ Participant = (*Enemy)(nil)

// NewEnemy creates an enemy at the given level: base stats plus tier
// bonuses, rewards scaled by level and tier.
func NewEnemy(id, name string, level int, tier Tier, behavior Behavior) *Enemy {
	if level < 1 {
		level = 1
	}

	base := enemyBase
	for t, bonus := range tierBonuses[tier] {
		base[t] += bonus
	}

	c := newCombatant(id, name, "enemy", base)
	c.level = level

	e := &Enemy{
		Combatant: c,
		tier:      tier,
		behavior:  behavior,
		cooldowns: make(map[string]int),
	}
	c.onLevelUp = e.applyLevelBonuses
	e.recomputeRewards()
	return e
}

// Base returns the shared combatant machinery
func (e *Enemy) Base() *Combatant { return e.Combatant }

// Tier returns the enemy's tier
func (e *Enemy) Tier() Tier { return e.tier }

// Behavior returns the enemy's action policy selector
func (e *Enemy) Behavior() Behavior { return e.behavior }

// ExperienceReward returns the experience granted on defeat
func (e *Enemy) ExperienceReward() int { return e.experienceReward }

// GoldReward returns the gold granted on defeat
func (e *Enemy) GoldReward() int { return e.goldReward }

// applyLevelBonuses grants the flat enemy gains and refreshes rewards.
// Runs once per level as the level-up hook.
func (e *Enemy) applyLevelBonuses(c *Combatant) {
	c.ModifyStat(StatMaxHealth, 8)
	c.ModifyStat(StatMaxEnergy, 3)
	c.ModifyStat(StatAttack, 1)
	c.ModifyStat(StatDefense, 1)
	c.ModifyStat(StatSpeed, 1)
	e.recomputeRewards()
}

func (e *Enemy) recomputeRewards() {
	mult := rewardMultipliers[e.tier]
	if mult == 0 {
		mult = 10
	}
	e.experienceReward = e.level * 10 * mult / 10
	e.goldReward = e.level * 5 * mult / 10
}

// CanUseAbility reports whether the named ability is off cooldown
func (e *Enemy) CanUseAbility(name string) bool {
	return e.cooldowns[name] <= 0
}

// SetAbilityCooldown puts an ability on cooldown for the given turns
func (e *Enemy) SetAbilityCooldown(name string, turns int) {
	e.cooldowns[name] = turns
}

// TickCooldowns decrements every running cooldown by one
func (e *Enemy) TickCooldowns() {
	for name, turns := range e.cooldowns {
		if turns > 0 {
			e.cooldowns[name] = turns - 1
		}
	}
}

// AddLootEntry appends a possible drop. Chance is a percentage in [0,100].
func (e *Enemy) AddLootEntry(itemID string, chance, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	e.lootTable = append(e.lootTable, LootEntry{
		ItemID:   itemID,
		Chance:   chance,
		Quantity: quantity,
	})
}

// LootTable returns the configured drops
func (e *Enemy) LootTable() []LootEntry {
	out := make([]LootEntry, len(e.lootTable))
	copy(out, e.lootTable)
	return out
}

// GenerateLoot rolls each loot entry's drop chance through the roller and
// returns the drops that landed.
func (e *Enemy) GenerateLoot(roller dice.Roller) ([]Drop, error) {
	var drops []Drop
	for _, entry := range e.lootTable {
		if entry.Chance <= 0 {
			continue
		}
		roll, err := roller.Roll(100)
		if err != nil {
			return nil, err
		}
		if roll <= entry.Chance {
			drops = append(drops, Drop{ItemID: entry.ItemID, Quantity: entry.Quantity})
		}
	}
	return drops, nil
}
