// Package entities holds the combatant model: the shared stat and effect
// machinery plus the player and enemy variants built on it.
package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/pocketrpg/battle-core/internal/effects"
	"github.com/pocketrpg/battle-core/internal/items"
)

// Combat status flags every combatant carries
const (
	FlagStunned   = "stunned"
	FlagDefending = "defending"
)

// Combatant is the stat, flag, and effect machinery shared by players and
// enemies. Current health and energy live in the base block; effects
// contribute through the modifier block and equipment through its own
// block, so removing either can never corrupt the base values.
type Combatant struct {
	id         string
	name       string
	entityType string
	classID    string
	level      int

	base  StatBlock
	mods  StatBlock
	equip StatBlock

	flags         map[string]bool
	activeEffects []effects.Effect

	// onLevelUp applies variant-specific stat gains before the full restore
	onLevelUp func(*Combatant)
}

var _ core.Entity = (*Combatant)(nil)
var _ effects.Target = (*Combatant)(nil)
var _ items.User = (*Combatant)(nil)

func newCombatant(id, name, entityType string, base StatBlock) *Combatant {
	return &Combatant{
		id:         id,
		name:       name,
		entityType: entityType,
		level:      1,
		base:       base,
		flags: map[string]bool{
			FlagStunned:   false,
			FlagDefending: false,
		},
	}
}

// GetID returns the combatant's ID
func (c *Combatant) GetID() string { return c.id }

// GetType returns the entity type
func (c *Combatant) GetType() string { return c.entityType }

// Name returns the display name
func (c *Combatant) Name() string { return c.name }

// Level returns the current level
func (c *Combatant) Level() int { return c.level }

// ClassID returns the class identifier; empty for classless combatants
func (c *Combatant) ClassID() string { return c.classID }

// Stat returns the effective value of a stat: base plus effect modifiers
// plus equipment bonuses, floored at zero.
func (c *Combatant) Stat(t StatType) int {
	v := c.base[t] + c.mods[t] + c.equip[t]
	if v < 0 {
		return 0
	}
	return v
}

// BaseStat returns the stat's base value without modifiers
func (c *Combatant) BaseStat(t StatType) int { return c.base[t] }

// BaseStats returns a copy of the raw stat line, without effect
// modifiers or equipment bonuses.
func (c *Combatant) BaseStats() StatBlock { return c.base }

// SetStat overwrites the stat's base value, flooring at zero
func (c *Combatant) SetStat(t StatType, value int) {
	if value < 0 {
		value = 0
	}
	c.base[t] = value
}

// ModifyStat shifts the stat's base value by delta
func (c *Combatant) ModifyStat(t StatType, delta int) { c.base[t] += delta }

// AddModifier adds a temporary modifier to the named stat. Unknown stat
// names are ignored.
func (c *Combatant) AddModifier(stat string, amount int) {
	if t, ok := StatTypeFromName(stat); ok {
		c.mods[t] += amount
	}
}

// RemoveModifier subtracts a temporary modifier from the named stat.
// Unknown stat names are ignored.
func (c *Combatant) RemoveModifier(stat string, amount int) {
	if t, ok := StatTypeFromName(stat); ok {
		c.mods[t] -= amount
	}
}

// TakeDamage applies an incoming hit. Effective defense absorbs part of
// it, but a hit always deals at least 1. Health clamps at zero and a dead
// combatant takes nothing. Returns the damage actually dealt. The
// defending stance is the engine's concern and does not factor in here.
func (c *Combatant) TakeDamage(amount int) int {
	if !c.Alive() {
		return 0
	}
	actual := amount - c.Stat(StatDefense)
	if actual < 1 {
		actual = 1
	}
	if actual > c.base[StatHealth] {
		actual = c.base[StatHealth]
	}
	c.base[StatHealth] -= actual
	return actual
}

// TakeTrueDamage applies damage that bypasses defense entirely, as dealt
// by damage-over-time effects. Health clamps at zero and a dead combatant
// takes nothing. Returns the damage actually dealt.
func (c *Combatant) TakeTrueDamage(amount int) int {
	if !c.Alive() || amount < 0 {
		return 0
	}
	if amount > c.base[StatHealth] {
		amount = c.base[StatHealth]
	}
	c.base[StatHealth] -= amount
	return amount
}

// Heal restores health up to effective max health and returns the amount
// actually restored. Healing cannot revive the dead.
func (c *Combatant) Heal(amount int) int {
	if !c.Alive() {
		return 0
	}
	if amount < 0 {
		amount = 0
	}
	missing := c.Stat(StatMaxHealth) - c.base[StatHealth]
	if missing < 0 {
		missing = 0
	}
	if amount > missing {
		amount = missing
	}
	c.base[StatHealth] += amount
	return amount
}

// RestoreEnergy restores energy up to effective max energy and returns the
// amount actually restored.
func (c *Combatant) RestoreEnergy(amount int) int {
	if !c.Alive() {
		return 0
	}
	if amount < 0 {
		amount = 0
	}
	missing := c.Stat(StatMaxEnergy) - c.base[StatEnergy]
	if missing < 0 {
		missing = 0
	}
	if amount > missing {
		amount = missing
	}
	c.base[StatEnergy] += amount
	return amount
}

// SpendEnergy deducts energy, failing without mutation when the combatant
// cannot afford the cost.
func (c *Combatant) SpendEnergy(amount int) bool {
	if amount < 0 || c.base[StatEnergy] < amount {
		return false
	}
	c.base[StatEnergy] -= amount
	return true
}

// Alive reports whether current health is above zero
func (c *Combatant) Alive() bool { return c.base[StatHealth] > 0 }

// HealthPercent returns current health as a percentage of effective max
func (c *Combatant) HealthPercent() int {
	maxHealth := c.Stat(StatMaxHealth)
	if maxHealth <= 0 {
		return 0
	}
	return c.base[StatHealth] * 100 / maxHealth
}

// Flag reports a combat flag; ok is false for unknown names
func (c *Combatant) Flag(name string) (bool, bool) {
	v, ok := c.flags[name]
	return v, ok
}

// SetFlag sets a combat flag, rejecting unknown names
func (c *Combatant) SetFlag(name string, value bool) bool {
	if _, ok := c.flags[name]; !ok {
		return false
	}
	c.flags[name] = value
	return true
}

// Stunned reports whether the combatant loses their next turn
func (c *Combatant) Stunned() bool { return c.flags[FlagStunned] }

// Defending reports whether incoming damage is halved
func (c *Combatant) Defending() bool { return c.flags[FlagDefending] }

// AddEffect installs an effect: Apply fires once here and never again
func (c *Combatant) AddEffect(e effects.Effect) {
	e.Apply(c)
	c.activeEffects = append(c.activeEffects, e)
}

// Effects returns the active effects in installation order
func (c *Combatant) Effects() []effects.Effect {
	out := make([]effects.Effect, len(c.activeEffects))
	copy(out, c.activeEffects)
	return out
}

// EffectTick reports what one effect did during a processing pass
type EffectTick struct {
	Effect      string
	Type        effects.Type
	HealthDelta int
	Expired     bool
}

// ProcessEffects runs one pass over the active effects: each ticks, its
// duration decrements, and expired effects are removed in place.
func (c *Combatant) ProcessEffects() []EffectTick {
	var ticks []EffectTick
	kept := c.activeEffects[:0]

	for _, e := range c.activeEffects {
		before := c.base[StatHealth]
		e.Tick(c)
		tick := EffectTick{
			Effect:      e.Name(),
			Type:        e.Type(),
			HealthDelta: c.base[StatHealth] - before,
		}

		if e.TickDown() <= 0 {
			e.Remove(c)
			tick.Expired = true
		} else {
			kept = append(kept, e)
		}
		ticks = append(ticks, tick)
	}

	c.activeEffects = kept
	return ticks
}

// ResetCombatState removes every active effect and clears combat flags,
// leaving base stats as they stand.
func (c *Combatant) ResetCombatState() {
	for _, e := range c.activeEffects {
		e.Remove(c)
	}
	c.activeEffects = nil
	c.mods = StatBlock{}
	for name := range c.flags {
		c.flags[name] = false
	}
}

// AddExperience grants experience, accumulating it in the experience
// stat, and resolves every level the new total reaches. Returns whether
// at least one level was gained.
func (c *Combatant) AddExperience(amount int) bool {
	if amount < 0 {
		return false
	}
	c.base[StatExperience] += amount

	leveled := false
	for c.base[StatExperience] >= c.ExperienceToNextLevel() {
		c.LevelUp()
		leveled = true
	}
	return leveled
}

// ExperienceToNextLevel returns the cumulative experience needed for the
// next level.
func (c *Combatant) ExperienceToNextLevel() int { return c.level * 100 }

// SetLevel sets the level directly, skipping level-up gains. Used when
// restoring a persisted combatant whose stats already reflect its level.
func (c *Combatant) SetLevel(level int) {
	if level < 1 {
		level = 1
	}
	c.level = level
}

// LevelUp raises the level, applies variant stat gains, then fully
// restores health and energy.
func (c *Combatant) LevelUp() {
	c.level++
	if c.onLevelUp != nil {
		c.onLevelUp(c)
	}
	c.base[StatHealth] = c.Stat(StatMaxHealth)
	c.base[StatEnergy] = c.Stat(StatMaxEnergy)
}

// SetEquipmentBonuses replaces the equipment stat block, clamping current
// health and energy when the new maximums are lower.
func (c *Combatant) SetEquipmentBonuses(bonuses map[string]int) {
	c.equip = StatBlock{}
	for name, amount := range bonuses {
		if t, ok := StatTypeFromName(name); ok {
			c.equip[t] = amount
		}
	}
	if c.base[StatHealth] > c.Stat(StatMaxHealth) {
		c.base[StatHealth] = c.Stat(StatMaxHealth)
	}
	if c.base[StatEnergy] > c.Stat(StatMaxEnergy) {
		c.base[StatEnergy] = c.Stat(StatMaxEnergy)
	}
}

// Participant is either side of a battle
type Participant interface {
	core.Entity
	Base() *Combatant
}
