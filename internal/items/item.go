// Package items implements owned items: consumables applied through the
// effect engine, and equipment contributing stat bonuses through fixed
// slots with set thresholds.
package items

import (
	"github.com/pocketrpg/battle-core/internal/effects"
)

// Type categorizes an item
type Type string

// Item categories
const (
	TypeConsumable Type = "consumable"
	TypeWeapon     Type = "weapon"
	TypeArmor      Type = "armor"
	TypeAccessory  Type = "accessory"
	TypeQuest      Type = "quest"
	TypeMaterial   Type = "material"
	TypeMisc       Type = "misc"
)

// Rarity grades how hard an item is to find
type Rarity string

// Rarity grades
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Quality grades an individual item's condition
type Quality string

// Quality grades
const (
	QualityPoor      Quality = "poor"
	QualityNormal    Quality = "normal"
	QualityGood      Quality = "good"
	QualityExcellent Quality = "excellent"
	QualityPerfect   Quality = "perfect"
)

// User is what an item needs from whoever uses it. Satisfied by the
// combatant model.
type User interface {
	Level() int
	ClassID() string
	Heal(amount int) int
	RestoreEnergy(amount int) int
	AddEffect(e effects.Effect)
}

// EffectSpec describes one consequence of consuming an item
type EffectSpec struct {
	// Kind is one of heal, restore_energy, or stat_boost
	Kind string `yaml:"kind" json:"kind"`
	// Amount is the heal/restore amount or the stat delta
	Amount int `yaml:"amount" json:"amount"`
	// Stat names the boosted stat for stat_boost specs
	Stat string `yaml:"stat,omitempty" json:"stat,omitempty"`
	// Duration is the boost duration in turns for stat_boost specs
	Duration int `yaml:"duration,omitempty" json:"duration,omitempty"`
}

// Effect spec kinds
const (
	SpecHeal          = "heal"
	SpecRestoreEnergy = "restore_energy"
	SpecStatBoost     = "stat_boost"
)

// Item is a single inventory entry. A stackable entry holds Quantity units
// up to MaxStack; non-stackable items always carry Quantity 1.
type Item struct {
	ID          string  `yaml:"id" json:"id"`
	Name        string  `yaml:"name" json:"name"`
	Type        Type    `yaml:"type" json:"type"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Rarity      Rarity  `yaml:"rarity,omitempty" json:"rarity"`
	Quality     Quality `yaml:"quality,omitempty" json:"quality"`
	Value       int     `yaml:"value,omitempty" json:"value"`
	Stackable   bool    `yaml:"stackable,omitempty" json:"stackable"`
	MaxStack    int     `yaml:"max_stack,omitempty" json:"max_stack"`
	Quantity    int     `yaml:"quantity,omitempty" json:"quantity"`

	LevelRequirement int    `yaml:"level_requirement,omitempty" json:"level_requirement,omitempty"`
	ClassRequirement string `yaml:"class_requirement,omitempty" json:"class_requirement,omitempty"`

	// Effects fire when a consumable is used
	Effects []EffectSpec `yaml:"effects,omitempty" json:"effects,omitempty"`

	// StatBonuses apply while the item is equipped, keyed by stat name
	StatBonuses map[string]int `yaml:"stat_bonuses,omitempty" json:"stat_bonuses,omitempty"`
	// SlotHint pins armor to a body slot (head, chest, legs, feet, hands)
	SlotHint string `yaml:"slot_hint,omitempty" json:"slot_hint,omitempty"`
	// SetName groups items for set bonuses
	SetName string `yaml:"set_name,omitempty" json:"set_name,omitempty"`
}

// Clone returns an independent copy of the item
func (i *Item) Clone() *Item {
	c := *i
	if i.Effects != nil {
		c.Effects = make([]EffectSpec, len(i.Effects))
		copy(c.Effects, i.Effects)
	}
	if i.StatBonuses != nil {
		c.StatBonuses = make(map[string]int, len(i.StatBonuses))
		for k, v := range i.StatBonuses {
			c.StatBonuses[k] = v
		}
	}
	return &c
}

// IsEquippable reports whether the item belongs in an equipment slot
func (i *Item) IsEquippable() bool {
	switch i.Type {
	case TypeWeapon, TypeArmor, TypeAccessory:
		return true
	default:
		return false
	}
}

// CanUse checks the user against the item's level and class requirements
func (i *Item) CanUse(user User) bool {
	if i.LevelRequirement > 0 && user.Level() < i.LevelRequirement {
		return false
	}
	if i.ClassRequirement != "" && user.ClassID() != i.ClassRequirement {
		return false
	}
	return true
}

// Use consumes one application of the item on the user. Only consumables
// are usable this way; equipment goes through Equipment.Equip instead.
// Returns false with no side effects when the item cannot be used.
func (i *Item) Use(user User) bool {
	if i.Type != TypeConsumable {
		return false
	}
	if i.Quantity <= 0 {
		return false
	}
	if !i.CanUse(user) {
		return false
	}

	for _, spec := range i.Effects {
		applyEffectSpec(user, spec)
	}
	i.Quantity--
	return true
}

func applyEffectSpec(user User, spec EffectSpec) {
	switch spec.Kind {
	case SpecHeal:
		user.Heal(spec.Amount)
	case SpecRestoreEnergy:
		user.RestoreEnergy(spec.Amount)
	case SpecStatBoost:
		duration := spec.Duration
		if duration <= 0 {
			duration = 3
		}
		user.AddEffect(effects.NewStatModifier(
			spec.Stat+" boost",
			effects.TypeBuff,
			duration,
			map[string]int{spec.Stat: spec.Amount},
		))
	}
}
