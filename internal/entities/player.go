package entities

import (
	"github.com/pocketrpg/battle-core/internal/items"
)

// Class identifies a player class
type Class string

// Player classes
const (
	ClassWarrior Class = "warrior"
	ClassMage    Class = "mage"
	ClassRogue   Class = "rogue"
	ClassCleric  Class = "cleric"
)

// Classes lists every playable class
var Classes = []Class{ClassWarrior, ClassMage, ClassRogue, ClassCleric}

// ValidClass reports whether the class is playable
func ValidClass(c Class) bool {
	for _, known := range Classes {
		if c == known {
			return true
		}
	}
	return false
}

// playerBase is the stat line every class starts from
var playerBase = StatBlock{
	StatHealth:    120,
	StatMaxHealth: 120,
	StatEnergy:    60,
	StatMaxEnergy: 60,
	StatAttack:    12,
	StatDefense:   8,
	StatSpeed:     10,
}

// classCreationBonuses shift the starting stat line per class
var classCreationBonuses = map[Class]StatBlock{
	ClassWarrior: {
		StatHealth: 30, StatMaxHealth: 30,
		StatAttack: 5, StatDefense: 3,
	},
	ClassMage: {
		StatEnergy: 40, StatMaxEnergy: 40,
		StatAttack: 3, StatSpeed: 2,
	},
	ClassRogue: {
		StatSpeed: 5, StatAttack: 4, StatDefense: 1,
	},
	ClassCleric: {
		StatHealth: 20, StatMaxHealth: 20,
		StatEnergy: 30, StatMaxEnergy: 30,
		StatDefense: 2,
	},
}

// classLevelBonuses apply on top of the shared level-up gains
var classLevelBonuses = map[Class]StatBlock{
	ClassWarrior: {StatMaxHealth: 15, StatAttack: 3, StatDefense: 2},
	ClassMage:    {StatMaxEnergy: 10, StatAttack: 3, StatSpeed: 1},
	ClassRogue:   {StatAttack: 4, StatSpeed: 2, StatDefense: 1},
	ClassCleric:  {StatMaxHealth: 12, StatMaxEnergy: 8, StatDefense: 2},
}

// Player is a user-controlled combatant with a class, currency, inventory,
// and equipment.
type Player struct {
	*Combatant

	class       Class
	gold        int
	skillPoints int

	Inventory *items.Inventory
	Equipment *items.Equipment
}

var _ Participant = (*Player)(nil)

// NewPlayer creates a level 1 player of the given class
func NewPlayer(id, name string, class Class) *Player {
	base := playerBase
	for t, bonus := range classCreationBonuses[class] {
		base[t] += bonus
	}

	c := newCombatant(id, name, "player", base)
	c.classID = string(class)

	p := &Player{
		Combatant: c,
		class:     class,
		Inventory: items.NewInventory(0),
		Equipment: items.NewEquipment(),
	}
	c.onLevelUp = p.applyLevelBonuses
	return p
}

// Base returns the shared combatant machinery
func (p *Player) Base() *Combatant { return p.Combatant }

// Class returns the player's class
func (p *Player) Class() Class { return p.class }

// Gold returns the current gold balance
func (p *Player) Gold() int { return p.gold }

// SkillPoints returns the unspent skill points
func (p *Player) SkillPoints() int { return p.skillPoints }

// SetSkillPoints sets the unspent skill point balance. Used when
// restoring a persisted player.
func (p *Player) SetSkillPoints(points int) {
	if points < 0 {
		points = 0
	}
	p.skillPoints = points
}

// AddGold credits gold; the balance never drops below zero
func (p *Player) AddGold(amount int) {
	p.gold += amount
	if p.gold < 0 {
		p.gold = 0
	}
}

// SpendGold debits gold, failing without mutation on insufficient funds
func (p *Player) SpendGold(amount int) bool {
	if amount < 0 || p.gold < amount {
		return false
	}
	p.gold -= amount
	return true
}

// applyLevelBonuses grants the shared gains, the class gains, and a skill
// point. Runs once per level as the level-up hook.
func (p *Player) applyLevelBonuses(c *Combatant) {
	c.ModifyStat(StatMaxHealth, 10)
	c.ModifyStat(StatMaxEnergy, 5)
	c.ModifyStat(StatAttack, 2)
	c.ModifyStat(StatDefense, 1)
	c.ModifyStat(StatSpeed, 1)

	for t, bonus := range classLevelBonuses[p.class] {
		c.ModifyStat(StatType(t), bonus)
	}
	p.skillPoints++
}

// Equip moves an item from the inventory into an equipment slot and
// refreshes the equipment stat bonuses. Fails without mutation when the
// item is absent, unusable, or the slot cannot take it.
func (p *Player) Equip(name string, slot ...items.Slot) bool {
	held := p.Inventory.Get(name)
	if held == nil || !held.CanUse(p) {
		return false
	}
	item := held.Clone()
	item.Quantity = 1
	if !p.Equipment.Equip(item, slot...) {
		return false
	}
	p.Inventory.Remove(name, 1)
	p.refreshEquipment()
	return true
}

// Unequip returns an equipped item to the inventory and refreshes the
// equipment stat bonuses. Fails when the slot is empty or the inventory
// cannot take the item back.
func (p *Player) Unequip(slot items.Slot) bool {
	item := p.Equipment.Get(slot)
	if item == nil {
		return false
	}
	if !p.Inventory.Add(item, 1) {
		return false
	}
	p.Equipment.Unequip(slot)
	p.refreshEquipment()
	return true
}

// UseItem consumes an inventory item on the player
func (p *Player) UseItem(name string) bool {
	return p.Inventory.Use(name, p)
}

// EffectiveStats returns the full stat line including effect modifiers and
// equipment bonuses.
func (p *Player) EffectiveStats() StatBlock {
	var out StatBlock
	for t := StatType(0); t < numStats; t++ {
		out[t] = p.Stat(t)
	}
	return out
}

func (p *Player) refreshEquipment() {
	p.SetEquipmentBonuses(p.Equipment.TotalBonuses())
}
