package items

// Slot names a fixed equipment position
type Slot string

// Equipment slots
const (
	SlotWeapon   Slot = "weapon"
	SlotHead     Slot = "head"
	SlotChest    Slot = "chest"
	SlotLegs     Slot = "legs"
	SlotFeet     Slot = "feet"
	SlotHands    Slot = "hands"
	SlotRing1    Slot = "ring1"
	SlotRing2    Slot = "ring2"
	SlotNecklace Slot = "necklace"
	SlotAccess   Slot = "accessory"
)

// AllSlots lists every slot in display order
var AllSlots = []Slot{
	SlotWeapon, SlotHead, SlotChest, SlotLegs, SlotFeet, SlotHands,
	SlotRing1, SlotRing2, SlotNecklace, SlotAccess,
}

// accessorySlots is the scan order when an accessory picks its own slot
var accessorySlots = []Slot{SlotRing1, SlotRing2, SlotNecklace, SlotAccess}

// armorSlots maps a SlotHint value to its body slot
var armorSlots = map[string]Slot{
	"head":  SlotHead,
	"chest": SlotChest,
	"legs":  SlotLegs,
	"feet":  SlotFeet,
	"hands": SlotHands,
}

// Set bonus thresholds: wearing this many pieces of one set grants the
// listed stat bonuses on top of the items' own.
var setBonuses = []struct {
	pieces  int
	bonuses map[string]int
}{
	{2, map[string]int{"attack": 5}},
	{4, map[string]int{"defense": 10}},
	{6, map[string]int{"max_health": 50}},
}

// Equipment holds what a combatant wears across the fixed slot set
type Equipment struct {
	slots map[Slot]*Item
}

// NewEquipment creates an empty equipment set
func NewEquipment() *Equipment {
	return &Equipment{slots: make(map[Slot]*Item)}
}

// Get returns the item in the slot, or nil
func (eq *Equipment) Get(slot Slot) *Item {
	return eq.slots[slot]
}

// Equipped returns the occupied slots and their items
func (eq *Equipment) Equipped() map[Slot]*Item {
	out := make(map[Slot]*Item, len(eq.slots))
	for s, it := range eq.slots {
		out[s] = it
	}
	return out
}

// Equip places the item into a slot. With no explicit slot the item's type
// decides: weapons take the weapon slot, armor follows its SlotHint, and
// accessories take the first free slot in ring1, ring2, necklace,
// accessory order. Returns false when the slot is occupied, the item is
// not equippable, or no slot can take it.
func (eq *Equipment) Equip(item *Item, slot ...Slot) bool {
	if item == nil || !item.IsEquippable() {
		return false
	}

	var target Slot
	if len(slot) > 0 {
		target = slot[0]
		if !eq.slotAccepts(target, item) {
			return false
		}
	} else {
		var ok bool
		target, ok = eq.resolveSlot(item)
		if !ok {
			return false
		}
	}

	if eq.slots[target] != nil {
		return false
	}
	eq.slots[target] = item
	return true
}

// Unequip removes and returns the item in the slot, or nil when empty
func (eq *Equipment) Unequip(slot Slot) *Item {
	item := eq.slots[slot]
	delete(eq.slots, slot)
	return item
}

// TotalBonuses recomputes the aggregate stat bonuses from every equipped
// item plus any set thresholds reached. The result is built from scratch
// each call so unequipping can never leave residue.
func (eq *Equipment) TotalBonuses() map[string]int {
	total := make(map[string]int)
	setCounts := make(map[string]int)

	for _, item := range eq.slots {
		for stat, amount := range item.StatBonuses {
			total[stat] += amount
		}
		if item.SetName != "" {
			setCounts[item.SetName]++
		}
	}

	for _, count := range setCounts {
		for _, tier := range setBonuses {
			if count >= tier.pieces {
				for stat, amount := range tier.bonuses {
					total[stat] += amount
				}
			}
		}
	}
	return total
}

// SetPieces returns how many pieces of the named set are worn
func (eq *Equipment) SetPieces(name string) int {
	count := 0
	for _, item := range eq.slots {
		if item.SetName == name {
			count++
		}
	}
	return count
}

func (eq *Equipment) resolveSlot(item *Item) (Slot, bool) {
	switch item.Type {
	case TypeWeapon:
		return SlotWeapon, true
	case TypeArmor:
		s, ok := armorSlots[item.SlotHint]
		return s, ok
	case TypeAccessory:
		for _, s := range accessorySlots {
			if eq.slots[s] == nil {
				return s, true
			}
		}
		return "", false
	default:
		return "", false
	}
}

func (eq *Equipment) slotAccepts(slot Slot, item *Item) bool {
	switch item.Type {
	case TypeWeapon:
		return slot == SlotWeapon
	case TypeArmor:
		hinted, ok := armorSlots[item.SlotHint]
		if ok {
			return slot == hinted
		}
		// Unhinted armor may go in any body slot.
		for _, s := range armorSlots {
			if s == slot {
				return true
			}
		}
		return false
	case TypeAccessory:
		for _, s := range accessorySlots {
			if s == slot {
				return true
			}
		}
		return false
	default:
		return false
	}
}
