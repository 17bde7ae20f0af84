package items

// DefaultCapacity is the slot capacity of a fresh inventory
const DefaultCapacity = 50

// Inventory is a capacity-bounded, insertion-ordered collection of item
// slots. Stackable items grow existing stacks up to their max before
// spilling into new slots; the same name may occupy several slots.
// Non-stackable items always occupy one slot each.
type Inventory struct {
	capacity int
	slots    []*Item
}

// NewInventory creates an inventory with the given slot capacity; zero or
// negative capacity falls back to the default.
func NewInventory(capacity int) *Inventory {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Inventory{capacity: capacity}
}

// Capacity returns the total slot capacity
func (inv *Inventory) Capacity() int { return inv.capacity }

// UsedSlots returns the number of occupied slots
func (inv *Inventory) UsedSlots() int { return len(inv.slots) }

// FreeSlots returns the number of unoccupied slots
func (inv *Inventory) FreeSlots() int { return inv.capacity - len(inv.slots) }

// IsFull reports whether every slot is occupied
func (inv *Inventory) IsFull() bool { return len(inv.slots) >= inv.capacity }

// Add stores quantity units of the item. Existing stacks grow to max
// first; overflow spills into new slots. Returns false with no mutation
// when the full quantity cannot fit.
func (inv *Inventory) Add(item *Item, quantity int) bool {
	if item == nil || quantity <= 0 {
		return false
	}

	if !item.Stackable {
		if quantity > inv.FreeSlots() {
			return false
		}
		for i := 0; i < quantity; i++ {
			entry := item.Clone()
			entry.Quantity = 1
			inv.slots = append(inv.slots, entry)
		}
		return true
	}

	maxStack := item.MaxStack
	if maxStack <= 0 {
		maxStack = 1
	}

	// Capacity check happens up front so a failed add never mutates.
	room := inv.FreeSlots() * maxStack
	for _, slot := range inv.slots {
		if slot.Name == item.Name && slot.Stackable {
			room += slot.MaxStack - slot.Quantity
		}
	}
	if quantity > room {
		return false
	}

	remaining := quantity
	for _, slot := range inv.slots {
		if remaining == 0 {
			break
		}
		if slot.Name != item.Name || !slot.Stackable {
			continue
		}
		grow := slot.MaxStack - slot.Quantity
		if grow > remaining {
			grow = remaining
		}
		slot.Quantity += grow
		remaining -= grow
	}
	for remaining > 0 {
		entry := item.Clone()
		entry.MaxStack = maxStack
		entry.Quantity = remaining
		if entry.Quantity > maxStack {
			entry.Quantity = maxStack
		}
		remaining -= entry.Quantity
		inv.slots = append(inv.slots, entry)
	}
	return true
}

// Remove takes quantity units of the named item, consuming the oldest
// stacks first and deleting slots that empty. Returns false with no
// mutation when the held quantity is insufficient.
func (inv *Inventory) Remove(name string, quantity int) bool {
	if quantity <= 0 || inv.Count(name) < quantity {
		return false
	}

	remaining := quantity
	kept := inv.slots[:0]
	for _, slot := range inv.slots {
		if remaining > 0 && slot.Name == name {
			take := slot.Quantity
			if take > remaining {
				take = remaining
			}
			slot.Quantity -= take
			remaining -= take
			if slot.Quantity == 0 {
				continue
			}
		}
		kept = append(kept, slot)
	}
	inv.slots = kept
	return true
}

// Get returns the oldest slot holding the named item, or nil
func (inv *Inventory) Get(name string) *Item {
	for _, slot := range inv.slots {
		if slot.Name == name {
			return slot
		}
	}
	return nil
}

// Has reports whether at least quantity units of the named item are held
func (inv *Inventory) Has(name string, quantity int) bool {
	return inv.Count(name) >= quantity
}

// Count returns the held quantity of the named item across all stacks
func (inv *Inventory) Count(name string) int {
	total := 0
	for _, slot := range inv.slots {
		if slot.Name == name {
			total += slot.Quantity
		}
	}
	return total
}

// Items returns all slots in insertion order
func (inv *Inventory) Items() []*Item {
	out := make([]*Item, len(inv.slots))
	copy(out, inv.slots)
	return out
}

// ItemsByType returns slots of the given type in insertion order
func (inv *Inventory) ItemsByType(t Type) []*Item {
	var out []*Item
	for _, slot := range inv.slots {
		if slot.Type == t {
			out = append(out, slot)
		}
	}
	return out
}

// TotalValue sums value times quantity over all slots
func (inv *Inventory) TotalValue() int {
	total := 0
	for _, slot := range inv.slots {
		total += slot.Value * slot.Quantity
	}
	return total
}

// Use applies the named item to the user, consuming one unit on success.
// Returns false for absent items, failed requirements, and non-consumable
// types; failure leaves the inventory untouched.
func (inv *Inventory) Use(name string, user User) bool {
	slot := inv.Get(name)
	if slot == nil {
		return false
	}

	if !slot.Use(user) {
		return false
	}

	if slot.Quantity <= 0 {
		kept := inv.slots[:0]
		for _, s := range inv.slots {
			if s != slot {
				kept = append(kept, s)
			}
		}
		inv.slots = kept
	}
	return true
}
