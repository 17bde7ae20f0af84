package players

import (
	"github.com/pocketrpg/battle-core/internal/entities"
	"github.com/pocketrpg/battle-core/internal/errors"
	"github.com/pocketrpg/battle-core/internal/items"
)

// Data is the serialized form of a player. It captures the raw stat
// line without effect modifiers or equipment bonuses; those are
// recomputed on restore.
type Data struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Class       entities.Class `json:"class"`
	Level       int            `json:"level"`
	Stats       map[string]int `json:"stats"`
	Gold        int            `json:"gold"`
	SkillPoints int            `json:"skill_points"`

	InventoryCapacity int                        `json:"inventory_capacity"`
	Inventory         []*items.Item              `json:"inventory,omitempty"`
	Equipment         map[items.Slot]*items.Item `json:"equipment,omitempty"`

	CreatedAt int64 `json:"created_at,omitempty"`
	UpdatedAt int64 `json:"updated_at,omitempty"`
}

// Clone returns a deep copy of the snapshot.
func (d *Data) Clone() *Data {
	if d == nil {
		return nil
	}
	out := *d
	if d.Stats != nil {
		out.Stats = make(map[string]int, len(d.Stats))
		for name, value := range d.Stats {
			out.Stats[name] = value
		}
	}
	if d.Inventory != nil {
		out.Inventory = make([]*items.Item, len(d.Inventory))
		for i, item := range d.Inventory {
			out.Inventory[i] = item.Clone()
		}
	}
	if d.Equipment != nil {
		out.Equipment = make(map[items.Slot]*items.Item, len(d.Equipment))
		for slot, item := range d.Equipment {
			out.Equipment[slot] = item.Clone()
		}
	}
	return &out
}

// Snapshot captures the persistent state of a live player.
func Snapshot(p *entities.Player) *Data {
	if p == nil {
		return nil
	}

	d := &Data{
		ID:                p.GetID(),
		Name:              p.Name(),
		Class:             p.Class(),
		Level:             p.Level(),
		Stats:             p.BaseStats().ToMap(),
		Gold:              p.Gold(),
		SkillPoints:       p.SkillPoints(),
		InventoryCapacity: p.Inventory.Capacity(),
	}

	for _, held := range p.Inventory.Items() {
		d.Inventory = append(d.Inventory, held.Clone())
	}

	equipped := p.Equipment.Equipped()
	if len(equipped) > 0 {
		d.Equipment = make(map[items.Slot]*items.Item, len(equipped))
		for slot, item := range equipped {
			d.Equipment[slot] = item.Clone()
		}
	}
	return d
}

// Restore rebuilds a live player from a snapshot. Equipment is
// re-equipped before the stat line is applied so the stored health and
// energy survive the equipment bonus recomputation.
func Restore(d *Data) (*entities.Player, error) {
	if d == nil {
		return nil, errors.InvalidArgument("player data cannot be nil")
	}
	if d.ID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}
	if !entities.ValidClass(d.Class) {
		return nil, errors.InvalidArgumentf("unknown class %q", d.Class)
	}

	p := entities.NewPlayer(d.ID, d.Name, d.Class)
	p.SetLevel(d.Level)
	p.SetSkillPoints(d.SkillPoints)
	p.AddGold(d.Gold)

	p.Inventory = items.NewInventory(d.InventoryCapacity)
	for _, stored := range d.Inventory {
		p.Inventory.Add(stored.Clone(), stored.Quantity)
	}

	for slot, stored := range d.Equipment {
		p.Equipment.Equip(stored.Clone(), slot)
	}
	p.SetEquipmentBonuses(p.Equipment.TotalBonuses())

	for name, value := range d.Stats {
		if t, ok := entities.StatTypeFromName(name); ok {
			p.SetStat(t, value)
		}
	}
	return p, nil
}
