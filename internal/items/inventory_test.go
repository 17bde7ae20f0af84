package items_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/pocketrpg/battle-core/internal/effects"
	"github.com/pocketrpg/battle-core/internal/items"
)

// fakeUser satisfies items.User for consumable tests
type fakeUser struct {
	lvl      int
	class    string
	healed   int
	restored int
	effects  []effects.Effect
}

func (f *fakeUser) Level() int      { return f.lvl }
func (f *fakeUser) ClassID() string { return f.class }

func (f *fakeUser) Heal(amount int) int {
	f.healed += amount
	return amount
}

func (f *fakeUser) RestoreEnergy(amount int) int {
	f.restored += amount
	return amount
}

func (f *fakeUser) AddEffect(e effects.Effect) {
	f.effects = append(f.effects, e)
}

type InventorySuite struct {
	suite.Suite
	inv *items.Inventory
}

func (s *InventorySuite) SetupTest() {
	s.inv = items.NewInventory(10)
}

func potion(quantity int) *items.Item {
	return &items.Item{
		Name:      "health potion",
		Type:      items.TypeConsumable,
		Rarity:    items.RarityCommon,
		Value:     25,
		Stackable: true,
		MaxStack:  5,
		Quantity:  quantity,
		Effects:   []items.EffectSpec{{Kind: items.SpecHeal, Amount: 30}},
	}
}

func sword() *items.Item {
	return &items.Item{
		Name:        "iron sword",
		Type:        items.TypeWeapon,
		Rarity:      items.RarityCommon,
		Value:       100,
		Quantity:    1,
		StatBonuses: map[string]int{"attack": 5},
	}
}

func (s *InventorySuite) TestAddStacksThenSpills() {
	s.True(s.inv.Add(potion(1), 3))
	s.True(s.inv.Add(potion(1), 4))

	// 7 units over a max stack of 5: one full stack plus a spill stack.
	s.Equal(7, s.inv.Count("health potion"))
	s.Equal(2, s.inv.UsedSlots())

	stacks := s.inv.Items()
	s.Equal(5, stacks[0].Quantity)
	s.Equal(2, stacks[1].Quantity)
}

func (s *InventorySuite) TestAddConservesQuantity() {
	testCases := []struct {
		name  string
		adds  []int
		total int
	}{
		{name: "single add", adds: []int{3}, total: 3},
		{name: "two adds within one stack", adds: []int{2, 2}, total: 4},
		{name: "spill across stacks", adds: []int{4, 4, 4}, total: 12},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			inv := items.NewInventory(10)
			for _, q := range tc.adds {
				s.True(inv.Add(potion(1), q))
			}
			s.Equal(tc.total, inv.Count("health potion"))
		})
	}
}

func (s *InventorySuite) TestAddFailsWithoutMutation() {
	inv := items.NewInventory(1)
	s.True(inv.Add(potion(1), 5))

	// No free slot and the existing stack is full.
	s.False(inv.Add(potion(1), 1))
	s.Equal(5, inv.Count("health potion"))
	s.Equal(1, inv.UsedSlots())
}

func (s *InventorySuite) TestAddPartialOverflowLeavesNothingBehind() {
	inv := items.NewInventory(2)
	s.True(inv.Add(potion(1), 8))

	// Room for 2 more units in the second stack, not 3.
	s.False(inv.Add(potion(1), 3))
	s.Equal(8, inv.Count("health potion"))
}

func (s *InventorySuite) TestNonStackableOccupyOneSlotEach() {
	s.True(s.inv.Add(sword(), 1))
	s.True(s.inv.Add(sword(), 1))

	s.Equal(2, s.inv.UsedSlots())
	s.Equal(2, s.inv.Count("iron sword"))
	for _, it := range s.inv.Items() {
		s.Equal(1, it.Quantity)
	}
}

func (s *InventorySuite) TestCapacityBound() {
	inv := items.NewInventory(2)
	axe := sword()
	axe.Name = "battle axe"
	shield := sword()
	shield.Name = "oak shield"

	s.True(inv.Add(sword(), 1))
	s.True(inv.Add(axe, 1))
	s.True(inv.IsFull())

	s.False(inv.Add(shield, 1))
	s.Equal(2, inv.UsedSlots())
	s.Equal(2, inv.Capacity())
}

func (s *InventorySuite) TestRemoveConsumesOldestFirst() {
	s.True(s.inv.Add(potion(1), 5))
	s.True(s.inv.Add(potion(1), 3))

	s.True(s.inv.Remove("health potion", 6))
	s.Equal(2, s.inv.Count("health potion"))
	s.Equal(1, s.inv.UsedSlots())
}

func (s *InventorySuite) TestRemoveInsufficientQuantity() {
	s.True(s.inv.Add(potion(1), 2))
	s.False(s.inv.Remove("health potion", 3))
	s.Equal(2, s.inv.Count("health potion"))
}

func (s *InventorySuite) TestUseConsumesOneUnit() {
	user := &fakeUser{lvl: 1, class: "warrior"}
	s.True(s.inv.Add(potion(1), 2))

	s.True(s.inv.Use("health potion", user))
	s.Equal(30, user.healed)
	s.Equal(1, s.inv.Count("health potion"))
}

func (s *InventorySuite) TestUseRemovesEmptiedSlot() {
	user := &fakeUser{lvl: 1}
	s.True(s.inv.Add(potion(1), 1))

	s.True(s.inv.Use("health potion", user))
	s.Equal(0, s.inv.UsedSlots())
	s.False(s.inv.Use("health potion", user))
}

func (s *InventorySuite) TestUseRejectsEquipment() {
	user := &fakeUser{lvl: 1}
	s.True(s.inv.Add(sword(), 1))

	s.False(s.inv.Use("iron sword", user))
	s.Equal(1, s.inv.Count("iron sword"))
}

func (s *InventorySuite) TestUseChecksRequirements() {
	user := &fakeUser{lvl: 1, class: "mage"}
	elixir := potion(1)
	elixir.Name = "warrior elixir"
	elixir.ClassRequirement = "warrior"
	s.True(s.inv.Add(elixir, 1))

	s.False(s.inv.Use("warrior elixir", user))
	s.Equal(1, s.inv.Count("warrior elixir"))
}

func (s *InventorySuite) TestStatBoostConsumableAddsEffect() {
	user := &fakeUser{lvl: 1}
	tonic := &items.Item{
		Name:      "battle tonic",
		Type:      items.TypeConsumable,
		Stackable: true,
		MaxStack:  3,
		Quantity:  1,
		Effects: []items.EffectSpec{
			{Kind: items.SpecStatBoost, Stat: "attack", Amount: 4, Duration: 2},
			{Kind: items.SpecRestoreEnergy, Amount: 10},
		},
	}
	s.True(s.inv.Add(tonic, 1))

	s.True(s.inv.Use("battle tonic", user))
	s.Equal(10, user.restored)
	s.Require().Len(user.effects, 1)
	s.Equal(effects.TypeBuff, user.effects[0].Type())
	s.Equal(2, user.effects[0].Duration())
}

func (s *InventorySuite) TestTotalValue() {
	s.True(s.inv.Add(potion(1), 4))
	s.True(s.inv.Add(sword(), 1))
	s.Equal(4*25+100, s.inv.TotalValue())
}

func (s *InventorySuite) TestItemsByType() {
	s.True(s.inv.Add(potion(1), 2))
	s.True(s.inv.Add(sword(), 1))

	weapons := s.inv.ItemsByType(items.TypeWeapon)
	s.Require().Len(weapons, 1)
	s.Equal("iron sword", weapons[0].Name)
}

func TestInventorySuite(t *testing.T) {
	suite.Run(t, new(InventorySuite))
}
