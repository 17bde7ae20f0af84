package testutils

import (
	"github.com/pocketrpg/battle-core/internal/entities"
	"github.com/pocketrpg/battle-core/internal/items"
)

// TestPlayerName is the default player name for test fixtures
const TestPlayerName = "Aldric"

// CreateTestPlayer creates a level 1 warrior with sensible defaults
func CreateTestPlayer(id string) *entities.Player {
	return entities.NewPlayer(id, TestPlayerName, entities.ClassWarrior)
}

// CreateTestEnemy creates a common-tier aggressive enemy
func CreateTestEnemy(id string) *entities.Enemy {
	return entities.NewEnemy(id, "Goblin", 1, entities.TierNormal, entities.BehaviorAggressive)
}

// CreateTestPotion creates a stackable consumable that restores health
func CreateTestPotion() *items.Item {
	return &items.Item{
		ID:        "health_potion",
		Name:      "Health Potion",
		Type:      items.TypeConsumable,
		Stackable: true,
		MaxStack:  10,
		Quantity:  1,
		Value:     25,
		Effects: []items.EffectSpec{
			{Kind: "heal", Amount: 30},
		},
	}
}

// CreateTestWeapon creates an equippable weapon with an attack bonus
func CreateTestWeapon() *items.Item {
	return &items.Item{
		ID:       "iron_sword",
		Name:     "Iron Sword",
		Type:     items.TypeWeapon,
		Quantity: 1,
		Value:    80,
		StatBonuses: map[string]int{
			"attack": 5,
		},
	}
}
