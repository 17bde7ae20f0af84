// Package content loads and serves game definitions: enemies, items,
// regions, and activities. Definitions come from YAML files and are
// validated once at ingestion so a bad definition can never reach an
// encounter.
package content

import (
	"github.com/pocketrpg/battle-core/internal/entities"
	"github.com/pocketrpg/battle-core/internal/items"
)

//go:generate mockgen -destination=mock/mock_provider.go -package=contentmock github.com/pocketrpg/battle-core/internal/content Provider

// EnemyTemplate defines an enemy kind that encounters spawn from
type EnemyTemplate struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Tier     entities.Tier     `yaml:"tier"`
	Behavior entities.Behavior `yaml:"behavior"`
	Loot     []LootDef         `yaml:"loot,omitempty"`
}

// LootDef is one loot table row in an enemy definition
type LootDef struct {
	ItemID   string `yaml:"item_id"`
	Chance   int    `yaml:"chance"`
	Quantity int    `yaml:"quantity,omitempty"`
}

// Region gates activities and encounters by level band
type Region struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	// Level is the intended player level for the region
	Level int `yaml:"level"`
	// EnemyLevelBonus shifts spawned enemy levels
	EnemyLevelBonus int `yaml:"enemy_level_bonus,omitempty"`
	// Enemies lists template IDs that spawn here
	Enemies []string `yaml:"enemies,omitempty"`
	// Activities lists activity IDs available here
	Activities []string `yaml:"activities,omitempty"`
	// Neighbors lists adjacent region IDs
	Neighbors []string `yaml:"neighbors,omitempty"`
	// RequiredLevel locks the region below a player level
	RequiredLevel int `yaml:"required_level,omitempty"`
}

// Activity is something a player can do in a region
type Activity struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Description   string `yaml:"description,omitempty"`
	RequiredLevel int    `yaml:"required_level,omitempty"`
	// EnergyCost is deducted when the activity starts
	EnergyCost int `yaml:"energy_cost,omitempty"`
}

// Provider serves validated game definitions
type Provider interface {
	EnemyTemplate(id string) (*EnemyTemplate, bool)
	ItemDef(id string) (*items.Item, bool)
	Region(id string) (*Region, bool)
	Activity(id string) (*Activity, bool)
}
