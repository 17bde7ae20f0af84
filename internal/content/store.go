package content

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pocketrpg/battle-core/internal/entities"
	"github.com/pocketrpg/battle-core/internal/errors"
	"github.com/pocketrpg/battle-core/internal/items"
)

// Definition subdirectories under a content root
const (
	enemiesDir    = "enemies"
	itemsDir      = "items"
	regionsDir    = "regions"
	activitiesDir = "activities"
)

// Store is an in-memory Provider loaded from a YAML content directory.
// Every definition is validated at load; a store that constructs without
// error serves only well-formed content.
type Store struct {
	enemies    map[string]*EnemyTemplate
	itemDefs   map[string]*items.Item
	regions    map[string]*Region
	activities map[string]*Activity
}

var _ Provider = (*Store)(nil)

// LoadDir reads every YAML definition under root (enemies/, items/,
// regions/, activities/) and validates the whole set, including
// cross-references like loot item IDs.
func LoadDir(root string) (*Store, error) {
	s := &Store{
		enemies:    make(map[string]*EnemyTemplate),
		itemDefs:   make(map[string]*items.Item),
		regions:    make(map[string]*Region),
		activities: make(map[string]*Activity),
	}

	if err := loadAll(filepath.Join(root, itemsDir), func(path string) error {
		return s.loadItem(path)
	}); err != nil {
		return nil, err
	}
	if err := loadAll(filepath.Join(root, enemiesDir), func(path string) error {
		return s.loadEnemy(path)
	}); err != nil {
		return nil, err
	}
	if err := loadAll(filepath.Join(root, activitiesDir), func(path string) error {
		return s.loadActivity(path)
	}); err != nil {
		return nil, err
	}
	if err := loadAll(filepath.Join(root, regionsDir), func(path string) error {
		return s.loadRegion(path)
	}); err != nil {
		return nil, err
	}

	return s, nil
}

// loadAll walks one definition directory. A missing directory is fine;
// the content set simply has no definitions of that kind.
func loadAll(dir string, load func(path string) error) error {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to read content directory %s", dir)
	}

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		if err := load(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func decodeFile(path string, out interface{}) error {
	data, err := os.ReadFile(path) // #nosec G304 -- paths come from walking the configured content root
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", path)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed definition "+path)
	}
	return nil
}

func (s *Store) loadItem(path string) error {
	var def items.Item
	if err := decodeFile(path, &def); err != nil {
		return err
	}

	vb := errors.NewValidationBuilder()
	if def.ID == "" {
		vb.RequiredField("id")
	}
	if def.Name == "" {
		vb.RequiredField("name")
	}
	switch def.Type {
	case items.TypeConsumable, items.TypeWeapon, items.TypeArmor,
		items.TypeAccessory, items.TypeQuest, items.TypeMaterial, items.TypeMisc:
	default:
		vb.InvalidField("type", "unknown item type "+string(def.Type))
	}
	if def.Value < 0 {
		vb.InvalidField("value", "must not be negative")
	}
	if def.Stackable && def.MaxStack < 1 {
		vb.InvalidField("max_stack", "stackable items need a positive max stack")
	}
	for stat := range def.StatBonuses {
		if _, ok := entities.StatTypeFromName(stat); !ok {
			vb.InvalidField("stat_bonuses", "unknown stat "+stat)
		}
	}
	for _, spec := range def.Effects {
		switch spec.Kind {
		case items.SpecHeal, items.SpecRestoreEnergy:
			if spec.Amount <= 0 {
				vb.InvalidField("effects", spec.Kind+" amount must be positive")
			}
		case items.SpecStatBoost:
			if _, ok := entities.StatTypeFromName(spec.Stat); !ok {
				vb.InvalidField("effects", "unknown stat "+spec.Stat)
			}
		default:
			vb.InvalidField("effects", "unknown effect kind "+spec.Kind)
		}
	}
	if err := vb.Build(); err != nil {
		return errors.Wrapf(err, "invalid item definition %s", path)
	}
	if _, dup := s.itemDefs[def.ID]; dup {
		return errors.AlreadyExistsf("duplicate item definition %s", def.ID)
	}

	item := def
	if item.Quality == "" {
		item.Quality = items.QualityNormal
	}
	if item.Rarity == "" {
		item.Rarity = items.RarityCommon
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	s.itemDefs[def.ID] = &item
	return nil
}

func (s *Store) loadEnemy(path string) error {
	var def EnemyTemplate
	if err := decodeFile(path, &def); err != nil {
		return err
	}

	vb := errors.NewValidationBuilder()
	if def.ID == "" {
		vb.RequiredField("id")
	}
	if def.Name == "" {
		vb.RequiredField("name")
	}
	if !entities.ValidTier(def.Tier) {
		vb.InvalidField("tier", "unknown tier "+string(def.Tier))
	}
	if !entities.ValidBehavior(def.Behavior) {
		vb.InvalidField("behavior", "unknown behavior "+string(def.Behavior))
	}
	for _, loot := range def.Loot {
		if _, ok := s.itemDefs[loot.ItemID]; !ok {
			vb.InvalidField("loot", "unknown item "+loot.ItemID)
		}
		if loot.Chance < 0 || loot.Chance > 100 {
			vb.InvalidField("loot", "chance must be within [0,100]")
		}
		if loot.Quantity < 0 {
			vb.InvalidField("loot", "quantity must not be negative")
		}
	}
	if err := vb.Build(); err != nil {
		return errors.Wrapf(err, "invalid enemy definition %s", path)
	}
	if _, dup := s.enemies[def.ID]; dup {
		return errors.AlreadyExistsf("duplicate enemy definition %s", def.ID)
	}

	s.enemies[def.ID] = &def
	return nil
}

func (s *Store) loadActivity(path string) error {
	var def Activity
	if err := decodeFile(path, &def); err != nil {
		return err
	}

	vb := errors.NewValidationBuilder()
	if def.ID == "" {
		vb.RequiredField("id")
	}
	if def.Name == "" {
		vb.RequiredField("name")
	}
	if def.EnergyCost < 0 {
		vb.InvalidField("energy_cost", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return errors.Wrapf(err, "invalid activity definition %s", path)
	}
	if _, dup := s.activities[def.ID]; dup {
		return errors.AlreadyExistsf("duplicate activity definition %s", def.ID)
	}

	s.activities[def.ID] = &def
	return nil
}

func (s *Store) loadRegion(path string) error {
	var def Region
	if err := decodeFile(path, &def); err != nil {
		return err
	}

	vb := errors.NewValidationBuilder()
	if def.ID == "" {
		vb.RequiredField("id")
	}
	if def.Name == "" {
		vb.RequiredField("name")
	}
	if def.Level < 1 {
		vb.InvalidField("level", "must be at least 1")
	}
	for _, enemyID := range def.Enemies {
		if _, ok := s.enemies[enemyID]; !ok {
			vb.InvalidField("enemies", "unknown enemy "+enemyID)
		}
	}
	for _, activityID := range def.Activities {
		if _, ok := s.activities[activityID]; !ok {
			vb.InvalidField("activities", "unknown activity "+activityID)
		}
	}
	if err := vb.Build(); err != nil {
		return errors.Wrapf(err, "invalid region definition %s", path)
	}
	if _, dup := s.regions[def.ID]; dup {
		return errors.AlreadyExistsf("duplicate region definition %s", def.ID)
	}

	s.regions[def.ID] = &def
	return nil
}

// EnemyTemplate returns the enemy definition with the given ID
func (s *Store) EnemyTemplate(id string) (*EnemyTemplate, bool) {
	def, ok := s.enemies[id]
	return def, ok
}

// ItemDef returns the item definition with the given ID
func (s *Store) ItemDef(id string) (*items.Item, bool) {
	def, ok := s.itemDefs[id]
	return def, ok
}

// Region returns the region definition with the given ID
func (s *Store) Region(id string) (*Region, bool) {
	def, ok := s.regions[id]
	return def, ok
}

// Activity returns the activity definition with the given ID
func (s *Store) Activity(id string) (*Activity, bool) {
	def, ok := s.activities[id]
	return def, ok
}

// Spawn constructs a fresh enemy from a template at the given level,
// loot table included.
func Spawn(p Provider, templateID, enemyID string, level int) (*entities.Enemy, error) {
	tmpl, ok := p.EnemyTemplate(templateID)
	if !ok {
		return nil, errors.NotFoundf("enemy template %s not found", templateID)
	}

	enemy := entities.NewEnemy(enemyID, tmpl.Name, level, tmpl.Tier, tmpl.Behavior)
	for _, loot := range tmpl.Loot {
		quantity := loot.Quantity
		if quantity == 0 {
			quantity = 1
		}
		enemy.AddLootEntry(loot.ItemID, loot.Chance, quantity)
	}
	return enemy, nil
}
