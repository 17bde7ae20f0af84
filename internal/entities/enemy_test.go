package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/pocketrpg/battle-core/internal/entities"
	"github.com/pocketrpg/battle-core/internal/pkg/rng"
)

type EnemySuite struct {
	suite.Suite
}

func (s *EnemySuite) TestTierBonusesRaiseBothHealthPools() {
	testCases := []struct {
		name   string
		tier   entities.Tier
		health int
		attack int
	}{
		{name: "normal", tier: entities.TierNormal, health: 80, attack: 8},
		{name: "elite", tier: entities.TierElite, health: 130, attack: 13},
		{name: "miniboss", tier: entities.TierMiniboss, health: 180, attack: 16},
		{name: "boss", tier: entities.TierBoss, health: 280, attack: 23},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			e := entities.NewEnemy("e", "goblin", 1, tc.tier, entities.BehaviorBalanced)
			s.Equal(tc.health, e.Stat(entities.StatHealth))
			s.Equal(tc.health, e.Stat(entities.StatMaxHealth))
			s.Equal(tc.attack, e.Stat(entities.StatAttack))
		})
	}
}

func (s *EnemySuite) TestRewardsScaleWithLevelAndTier() {
	testCases := []struct {
		name  string
		level int
		tier  entities.Tier
		exp   int
		gold  int
	}{
		{name: "level 1 normal", level: 1, tier: entities.TierNormal, exp: 10, gold: 5},
		{name: "level 3 elite", level: 3, tier: entities.TierElite, exp: 45, gold: 22},
		{name: "level 5 miniboss", level: 5, tier: entities.TierMiniboss, exp: 100, gold: 50},
		{name: "level 10 boss", level: 10, tier: entities.TierBoss, exp: 300, gold: 150},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			e := entities.NewEnemy("e", "goblin", tc.level, tc.tier, entities.BehaviorBalanced)
			s.Equal(tc.exp, e.ExperienceReward())
			s.Equal(tc.gold, e.GoldReward())
		})
	}
}

func (s *EnemySuite) TestLevelUpGainsAndRewardRefresh() {
	e := entities.NewEnemy("e", "goblin", 1, entities.TierNormal, entities.BehaviorAggressive)
	e.LevelUp()

	s.Equal(2, e.Level())
	s.Equal(88, e.Stat(entities.StatMaxHealth))
	s.Equal(43, e.Stat(entities.StatMaxEnergy))
	s.Equal(9, e.Stat(entities.StatAttack))
	s.Equal(5, e.Stat(entities.StatDefense))
	s.Equal(9, e.Stat(entities.StatSpeed))
	s.Equal(20, e.ExperienceReward())
	s.Equal(10, e.GoldReward())
}

func (s *EnemySuite) TestCooldowns() {
	e := entities.NewEnemy("e", "goblin", 1, entities.TierElite, entities.BehaviorAggressive)

	s.True(e.CanUseAbility("special_attack"))
	e.SetAbilityCooldown("special_attack", 2)
	s.False(e.CanUseAbility("special_attack"))

	e.TickCooldowns()
	s.False(e.CanUseAbility("special_attack"))
	e.TickCooldowns()
	s.True(e.CanUseAbility("special_attack"))

	e.TickCooldowns()
	s.True(e.CanUseAbility("special_attack"), "cooldowns never go negative")
}

func (s *EnemySuite) TestGenerateLoot() {
	e := entities.NewEnemy("e", "goblin", 1, entities.TierNormal, entities.BehaviorBalanced)
	e.AddLootEntry("health_potion", 50, 2)
	e.AddLootEntry("iron_sword", 10, 1)

	// First roll lands inside 50, second misses 10.
	drops, err := e.GenerateLoot(rng.NewScripted(30, 90))
	s.Require().NoError(err)
	s.Require().Len(drops, 1)
	s.Equal("health_potion", drops[0].ItemID)
	s.Equal(2, drops[0].Quantity)
}

func (s *EnemySuite) TestGenerateLootEmptyTable() {
	e := entities.NewEnemy("e", "goblin", 1, entities.TierNormal, entities.BehaviorBalanced)
	drops, err := e.GenerateLoot(rng.NewScripted(1))
	s.Require().NoError(err)
	s.Empty(drops)
}

func TestEnemySuite(t *testing.T) {
	suite.Run(t, new(EnemySuite))
}
