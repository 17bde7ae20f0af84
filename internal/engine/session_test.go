package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/pocketrpg/battle-core/internal/effects"
	"github.com/pocketrpg/battle-core/internal/engine"
	enginemock "github.com/pocketrpg/battle-core/internal/engine/mock"
	"github.com/pocketrpg/battle-core/internal/entities"
	"github.com/pocketrpg/battle-core/internal/errors"
	"github.com/pocketrpg/battle-core/internal/pkg/clock"
	"github.com/pocketrpg/battle-core/internal/pkg/rng"
)

// scriptedPolicy replays a fixed list of enemy actions, defaulting to
// plain attacks.
type scriptedPolicy struct {
	actions []engine.Action
	next    int
}

func (p *scriptedPolicy) ChooseAction(*entities.Enemy) (engine.Action, error) {
	if len(p.actions) == 0 {
		return engine.Action{Kind: engine.ActionAttack}, nil
	}
	action := p.actions[p.next%len(p.actions)]
	p.next++
	return action, nil
}

type SessionSuite struct {
	suite.Suite
	clock *clock.Fixed
}

func (s *SessionSuite) SetupTest() {
	s.clock = &clock.Fixed{Time: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (s *SessionSuite) newSession(players []*entities.Player, enemies []*entities.Enemy,
	rolls []int, enemyActions ...engine.Action) *engine.Session {
	sess, err := engine.NewSession(&engine.Config{
		ID:      "battle-1",
		Players: players,
		Enemies: enemies,
		Roller:  rng.NewScripted(rolls...),
		Clock:   s.clock,
		Policy:  &scriptedPolicy{actions: enemyActions},
	})
	s.Require().NoError(err)
	return sess
}

func (s *SessionSuite) fastWarrior() *entities.Player {
	p := entities.NewPlayer("p1", "Aldric", entities.ClassWarrior)
	p.SetStat(entities.StatSpeed, 20)
	return p
}

func goblin() *entities.Enemy {
	return entities.NewEnemy("e1", "goblin", 1, entities.TierNormal, entities.BehaviorAggressive)
}

func (s *SessionSuite) TestConfigValidation() {
	_, err := engine.NewSession(&engine.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *SessionSuite) TestTurnOrderBySpeed() {
	fast := entities.NewPlayer("p1", "fast", entities.ClassRogue)
	slow := entities.NewPlayer("p2", "slow", entities.ClassCleric)

	sess := s.newSession([]*entities.Player{slow, fast}, []*entities.Enemy{goblin()}, []int{1})

	pending, err := sess.PendingTurn()
	s.Require().NoError(err)
	s.Equal("p1", pending.Participant.GetID(), "rogue speed 15 acts first")
	s.True(pending.AwaitingPlayer)
}

func (s *SessionSuite) TestStableTieKeepsRegistrationOrder() {
	p := entities.NewPlayer("p1", "Aldric", entities.ClassWarrior)
	p.SetStat(entities.StatSpeed, 8)

	sess := s.newSession([]*entities.Player{p}, []*entities.Enemy{goblin()}, []int{1})

	pending, err := sess.PendingTurn()
	s.Require().NoError(err)
	s.Equal("p1", pending.Participant.GetID(), "speed ties keep players first")
}

func (s *SessionSuite) TestAttackDamageJitterBounds() {
	testCases := []struct {
		name   string
		rolls  []int
		damage int
	}{
		// Attack 10 against a zero-defense target: the jitter band alone.
		{name: "low jitter", rolls: []int{1, 1000}, damage: 8},
		{name: "mid jitter", rolls: []int{21, 1000}, damage: 10},
		{name: "high jitter", rolls: []int{41, 1000}, damage: 12},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			player := s.fastWarrior()
			player.SetStat(entities.StatAttack, 10)
			enemy := goblin()
			enemy.SetStat(entities.StatDefense, 0)
			sess := s.newSession([]*entities.Player{player}, []*entities.Enemy{enemy}, tc.rolls)
			hpBefore := enemy.Stat(entities.StatHealth)

			result, err := sess.Step(&engine.Action{Kind: engine.ActionAttack})
			s.Require().NoError(err)
			s.Equal(engine.ResultOngoing, result.Result)
			s.Equal(tc.damage, hpBefore-enemy.Stat(entities.StatHealth))
		})
	}
}

func (s *SessionSuite) TestDamageNeverBelowOne() {
	player := s.fastWarrior()
	player.SetStat(entities.StatAttack, 1)
	enemy := goblin()
	enemy.SetStat(entities.StatDefense, 50)
	sess := s.newSession([]*entities.Player{player}, []*entities.Enemy{enemy}, []int{1, 1000})
	hpBefore := enemy.Stat(entities.StatHealth)

	_, err := sess.Step(&engine.Action{Kind: engine.ActionAttack})
	s.Require().NoError(err)
	s.Equal(1, hpBefore-enemy.Stat(entities.StatHealth))
}

func (s *SessionSuite) TestDefendingHalvesAndClears() {
	player := entities.NewPlayer("p1", "Aldric", entities.ClassWarrior)
	player.SetStat(entities.StatSpeed, 1)
	player.SetStat(entities.StatAttack, 15)
	enemy := goblin()
	enemy.SetStat(entities.StatDefense, 5)

	// Enemy speed 8 beats player speed 1, and the script has it defend.
	sess := s.newSession([]*entities.Player{player}, []*entities.Enemy{enemy},
		[]int{21, 1000}, engine.Action{Kind: engine.ActionDefend})

	result, err := sess.Step(nil)
	s.Require().NoError(err)
	s.Require().Equal(engine.ResultOngoing, result.Result)
	s.True(enemy.Defending())

	hpBefore := enemy.Stat(entities.StatHealth)
	result, err = sess.Step(&engine.Action{Kind: engine.ActionAttack})
	s.Require().NoError(err)
	s.False(enemy.Defending(), "stance clears after absorbing the hit")

	// Base max(1, 15 minus doubled defense 10) is 5 at mid jitter, with
	// plain defense absorbing again on application.
	s.Equal(1, hpBefore-enemy.Stat(entities.StatHealth))
	last := result.Entries[len(result.Entries)-1]
	s.Equal(engine.ActionAttack, last.Action)
	s.Equal(1, last.Damage)
}

func (s *SessionSuite) TestCriticalHit() {
	player := s.fastWarrior()
	player.SetStat(entities.StatAttack, 10)
	enemy := goblin()
	enemy.SetStat(entities.StatDefense, 5)

	// Jitter mid-band, then a crit roll inside 50 + speed.
	sess := s.newSession([]*entities.Player{player}, []*entities.Enemy{enemy}, []int{21, 1})
	hpBefore := enemy.Stat(entities.StatHealth)

	result, err := sess.Step(&engine.Action{Kind: engine.ActionAttack})
	s.Require().NoError(err)

	var attack *engine.LogEntry
	for i := range result.Entries {
		if result.Entries[i].Action == engine.ActionAttack {
			attack = &result.Entries[i]
		}
	}
	s.Require().NotNil(attack)
	s.True(attack.Critical)

	// Base 5 at mid jitter, crit raises it to 7, defense absorbs 5.
	s.Equal(2, hpBefore-enemy.Stat(entities.StatHealth))
}

func (s *SessionSuite) TestPlayerTurnRequiresAction() {
	sess := s.newSession([]*entities.Player{s.fastWarrior()}, []*entities.Enemy{goblin()}, []int{1})

	_, err := sess.Step(nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *SessionSuite) TestFleeEndsBattle() {
	sess := s.newSession([]*entities.Player{s.fastWarrior()}, []*entities.Enemy{goblin()}, []int{1})

	result, err := sess.Step(&engine.Action{Kind: engine.ActionFlee})
	s.Require().NoError(err)
	s.Equal(engine.ResultFled, result.Result)
	s.False(sess.Active())
	s.Equal(engine.ResultFled, sess.Result())

	_, err = sess.Step(&engine.Action{Kind: engine.ActionAttack})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *SessionSuite) TestVictoryGrantsRewards() {
	player := s.fastWarrior()
	player.SetStat(entities.StatAttack, 1000)
	enemy := goblin()
	enemy.AddLootEntry("goblin_ear", 50, 1)

	// Jitter, no crit, then a loot roll inside the 50 percent chance.
	sess := s.newSession([]*entities.Player{player}, []*entities.Enemy{enemy}, []int{21, 1000, 10})

	result, err := sess.Step(&engine.Action{Kind: engine.ActionAttack})
	s.Require().NoError(err)
	s.Equal(engine.ResultVictory, result.Result)
	s.False(sess.Active())

	s.Require().NotNil(result.Rewards)
	s.Equal(10, result.Rewards.Experience)
	s.Equal(5, result.Rewards.Gold)
	s.Equal(5, player.Gold())
	s.Require().Len(result.Rewards.Drops, 1)
	s.Equal("goblin_ear", result.Rewards.Drops[0].ItemID)
}

func (s *SessionSuite) TestDefeat() {
	player := entities.NewPlayer("p1", "Aldric", entities.ClassWarrior)
	player.SetStat(entities.StatSpeed, 1)
	player.SetStat(entities.StatHealth, 1)
	player.SetStat(entities.StatDefense, 0)

	sess := s.newSession([]*entities.Player{player}, []*entities.Enemy{goblin()},
		[]int{21, 1000}, engine.Action{Kind: engine.ActionAttack})

	result, err := sess.Step(nil)
	s.Require().NoError(err)
	s.Equal(engine.ResultDefeat, result.Result)
	s.False(sess.Active())
	s.Nil(result.Rewards)
}

func (s *SessionSuite) TestStunnedActorSkipsAction() {
	player := s.fastWarrior()
	enemy := goblin()
	sess := s.newSession([]*entities.Player{player}, []*entities.Enemy{enemy}, []int{21, 1000})

	player.AddEffect(effects.Stun(2))
	hpBefore := enemy.Stat(entities.StatHealth)

	result, err := sess.Step(&engine.Action{Kind: engine.ActionAttack})
	s.Require().NoError(err)
	s.Equal(engine.ResultOngoing, result.Result)
	s.Equal(hpBefore, enemy.Stat(entities.StatHealth), "no attack landed")
	s.True(player.Stunned(), "one pass left on the stun")
}

func (s *SessionSuite) TestUseItemFailureLeavesStateUntouched() {
	player := s.fastWarrior()
	enemy := goblin()
	sess := s.newSession([]*entities.Player{player}, []*entities.Enemy{enemy}, []int{1})

	enemyHP := enemy.Stat(entities.StatHealth)
	playerHP := player.Stat(entities.StatHealth)

	result, err := sess.Step(&engine.Action{Kind: engine.ActionUseItem, ItemName: "phantom brew"})
	s.Require().NoError(err)

	last := result.Entries[len(result.Entries)-1]
	s.False(last.Success)
	s.Equal(enemyHP, enemy.Stat(entities.StatHealth))
	s.Equal(playerHP, player.Stat(entities.StatHealth))
	s.Equal(engine.ResultOngoing, result.Result)
}

func (s *SessionSuite) TestEnemyHealSpendsEnergy() {
	player := entities.NewPlayer("p1", "Aldric", entities.ClassWarrior)
	player.SetStat(entities.StatSpeed, 1)
	enemy := goblin()
	enemy.SetStat(entities.StatHealth, 40)

	sess := s.newSession([]*entities.Player{player}, []*entities.Enemy{enemy},
		[]int{1}, engine.Action{Kind: engine.ActionHeal})
	energyBefore := enemy.Stat(entities.StatEnergy)

	result, err := sess.Step(nil)
	s.Require().NoError(err)

	last := result.Entries[len(result.Entries)-1]
	s.True(last.Success)
	s.Equal(30, last.Healing)
	s.Equal(energyBefore-10, enemy.Stat(entities.StatEnergy))
	s.Equal(70, enemy.Stat(entities.StatHealth))
}

func (s *SessionSuite) TestClericSpecialHeals() {
	player := entities.NewPlayer("p1", "Mira", entities.ClassCleric)
	player.SetStat(entities.StatSpeed, 20)
	player.TakeDamage(100)

	sess := s.newSession([]*entities.Player{player}, []*entities.Enemy{goblin()}, []int{1})

	hpBefore := player.Stat(entities.StatHealth)
	result, err := sess.Step(&engine.Action{Kind: engine.ActionSpecial})
	s.Require().NoError(err)

	last := result.Entries[len(result.Entries)-1]
	s.Equal(30, last.Healing)
	s.Equal(hpBefore+30, player.Stat(entities.StatHealth))
	s.Equal(engine.ResultOngoing, result.Result)
}

func (s *SessionSuite) TestRogueSpecialMultiplier() {
	player := entities.NewPlayer("p1", "Vex", entities.ClassRogue)
	player.SetStat(entities.StatSpeed, 20)
	player.SetStat(entities.StatAttack, 10)
	enemy := goblin()
	enemy.SetStat(entities.StatDefense, 0)

	sess := s.newSession([]*entities.Player{player}, []*entities.Enemy{enemy}, []int{21, 1000})

	hpBefore := enemy.Stat(entities.StatHealth)
	_, err := sess.Step(&engine.Action{Kind: engine.ActionSpecial})
	s.Require().NoError(err)

	// Base 10 at the 1.6 multiplier and mid jitter.
	s.Equal(16, hpBefore-enemy.Stat(entities.StatHealth))
}

func (s *SessionSuite) TestDeadDroppedFromRecomputedOrder() {
	p1 := entities.NewPlayer("p1", "Aldric", entities.ClassWarrior)
	p1.SetStat(entities.StatSpeed, 30)
	p1.SetStat(entities.StatAttack, 1000)
	p2 := entities.NewPlayer("p2", "Mira", entities.ClassCleric)
	p2.SetStat(entities.StatSpeed, 25)
	e1 := goblin()
	e1.SetStat(entities.StatSpeed, 20)
	e1.SetStat(entities.StatHealth, 1)
	e2 := entities.NewEnemy("e2", "orc", 1, entities.TierNormal, entities.BehaviorAggressive)
	e2.SetStat(entities.StatSpeed, 15)

	sess := s.newSession([]*entities.Player{p1, p2}, []*entities.Enemy{e1, e2},
		[]int{21, 1000}, engine.Action{Kind: engine.ActionDefend})

	// p1 kills the weakest enemy outright.
	result, err := sess.Step(&engine.Action{Kind: engine.ActionAttack})
	s.Require().NoError(err)
	s.Equal(engine.ResultOngoing, result.Result)
	s.False(e1.Alive())

	// The dead goblin never gets a turn: p2, then e2, then wrap to p1.
	pending, err := sess.PendingTurn()
	s.Require().NoError(err)
	s.Equal("p2", pending.Participant.GetID())

	_, err = sess.Step(&engine.Action{Kind: engine.ActionDefend})
	s.Require().NoError(err)

	pending, err = sess.PendingTurn()
	s.Require().NoError(err)
	s.Equal("e2", pending.Participant.GetID())
	s.False(pending.AwaitingPlayer)

	_, err = sess.Step(nil)
	s.Require().NoError(err)

	pending, err = sess.PendingTurn()
	s.Require().NoError(err)
	s.Equal("p1", pending.Participant.GetID())
	s.Equal(1, sess.Turn(), "round counter bumps on wrap")
}

func (s *SessionSuite) TestRejectedActionLeavesTurnUntaken() {
	testCases := []struct {
		name   string
		action *engine.Action
	}{
		{name: "unknown kind", action: &engine.Action{Kind: "dance"}},
		{name: "use_item without a name", action: &engine.Action{Kind: engine.ActionUseItem}},
		{name: "nil action", action: nil},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			player := s.fastWarrior()
			player.AddEffect(effects.Poison(3, 5))
			hpBefore := player.Stat(entities.StatHealth)

			sess := s.newSession([]*entities.Player{player}, []*entities.Enemy{goblin()},
				[]int{21, 1000})

			_, err := sess.Step(tc.action)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Equal(hpBefore, player.Stat(entities.StatHealth),
				"a rejected submission must not tick effects")

			// The retried turn ticks the poison exactly once.
			result, err := sess.Step(&engine.Action{Kind: engine.ActionAttack})
			s.Require().NoError(err)
			s.Equal(engine.ResultOngoing, result.Result)
			s.Equal(hpBefore-5, player.Stat(entities.StatHealth))
		})
	}
}

func (s *SessionSuite) TestEnemyTurnConsultsPolicy() {
	ctrl := gomock.NewController(s.T())
	policy := enginemock.NewMockPolicy(ctrl)

	enemy := goblin()
	enemy.SetStat(entities.StatSpeed, 30)
	policy.EXPECT().ChooseAction(enemy).Return(engine.Action{Kind: engine.ActionDefend}, nil)

	sess, err := engine.NewSession(&engine.Config{
		ID:      "battle-1",
		Players: []*entities.Player{s.fastWarrior()},
		Enemies: []*entities.Enemy{enemy},
		Roller:  rng.NewScripted(1),
		Clock:   s.clock,
		Policy:  policy,
	})
	s.Require().NoError(err)

	result, err := sess.Step(nil)
	s.Require().NoError(err)
	s.Equal(engine.ResultOngoing, result.Result)
	s.True(enemy.Defending())
}

func (s *SessionSuite) TestPolicyErrorSurfaces() {
	ctrl := gomock.NewController(s.T())
	policy := enginemock.NewMockPolicy(ctrl)

	enemy := goblin()
	enemy.SetStat(entities.StatSpeed, 30)
	policy.EXPECT().ChooseAction(enemy).Return(engine.Action{}, errors.Internal("policy broke"))

	sess, err := engine.NewSession(&engine.Config{
		ID:      "battle-1",
		Players: []*entities.Player{s.fastWarrior()},
		Enemies: []*entities.Enemy{enemy},
		Roller:  rng.NewScripted(1),
		Clock:   s.clock,
		Policy:  policy,
	})
	s.Require().NoError(err)

	_, err = sess.Step(nil)
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}
