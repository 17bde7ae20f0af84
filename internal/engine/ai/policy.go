// Package ai implements the enemy action policy: behavior-driven move
// selection with tier-gated abilities and cooldown tracking.
package ai

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/pocketrpg/battle-core/internal/engine"
	"github.com/pocketrpg/battle-core/internal/entities"
	"github.com/pocketrpg/battle-core/internal/errors"
)

// AbilitySpecial is the cooldown key for the special attack
const AbilitySpecial = "special_attack"

// specialCooldown is how many consultations a used special stays down
const specialCooldown = 2

// Health and probability gates used by the behavior rules
const (
	defensiveHealthGate = 30
	healerHealthGate    = 50
	balancedHealthGate  = 25
	balancedSpecialPct  = 30
	healEnergyGate      = 10
)

// Policy picks enemy actions. Probabilistic branches draw through the
// injected roller so behavior is reproducible under a seeded roller.
type Policy struct {
	roller dice.Roller
}

var _ engine.Policy = (*Policy)(nil)

// New creates a policy drawing randomness from the roller
func New(roller dice.Roller) *Policy {
	return &Policy{roller: roller}
}

// ChooseAction decides the enemy's move for this turn. Each consultation
// first ticks the enemy's ability cooldowns down by one.
func (p *Policy) ChooseAction(enemy *entities.Enemy) (engine.Action, error) {
	enemy.TickCooldowns()
	available := AvailableActions(enemy)

	switch enemy.Behavior() {
	case entities.BehaviorAggressive:
		return p.aggressive(enemy, available)
	case entities.BehaviorDefensive:
		return p.defensive(enemy, available)
	case entities.BehaviorHealer:
		return p.healer(enemy, available)
	case entities.BehaviorSpellcaster:
		return p.spellcaster(enemy, available)
	case entities.BehaviorBalanced:
		return p.balanced(enemy, available)
	default:
		return engine.Action{}, errors.Internalf("unknown behavior %q", enemy.Behavior())
	}
}

// AvailableActions computes the tier and energy gated action set: attack
// and defend always, the special attack for elites and above, the area
// attack for minibosses and above, and heal while energy exceeds the gate.
func AvailableActions(enemy *entities.Enemy) map[engine.ActionKind]bool {
	available := map[engine.ActionKind]bool{
		engine.ActionAttack: true,
		engine.ActionDefend: true,
	}
	switch enemy.Tier() {
	case entities.TierElite:
		available[engine.ActionSpecial] = true
	case entities.TierMiniboss, entities.TierBoss:
		available[engine.ActionSpecial] = true
		available[engine.ActionArea] = true
	}
	if enemy.Stat(entities.StatEnergy) > healEnergyGate {
		available[engine.ActionHeal] = true
	}
	return available
}

// aggressive always presses the attack
func (p *Policy) aggressive(enemy *entities.Enemy, available map[engine.ActionKind]bool) (engine.Action, error) {
	if available[engine.ActionAttack] {
		return engine.Action{Kind: engine.ActionAttack}, nil
	}
	if available[engine.ActionSpecial] && enemy.CanUseAbility(AbilitySpecial) {
		return p.special(enemy), nil
	}
	return engine.Action{Kind: engine.ActionDefend}, nil
}

// defensive turtles below the health gate
func (p *Policy) defensive(enemy *entities.Enemy, available map[engine.ActionKind]bool) (engine.Action, error) {
	if enemy.HealthPercent() < defensiveHealthGate {
		return engine.Action{Kind: engine.ActionDefend}, nil
	}
	if available[engine.ActionAttack] {
		return engine.Action{Kind: engine.ActionAttack}, nil
	}
	return engine.Action{Kind: engine.ActionDefend}, nil
}

// healer patches itself up below half health
func (p *Policy) healer(enemy *entities.Enemy, available map[engine.ActionKind]bool) (engine.Action, error) {
	if enemy.HealthPercent() < healerHealthGate && available[engine.ActionHeal] {
		return engine.Action{Kind: engine.ActionHeal}, nil
	}
	if available[engine.ActionAttack] {
		return engine.Action{Kind: engine.ActionAttack}, nil
	}
	return engine.Action{Kind: engine.ActionDefend}, nil
}

// spellcaster leads with its special whenever it is up
func (p *Policy) spellcaster(enemy *entities.Enemy, available map[engine.ActionKind]bool) (engine.Action, error) {
	if available[engine.ActionSpecial] && enemy.CanUseAbility(AbilitySpecial) {
		return p.special(enemy), nil
	}
	if available[engine.ActionAttack] {
		return engine.Action{Kind: engine.ActionAttack}, nil
	}
	return engine.Action{Kind: engine.ActionDefend}, nil
}

// balanced heals in a pinch, specials occasionally, otherwise flips a
// coin between attacking and defending.
func (p *Policy) balanced(enemy *entities.Enemy, available map[engine.ActionKind]bool) (engine.Action, error) {
	if enemy.HealthPercent() < balancedHealthGate && available[engine.ActionHeal] {
		return engine.Action{Kind: engine.ActionHeal}, nil
	}

	if available[engine.ActionSpecial] && enemy.CanUseAbility(AbilitySpecial) {
		roll, err := p.roller.Roll(100)
		if err != nil {
			return engine.Action{}, err
		}
		if roll <= balancedSpecialPct {
			return p.special(enemy), nil
		}
	}

	coin, err := p.roller.Roll(2)
	if err != nil {
		return engine.Action{}, err
	}
	if coin == 1 {
		return engine.Action{Kind: engine.ActionAttack}, nil
	}
	return engine.Action{Kind: engine.ActionDefend}, nil
}

func (p *Policy) special(enemy *entities.Enemy) engine.Action {
	enemy.SetAbilityCooldown(AbilitySpecial, specialCooldown)
	return engine.Action{Kind: engine.ActionSpecial}
}
