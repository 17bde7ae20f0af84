// Package engine implements the turn-based battle state machine: turn
// order, single-step resolution, and terminal outcome detection.
package engine

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/pocketrpg/battle-core/internal/entities"
	"github.com/pocketrpg/battle-core/internal/errors"
	"github.com/pocketrpg/battle-core/internal/pkg/clock"
)

// Damage multipliers for special abilities, in tenths
const (
	enemySpecialMult   = 15
	warriorSpecialMult = 13
	mageSpecialMult    = 14
	rogueSpecialMult   = 16
)

const (
	clericHealAmount = 30
	enemyHealAmount  = 30
	enemyHealCost    = 10
)

// Config wires a session's participants and dependencies
type Config struct {
	ID      string
	Players []*entities.Player
	Enemies []*entities.Enemy
	Roller  dice.Roller
	Clock   clock.Clock
	Policy  Policy
}

// Validate checks that the session can run
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if cfg.ID == "" {
		vb.RequiredField("ID")
	}
	if len(cfg.Players) == 0 {
		vb.RequiredField("Players")
	}
	if len(cfg.Enemies) == 0 {
		vb.RequiredField("Enemies")
	}
	if cfg.Roller == nil {
		vb.RequiredField("Roller")
	}
	if cfg.Clock == nil {
		vb.RequiredField("Clock")
	}
	if cfg.Policy == nil {
		vb.RequiredField("Policy")
	}
	return vb.Build()
}

// Session is one running battle. It advances strictly one participant
// turn per Step call so callers can interleave player input between
// steps.
type Session struct {
	id      string
	players []*entities.Player
	enemies []*entities.Enemy

	roller dice.Roller
	clock  clock.Clock
	policy Policy

	turnOrder    []entities.Participant
	currentIndex int
	turn         int

	log    []LogEntry
	active bool
	result Result
}

// NewSession creates a battle session: combat flags reset on every
// participant, turn order computed by descending speed.
func NewSession(cfg *Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		id:      cfg.ID,
		players: cfg.Players,
		enemies: cfg.Enemies,
		roller:  cfg.Roller,
		clock:   cfg.Clock,
		policy:  cfg.Policy,
		active:  true,
		result:  ResultOngoing,
	}

	for _, p := range s.participants() {
		p.Base().ResetCombatState()
	}
	s.computeTurnOrder()
	if len(s.turnOrder) == 0 {
		return nil, errors.FailedPrecondition("no living participants")
	}

	s.logf(nil, "battle started")
	return s, nil
}

// ID returns the session identifier
func (s *Session) ID() string { return s.id }

// Active reports whether the battle is still running
func (s *Session) Active() bool { return s.active }

// Result returns the battle outcome, ResultOngoing while active
func (s *Session) Result() Result { return s.result }

// Turn returns the completed full rounds
func (s *Session) Turn() int { return s.turn }

// Players returns the player side
func (s *Session) Players() []*entities.Player { return s.players }

// Enemies returns the enemy side
func (s *Session) Enemies() []*entities.Enemy { return s.enemies }

// Log returns the full battle log
func (s *Session) Log() []LogEntry {
	out := make([]LogEntry, len(s.log))
	copy(out, s.log)
	return out
}

// PendingTurn reports whose turn the next Step resolves, and whether that
// step needs an externally supplied action.
func (s *Session) PendingTurn() (*PendingTurn, error) {
	if !s.active {
		return nil, errors.FailedPrecondition("battle is over")
	}
	current := s.turnOrder[s.currentIndex]
	_, isPlayer := current.(*entities.Player)
	return &PendingTurn{
		Participant:    current,
		AwaitingPlayer: isPlayer,
	}, nil
}

// Step resolves exactly one participant's turn. For a player turn the
// action is required; for an enemy turn it must be nil and the policy
// decides. A malformed action is rejected before anything mutates, so the
// turn can be resubmitted. Effects on the actor are processed first, and a
// stunned actor skips their action. Returns the log records this step
// appended plus the battle result, with rewards attached when the step
// ends in victory.
func (s *Session) Step(action *Action) (*StepResult, error) {
	if !s.active {
		return nil, errors.FailedPrecondition("battle is over")
	}

	logStart := len(s.log)
	actor := s.turnOrder[s.currentIndex]
	base := actor.Base()

	if err := validateAction(actor, action); err != nil {
		return nil, err
	}

	s.processEffects(base)

	switch {
	case !base.Alive():
		s.logf(base, "%s succumbs", base.Name())
	case base.Stunned():
		s.logEntry(LogEntry{
			Actor:   base.Name(),
			Success: true,
			Message: fmt.Sprintf("%s is stunned and cannot act", base.Name()),
		})
	default:
		if err := s.resolveAction(actor, action); err != nil {
			return nil, err
		}
	}

	result := s.checkEnd()
	out := &StepResult{Result: result}

	if result == ResultOngoing {
		s.advance()
	} else {
		if result == ResultVictory {
			rewards, err := s.grantVictoryRewards()
			if err != nil {
				return nil, err
			}
			out.Rewards = rewards
		}
		s.finish(result)
	}

	out.Entries = append(out.Entries, s.log[logStart:]...)
	return out, nil
}

func (s *Session) participants() []entities.Participant {
	out := make([]entities.Participant, 0, len(s.players)+len(s.enemies))
	for _, p := range s.players {
		out = append(out, p)
	}
	for _, e := range s.enemies {
		out = append(out, e)
	}
	return out
}

// computeTurnOrder sorts living participants by descending speed. The
// sort is stable so equal speeds keep player-before-enemy registration
// order.
func (s *Session) computeTurnOrder() {
	order := make([]entities.Participant, 0, len(s.players)+len(s.enemies))
	for _, p := range s.participants() {
		if p.Base().Alive() {
			order = append(order, p)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Base().Stat(entities.StatSpeed) > order[j].Base().Stat(entities.StatSpeed)
	})
	s.turnOrder = order
	s.currentIndex = 0
}

func (s *Session) processEffects(c *entities.Combatant) {
	for _, tick := range c.ProcessEffects() {
		entry := LogEntry{
			Actor:   c.Name(),
			Success: true,
		}
		switch {
		case tick.HealthDelta < 0:
			entry.Damage = -tick.HealthDelta
			entry.Message = fmt.Sprintf("%s takes %d damage from %s", c.Name(), -tick.HealthDelta, tick.Effect)
		case tick.HealthDelta > 0:
			entry.Healing = tick.HealthDelta
			entry.Message = fmt.Sprintf("%s recovers %d health from %s", c.Name(), tick.HealthDelta, tick.Effect)
		default:
			entry.Message = fmt.Sprintf("%s is affected by %s", c.Name(), tick.Effect)
		}
		if tick.Expired {
			entry.Message += " (worn off)"
		}
		s.logEntry(entry)
	}
}

// validateAction rejects malformed input before any effect ticks or stat
// changes, so a failed submission leaves the turn untaken.
func validateAction(actor entities.Participant, action *Action) error {
	switch actor.(type) {
	case *entities.Player:
		if action == nil {
			return errors.InvalidArgument("player turn requires an action")
		}
		switch action.Kind {
		case ActionAttack, ActionDefend, ActionSpecial, ActionFlee:
		case ActionUseItem:
			if action.ItemName == "" {
				return errors.InvalidArgument("use_item requires an item name")
			}
		default:
			return errors.InvalidArgumentf("invalid player action %q", action.Kind)
		}
	case *entities.Enemy:
		if action != nil {
			return errors.InvalidArgument("enemy turns take no external action")
		}
	}
	return nil
}

func (s *Session) resolveAction(actor entities.Participant, action *Action) error {
	switch p := actor.(type) {
	case *entities.Player:
		return s.resolvePlayerAction(p, action)
	case *entities.Enemy:
		chosen, err := s.policy.ChooseAction(p)
		if err != nil {
			return err
		}
		return s.resolveEnemyAction(p, chosen)
	default:
		return errors.Internalf("unknown participant kind %T", actor)
	}
}

func (s *Session) resolvePlayerAction(p *entities.Player, action *Action) error {
	switch action.Kind {
	case ActionAttack:
		target := s.lowestHealthEnemy()
		if target == nil {
			return errors.FailedPrecondition("no living target")
		}
		return s.resolveAttack(p.Base(), target.Base(), 10)

	case ActionDefend:
		s.resolveDefend(p.Base())
		return nil

	case ActionUseItem:
		if action.ItemName == "" {
			return errors.InvalidArgument("use_item requires an item name")
		}
		ok := p.UseItem(action.ItemName)
		entry := LogEntry{
			Actor:   p.Name(),
			Action:  ActionUseItem,
			Success: ok,
		}
		if ok {
			entry.Message = fmt.Sprintf("%s uses %s", p.Name(), action.ItemName)
		} else {
			entry.Message = fmt.Sprintf("%s tries to use %s but fails", p.Name(), action.ItemName)
		}
		s.logEntry(entry)
		return nil

	case ActionSpecial:
		return s.resolvePlayerSpecial(p)

	case ActionFlee:
		s.logEntry(LogEntry{
			Actor:   p.Name(),
			Action:  ActionFlee,
			Success: true,
			Message: fmt.Sprintf("%s flees from battle", p.Name()),
		})
		s.result = ResultFled
		return nil

	default:
		return errors.InvalidArgumentf("invalid player action %q", action.Kind)
	}
}

func (s *Session) resolveEnemyAction(e *entities.Enemy, action Action) error {
	switch action.Kind {
	case ActionAttack:
		target := s.lowestHealthPlayer()
		if target == nil {
			return errors.FailedPrecondition("no living target")
		}
		return s.resolveAttack(e.Base(), target.Base(), 10)

	case ActionDefend:
		s.resolveDefend(e.Base())
		return nil

	case ActionSpecial:
		target := s.lowestHealthPlayer()
		if target == nil {
			return errors.FailedPrecondition("no living target")
		}
		return s.resolveSpecialAttack(e.Base(), target.Base(), enemySpecialMult, "unleashes a special attack")

	case ActionHeal:
		entry := LogEntry{Actor: e.Name(), Action: ActionHeal}
		if e.SpendEnergy(enemyHealCost) {
			healed := e.Heal(enemyHealAmount)
			entry.Healing = healed
			entry.Success = true
			entry.Message = fmt.Sprintf("%s heals for %d health", e.Name(), healed)
		} else {
			entry.Message = fmt.Sprintf("%s tries to heal but lacks the energy", e.Name())
		}
		s.logEntry(entry)
		return nil

	default:
		return errors.Internalf("policy chose invalid action %q", action.Kind)
	}
}

func (s *Session) resolvePlayerSpecial(p *entities.Player) error {
	switch p.Class() {
	case entities.ClassWarrior:
		return s.specialOnEnemy(p, warriorSpecialMult, "erupts in a berserker rage")
	case entities.ClassMage:
		return s.specialOnEnemy(p, mageSpecialMult, "hurls a fireball")
	case entities.ClassRogue:
		return s.specialOnEnemy(p, rogueSpecialMult, "lands a sneak attack")
	case entities.ClassCleric:
		healed := p.Heal(clericHealAmount)
		s.logEntry(LogEntry{
			Actor:   p.Name(),
			Action:  ActionSpecial,
			Healing: healed,
			Success: true,
			Message: fmt.Sprintf("%s calls down healing light for %d health", p.Name(), healed),
		})
		return nil
	default:
		return errors.Internalf("unknown class %q", p.Class())
	}
}

func (s *Session) specialOnEnemy(p *entities.Player, mult int, flavor string) error {
	target := s.lowestHealthEnemy()
	if target == nil {
		return errors.FailedPrecondition("no living target")
	}
	return s.resolveSpecialAttack(p.Base(), target.Base(), mult, flavor)
}

// resolveAttack runs the shared hit pipeline: stance-adjusted base damage,
// jitter, crit, then application. The target's defending stance clears
// after absorbing the hit. mult scales the base damage in tenths.
func (s *Session) resolveAttack(attacker, target *entities.Combatant, mult int) error {
	damage, crit, err := s.rollDamage(attacker, target, mult)
	if err != nil {
		return err
	}
	dealt := target.TakeDamage(damage)
	target.SetFlag(entities.FlagDefending, false)

	entry := LogEntry{
		Actor:    attacker.Name(),
		Action:   ActionAttack,
		Target:   target.Name(),
		Damage:   dealt,
		Critical: crit,
		Success:  true,
		Message:  fmt.Sprintf("%s attacks %s for %d damage", attacker.Name(), target.Name(), dealt),
	}
	if crit {
		entry.Message += " (critical hit!)"
	}
	if !target.Alive() {
		entry.Message += fmt.Sprintf("; %s falls", target.Name())
	}
	s.logEntry(entry)
	return nil
}

func (s *Session) resolveSpecialAttack(attacker, target *entities.Combatant, mult int, flavor string) error {
	damage, crit, err := s.rollDamage(attacker, target, mult)
	if err != nil {
		return err
	}
	dealt := target.TakeDamage(damage)
	target.SetFlag(entities.FlagDefending, false)

	entry := LogEntry{
		Actor:    attacker.Name(),
		Action:   ActionSpecial,
		Target:   target.Name(),
		Damage:   dealt,
		Critical: crit,
		Success:  true,
		Message:  fmt.Sprintf("%s %s, dealing %d damage to %s", attacker.Name(), flavor, dealt, target.Name()),
	}
	if !target.Alive() {
		entry.Message += fmt.Sprintf("; %s falls", target.Name())
	}
	s.logEntry(entry)
	return nil
}

func (s *Session) resolveDefend(c *entities.Combatant) {
	c.SetFlag(entities.FlagDefending, true)
	s.logEntry(LogEntry{
		Actor:   c.Name(),
		Action:  ActionDefend,
		Success: true,
		Message: fmt.Sprintf("%s braces to defend", c.Name()),
	})
}

// rollDamage computes pre-application damage: max(1, attack minus the
// target's stance-adjusted defense), scaled by mult in tenths, jittered
// uniformly in [0.8,1.2], with a crit multiplying by 1.5 at probability
// 0.05 plus 0.001 per point of attacker speed.
func (s *Session) rollDamage(attacker, target *entities.Combatant, mult int) (damage int, crit bool, err error) {
	defense := target.Stat(entities.StatDefense)
	if target.Defending() {
		defense *= 2
	}
	base := attacker.Stat(entities.StatAttack) - defense
	if base < 1 {
		base = 1
	}
	base = base * mult / 10

	// Jitter: a d41 maps onto the 80..120 percent band.
	jitterRoll, err := s.roller.Roll(41)
	if err != nil {
		return 0, false, err
	}
	damage = base * (79 + jitterRoll) / 100
	if damage < 1 {
		damage = 1
	}

	// Crit: d1000 against 50 + speed per mille.
	critRoll, err := s.roller.Roll(1000)
	if err != nil {
		return 0, false, err
	}
	if critRoll <= 50+attacker.Stat(entities.StatSpeed) {
		crit = true
		damage = damage * 3 / 2
	}
	return damage, crit, nil
}

func (s *Session) lowestHealthEnemy() *entities.Enemy {
	var best *entities.Enemy
	for _, e := range s.enemies {
		if !e.Alive() {
			continue
		}
		if best == nil || e.Stat(entities.StatHealth) < best.Stat(entities.StatHealth) {
			best = e
		}
	}
	return best
}

func (s *Session) lowestHealthPlayer() *entities.Player {
	var best *entities.Player
	for _, p := range s.players {
		if !p.Alive() {
			continue
		}
		if best == nil || p.Stat(entities.StatHealth) < best.Stat(entities.StatHealth) {
			best = p
		}
	}
	return best
}

// checkEnd evaluates terminal conditions in fixed order: defeat before
// victory before flee.
func (s *Session) checkEnd() Result {
	if s.lowestHealthPlayer() == nil {
		return ResultDefeat
	}
	if s.lowestHealthEnemy() == nil {
		return ResultVictory
	}
	if s.result == ResultFled {
		return ResultFled
	}
	return ResultOngoing
}

// advance moves to the next living participant, recomputing the order and
// bumping the round counter when the current order is exhausted.
func (s *Session) advance() {
	for i := s.currentIndex + 1; i < len(s.turnOrder); i++ {
		if s.turnOrder[i].Base().Alive() {
			s.currentIndex = i
			return
		}
	}
	s.turn++
	s.computeTurnOrder()
}

// grantVictoryRewards pools experience and gold from every enemy, splits
// them to each surviving player, and rolls every loot table.
func (s *Session) grantVictoryRewards() (*Rewards, error) {
	rewards := &Rewards{}
	for _, e := range s.enemies {
		rewards.Experience += e.ExperienceReward()
		rewards.Gold += e.GoldReward()

		drops, err := e.GenerateLoot(s.roller)
		if err != nil {
			return nil, err
		}
		rewards.Drops = append(rewards.Drops, drops...)
	}

	for _, p := range s.players {
		if !p.Alive() {
			continue
		}
		p.AddGold(rewards.Gold)
		if p.AddExperience(rewards.Experience) {
			rewards.LeveledUp = append(rewards.LeveledUp, p.GetID())
			s.logf(p.Base(), "%s reaches level %d", p.Name(), p.Level())
		}
	}

	s.logf(nil, "victory! %d experience and %d gold earned", rewards.Experience, rewards.Gold)
	return rewards, nil
}

// finish deactivates the session and clears lingering combat state
func (s *Session) finish(result Result) {
	s.result = result
	s.active = false
	for _, p := range s.participants() {
		p.Base().ResetCombatState()
	}
	switch result {
	case ResultDefeat:
		s.logf(nil, "the party has fallen")
	case ResultFled:
		s.logf(nil, "the battle is abandoned")
	}
}

func (s *Session) logEntry(entry LogEntry) {
	entry.Turn = s.turn + 1
	entry.Timestamp = s.clock.Now()
	s.log = append(s.log, entry)
}

func (s *Session) logf(c *entities.Combatant, format string, args ...interface{}) {
	entry := LogEntry{
		Success: true,
		Message: fmt.Sprintf(format, args...),
	}
	if c != nil {
		entry.Actor = c.Name()
	}
	s.logEntry(entry)
}
