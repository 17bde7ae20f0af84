// Package battle implements the battle orchestrator that drives
// encounters between persisted players and spawned enemies.
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/pocketrpg/battle-core/internal/orchestrators/battle Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/pocketrpg/battle-core/internal/content"
	"github.com/pocketrpg/battle-core/internal/engine"
	"github.com/pocketrpg/battle-core/internal/engine/ai"
	"github.com/pocketrpg/battle-core/internal/entities"
	"github.com/pocketrpg/battle-core/internal/errors"
	"github.com/pocketrpg/battle-core/internal/pkg/clock"
	"github.com/pocketrpg/battle-core/internal/pkg/idgen"
	"github.com/pocketrpg/battle-core/internal/repositories/players"
	"github.com/pocketrpg/battle-core/internal/repositories/sessions"
)

// maxEnemiesPerEncounter caps how many enemies one encounter spawns
const maxEnemiesPerEncounter = 3

// Service defines the interface for battle operations
type Service interface {
	// StartEncounter spawns enemies for a region and opens a battle on
	// the channel. A channel holds at most one battle at a time.
	StartEncounter(ctx context.Context, input *StartEncounterInput) (*StartEncounterOutput, error)

	// SubmitAction resolves the player's declared action and every enemy
	// turn that follows, up to the next player turn or the end of the
	// battle.
	SubmitAction(ctx context.Context, input *SubmitActionInput) (*SubmitActionOutput, error)

	// GetSession returns a read-only view of the channel's battle
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// AbandonEncounter ends the channel's battle as a flee. Used when the
	// player walks away from an unfinished battle.
	AbandonEncounter(ctx context.Context, input *AbandonEncounterInput) (*AbandonEncounterOutput, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	SessionRepo sessions.Repository
	PlayerRepo  players.Repository
	Content     content.Provider
	Roller      dice.Roller
	Clock       clock.Clock
	IDGen       idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.Content == nil {
		vb.RequiredField("Content")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGen == nil {
		vb.RequiredField("IDGen")
	}
	return vb.Build()
}

type orchestrator struct {
	sessionRepo sessions.Repository
	playerRepo  players.Repository
	content     content.Provider
	roller      dice.Roller
	clock       clock.Clock
	idGen       idgen.Generator
}

// NewOrchestrator creates a new battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		sessionRepo: cfg.SessionRepo,
		playerRepo:  cfg.PlayerRepo,
		content:     cfg.Content,
		roller:      cfg.Roller,
		clock:       cfg.Clock,
		idGen:       cfg.IDGen,
	}, nil
}

func (o *orchestrator) StartEncounter(ctx context.Context, input *StartEncounterInput) (*StartEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	if input.ChannelID == "" {
		vb.RequiredField("ChannelID")
	}
	if input.UserID == "" {
		vb.RequiredField("UserID")
	}
	if input.RegionID == "" {
		vb.RequiredField("RegionID")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	playerOut, err := o.playerRepo.Get(ctx, players.GetInput{ID: input.UserID})
	if err != nil {
		return nil, err
	}
	player, err := players.Restore(playerOut.PlayerData)
	if err != nil {
		return nil, err
	}

	region, ok := o.content.Region(input.RegionID)
	if !ok {
		return nil, errors.NotFoundf("region %s not found", input.RegionID)
	}
	if player.Level() < region.RequiredLevel {
		return nil, errors.FailedPreconditionf(
			"region %s requires level %d", region.Name, region.RequiredLevel)
	}
	if len(region.Enemies) == 0 {
		return nil, errors.FailedPreconditionf("region %s has no enemies", region.Name)
	}

	enemies, err := o.spawnEnemies(region, input.EnemyCount)
	if err != nil {
		return nil, err
	}

	session, err := engine.NewSession(&engine.Config{
		ID:      o.idGen.Generate(),
		Players: []*entities.Player{player},
		Enemies: enemies,
		Roller:  o.roller,
		Clock:   o.clock,
		Policy:  ai.New(o.roller),
	})
	if err != nil {
		return nil, err
	}

	if _, err := o.sessionRepo.Register(ctx, sessions.RegisterInput{
		ChannelID: input.ChannelID,
		Session:   session,
	}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "battle started",
		"channel_id", input.ChannelID,
		"session_id", session.ID(),
		"region_id", region.ID,
		"player_id", player.GetID(),
		"enemy_count", len(enemies),
	)

	// Faster enemies act before the player's first turn
	entries := session.Log()
	enemyEntries, enemyRewards, err := o.advanceEnemies(session)
	if err != nil {
		return nil, err
	}
	entries = append(entries, enemyEntries...)

	var pending *engine.PendingTurn
	if session.Active() {
		if pending, err = session.PendingTurn(); err != nil {
			return nil, err
		}
	} else {
		o.deliverDrops(ctx, session, enemyRewards)
		if err := o.finalize(ctx, input.ChannelID, session); err != nil {
			return nil, err
		}
	}

	out := &StartEncounterOutput{
		SessionID: session.ID(),
		Pending:   pending,
		Entries:   entries,
	}
	for _, e := range enemies {
		out.Enemies = append(out.Enemies, statusOf(e.Base()))
	}
	return out, nil
}

func (o *orchestrator) SubmitAction(ctx context.Context, input *SubmitActionInput) (*SubmitActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	if input.ChannelID == "" {
		vb.RequiredField("ChannelID")
	}
	if input.UserID == "" {
		vb.RequiredField("UserID")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	sessionOut, err := o.sessionRepo.Get(ctx, sessions.GetInput{ChannelID: input.ChannelID})
	if err != nil {
		return nil, err
	}
	session := sessionOut.Session

	pending, err := session.PendingTurn()
	if err != nil {
		return nil, err
	}
	if !pending.AwaitingPlayer {
		return nil, errors.FailedPrecondition("it is not a player's turn")
	}
	if pending.Participant.GetID() != input.UserID {
		return nil, errors.FailedPreconditionf(
			"it is %s's turn", pending.Participant.Base().Name())
	}

	step, err := session.Step(&input.Action)
	if err != nil {
		return nil, err
	}
	entries := step.Entries
	rewards := step.Rewards

	enemyEntries, enemyRewards, err := o.advanceEnemies(session)
	if err != nil {
		return nil, err
	}
	entries = append(entries, enemyEntries...)
	if enemyRewards != nil {
		rewards = enemyRewards
	}

	out := &SubmitActionOutput{
		Entries: entries,
		Result:  session.Result(),
		Rewards: rewards,
	}
	if session.Active() {
		if out.Pending, err = session.PendingTurn(); err != nil {
			return nil, err
		}
		return out, nil
	}

	o.deliverDrops(ctx, session, rewards)
	if err := o.finalize(ctx, input.ChannelID, session); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "battle ended",
		"channel_id", input.ChannelID,
		"session_id", session.ID(),
		"result", session.Result(),
		"turns", session.Turn(),
	)
	return out, nil
}

func (o *orchestrator) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ChannelID == "" {
		return nil, errors.InvalidArgument("channel ID cannot be empty")
	}

	sessionOut, err := o.sessionRepo.Get(ctx, sessions.GetInput{ChannelID: input.ChannelID})
	if err != nil {
		return nil, err
	}
	session := sessionOut.Session

	out := &GetSessionOutput{
		SessionID: session.ID(),
		Turn:      session.Turn(),
		Result:    session.Result(),
		Log:       session.Log(),
	}
	for _, p := range session.Players() {
		out.Players = append(out.Players, statusOf(p.Base()))
	}
	for _, e := range session.Enemies() {
		out.Enemies = append(out.Enemies, statusOf(e.Base()))
	}
	return out, nil
}

func (o *orchestrator) AbandonEncounter(ctx context.Context, input *AbandonEncounterInput) (*AbandonEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ChannelID == "" {
		return nil, errors.InvalidArgument("channel ID cannot be empty")
	}

	sessionOut, err := o.sessionRepo.Get(ctx, sessions.GetInput{ChannelID: input.ChannelID})
	if err != nil {
		return nil, err
	}
	session := sessionOut.Session

	var entries []engine.LogEntry
	var rewards *engine.Rewards
	for session.Active() {
		pending, err := session.PendingTurn()
		if err != nil {
			return nil, err
		}
		var action *engine.Action
		if pending.AwaitingPlayer {
			action = &engine.Action{Kind: engine.ActionFlee}
		}
		step, err := session.Step(action)
		if err != nil {
			return nil, err
		}
		entries = append(entries, step.Entries...)
		if step.Rewards != nil {
			rewards = step.Rewards
		}
	}

	o.deliverDrops(ctx, session, rewards)
	if err := o.finalize(ctx, input.ChannelID, session); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "battle abandoned",
		"channel_id", input.ChannelID,
		"session_id", session.ID(),
		"result", session.Result(),
	)
	return &AbandonEncounterOutput{
		Result:  session.Result(),
		Entries: entries,
	}, nil
}

// spawnEnemies rolls templates out of the region's pool and spawns them
// at the region's enemy level.
func (o *orchestrator) spawnEnemies(region *content.Region, count int) ([]*entities.Enemy, error) {
	if count < 1 {
		count = 1
	}
	if count > maxEnemiesPerEncounter {
		count = maxEnemiesPerEncounter
	}

	level := region.Level + region.EnemyLevelBonus
	if level < 1 {
		level = 1
	}

	enemies := make([]*entities.Enemy, 0, count)
	for i := 0; i < count; i++ {
		idx := 1
		if len(region.Enemies) > 1 {
			var err error
			if idx, err = o.roller.Roll(len(region.Enemies)); err != nil {
				return nil, errors.Wrap(err, "failed to roll enemy template")
			}
		}
		enemy, err := content.Spawn(o.content, region.Enemies[idx-1], o.idGen.Generate(), level)
		if err != nil {
			return nil, err
		}
		enemies = append(enemies, enemy)
	}
	return enemies, nil
}

// advanceEnemies steps enemy turns until a player turn is pending or the
// battle ends.
func (o *orchestrator) advanceEnemies(session *engine.Session) ([]engine.LogEntry, *engine.Rewards, error) {
	var entries []engine.LogEntry
	var rewards *engine.Rewards
	for session.Active() {
		pending, err := session.PendingTurn()
		if err != nil {
			return nil, nil, err
		}
		if pending.AwaitingPlayer {
			break
		}
		step, err := session.Step(nil)
		if err != nil {
			return nil, nil, err
		}
		entries = append(entries, step.Entries...)
		if step.Rewards != nil {
			rewards = step.Rewards
		}
	}
	return entries, rewards, nil
}

// deliverDrops converts rolled drops into items and places them in a
// surviving player's inventory. Drops without a definition, or that do
// not fit, are logged and lost.
func (o *orchestrator) deliverDrops(ctx context.Context, session *engine.Session, rewards *engine.Rewards) {
	if rewards == nil || len(rewards.Drops) == 0 {
		return
	}
	for _, drop := range rewards.Drops {
		def, ok := o.content.ItemDef(drop.ItemID)
		if !ok {
			slog.WarnContext(ctx, "dropped item has no definition", "item_id", drop.ItemID)
			continue
		}
		for _, p := range session.Players() {
			if !p.Alive() {
				continue
			}
			if !p.Inventory.Add(def.Clone(), drop.Quantity) {
				slog.WarnContext(ctx, "inventory full, drop lost",
					"player_id", p.GetID(),
					"item_id", drop.ItemID,
				)
			}
			break
		}
	}
}

// finalize persists every player's post-battle state and releases the
// channel.
func (o *orchestrator) finalize(ctx context.Context, channelID string, session *engine.Session) error {
	for _, p := range session.Players() {
		if _, err := o.playerRepo.Save(ctx, players.SaveInput{
			PlayerData: players.Snapshot(p),
		}); err != nil {
			return errors.Wrapf(err, "failed to persist player %s", p.GetID())
		}
	}
	if _, err := o.sessionRepo.Remove(ctx, sessions.RemoveInput{ChannelID: channelID}); err != nil {
		return errors.Wrapf(err, "failed to release channel %s", channelID)
	}
	return nil
}

func statusOf(c *entities.Combatant) CombatantStatus {
	return CombatantStatus{
		ID:        c.GetID(),
		Name:      c.Name(),
		Level:     c.Level(),
		Health:    c.Stat(entities.StatHealth),
		MaxHealth: c.Stat(entities.StatMaxHealth),
		Energy:    c.Stat(entities.StatEnergy),
		MaxEnergy: c.Stat(entities.StatMaxEnergy),
		Alive:     c.Alive(),
	}
}
