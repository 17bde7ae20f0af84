package battle

import (
	"github.com/pocketrpg/battle-core/internal/engine"
)

// StartEncounterInput defines the input for starting an encounter
type StartEncounterInput struct {
	ChannelID string
	UserID    string
	RegionID  string
	// EnemyCount is how many enemies to spawn; defaults to 1
	EnemyCount int
}

// StartEncounterOutput defines the output for starting an encounter
type StartEncounterOutput struct {
	SessionID string
	Enemies   []CombatantStatus
	Pending   *engine.PendingTurn
	Entries   []engine.LogEntry
}

// SubmitActionInput defines the input for submitting a player action
type SubmitActionInput struct {
	ChannelID string
	UserID    string
	Action    engine.Action
}

// SubmitActionOutput defines the output for submitting a player action.
// Entries cover the player's step and every enemy step resolved before
// control returns to a player.
type SubmitActionOutput struct {
	Entries []engine.LogEntry
	Result  engine.Result
	Rewards *engine.Rewards
	Pending *engine.PendingTurn
}

// GetSessionInput defines the input for inspecting a channel's battle
type GetSessionInput struct {
	ChannelID string
}

// GetSessionOutput defines the output for inspecting a channel's battle
type GetSessionOutput struct {
	SessionID string
	Turn      int
	Result    engine.Result
	Players   []CombatantStatus
	Enemies   []CombatantStatus
	Log       []engine.LogEntry
}

// AbandonEncounterInput defines the input for abandoning a battle
type AbandonEncounterInput struct {
	ChannelID string
	UserID    string
}

// AbandonEncounterOutput defines the output for abandoning a battle
type AbandonEncounterOutput struct {
	Result  engine.Result
	Entries []engine.LogEntry
}

// CombatantStatus is a read-only view of one participant
type CombatantStatus struct {
	ID        string
	Name      string
	Level     int
	Health    int
	MaxHealth int
	Energy    int
	MaxEnergy int
	Alive     bool
}
