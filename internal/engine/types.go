package engine

import (
	"time"

	"github.com/pocketrpg/battle-core/internal/entities"
)

// ActionKind names a combat action
type ActionKind string

// Combat actions
const (
	ActionAttack  ActionKind = "attack"
	ActionDefend  ActionKind = "defend"
	ActionUseItem ActionKind = "use_item"
	ActionSpecial ActionKind = "special"
	ActionArea    ActionKind = "area"
	ActionHeal    ActionKind = "heal"
	ActionFlee    ActionKind = "flee"
)

// Action is one combatant's declared move for their turn
type Action struct {
	Kind ActionKind
	// ItemName names the inventory item for use_item actions
	ItemName string
}

// Result is the battle outcome
type Result string

// Battle outcomes
const (
	ResultOngoing Result = "ongoing"
	ResultVictory Result = "victory"
	ResultDefeat  Result = "defeat"
	ResultFled    Result = "fled"
)

// LogEntry is one structured record in the append-only battle log
type LogEntry struct {
	Turn      int        `json:"turn"`
	Timestamp time.Time  `json:"timestamp"`
	Actor     string     `json:"actor"`
	Action    ActionKind `json:"action,omitempty"`
	Target    string     `json:"target,omitempty"`
	Damage    int        `json:"damage,omitempty"`
	Healing   int        `json:"healing,omitempty"`
	Critical  bool       `json:"critical,omitempty"`
	Success   bool       `json:"success"`
	Message   string     `json:"message"`
}

// Rewards is what surviving players collect on victory
type Rewards struct {
	Experience int
	Gold       int
	Drops      []entities.Drop
	// LeveledUp lists the IDs of players who gained a level
	LeveledUp []string
}

// StepResult reports what one step did
type StepResult struct {
	// Entries are the log records appended by this step
	Entries []LogEntry
	Result  Result
	// Rewards is set only when the step ended the battle in victory
	Rewards *Rewards
}

// PendingTurn identifies whose action the next step needs
type PendingTurn struct {
	Participant entities.Participant
	// AwaitingPlayer is true when the next step requires an externally
	// supplied action
	AwaitingPlayer bool
}
