// Package players provides persistence for player-controlled combatants
package players

//go:generate mockgen -destination=mock/mock_repository.go -package=playersmock github.com/pocketrpg/battle-core/internal/repositories/players Repository

import (
	"context"
)

// Repository defines the interface for player persistence. Players are
// keyed by the stable user ID they were created with.
type Repository interface {
	// Save upserts a player snapshot
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a player snapshot by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the player doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a player by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the player doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the input for saving a player
type SaveInput struct {
	PlayerData *Data
}

// SaveOutput defines the output for saving a player
type SaveOutput struct {
	PlayerData *Data
}

// GetInput defines the input for getting a player
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a player
type GetOutput struct {
	PlayerData *Data
}

// DeleteInput defines the input for deleting a player
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a player
type DeleteOutput struct{}
