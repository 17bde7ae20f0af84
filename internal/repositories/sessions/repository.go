// Package sessions provides the registry of live battle sessions. A
// session is a live object and is never serialized; each channel holds
// at most one.
package sessions

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionsmock github.com/pocketrpg/battle-core/internal/repositories/sessions Repository

import (
	"context"

	"github.com/pocketrpg/battle-core/internal/engine"
)

// Repository defines the interface for the session registry
type Repository interface {
	// Register claims the channel for a session
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if the channel already has a session
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Get retrieves the live session for a channel
	// Returns errors.InvalidArgument for empty channel IDs
	// Returns errors.NotFound if the channel has no session
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Remove releases the channel
	// Returns errors.InvalidArgument for empty channel IDs
	// Returns errors.NotFound if the channel has no session
	Remove(ctx context.Context, input RemoveInput) (*RemoveOutput, error)
}

// RegisterInput defines the input for registering a session
type RegisterInput struct {
	ChannelID string
	Session   *engine.Session
}

// RegisterOutput defines the output for registering a session
type RegisterOutput struct{}

// GetInput defines the input for getting a session
type GetInput struct {
	ChannelID string
}

// GetOutput defines the output for getting a session
type GetOutput struct {
	Session *engine.Session
}

// RemoveInput defines the input for removing a session
type RemoveInput struct {
	ChannelID string
}

// RemoveOutput defines the output for removing a session
type RemoveOutput struct{}
