package sessions

import (
	"context"
	"sync"

	"github.com/pocketrpg/battle-core/internal/engine"
	"github.com/pocketrpg/battle-core/internal/errors"
)

const (
	errChannelIDEmpty = "channel ID cannot be empty"
	errSessionNil     = "session cannot be nil"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*engine.Session
}

// NewInMemory creates a new in-memory registry
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*engine.Session),
	}
}

// Register claims the channel for a session
func (r *InMemoryRepository) Register(_ context.Context, input RegisterInput) (*RegisterOutput, error) {
	if input.ChannelID == "" {
		return nil, errors.InvalidArgument(errChannelIDEmpty)
	}
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ChannelID]; exists {
		return nil, errors.AlreadyExistsf("channel %s already has an active battle", input.ChannelID)
	}
	r.store[input.ChannelID] = input.Session

	return &RegisterOutput{}, nil
}

// Get retrieves the live session for a channel
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ChannelID == "" {
		return nil, errors.InvalidArgument(errChannelIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.store[input.ChannelID]
	if !exists {
		return nil, errors.NotFoundf("channel %s has no active battle", input.ChannelID)
	}

	return &GetOutput{Session: session}, nil
}

// Remove releases the channel
func (r *InMemoryRepository) Remove(_ context.Context, input RemoveInput) (*RemoveOutput, error) {
	if input.ChannelID == "" {
		return nil, errors.InvalidArgument(errChannelIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ChannelID]; !exists {
		return nil, errors.NotFoundf("channel %s has no active battle", input.ChannelID)
	}
	delete(r.store, input.ChannelID)

	return &RemoveOutput{}, nil
}
