package players

import (
	"context"
	"sync"

	"github.com/pocketrpg/battle-core/internal/errors"
	"github.com/pocketrpg/battle-core/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*Data
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		clock: clock.New(),
		store: make(map[string]*Data),
	}
}

// NewInMemoryWithClock creates an in-memory repository with an injected
// clock for deterministic timestamps in tests.
func NewInMemoryWithClock(c clock.Clock) *InMemoryRepository {
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]*Data),
	}
}

// Save upserts a player snapshot
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.PlayerData == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	if input.PlayerData.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now().Unix()
	stored := input.PlayerData.Clone()
	stored.UpdatedAt = now
	if stored.CreatedAt == 0 {
		if prior, exists := r.store[stored.ID]; exists {
			stored.CreatedAt = prior.CreatedAt
		} else {
			stored.CreatedAt = now
		}
	}
	r.store[stored.ID] = stored

	return &SaveOutput{PlayerData: stored.Clone()}, nil
}

// Get retrieves a player snapshot by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("player with ID %s not found", input.ID)
	}

	// Return a copy to prevent external modification
	return &GetOutput{PlayerData: data.Clone()}, nil
}

// Delete removes a player by ID
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("player with ID %s not found", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}
