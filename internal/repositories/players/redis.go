package players

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/pocketrpg/battle-core/internal/errors"
	"github.com/pocketrpg/battle-core/internal/pkg/clock"
	redisclient "github.com/pocketrpg/battle-core/internal/redis"
)

const (
	playerKeyPrefix = "player:"

	// Error messages
	errPlayerNil     = "player data cannot be nil"
	errPlayerIDEmpty = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis player repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.PlayerData == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	if input.PlayerData.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := playerKeyPrefix + input.PlayerData.ID

	// Preserve the original creation time on upsert
	now := r.clock.Now().Unix()
	stored := *input.PlayerData
	stored.UpdatedAt = now
	if stored.CreatedAt == 0 {
		existing, err := r.client.Get(ctx, key).Result()
		if err != nil && err != redis.Nil {
			return nil, errors.Wrapf(err, "failed to check for existing player")
		}
		if err == redis.Nil {
			stored.CreatedAt = now
		} else {
			var prior Data
			if err := json.Unmarshal([]byte(existing), &prior); err != nil {
				return nil, errors.Wrapf(err, "failed to unmarshal existing player data")
			}
			stored.CreatedAt = prior.CreatedAt
		}
	}

	data, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // No TTL for players
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save player")
	}

	return &SaveOutput{PlayerData: &stored}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := playerKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("player with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get player")
	}

	var playerData Data
	if err := json.Unmarshal([]byte(result), &playerData); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal player data")
	}

	return &GetOutput{PlayerData: &playerData}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	key := playerKeyPrefix + input.ID
	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete player")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("player with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}
