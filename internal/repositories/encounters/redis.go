package encounters

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
	"github.com/KirkDiggler/combat-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/combat-api/internal/redis"
)

const (
	// Key pattern: encounter:{id}
	encounterKeyPrefix = "encounter:"

	errEncounterNil     = "encounter cannot be nil"
	errEncounterIDEmpty = "encounter ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for encounters
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Get retrieves an encounter by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	key := r.buildKey(input.ID)

	encounterJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("encounter not found: %s", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get encounter from Redis")
	}

	var encounter entities.Encounter
	if err := json.Unmarshal([]byte(encounterJSON), &encounter); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal encounter")
	}

	return &GetOutput{
		Encounter: &encounter,
	}, nil
}

// Save creates or replaces an encounter. The whole aggregate is written in
// one SET, so a failed combat operation never leaves a partial record.
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Encounter == nil {
		return nil, errors.InvalidArgument(errEncounterNil)
	}
	if input.Encounter.ID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	encounter := input.Encounter
	encounter.UpdatedAt = r.clock.Now().Unix()
	if encounter.CreatedAt == 0 {
		encounter.CreatedAt = encounter.UpdatedAt
	}

	encounterJSON, err := json.Marshal(encounter)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal encounter")
	}

	key := r.buildKey(encounter.ID)
	if err := r.client.Set(ctx, key, encounterJSON, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store encounter in Redis")
	}

	return &SaveOutput{
		Encounter: encounter,
	}, nil
}

// Delete removes an encounter
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	key := r.buildKey(input.ID)

	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete encounter from Redis")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("encounter not found: %s", input.ID)
	}

	return &DeleteOutput{}, nil
}

// buildKey creates the Redis key for an encounter
func (r *redisRepository) buildKey(id string) string {
	return fmt.Sprintf("%s%s", encounterKeyPrefix, id)
}
