package weapons

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
	"github.com/KirkDiggler/combat-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/combat-api/internal/redis"
)

const (
	// Key pattern: weapon_attack:{character_id}, a hash of attack ID to JSON
	attackKeyPrefix = "weapon_attack:"

	errAttackNil         = "weapon attack cannot be nil"
	errAttackIDEmpty     = "attack ID cannot be empty"
	errCharacterIDEmpty  = "character ID cannot be empty"
	errAttackNotFoundFmt = "weapon attack not found: %s"
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

// NewRedisRepository creates a new Redis repository for weapon attacks
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

// Save creates or replaces a weapon attack
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Attack == nil {
		return nil, errors.InvalidArgument(errAttackNil)
	}
	if input.Attack.ID == "" {
		return nil, errors.InvalidArgument(errAttackIDEmpty)
	}
	if input.Attack.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	attack := input.Attack
	if attack.CreatedAt == 0 {
		attack.CreatedAt = r.clock.Now().Unix()
	}

	attackJSON, err := json.Marshal(attack)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal weapon attack")
	}

	key := r.buildKey(attack.CharacterID)
	if err := r.client.HSet(ctx, key, attack.ID, attackJSON).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store weapon attack in Redis")
	}

	return &SaveOutput{
		Attack: attack,
	}, nil
}

// Get retrieves one weapon attack for a character
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.AttackID == "" {
		return nil, errors.InvalidArgument(errAttackIDEmpty)
	}

	key := r.buildKey(input.CharacterID)

	attackJSON, err := r.client.HGet(ctx, key, input.AttackID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf(errAttackNotFoundFmt, input.AttackID)
		}
		return nil, errors.Wrapf(err, "failed to get weapon attack from Redis")
	}

	var attack entities.WeaponAttack
	if err := json.Unmarshal([]byte(attackJSON), &attack); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal weapon attack")
	}

	return &GetOutput{
		Attack: &attack,
	}, nil
}

// ListByCharacter retrieves all weapon attacks saved for a character, oldest
// first.
func (r *redisRepository) ListByCharacter(ctx context.Context, input ListByCharacterInput) (*ListByCharacterOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := r.buildKey(input.CharacterID)

	entries, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list weapon attacks from Redis")
	}

	attacks := make([]*entities.WeaponAttack, 0, len(entries))
	for _, attackJSON := range entries {
		var attack entities.WeaponAttack
		if err := json.Unmarshal([]byte(attackJSON), &attack); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal weapon attack")
		}
		attacks = append(attacks, &attack)
	}

	// HGetAll ordering is unspecified
	sort.Slice(attacks, func(i, j int) bool {
		if attacks[i].CreatedAt != attacks[j].CreatedAt {
			return attacks[i].CreatedAt < attacks[j].CreatedAt
		}
		return attacks[i].ID < attacks[j].ID
	})

	return &ListByCharacterOutput{
		Attacks: attacks,
	}, nil
}

// Delete removes a weapon attack
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.AttackID == "" {
		return nil, errors.InvalidArgument(errAttackIDEmpty)
	}

	key := r.buildKey(input.CharacterID)

	deleted, err := r.client.HDel(ctx, key, input.AttackID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete weapon attack from Redis")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf(errAttackNotFoundFmt, input.AttackID)
	}

	return &DeleteOutput{}, nil
}

// buildKey creates the Redis key for a character's weapon attacks
func (r *redisRepository) buildKey(characterID string) string {
	return fmt.Sprintf("%s%s", attackKeyPrefix, characterID)
}
