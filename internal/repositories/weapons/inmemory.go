package weapons

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
	"github.com/KirkDiggler/combat-api/internal/pkg/clock"
)

// InMemoryConfig holds the configuration for the in-memory repository
type InMemoryConfig struct {
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *InMemoryConfig) Validate() error {
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type inMemoryRepository struct {
	mu sync.RWMutex
	// character ID -> attack ID -> attack
	attacks map[string]map[string]*entities.WeaponAttack
	clock   clock.Clock
}

// NewInMemoryRepository creates an in-memory weapon attack repository
func NewInMemoryRepository(cfg *InMemoryConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &inMemoryRepository{
		attacks: make(map[string]map[string]*entities.WeaponAttack),
		clock:   cfg.Clock,
	}, nil
}

// Ensure inMemoryRepository implements Repository
var _ Repository = (*inMemoryRepository)(nil)

// Save creates or replaces a weapon attack
func (r *inMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
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

	r.mu.Lock()
	defer r.mu.Unlock()

	byID, ok := r.attacks[attack.CharacterID]
	if !ok {
		byID = make(map[string]*entities.WeaponAttack)
		r.attacks[attack.CharacterID] = byID
	}
	stored := *attack
	byID[attack.ID] = &stored

	return &SaveOutput{
		Attack: attack,
	}, nil
}

// Get retrieves one weapon attack for a character
func (r *inMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.AttackID == "" {
		return nil, errors.InvalidArgument(errAttackIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	attack, ok := r.attacks[input.CharacterID][input.AttackID]
	if !ok {
		return nil, errors.NotFoundf(errAttackNotFoundFmt, input.AttackID)
	}

	copied := *attack
	return &GetOutput{
		Attack: &copied,
	}, nil
}

// ListByCharacter retrieves all weapon attacks saved for a character, oldest
// first.
func (r *inMemoryRepository) ListByCharacter(_ context.Context, input ListByCharacterInput) (*ListByCharacterOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	byID := r.attacks[input.CharacterID]
	attacks := make([]*entities.WeaponAttack, 0, len(byID))
	for _, attack := range byID {
		copied := *attack
		attacks = append(attacks, &copied)
	}

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
func (r *inMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.AttackID == "" {
		return nil, errors.InvalidArgument(errAttackIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.attacks[input.CharacterID][input.AttackID]; !ok {
		return nil, errors.NotFoundf(errAttackNotFoundFmt, input.AttackID)
	}
	delete(r.attacks[input.CharacterID], input.AttackID)

	return &DeleteOutput{}, nil
}
