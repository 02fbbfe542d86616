package encounters

import (
	"context"
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
	mu         sync.RWMutex
	encounters map[string]*entities.Encounter
	clock      clock.Clock
}

// NewInMemoryRepository creates an in-memory encounter repository. It clones
// on both read and write, so callers can mutate what they get back without
// touching stored state until the next Save.
func NewInMemoryRepository(cfg *InMemoryConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &inMemoryRepository{
		encounters: make(map[string]*entities.Encounter),
		clock:      cfg.Clock,
	}, nil
}

// Ensure inMemoryRepository implements Repository
var _ Repository = (*inMemoryRepository)(nil)

// Get retrieves an encounter by ID
func (r *inMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	encounter, ok := r.encounters[input.ID]
	if !ok {
		return nil, errors.NotFoundf("encounter not found: %s", input.ID)
	}

	return &GetOutput{
		Encounter: encounter.Clone(),
	}, nil
}

// Save creates or replaces an encounter
func (r *inMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
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

	r.mu.Lock()
	defer r.mu.Unlock()

	r.encounters[encounter.ID] = encounter.Clone()

	return &SaveOutput{
		Encounter: encounter,
	}, nil
}

// Delete removes an encounter
func (r *inMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errEncounterIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.encounters[input.ID]; !ok {
		return nil, errors.NotFoundf("encounter not found: %s", input.ID)
	}
	delete(r.encounters, input.ID)

	return &DeleteOutput{}, nil
}
