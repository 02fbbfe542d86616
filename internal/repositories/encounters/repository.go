// Package encounters provides the repository interface and storage
// implementations for combat encounter aggregates.
package encounters

import (
	"context"

	"github.com/KirkDiggler/combat-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=encountersmock github.com/KirkDiggler/combat-api/internal/repositories/encounters Repository

// GetInput contains parameters for retrieving an encounter
type GetInput struct {
	ID string
}

// GetOutput contains the result of retrieving an encounter
type GetOutput struct {
	Encounter *entities.Encounter
}

// SaveInput contains parameters for persisting an encounter
type SaveInput struct {
	Encounter *entities.Encounter
}

// SaveOutput contains the result of persisting an encounter
type SaveOutput struct {
	Encounter *entities.Encounter
}

// DeleteInput contains parameters for deleting an encounter
type DeleteInput struct {
	ID string
}

// DeleteOutput contains the result of deleting an encounter
type DeleteOutput struct{}

// Repository defines the interface for encounter storage operations. The
// encounter is stored and loaded as a whole aggregate: Save replaces the
// entire record, which keeps every combat mutation atomic at the storage
// level.
type Repository interface {
	// Get retrieves an encounter by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save creates or replaces an encounter
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes an encounter
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
