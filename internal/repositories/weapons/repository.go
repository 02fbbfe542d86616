// Package weapons provides the repository interface and storage
// implementations for saved weapon attack configurations.
package weapons

import (
	"context"

	"github.com/KirkDiggler/combat-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=weaponsmock github.com/KirkDiggler/combat-api/internal/repositories/weapons Repository

// SaveInput contains parameters for persisting a weapon attack
type SaveInput struct {
	Attack *entities.WeaponAttack
}

// SaveOutput contains the result of persisting a weapon attack
type SaveOutput struct {
	Attack *entities.WeaponAttack
}

// GetInput contains parameters for retrieving one weapon attack
type GetInput struct {
	CharacterID string
	AttackID    string
}

// GetOutput contains the result of retrieving one weapon attack
type GetOutput struct {
	Attack *entities.WeaponAttack
}

// ListByCharacterInput contains parameters for listing a character's attacks
type ListByCharacterInput struct {
	CharacterID string
}

// ListByCharacterOutput contains a character's saved weapon attacks
type ListByCharacterOutput struct {
	Attacks []*entities.WeaponAttack
}

// DeleteInput contains parameters for deleting a weapon attack
type DeleteInput struct {
	CharacterID string
	AttackID    string
}

// DeleteOutput contains the result of deleting a weapon attack
type DeleteOutput struct{}

// Repository defines the interface for weapon attack storage operations.
// Attacks are keyed per character so a character's loadout loads in one call.
type Repository interface {
	// Save creates or replaces a weapon attack
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves one weapon attack for a character
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListByCharacter retrieves all weapon attacks saved for a character
	ListByCharacter(ctx context.Context, input ListByCharacterInput) (*ListByCharacterOutput, error)

	// Delete removes a weapon attack
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
