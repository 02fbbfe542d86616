// Package combat implements the combat orchestrator: encounter lifecycle,
// initiative and turns, damage and death saves, attack resolution, and
// condition management. Every mutating operation loads the encounter
// aggregate, applies a pure rules transition to a working copy, and saves the
// whole aggregate back, so a failed operation never leaves partial state.
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/KirkDiggler/combat-api/internal/orchestrators/combat Service

import (
	"context"
	"fmt"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
	"github.com/KirkDiggler/combat-api/internal/pkg/clock"
	"github.com/KirkDiggler/combat-api/internal/pkg/idgen"
	"github.com/KirkDiggler/combat-api/internal/repositories/encounters"
	"github.com/KirkDiggler/combat-api/internal/repositories/weapons"
)

// Service defines the interface for combat operations
type Service interface {
	// Encounter lifecycle and turn management
	StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error)
	RollInitiative(ctx context.Context, input *RollInitiativeInput) (*RollInitiativeOutput, error)
	ReorderInitiative(ctx context.Context, input *ReorderInitiativeInput) (*ReorderInitiativeOutput, error)
	AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error)
	EndCombat(ctx context.Context, input *EndCombatInput) (*EndCombatOutput, error)
	GetCombatState(ctx context.Context, input *GetCombatStateInput) (*GetCombatStateOutput, error)
	GetEncounter(ctx context.Context, input *GetEncounterInput) (*GetEncounterOutput, error)

	// Hit points and death saves
	ApplyDamage(ctx context.Context, input *ApplyDamageInput) (*ApplyDamageOutput, error)
	HealDamage(ctx context.Context, input *HealDamageInput) (*HealDamageOutput, error)
	SetTempHP(ctx context.Context, input *SetTempHPInput) (*SetTempHPOutput, error)
	RollDeathSave(ctx context.Context, input *RollDeathSaveInput) (*RollDeathSaveOutput, error)
	GetDamageLog(ctx context.Context, input *GetDamageLogInput) (*GetDamageLogOutput, error)

	// Attack resolution
	ResolveAttack(ctx context.Context, input *ResolveAttackInput) (*ResolveAttackOutput, error)
	ResolveSpellAttack(ctx context.Context, input *ResolveSpellAttackInput) (*ResolveSpellAttackOutput, error)
	CreateWeaponAttack(ctx context.Context, input *CreateWeaponAttackInput) (*CreateWeaponAttackOutput, error)
	GetCharacterWeapons(ctx context.Context, input *GetCharacterWeaponsInput) (*GetCharacterWeaponsOutput, error)

	// Conditions
	ApplyCondition(ctx context.Context, input *ApplyConditionInput) (*ApplyConditionOutput, error)
	RemoveCondition(ctx context.Context, input *RemoveConditionInput) (*RemoveConditionOutput, error)
	AttemptSave(ctx context.Context, input *AttemptSaveInput) (*AttemptSaveOutput, error)
	GetActiveConditions(ctx context.Context, input *GetActiveConditionsInput) (*GetActiveConditionsOutput, error)
	GetMechanicalEffects(ctx context.Context, input *GetMechanicalEffectsInput) (*GetMechanicalEffectsOutput, error)
	GetConditionsLibrary(ctx context.Context, input *GetConditionsLibraryInput) (*GetConditionsLibraryOutput, error)
}

// Authorizer decides whether the caller may operate on an encounter's
// session. The orchestrator propagates its decision without adding checks of
// its own.
type Authorizer interface {
	Authorize(ctx context.Context, sessionID string) error
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	EncounterRepo encounters.Repository
	WeaponRepo    weapons.Repository
	IDGenerator   idgen.Generator
	Clock         clock.Clock
	Roller        toolkitdice.Roller

	// EventBus is optional; when present, combat state changes can be
	// observed by toolkit subscribers.
	EventBus events.EventBus

	// Authorizer is optional; when nil, all callers are allowed.
	Authorizer Authorizer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EncounterRepo == nil {
		vb.RequiredField("EncounterRepo")
	}
	if c.WeaponRepo == nil {
		vb.RequiredField("WeaponRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type orchestrator struct {
	encounterRepo encounters.Repository
	weaponRepo    weapons.Repository
	idGen         idgen.Generator
	clock         clock.Clock
	roller        toolkitdice.Roller
	eventBus      events.EventBus
	authorizer    Authorizer
}

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		encounterRepo: cfg.EncounterRepo,
		weaponRepo:    cfg.WeaponRepo,
		idGen:         cfg.IDGenerator,
		clock:         cfg.Clock,
		roller:        cfg.Roller,
		eventBus:      cfg.EventBus,
		authorizer:    cfg.Authorizer,
	}, nil
}

// newID builds a typed identifier like "enc_<id>" or "cond_<id>"
func (o *orchestrator) newID(kind string) string {
	return fmt.Sprintf("%s_%s", kind, o.idGen.Generate())
}

// authorize propagates the caller-supplied authorization decision. Failures
// surface as PermissionDenied regardless of what the authorizer returned.
func (o *orchestrator) authorize(ctx context.Context, sessionID string) error {
	if o.authorizer == nil {
		return nil
	}
	if err := o.authorizer.Authorize(ctx, sessionID); err != nil {
		if errors.IsPermissionDenied(err) {
			return err
		}
		return errors.WrapWithCode(err, errors.CodePermissionDenied, "not authorized for session "+sessionID)
	}
	return nil
}

// loadEncounter fetches and authorizes an encounter
func (o *orchestrator) loadEncounter(ctx context.Context, encounterID string) (*entities.Encounter, error) {
	if encounterID == "" {
		return nil, errors.InvalidArgument("encounter ID is required")
	}

	getOutput, err := o.encounterRepo.Get(ctx, encounters.GetInput{ID: encounterID})
	if err != nil {
		return nil, err
	}

	if err := o.authorize(ctx, getOutput.Encounter.SessionID); err != nil {
		return nil, err
	}

	return getOutput.Encounter, nil
}

// saveEncounter persists the mutated aggregate
func (o *orchestrator) saveEncounter(ctx context.Context, encounter *entities.Encounter) error {
	_, err := o.encounterRepo.Save(ctx, encounters.SaveInput{Encounter: encounter})
	return err
}

// rollD20 rolls a single d20 with the configured roller
func (o *orchestrator) rollD20() (int32, error) {
	face, err := o.roller.Roll(20)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll d20")
	}
	// nolint:gosec // die face fits in int32
	return int32(face), nil
}
