package combat

import (
	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/pkg/dice"
	"github.com/KirkDiggler/combat-api/internal/rules"
)

// ParticipantSetup is one roster entry supplied to StartCombat
type ParticipantSetup struct {
	Name string

	// CharacterID and MonsterRef are mutually exclusive source references
	CharacterID string
	MonsterRef  string

	InitiativeModifier int32

	// FixedInitiativeRoll pins the d20 result instead of rolling; 0 means
	// the engine rolls.
	FixedInitiativeRoll int32

	ArmorClass int32
	MaxHP      int32

	// CurrentHP defaults to MaxHP when 0
	CurrentHP int32

	Abilities       entities.AbilityScores
	Resistances     []entities.DamageType
	Vulnerabilities []entities.DamageType
	Immunities      []entities.DamageType
	Surprised       bool
}

// StartCombatInput defines the request for starting an encounter
type StartCombatInput struct {
	SessionID     string
	SurpriseRound bool
	Participants  []*ParticipantSetup
}

// StartCombatOutput defines the response for starting an encounter
type StartCombatOutput struct {
	Encounter *entities.Encounter
}

// RollInitiativeInput defines the request for rolling one participant's initiative
type RollInitiativeInput struct {
	EncounterID   string
	ParticipantID string

	// Roll pins the d20 result instead of rolling; 0 means the engine rolls
	Roll int32

	// Modifier overrides the participant's stored initiative modifier
	Modifier *int32
}

// RollInitiativeOutput defines the response for rolling initiative
type RollInitiativeOutput struct {
	Participant *entities.Participant
	TurnOrder   []*entities.Participant
}

// ReorderInitiativeInput defines the request for a manual initiative override
type ReorderInitiativeInput struct {
	EncounterID   string
	ParticipantID string
	NewInitiative int32
}

// ReorderInitiativeOutput defines the response for a manual initiative override
type ReorderInitiativeOutput struct {
	Participant *entities.Participant
	TurnOrder   []*entities.Participant
}

// AdvanceTurnInput defines the request for advancing the turn pointer
type AdvanceTurnInput struct {
	EncounterID string
}

// AdvanceTurnOutput defines the response for advancing the turn pointer
type AdvanceTurnOutput struct {
	Round             int32
	TurnIndex         int
	RoundAdvanced     bool
	Current           *entities.Participant
	ExpiredConditions []*entities.ActiveCondition
}

// EndCombatInput defines the request for ending an encounter
type EndCombatInput struct {
	EncounterID string
}

// EndCombatOutput defines the response for ending an encounter
type EndCombatOutput struct {
	Encounter *entities.Encounter

	// AlreadyCompleted is true when the encounter was ended before this
	// call; ending twice is a no-op success.
	AlreadyCompleted bool
}

// GetCombatStateInput defines the request for the combat state projection
type GetCombatStateInput struct {
	EncounterID string
}

// GetCombatStateOutput defines the response for the combat state projection
type GetCombatStateOutput struct {
	EncounterID      string
	Status           entities.EncounterStatus
	Round            int32
	SurpriseRound    bool
	CurrentTurnIndex *int
	Current          *entities.Participant
	TurnOrder        []*entities.Participant
}

// GetEncounterInput defines the request for fetching a full encounter
type GetEncounterInput struct {
	EncounterID string
}

// GetEncounterOutput defines the response for fetching a full encounter
type GetEncounterOutput struct {
	Encounter *entities.Encounter
}

// ApplyDamageInput defines the request for applying damage
type ApplyDamageInput struct {
	EncounterID         string
	ParticipantID       string
	Amount              int32
	DamageType          entities.DamageType
	SourceParticipantID string
	Description         string
	IgnoreResistances   bool
	IgnoreImmunities    bool
}

// ApplyDamageOutput defines the response for applying damage
type ApplyDamageOutput struct {
	Result      *rules.DamageResult
	Participant *entities.Participant
}

// HealDamageInput defines the request for healing
type HealDamageInput struct {
	EncounterID   string
	ParticipantID string
	Amount        int32
	Description   string
}

// HealDamageOutput defines the response for healing
type HealDamageOutput struct {
	Result      *rules.HealResult
	Participant *entities.Participant
}

// SetTempHPInput defines the request for granting temporary hit points
type SetTempHPInput struct {
	EncounterID   string
	ParticipantID string
	Amount        int32
}

// SetTempHPOutput defines the response for granting temporary hit points
type SetTempHPOutput struct {
	// TempHP is the pool after the take-the-higher rule
	TempHP      int32
	Participant *entities.Participant
}

// RollDeathSaveInput defines the request for a death saving throw
type RollDeathSaveInput struct {
	EncounterID   string
	ParticipantID string

	// Roll pins the d20 result instead of rolling; 0 means the engine rolls
	Roll int32
}

// RollDeathSaveOutput defines the response for a death saving throw
type RollDeathSaveOutput struct {
	Result      *rules.DeathSaveResult
	Participant *entities.Participant
}

// GetDamageLogInput defines the request for reading the damage log
type GetDamageLogInput struct {
	EncounterID string

	// ParticipantID filters to one target when set
	ParticipantID string

	// Round filters to one round when positive
	Round int32
}

// GetDamageLogOutput defines the response for reading the damage log
type GetDamageLogOutput struct {
	Entries []*entities.DamageLogEntry
}

// ResolveAttackInput defines the request for resolving a weapon attack
type ResolveAttackInput struct {
	EncounterID string
	AttackerID  string
	TargetID    string

	// AttackRoll pins the d20 result instead of rolling; 0 means the
	// engine rolls.
	AttackRoll  int32
	AttackBonus int32

	// WeaponID selects one of the attacker's saved weapon attacks for
	// default damage dice, damage type, and attack bonus.
	WeaponID string

	// DamageExpression overrides the weapon's damage dice (e.g. "2d6+3")
	DamageExpression string
	DamageType       entities.DamageType

	// ForceCritical treats a hit as critical regardless of the roll
	ForceCritical bool
}

// ResolveAttackOutput defines the response for resolving a weapon attack
type ResolveAttackOutput struct {
	Outcome *rules.AttackOutcome

	// DamageRoll and Damage are nil on a miss
	DamageRoll *dice.ExpressionResult
	Damage     *rules.DamageResult
	Target     *entities.Participant
}

// SpellTargetResult is one target's outcome inside a spell attack
type SpellTargetResult struct {
	TargetID   string
	SaveRoll   int32
	SaveTotal  int32
	Saved      bool
	Damage     *rules.DamageResult
	TargetHP   int32
	TargetDead bool
}

// ResolveSpellAttackInput defines the request for resolving a save-based spell
type ResolveSpellAttackInput struct {
	EncounterID string
	CasterID    string
	TargetIDs   []string

	SpellName  string
	SpellLevel int32

	SaveDC      int32
	SaveAbility entities.Ability

	DamageExpression string
	DamageType       entities.DamageType

	// AllOrNothing skips the half-damage-on-save rule
	AllOrNothing bool

	// SaveRolls pins targets' d20 results by participant ID; missing
	// entries are engine-rolled.
	SaveRolls map[string]int32
}

// ResolveSpellAttackOutput defines the response for resolving a spell
type ResolveSpellAttackOutput struct {
	DamageRoll *dice.ExpressionResult
	Targets    []*SpellTargetResult
}

// CreateWeaponAttackInput defines the request for saving a weapon attack profile
type CreateWeaponAttackInput struct {
	CharacterID string
	Name        string
	DamageDice  string
	DamageType  entities.DamageType
	AttackBonus int32
}

// CreateWeaponAttackOutput defines the response for saving a weapon attack profile
type CreateWeaponAttackOutput struct {
	Attack *entities.WeaponAttack
}

// GetCharacterWeaponsInput defines the request for listing a character's weapons
type GetCharacterWeaponsInput struct {
	CharacterID string
}

// GetCharacterWeaponsOutput defines the response for listing a character's weapons
type GetCharacterWeaponsOutput struct {
	Attacks []*entities.WeaponAttack
}

// ApplyConditionInput defines the request for applying a condition
type ApplyConditionInput struct {
	EncounterID    string
	ParticipantID  string
	Name           entities.ConditionType
	DurationType   entities.DurationType
	DurationRounds int32
	SaveDC         int32
	SaveAbility    entities.Ability
	Source         string
}

// ApplyConditionOutput defines the response for applying a condition
type ApplyConditionOutput struct {
	Condition *entities.ActiveCondition
	Warnings  []string
}

// RemoveConditionInput defines the request for removing a condition
type RemoveConditionInput struct {
	EncounterID string
	ConditionID string
}

// RemoveConditionOutput defines the response for removing a condition
type RemoveConditionOutput struct {
	// Found is false when no condition with that ID existed; removal of a
	// missing condition is not an error.
	Found bool
}

// AttemptSaveInput defines the request for a saving throw against a condition
type AttemptSaveInput struct {
	EncounterID string
	ConditionID string

	// SaveRoll pins the d20 result instead of rolling; 0 means the engine
	// rolls.
	SaveRoll int32
}

// AttemptSaveOutput defines the response for a saving throw against a condition
type AttemptSaveOutput struct {
	Roll   int32
	Result *rules.SaveResult
}

// GetActiveConditionsInput defines the request for listing a participant's conditions
type GetActiveConditionsInput struct {
	EncounterID   string
	ParticipantID string
}

// GetActiveConditionsOutput defines the response for listing a participant's conditions
type GetActiveConditionsOutput struct {
	Conditions []*entities.ActiveCondition
}

// GetMechanicalEffectsInput defines the request for a participant's aggregated effects
type GetMechanicalEffectsInput struct {
	EncounterID   string
	ParticipantID string
}

// GetMechanicalEffectsOutput defines the response for a participant's aggregated effects
type GetMechanicalEffectsOutput struct {
	Effects    *rules.Effects
	Conditions []*entities.ActiveCondition
}

// GetConditionsLibraryInput defines the request for the condition library listing
type GetConditionsLibraryInput struct{}

// GetConditionsLibraryOutput defines the response for the condition library listing
type GetConditionsLibraryOutput struct {
	Definitions []*rules.ConditionDefinition
}
