package rules

import (
	"time"

	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
)

// DamageRequest describes one incoming damage application
type DamageRequest struct {
	Amount              int32
	Type                entities.DamageType
	SourceParticipantID string
	Description         string
	IgnoreResistances   bool
	IgnoreImmunities    bool
}

// DamageResult reports what a damage application did to the target
type DamageResult struct {
	Entry             *entities.DamageLogEntry
	Category          entities.DamageCategory
	RawAmount         int32
	AppliedAmount     int32
	TempHPAbsorbed    int32
	DroppedToZero     bool
	InstantDeath      bool
	DeathSaveFailures int32 // failures accrued by taking damage while down
}

// EffectiveDamage computes the damage after the target's defensive traits.
// Immunity wins over resistance and vulnerability; resistance halves rounding
// down; vulnerability doubles.
func EffectiveDamage(p *entities.Participant, raw int32, dt entities.DamageType, ignoreResistances, ignoreImmunities bool) (int32, entities.DamageCategory) {
	if dt == "" {
		return raw, entities.DamageCategoryNone
	}

	if p.IsImmune(dt) && !ignoreImmunities {
		return 0, entities.DamageCategoryImmune
	}
	if p.IsResistant(dt) && !ignoreResistances {
		return raw / 2, entities.DamageCategoryResisted
	}
	if p.IsVulnerable(dt) {
		return raw * 2, entities.DamageCategoryVulnerable
	}
	return raw, entities.DamageCategoryNone
}

// ApplyDamage runs one damage application against a participant: defensive
// trait math, temporary HP absorption, the drop-to-zero transition, the
// instant-death rule, and the audit log entry. entryID and conditionID are
// pre-generated identifiers for the log entry and for the unconscious
// condition should the target drop.
func ApplyDamage(e *entities.Encounter, target *entities.Participant, req DamageRequest, entryID, conditionID string, now time.Time) (*DamageResult, error) {
	if req.Amount < 0 {
		return nil, errors.InvalidArgumentf("damage amount must not be negative, got %d", req.Amount)
	}
	if target.Dead {
		return nil, errors.FailedPreconditionf("participant %s is dead", target.ID)
	}

	effective, category := EffectiveDamage(target, req.Amount, req.Type, req.IgnoreResistances, req.IgnoreImmunities)

	result := &DamageResult{
		Category:  category,
		RawAmount: req.Amount,
	}

	// Temporary HP absorbs first; the remainder spills to current HP
	spill := effective
	if target.TempHP > 0 && spill > 0 {
		absorbed := spill
		if absorbed > target.TempHP {
			absorbed = target.TempHP
		}
		target.TempHP -= absorbed
		spill -= absorbed
		result.TempHPAbsorbed = absorbed
	}

	wasAtZero := target.CurrentHP == 0

	target.CurrentHP -= spill
	if target.CurrentHP < 0 {
		target.CurrentHP = 0
	}
	result.AppliedAmount = effective

	switch {
	case wasAtZero && effective >= target.MaxHP:
		// Massive damage to a downed participant kills outright
		markDead(target)
		result.InstantDeath = true
	case wasAtZero && effective > 0:
		// Damage while at 0 HP counts as a death-save failure (RAW)
		target.Stable = false
		target.DeathSaveFailures++
		result.DeathSaveFailures = 1
		if target.DeathSaveFailures >= 3 {
			target.DeathSaveFailures = 3
			markDead(target)
		}
	case !wasAtZero && target.CurrentHP == 0:
		DropToZero(e, target, conditionID)
		result.DroppedToZero = true
	}

	entry := &entities.DamageLogEntry{
		ID:                  entryID,
		EncounterID:         e.ID,
		ParticipantID:       target.ID,
		SourceParticipantID: req.SourceParticipantID,
		Round:               e.Round,
		RawAmount:           req.Amount,
		DamageType:          req.Type,
		Category:            category,
		AppliedAmount:       effective,
		Description:         req.Description,
		Timestamp:           now,
	}
	e.DamageLog = append(e.DamageLog, entry)
	result.Entry = entry

	return result, nil
}

// DropToZero is the explicit transition a participant takes when damage
// reduces current HP to 0: unconscious is applied and the death-save
// counters reset. Kept separate from the damage math so the transition is
// testable on its own.
func DropToZero(e *entities.Encounter, p *entities.Participant, conditionID string) {
	p.CurrentHP = 0
	p.DeathSaveSuccesses = 0
	p.DeathSaveFailures = 0
	p.Stable = false

	// ApplyCondition only fails on unknown names or bad durations; neither
	// can happen here.
	_, _, _ = ApplyCondition(p, ApplyConditionParams{
		ConditionID:  conditionID,
		Name:         entities.ConditionUnconscious,
		DurationType: entities.DurationUntilRemoved,
		Source:       "dropped to 0 hit points",
	}, e.Round)
}

func markDead(p *entities.Participant) {
	p.Dead = true
	p.Stable = false
	p.CurrentHP = 0
}

// HealResult reports what a heal application did
type HealResult struct {
	Entry        *entities.DamageLogEntry
	AmountHealed int32
	Regained     bool // true when healing brought the participant up from 0
}

// Heal restores current HP up to the maximum. Healing a participant at 0 HP
// brings them back to consciousness: unconscious is removed and death saves
// reset. Dead participants cannot be healed.
func Heal(e *entities.Encounter, target *entities.Participant, amount int32, description, entryID string, now time.Time) (*HealResult, error) {
	if amount < 0 {
		return nil, errors.InvalidArgumentf("healing amount must not be negative, got %d", amount)
	}
	if target.Dead {
		return nil, errors.FailedPreconditionf("participant %s is dead and cannot be healed", target.ID)
	}

	wasAtZero := target.CurrentHP == 0

	healed := amount
	if target.CurrentHP+healed > target.MaxHP {
		healed = target.MaxHP - target.CurrentHP
	}
	target.CurrentHP += healed

	result := &HealResult{AmountHealed: healed}

	if wasAtZero && target.CurrentHP > 0 {
		regainConsciousness(target)
		result.Regained = true
	}

	entry := &entities.DamageLogEntry{
		ID:            entryID,
		EncounterID:   e.ID,
		ParticipantID: target.ID,
		Round:         e.Round,
		RawAmount:     amount,
		AppliedAmount: healed,
		Healing:       true,
		Description:   description,
		Timestamp:     now,
	}
	e.DamageLog = append(e.DamageLog, entry)
	result.Entry = entry

	return result, nil
}

func regainConsciousness(p *entities.Participant) {
	RemoveConditionByName(p, entities.ConditionUnconscious)
	p.DeathSaveSuccesses = 0
	p.DeathSaveFailures = 0
	p.Stable = false
}

// SetTempHP grants temporary hit points. Temporary HP does not stack: the
// higher of the existing and new amounts is kept.
func SetTempHP(p *entities.Participant, amount int32) (int32, error) {
	if amount < 0 {
		return 0, errors.InvalidArgumentf("temporary HP must not be negative, got %d", amount)
	}
	if amount > p.TempHP {
		p.TempHP = amount
	}
	return p.TempHP, nil
}

// DeathSaveResult reports a death saving throw outcome
type DeathSaveResult struct {
	Roll             int32
	Success          bool
	CriticalSuccess  bool
	CriticalFailure  bool
	Successes        int32
	Failures         int32
	Stabilized       bool
	Died             bool
	RegainedHitPoint bool
}

// RollDeathSave resolves one death saving throw. Only valid for a
// participant at 0 HP, unconscious, not stable, and not dead. A natural 20
// restores 1 HP and consciousness; a natural 1 counts as two failures; 10 or
// higher is a success. Three successes stabilize, three failures kill.
func RollDeathSave(p *entities.Participant, roll int32) (*DeathSaveResult, error) {
	if roll < 1 || roll > 20 {
		return nil, errors.InvalidArgumentf("death save roll must be between 1 and 20, got %d", roll)
	}
	if p.Dead {
		return nil, errors.FailedPreconditionf("participant %s is dead", p.ID)
	}
	if p.Stable {
		return nil, errors.FailedPreconditionf("participant %s is stable and does not roll death saves", p.ID)
	}
	if p.CurrentHP > 0 || !p.IsUnconscious() {
		return nil, errors.FailedPreconditionf("participant %s is not at 0 HP and unconscious", p.ID)
	}

	result := &DeathSaveResult{Roll: roll}

	switch {
	case roll == 20:
		// Natural 20: back on your feet with 1 HP
		p.CurrentHP = 1
		regainConsciousness(p)
		result.Success = true
		result.CriticalSuccess = true
		result.RegainedHitPoint = true
	case roll == 1:
		p.DeathSaveFailures += 2
		result.CriticalFailure = true
	case roll >= 10:
		p.DeathSaveSuccesses++
		result.Success = true
	default:
		p.DeathSaveFailures++
	}

	if p.DeathSaveSuccesses > 3 {
		p.DeathSaveSuccesses = 3
	}
	if p.DeathSaveFailures > 3 {
		p.DeathSaveFailures = 3
	}

	if p.DeathSaveSuccesses >= 3 {
		p.Stable = true
		p.DeathSaveSuccesses = 0
		p.DeathSaveFailures = 0
		result.Stabilized = true
	} else if p.DeathSaveFailures >= 3 {
		markDead(p)
		result.Died = true
	}

	result.Successes = p.DeathSaveSuccesses
	result.Failures = p.DeathSaveFailures

	return result, nil
}
