// Package rules implements the combat state transitions: initiative and turn
// progression, damage and death saves, attack resolution math, and condition
// bookkeeping. Everything here is pure computation over the encounter
// aggregate; orchestrators own loading, persistence, and logging.
package rules

import (
	"fmt"

	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
	"github.com/KirkDiggler/combat-api/internal/pkg/dice"
)

// ApplyConditionParams describes one condition application
type ApplyConditionParams struct {
	// ConditionID is used when a new ActiveCondition is created. Refreshing
	// an existing condition keeps its original ID.
	ConditionID string

	Name           entities.ConditionType
	DurationType   entities.DurationType
	DurationRounds int32
	SaveDC         int32
	SaveAbility    entities.Ability
	Source         string
}

// ApplyCondition creates or refreshes an active condition on the participant.
// Reapplying an already-active condition refreshes its duration and save
// parameters in place and returns an advisory warning. Warnings are also
// returned for exclusion conflicts (e.g. prone on a flying participant);
// they never fail the application.
func ApplyCondition(p *entities.Participant, params ApplyConditionParams, currentRound int32) (*entities.ActiveCondition, []string, error) {
	def, ok := DefinitionFor(params.Name)
	if !ok {
		return nil, nil, errors.InvalidArgumentf("unknown condition: %s", params.Name)
	}

	switch params.DurationType {
	case entities.DurationRounds:
		if params.DurationRounds <= 0 {
			return nil, nil, errors.InvalidArgumentf("duration in rounds must be positive, got %d", params.DurationRounds)
		}
	case entities.DurationUntilSave, entities.DurationPermanent, entities.DurationUntilRemoved:
		// no duration value needed
	default:
		return nil, nil, errors.InvalidArgumentf("unknown duration type: %s", params.DurationType)
	}

	var warnings []string
	for _, exclusive := range def.ExclusiveWith {
		if p.HasCondition(exclusive) {
			warnings = append(warnings, fmt.Sprintf("%s conflicts with active condition %s", params.Name, exclusive))
		}
	}

	if existing, ok := p.Condition(params.Name); ok {
		warnings = append(warnings, fmt.Sprintf("%s was already active; duration refreshed", params.Name))

		existing.DurationType = params.DurationType
		existing.RemainingRounds = params.DurationRounds
		existing.SaveDC = params.SaveDC
		existing.SaveAbility = params.SaveAbility
		if params.Source != "" {
			existing.Source = params.Source
		}
		existing.AppliedRound = currentRound
		return existing, warnings, nil
	}

	condition := &entities.ActiveCondition{
		ID:              params.ConditionID,
		ParticipantID:   p.ID,
		Name:            params.Name,
		DurationType:    params.DurationType,
		RemainingRounds: params.DurationRounds,
		SaveDC:          params.SaveDC,
		SaveAbility:     params.SaveAbility,
		Source:          params.Source,
		AppliedRound:    currentRound,
	}
	p.Conditions = append(p.Conditions, condition)

	return condition, warnings, nil
}

// FindCondition locates an active condition anywhere in the encounter
func FindCondition(e *entities.Encounter, conditionID string) (*entities.ActiveCondition, *entities.Participant, bool) {
	for _, p := range e.Participants {
		for _, c := range p.Conditions {
			if c.ID == conditionID {
				return c, p, true
			}
		}
	}
	return nil, nil, false
}

// RemoveConditionByID removes one condition from whichever participant holds
// it. Returns false if no condition with that ID exists.
func RemoveConditionByID(e *entities.Encounter, conditionID string) bool {
	for _, p := range e.Participants {
		for i, c := range p.Conditions {
			if c.ID == conditionID {
				p.Conditions = append(p.Conditions[:i], p.Conditions[i+1:]...)
				return true
			}
		}
	}
	return false
}

// RemoveConditionByName removes a participant's condition by name. Returns
// false if the condition was not active.
func RemoveConditionByName(p *entities.Participant, name entities.ConditionType) bool {
	for i, c := range p.Conditions {
		if c.Name == name {
			p.Conditions = append(p.Conditions[:i], p.Conditions[i+1:]...)
			return true
		}
	}
	return false
}

// SaveResult is the outcome of a saving throw against a condition
type SaveResult struct {
	Saved            bool
	ConditionRemoved bool
}

// AttemptSave resolves a saving throw against a condition's stored save DC.
// Success removes the condition when its duration type is until_save; other
// duration types report the save but leave the condition in place.
func AttemptSave(e *entities.Encounter, cond *entities.ActiveCondition, holder *entities.Participant, saveRoll int32) (*SaveResult, error) {
	if cond.SaveDC <= 0 {
		return nil, errors.NotFoundf("condition %s has no save DC configured", cond.ID)
	}
	if saveRoll < 1 || saveRoll > 20 {
		return nil, errors.InvalidArgumentf("save roll must be between 1 and 20, got %d", saveRoll)
	}

	modifier := abilityModifier(holder, cond.SaveAbility)
	saved := saveRoll+modifier >= cond.SaveDC

	result := &SaveResult{Saved: saved}
	if saved && cond.DurationType == entities.DurationUntilSave {
		RemoveConditionByID(e, cond.ID)
		result.ConditionRemoved = true
	}

	return result, nil
}

func abilityModifier(p *entities.Participant, ability entities.Ability) int32 {
	if ability == "" {
		return 0
	}
	return int32(dice.Modifier(int(p.Abilities.Score(ability))))
}

// MechanicalEffects aggregates all of a participant's active conditions into
// one normalized effect set using the condition library.
func MechanicalEffects(p *entities.Participant) *Effects {
	merged := &Effects{SpeedMultiplier: 1}
	for _, c := range p.Conditions {
		def, ok := DefinitionFor(c.Name)
		if !ok {
			continue
		}
		merged.merge(def.Effects)
	}
	return merged
}

// TickRoundConditions decrements every rounds-type condition in the
// encounter by one round and removes those that expire. Called once per
// round wrap by the turn engine. Returns the expired conditions.
func TickRoundConditions(e *entities.Encounter) []*entities.ActiveCondition {
	var expired []*entities.ActiveCondition

	for _, p := range e.Participants {
		remaining := p.Conditions[:0]
		for _, c := range p.Conditions {
			if c.DurationType == entities.DurationRounds {
				c.RemainingRounds--
				if c.RemainingRounds <= 0 {
					expired = append(expired, c)
					continue
				}
			}
			remaining = append(remaining, c)
		}
		p.Conditions = remaining
	}

	return expired
}
