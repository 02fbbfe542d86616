package combat

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/combat-api/internal/errors"
	"github.com/KirkDiggler/combat-api/internal/rules"
)

// ApplyCondition applies or refreshes a condition on a participant.
// Reapplying an active condition refreshes its duration and returns an
// advisory warning, as do exclusion conflicts like prone on a flyer.
func (o *orchestrator) ApplyCondition(ctx context.Context, input *ApplyConditionInput) (*ApplyConditionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ParticipantID == "" {
		return nil, errors.InvalidArgument("participant ID is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("condition name is required")
	}

	encounter, err := o.loadEncounter(ctx, input.EncounterID)
	if err != nil {
		return nil, err
	}

	participant, ok := encounter.ParticipantByID(input.ParticipantID)
	if !ok {
		return nil, errors.NotFoundf("participant not found: %s", input.ParticipantID)
	}

	condition, warnings, err := rules.ApplyCondition(participant, rules.ApplyConditionParams{
		ConditionID:    o.newID("cond"),
		Name:           input.Name,
		DurationType:   input.DurationType,
		DurationRounds: input.DurationRounds,
		SaveDC:         input.SaveDC,
		SaveAbility:    input.SaveAbility,
		Source:         input.Source,
	}, encounter.Round)
	if err != nil {
		return nil, err
	}

	if err := o.saveEncounter(ctx, encounter); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "condition applied",
		"encounter_id", encounter.ID,
		"participant_id", participant.ID,
		"condition", condition.Name,
		"condition_id", condition.ID,
		"duration_type", condition.DurationType,
		"warnings", len(warnings),
	)

	return &ApplyConditionOutput{
		Condition: condition,
		Warnings:  warnings,
	}, nil
}

// RemoveCondition removes one condition by ID. A missing condition reports
// found=false rather than an error.
func (o *orchestrator) RemoveCondition(ctx context.Context, input *RemoveConditionInput) (*RemoveConditionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ConditionID == "" {
		return nil, errors.InvalidArgument("condition ID is required")
	}

	encounter, err := o.loadEncounter(ctx, input.EncounterID)
	if err != nil {
		return nil, err
	}

	found := rules.RemoveConditionByID(encounter, input.ConditionID)
	if found {
		if err := o.saveEncounter(ctx, encounter); err != nil {
			return nil, err
		}
		slog.InfoContext(ctx, "condition removed",
			"encounter_id", encounter.ID,
			"condition_id", input.ConditionID,
		)
	}

	return &RemoveConditionOutput{Found: found}, nil
}

// AttemptSave resolves a saving throw against a condition's stored DC
func (o *orchestrator) AttemptSave(ctx context.Context, input *AttemptSaveInput) (*AttemptSaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ConditionID == "" {
		return nil, errors.InvalidArgument("condition ID is required")
	}
	if input.SaveRoll < 0 || input.SaveRoll > 20 {
		return nil, errors.InvalidArgumentf("save roll must be between 1 and 20, got %d", input.SaveRoll)
	}

	encounter, err := o.loadEncounter(ctx, input.EncounterID)
	if err != nil {
		return nil, err
	}

	condition, holder, ok := rules.FindCondition(encounter, input.ConditionID)
	if !ok {
		return nil, errors.NotFoundf("condition not found: %s", input.ConditionID)
	}

	roll := input.SaveRoll
	if roll == 0 {
		rolled, err := o.rollD20()
		if err != nil {
			return nil, err
		}
		roll = rolled
	}

	result, err := rules.AttemptSave(encounter, condition, holder, roll)
	if err != nil {
		return nil, err
	}

	if result.ConditionRemoved {
		if err := o.saveEncounter(ctx, encounter); err != nil {
			return nil, err
		}
	}

	slog.InfoContext(ctx, "condition save attempted",
		"encounter_id", encounter.ID,
		"condition_id", input.ConditionID,
		"participant_id", holder.ID,
		"roll", roll,
		"saved", result.Saved,
		"condition_removed", result.ConditionRemoved,
	)

	return &AttemptSaveOutput{
		Roll:   roll,
		Result: result,
	}, nil
}

// GetActiveConditions lists a participant's active conditions
func (o *orchestrator) GetActiveConditions(ctx context.Context, input *GetActiveConditionsInput) (*GetActiveConditionsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ParticipantID == "" {
		return nil, errors.InvalidArgument("participant ID is required")
	}

	encounter, err := o.loadEncounter(ctx, input.EncounterID)
	if err != nil {
		return nil, err
	}

	participant, ok := encounter.ParticipantByID(input.ParticipantID)
	if !ok {
		return nil, errors.NotFoundf("participant not found: %s", input.ParticipantID)
	}

	return &GetActiveConditionsOutput{Conditions: participant.Conditions}, nil
}

// GetMechanicalEffects aggregates a participant's conditions into one
// normalized effect set.
func (o *orchestrator) GetMechanicalEffects(ctx context.Context, input *GetMechanicalEffectsInput) (*GetMechanicalEffectsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ParticipantID == "" {
		return nil, errors.InvalidArgument("participant ID is required")
	}

	encounter, err := o.loadEncounter(ctx, input.EncounterID)
	if err != nil {
		return nil, err
	}

	participant, ok := encounter.ParticipantByID(input.ParticipantID)
	if !ok {
		return nil, errors.NotFoundf("participant not found: %s", input.ParticipantID)
	}

	return &GetMechanicalEffectsOutput{
		Effects:    rules.MechanicalEffects(participant),
		Conditions: participant.Conditions,
	}, nil
}

// GetConditionsLibrary lists every known condition definition
func (o *orchestrator) GetConditionsLibrary(_ context.Context, input *GetConditionsLibraryInput) (*GetConditionsLibraryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	return &GetConditionsLibraryOutput{Definitions: rules.Library()}, nil
}
