package combat

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
	"github.com/KirkDiggler/combat-api/internal/rules"
)

// ApplyDamage applies one damage instance to a participant, routing it
// through the target's defensive traits and temp HP, and appends the audit
// entry to the encounter's damage log.
func (o *orchestrator) ApplyDamage(ctx context.Context, input *ApplyDamageInput) (*ApplyDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ParticipantID == "" {
		return nil, errors.InvalidArgument("participant ID is required")
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgumentf("damage amount cannot be negative, got %d", input.Amount)
	}

	encounter, err := o.loadEncounter(ctx, input.EncounterID)
	if err != nil {
		return nil, err
	}

	target, ok := encounter.ParticipantByID(input.ParticipantID)
	if !ok {
		return nil, errors.NotFoundf("participant not found: %s", input.ParticipantID)
	}

	result, err := rules.ApplyDamage(encounter, target, rules.DamageRequest{
		Amount:              input.Amount,
		Type:                input.DamageType,
		SourceParticipantID: input.SourceParticipantID,
		Description:         input.Description,
		IgnoreResistances:   input.IgnoreResistances,
		IgnoreImmunities:    input.IgnoreImmunities,
	}, o.newID("dmg"), o.newID("cond"), o.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := o.saveEncounter(ctx, encounter); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "damage applied",
		"encounter_id", encounter.ID,
		"participant_id", target.ID,
		"raw_amount", result.RawAmount,
		"applied_amount", result.AppliedAmount,
		"category", result.Category,
		"current_hp", target.CurrentHP,
		"dropped_to_zero", result.DroppedToZero,
		"instant_death", result.InstantDeath,
	)

	return &ApplyDamageOutput{
		Result:      result,
		Participant: target,
	}, nil
}

// HealDamage restores hit points up to the maximum. Healing from 0 brings
// the participant back to consciousness; the dead stay dead.
func (o *orchestrator) HealDamage(ctx context.Context, input *HealDamageInput) (*HealDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ParticipantID == "" {
		return nil, errors.InvalidArgument("participant ID is required")
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgumentf("healing amount cannot be negative, got %d", input.Amount)
	}

	encounter, err := o.loadEncounter(ctx, input.EncounterID)
	if err != nil {
		return nil, err
	}

	target, ok := encounter.ParticipantByID(input.ParticipantID)
	if !ok {
		return nil, errors.NotFoundf("participant not found: %s", input.ParticipantID)
	}

	result, err := rules.Heal(encounter, target, input.Amount, input.Description, o.newID("dmg"), o.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := o.saveEncounter(ctx, encounter); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "healing applied",
		"encounter_id", encounter.ID,
		"participant_id", target.ID,
		"amount_healed", result.AmountHealed,
		"current_hp", target.CurrentHP,
		"regained_consciousness", result.Regained,
	)

	return &HealDamageOutput{
		Result:      result,
		Participant: target,
	}, nil
}

// SetTempHP grants temporary hit points under the take-the-higher rule
func (o *orchestrator) SetTempHP(ctx context.Context, input *SetTempHPInput) (*SetTempHPOutput, error) {
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

	target, ok := encounter.ParticipantByID(input.ParticipantID)
	if !ok {
		return nil, errors.NotFoundf("participant not found: %s", input.ParticipantID)
	}

	tempHP, err := rules.SetTempHP(target, input.Amount)
	if err != nil {
		return nil, err
	}

	if err := o.saveEncounter(ctx, encounter); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "temporary HP set",
		"encounter_id", encounter.ID,
		"participant_id", target.ID,
		"temp_hp", tempHP,
	)

	return &SetTempHPOutput{
		TempHP:      tempHP,
		Participant: target,
	}, nil
}

// RollDeathSave resolves one death saving throw for a downed participant
func (o *orchestrator) RollDeathSave(ctx context.Context, input *RollDeathSaveInput) (*RollDeathSaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ParticipantID == "" {
		return nil, errors.InvalidArgument("participant ID is required")
	}
	if input.Roll < 0 || input.Roll > 20 {
		return nil, errors.InvalidArgumentf("death save roll must be between 1 and 20, got %d", input.Roll)
	}

	encounter, err := o.loadEncounter(ctx, input.EncounterID)
	if err != nil {
		return nil, err
	}

	target, ok := encounter.ParticipantByID(input.ParticipantID)
	if !ok {
		return nil, errors.NotFoundf("participant not found: %s", input.ParticipantID)
	}

	roll := input.Roll
	if roll == 0 {
		rolled, err := o.rollD20()
		if err != nil {
			return nil, err
		}
		roll = rolled
	}

	result, err := rules.RollDeathSave(target, roll)
	if err != nil {
		return nil, err
	}

	if err := o.saveEncounter(ctx, encounter); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "death save rolled",
		"encounter_id", encounter.ID,
		"participant_id", target.ID,
		"roll", result.Roll,
		"successes", result.Successes,
		"failures", result.Failures,
		"stabilized", result.Stabilized,
		"died", result.Died,
	)

	return &RollDeathSaveOutput{
		Result:      result,
		Participant: target,
	}, nil
}

// GetDamageLog reads the encounter's damage/heal audit log, optionally
// filtered by target participant and round, ordered by timestamp ascending.
func (o *orchestrator) GetDamageLog(ctx context.Context, input *GetDamageLogInput) (*GetDamageLogOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	encounter, err := o.loadEncounter(ctx, input.EncounterID)
	if err != nil {
		return nil, err
	}

	if input.ParticipantID != "" {
		if _, ok := encounter.ParticipantByID(input.ParticipantID); !ok {
			return nil, errors.NotFoundf("participant not found: %s", input.ParticipantID)
		}
	}

	entries := make([]*entities.DamageLogEntry, 0, len(encounter.DamageLog))
	for _, entry := range encounter.DamageLog {
		if input.ParticipantID != "" && entry.ParticipantID != input.ParticipantID {
			continue
		}
		if input.Round > 0 && entry.Round != input.Round {
			continue
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})

	return &GetDamageLogOutput{Entries: entries}, nil
}
