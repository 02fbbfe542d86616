package combat

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
	"github.com/KirkDiggler/combat-api/internal/rules"
)

// StartCombat builds the participant roster, rolls initiative for everyone
// without a pinned roll, sorts the turn order, and activates the encounter at
// round 1, turn 0.
func (o *orchestrator) StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	if len(input.Participants) == 0 {
		return nil, errors.InvalidArgument("roster cannot be empty")
	}
	for i, setup := range input.Participants {
		if setup == nil {
			return nil, errors.InvalidArgumentf("participant %d is nil", i)
		}
		if setup.Name == "" {
			return nil, errors.InvalidArgumentf("participant %d: name is required", i)
		}
		if setup.CharacterID != "" && setup.MonsterRef != "" {
			return nil, errors.InvalidArgumentf("participant %q: character ID and monster ref are mutually exclusive", setup.Name)
		}
		if setup.MaxHP <= 0 {
			return nil, errors.InvalidArgumentf("participant %q: max HP must be positive", setup.Name)
		}
		if setup.FixedInitiativeRoll < 0 || setup.FixedInitiativeRoll > 20 {
			return nil, errors.InvalidArgumentf("participant %q: fixed initiative roll must be between 1 and 20", setup.Name)
		}
	}

	if err := o.authorize(ctx, input.SessionID); err != nil {
		return nil, err
	}

	encounter := &entities.Encounter{
		ID:            o.newID("enc"),
		SessionID:     input.SessionID,
		Status:        entities.EncounterActive,
		Round:         1,
		SurpriseRound: input.SurpriseRound,
	}

	for i, setup := range input.Participants {
		roll := setup.FixedInitiativeRoll
		if roll == 0 {
			rolled, err := o.rollD20()
			if err != nil {
				return nil, err
			}
			roll = rolled
		}

		currentHP := setup.CurrentHP
		if currentHP == 0 {
			currentHP = setup.MaxHP
		}

		abilities := setup.Abilities
		if abilities == (entities.AbilityScores{}) {
			abilities = entities.DefaultAbilityScores()
		}

		encounter.Participants = append(encounter.Participants, &entities.Participant{
			ID:                 o.newID("part"),
			EncounterID:        encounter.ID,
			Name:               setup.Name,
			CharacterID:        setup.CharacterID,
			MonsterRef:         setup.MonsterRef,
			Initiative:         roll + setup.InitiativeModifier,
			InitiativeModifier: setup.InitiativeModifier,
			JoinOrder:          i,
			ArmorClass:         setup.ArmorClass,
			MaxHP:              setup.MaxHP,
			CurrentHP:          currentHP,
			Abilities:          abilities,
			Resistances:        setup.Resistances,
			Vulnerabilities:    setup.Vulnerabilities,
			Immunities:         setup.Immunities,
			Surprised:          setup.Surprised,
		})
	}

	rules.SortTurnOrder(encounter)
	turnIndex := 0
	encounter.CurrentTurnIndex = &turnIndex

	if err := o.saveEncounter(ctx, encounter); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "combat started",
		"encounter_id", encounter.ID,
		"session_id", encounter.SessionID,
		"participants", len(encounter.Participants),
		"surprise_round", encounter.SurpriseRound,
	)

	return &StartCombatOutput{Encounter: encounter}, nil
}

// RollInitiative sets or rerolls one participant's initiative and re-sorts
// the turn order. Usable mid-combat for late joiners.
func (o *orchestrator) RollInitiative(ctx context.Context, input *RollInitiativeInput) (*RollInitiativeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ParticipantID == "" {
		return nil, errors.InvalidArgument("participant ID is required")
	}
	if input.Roll < 0 || input.Roll > 20 {
		return nil, errors.InvalidArgumentf("initiative roll must be between 1 and 20, got %d", input.Roll)
	}

	encounter, err := o.loadEncounter(ctx, input.EncounterID)
	if err != nil {
		return nil, err
	}

	participant, ok := encounter.ParticipantByID(input.ParticipantID)
	if !ok {
		return nil, errors.NotFoundf("participant not found: %s", input.ParticipantID)
	}

	if input.Modifier != nil {
		participant.InitiativeModifier = *input.Modifier
	}

	roll := input.Roll
	if roll == 0 {
		rolled, err := o.rollD20()
		if err != nil {
			return nil, err
		}
		roll = rolled
	}
	participant.Initiative = roll + participant.InitiativeModifier

	rules.SortTurnOrder(encounter)

	if err := o.saveEncounter(ctx, encounter); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "initiative rolled",
		"encounter_id", encounter.ID,
		"participant_id", participant.ID,
		"roll", roll,
		"initiative", participant.Initiative,
	)

	return &RollInitiativeOutput{
		Participant: participant,
		TurnOrder:   encounter.TurnOrder(),
	}, nil
}

// ReorderInitiative is the DM override: set an initiative score directly and
// re-sort without rolling.
func (o *orchestrator) ReorderInitiative(ctx context.Context, input *ReorderInitiativeInput) (*ReorderInitiativeOutput, error) {
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

	participant.Initiative = input.NewInitiative
	rules.SortTurnOrder(encounter)

	if err := o.saveEncounter(ctx, encounter); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "initiative reordered",
		"encounter_id", encounter.ID,
		"participant_id", participant.ID,
		"initiative", participant.Initiative,
	)

	return &ReorderInitiativeOutput{
		Participant: participant,
		TurnOrder:   encounter.TurnOrder(),
	}, nil
}

// AdvanceTurn moves to the next participant, wrapping into a new round when
// the order is exhausted.
func (o *orchestrator) AdvanceTurn(ctx context.Context, input *AdvanceTurnInput) (*AdvanceTurnOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	encounter, err := o.loadEncounter(ctx, input.EncounterID)
	if err != nil {
		return nil, err
	}

	advance, err := rules.AdvanceTurn(encounter)
	if err != nil {
		return nil, err
	}

	if err := o.saveEncounter(ctx, encounter); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "turn advanced",
		"encounter_id", encounter.ID,
		"round", advance.Round,
		"turn_index", advance.TurnIndex,
		"current_participant", advance.Current.ID,
		"round_advanced", advance.RoundAdvanced,
		"expired_conditions", len(advance.ExpiredConditions),
	)

	return &AdvanceTurnOutput{
		Round:             advance.Round,
		TurnIndex:         advance.TurnIndex,
		RoundAdvanced:     advance.RoundAdvanced,
		Current:           advance.Current,
		ExpiredConditions: advance.ExpiredConditions,
	}, nil
}

// EndCombat completes the encounter. Ending an already-completed encounter is
// a no-op success.
func (o *orchestrator) EndCombat(ctx context.Context, input *EndCombatInput) (*EndCombatOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	encounter, err := o.loadEncounter(ctx, input.EncounterID)
	if err != nil {
		return nil, err
	}

	changed := rules.EndCombat(encounter)
	if changed {
		if err := o.saveEncounter(ctx, encounter); err != nil {
			return nil, err
		}
		slog.InfoContext(ctx, "combat ended",
			"encounter_id", encounter.ID,
			"rounds", encounter.Round,
		)
	}

	return &EndCombatOutput{
		Encounter:        encounter,
		AlreadyCompleted: !changed,
	}, nil
}

// GetCombatState returns the turn-order projection of an encounter
func (o *orchestrator) GetCombatState(ctx context.Context, input *GetCombatStateInput) (*GetCombatStateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	encounter, err := o.loadEncounter(ctx, input.EncounterID)
	if err != nil {
		return nil, err
	}

	return &GetCombatStateOutput{
		EncounterID:      encounter.ID,
		Status:           encounter.Status,
		Round:            encounter.Round,
		SurpriseRound:    encounter.SurpriseRound,
		CurrentTurnIndex: encounter.CurrentTurnIndex,
		Current:          encounter.CurrentParticipant(),
		TurnOrder:        encounter.TurnOrder(),
	}, nil
}

// GetEncounter returns the full encounter aggregate
func (o *orchestrator) GetEncounter(ctx context.Context, input *GetEncounterInput) (*GetEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	encounter, err := o.loadEncounter(ctx, input.EncounterID)
	if err != nil {
		return nil, err
	}

	return &GetEncounterOutput{Encounter: encounter}, nil
}
