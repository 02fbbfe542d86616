package combat_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
	"github.com/KirkDiggler/combat-api/internal/orchestrators/combat"
	"github.com/KirkDiggler/combat-api/internal/pkg/clock"
	"github.com/KirkDiggler/combat-api/internal/pkg/dice"
	"github.com/KirkDiggler/combat-api/internal/pkg/idgen"
	"github.com/KirkDiggler/combat-api/internal/repositories/encounters"
	"github.com/KirkDiggler/combat-api/internal/repositories/weapons"
)

type CombatTestSuite struct {
	suite.Suite
	service combat.Service
	clock   *clock.Fixed
	ctx     context.Context
}

func TestCombatSuite(t *testing.T) {
	suite.Run(t, new(CombatTestSuite))
}

func (s *CombatTestSuite) SetupTest() {
	s.clock = clock.NewFixed(time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	encounterRepo, err := encounters.NewInMemoryRepository(&encounters.InMemoryConfig{Clock: s.clock})
	s.Require().NoError(err)
	weaponRepo, err := weapons.NewInMemoryRepository(&weapons.InMemoryConfig{Clock: s.clock})
	s.Require().NoError(err)

	service, err := combat.NewOrchestrator(&combat.Config{
		EncounterRepo: encounterRepo,
		WeaponRepo:    weaponRepo,
		IDGenerator:   idgen.NewSequential(""),
		Clock:         s.clock,
		Roller:        dice.NewSeeded("combat-test"),
		EventBus:      events.NewBus(),
	})
	s.Require().NoError(err)
	s.service = service
}

// startAragornOrc starts the canonical two-combatant encounter: Aragorn with
// a pinned 15 roll and +2 modifier (initiative 17), an orc with a pinned 8
// and +0 (initiative 8).
func (s *CombatTestSuite) startAragornOrc() *entities.Encounter {
	output, err := s.service.StartCombat(s.ctx, &combat.StartCombatInput{
		SessionID: "session_1",
		Participants: []*combat.ParticipantSetup{
			{
				Name:                "Aragorn",
				CharacterID:         "char_aragorn",
				InitiativeModifier:  2,
				FixedInitiativeRoll: 15,
				ArmorClass:          16,
				MaxHP:               30,
			},
			{
				Name:                "Orc",
				MonsterRef:          "orc",
				InitiativeModifier:  0,
				FixedInitiativeRoll: 8,
				ArmorClass:          13,
				MaxHP:               15,
			},
		},
	})
	s.Require().NoError(err)
	return output.Encounter
}

func (s *CombatTestSuite) participantByName(e *entities.Encounter, name string) *entities.Participant {
	for _, p := range e.Participants {
		if p.Name == name {
			return p
		}
	}
	s.FailNowf("participant not found", "no participant named %s", name)
	return nil
}

func (s *CombatTestSuite) TestStartCombatOrdering() {
	encounter := s.startAragornOrc()

	s.Assert().Equal(entities.EncounterActive, encounter.Status)
	s.Assert().Equal(int32(1), encounter.Round)
	s.Require().NotNil(encounter.CurrentTurnIndex)
	s.Assert().Equal(0, *encounter.CurrentTurnIndex)

	order := encounter.TurnOrder()
	s.Require().Len(order, 2)
	s.Assert().Equal("Aragorn", order[0].Name)
	s.Assert().Equal(int32(17), order[0].Initiative)
	s.Assert().Equal("Orc", order[1].Name)
	s.Assert().Equal(int32(8), order[1].Initiative)

	s.Assert().Equal("Aragorn", encounter.CurrentParticipant().Name)
}

func (s *CombatTestSuite) TestStartCombatEmptyRoster() {
	_, err := s.service.StartCombat(s.ctx, &combat.StartCombatInput{
		SessionID: "session_1",
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *CombatTestSuite) TestStartCombatRollsMissingInitiative() {
	output, err := s.service.StartCombat(s.ctx, &combat.StartCombatInput{
		SessionID: "session_1",
		Participants: []*combat.ParticipantSetup{
			{Name: "Wizard", CharacterID: "char_wiz", InitiativeModifier: 1, ArmorClass: 12, MaxHP: 18},
		},
	})
	s.Require().NoError(err)

	wizard := output.Encounter.Participants[0]
	// d20 + 1 modifier
	s.Assert().GreaterOrEqual(wizard.Initiative, int32(2))
	s.Assert().LessOrEqual(wizard.Initiative, int32(21))
	s.Assert().Equal(wizard.MaxHP, wizard.CurrentHP, "current HP defaults to max")
}

func (s *CombatTestSuite) TestAdvanceTurnScenario() {
	encounter := s.startAragornOrc()

	// Aragorn's turn ends, the orc acts in the same round
	advance, err := s.service.AdvanceTurn(s.ctx, &combat.AdvanceTurnInput{EncounterID: encounter.ID})
	s.Require().NoError(err)
	s.Assert().Equal("Orc", advance.Current.Name)
	s.Assert().Equal(int32(1), advance.Round)
	s.Assert().False(advance.RoundAdvanced)

	// The orc's turn ends, play wraps back to Aragorn in round 2
	advance, err = s.service.AdvanceTurn(s.ctx, &combat.AdvanceTurnInput{EncounterID: encounter.ID})
	s.Require().NoError(err)
	s.Assert().Equal("Aragorn", advance.Current.Name)
	s.Assert().Equal(int32(2), advance.Round)
	s.Assert().True(advance.RoundAdvanced)
}

func (s *CombatTestSuite) TestAdvanceTurnOnCompletedEncounter() {
	encounter := s.startAragornOrc()

	_, err := s.service.EndCombat(s.ctx, &combat.EndCombatInput{EncounterID: encounter.ID})
	s.Require().NoError(err)

	_, err = s.service.AdvanceTurn(s.ctx, &combat.AdvanceTurnInput{EncounterID: encounter.ID})
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *CombatTestSuite) TestRoundConditionExpiresAfterThreeRounds() {
	encounter := s.startAragornOrc()
	orc := s.participantByName(encounter, "Orc")

	applied, err := s.service.ApplyCondition(s.ctx, &combat.ApplyConditionInput{
		EncounterID:    encounter.ID,
		ParticipantID:  orc.ID,
		Name:           entities.ConditionPoisoned,
		DurationType:   entities.DurationRounds,
		DurationRounds: 3,
		Source:         "spider venom",
	})
	s.Require().NoError(err)
	s.Assert().Empty(applied.Warnings)

	// Two full rounds: condition still present
	for i := 0; i < 4; i++ {
		_, err = s.service.AdvanceTurn(s.ctx, &combat.AdvanceTurnInput{EncounterID: encounter.ID})
		s.Require().NoError(err)
	}
	conditions, err := s.service.GetActiveConditions(s.ctx, &combat.GetActiveConditionsInput{
		EncounterID:   encounter.ID,
		ParticipantID: orc.ID,
	})
	s.Require().NoError(err)
	s.Require().Len(conditions.Conditions, 1)
	s.Assert().Equal(int32(1), conditions.Conditions[0].RemainingRounds)

	// Third wrap removes it
	advance, err := s.service.AdvanceTurn(s.ctx, &combat.AdvanceTurnInput{EncounterID: encounter.ID})
	s.Require().NoError(err)
	advance, err = s.service.AdvanceTurn(s.ctx, &combat.AdvanceTurnInput{EncounterID: encounter.ID})
	s.Require().NoError(err)
	s.Require().Len(advance.ExpiredConditions, 1)
	s.Assert().Equal(entities.ConditionPoisoned, advance.ExpiredConditions[0].Name)

	conditions, err = s.service.GetActiveConditions(s.ctx, &combat.GetActiveConditionsInput{
		EncounterID:   encounter.ID,
		ParticipantID: orc.ID,
	})
	s.Require().NoError(err)
	s.Assert().Empty(conditions.Conditions)
}

func (s *CombatTestSuite) TestRollInitiativeResorts() {
	encounter := s.startAragornOrc()
	orc := s.participantByName(encounter, "Orc")

	output, err := s.service.RollInitiative(s.ctx, &combat.RollInitiativeInput{
		EncounterID:   encounter.ID,
		ParticipantID: orc.ID,
		Roll:          20,
	})
	s.Require().NoError(err)

	s.Assert().Equal(int32(20), output.Participant.Initiative)
	s.Assert().Equal("Orc", output.TurnOrder[0].Name, "orc now leads the order")
}

func (s *CombatTestSuite) TestReorderInitiativeOverride() {
	encounter := s.startAragornOrc()
	orc := s.participantByName(encounter, "Orc")

	output, err := s.service.ReorderInitiative(s.ctx, &combat.ReorderInitiativeInput{
		EncounterID:   encounter.ID,
		ParticipantID: orc.ID,
		NewInitiative: 25,
	})
	s.Require().NoError(err)

	s.Assert().Equal("Orc", output.TurnOrder[0].Name)
	s.Assert().Equal("Aragorn", output.TurnOrder[1].Name)
}

func (s *CombatTestSuite) TestEndCombatIdempotent() {
	encounter := s.startAragornOrc()

	output, err := s.service.EndCombat(s.ctx, &combat.EndCombatInput{EncounterID: encounter.ID})
	s.Require().NoError(err)
	s.Assert().False(output.AlreadyCompleted)
	s.Assert().Equal(entities.EncounterCompleted, output.Encounter.Status)
	s.Assert().Nil(output.Encounter.CurrentTurnIndex)

	output, err = s.service.EndCombat(s.ctx, &combat.EndCombatInput{EncounterID: encounter.ID})
	s.Require().NoError(err)
	s.Assert().True(output.AlreadyCompleted)
}

func (s *CombatTestSuite) TestGetCombatState() {
	encounter := s.startAragornOrc()

	state, err := s.service.GetCombatState(s.ctx, &combat.GetCombatStateInput{EncounterID: encounter.ID})
	s.Require().NoError(err)

	s.Assert().Equal(encounter.ID, state.EncounterID)
	s.Assert().Equal(entities.EncounterActive, state.Status)
	s.Assert().Equal(int32(1), state.Round)
	s.Require().NotNil(state.CurrentTurnIndex)
	s.Assert().Equal("Aragorn", state.Current.Name)
	s.Require().Len(state.TurnOrder, 2)
}

func (s *CombatTestSuite) TestGetEncounterNotFound() {
	_, err := s.service.GetEncounter(s.ctx, &combat.GetEncounterInput{EncounterID: "enc_missing"})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
}

func (s *CombatTestSuite) TestApplyDamagePlain() {
	encounter := s.startAragornOrc()
	aragorn := s.participantByName(encounter, "Aragorn")

	output, err := s.service.ApplyDamage(s.ctx, &combat.ApplyDamageInput{
		EncounterID:   encounter.ID,
		ParticipantID: aragorn.ID,
		Amount:        10,
		DamageType:    entities.DamageFire,
	})
	s.Require().NoError(err)

	s.Assert().Equal(int32(20), output.Participant.CurrentHP)
	s.Assert().Equal(int32(10), output.Result.AppliedAmount)
	s.Assert().Equal(entities.DamageCategoryNone, output.Result.Category)
}

func (s *CombatTestSuite) TestApplyDamageResistant() {
	started, err := s.service.StartCombat(s.ctx, &combat.StartCombatInput{
		SessionID: "session_1",
		Participants: []*combat.ParticipantSetup{
			{
				Name:                "Tiefling",
				CharacterID:         "char_tief",
				FixedInitiativeRoll: 10,
				ArmorClass:          14,
				MaxHP:               30,
				Resistances:         []entities.DamageType{entities.DamageFire},
			},
		},
	})
	s.Require().NoError(err)
	target := started.Encounter.Participants[0]

	output, err := s.service.ApplyDamage(s.ctx, &combat.ApplyDamageInput{
		EncounterID:   started.Encounter.ID,
		ParticipantID: target.ID,
		Amount:        10,
		DamageType:    entities.DamageFire,
	})
	s.Require().NoError(err)

	s.Assert().Equal(int32(25), output.Participant.CurrentHP)
	s.Assert().Equal(int32(5), output.Result.AppliedAmount)
	s.Assert().Equal(entities.DamageCategoryResisted, output.Result.Category)
}

func (s *CombatTestSuite) TestApplyDamageNegativeAmount() {
	encounter := s.startAragornOrc()
	aragorn := s.participantByName(encounter, "Aragorn")

	_, err := s.service.ApplyDamage(s.ctx, &combat.ApplyDamageInput{
		EncounterID:   encounter.ID,
		ParticipantID: aragorn.ID,
		Amount:        -5,
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *CombatTestSuite) TestHealAndTempHP() {
	encounter := s.startAragornOrc()
	aragorn := s.participantByName(encounter, "Aragorn")

	_, err := s.service.ApplyDamage(s.ctx, &combat.ApplyDamageInput{
		EncounterID:   encounter.ID,
		ParticipantID: aragorn.ID,
		Amount:        12,
		DamageType:    entities.DamageSlashing,
	})
	s.Require().NoError(err)

	healed, err := s.service.HealDamage(s.ctx, &combat.HealDamageInput{
		EncounterID:   encounter.ID,
		ParticipantID: aragorn.ID,
		Amount:        20,
		Description:   "cure wounds",
	})
	s.Require().NoError(err)
	s.Assert().Equal(int32(30), healed.Participant.CurrentHP, "healing clamps at max")
	s.Assert().Equal(int32(12), healed.Result.AmountHealed)

	granted, err := s.service.SetTempHP(s.ctx, &combat.SetTempHPInput{
		EncounterID:   encounter.ID,
		ParticipantID: aragorn.ID,
		Amount:        8,
	})
	s.Require().NoError(err)
	s.Assert().Equal(int32(8), granted.TempHP)

	// A lower grant keeps the existing pool
	granted, err = s.service.SetTempHP(s.ctx, &combat.SetTempHPInput{
		EncounterID:   encounter.ID,
		ParticipantID: aragorn.ID,
		Amount:        5,
	})
	s.Require().NoError(err)
	s.Assert().Equal(int32(8), granted.TempHP)
}

func (s *CombatTestSuite) TestDeathSaveProgression() {
	encounter := s.startAragornOrc()
	orc := s.participantByName(encounter, "Orc")

	// Drop the orc to 0
	dropped, err := s.service.ApplyDamage(s.ctx, &combat.ApplyDamageInput{
		EncounterID:   encounter.ID,
		ParticipantID: orc.ID,
		Amount:        15,
		DamageType:    entities.DamageSlashing,
	})
	s.Require().NoError(err)
	s.Assert().True(dropped.Result.DroppedToZero)
	s.Assert().True(dropped.Participant.IsUnconscious())

	// Three plain failures kill
	for _, roll := range []int32{5, 7, 9} {
		output, rollErr := s.service.RollDeathSave(s.ctx, &combat.RollDeathSaveInput{
			EncounterID:   encounter.ID,
			ParticipantID: orc.ID,
			Roll:          roll,
		})
		s.Require().NoError(rollErr)
		s.Assert().False(output.Result.Success)
	}

	state, err := s.service.GetEncounter(s.ctx, &combat.GetEncounterInput{EncounterID: encounter.ID})
	s.Require().NoError(err)
	deadOrc, _ := state.Encounter.ParticipantByID(orc.ID)
	s.Assert().True(deadOrc.Dead)

	// A fourth attempt is rejected
	_, err = s.service.RollDeathSave(s.ctx, &combat.RollDeathSaveInput{
		EncounterID:   encounter.ID,
		ParticipantID: orc.ID,
		Roll:          15,
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *CombatTestSuite) TestDeathSaveNatural20Revives() {
	encounter := s.startAragornOrc()
	orc := s.participantByName(encounter, "Orc")

	_, err := s.service.ApplyDamage(s.ctx, &combat.ApplyDamageInput{
		EncounterID:   encounter.ID,
		ParticipantID: orc.ID,
		Amount:        15,
		DamageType:    entities.DamageSlashing,
	})
	s.Require().NoError(err)

	output, err := s.service.RollDeathSave(s.ctx, &combat.RollDeathSaveInput{
		EncounterID:   encounter.ID,
		ParticipantID: orc.ID,
		Roll:          20,
	})
	s.Require().NoError(err)

	s.Assert().True(output.Result.RegainedHitPoint)
	s.Assert().Equal(int32(1), output.Participant.CurrentHP)
	s.Assert().False(output.Participant.IsUnconscious())
	s.Assert().Zero(output.Participant.DeathSaveSuccesses)
	s.Assert().Zero(output.Participant.DeathSaveFailures)
}

func (s *CombatTestSuite) TestGetDamageLogFilters() {
	encounter := s.startAragornOrc()
	aragorn := s.participantByName(encounter, "Aragorn")
	orc := s.participantByName(encounter, "Orc")

	_, err := s.service.ApplyDamage(s.ctx, &combat.ApplyDamageInput{
		EncounterID:   encounter.ID,
		ParticipantID: aragorn.ID,
		Amount:        4,
		DamageType:    entities.DamageBludgeoning,
	})
	s.Require().NoError(err)

	s.clock.Advance(time.Second)
	_, err = s.service.ApplyDamage(s.ctx, &combat.ApplyDamageInput{
		EncounterID:   encounter.ID,
		ParticipantID: orc.ID,
		Amount:        6,
		DamageType:    entities.DamageSlashing,
	})
	s.Require().NoError(err)

	// Move to round 2 and log one more hit
	for i := 0; i < 2; i++ {
		_, err = s.service.AdvanceTurn(s.ctx, &combat.AdvanceTurnInput{EncounterID: encounter.ID})
		s.Require().NoError(err)
	}
	s.clock.Advance(time.Second)
	_, err = s.service.ApplyDamage(s.ctx, &combat.ApplyDamageInput{
		EncounterID:   encounter.ID,
		ParticipantID: orc.ID,
		Amount:        3,
		DamageType:    entities.DamageSlashing,
	})
	s.Require().NoError(err)

	all, err := s.service.GetDamageLog(s.ctx, &combat.GetDamageLogInput{EncounterID: encounter.ID})
	s.Require().NoError(err)
	s.Require().Len(all.Entries, 3)
	for i := 1; i < len(all.Entries); i++ {
		s.Assert().False(all.Entries[i].Timestamp.Before(all.Entries[i-1].Timestamp), "ascending by timestamp")
	}

	orcOnly, err := s.service.GetDamageLog(s.ctx, &combat.GetDamageLogInput{
		EncounterID:   encounter.ID,
		ParticipantID: orc.ID,
	})
	s.Require().NoError(err)
	s.Require().Len(orcOnly.Entries, 2)

	roundTwo, err := s.service.GetDamageLog(s.ctx, &combat.GetDamageLogInput{
		EncounterID: encounter.ID,
		Round:       2,
	})
	s.Require().NoError(err)
	s.Require().Len(roundTwo.Entries, 1)
	s.Assert().Equal(int32(3), roundTwo.Entries[0].RawAmount)
}

func (s *CombatTestSuite) TestResolveAttackHit() {
	encounter := s.startAragornOrc()
	aragorn := s.participantByName(encounter, "Aragorn")
	orc := s.participantByName(encounter, "Orc")

	output, err := s.service.ResolveAttack(s.ctx, &combat.ResolveAttackInput{
		EncounterID:      encounter.ID,
		AttackerID:       aragorn.ID,
		TargetID:         orc.ID,
		AttackRoll:       12,
		AttackBonus:      5,
		DamageExpression: "1d8+3",
		DamageType:       entities.DamageSlashing,
	})
	s.Require().NoError(err)

	s.Assert().True(output.Outcome.Hit)
	s.Assert().False(output.Outcome.Critical)
	s.Assert().Equal(int32(17), output.Outcome.AttackTotal)
	s.Require().NotNil(output.Damage)
	s.Assert().Equal(int32(output.DamageRoll.Total), output.Damage.AppliedAmount)
	s.Assert().Equal(orc.MaxHP-output.Damage.AppliedAmount, output.Target.CurrentHP)
}

func (s *CombatTestSuite) TestResolveAttackMiss() {
	encounter := s.startAragornOrc()
	aragorn := s.participantByName(encounter, "Aragorn")
	orc := s.participantByName(encounter, "Orc")

	output, err := s.service.ResolveAttack(s.ctx, &combat.ResolveAttackInput{
		EncounterID:      encounter.ID,
		AttackerID:       aragorn.ID,
		TargetID:         orc.ID,
		AttackRoll:       2,
		DamageExpression: "1d8+3",
		DamageType:       entities.DamageSlashing,
	})
	s.Require().NoError(err)

	s.Assert().False(output.Outcome.Hit)
	s.Assert().Nil(output.Damage)
	s.Assert().Equal(orc.MaxHP, output.Target.CurrentHP)

	log, err := s.service.GetDamageLog(s.ctx, &combat.GetDamageLogInput{EncounterID: encounter.ID})
	s.Require().NoError(err)
	s.Assert().Empty(log.Entries, "a miss writes no damage log entry")
}

func (s *CombatTestSuite) TestResolveAttackNatural20DoublesDice() {
	encounter := s.startAragornOrc()
	aragorn := s.participantByName(encounter, "Aragorn")
	orc := s.participantByName(encounter, "Orc")

	output, err := s.service.ResolveAttack(s.ctx, &combat.ResolveAttackInput{
		EncounterID:      encounter.ID,
		AttackerID:       aragorn.ID,
		TargetID:         orc.ID,
		AttackRoll:       20,
		DamageExpression: "2d6+3",
		DamageType:       entities.DamageSlashing,
	})
	s.Require().NoError(err)

	s.Assert().True(output.Outcome.Critical)
	s.Require().NotNil(output.DamageRoll)
	s.Assert().Len(output.DamageRoll.Dice, 4, "critical doubles the dice, not the modifier")
	s.Assert().Equal(3, output.DamageRoll.Modifier)
}

func (s *CombatTestSuite) TestResolveAttackWithWeaponDefaults() {
	encounter := s.startAragornOrc()
	aragorn := s.participantByName(encounter, "Aragorn")
	orc := s.participantByName(encounter, "Orc")

	created, err := s.service.CreateWeaponAttack(s.ctx, &combat.CreateWeaponAttackInput{
		CharacterID: "char_aragorn",
		Name:        "Longsword",
		DamageDice:  "1d8+3",
		DamageType:  entities.DamageSlashing,
		AttackBonus: 5,
	})
	s.Require().NoError(err)

	output, err := s.service.ResolveAttack(s.ctx, &combat.ResolveAttackInput{
		EncounterID: encounter.ID,
		AttackerID:  aragorn.ID,
		TargetID:    orc.ID,
		AttackRoll:  10,
		WeaponID:    created.Attack.ID,
	})
	s.Require().NoError(err)

	// 10 + weapon's +5 vs AC 13
	s.Assert().Equal(int32(15), output.Outcome.AttackTotal)
	s.Assert().True(output.Outcome.Hit)
	s.Require().NotNil(output.Damage)
	s.Assert().Equal(entities.DamageSlashing, output.Damage.Entry.DamageType)
	s.Assert().Equal("Longsword", output.Damage.Entry.Description)
}

func (s *CombatTestSuite) TestResolveAttackDeadTarget() {
	encounter := s.startAragornOrc()
	aragorn := s.participantByName(encounter, "Aragorn")
	orc := s.participantByName(encounter, "Orc")

	// 15 HP orc takes a single 30-point hit while up: down, then three
	// failed saves finish it
	_, err := s.service.ApplyDamage(s.ctx, &combat.ApplyDamageInput{
		EncounterID:   encounter.ID,
		ParticipantID: orc.ID,
		Amount:        15,
		DamageType:    entities.DamageFire,
	})
	s.Require().NoError(err)
	for _, roll := range []int32{3, 4, 5} {
		_, err = s.service.RollDeathSave(s.ctx, &combat.RollDeathSaveInput{
			EncounterID:   encounter.ID,
			ParticipantID: orc.ID,
			Roll:          roll,
		})
		s.Require().NoError(err)
	}

	_, err = s.service.ResolveAttack(s.ctx, &combat.ResolveAttackInput{
		EncounterID:      encounter.ID,
		AttackerID:       aragorn.ID,
		TargetID:         orc.ID,
		AttackRoll:       15,
		DamageExpression: "1d8+3",
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *CombatTestSuite) TestResolveSpellAttackSaveForHalf() {
	encounter := s.startAragornOrc()
	aragorn := s.participantByName(encounter, "Aragorn")
	orc := s.participantByName(encounter, "Orc")

	output, err := s.service.ResolveSpellAttack(s.ctx, &combat.ResolveSpellAttackInput{
		EncounterID:      encounter.ID,
		CasterID:         aragorn.ID,
		TargetIDs:        []string{aragorn.ID, orc.ID},
		SpellName:        "burning hands",
		SaveDC:           15,
		SaveAbility:      entities.AbilityDexterity,
		DamageExpression: "3d6",
		DamageType:       entities.DamageFire,
		SaveRolls: map[string]int32{
			aragorn.ID: 18, // saves (18 + 0 vs DC 15)
			orc.ID:     2,  // fails
		},
	})
	s.Require().NoError(err)

	s.Require().Len(output.Targets, 2)
	full := int32(output.DamageRoll.Total)

	saved := output.Targets[0]
	s.Assert().True(saved.Saved)
	s.Require().NotNil(saved.Damage)
	s.Assert().Equal(full/2, saved.Damage.AppliedAmount, "save takes half, rounded down")

	failed := output.Targets[1]
	s.Assert().False(failed.Saved)
	s.Require().NotNil(failed.Damage)
	s.Assert().Equal(full, failed.Damage.AppliedAmount)
}

func (s *CombatTestSuite) TestResolveSpellAttackAllOrNothing() {
	encounter := s.startAragornOrc()
	aragorn := s.participantByName(encounter, "Aragorn")
	orc := s.participantByName(encounter, "Orc")

	output, err := s.service.ResolveSpellAttack(s.ctx, &combat.ResolveSpellAttackInput{
		EncounterID:      encounter.ID,
		CasterID:         orc.ID,
		TargetIDs:        []string{aragorn.ID},
		SpellName:        "poison dart trap",
		SaveDC:           10,
		SaveAbility:      entities.AbilityDexterity,
		DamageExpression: "2d4",
		DamageType:       entities.DamagePoison,
		AllOrNothing:     true,
		SaveRolls:        map[string]int32{aragorn.ID: 15},
	})
	s.Require().NoError(err)

	s.Require().Len(output.Targets, 1)
	s.Assert().True(output.Targets[0].Saved)
	s.Assert().Nil(output.Targets[0].Damage, "all-or-nothing save negates the damage entirely")
	s.Assert().Equal(int32(30), output.Targets[0].TargetHP)
}

func (s *CombatTestSuite) TestGetCharacterWeapons() {
	_, err := s.service.CreateWeaponAttack(s.ctx, &combat.CreateWeaponAttackInput{
		CharacterID: "char_aragorn",
		Name:        "Longsword",
		DamageDice:  "1d8+3",
		DamageType:  entities.DamageSlashing,
		AttackBonus: 5,
	})
	s.Require().NoError(err)
	s.clock.Advance(time.Second)
	_, err = s.service.CreateWeaponAttack(s.ctx, &combat.CreateWeaponAttackInput{
		CharacterID: "char_aragorn",
		Name:        "Dagger",
		DamageDice:  "1d4+3",
		DamageType:  entities.DamagePiercing,
		AttackBonus: 5,
	})
	s.Require().NoError(err)

	output, err := s.service.GetCharacterWeapons(s.ctx, &combat.GetCharacterWeaponsInput{
		CharacterID: "char_aragorn",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Attacks, 2)
	s.Assert().Equal("Longsword", output.Attacks[0].Name)
}

func (s *CombatTestSuite) TestCreateWeaponAttackBadDice() {
	_, err := s.service.CreateWeaponAttack(s.ctx, &combat.CreateWeaponAttackInput{
		CharacterID: "char_aragorn",
		Name:        "Cursed Blade",
		DamageDice:  "eight-ish",
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *CombatTestSuite) TestConditionSaveFlow() {
	encounter := s.startAragornOrc()
	orc := s.participantByName(encounter, "Orc")

	applied, err := s.service.ApplyCondition(s.ctx, &combat.ApplyConditionInput{
		EncounterID:   encounter.ID,
		ParticipantID: orc.ID,
		Name:          entities.ConditionPoisoned,
		DurationType:  entities.DurationUntilSave,
		SaveDC:        13,
		SaveAbility:   entities.AbilityConstitution,
		Source:        "poisoned blade",
	})
	s.Require().NoError(err)

	effects, err := s.service.GetMechanicalEffects(s.ctx, &combat.GetMechanicalEffectsInput{
		EncounterID:   encounter.ID,
		ParticipantID: orc.ID,
	})
	s.Require().NoError(err)
	s.Assert().True(effects.Effects.AttacksHaveDisadvantage)

	saveOutput, err := s.service.AttemptSave(s.ctx, &combat.AttemptSaveInput{
		EncounterID: encounter.ID,
		ConditionID: applied.Condition.ID,
		SaveRoll:    15,
	})
	s.Require().NoError(err)
	s.Assert().True(saveOutput.Result.Saved)
	s.Assert().True(saveOutput.Result.ConditionRemoved)

	// Already removed, so a second removal reports not found
	removed, err := s.service.RemoveCondition(s.ctx, &combat.RemoveConditionInput{
		EncounterID: encounter.ID,
		ConditionID: applied.Condition.ID,
	})
	s.Require().NoError(err)
	s.Assert().False(removed.Found)
}

func (s *CombatTestSuite) TestGetConditionsLibrary() {
	output, err := s.service.GetConditionsLibrary(s.ctx, &combat.GetConditionsLibraryInput{})
	s.Require().NoError(err)
	s.Assert().NotEmpty(output.Definitions)
}

type denyAllAuthorizer struct{}

func (denyAllAuthorizer) Authorize(_ context.Context, sessionID string) error {
	return errors.PermissionDeniedf("session %s belongs to another user", sessionID)
}

func (s *CombatTestSuite) TestAuthorizerDecisionPropagates() {
	encounter := s.startAragornOrc()

	encounterRepo, err := encounters.NewInMemoryRepository(&encounters.InMemoryConfig{Clock: s.clock})
	s.Require().NoError(err)
	weaponRepo, err := weapons.NewInMemoryRepository(&weapons.InMemoryConfig{Clock: s.clock})
	s.Require().NoError(err)

	denied, err := combat.NewOrchestrator(&combat.Config{
		EncounterRepo: encounterRepo,
		WeaponRepo:    weaponRepo,
		IDGenerator:   idgen.NewSequential(""),
		Clock:         s.clock,
		Roller:        dice.NewSeeded("combat-test"),
		Authorizer:    denyAllAuthorizer{},
	})
	s.Require().NoError(err)

	_, err = denied.StartCombat(s.ctx, &combat.StartCombatInput{
		SessionID: encounter.SessionID,
		Participants: []*combat.ParticipantSetup{
			{Name: "Intruder", MonsterRef: "goblin", FixedInitiativeRoll: 10, ArmorClass: 12, MaxHP: 7},
		},
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsPermissionDenied(err))
}
