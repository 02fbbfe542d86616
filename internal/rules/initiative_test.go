package rules_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
	"github.com/KirkDiggler/combat-api/internal/rules"
)

func newTestEncounter(participants ...*entities.Participant) *entities.Encounter {
	idx := 0
	e := &entities.Encounter{
		ID:               "enc_1",
		SessionID:        "session_1",
		Status:           entities.EncounterActive,
		Round:            1,
		CurrentTurnIndex: &idx,
		Participants:     participants,
	}
	for i, p := range participants {
		p.EncounterID = e.ID
		p.JoinOrder = i
	}
	rules.SortTurnOrder(e)
	return e
}

func newTestParticipant(id, name string, initiative, modifier int32) *entities.Participant {
	return &entities.Participant{
		ID:                 id,
		Name:               name,
		CharacterID:        "char_" + id,
		Initiative:         initiative,
		InitiativeModifier: modifier,
		ArmorClass:         14,
		MaxHP:              30,
		CurrentHP:          30,
	}
}

type InitiativeTestSuite struct {
	suite.Suite
}

func TestInitiativeSuite(t *testing.T) {
	suite.Run(t, new(InitiativeTestSuite))
}

func (s *InitiativeTestSuite) TestSortTurnOrderDescending() {
	e := newTestEncounter(
		newTestParticipant("p1", "Orc", 8, 0),
		newTestParticipant("p2", "Aragorn", 17, 2),
		newTestParticipant("p3", "Wizard", 12, 1),
	)

	order := e.TurnOrder()
	s.Require().Len(order, 3)
	s.Assert().Equal("Aragorn", order[0].Name)
	s.Assert().Equal("Wizard", order[1].Name)
	s.Assert().Equal("Orc", order[2].Name)

	// Positions are dense
	s.Assert().Equal(0, order[0].TurnOrder)
	s.Assert().Equal(1, order[1].TurnOrder)
	s.Assert().Equal(2, order[2].TurnOrder)
}

func (s *InitiativeTestSuite) TestSortTurnOrderTieBreaks() {
	// Equal initiative: higher modifier first, then join order
	e := newTestEncounter(
		newTestParticipant("p1", "Slow", 15, 0),
		newTestParticipant("p2", "Fast", 15, 3),
		newTestParticipant("p3", "AlsoSlow", 15, 0),
	)

	order := e.TurnOrder()
	s.Assert().Equal("Fast", order[0].Name)
	s.Assert().Equal("Slow", order[1].Name, "equal modifier falls back to join order")
	s.Assert().Equal("AlsoSlow", order[2].Name)
}

func (s *InitiativeTestSuite) TestSortTurnOrderNegativeInitiative() {
	e := newTestEncounter(
		newTestParticipant("p1", "Zombie", -2, -4),
		newTestParticipant("p2", "Rogue", 21, 5),
	)

	order := e.TurnOrder()
	s.Assert().Equal("Rogue", order[0].Name)
	s.Assert().Equal("Zombie", order[1].Name)
}

func (s *InitiativeTestSuite) TestAdvanceTurnSameRound() {
	e := newTestEncounter(
		newTestParticipant("p1", "Aragorn", 17, 2),
		newTestParticipant("p2", "Orc", 8, 0),
	)

	advance, err := rules.AdvanceTurn(e)
	s.Require().NoError(err)

	s.Assert().False(advance.RoundAdvanced)
	s.Assert().Equal(int32(1), advance.Round)
	s.Assert().Equal(1, advance.TurnIndex)
	s.Assert().Equal("Orc", advance.Current.Name)
}

func (s *InitiativeTestSuite) TestAdvanceTurnWrapsToNewRound() {
	e := newTestEncounter(
		newTestParticipant("p1", "Aragorn", 17, 2),
		newTestParticipant("p2", "Orc", 8, 0),
	)

	// Aragorn -> Orc
	_, err := rules.AdvanceTurn(e)
	s.Require().NoError(err)

	// Orc -> Aragorn, new round
	advance, err := rules.AdvanceTurn(e)
	s.Require().NoError(err)

	s.Assert().True(advance.RoundAdvanced)
	s.Assert().Equal(int32(2), advance.Round)
	s.Assert().Equal(0, advance.TurnIndex)
	s.Assert().Equal("Aragorn", advance.Current.Name)
}

func (s *InitiativeTestSuite) TestAdvanceTurnFullCycleIncrementsRoundOnce() {
	e := newTestEncounter(
		newTestParticipant("p1", "A", 20, 0),
		newTestParticipant("p2", "B", 15, 0),
		newTestParticipant("p3", "C", 10, 0),
		newTestParticipant("p4", "D", 5, 0),
	)

	first := e.CurrentParticipant()
	for i := 0; i < len(e.Participants); i++ {
		_, err := rules.AdvanceTurn(e)
		s.Require().NoError(err)
	}

	s.Assert().Equal(first.ID, e.CurrentParticipant().ID, "N advances return to the original participant")
	s.Assert().Equal(int32(2), e.Round)
}

func (s *InitiativeTestSuite) TestAdvanceTurnResetsActionEconomy() {
	aragorn := newTestParticipant("p1", "Aragorn", 17, 2)
	orc := newTestParticipant("p2", "Orc", 8, 0)
	e := newTestEncounter(aragorn, orc)

	aragorn.ActionUsed = true
	aragorn.BonusActionUsed = true
	orc.ReactionUsed = true
	orc.MovementUsed = 30

	// Advance within the round: flags untouched
	_, err := rules.AdvanceTurn(e)
	s.Require().NoError(err)
	s.Assert().True(aragorn.ActionUsed)

	// Round wrap: everything resets
	_, err = rules.AdvanceTurn(e)
	s.Require().NoError(err)
	s.Assert().False(aragorn.ActionUsed)
	s.Assert().False(aragorn.BonusActionUsed)
	s.Assert().False(orc.ReactionUsed)
	s.Assert().Zero(orc.MovementUsed)
}

func (s *InitiativeTestSuite) TestAdvanceTurnClearsSurpriseAfterFirstRound() {
	aragorn := newTestParticipant("p1", "Aragorn", 17, 2)
	orc := newTestParticipant("p2", "Orc", 8, 0)
	orc.Surprised = true
	e := newTestEncounter(aragorn, orc)
	e.SurpriseRound = true

	_, err := rules.AdvanceTurn(e)
	s.Require().NoError(err)
	s.Assert().True(orc.Surprised, "surprise holds during round 1")

	_, err = rules.AdvanceTurn(e)
	s.Require().NoError(err)
	s.Assert().False(orc.Surprised, "surprise clears once round 2 starts")
}

func (s *InitiativeTestSuite) TestAdvanceTurnTicksRoundConditions() {
	aragorn := newTestParticipant("p1", "Aragorn", 17, 2)
	orc := newTestParticipant("p2", "Orc", 8, 0)
	e := newTestEncounter(aragorn, orc)

	_, _, err := rules.ApplyCondition(orc, rules.ApplyConditionParams{
		ConditionID:    "cond_1",
		Name:           entities.ConditionPoisoned,
		DurationType:   entities.DurationRounds,
		DurationRounds: 3,
	}, e.Round)
	s.Require().NoError(err)

	// Three full rounds: condition expires exactly at the end
	for round := 0; round < 3; round++ {
		for i := 0; i < len(e.Participants); i++ {
			_, err := rules.AdvanceTurn(e)
			s.Require().NoError(err)
		}
	}

	s.Assert().False(orc.HasCondition(entities.ConditionPoisoned), "condition should expire after 3 rounds")
}

func (s *InitiativeTestSuite) TestAdvanceTurnConditionSurvivesTwoRounds() {
	aragorn := newTestParticipant("p1", "Aragorn", 17, 2)
	orc := newTestParticipant("p2", "Orc", 8, 0)
	e := newTestEncounter(aragorn, orc)

	_, _, err := rules.ApplyCondition(orc, rules.ApplyConditionParams{
		ConditionID:    "cond_1",
		Name:           entities.ConditionPoisoned,
		DurationType:   entities.DurationRounds,
		DurationRounds: 3,
	}, e.Round)
	s.Require().NoError(err)

	for round := 0; round < 2; round++ {
		for i := 0; i < len(e.Participants); i++ {
			_, err := rules.AdvanceTurn(e)
			s.Require().NoError(err)
		}
	}

	s.Assert().True(orc.HasCondition(entities.ConditionPoisoned), "condition should survive 2 of 3 rounds")
}

func (s *InitiativeTestSuite) TestAdvanceTurnRequiresActiveEncounter() {
	e := newTestEncounter(newTestParticipant("p1", "Aragorn", 17, 2))
	e.Status = entities.EncounterCompleted

	_, err := rules.AdvanceTurn(e)
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
}

func (s *InitiativeTestSuite) TestEndCombatIdempotent() {
	e := newTestEncounter(newTestParticipant("p1", "Aragorn", 17, 2))

	s.Assert().True(rules.EndCombat(e))
	s.Assert().Equal(entities.EncounterCompleted, e.Status)
	s.Assert().Nil(e.CurrentTurnIndex)

	// Second end is a no-op, not an error
	s.Assert().False(rules.EndCombat(e))
	s.Assert().Equal(entities.EncounterCompleted, e.Status)
}
