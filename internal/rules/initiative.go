package rules

import (
	"sort"

	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
)

// SortTurnOrder recomputes dense turn-order positions for every participant:
// initiative descending, ties broken by higher initiative modifier, then by
// join order. The sort is fully deterministic; no randomness is involved in
// tie-breaks.
func SortTurnOrder(e *entities.Encounter) {
	sorted := make([]*entities.Participant, len(e.Participants))
	copy(sorted, e.Participants)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Initiative != sorted[j].Initiative {
			return sorted[i].Initiative > sorted[j].Initiative
		}
		if sorted[i].InitiativeModifier != sorted[j].InitiativeModifier {
			return sorted[i].InitiativeModifier > sorted[j].InitiativeModifier
		}
		return sorted[i].JoinOrder < sorted[j].JoinOrder
	})

	for position, p := range sorted {
		p.TurnOrder = position
	}
}

// TurnAdvance is the result of advancing the turn pointer
type TurnAdvance struct {
	Round             int32
	TurnIndex         int
	RoundAdvanced     bool
	Current           *entities.Participant
	ExpiredConditions []*entities.ActiveCondition
}

// AdvanceTurn moves the turn pointer to the next participant in turn order.
// Wrapping past the last participant starts a new round: the round counter
// increments, per-turn action economy resets for everyone, and rounds-type
// conditions tick down (expired ones are removed).
func AdvanceTurn(e *entities.Encounter) (*TurnAdvance, error) {
	if !e.IsActive() {
		return nil, errors.FailedPreconditionf("encounter %s is not active (status: %s)", e.ID, e.Status)
	}
	if len(e.Participants) == 0 {
		return nil, errors.FailedPreconditionf("encounter %s has no participants", e.ID)
	}

	idx := 0
	if e.CurrentTurnIndex != nil {
		idx = *e.CurrentTurnIndex
	}

	advance := &TurnAdvance{}

	idx++
	if idx >= len(e.Participants) {
		idx = 0
		e.Round++
		advance.RoundAdvanced = true
		ResetRoundEconomy(e)
		advance.ExpiredConditions = TickRoundConditions(e)
	}

	e.CurrentTurnIndex = &idx
	advance.Round = e.Round
	advance.TurnIndex = idx
	advance.Current = e.CurrentParticipant()

	return advance, nil
}

// ResetRoundEconomy clears per-turn action economy flags for all
// participants. Surprise only lasts the first round, so the surprised flag
// clears once the encounter is past round 1.
func ResetRoundEconomy(e *entities.Encounter) {
	for _, p := range e.Participants {
		p.ActionUsed = false
		p.BonusActionUsed = false
		p.ReactionUsed = false
		p.MovementUsed = 0
		if e.Round > 1 {
			p.Surprised = false
		}
	}
}

// EndCombat marks the encounter completed and clears the turn pointer.
// Ending an already-completed encounter is a no-op; the return value reports
// whether anything changed.
func EndCombat(e *entities.Encounter) bool {
	if e.Status == entities.EncounterCompleted {
		return false
	}
	e.Status = entities.EncounterCompleted
	e.CurrentTurnIndex = nil
	return true
}
