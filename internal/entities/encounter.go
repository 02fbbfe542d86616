// Package entities holds the combat domain model. These are plain structs
// shared by the rules engine, orchestrators, and repositories.
package entities

// EncounterStatus is the lifecycle state of an encounter
type EncounterStatus string

// Encounter lifecycle states. The progression is one-way: an encounter never
// resumes after completion.
const (
	EncounterNotStarted EncounterStatus = "not_started"
	EncounterActive     EncounterStatus = "active"
	EncounterCompleted  EncounterStatus = "completed"
)

// Encounter is the aggregate root for one combat instance. It owns the
// participants, their conditions, and the damage log for its whole lifetime.
type Encounter struct {
	ID            string          `json:"id"`
	SessionID     string          `json:"session_id"`
	Status        EncounterStatus `json:"status"`
	Round         int32           `json:"round"`
	SurpriseRound bool            `json:"surprise_round"`

	// CurrentTurnIndex points into the turn order. Nil unless the
	// encounter is active.
	CurrentTurnIndex *int `json:"current_turn_index,omitempty"`

	Participants []*Participant    `json:"participants"`
	DamageLog    []*DamageLogEntry `json:"damage_log"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// IsActive reports whether the encounter accepts combat mutations
func (e *Encounter) IsActive() bool {
	return e.Status == EncounterActive
}

// ParticipantByID finds a participant in this encounter
func (e *Encounter) ParticipantByID(id string) (*Participant, bool) {
	for _, p := range e.Participants {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// TurnOrder returns participants sorted by their turn-order position.
// Positions are assigned densely by the initiative sort, so this is a
// permutation of Participants.
func (e *Encounter) TurnOrder() []*Participant {
	ordered := make([]*Participant, len(e.Participants))
	copy(ordered, e.Participants)
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && ordered[j-1].TurnOrder > ordered[j].TurnOrder; j-- {
			ordered[j-1], ordered[j] = ordered[j], ordered[j-1]
		}
	}
	return ordered
}

// CurrentParticipant returns the participant whose turn it is, or nil when
// the encounter is not active.
func (e *Encounter) CurrentParticipant() *Participant {
	if e.CurrentTurnIndex == nil {
		return nil
	}
	order := e.TurnOrder()
	idx := *e.CurrentTurnIndex
	if idx < 0 || idx >= len(order) {
		return nil
	}
	return order[idx]
}

// Clone returns a deep copy of the encounter. Repositories hand out clones
// so callers can mutate freely and persist atomically.
func (e *Encounter) Clone() *Encounter {
	if e == nil {
		return nil
	}

	clone := *e

	if e.CurrentTurnIndex != nil {
		idx := *e.CurrentTurnIndex
		clone.CurrentTurnIndex = &idx
	}

	clone.Participants = make([]*Participant, len(e.Participants))
	for i, p := range e.Participants {
		clone.Participants[i] = p.Clone()
	}

	clone.DamageLog = make([]*DamageLogEntry, len(e.DamageLog))
	for i, entry := range e.DamageLog {
		entryCopy := *entry
		clone.DamageLog[i] = &entryCopy
	}

	return &clone
}
