package entities

// ConditionType names a status condition
type ConditionType string

// SRD conditions plus a couple of table-state markers (flying is not an SRD
// condition but participates in the prone exclusion rule).
const (
	ConditionBlinded       ConditionType = "blinded"
	ConditionCharmed       ConditionType = "charmed"
	ConditionDeafened      ConditionType = "deafened"
	ConditionFrightened    ConditionType = "frightened"
	ConditionFlying        ConditionType = "flying"
	ConditionGrappled      ConditionType = "grappled"
	ConditionIncapacitated ConditionType = "incapacitated"
	ConditionInvisible     ConditionType = "invisible"
	ConditionParalyzed     ConditionType = "paralyzed"
	ConditionPetrified     ConditionType = "petrified"
	ConditionPoisoned      ConditionType = "poisoned"
	ConditionProne         ConditionType = "prone"
	ConditionRestrained    ConditionType = "restrained"
	ConditionStunned       ConditionType = "stunned"
	ConditionUnconscious   ConditionType = "unconscious"
)

// DurationType describes how a condition expires
type DurationType string

// Condition duration types
const (
	DurationRounds       DurationType = "rounds"
	DurationUntilSave    DurationType = "until_save"
	DurationPermanent    DurationType = "permanent"
	DurationUntilRemoved DurationType = "until_removed"
)

// DurationTypes lists all valid duration type values for input validation
var DurationTypes = []string{
	string(DurationRounds),
	string(DurationUntilSave),
	string(DurationPermanent),
	string(DurationUntilRemoved),
}

// ActiveCondition is one status condition applied to a participant. A
// participant holds at most one ActiveCondition per condition name;
// reapplying refreshes the existing one.
type ActiveCondition struct {
	ID            string        `json:"id"`
	ParticipantID string        `json:"participant_id"`
	Name          ConditionType `json:"name"`
	DurationType  DurationType  `json:"duration_type"`

	// RemainingRounds is only meaningful for DurationRounds
	RemainingRounds int32 `json:"remaining_rounds,omitempty"`

	SaveDC      int32   `json:"save_dc,omitempty"`
	SaveAbility Ability `json:"save_ability,omitempty"`

	Source       string `json:"source,omitempty"`
	AppliedRound int32  `json:"applied_round"`
}
