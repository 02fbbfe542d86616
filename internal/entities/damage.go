package entities

import "time"

// DamageType tags damage for resistance/vulnerability/immunity lookups
type DamageType string

// D&D 5e damage types
const (
	DamageAcid        DamageType = "acid"
	DamageBludgeoning DamageType = "bludgeoning"
	DamageCold        DamageType = "cold"
	DamageFire        DamageType = "fire"
	DamageForce       DamageType = "force"
	DamageLightning   DamageType = "lightning"
	DamageNecrotic    DamageType = "necrotic"
	DamagePiercing    DamageType = "piercing"
	DamagePoison      DamageType = "poison"
	DamagePsychic     DamageType = "psychic"
	DamageRadiant     DamageType = "radiant"
	DamageSlashing    DamageType = "slashing"
	DamageThunder     DamageType = "thunder"
)

// DamageCategory records which defensive trait applied to a damage roll
type DamageCategory string

// Damage log categories
const (
	DamageCategoryNone       DamageCategory = "none"
	DamageCategoryResisted   DamageCategory = "resisted"
	DamageCategoryVulnerable DamageCategory = "vulnerable"
	DamageCategoryImmune     DamageCategory = "immune"
)

// DamageLogEntry is one append-only audit record of a damage or heal
// application. Entries are immutable once written and live on the encounter
// aggregate for its lifetime.
type DamageLogEntry struct {
	ID                  string         `json:"id"`
	EncounterID         string         `json:"encounter_id"`
	ParticipantID       string         `json:"participant_id"`
	SourceParticipantID string         `json:"source_participant_id,omitempty"`
	Round               int32          `json:"round"`
	RawAmount           int32          `json:"raw_amount"`
	DamageType          DamageType     `json:"damage_type,omitempty"`
	Category            DamageCategory `json:"category"`
	AppliedAmount       int32          `json:"applied_amount"`
	Healing             bool           `json:"healing,omitempty"`
	Description         string         `json:"description,omitempty"`
	Timestamp           time.Time      `json:"timestamp"`
}
