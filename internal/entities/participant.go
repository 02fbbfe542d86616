package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Participant entity types, used for core.Entity integration
const (
	ParticipantTypeCharacter = "character"
	ParticipantTypeMonster   = "monster"
)

// Ability names the six core abilities
type Ability string

// The six D&D 5e abilities
const (
	AbilityStrength     Ability = "strength"
	AbilityDexterity    Ability = "dexterity"
	AbilityConstitution Ability = "constitution"
	AbilityIntelligence Ability = "intelligence"
	AbilityWisdom       Ability = "wisdom"
	AbilityCharisma     Ability = "charisma"
)

// AbilityScores holds the six core ability scores
type AbilityScores struct {
	Strength     int32 `json:"strength"`
	Dexterity    int32 `json:"dexterity"`
	Constitution int32 `json:"constitution"`
	Intelligence int32 `json:"intelligence"`
	Wisdom       int32 `json:"wisdom"`
	Charisma     int32 `json:"charisma"`
}

// DefaultAbilityScores returns a flat 10 in every ability, the neutral
// stat line used when a roster entry omits scores.
func DefaultAbilityScores() AbilityScores {
	return AbilityScores{
		Strength:     10,
		Dexterity:    10,
		Constitution: 10,
		Intelligence: 10,
		Wisdom:       10,
		Charisma:     10,
	}
}

// Score returns the score for a named ability. Unknown abilities return 10
// (a +0 modifier) so spell saves against malformed metadata stay neutral.
func (a AbilityScores) Score(ability Ability) int32 {
	switch ability {
	case AbilityStrength:
		return a.Strength
	case AbilityDexterity:
		return a.Dexterity
	case AbilityConstitution:
		return a.Constitution
	case AbilityIntelligence:
		return a.Intelligence
	case AbilityWisdom:
		return a.Wisdom
	case AbilityCharisma:
		return a.Charisma
	default:
		return 10
	}
}

// Participant is one combatant in an encounter. Exactly one of CharacterID
// and MonsterRef is set, depending on whether the combatant is a player
// character or an NPC/monster.
type Participant struct {
	ID          string `json:"id"`
	EncounterID string `json:"encounter_id"`
	Name        string `json:"name"`
	CharacterID string `json:"character_id,omitempty"`
	MonsterRef  string `json:"monster_ref,omitempty"`

	// Initiative is the total rolled score; it can be negative with a bad
	// enough modifier. TurnOrder is the dense position derived from the
	// initiative sort, JoinOrder the insertion-order tie-break.
	Initiative         int32 `json:"initiative"`
	InitiativeModifier int32 `json:"initiative_modifier"`
	TurnOrder          int   `json:"turn_order"`
	JoinOrder          int   `json:"join_order"`

	ArmorClass int32         `json:"armor_class"`
	MaxHP      int32         `json:"max_hp"`
	CurrentHP  int32         `json:"current_hp"`
	TempHP     int32         `json:"temp_hp"`
	Abilities  AbilityScores `json:"abilities"`

	Resistances     []DamageType `json:"resistances,omitempty"`
	Vulnerabilities []DamageType `json:"vulnerabilities,omitempty"`
	Immunities      []DamageType `json:"immunities,omitempty"`

	DeathSaveSuccesses int32 `json:"death_save_successes"`
	DeathSaveFailures  int32 `json:"death_save_failures"`
	Stable             bool  `json:"stable"`
	Dead               bool  `json:"dead"`

	// Per-turn action economy, reset when the round wraps
	Surprised       bool  `json:"surprised,omitempty"`
	ActionUsed      bool  `json:"action_used"`
	BonusActionUsed bool  `json:"bonus_action_used"`
	ReactionUsed    bool  `json:"reaction_used"`
	MovementUsed    int32 `json:"movement_used"`

	Conditions []*ActiveCondition `json:"conditions,omitempty"`
}

var _ core.Entity = (*Participant)(nil)

// GetID implements core.Entity
func (p *Participant) GetID() string {
	return p.ID
}

// GetType implements core.Entity
func (p *Participant) GetType() string {
	if p.MonsterRef != "" {
		return ParticipantTypeMonster
	}
	return ParticipantTypeCharacter
}

// Condition returns the active condition with the given name, if present.
// A participant holds at most one instance per condition name.
func (p *Participant) Condition(name ConditionType) (*ActiveCondition, bool) {
	for _, c := range p.Conditions {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// HasCondition reports whether the named condition is active
func (p *Participant) HasCondition(name ConditionType) bool {
	_, ok := p.Condition(name)
	return ok
}

// IsUnconscious reports whether the unconscious condition is active
func (p *Participant) IsUnconscious() bool {
	return p.HasCondition(ConditionUnconscious)
}

// IsResistant reports resistance to a damage type
func (p *Participant) IsResistant(dt DamageType) bool {
	return containsDamageType(p.Resistances, dt)
}

// IsVulnerable reports vulnerability to a damage type
func (p *Participant) IsVulnerable(dt DamageType) bool {
	return containsDamageType(p.Vulnerabilities, dt)
}

// IsImmune reports immunity to a damage type
func (p *Participant) IsImmune(dt DamageType) bool {
	return containsDamageType(p.Immunities, dt)
}

func containsDamageType(types []DamageType, dt DamageType) bool {
	for _, t := range types {
		if t == dt {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the participant
func (p *Participant) Clone() *Participant {
	if p == nil {
		return nil
	}

	clone := *p

	clone.Resistances = append([]DamageType(nil), p.Resistances...)
	clone.Vulnerabilities = append([]DamageType(nil), p.Vulnerabilities...)
	clone.Immunities = append([]DamageType(nil), p.Immunities...)

	if p.Conditions != nil {
		clone.Conditions = make([]*ActiveCondition, len(p.Conditions))
		for i, c := range p.Conditions {
			condCopy := *c
			clone.Conditions[i] = &condCopy
		}
	}

	return &clone
}
