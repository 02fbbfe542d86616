package rules

import (
	"sort"

	"github.com/KirkDiggler/combat-api/internal/entities"
)

// Effects is the normalized mechanical effect set for a participant. Boolean
// effects are OR-merged across active conditions; SpeedMultiplier takes the
// most restrictive value.
type Effects struct {
	AttacksHaveDisadvantage        bool    `json:"attacks_have_disadvantage"`
	AttacksHaveAdvantage           bool    `json:"attacks_have_advantage"`
	AttackersHaveAdvantage         bool    `json:"attackers_have_advantage"`
	AttackersHaveDisadvantage      bool    `json:"attackers_have_disadvantage"`
	AbilityChecksHaveDisadvantage  bool    `json:"ability_checks_have_disadvantage"`
	AutoFailStrengthDexteritySaves bool    `json:"auto_fail_strength_dexterity_saves"`
	CannotTakeActions              bool    `json:"cannot_take_actions"`
	CannotTakeReactions            bool    `json:"cannot_take_reactions"`
	CannotMove                     bool    `json:"cannot_move"`
	CannotSee                      bool    `json:"cannot_see"`
	CannotHear                     bool    `json:"cannot_hear"`
	MeleeAttackersAutoCrit         bool    `json:"melee_attackers_auto_crit"`
	SpeedMultiplier                float64 `json:"speed_multiplier"`
}

// merge folds another effect profile into this one
func (e *Effects) merge(other Effects) {
	e.AttacksHaveDisadvantage = e.AttacksHaveDisadvantage || other.AttacksHaveDisadvantage
	e.AttacksHaveAdvantage = e.AttacksHaveAdvantage || other.AttacksHaveAdvantage
	e.AttackersHaveAdvantage = e.AttackersHaveAdvantage || other.AttackersHaveAdvantage
	e.AttackersHaveDisadvantage = e.AttackersHaveDisadvantage || other.AttackersHaveDisadvantage
	e.AbilityChecksHaveDisadvantage = e.AbilityChecksHaveDisadvantage || other.AbilityChecksHaveDisadvantage
	e.AutoFailStrengthDexteritySaves = e.AutoFailStrengthDexteritySaves || other.AutoFailStrengthDexteritySaves
	e.CannotTakeActions = e.CannotTakeActions || other.CannotTakeActions
	e.CannotTakeReactions = e.CannotTakeReactions || other.CannotTakeReactions
	e.CannotMove = e.CannotMove || other.CannotMove
	e.CannotSee = e.CannotSee || other.CannotSee
	e.CannotHear = e.CannotHear || other.CannotHear
	e.MeleeAttackersAutoCrit = e.MeleeAttackersAutoCrit || other.MeleeAttackersAutoCrit
	if other.SpeedMultiplier < e.SpeedMultiplier {
		e.SpeedMultiplier = other.SpeedMultiplier
	}
}

// ConditionDefinition is one entry in the canonical condition library:
// the condition's effect profile plus exclusion partners used for advisory
// warnings on apply.
type ConditionDefinition struct {
	Name          entities.ConditionType   `json:"name"`
	Description   string                   `json:"description"`
	Effects       Effects                  `json:"effects"`
	ExclusiveWith []entities.ConditionType `json:"exclusive_with,omitempty"`
}

// conditionLibrary is the single authoritative mapping from condition name to
// effect profile. Both apply-time warnings and effect aggregation consult it.
var conditionLibrary = map[entities.ConditionType]*ConditionDefinition{
	entities.ConditionBlinded: {
		Name:        entities.ConditionBlinded,
		Description: "Can't see; automatically fails checks that require sight.",
		Effects: Effects{
			CannotSee:               true,
			AttacksHaveDisadvantage: true,
			AttackersHaveAdvantage:  true,
			SpeedMultiplier:         1,
		},
	},
	entities.ConditionCharmed: {
		Name:        entities.ConditionCharmed,
		Description: "Can't attack the charmer; the charmer has advantage on social checks.",
		Effects: Effects{
			SpeedMultiplier: 1,
		},
	},
	entities.ConditionDeafened: {
		Name:        entities.ConditionDeafened,
		Description: "Can't hear; automatically fails checks that require hearing.",
		Effects: Effects{
			CannotHear:      true,
			SpeedMultiplier: 1,
		},
	},
	entities.ConditionFrightened: {
		Name:        entities.ConditionFrightened,
		Description: "Disadvantage on checks and attacks while the source of fear is in sight; can't willingly move closer to it.",
		Effects: Effects{
			AttacksHaveDisadvantage:       true,
			AbilityChecksHaveDisadvantage: true,
			SpeedMultiplier:               1,
		},
	},
	entities.ConditionFlying: {
		Name:          entities.ConditionFlying,
		Description:   "Airborne by magical or natural flight.",
		ExclusiveWith: []entities.ConditionType{entities.ConditionProne},
		Effects: Effects{
			SpeedMultiplier: 1,
		},
	},
	entities.ConditionGrappled: {
		Name:        entities.ConditionGrappled,
		Description: "Speed becomes 0 and can't benefit from bonuses to speed.",
		Effects: Effects{
			CannotMove:      true,
			SpeedMultiplier: 0,
		},
	},
	entities.ConditionIncapacitated: {
		Name:        entities.ConditionIncapacitated,
		Description: "Can't take actions or reactions.",
		Effects: Effects{
			CannotTakeActions:   true,
			CannotTakeReactions: true,
			SpeedMultiplier:     1,
		},
	},
	entities.ConditionInvisible: {
		Name:        entities.ConditionInvisible,
		Description: "Can't be seen without special senses; heavily obscured for hiding.",
		Effects: Effects{
			AttacksHaveAdvantage:      true,
			AttackersHaveDisadvantage: true,
			SpeedMultiplier:           1,
		},
	},
	entities.ConditionParalyzed: {
		Name:        entities.ConditionParalyzed,
		Description: "Incapacitated, can't move or speak; attacks from within 5 feet that hit are critical hits.",
		Effects: Effects{
			CannotTakeActions:              true,
			CannotTakeReactions:            true,
			CannotMove:                     true,
			AutoFailStrengthDexteritySaves: true,
			AttackersHaveAdvantage:         true,
			MeleeAttackersAutoCrit:         true,
			SpeedMultiplier:                0,
		},
	},
	entities.ConditionPetrified: {
		Name:        entities.ConditionPetrified,
		Description: "Transformed into stone; incapacitated and unaware of surroundings.",
		Effects: Effects{
			CannotTakeActions:              true,
			CannotTakeReactions:            true,
			CannotMove:                     true,
			AutoFailStrengthDexteritySaves: true,
			AttackersHaveAdvantage:         true,
			SpeedMultiplier:                0,
		},
	},
	entities.ConditionPoisoned: {
		Name:        entities.ConditionPoisoned,
		Description: "Disadvantage on attack rolls and ability checks.",
		Effects: Effects{
			AttacksHaveDisadvantage:       true,
			AbilityChecksHaveDisadvantage: true,
			SpeedMultiplier:               1,
		},
	},
	entities.ConditionProne: {
		Name:          entities.ConditionProne,
		Description:   "Only movement option is to crawl; attacks within 5 feet have advantage against it, ranged attacks disadvantage.",
		ExclusiveWith: []entities.ConditionType{entities.ConditionFlying},
		Effects: Effects{
			AttacksHaveDisadvantage: true,
			SpeedMultiplier:         0.5,
		},
	},
	entities.ConditionRestrained: {
		Name:        entities.ConditionRestrained,
		Description: "Speed becomes 0; disadvantage on attacks and Dexterity saves.",
		Effects: Effects{
			AttacksHaveDisadvantage: true,
			AttackersHaveAdvantage:  true,
			CannotMove:              true,
			SpeedMultiplier:         0,
		},
	},
	entities.ConditionStunned: {
		Name:        entities.ConditionStunned,
		Description: "Incapacitated, can't move, and can speak only falteringly.",
		Effects: Effects{
			CannotTakeActions:              true,
			CannotTakeReactions:            true,
			CannotMove:                     true,
			AutoFailStrengthDexteritySaves: true,
			AttackersHaveAdvantage:         true,
			SpeedMultiplier:                0,
		},
	},
	entities.ConditionUnconscious: {
		Name:        entities.ConditionUnconscious,
		Description: "Incapacitated, prone, and unaware; attacks from within 5 feet that hit are critical hits.",
		Effects: Effects{
			CannotTakeActions:              true,
			CannotTakeReactions:            true,
			CannotMove:                     true,
			AutoFailStrengthDexteritySaves: true,
			AttackersHaveAdvantage:         true,
			MeleeAttackersAutoCrit:         true,
			SpeedMultiplier:                0,
		},
	},
}

// DefinitionFor looks up a condition definition by name
func DefinitionFor(name entities.ConditionType) (*ConditionDefinition, bool) {
	def, ok := conditionLibrary[name]
	return def, ok
}

// Library returns all known condition definitions sorted by name
func Library() []*ConditionDefinition {
	defs := make([]*ConditionDefinition, 0, len(conditionLibrary))
	for _, def := range conditionLibrary {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Name < defs[j].Name
	})
	return defs
}
