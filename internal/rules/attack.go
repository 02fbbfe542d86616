package rules

import (
	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
	"github.com/KirkDiggler/combat-api/internal/pkg/dice"
)

// AttackOutcome is the hit/miss determination for one attack roll
type AttackOutcome struct {
	Hit         bool
	Critical    bool
	NaturalOne  bool
	AttackTotal int32
}

// ResolveHit determines hit, miss, and critical state for an attack roll
// against a target's armor class. A natural 20 always hits and is a critical
// regardless of total; a natural 1 always misses regardless of bonus.
func ResolveHit(attackRoll, attackBonus, targetAC int32) (*AttackOutcome, error) {
	if attackRoll < 1 || attackRoll > 20 {
		return nil, errors.InvalidArgumentf("attack roll must be between 1 and 20, got %d", attackRoll)
	}

	outcome := &AttackOutcome{
		AttackTotal: attackRoll + attackBonus,
	}

	switch {
	case attackRoll == 20:
		outcome.Hit = true
		outcome.Critical = true
	case attackRoll == 1:
		outcome.NaturalOne = true
	default:
		outcome.Hit = outcome.AttackTotal >= targetAC
	}

	return outcome, nil
}

// RollAttackDamage rolls a damage expression, doubling the dice (never the
// flat modifier) on a critical hit.
func RollAttackDamage(roller toolkitdice.Roller, expression string, critical bool) (*dice.ExpressionResult, error) {
	parsed, err := dice.ParseExpression(expression)
	if err != nil {
		return nil, err
	}

	if critical {
		parsed.Count *= 2
	}

	return dice.RollParsed(roller, parsed, expression)
}

// SpellSaveSucceeds resolves one saving throw against a spell save DC
func SpellSaveSucceeds(saveRoll, abilityModifier, saveDC int32) bool {
	return saveRoll+abilityModifier >= saveDC
}

// HalveDamage is the save-for-half rule: half damage, rounded down
func HalveDamage(amount int32) int32 {
	return amount / 2
}

// CanBeAttacked checks that a target is a legal attack target. Dead
// participants cannot be attacked.
func CanBeAttacked(target *entities.Participant) error {
	if target.Dead {
		return errors.FailedPreconditionf("participant %s is dead and cannot be targeted", target.ID)
	}
	return nil
}
