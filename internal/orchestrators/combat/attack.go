package combat

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/combat-api/internal/entities"
	"github.com/KirkDiggler/combat-api/internal/errors"
	"github.com/KirkDiggler/combat-api/internal/pkg/dice"
	"github.com/KirkDiggler/combat-api/internal/repositories/weapons"
	"github.com/KirkDiggler/combat-api/internal/rules"
)

// ResolveAttack resolves one weapon attack: hit determination against the
// target's armor class, damage rolling with critical dice doubling, and
// damage application through the shared aggregate. A natural 20 always hits
// and crits; a natural 1 always misses.
func (o *orchestrator) ResolveAttack(ctx context.Context, input *ResolveAttackInput) (*ResolveAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.AttackerID == "" {
		return nil, errors.InvalidArgument("attacker ID is required")
	}
	if input.TargetID == "" {
		return nil, errors.InvalidArgument("target ID is required")
	}
	if input.AttackRoll < 0 || input.AttackRoll > 20 {
		return nil, errors.InvalidArgumentf("attack roll must be between 1 and 20, got %d", input.AttackRoll)
	}

	encounter, err := o.loadEncounter(ctx, input.EncounterID)
	if err != nil {
		return nil, err
	}

	attacker, ok := encounter.ParticipantByID(input.AttackerID)
	if !ok {
		return nil, errors.NotFoundf("attacker not found: %s", input.AttackerID)
	}
	target, ok := encounter.ParticipantByID(input.TargetID)
	if !ok {
		return nil, errors.NotFoundf("target not found: %s", input.TargetID)
	}
	if err := rules.CanBeAttacked(target); err != nil {
		return nil, err
	}

	// Weapon profile supplies defaults the input does not override
	attackBonus := input.AttackBonus
	damageExpression := input.DamageExpression
	damageType := input.DamageType
	description := "weapon attack"

	if input.WeaponID != "" {
		if attacker.CharacterID == "" {
			return nil, errors.FailedPreconditionf("attacker %s has no character reference for weapon lookup", attacker.ID)
		}
		weaponOutput, err := o.weaponRepo.Get(ctx, weapons.GetInput{
			CharacterID: attacker.CharacterID,
			AttackID:    input.WeaponID,
		})
		if err != nil {
			return nil, err
		}
		weapon := weaponOutput.Attack
		if attackBonus == 0 {
			attackBonus = weapon.AttackBonus
		}
		if damageExpression == "" {
			damageExpression = weapon.DamageDice
		}
		if damageType == "" {
			damageType = weapon.DamageType
		}
		description = weapon.Name
	}
	if damageExpression == "" {
		return nil, errors.InvalidArgument("damage expression is required when no weapon is selected")
	}

	attackRoll := input.AttackRoll
	if attackRoll == 0 {
		rolled, err := o.rollD20()
		if err != nil {
			return nil, err
		}
		attackRoll = rolled
	}

	outcome, err := rules.ResolveHit(attackRoll, attackBonus, target.ArmorClass)
	if err != nil {
		return nil, err
	}

	output := &ResolveAttackOutput{
		Outcome: outcome,
		Target:  target,
	}

	if !outcome.Hit {
		slog.InfoContext(ctx, "attack missed",
			"encounter_id", encounter.ID,
			"attacker_id", attacker.ID,
			"target_id", target.ID,
			"attack_total", outcome.AttackTotal,
			"natural_one", outcome.NaturalOne,
		)
		return output, nil
	}

	critical := outcome.Critical || input.ForceCritical
	damageRoll, err := rules.RollAttackDamage(o.roller, damageExpression, critical)
	if err != nil {
		return nil, err
	}

	// nolint:gosec // dice totals fit in int32
	damageResult, err := rules.ApplyDamage(encounter, target, rules.DamageRequest{
		Amount:              int32(damageRoll.Total),
		Type:                damageType,
		SourceParticipantID: attacker.ID,
		Description:         description,
	}, o.newID("dmg"), o.newID("cond"), o.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := o.saveEncounter(ctx, encounter); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "attack resolved",
		"encounter_id", encounter.ID,
		"attacker_id", attacker.ID,
		"target_id", target.ID,
		"attack_total", outcome.AttackTotal,
		"critical", critical,
		"damage_applied", damageResult.AppliedAmount,
		"target_hp", target.CurrentHP,
	)

	output.DamageRoll = damageRoll
	output.Damage = damageResult
	return output, nil
}

// ResolveSpellAttack resolves one save-based spell against multiple targets.
// The damage expression is rolled once; each target saves independently and
// takes full, half (floor), or no damage depending on the save and the
// spell's all-or-nothing flag.
func (o *orchestrator) ResolveSpellAttack(ctx context.Context, input *ResolveSpellAttackInput) (*ResolveSpellAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CasterID == "" {
		return nil, errors.InvalidArgument("caster ID is required")
	}
	if len(input.TargetIDs) == 0 {
		return nil, errors.InvalidArgument("at least one target is required")
	}
	if input.SaveDC <= 0 {
		return nil, errors.InvalidArgumentf("save DC must be positive, got %d", input.SaveDC)
	}
	if input.DamageExpression == "" {
		return nil, errors.InvalidArgument("damage expression is required")
	}
	for _, roll := range input.SaveRolls {
		if roll < 1 || roll > 20 {
			return nil, errors.InvalidArgumentf("save roll must be between 1 and 20, got %d", roll)
		}
	}

	encounter, err := o.loadEncounter(ctx, input.EncounterID)
	if err != nil {
		return nil, err
	}

	caster, ok := encounter.ParticipantByID(input.CasterID)
	if !ok {
		return nil, errors.NotFoundf("caster not found: %s", input.CasterID)
	}

	// Resolve every target reference before mutating anything
	targets := make([]*entities.Participant, 0, len(input.TargetIDs))
	for _, targetID := range input.TargetIDs {
		target, ok := encounter.ParticipantByID(targetID)
		if !ok {
			return nil, errors.NotFoundf("target not found: %s", targetID)
		}
		if err := rules.CanBeAttacked(target); err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}

	damageRoll, err := dice.RollExpression(o.roller, input.DamageExpression)
	if err != nil {
		return nil, err
	}
	// nolint:gosec // dice totals fit in int32
	fullDamage := int32(damageRoll.Total)

	description := input.SpellName
	if description == "" {
		description = "spell attack"
	}

	output := &ResolveSpellAttackOutput{DamageRoll: damageRoll}
	for _, target := range targets {
		roll, pinned := input.SaveRolls[target.ID]
		if !pinned {
			rolled, err := o.rollD20()
			if err != nil {
				return nil, err
			}
			roll = rolled
		}

		modifier := int32(dice.Modifier(int(target.Abilities.Score(input.SaveAbility))))
		saved := rules.SpellSaveSucceeds(roll, modifier, input.SaveDC)

		amount := fullDamage
		if saved {
			if input.AllOrNothing {
				amount = 0
			} else {
				amount = rules.HalveDamage(fullDamage)
			}
		}

		result := &SpellTargetResult{
			TargetID:  target.ID,
			SaveRoll:  roll,
			SaveTotal: roll + modifier,
			Saved:     saved,
		}

		if amount > 0 {
			damageResult, err := rules.ApplyDamage(encounter, target, rules.DamageRequest{
				Amount:              amount,
				Type:                input.DamageType,
				SourceParticipantID: caster.ID,
				Description:         description,
			}, o.newID("dmg"), o.newID("cond"), o.clock.Now())
			if err != nil {
				return nil, err
			}
			result.Damage = damageResult
		}

		result.TargetHP = target.CurrentHP
		result.TargetDead = target.Dead
		output.Targets = append(output.Targets, result)
	}

	if err := o.saveEncounter(ctx, encounter); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "spell attack resolved",
		"encounter_id", encounter.ID,
		"caster_id", caster.ID,
		"spell", description,
		"save_dc", input.SaveDC,
		"targets", len(output.Targets),
		"damage_rolled", fullDamage,
	)

	return output, nil
}

// CreateWeaponAttack saves a weapon attack profile used as attack defaults
func (o *orchestrator) CreateWeaponAttack(ctx context.Context, input *CreateWeaponAttackInput) (*CreateWeaponAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("weapon name is required")
	}
	if _, err := dice.ParseExpression(input.DamageDice); err != nil {
		return nil, err
	}

	attack := &entities.WeaponAttack{
		ID:          o.newID("atk"),
		CharacterID: input.CharacterID,
		Name:        input.Name,
		DamageDice:  input.DamageDice,
		DamageType:  input.DamageType,
		AttackBonus: input.AttackBonus,
	}

	saveOutput, err := o.weaponRepo.Save(ctx, weapons.SaveInput{Attack: attack})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "weapon attack created",
		"character_id", input.CharacterID,
		"attack_id", attack.ID,
		"name", attack.Name,
	)

	return &CreateWeaponAttackOutput{Attack: saveOutput.Attack}, nil
}

// GetCharacterWeapons lists a character's saved weapon attack profiles
func (o *orchestrator) GetCharacterWeapons(ctx context.Context, input *GetCharacterWeaponsInput) (*GetCharacterWeaponsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	listOutput, err := o.weaponRepo.ListByCharacter(ctx, weapons.ListByCharacterInput{
		CharacterID: input.CharacterID,
	})
	if err != nil {
		return nil, err
	}

	return &GetCharacterWeaponsOutput{Attacks: listOutput.Attacks}, nil
}
