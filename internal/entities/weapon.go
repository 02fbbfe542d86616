package entities

// WeaponAttack is a reusable attack profile for a character, used as the
// default damage source when ResolveAttack is not given an explicit roll.
type WeaponAttack struct {
	ID          string     `json:"id"`
	CharacterID string     `json:"character_id"`
	Name        string     `json:"name"`
	DamageDice  string     `json:"damage_dice"` // dice expression, e.g. "1d8+3"
	DamageType  DamageType `json:"damage_type"`
	AttackBonus int32      `json:"attack_bonus"`
	CreatedAt   int64      `json:"created_at"`
}
