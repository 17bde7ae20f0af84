package effects

// Prebuilt effects used by consumables, enemy abilities, and tests.

// StrengthBuff raises attack for a few turns
func StrengthBuff(duration, power int) *StatModifier {
	return NewStatModifier("Strength", TypeBuff, duration, map[string]int{"attack": power})
}

// Weakness lowers attack for a few turns
func Weakness(duration, power int) *StatModifier {
	return NewStatModifier("Weakness", TypeDebuff, duration, map[string]int{"attack": -power})
}

// Shield raises defense for a few turns
func Shield(duration, bonus int) *StatModifier {
	return NewStatModifier("Shield", TypeBuff, duration, map[string]int{"defense": bonus})
}

// Poison deals damage each pass
func Poison(duration, perTick int) *DamageOverTime {
	return NewDamageOverTime("Poison", duration, perTick)
}

// Regeneration restores health each pass
func Regeneration(duration, perTick int) *HealOverTime {
	return NewHealOverTime("Regeneration", duration, perTick)
}

// Stun prevents the holder from acting
func Stun(duration int) *Status {
	return NewStatus("Stunned", duration, map[string]bool{"stunned": true})
}
