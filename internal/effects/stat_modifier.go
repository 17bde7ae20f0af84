package effects

// StatModifier is a buff or debuff that shifts one or more stats by an
// additive amount for its duration. Apply installs the modifiers, Remove
// subtracts them again.
type StatModifier struct {
	Base
	Modifiers map[string]int
}

// NewStatModifier creates a stat-shifting effect. Negative amounts make it
// a debuff regardless of the type passed.
func NewStatModifier(name string, effectType Type, duration int, modifiers map[string]int) *StatModifier {
	return &StatModifier{
		Base: Base{
			EffectName: name,
			EffectType: effectType,
			Turns:      duration,
		},
		Modifiers: modifiers,
	}
}

// Apply installs the stat modifiers on the target
func (e *StatModifier) Apply(target Target) {
	for stat, amount := range e.Modifiers {
		target.AddModifier(stat, amount)
	}
}

// Tick does nothing; stat modifiers act on install and removal only
func (e *StatModifier) Tick(Target) {}

// Remove subtracts the stat modifiers from the target
func (e *StatModifier) Remove(target Target) {
	for stat, amount := range e.Modifiers {
		target.RemoveModifier(stat, amount)
	}
}
