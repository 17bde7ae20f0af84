package effects

// DamageOverTime deals a fixed amount of damage on every processing pass.
type DamageOverTime struct {
	Base
	PerTick int
	// TotalDealt accumulates the damage actually applied across ticks
	TotalDealt int
}

// NewDamageOverTime creates a damage-over-time effect such as poison or burn
func NewDamageOverTime(name string, duration, perTick int) *DamageOverTime {
	return &DamageOverTime{
		Base: Base{
			EffectName: name,
			EffectType: TypeDoT,
			Turns:      duration,
		},
		PerTick: perTick,
	}
}

// Apply does nothing; the damage happens in Tick
func (e *DamageOverTime) Apply(Target) {}

// Tick deals the per-turn damage while the holder lives
func (e *DamageOverTime) Tick(target Target) {
	if !target.Alive() {
		return
	}
	e.TotalDealt += target.TakeTrueDamage(e.PerTick)
}

// Remove does nothing; there is no installed state to undo
func (e *DamageOverTime) Remove(Target) {}

// HealOverTime restores a fixed amount of health on every processing pass.
type HealOverTime struct {
	Base
	PerTick int
	// TotalHealed accumulates the healing actually applied across ticks
	TotalHealed int
}

// NewHealOverTime creates a heal-over-time effect such as regeneration
func NewHealOverTime(name string, duration, perTick int) *HealOverTime {
	return &HealOverTime{
		Base: Base{
			EffectName: name,
			EffectType: TypeHoT,
			Turns:      duration,
		},
		PerTick: perTick,
	}
}

// Apply does nothing; the healing happens in Tick
func (e *HealOverTime) Apply(Target) {}

// Tick restores the per-turn healing while the holder lives
func (e *HealOverTime) Tick(target Target) {
	if !target.Alive() {
		return
	}
	e.TotalHealed += target.Heal(e.PerTick)
}

// Remove does nothing; there is no installed state to undo
func (e *HealOverTime) Remove(Target) {}
