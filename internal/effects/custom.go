package effects

// Custom is a callback-driven effect for bespoke behavior that none of the
// fixed variants cover. Nil callbacks are no-ops.
type Custom struct {
	Base
	OnApply  func(target Target)
	OnTick   func(target Target)
	OnRemove func(target Target)
}

// NewCustom creates a callback-driven effect
func NewCustom(name string, effectType Type, duration int) *Custom {
	return &Custom{
		Base: Base{
			EffectName: name,
			EffectType: effectType,
			Turns:      duration,
		},
	}
}

// Apply invokes the configured apply callback
func (e *Custom) Apply(target Target) {
	if e.OnApply != nil {
		e.OnApply(target)
	}
}

// Tick invokes the configured tick callback
func (e *Custom) Tick(target Target) {
	if e.OnTick != nil {
		e.OnTick(target)
	}
}

// Remove invokes the configured remove callback
func (e *Custom) Remove(target Target) {
	if e.OnRemove != nil {
		e.OnRemove(target)
	}
}
