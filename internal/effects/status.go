package effects

// Status toggles named boolean flags on the holder, remembering the prior
// values so Remove can restore them exactly. Flags the holder does not
// recognize are skipped.
type Status struct {
	Base
	Changes  map[string]bool
	previous map[string]bool
}

// NewStatus creates a status condition such as a stun
func NewStatus(name string, duration int, changes map[string]bool) *Status {
	return &Status{
		Base: Base{
			EffectName: name,
			EffectType: TypeStatus,
			Turns:      duration,
		},
		Changes: changes,
	}
}

// Apply snapshots the current flag values and installs the overrides
func (e *Status) Apply(target Target) {
	e.previous = make(map[string]bool, len(e.Changes))
	for name, value := range e.Changes {
		prev, ok := target.Flag(name)
		if !ok {
			continue
		}
		e.previous[name] = prev
		target.SetFlag(name, value)
	}
}

// Tick does nothing; the flag override persists between passes
func (e *Status) Tick(Target) {}

// Remove restores the snapshotted flag values
func (e *Status) Remove(target Target) {
	for name, prev := range e.previous {
		target.SetFlag(name, prev)
	}
}
