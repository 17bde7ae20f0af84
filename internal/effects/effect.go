// Package effects implements timed buffs, debuffs, and status conditions
// applied to combatants during battle.
package effects

// Type categorizes an effect
type Type string

// Effect categories
const (
	TypeBuff   Type = "buff"
	TypeDebuff Type = "debuff"
	TypeDoT    Type = "dot"
	TypeHoT    Type = "hot"
	TypeStatus Type = "status"
)

// Target is the surface an effect needs on its holder. Stat and flag keys
// are looked up by name; unknown keys are silently ignored so a stale
// definition cannot corrupt a combatant.
type Target interface {
	// AddModifier adds a temporary additive modifier to the named stat
	AddModifier(stat string, amount int)
	// RemoveModifier subtracts a temporary additive modifier from the named stat
	RemoveModifier(stat string, amount int)
	// TakeTrueDamage applies damage that ignores defense and returns the
	// amount actually dealt
	TakeTrueDamage(amount int) int
	// Heal restores health and returns the amount actually restored
	Heal(amount int) int
	// Flag reports a named boolean flag; ok is false for unknown names
	Flag(name string) (value, ok bool)
	// SetFlag sets a named boolean flag; returns false for unknown names
	SetFlag(name string, value bool) bool
	// Alive reports whether the holder is still alive
	Alive() bool
}

// Effect is a timed modification to a combatant. Apply installs the
// immediate consequence, Tick fires once per processing pass, and Remove
// undoes Apply when the duration runs out.
type Effect interface {
	Name() string
	Type() Type
	// Duration is the number of processing passes remaining
	Duration() int
	// TickDown decrements the remaining duration and returns the new value
	TickDown() int
	Stackable() bool
	Apply(target Target)
	Tick(target Target)
	Remove(target Target)
}

// Base carries the bookkeeping shared by every effect variant
type Base struct {
	EffectName string
	EffectType Type
	Turns      int
	CanStack   bool
}

// Name returns the effect name
func (b *Base) Name() string { return b.EffectName }

// Type returns the effect category
func (b *Base) Type() Type { return b.EffectType }

// Duration returns the remaining processing passes
func (b *Base) Duration() int { return b.Turns }

// TickDown decrements the remaining duration, flooring at 0
func (b *Base) TickDown() int {
	if b.Turns > 0 {
		b.Turns--
	}
	return b.Turns
}

// Stackable reports whether duplicates of this effect may coexist
func (b *Base) Stackable() bool { return b.CanStack }

// CanStackWith reports whether two effects are stacking duplicates of each
// other. Advisory only: the engine deliberately lets duplicates coexist and
// never merges them.
func CanStackWith(a, b Effect) bool {
	if !a.Stackable() || !b.Stackable() {
		return false
	}
	return a.Name() == b.Name()
}
