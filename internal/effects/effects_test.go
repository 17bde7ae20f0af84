package effects_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pocketrpg/battle-core/internal/effects"
)

// fakeTarget records effect interactions without pulling in the full
// combatant model.
type fakeTarget struct {
	mods    map[string]int
	flags   map[string]bool
	health  int
	damaged int
	healed  int
	dead    bool
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{
		mods:   make(map[string]int),
		flags:  map[string]bool{"stunned": false, "defending": false},
		health: 100,
	}
}

func (f *fakeTarget) AddModifier(stat string, amount int)    { f.mods[stat] += amount }
func (f *fakeTarget) RemoveModifier(stat string, amount int) { f.mods[stat] -= amount }

func (f *fakeTarget) TakeTrueDamage(amount int) int {
	if amount > f.health {
		amount = f.health
	}
	f.health -= amount
	f.damaged += amount
	return amount
}

func (f *fakeTarget) Heal(amount int) int {
	f.health += amount
	f.healed += amount
	return amount
}

func (f *fakeTarget) Flag(name string) (bool, bool) {
	v, ok := f.flags[name]
	return v, ok
}

func (f *fakeTarget) SetFlag(name string, value bool) bool {
	if _, ok := f.flags[name]; !ok {
		return false
	}
	f.flags[name] = value
	return true
}

func (f *fakeTarget) Alive() bool { return !f.dead }

func TestStatModifierApplyRemove(t *testing.T) {
	target := newFakeTarget()
	buff := effects.NewStatModifier("War Cry", effects.TypeBuff, 3, map[string]int{"attack": 5, "speed": 2})

	buff.Apply(target)
	assert.Equal(t, 5, target.mods["attack"])
	assert.Equal(t, 2, target.mods["speed"])

	buff.Remove(target)
	assert.Equal(t, 0, target.mods["attack"])
	assert.Equal(t, 0, target.mods["speed"])
}

func TestDamageOverTimeAccumulates(t *testing.T) {
	target := newFakeTarget()
	dot := effects.Poison(3, 5)

	for i := 0; i < 3; i++ {
		dot.Tick(target)
		dot.TickDown()
	}

	assert.Equal(t, 15, target.damaged)
	assert.Equal(t, 15, dot.TotalDealt)
	assert.Equal(t, 0, dot.Duration())
}

func TestDamageOverTimeSkipsDeadTarget(t *testing.T) {
	target := newFakeTarget()
	target.dead = true
	dot := effects.Poison(3, 5)

	dot.Tick(target)
	assert.Equal(t, 0, target.damaged)
	assert.Equal(t, 0, dot.TotalDealt)
}

func TestHealOverTimeAccumulates(t *testing.T) {
	target := newFakeTarget()
	hot := effects.Regeneration(2, 4)

	hot.Tick(target)
	hot.Tick(target)

	assert.Equal(t, 8, target.healed)
	assert.Equal(t, 8, hot.TotalHealed)
}

func TestStatusSnapshotsAndRestores(t *testing.T) {
	target := newFakeTarget()
	stun := effects.Stun(1)

	stun.Apply(target)
	assert.True(t, target.flags["stunned"])

	stun.Remove(target)
	assert.False(t, target.flags["stunned"])
}

func TestStatusIgnoresUnknownFlags(t *testing.T) {
	target := newFakeTarget()
	weird := effects.NewStatus("Confused", 2, map[string]bool{"confused": true, "stunned": true})

	weird.Apply(target)
	assert.True(t, target.flags["stunned"])
	_, ok := target.flags["confused"]
	assert.False(t, ok)

	weird.Remove(target)
	assert.False(t, target.flags["stunned"])
}

func TestTickDownFloorsAtZero(t *testing.T) {
	buff := effects.StrengthBuff(1, 5)
	assert.Equal(t, 0, buff.TickDown())
	assert.Equal(t, 0, buff.TickDown())
}

func TestCustomEffectCallbacks(t *testing.T) {
	target := newFakeTarget()
	var applied, ticked, removed int

	custom := effects.NewCustom("Scripted", effects.TypeBuff, 2)
	custom.OnApply = func(effects.Target) { applied++ }
	custom.OnTick = func(effects.Target) { ticked++ }
	custom.OnRemove = func(effects.Target) { removed++ }

	custom.Apply(target)
	custom.Tick(target)
	custom.Tick(target)
	custom.Remove(target)

	assert.Equal(t, 1, applied)
	assert.Equal(t, 2, ticked)
	assert.Equal(t, 1, removed)
}

func TestCanStackWith(t *testing.T) {
	a := effects.StrengthBuff(3, 5)
	b := effects.StrengthBuff(2, 5)
	assert.False(t, effects.CanStackWith(a, b), "library buffs are not stackable")

	a.CanStack = true
	b.CanStack = true
	assert.True(t, effects.CanStackWith(a, b))

	c := effects.Weakness(2, 3)
	c.CanStack = true
	assert.False(t, effects.CanStackWith(a, c), "different names never stack")
}
