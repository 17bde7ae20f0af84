package entities

// StatType indexes one combat stat in a StatBlock
type StatType int

// Combat stats
const (
	StatHealth StatType = iota
	StatMaxHealth
	StatEnergy
	StatMaxEnergy
	StatAttack
	StatDefense
	StatSpeed
	StatExperience

	numStats
)

var statNames = [numStats]string{
	StatHealth:     "health",
	StatMaxHealth:  "max_health",
	StatEnergy:     "energy",
	StatMaxEnergy:  "max_energy",
	StatAttack:     "attack",
	StatDefense:    "defense",
	StatSpeed:      "speed",
	StatExperience: "experience",
}

// String returns the stat's wire name
func (t StatType) String() string {
	if t < 0 || t >= numStats {
		return "unknown"
	}
	return statNames[t]
}

// StatTypeFromName resolves a wire name back to a StatType. The second
// return is false for unknown names; callers treat those as no-ops.
func StatTypeFromName(name string) (StatType, bool) {
	for t, n := range statNames {
		if n == name {
			return StatType(t), true
		}
	}
	return 0, false
}

// StatBlock holds one value per stat
type StatBlock [numStats]int

// ToMap renders the block keyed by wire name
func (b StatBlock) ToMap() map[string]int {
	out := make(map[string]int, numStats)
	for t := StatType(0); t < numStats; t++ {
		out[t.String()] = b[t]
	}
	return out
}
