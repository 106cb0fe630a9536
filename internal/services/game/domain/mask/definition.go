package mask

import "strings"

// Ability names a passive power granted by a mask.
type Ability string

const (
	AbilityHint        Ability = "hint"
	AbilityDangerSense Ability = "danger_sense"
	AbilityIllusion    Ability = "illusion"
	AbilityEmpathy     Ability = "empathy"
)

var abilityOrder = []Ability{AbilityHint, AbilityDangerSense, AbilityIllusion, AbilityEmpathy}

// Stats are the bonus attributes a mask grants while worn.
type Stats struct {
	Charm   int `yaml:"charm" json:"charm"`
	Insight int `yaml:"insight" json:"insight"`
	Chaos   int `yaml:"chaos" json:"chaos"`
}

// Definition is the static description of a mask.
type Definition struct {
	ID                 string
	Name               string
	Abilities          map[Ability]bool
	BonusStats         Stats
	CorruptionTriggers []string
	// UnlockRequirements must all hold for the mask to unlock.
	UnlockRequirements []string
}

// HasAbility reports whether the mask grants ability.
func (d Definition) HasAbility(ability Ability) bool {
	return d.Abilities[ability]
}

// GrantedAbilities lists the known abilities the mask grants in a fixed order.
func (d Definition) GrantedAbilities() []Ability {
	var granted []Ability
	for _, a := range abilityOrder {
		if d.HasAbility(a) {
			granted = append(granted, a)
		}
	}
	return granted
}

// TriggersCorruption reports whether an action with the given name feeds
// the mask, by case-insensitive substring match on its triggers.
func (d Definition) TriggersCorruption(actionName string) bool {
	name := strings.ToLower(actionName)
	if name == "" {
		return false
	}
	for _, trigger := range d.CorruptionTriggers {
		trigger = strings.ToLower(strings.TrimSpace(trigger))
		if trigger != "" && strings.Contains(name, trigger) {
			return true
		}
	}
	return false
}

// Roller draws uniform integers in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type Roller interface {
	IntN(n int) int
}

// TriggerCorruption returns the corruption gained when actionName matches a
// trigger: a roll between 1 and 3. It returns zero for no match.
func (d Definition) TriggerCorruption(actionName string, roller Roller) int {
	if roller == nil || !d.TriggersCorruption(actionName) {
		return 0
	}
	return roller.IntN(3) + 1
}
