package effect

// Bundle is the static set of deltas carried by an action, event choice,
// item or minigame.
type Bundle struct {
	// TimeMinutes is the time cost; it must not be negative.
	TimeMinutes   int
	Reputation    int
	Energy        int
	Corruption    int
	Mood          string
	Relationships map[string]int
	Items         map[string]int
}

// IsZero reports whether the bundle carries no effect at all.
func (b Bundle) IsZero() bool {
	return b.TimeMinutes == 0 && b.Reputation == 0 && b.Energy == 0 &&
		b.Corruption == 0 && b.Mood == "" && len(b.Relationships) == 0 && len(b.Items) == 0
}

// Modifier is a per-mask addend applied on top of a bundle while that mask
// is equipped.
type Modifier struct {
	ReputationBonus   int `yaml:"reputation_bonus" json:"reputation_bonus,omitempty"`
	RelationshipBonus int `yaml:"relationship_bonus" json:"relationship_bonus,omitempty"`
	ScoreBonus        int `yaml:"score_bonus" json:"score_bonus,omitempty"`
}

// Modifiers maps mask id to its modifier.
type Modifiers map[string]Modifier

// For returns the modifier of the equipped mask, or nil when no mask is
// equipped or the mask has none.
func (m Modifiers) For(equipped string) *Modifier {
	if equipped == "" {
		return nil
	}
	mod, ok := m[equipped]
	if !ok {
		return nil
	}
	return &mod
}
