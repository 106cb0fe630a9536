package mask

// TierLevel names a corruption tier.
type TierLevel string

const (
	TierMild     TierLevel = "mild"
	TierModerate TierLevel = "moderate"
	TierSevere   TierLevel = "severe"
	TierCritical TierLevel = "critical"
	TierConsumed TierLevel = "consumed"
)

// Tier is reached once corruption meets Threshold.
type Tier struct {
	Level       TierLevel
	Threshold   int
	Description string
}

// Tiers lists corruption tiers by ascending threshold.
var Tiers = []Tier{
	{Level: TierMild, Threshold: 25, Description: "Slight personality shifts"},
	{Level: TierModerate, Threshold: 50, Description: "NPCs notice changes in behavior"},
	{Level: TierSevere, Threshold: 75, Description: "Dark dialogue options unlock"},
	{Level: TierCritical, Threshold: 90, Description: "Nightmares and loss of control"},
	{Level: TierConsumed, Threshold: 100, Description: "Mask has taken over"},
}

// TierFor returns the highest tier whose threshold corruption has reached.
// Below the first threshold there is no tier.
func TierFor(corruption int) (Tier, bool) {
	var (
		found Tier
		ok    bool
	)
	for _, t := range Tiers {
		if corruption >= t.Threshold {
			found, ok = t, true
		}
	}
	return found, ok
}
