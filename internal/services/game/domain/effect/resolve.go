package effect

import (
	"sort"

	"github.com/louisbranch/masks/internal/services/game/domain/player"
)

// Resolve applies bundle to a copy of state. The modifier, when non-nil,
// only takes effect while a mask is equipped. relationshipBonus adds to every
// relationship delta; reputationBonus adds to the reputation delta even when
// the bundle carries none.
func Resolve(bundle Bundle, modifier *Modifier, state player.State) (*Result, error) {
	res := NewResult(state)

	if err := res.AdvanceTime(bundle.TimeMinutes); err != nil {
		return nil, err
	}

	var mod Modifier
	if modifier != nil && state.EquippedMask() != "" {
		mod = *modifier
	}

	res.AddReputation(bundle.Reputation + mod.ReputationBonus)
	res.AddEnergy(bundle.Energy)
	res.SetMood(bundle.Mood, false)
	res.AddEquippedCorruption(bundle.Corruption)

	for _, npcID := range sortedKeys(bundle.Relationships) {
		res.AddRelationship(npcID, bundle.Relationships[npcID]+mod.RelationshipBonus)
	}
	for _, itemID := range sortedKeys(bundle.Items) {
		res.AddItem(itemID, bundle.Items[itemID])
	}
	return res, nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
