// Package recap summarizes one in-game day from the effect log.
package recap

import (
	"sort"

	"github.com/louisbranch/masks/internal/services/game/domain/effect"
	"github.com/louisbranch/masks/internal/services/game/storage"
)

// Recap is the end-of-day summary shown to the player.
type Recap struct {
	Day int `json:"day"`
	// EnergySpent sums negative energy changes as a positive number.
	EnergySpent      int            `json:"energy_spent"`
	EnergyRestored   int            `json:"energy_restored"`
	ReputationChange int            `json:"reputation_change"`
	ActionsCompleted []string       `json:"actions_completed"`
	EventsSeen       []string       `json:"events_seen"`
	ClassesAttended  []string       `json:"classes_attended"`
	ItemsUsed        []string       `json:"items_used"`
	Relationships    map[string]int `json:"relationships"`
	// Corruption holds the clamped corruption change per mask.
	Corruption      map[string]int `json:"corruption"`
	TotalCorruption int            `json:"total_corruption"`
	ItemsGained     map[string]int `json:"items_gained"`
	MasksUnlocked   []string       `json:"masks_unlocked"`
}

// Build folds the entries of day into a recap. Entries from other days are
// ignored. Sources appear once each, in first-seen order.
func Build(day int, entries []storage.EffectLogEntry) Recap {
	r := Recap{
		Day:              day,
		ActionsCompleted: []string{},
		EventsSeen:       []string{},
		ClassesAttended:  []string{},
		ItemsUsed:        []string{},
		Relationships:    map[string]int{},
		Corruption:       map[string]int{},
		ItemsGained:      map[string]int{},
		MasksUnlocked:    []string{},
	}
	seen := map[storage.Source]bool{}
	for _, e := range entries {
		if e.Day != day {
			continue
		}
		if !seen[e.Source] && e.Source.ID != "" {
			seen[e.Source] = true
			switch e.Source.Kind {
			case storage.SourceAction:
				r.ActionsCompleted = append(r.ActionsCompleted, e.Source.ID)
			case storage.SourceEvent:
				r.EventsSeen = append(r.EventsSeen, e.Source.ID)
			case storage.SourceMinigame:
				r.ClassesAttended = append(r.ClassesAttended, e.Source.ID)
			case storage.SourceItem:
				r.ItemsUsed = append(r.ItemsUsed, e.Source.ID)
			}
		}

		m := e.Mutation
		switch m.Kind {
		case effect.KindEnergy:
			if m.Delta < 0 {
				r.EnergySpent -= m.Delta
			} else {
				r.EnergyRestored += m.Delta
			}
		case effect.KindReputation:
			r.ReputationChange += m.Delta
		case effect.KindRelationship:
			r.Relationships[m.Target] += m.Delta
		case effect.KindCorruption:
			r.Corruption[m.Target] += m.After - m.Before
			r.TotalCorruption += m.After - m.Before
		case effect.KindInventoryAdded:
			r.ItemsGained[m.Target] += m.Delta
		case effect.KindMaskUnlocked:
			r.MasksUnlocked = append(r.MasksUnlocked, m.Target)
		}
	}
	sort.Strings(r.MasksUnlocked)
	return r
}
