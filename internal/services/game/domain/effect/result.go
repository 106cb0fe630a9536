package effect

import (
	"github.com/louisbranch/masks/internal/services/game/domain/daytime"
	"github.com/louisbranch/masks/internal/services/game/domain/mask"
	"github.com/louisbranch/masks/internal/services/game/domain/player"
)

// Applied summarizes the values that actually took effect, after modifiers.
// Zero entries are omitted from the maps.
type Applied struct {
	TimeMinutes  int `json:"time_minutes,omitempty"`
	DaysAdvanced int `json:"days_advanced,omitempty"`
	Reputation   int `json:"reputation,omitempty"`
	Energy       int `json:"energy,omitempty"`
	// Corruption is the clamped change on the equipped mask.
	Corruption    int            `json:"corruption,omitempty"`
	Mood          string         `json:"mood,omitempty"`
	Relationships map[string]int `json:"relationships,omitempty"`
	Items         map[string]int `json:"items,omitempty"`
}

// Result is the outcome of a resolution: the new snapshot and the ordered
// mutations that produce it from the input snapshot.
type Result struct {
	Player    player.State
	Mutations []Mutation
	Applied   Applied
}

// NewResult starts an empty result from a copy of state. Handlers use it for
// operations that carry no bundle, such as equipping a mask.
func NewResult(state player.State) *Result {
	return &Result{
		Player: state.Clone(),
		Applied: Applied{
			Relationships: map[string]int{},
			Items:         map[string]int{},
		},
	}
}

// Changed reports whether any mutation was recorded.
func (r *Result) Changed() bool {
	return len(r.Mutations) > 0
}

func (r *Result) emit(m Mutation) {
	r.Mutations = append(r.Mutations, m)
}

// AdvanceTime moves the clock forward and advances the day counter for each
// midnight crossed.
func (r *Result) AdvanceTime(minutes int) error {
	if minutes < 0 {
		_, err := daytime.Advance(r.Player.Time.String(), minutes)
		return err
	}
	if minutes == 0 {
		return nil
	}
	before := r.Player.Time
	next, days := before.Add(minutes)
	r.Player.Time = next
	r.emit(Mutation{Kind: KindTimeSet, Delta: minutes, Before: before.Minutes(), After: next.Minutes(), Value: next.String()})
	r.Applied.TimeMinutes += minutes
	if days > 0 {
		dayBefore := r.Player.Day
		r.Player.Day += days
		r.emit(Mutation{Kind: KindDayAdvanced, Delta: days, Before: dayBefore, After: r.Player.Day})
		r.Applied.DaysAdvanced += days
	}
	return nil
}

// SetTime overwrites the clock without touching the day counter.
func (r *Result) SetTime(c daytime.Clock) {
	before := r.Player.Time
	if before == c {
		return
	}
	r.Player.Time = c
	r.emit(Mutation{Kind: KindTimeSet, Delta: c.Minutes() - before.Minutes(), Before: before.Minutes(), After: c.Minutes(), Value: c.String()})
}

// AddReputation increments reputation by delta.
func (r *Result) AddReputation(delta int) {
	if delta == 0 {
		return
	}
	before := r.Player.Reputation
	r.Player.Reputation += delta
	r.emit(Mutation{Kind: KindReputation, Delta: delta, Before: before, After: r.Player.Reputation})
	r.Applied.Reputation += delta
}

// SetReputation overwrites reputation, recorded as an increment.
func (r *Result) SetReputation(value int) {
	r.AddReputation(value - r.Player.Reputation)
}

// AddEnergy increments energy by delta. Energy is not clamped.
func (r *Result) AddEnergy(delta int) {
	if delta == 0 {
		return
	}
	before := r.Player.Energy
	r.Player.Energy += delta
	r.emit(Mutation{Kind: KindEnergy, Delta: delta, Before: before, After: r.Player.Energy})
	r.Applied.Energy += delta
}

// SetEnergy overwrites energy, recorded as an increment.
func (r *Result) SetEnergy(value int) {
	r.AddEnergy(value - r.Player.Energy)
}

// SetMood replaces the mood. Empty and neutral moods from effects leave it
// unchanged; use force to write any value.
func (r *Result) SetMood(mood string, force bool) {
	if !force && (mood == "" || mood == player.MoodNeutral) {
		return
	}
	if mood == r.Player.Mood {
		return
	}
	r.Player.Mood = mood
	r.emit(Mutation{Kind: KindMoodSet, Value: mood})
	r.Applied.Mood = mood
}

// SetZone moves the player. An empty zone clears it.
func (r *Result) SetZone(zone string) {
	if zone == r.Player.Zone {
		return
	}
	r.Player.Zone = zone
	r.emit(Mutation{Kind: KindZoneSet, Value: zone})
}

// AddEquippedCorruption changes the corruption of the equipped mask, clamped.
// Nothing happens without an equipped mask.
func (r *Result) AddEquippedCorruption(delta int) {
	if delta == 0 {
		return
	}
	id, _ := r.Player.Masks.Equipped()
	if before, after, ok := r.Player.Masks.AddCorruption(delta); ok {
		r.recordCorruption(id, delta, before, after)
	}
}

// AdjustCorruption changes any owned mask's corruption, clamped. It reports
// false when the mask is not owned.
func (r *Result) AdjustCorruption(maskID string, delta int) (before, after int, ok bool) {
	if delta < 0 {
		before, after, ok = r.Player.Masks.ReduceCorruption(maskID, -delta)
	} else {
		before, after, ok = r.Player.Masks.RaiseCorruption(maskID, delta)
	}
	if ok {
		r.recordCorruption(maskID, delta, before, after)
	}
	return before, after, ok
}

func (r *Result) recordCorruption(maskID string, delta, before, after int) {
	if after == before {
		return
	}
	r.emit(Mutation{Kind: KindCorruption, Target: maskID, Delta: delta, Before: before, After: after})
	if equipped, _ := r.Player.Masks.Equipped(); equipped == maskID {
		r.Applied.Corruption += after - before
	}
}

// UnlockMask grants def at zero corruption when every requirement holds
// against progress. Otherwise it returns false with the unmet requirements,
// or with none when the mask is already owned.
func (r *Result) UnlockMask(def mask.Definition, progress mask.Progress) (bool, []string) {
	unlocked, missing := r.Player.Masks.Unlock(def, progress)
	if unlocked {
		r.emit(Mutation{Kind: KindMaskUnlocked, Target: def.ID, Created: true})
	}
	return unlocked, missing
}

// EquipMask equips an owned mask. It reports false, recording nothing, when
// the mask is not owned.
func (r *Result) EquipMask(maskID string) bool {
	if !r.Player.Masks.Owns(maskID) {
		return false
	}
	if r.Player.EquippedMask() == maskID {
		return true
	}
	r.Player.Masks.Equip(maskID)
	r.emit(Mutation{Kind: KindMaskEquipped, Target: maskID, Value: maskID})
	return true
}

// UnequipMask clears the equipped mask and returns what was worn.
func (r *Result) UnequipMask() string {
	prev := r.Player.Masks.Unequip()
	if prev != "" {
		r.emit(Mutation{Kind: KindMaskEquipped, Target: prev})
	}
	return prev
}

// AddRelationship upserts an affinity by delta. Zero creates nothing.
func (r *Result) AddRelationship(npcID string, delta int) {
	if delta == 0 {
		return
	}
	before, after, created := r.Player.Relationships.Apply(npcID, delta)
	r.emit(Mutation{Kind: KindRelationship, Target: npcID, Delta: delta, Before: before, After: after, Created: created})
	r.Applied.Relationships[npcID] += delta
}

// AddItem applies a signed inventory delta following inventory rules.
func (r *Result) AddItem(itemID string, delta int) player.InventoryChange {
	before, after, change := r.Player.Inventory.Apply(itemID, delta)
	switch change {
	case player.InventoryCreated:
		r.emit(Mutation{Kind: KindInventoryAdded, Target: itemID, Delta: delta, Before: before, After: after, Created: true})
	case player.InventoryUpdated:
		kind := KindInventoryAdded
		if delta < 0 {
			kind = KindInventoryRemoved
		}
		r.emit(Mutation{Kind: kind, Target: itemID, Delta: delta, Before: before, After: after})
	case player.InventoryDeleted:
		r.emit(Mutation{Kind: KindInventoryDeleted, Target: itemID, Delta: delta, Before: before, After: 0})
	default:
		return change
	}
	r.Applied.Items[itemID] += after - before
	return change
}

// CompleteEvent marks an event completed with the chosen choice.
func (r *Result) CompleteEvent(eventID, choiceID string) {
	r.Player.Events[eventID] = choiceID
	r.emit(Mutation{Kind: KindEventCompleted, Target: eventID, Value: choiceID, Completed: true})
}

// RecordMinigame upserts a minigame result.
func (r *Result) RecordMinigame(minigameID, classID string, score int, completed bool) {
	prev := r.Player.Minigames[minigameID]
	r.Player.Minigames[minigameID] = player.MinigameProgress{Score: score, Completed: completed, ClassID: classID}
	r.emit(Mutation{Kind: KindMinigameRecorded, Target: minigameID, Before: prev.Score, After: score, Value: classID, Completed: completed})
}
