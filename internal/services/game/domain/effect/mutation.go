package effect

// Kind names one granular side effect.
type Kind string

const (
	KindTimeSet          Kind = "time.set"
	KindDayAdvanced      Kind = "day.advanced"
	KindReputation       Kind = "reputation.incremented"
	KindEnergy           Kind = "energy.incremented"
	KindMoodSet          Kind = "mood.set"
	KindZoneSet          Kind = "zone.set"
	KindCorruption       Kind = "mask.corruption"
	KindMaskUnlocked     Kind = "mask.unlocked"
	KindMaskEquipped     Kind = "mask.equipped"
	KindRelationship     Kind = "relationship.upserted"
	KindInventoryAdded   Kind = "inventory.added"
	KindInventoryRemoved Kind = "inventory.removed"
	KindInventoryDeleted Kind = "inventory.deleted"
	KindEventCompleted   Kind = "event.completed"
	KindMinigameRecorded Kind = "minigame.recorded"
)

// Mutation records one side effect with enough detail to replay it against
// storage and to display it in a recap. Before/After hold the numeric value
// around the change. Value carries string payloads: the new time, mood,
// zone, equipped mask or chosen event choice.
type Mutation struct {
	Kind      Kind   `json:"kind"`
	Target    string `json:"target,omitempty"`
	Delta     int    `json:"delta,omitempty"`
	Before    int    `json:"before"`
	After     int    `json:"after"`
	Value     string `json:"value,omitempty"`
	Created   bool   `json:"created,omitempty"`
	Completed bool   `json:"completed,omitempty"`
}
