// Package player holds the in-memory snapshot of one player's game state and
// the invariant-keeping collections inside it.
package player

import (
	"time"

	"github.com/louisbranch/masks/internal/services/game/domain/daytime"
	"github.com/louisbranch/masks/internal/services/game/domain/mask"
)

// Defaults applied to new players.
const (
	DefaultAvatar    = "avatars/player_default.png"
	DefaultGrade     = 10
	DefaultClassName = "A"
	DefaultEnergy    = 100
	DefaultMood      = MoodNeutral
	DefaultTime      = "08:00"
	FirstDay         = 1
)

// MoodNeutral is the resting mood. Effects carrying it leave mood unchanged.
const MoodNeutral = "neutral"

// MinigameProgress is the recorded outcome of one minigame.
type MinigameProgress struct {
	Score     int
	Completed bool
	ClassID   string
}

// State is a full player snapshot.
type State struct {
	ID        string
	Username  string
	Avatar    string
	Grade     int
	ClassName string
	// Energy is stored unclamped; see DisplayEnergy.
	Energy     int
	Mood       string
	Time       daytime.Clock
	Day        int
	Reputation int
	Zone       string
	Masks      mask.State
	Inventory  Inventory
	// Relationships maps NPC id to affinity.
	Relationships Relationships
	// Events maps completed event id to the chosen choice id.
	Events    map[string]string
	Minigames map[string]MinigameProgress
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New returns a fresh player with starting defaults.
func New(id, username string, now time.Time) State {
	return State{
		ID:            id,
		Username:      username,
		Avatar:        DefaultAvatar,
		Grade:         DefaultGrade,
		ClassName:     DefaultClassName,
		Energy:        DefaultEnergy,
		Mood:          DefaultMood,
		Time:          daytime.MustParse(DefaultTime),
		Day:           FirstDay,
		Masks:         mask.NewState(nil, ""),
		Inventory:     Inventory{},
		Relationships: Relationships{},
		Events:        map[string]string{},
		Minigames:     map[string]MinigameProgress{},
		CreatedAt:     now.UTC(),
		UpdatedAt:     now.UTC(),
	}
}

// Clone returns a deep copy so callers can mutate without aliasing.
func (s State) Clone() State {
	out := s
	out.Masks = s.Masks.Clone()
	out.Inventory = s.Inventory.Clone()
	out.Relationships = s.Relationships.Clone()
	out.Events = make(map[string]string, len(s.Events))
	for k, v := range s.Events {
		out.Events[k] = v
	}
	out.Minigames = make(map[string]MinigameProgress, len(s.Minigames))
	for k, v := range s.Minigames {
		out.Minigames[k] = v
	}
	return out
}

// EquippedMask returns the equipped mask id, or "".
func (s State) EquippedMask() string {
	id, _ := s.Masks.Equipped()
	return id
}

// CompletedEvent reports whether the event has been completed.
func (s State) CompletedEvent(eventID string) bool {
	_, ok := s.Events[eventID]
	return ok
}

// CompletedClasses counts minigames with a passing result.
func (s State) CompletedClasses() int {
	n := 0
	for _, p := range s.Minigames {
		if p.Completed {
			n++
		}
	}
	return n
}

// DisplayEnergy clamps energy for presentation in [0, max].
func DisplayEnergy(energy, maxEnergy int) int {
	if energy < 0 {
		return 0
	}
	if energy > maxEnergy {
		return maxEnergy
	}
	return energy
}
