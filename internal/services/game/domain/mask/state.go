package mask

import "sort"

const (
	// CorruptionMin is the floor for mask corruption.
	CorruptionMin = 0
	// CorruptionMax is the ceiling for mask corruption.
	CorruptionMax = 100
)

// State is the set of owned masks with their corruption and the equipped
// mask, if any.
type State struct {
	corruption map[string]int
	equipped   string
}

// NewState builds a state from owned corruption values and an equipped id.
// Values are clamped; an equipped id that is not owned is dropped.
func NewState(owned map[string]int, equipped string) State {
	s := State{corruption: make(map[string]int, len(owned))}
	for id, value := range owned {
		s.corruption[id] = clamp(value, CorruptionMin, CorruptionMax)
	}
	if _, ok := s.corruption[equipped]; ok {
		s.equipped = equipped
	}
	return s
}

// Clone returns an independent copy.
func (s State) Clone() State {
	return NewState(s.corruption, s.equipped)
}

// Owns reports whether the mask is owned.
func (s State) Owns(id string) bool {
	_, ok := s.corruption[id]
	return ok
}

// Owned returns owned mask ids in sorted order.
func (s State) Owned() []string {
	ids := make([]string, 0, len(s.corruption))
	for id := range s.corruption {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Equipped returns the equipped mask id and whether one is equipped.
func (s State) Equipped() (string, bool) {
	return s.equipped, s.equipped != ""
}

// Corruption returns the corruption of an owned mask, or zero.
func (s State) Corruption(id string) int {
	return s.corruption[id]
}

// Add grants a mask at zero corruption. It reports false if already owned.
func (s *State) Add(id string) bool {
	if id == "" || s.Owns(id) {
		return false
	}
	if s.corruption == nil {
		s.corruption = map[string]int{}
	}
	s.corruption[id] = CorruptionMin
	return true
}

// Equip makes an owned mask the equipped one, replacing any previous one.
// It is a no-op returning false when the mask is not owned.
func (s *State) Equip(id string) bool {
	if !s.Owns(id) {
		return false
	}
	s.equipped = id
	return true
}

// Unequip clears the equipped mask and returns what was worn.
func (s *State) Unequip() string {
	prev := s.equipped
	s.equipped = ""
	return prev
}

// AddCorruption changes the equipped mask's corruption by delta, clamped to
// [0, 100]. Nothing happens when no mask is equipped.
func (s *State) AddCorruption(delta int) (before, after int, ok bool) {
	if s.equipped == "" {
		return 0, 0, false
	}
	before, after = s.adjust(s.equipped, delta)
	return before, after, true
}

// RaiseCorruption increases an owned mask's corruption by amount, clamped.
func (s *State) RaiseCorruption(id string, amount int) (before, after int, ok bool) {
	if !s.Owns(id) || amount < 0 {
		return 0, 0, false
	}
	before, after = s.adjust(id, amount)
	return before, after, true
}

// ReduceCorruption lowers an owned mask's corruption by amount.
func (s *State) ReduceCorruption(id string, amount int) (before, after int, ok bool) {
	if !s.Owns(id) || amount < 0 {
		return 0, 0, false
	}
	before, after = s.adjust(id, -amount)
	return before, after, true
}

func (s *State) adjust(id string, delta int) (before, after int) {
	before = s.corruption[id]
	after = clamp(before+delta, CorruptionMin, CorruptionMax)
	s.corruption[id] = after
	return before, after
}

func clamp(value, minValue, maxValue int) int {
	if minValue > maxValue {
		return minValue
	}
	if value < minValue {
		return minValue
	}
	if value > maxValue {
		return maxValue
	}
	return value
}
