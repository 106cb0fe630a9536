package player

// Relationships maps NPC id to affinity. Rows are created on first nonzero
// change and never removed.
type Relationships map[string]int

// Affinity returns the stored affinity and whether a row exists.
func (r Relationships) Affinity(npc string) (int, bool) {
	v, ok := r[npc]
	return v, ok
}

// Apply adds delta to the affinity for npc. A zero delta does nothing, so it
// never creates a row.
func (r Relationships) Apply(npc string, delta int) (before, after int, created bool) {
	if delta == 0 {
		v := r[npc]
		return v, v, false
	}
	before, exists := r[npc]
	r[npc] = before + delta
	return before, before + delta, !exists
}

// Clone returns an independent copy.
func (r Relationships) Clone() Relationships {
	out := make(Relationships, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
