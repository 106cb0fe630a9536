// Package effect resolves effect bundles against a player snapshot.
//
// Resolve is pure: it never touches storage. It clones the input snapshot,
// applies the bundle in a fixed order (time, reputation, energy, mood,
// corruption, relationships, items) and returns the new snapshot together
// with the ordered list of granular mutations a store must persist to reach
// it.
package effect
