// Package mask tracks the masks a player owns, the single equipped mask, and
// per-mask corruption bounded to [0, 100].
//
// Unlocking evaluates named requirements against player progress; every
// requirement must hold. Corruption tiers describe how far a mask has taken
// hold of its wearer.
package mask
