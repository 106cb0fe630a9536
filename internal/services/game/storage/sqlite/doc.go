// Package sqlite implements the game storage interfaces on SQLite.
//
// Every resolution is applied in a single transaction. Counters are written
// as SQL increments and mask corruption is clamped in SQL, so concurrent
// resolutions for one player serialize on the SQLite write lock instead of
// overwriting each other.
package sqlite
