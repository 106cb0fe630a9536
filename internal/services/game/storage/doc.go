// Package storage defines persistence interfaces for the game service.
//
// It covers player snapshots and the effect log that records every mutation
// applied to them. Implementations (e.g., SQLite) live in subpackages.
//
// Common error types:
//   - ErrNotFound: requested record is missing
//   - ErrUsernameTaken: a player with the username already exists
package storage
