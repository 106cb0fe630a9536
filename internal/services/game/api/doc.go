// Package api contains service API implementations.
//
// API handlers are organized by transport. Today, the gRPC transport is the
// only surface area of the game service.
//
// Subpackages:
//   - grpc/game: GameService handlers, messages and client
//   - grpc/metadata: request metadata helpers and interceptors
//   - grpc/interceptors: cross-cutting gRPC middleware
//
// The maskctl CLI calls these services through grpc/game.Client.
package api
