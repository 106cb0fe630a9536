// Package game exposes the gameplay service over gRPC.
//
// GameService is declared by hand rather than generated: requests and
// responses are tagged Go structs exchanged through the JSON codec in
// internal/platform/grpc, so every call made with Client selects that codec.
package game
