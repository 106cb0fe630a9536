// Package grpc contains the gRPC surface of the game service.
//
// This package is organized by concern:
//
//   - game/: GameService descriptor, messages, handlers and client
//   - interceptors/: unary interceptors installed by the server
//   - metadata/: request headers shared by masks peers
package grpc
