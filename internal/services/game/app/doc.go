// Package server composes the game gRPC entrypoint.
//
// It wires the SQLite store, the content catalog and the gameplay service
// behind the GameService descriptor, with request metadata, logging and
// tracing interceptors and a standard health endpoint.
package server
