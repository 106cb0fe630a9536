// Package timeouts defines shared timeout constants used across masks
// processes.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing a gRPC peer.
const GRPCDial = 2 * time.Second

// GRPCRequest caps the time allowed for a single CLI request to the game
// service.
const GRPCRequest = 5 * time.Second

// Shutdown limits how long the game server waits for in-flight requests
// during graceful shutdown before forcing a stop.
const Shutdown = 5 * time.Second
