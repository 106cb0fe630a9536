// Package metadata provides utilities for handling gRPC request metadata.
//
// It defines the header keys masks peers exchange and a unary interceptor
// that guarantees every inbound call carries a request id.
//
// # Header Constants
//
//   - RequestIDHeader: Correlates logs and spans across service calls.
//   - PlayerIDHeader: Caller identity hint used by logs.
//   - LocaleHeader: Preferred language for user-facing error messages.
package metadata
