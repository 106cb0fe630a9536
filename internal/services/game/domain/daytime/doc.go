// Package daytime models the in-game clock: a 24-hour HH:MM time of day that
// wraps at midnight, and the named school periods laid over it.
package daytime
