// Package gameplay runs the game's entity handlers.
//
// Every mutating operation has the same shape: load the definition, load the
// player, pick the equipped mask's modifier, check preconditions, resolve
// the effect bundle and persist the resulting mutations as one resolution.
// Static definitions come from a content.Catalog; player state lives in a
// storage.Store.
package gameplay
