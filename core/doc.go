// Package core defines the shared types used across idlog.
//
// It provides the Level type, the Entry type that represents a single
// log call, and the Clock abstraction used to schedule delayed work
// such as identifier color expiry.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and return it with PutEntry once the handler has consumed
// it.
//
// Levels are not a filter. Every call is written; the level only
// selects the rendered name and its color.
package core
