// Package colorizer assigns terminal colors to log output.
//
// Level names are colored from a fixed table indexed by core.Level.
// Messages that start with a short bracketed identifier, such as
// "[a1b2] connected", have that identifier colored from a six-entry
// palette so interleaved lines from different requests or connections
// are easy to tell apart.
//
// Identifiers receive palette slots round-robin. The counter is owned
// by the Colorizer and never resets, so the slot a new identifier gets
// depends on how many identifiers have ever been assigned, not on how
// many are currently live. Each assignment expires TTL after it was
// made (DefaultTTL, 30 minutes), whether or not the identifier is seen
// again; the next occurrence is then treated as new.
//
// A Colorizer created with Decorate set to false is inert: Colorize
// returns its input and Level returns the plain name, and the registry
// is never touched.
package colorizer
