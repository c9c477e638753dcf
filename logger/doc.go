// Package logger is the public API of idlog. Most users only need to
// import this package.
//
// Every call writes one line to stdout, synchronously:
//
//	[2026-01-15T12:00:00.000Z] info/net: [abcd] connected
//
// The tag names the component that logged. A message that begins with
// a short bracketed identifier ("[abcd]", 4 to 8 characters) has that
// identifier colored, and the same identifier keeps the same color for
// 30 minutes so interleaved requests stay distinguishable. An optional
// error is rendered after the message.
//
// There is no level filtering. Assert writes its line and then exits
// the process with status 1.
//
// The package initializes a default Logger in init() from the
// environment (see package config): output is colored unless APP_ENV
// is "production" or LOG_DECORATE says otherwise. The package-level
// functions delegate to it:
//
//	logger.Info("net", "[abcd] connected")
//	logger.Error("db", "query failed", err)
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithWriter(&buf).
//	    WithColorizer(colorizer.New(colorizer.Options{Decorate: true})).
//	    Build()
//
// A Logger is immutable after construction and safe for concurrent use.
package logger
