// Package handler provides the Handler interface and adapters that feed
// other logging front ends into it.
//
// Handlers are synchronous: Handle returns once the entry has been
// written. The console implementation lives in the consolehandler
// subpackage.
//
// Adapters:
//
//   - SlogHandler implements log/slog.Handler on top of a Handler, so
//     code written against the standard library can log through idlog.
//   - zaphandler.Core implements zapcore.Core on top of a Handler for
//     programs that already use zap.
//
// Neither adapter filters by level; every record reaches the Handler.
//
// Handlers track processed and failed writes via the Stats type, which
// can be queried at runtime through StatsProvider.
package handler
