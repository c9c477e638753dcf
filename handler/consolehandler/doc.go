// Package consolehandler provides a synchronous handler that writes
// formatted log entries to any io.Writer (default: os.Stdout).
//
// Each Handle call formats one entry and writes it with a single Write
// before returning. When the formatter implements BufferFormatter the
// handler formats into its own buffer under TryLock, falling back to a
// pooled buffer when several goroutines log at once.
package consolehandler
