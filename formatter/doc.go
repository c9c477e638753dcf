// Package formatter defines how log entries are serialized into bytes.
//
// It exposes Formatter, which returns a []byte, WriterFormatter, which
// writes directly to an io.Writer, and BufferFormatter, which formats
// into a caller-owned buffer. Handlers check for the optional
// interfaces at construction time and prefer them when available.
//
// TextFormatter renders one line per entry:
//
//	[2026-01-15T12:00:00.000Z] info/net: [abcd] connected <error>
//
// When configured with a colorizer.Colorizer the level name and the
// message's bracketed identifier are colored; otherwise the line is
// plain text. The error slot is always preceded by a space and is
// empty when the entry carries no error.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
