package formatter

import (
	"bytes"
	"io"

	"github.com/philipp01105/idlog/core"
)

// ISO8601 is the default timestamp layout. Times are converted to UTC
// before formatting, so the zone renders as "Z".
const ISO8601 = "2006-01-02T15:04:05.000Z07:00"

// TextFormatter formats log entries as
//
//	[<timestamp>] <level>/<tag>: <message> <error>
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = ISO8601
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.FormatEntry(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry writes the formatted entry into the given buffer
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	buf.WriteByte('[')
	buf.Write(entry.Time.UTC().AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteString("] ")

	if f.Colorizer != nil {
		buf.WriteString(f.Colorizer.Level(entry.Level))
	} else {
		buf.WriteString(entry.Level.String())
	}
	buf.WriteByte('/')
	buf.WriteString(entry.Tag)
	buf.WriteString(": ")

	if f.Colorizer != nil {
		buf.WriteString(f.Colorizer.Colorize(entry.Message))
	} else {
		buf.WriteString(entry.Message)
	}

	// The error slot is always separated by a space, even when empty.
	buf.WriteByte(' ')
	if entry.Err != nil {
		buf.WriteString(entry.Err.Error())
	}

	buf.WriteByte('\n')
}
