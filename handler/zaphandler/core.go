// Package zaphandler bridges go.uber.org/zap into an idlog Handler.
//
// The zap logger name becomes the entry tag, an error field (zap.Error)
// becomes the entry error, and any other fields are appended to the
// message as key=value pairs in the order they were added.
package zaphandler

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/idlog/core"
	"github.com/philipp01105/idlog/handler"
)

// Core implements zapcore.Core on top of a Handler
type Core struct {
	zapcore.LevelEnabler
	handler handler.Handler
	fields  []string
	err     error
}

// NewCore creates a zapcore.Core writing through h. A nil enab enables
// every level.
func NewCore(h handler.Handler, enab zapcore.LevelEnabler) *Core {
	if enab == nil {
		enab = zapcore.DebugLevel
	}
	return &Core{LevelEnabler: enab, handler: h}
}

// With returns a Core carrying the additional fields
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	rendered, err := appendFields(c.fields, c.err, fields)
	return &Core{
		LevelEnabler: c.LevelEnabler,
		handler:      c.handler,
		fields:       rendered,
		err:          err,
	}
}

// Check adds the core to ce if the entry's level is enabled
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write converts the zap entry and hands it to the wrapped handler
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	rendered, err := appendFields(c.fields, c.err, fields)

	entry := core.GetEntry()
	defer core.PutEntry(entry)

	entry.Time = ent.Time
	entry.Level = LevelToCore(ent.Level)
	entry.Tag = ent.LoggerName
	entry.Message = ent.Message
	if len(rendered) > 0 {
		entry.Message += " " + strings.Join(rendered, " ")
	}
	entry.Err = err

	if e := c.handler.Handle(entry); e != nil {
		return fmt.Errorf("zaphandler: %w", e)
	}
	return nil
}

// Sync is a no-op; handlers write synchronously
func (c *Core) Sync() error {
	return nil
}

// appendFields renders fields onto dst. The last error-typed field wins
// and is returned instead of being rendered.
func appendFields(dst []string, err error, fields []zapcore.Field) ([]string, error) {
	if len(fields) == 0 {
		return dst, err
	}
	// dst may be shared with other cores; always append to a copy.
	dst = append(make([]string, 0, len(dst)+len(fields)), dst...)
	for _, f := range fields {
		if f.Type == zapcore.ErrorType {
			if e, ok := f.Interface.(error); ok {
				err = e
				continue
			}
		}
		enc := zapcore.NewMapObjectEncoder()
		f.AddTo(enc)
		for k, v := range enc.Fields {
			dst = append(dst, fmt.Sprintf("%s=%v", k, v))
		}
	}
	return dst, err
}

// LevelToCore maps a zap level to an idlog level. DPanic, Panic and
// Fatal all map to assert; zap performs its own panic or exit.
func LevelToCore(l zapcore.Level) core.Level {
	switch {
	case l >= zapcore.DPanicLevel:
		return core.AssertLevel
	case l == zapcore.ErrorLevel:
		return core.ErrorLevel
	case l == zapcore.WarnLevel:
		return core.WarnLevel
	case l == zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
