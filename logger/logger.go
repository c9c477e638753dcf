package logger

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/philipp01105/idlog/colorizer"
	"github.com/philipp01105/idlog/config"
	"github.com/philipp01105/idlog/core"
	"github.com/philipp01105/idlog/formatter"
	"github.com/philipp01105/idlog/handler"
	"github.com/philipp01105/idlog/handler/consolehandler"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// Logger writes leveled, tagged lines (immutable)
type Logger struct {
	handler   handler.Handler
	colorizer *colorizer.Colorizer
	clock     core.Clock
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler   handler.Handler
	writer    io.Writer
	colorizer *colorizer.Colorizer
	clock     core.Clock
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithHandler sets the handler. When set, WithWriter is ignored and the
// handler's own formatter decides decoration.
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithWriter sets the destination of the default console handler
func (b *Builder) WithWriter(w io.Writer) *Builder {
	b.writer = w
	return b
}

// WithColorizer sets the colorizer used by the default console handler
func (b *Builder) WithColorizer(c *colorizer.Colorizer) *Builder {
	b.colorizer = c
	return b
}

// WithClock sets the clock used to timestamp entries
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.clock = c
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	l := &Logger{
		handler:   b.handler,
		colorizer: b.colorizer,
		clock:     b.clock,
	}
	if l.clock == nil {
		l.clock = core.SystemClock{}
	}
	if l.colorizer == nil {
		l.colorizer = colorizer.New(colorizer.Options{Clock: l.clock})
	}
	if l.handler == nil {
		l.handler = consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Writer:    b.writer,
			Formatter: formatter.NewTextFormatter(formatter.Config{Colorizer: l.colorizer}),
		})
	}
	return l
}

// New creates a stdout Logger from cfg
func New(cfg config.Config) *Logger {
	c := colorizer.New(colorizer.Options{
		Decorate: cfg.DecorateOutput(),
		TTL:      cfg.ColorTTL,
	})
	return NewBuilder().WithColorizer(c).Build()
}

// Colorizer returns the logger's colorizer
func (l *Logger) Colorizer() *colorizer.Colorizer {
	return l.colorizer
}

// Log writes a line at the specified level. A nil err leaves the error
// slot empty.
func (l *Logger) Log(level core.Level, tag, msg string, err error) {
	entry := core.GetEntry()
	entry.Time = l.clock.Now()
	entry.Level = level
	entry.Tag = tag
	entry.Message = msg
	entry.Err = err

	// Write failures are counted by the handler's Stats.
	_ = l.handler.Handle(entry)

	core.PutEntry(entry)
}

// joinErrs folds optional error arguments; nil when none are set
func joinErrs(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	default:
		return errors.Join(errs...)
	}
}

// Verbose logs a verbose message
func (l *Logger) Verbose(tag, msg string, err ...error) {
	l.Log(core.VerboseLevel, tag, msg, joinErrs(err))
}

// Debug logs a debug message
func (l *Logger) Debug(tag, msg string, err ...error) {
	l.Log(core.DebugLevel, tag, msg, joinErrs(err))
}

// Info logs an info message
func (l *Logger) Info(tag, msg string, err ...error) {
	l.Log(core.InfoLevel, tag, msg, joinErrs(err))
}

// Warn logs a warning message
func (l *Logger) Warn(tag, msg string, err ...error) {
	l.Log(core.WarnLevel, tag, msg, joinErrs(err))
}

// Error logs an error message
func (l *Logger) Error(tag, msg string, err ...error) {
	l.Log(core.ErrorLevel, tag, msg, joinErrs(err))
}

// Assert logs at the most severe level and exits the program with os.Exit(1)
func (l *Logger) Assert(tag, msg string, err ...error) {
	l.Log(core.AssertLevel, tag, msg, joinErrs(err))
	osExit(1)
}

// Verbosef logs a verbose message with formatting
func (l *Logger) Verbosef(tag, format string, args ...interface{}) {
	l.Log(core.VerboseLevel, tag, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(tag, format string, args ...interface{}) {
	l.Log(core.DebugLevel, tag, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(tag, format string, args ...interface{}) {
	l.Log(core.InfoLevel, tag, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(tag, format string, args ...interface{}) {
	l.Log(core.WarnLevel, tag, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(tag, format string, args ...interface{}) {
	l.Log(core.ErrorLevel, tag, fmt.Sprintf(format, args...), nil)
}

// Assertf logs a formatted message at the most severe level and exits
// the program with os.Exit(1)
func (l *Logger) Assertf(tag, format string, args ...interface{}) {
	l.Log(core.AssertLevel, tag, fmt.Sprintf(format, args...), nil)
	osExit(1)
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	return l.handler.Close()
}
