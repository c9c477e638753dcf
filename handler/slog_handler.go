package handler

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/philipp01105/idlog/core"
)

// Attribute keys with special meaning to SlogHandler
const (
	// TagKey sets the entry tag
	TagKey = "tag"
	// ErrorKey sets the entry error ("err" is accepted too)
	ErrorKey = "error"
)

// SlogHandler is an adapter that implements slog.Handler using an idlog Handler.
//
// A "tag" attribute becomes the entry tag; without one the current group
// name is used. An "error" or "err" attribute becomes the entry error.
// Remaining attributes are appended to the message as key=value pairs.
type SlogHandler struct {
	handler Handler
	tag     string
	err     error
	attrs   []string
	group   string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
func NewSlogHandler(h Handler) *SlogHandler {
	return &SlogHandler{handler: h}
}

// Enabled always reports true; records are never filtered by level.
func (s *SlogHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle converts a slog.Record to a core.Entry and passes it to the wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()
	defer core.PutEntry(entry)

	if !record.Time.IsZero() {
		entry.Time = record.Time
	}
	entry.Level = SlogLevelToCore(record.Level)

	tag, err := s.tag, s.err
	// Cap the slice so appends never write into s.attrs' backing array.
	attrs := s.attrs[:len(s.attrs):len(s.attrs)]
	record.Attrs(func(a slog.Attr) bool {
		attrs = s.apply(attrs, &tag, &err, s.group, a)
		return true
	})

	entry.Tag = tag
	if entry.Tag == "" {
		entry.Tag = s.group
	}
	entry.Err = err
	entry.Message = record.Message
	if len(attrs) > 0 {
		entry.Message += " " + strings.Join(attrs, " ")
	}

	return s.handler.Handle(entry)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	n := s.clone()
	for _, a := range attrs {
		n.attrs = n.apply(n.attrs, &n.tag, &n.err, n.group, a)
	}
	return n
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	n := s.clone()
	if n.group != "" {
		n.group = n.group + "." + name
	} else {
		n.group = name
	}
	return n
}

func (s *SlogHandler) clone() *SlogHandler {
	attrs := make([]string, len(s.attrs))
	copy(attrs, s.attrs)
	return &SlogHandler{
		handler: s.handler,
		tag:     s.tag,
		err:     s.err,
		attrs:   attrs,
		group:   s.group,
	}
}

// apply folds a into tag, err or the rendered attribute list.
func (s *SlogHandler) apply(attrs []string, tag *string, err *error, group string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return attrs
	}

	if group == "" {
		switch a.Key {
		case TagKey:
			*tag = a.Value.String()
			return attrs
		case ErrorKey, "err":
			*err = attrError(a.Value)
			return attrs
		}
	}

	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			attrs = s.apply(attrs, tag, err, key, ga)
		}
		return attrs
	}
	return append(attrs, key+"="+a.Value.String())
}

func attrError(v slog.Value) error {
	if v.Kind() == slog.KindAny {
		if e, ok := v.Any().(error); ok {
			return e
		}
	}
	s := v.String()
	if s == "" {
		return nil
	}
	return errors.New(s)
}

// SlogLevelToCore converts a slog.Level to a core.Level. Levels below
// slog.LevelDebug map to verbose and levels above slog.LevelError map
// to assert.
func SlogLevelToCore(level slog.Level) core.Level {
	switch {
	case level > slog.LevelError:
		return core.AssertLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.VerboseLevel
	}
}
