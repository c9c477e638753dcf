package handler

import (
	"errors"

	"github.com/philipp01105/idlog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log entry
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that track write statistics
type StatsProvider interface {
	Stats() Snapshot
}

// ErrClosed is returned by Handle after Close
var ErrClosed = errors.New("handler: closed")
