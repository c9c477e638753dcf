// Package benchmark compares idlog against other Go loggers writing
// human-readable console lines to the same sink.
package benchmark

import (
	"github.com/philipp01105/idlog/core"
	"github.com/philipp01105/idlog/handler"
)

// noopHandler measures the logger front end without formatting cost
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
