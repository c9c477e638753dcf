package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/philipp01105/idlog/core"
	"github.com/philipp01105/idlog/formatter"
	"github.com/philipp01105/idlog/handler"
)

// lockedWriter wraps an io.Writer with a mutex, acquiring the lock only
// for Write calls. Formatters prepare data in their own pooled buffers
// and call Write once, so the lock is held only during the actual I/O.
type lockedWriter struct {
	mu *sync.Mutex // points to handler's mu
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: plain TextFormatter)
	Formatter formatter.Formatter
	// ConcurrentWriter indicates the Writer supports concurrent Write calls.
	// Automatically detected for io.Discard and *os.File.
	ConcurrentWriter bool
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
}

// ConsoleHandler writes each entry synchronously as one line.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	bufferFormatter formatter.BufferFormatter
	concurrentSafe  bool
	stats           *handler.Stats
	mu              sync.Mutex // protects syncBuf and writer
	lw              lockedWriter
	syncBuf         bytes.Buffer
	parBufPool      sync.Pool
	closed          chan struct{}
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)

	h := &ConsoleHandler{
		writer:         cfg.Writer,
		formatter:      cfg.Formatter,
		concurrentSafe: cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer),
		stats:          handler.NewStats(),
		closed:         make(chan struct{}),
	}

	// Cache optional formatter interfaces
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	h.lw = lockedWriter{mu: &h.mu, w: h.writer}

	if h.bufferFormatter != nil {
		h.syncBuf.Grow(256)
		h.parBufPool = sync.Pool{
			New: func() interface{} {
				b := new(bytes.Buffer)
				b.Grow(256)
				return b
			},
		}
	}

	return h
}

// Handle formats and writes an entry.
// Uses TryLock on mu to reuse the handler-owned buffer when uncontended.
// When contended, formats into a pooled buffer outside the lock and then
// writes under mu (or directly for concurrent-safe writers).
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	select {
	case <-h.closed:
		return handler.ErrClosed
	default:
	}

	err := h.write(entry)
	h.stats.Record(err)
	return err
}

func (h *ConsoleHandler) write(entry *core.Entry) error {
	if h.bufferFormatter != nil {
		if h.mu.TryLock() {
			h.syncBuf.Reset()
			h.bufferFormatter.FormatEntry(entry, &h.syncBuf)
			_, err := h.writer.Write(h.syncBuf.Bytes())
			h.mu.Unlock()
			return err
		}

		buf := h.parBufPool.Get().(*bytes.Buffer)
		buf.Reset()
		h.bufferFormatter.FormatEntry(entry, buf)
		var err error
		if h.concurrentSafe {
			_, err = h.writer.Write(buf.Bytes())
		} else {
			_, err = h.lw.Write(buf.Bytes())
		}
		h.parBufPool.Put(buf)
		return err
	}

	if h.writerFormatter != nil {
		if h.concurrentSafe {
			return h.writerFormatter.FormatTo(entry, h.writer)
		}
		return h.writerFormatter.FormatTo(entry, &h.lw)
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	if h.concurrentSafe {
		_, err = h.writer.Write(data)
		return err
	}
	_, err = h.lw.Write(data)
	return err
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close marks the handler closed. The underlying writer is not closed.
func (h *ConsoleHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	select {
	case <-h.closed:
	default:
		close(h.closed)
	}
	return nil
}
