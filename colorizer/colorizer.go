package colorizer

import (
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/philipp01105/idlog/core"
)

// DefaultTTL is how long an identifier keeps its color
const DefaultTTL = 30 * time.Minute

// idPattern matches a 4 to 8 character bracketed prefix
var idPattern = regexp.MustCompile(`^\[.{4,8}\]`)

// Options configures a Colorizer
type Options struct {
	// Decorate enables color output. When false the Colorizer is a no-op.
	Decorate bool
	// TTL is the lifetime of an identifier's color (default: DefaultTTL)
	TTL time.Duration
	// Clock schedules expiry (default: core.SystemClock)
	Clock core.Clock
}

// assignment is a registry entry. gen distinguishes an assignment from
// a later one for the same identifier.
type assignment struct {
	index int
	gen   uint64
}

// Colorizer colors level names and bracketed message identifiers.
// It is safe for concurrent use.
type Colorizer struct {
	decorate bool
	ttl      time.Duration
	clock    core.Clock

	mu       sync.Mutex
	registry map[string]assignment
	next     int
	gen      uint64
}

// New creates a Colorizer
func New(opts Options) *Colorizer {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	return &Colorizer{
		decorate: opts.Decorate,
		ttl:      opts.TTL,
		clock:    opts.Clock,
		registry: make(map[string]assignment),
	}
}

// Decorate reports whether color output is enabled
func (c *Colorizer) Decorate() bool {
	return c.decorate
}

// TTL returns the identifier color lifetime
func (c *Colorizer) TTL() time.Duration {
	return c.ttl
}

// Level returns the level name, colored when decoration is enabled
func (c *Colorizer) Level(l core.Level) string {
	if !c.decorate {
		return l.String()
	}
	return LevelColor(l).Wrap(l.String())
}

// Colorize colors the bracketed identifier at the start of msg.
// Messages without one are returned unchanged.
func (c *Colorizer) Colorize(msg string) string {
	if !c.decorate || !idPattern.MatchString(msg) {
		return msg
	}

	end := strings.IndexByte(msg, ']')
	id := msg[1:end]
	p := Palette[c.assign(id)]

	var b strings.Builder
	b.Grow(len(msg) + len(p.Open) + len(p.Close))
	b.WriteString(p.Open)
	b.WriteByte('[')
	b.WriteString(id)
	b.WriteByte(']')
	b.WriteString(p.Close)
	b.WriteString(msg[end+1:])
	return b.String()
}

// assign returns the palette index for id, assigning the next one
// round-robin and scheduling its expiry if id is not registered.
func (c *Colorizer) assign(id string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if a, ok := c.registry[id]; ok {
		return a.index
	}

	c.gen++
	a := assignment{index: c.next, gen: c.gen}
	c.registry[id] = a
	c.next = (c.next + 1) % PaletteSize

	c.clock.AfterFunc(c.ttl, func() { c.expire(id, a.gen) })
	return a.index
}

func (c *Colorizer) expire(id string, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if a, ok := c.registry[id]; ok && a.gen == gen {
		delete(c.registry, id)
	}
}

// Lookup returns the palette index currently assigned to id without
// assigning one
func (c *Colorizer) Lookup(id string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a, ok := c.registry[id]
	return a.index, ok
}

// Len returns the number of live assignments
func (c *Colorizer) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.registry)
}

// Snapshot returns a copy of the live assignments
func (c *Colorizer) Snapshot() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int, len(c.registry))
	for id, a := range c.registry {
		out[id] = a.index
	}
	return out
}
