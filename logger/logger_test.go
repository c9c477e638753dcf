package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/idlog/colorizer"
	"github.com/philipp01105/idlog/config"
	"github.com/philipp01105/idlog/core"
)

var testStart = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func newTestLogger(decorate bool) (*Logger, *bytes.Buffer, *core.ManualClock) {
	var buf bytes.Buffer
	clock := core.NewManualClock(testStart)
	l := NewBuilder().
		WithWriter(&buf).
		WithClock(clock).
		WithColorizer(colorizer.New(colorizer.Options{Decorate: decorate, Clock: clock})).
		Build()
	return l, &buf, clock
}

func TestLogger_LineFormat(t *testing.T) {
	l, buf, _ := newTestLogger(false)

	l.Info("net", "[abcd] connected")
	if want := "[2026-01-15T12:00:00.000Z] info/net: [abcd] connected \n"; buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	l.Error("db", "query failed", errors.New("timeout"))
	if want := "[2026-01-15T12:00:00.000Z] error/db: query failed timeout\n"; buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestLogger_AllLevels(t *testing.T) {
	l, buf, _ := newTestLogger(false)

	tests := []struct {
		name string
		log  func()
		want string
	}{
		{"verbose", func() { l.Verbose("t", "m") }, "verbose/t: m"},
		{"debug", func() { l.Debug("t", "m") }, "debug/t: m"},
		{"info", func() { l.Info("t", "m") }, "info/t: m"},
		{"warn", func() { l.Warn("t", "m") }, "warn/t: m"},
		{"error", func() { l.Error("t", "m") }, "error/t: m"},
		{"verbosef", func() { l.Verbosef("t", "n=%d", 1) }, "verbose/t: n=1"},
		{"debugf", func() { l.Debugf("t", "n=%d", 2) }, "debug/t: n=2"},
		{"infof", func() { l.Infof("t", "n=%d", 3) }, "info/t: n=3"},
		{"warnf", func() { l.Warnf("t", "n=%d", 4) }, "warn/t: n=4"},
		{"errorf", func() { l.Errorf("t", "n=%d", 5) }, "error/t: n=5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.log()
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("Expected %q in output, got: %s", tt.want, buf.String())
			}
		})
	}
}

func TestLogger_MultipleErrors(t *testing.T) {
	l, buf, _ := newTestLogger(false)

	l.Warn("t", "m", nil, errors.New("first"), nil, errors.New("second"))
	if !strings.Contains(buf.String(), "m first\nsecond\n") {
		t.Errorf("Expected joined errors, got: %q", buf.String())
	}

	buf.Reset()
	l.Warn("t", "m", nil, nil)
	if !strings.HasSuffix(buf.String(), "m \n") {
		t.Errorf("Expected empty error slot, got: %q", buf.String())
	}
}

func TestLogger_Decorated(t *testing.T) {
	l, buf, _ := newTestLogger(true)

	l.Info("net", "[abcd] connected")
	l.Info("net", "[abcd] disconnected")
	l.Info("net", "[wxyz] hello")
	l.Info("net", "no brackets here")

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d: %q", len(lines), buf.String())
	}

	info := colorizer.LevelColor(core.InfoLevel).Wrap("info")
	red, green := colorizer.Palette[0], colorizer.Palette[1]
	want := []string{
		info + "/net: " + red.Wrap("[abcd]") + " connected ",
		info + "/net: " + red.Wrap("[abcd]") + " disconnected ",
		info + "/net: " + green.Wrap("[wxyz]") + " hello ",
		info + "/net: no brackets here ",
	}
	for i, line := range lines {
		if !strings.HasSuffix(line, want[i]) {
			t.Errorf("line %d = %q, want suffix %q", i, line, want[i])
		}
	}

	snap := l.Colorizer().Snapshot()
	if len(snap) != 2 || snap["abcd"] != 0 || snap["wxyz"] != 1 {
		t.Errorf("Snapshot() = %v, want map[abcd:0 wxyz:1]", snap)
	}
}

func TestLogger_DecorationDisabled(t *testing.T) {
	l, buf, clock := newTestLogger(false)

	l.Warn("net", "[abcd] connected")

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("Expected no escape codes, got: %q", buf.String())
	}
	if l.Colorizer().Len() != 0 || clock.Pending() != 0 {
		t.Error("Expected no registry interaction with decoration disabled")
	}
}

func TestLogger_IdentifierColorExpires(t *testing.T) {
	l, buf, clock := newTestLogger(true)

	for _, id := range []string{"aaaa", "bbbb", "cccc"} {
		l.Info("t", "["+id+"] x")
	}
	clock.Advance(colorizer.DefaultTTL + time.Millisecond)
	if l.Colorizer().Len() != 0 {
		t.Fatalf("Expected registry empty after TTL, got %v", l.Colorizer().Snapshot())
	}

	buf.Reset()
	l.Info("t", "[aaaa] back")
	// Counter kept running: slot 3, not slot 0.
	if !strings.Contains(buf.String(), colorizer.Palette[3].Wrap("[aaaa]")) {
		t.Errorf("Expected slot 3 color after expiry, got: %q", buf.String())
	}
}

func TestLogger_TimestampFromClock(t *testing.T) {
	l, buf, clock := newTestLogger(false)

	clock.Advance(90*time.Second + 250*time.Millisecond)
	l.Info("t", "m")
	if !strings.HasPrefix(buf.String(), "[2026-01-15T12:01:30.250Z] ") {
		t.Errorf("Unexpected timestamp: %q", buf.String())
	}
}

func TestLogger_Assert(t *testing.T) {
	l, buf, _ := newTestLogger(false)

	restore := osExit
	defer func() { osExit = restore }()

	var code = -1
	osExit = func(c int) { code = c }

	l.Assert("main", "invariant broken", errors.New("boom"))
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(buf.String(), "assert/main: invariant broken boom\n") {
		t.Errorf("Expected assert line before exit, got: %q", buf.String())
	}

	buf.Reset()
	code = -1
	l.Assertf("main", "bad state %d", 7)
	if code != 1 {
		t.Errorf("Assertf exit code = %d, want 1", code)
	}
	if !strings.Contains(buf.String(), "assert/main: bad state 7 \n") {
		t.Errorf("Unexpected output: %q", buf.String())
	}
}

func TestNew_FromConfig(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{"APP_ENV": "production", "LOG_COLOR_TTL": "5m"})
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	l := New(cfg)
	if l.Colorizer().Decorate() {
		t.Error("Expected production config to disable decoration")
	}
	if l.Colorizer().TTL() != 5*time.Minute {
		t.Errorf("TTL() = %v, want 5m", l.Colorizer().TTL())
	}
}

func TestDefault_SetDefault(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	l, buf, _ := newTestLogger(false)
	SetDefault(l)

	Info("pkg", "via default")
	Errorf("pkg", "code=%d", 500)

	out := buf.String()
	if !strings.Contains(out, "info/pkg: via default") {
		t.Errorf("Expected default logger output, got: %s", out)
	}
	if !strings.Contains(out, "error/pkg: code=500") {
		t.Errorf("Expected formatted default logger output, got: %s", out)
	}
}
