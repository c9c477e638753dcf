package logger_test

import (
	"errors"
	"os"
	"time"

	"github.com/philipp01105/idlog/core"
	"github.com/philipp01105/idlog/logger"
)

func ExampleLogger() {
	log := logger.NewBuilder().
		WithWriter(os.Stdout).
		WithClock(core.NewManualClock(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))).
		Build()

	log.Error("db", "query failed", errors.New("timeout"))
	log.Info("net", "[abcd] connected")
	// Output:
	// [2026-01-15T12:00:00.000Z] error/db: query failed timeout
	// [2026-01-15T12:00:00.000Z] info/net: [abcd] connected
}
