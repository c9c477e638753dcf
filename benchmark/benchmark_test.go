package benchmark

import (
	"fmt"
	"io"
	"testing"

	"github.com/philipp01105/idlog/colorizer"
	"github.com/philipp01105/idlog/logger"
)

// BenchmarkColorizer_Churn assigns a fresh identifier on every call,
// exercising registry insertion and expiry scheduling.
func BenchmarkColorizer_Churn(b *testing.B) {
	ids := make([]string, 4096)
	for i := range ids {
		ids[i] = fmt.Sprintf("[%06x] new connection", i)
	}
	c := colorizer.New(colorizer.Options{Decorate: true})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Colorize(ids[i%len(ids)])
	}
}

// BenchmarkLogger_Parallel measures contention on the console handler.
func BenchmarkLogger_Parallel(b *testing.B) {
	for _, decorate := range []bool{false, true} {
		b.Run(fmt.Sprintf("decorate=%v", decorate), func(b *testing.B) {
			l := logger.NewBuilder().
				WithWriter(io.Discard).
				WithColorizer(colorizer.New(colorizer.Options{Decorate: decorate})).
				Build()
			b.ReportAllocs()
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					l.Info("bench", "[abcd] parallel message")
				}
			})
		})
	}
}
