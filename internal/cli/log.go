package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/clemenssielaff/ZodiacGraph/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with
// elapsed duration. Safe for sequential use by a single goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created,
// rounded to the nearest millisecond.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx. If no logger is attached
// it returns log.Default(), so commands always have a valid logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// debugHooks forwards layout and render events to the debug log.
type debugHooks struct {
	logger *log.Logger
}

func (h debugHooks) OnPassStart(node string, plugCount int) {
	h.logger.Debugf("layout pass: node=%s plugs=%d", node, plugCount)
}

func (h debugHooks) OnPassComplete(node string, zoneCount int, duration time.Duration) {
	h.logger.Debugf("layout done: node=%s zones=%d in %s", node, zoneCount, duration.Round(time.Microsecond))
}

func (h debugHooks) OnRenderStart(format string, nodeCount int) {
	h.logger.Debugf("render: format=%s nodes=%d", format, nodeCount)
}

func (h debugHooks) OnRenderComplete(format string, size int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debugf("render failed: format=%s err=%v", format, err)
		return
	}
	h.logger.Debugf("render done: format=%s bytes=%d in %s", format, size, duration.Round(time.Microsecond))
}

// installDebugHooks wires the observability hooks to the logger.
func installDebugHooks(l *log.Logger) {
	h := debugHooks{logger: l}
	observability.SetLayoutHooks(h)
	observability.SetRenderHooks(h)
}
