package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pathfinder/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Compared 5 algorithms (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Hooks
// =============================================================================

// searchLogger logs search lifecycle events. Steps are logged at debug level
// only, everything else at info.
type searchLogger struct {
	logger *log.Logger
}

func newSearchLogger(l *log.Logger) observability.SearchHooks {
	return searchLogger{logger: l.WithPrefix("search")}
}

func (s searchLogger) OnSearchStart(algorithm string, width, height, walls int) {
	s.logger.Debug("start", "algorithm", algorithm, "size", sizeString(width, height), "walls", walls)
}

func (s searchLogger) OnStep(algorithm string, iteration, open, closed int) {
	s.logger.Debug("step", "algorithm", algorithm, "iteration", iteration, "open", open, "closed", closed)
}

func (s searchLogger) OnSearchComplete(algorithm string, found bool, cost float64, steps int, d time.Duration) {
	if !found {
		s.logger.Info("no path", "algorithm", algorithm, "steps", steps, "elapsed", d.Round(time.Microsecond))
		return
	}
	s.logger.Info("path found", "algorithm", algorithm, "cost", formatCost(cost), "steps", steps, "elapsed", d.Round(time.Microsecond))
}

func (s searchLogger) OnReset(algorithm string) {
	s.logger.Debug("reset", "algorithm", algorithm)
}

// httpLogger logs HTTP traffic.
type httpLogger struct {
	logger *log.Logger
}

func newHTTPLogger(l *log.Logger) observability.HTTPHooks {
	return httpLogger{logger: l.WithPrefix("http")}
}

func (h httpLogger) OnRequest(ctx context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h httpLogger) OnResponse(ctx context.Context, method, path string, status int, d time.Duration) {
	h.logger.Info(method+" "+path, "status", status, "elapsed", d.Round(time.Microsecond))
}
