package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
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

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered 120 frames (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks writes observability events to the logger at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnCycleStart(_ context.Context, round int) {
	h.logger.Debug("Cycle start", "round", round)
}

func (h *logHooks) OnStageEnter(_ context.Context, stage string) {
	h.logger.Debug("Stage", "stage", stage)
}

func (h *logHooks) OnCycleComplete(_ context.Context, round int, d time.Duration) {
	h.logger.Debug("Cycle done", "round", round, "duration", d.Round(time.Millisecond))
}

func (h *logHooks) OnRecover(_ context.Context, err error, delay time.Duration) {
	h.logger.Debug("Recovering", "err", err, "delay", delay)
}

func (h *logHooks) OnRenderStart(_ context.Context, kind string) {
	h.logger.Debug("Render start", "kind", kind)
}

func (h *logHooks) OnRenderComplete(_ context.Context, kind string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Render failed", "kind", kind, "err", err)
		return
	}
	h.logger.Debug("Rendered", "kind", kind, "bytes", size, "duration", d.Round(time.Microsecond))
}

func (h *logHooks) OnCacheHit(_ context.Context, kind string) {
	h.logger.Debug("Cache hit", "kind", kind)
}

func (h *logHooks) OnCacheMiss(_ context.Context, kind string) {
	h.logger.Debug("Cache miss", "kind", kind)
}

func (h *logHooks) OnCacheSet(_ context.Context, kind string, size int) {
	h.logger.Debug("Cache set", "kind", kind, "bytes", size)
}
