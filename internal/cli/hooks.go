package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports render and output events through the CLI logger.
// It implements observability.RenderHooks and observability.OutputHooks.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnRenderStart(_ context.Context, sample, format string) {
	h.logger.Debug("render started", "sample", sample, "format", format)
}

func (h *logHooks) OnRenderComplete(_ context.Context, sample, format string, lines int, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("render failed", "sample", sample, "format", format, "err", err)
		return
	}
	h.logger.Debug("render complete", "sample", sample, "format", format, "lines", lines, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnOutputWritten(_ context.Context, path string, size int) {
	if path == "" {
		h.logger.Debug("wrote stdout", "bytes", size)
		return
	}
	h.logger.Info("Generated "+path, "bytes", size)
}

func (h *logHooks) OnOutputError(_ context.Context, path string, err error) {
	h.logger.Error("write failed", "path", path, "err", err)
}
