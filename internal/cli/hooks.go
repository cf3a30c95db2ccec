package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logFrameHooks logs reveal transitions.
type logFrameHooks struct {
	logger *log.Logger
}

func (h *logFrameHooks) OnHoverChange(from, to int) {
	h.logger.Debug("Hover changed", "from", from, "to", to)
}

func (h *logFrameHooks) OnRevealStart(node int) {
	h.logger.Info("Reveal started", "node", node)
}

func (h *logFrameHooks) OnRevealComplete(frames int) {
	h.logger.Info("Reveal complete", "frames", frames)
}

// logRenderHooks logs still-frame exports.
type logRenderHooks struct {
	logger *log.Logger
}

func (h *logRenderHooks) OnRenderStart(_ context.Context, format string) {
	h.logger.Debug("Rendering", "format", format)
}

func (h *logRenderHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("Render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("Rendered", "format", format, "bytes", size, "took", d.Round(time.Millisecond))
}
