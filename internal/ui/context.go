package ui

import (
	"sync"

	"github.com/gies-analytics/sustaindash/internal/logger"
)

// ViewContext holds centralized layout calculations.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	TerminalWidth  int
	TerminalHeight int

	Compact      bool
	HeaderHeight int
	FooterHeight int
	BodyHeight   int

	mu sync.Mutex
}

var (
	ctx     *ViewContext
	ctxOnce sync.Once
)

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: DesktopHeaderHeight,
			FooterHeight: FooterHeight,
		}
		logger.ComponentLogger("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// UpdateTerminalSize recalculates all dimensions when the terminal is resized
// or the header switches layout.
func (v *ViewContext) UpdateTerminalSize(width, height int, compact bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	width = max(width, MinTerminalWidth)
	height = max(height, MinTerminalHeight)

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.Compact = compact
	v.HeaderHeight = DesktopHeaderHeight
	if compact {
		v.HeaderHeight = CompactHeaderHeight
	}
	v.FooterHeight = FooterHeight
	v.BodyHeight = height - v.HeaderHeight - v.FooterHeight

	logger.ComponentLogger("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"compact", compact,
		"bodyHeight", v.BodyHeight,
	)
}

// Snapshot returns a copy of the current dimensions.
func (v *ViewContext) Snapshot() (width, height, headerHeight, bodyHeight int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.TerminalWidth, v.TerminalHeight, v.HeaderHeight, v.BodyHeight
}
