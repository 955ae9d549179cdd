package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	"github.com/gies-analytics/sustaindash/internal/dashboard"
)

// tickerCopies is how many times the data is laid end to end so the window
// never runs past the end of the strip.
const tickerCopies = 3

// Ticker is the horizontally scrolling marquee of headline numbers.
type Ticker struct {
	points []dashboard.TickerPoint
	offset int
	cycle  int // width of one pass over points, in cells
}

// NewTicker creates a ticker at offset zero.
func NewTicker(points []dashboard.TickerPoint) *Ticker {
	t := &Ticker{points: points}
	var plain strings.Builder
	for _, p := range points {
		plain.WriteString(tickerItemPlain(p))
	}
	t.cycle = uniseg.StringWidth(plain.String())
	return t
}

func tickerItemPlain(p dashboard.TickerPoint) string {
	return strings.ToUpper(p.Label) + " " + p.Value + "   •   "
}

func tickerItem(p dashboard.TickerPoint) string {
	return TickerLabelStyle.Render(strings.ToUpper(p.Label)) + " " +
		TickerValueStyle.Render(p.Value) +
		TickerDotStyle.Render("   •   ")
}

// Advance moves the marquee one cell to the left, wrapping after one cycle.
func (t *Ticker) Advance() {
	if t.cycle == 0 {
		return
	}
	t.offset = (t.offset + 1) % t.cycle
}

// Offset returns the current scroll position within one cycle.
func (t *Ticker) Offset() int {
	return t.offset
}

// CycleWidth returns the width of one pass over the data.
func (t *Ticker) CycleWidth() int {
	return t.cycle
}

// View renders the visible width cells of the strip.
func (t *Ticker) View(width int) string {
	if width <= 0 || t.cycle == 0 {
		return ""
	}
	copies := max(tickerCopies, width/t.cycle+2)

	var once strings.Builder
	for _, p := range t.points {
		once.WriteString(tickerItem(p))
	}
	strip := strings.Repeat(once.String(), copies)
	return ansi.Cut(strip, t.offset, t.offset+width)
}
