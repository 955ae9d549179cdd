// Package clickout dismisses a transient panel when the pointer is pressed
// outside every region that belongs to it.
package clickout

import (
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/gies-analytics/sustaindash/internal/event"
)

// Region is a named hit area, in screen cells.
type Region struct {
	ID   string
	Rect uv.Rectangle
}

// Contains reports whether p lies inside the region.
func (r Region) Contains(p uv.Position) bool {
	return p.In(r.Rect)
}

// Inside reports whether p lies inside any of regions.
func Inside(p uv.Position, regions []Region) bool {
	for _, r := range regions {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// Guard listens for pointer presses while its panel is open.
//
// Regions are read lazily on every press because the panel's layout can change
// between frames (resize, mode switch).
type Guard struct {
	bus     *event.Bus[uv.Position]
	regions func() []Region
	dismiss func()
	cancel  func()
}

// New creates a detached guard.
func New(bus *event.Bus[uv.Position], regions func() []Region, dismiss func()) *Guard {
	return &Guard{bus: bus, regions: regions, dismiss: dismiss}
}

// Sync attaches the listener when open is true and releases it otherwise.
// Calling it repeatedly with the same value is a no-op.
func (g *Guard) Sync(open bool) {
	switch {
	case open && g.cancel == nil:
		g.cancel = g.bus.Subscribe(g.onPress)
	case !open:
		g.Close()
	}
}

// Close releases the listener unconditionally.
func (g *Guard) Close() {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}

// Attached reports whether the listener is live.
func (g *Guard) Attached() bool {
	return g.cancel != nil
}

func (g *Guard) onPress(p uv.Position) {
	if g.cancel == nil {
		return
	}
	if g.regions != nil && Inside(p, g.regions()) {
		return
	}
	// Release before dismissing so a dismiss that reopens the panel starts
	// from a clean subscription.
	g.Close()
	if g.dismiss != nil {
		g.dismiss()
	}
}
