// Package scroll derives the "far from top" signal that drives the dashboard's
// scroll-to-top affordance.
package scroll

import (
	"github.com/gies-analytics/sustaindash/internal/event"
)

// DefaultThreshold is the offset (in scroll units) beyond which the page
// counts as far from the top.
const DefaultThreshold = 300

// Watcher tracks the latest scroll offset from a subscribed source.
type Watcher struct {
	threshold int
	offset    int
	far       bool
	cancel    func()
}

// New creates a detached watcher. A non-positive threshold falls back to
// DefaultThreshold.
func New(threshold int) *Watcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Watcher{threshold: threshold}
}

// Attach subscribes to source for the watcher's mounted lifetime. Attaching to
// a new source releases the previous subscription first.
func (w *Watcher) Attach(source *event.Bus[int]) {
	w.Detach()
	w.cancel = source.Subscribe(w.Observe)
}

// Detach releases the current subscription, if any.
func (w *Watcher) Detach() {
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
}

// Attached reports whether the watcher currently holds a subscription.
func (w *Watcher) Attached() bool {
	return w.cancel != nil
}

// Observe records a new offset and recomputes the signal.
func (w *Watcher) Observe(offset int) {
	w.offset = offset
	w.far = offset > w.threshold
}

// IsFarFromTop reports whether the last offset exceeded the threshold.
func (w *Watcher) IsFarFromTop() bool {
	return w.far
}

// Offset returns the last observed offset.
func (w *Watcher) Offset() int {
	return w.offset
}

// Threshold returns the configured threshold.
func (w *Watcher) Threshold() int {
	return w.threshold
}

// ScrollToTop plans an ease-out animation from current to zero: each frame
// covers half of the remaining distance and the final frame is always 0.
// Already being at the top yields no frames.
func ScrollToTop(current int) []int {
	if current <= 0 {
		return nil
	}
	var frames []int
	for pos := current; pos > 1; {
		pos /= 2
		frames = append(frames, pos)
	}
	if len(frames) == 0 || frames[len(frames)-1] != 0 {
		frames = append(frames, 0)
	}
	return frames
}
