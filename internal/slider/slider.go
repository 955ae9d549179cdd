// Package slider holds the year pickers used by the filter panel: a two-handle
// range whose handles never cross or touch, and a single-value companion over
// the same domain.
package slider

import "math"

// Bounds is a closed integer domain [Min, Max]. Max must be greater than Min.
type Bounds struct {
	Min int
	Max int
}

// DefaultBounds is the publication year domain of the dashboard.
var DefaultBounds = Bounds{Min: 1966, Max: 2025}

// Span returns Max - Min.
func (b Bounds) Span() int {
	return b.Max - b.Min
}

// Clamp pins v into the domain.
func (b Bounds) Clamp(v int) int {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// PercentOf maps a value to its rounded position along the track, 0 at Min and
// 100 at Max. Values outside the domain are clamped first so the result is
// always within [0, 100].
func (b Bounds) PercentOf(v int) int {
	if b.Span() <= 0 {
		return 0
	}
	v = b.Clamp(v)
	return int(math.Round(100 * float64(v-b.Min) / float64(b.Span())))
}

// ValueAt is the inverse of PercentOf for a fractional track position in
// [0, 1]; used to turn a click on the track into a year.
func (b Bounds) ValueAt(fraction float64) int {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return b.Min + int(math.Round(fraction*float64(b.Span())))
}

// Range is a (low, high) pair with Min <= low < high <= Max.
type Range struct {
	bounds Bounds
	low    int
	high   int
}

// NewRange starts with both handles at the edges of the domain.
func NewRange(bounds Bounds) *Range {
	return &Range{bounds: bounds, low: bounds.Min, high: bounds.Max}
}

// Bounds returns the domain.
func (r *Range) Bounds() Bounds { return r.bounds }

// Low returns the lower handle.
func (r *Range) Low() int { return r.low }

// High returns the upper handle.
func (r *Range) High() int { return r.high }

// SetLow moves the lower handle to min(candidate, high-1), never below Min.
func (r *Range) SetLow(candidate int) {
	v := min(candidate, r.high-1)
	r.low = max(v, r.bounds.Min)
}

// SetHigh moves the upper handle to max(candidate, low+1), never above Max.
func (r *Range) SetHigh(candidate int) {
	v := max(candidate, r.low+1)
	r.high = min(v, r.bounds.Max)
}

// Reset returns both handles to the domain edges.
func (r *Range) Reset() {
	r.low, r.high = r.bounds.Min, r.bounds.Max
}

// FillPercents returns the left and right edges of the highlighted segment
// between the handles.
func (r *Range) FillPercents() (left, right int) {
	return r.bounds.PercentOf(r.low), r.bounds.PercentOf(r.high)
}

// Nearest reports whether v is closer to the low handle than to the high one.
// Ties go to the high handle when v is above it and to the low handle otherwise.
func (r *Range) Nearest(v int) (low bool) {
	dl := abs(v - r.low)
	dh := abs(v - r.high)
	if dl == dh {
		return v <= r.low
	}
	return dl < dh
}

// Single is one year inside the domain, with no pairing constraint.
type Single struct {
	bounds Bounds
	value  int
}

// NewSingle creates a single-value picker, clamping initial into the domain.
func NewSingle(bounds Bounds, initial int) *Single {
	return &Single{bounds: bounds, value: bounds.Clamp(initial)}
}

// Value returns the selected year.
func (s *Single) Value() int { return s.value }

// Bounds returns the domain.
func (s *Single) Bounds() Bounds { return s.bounds }

// Set clamps v into the domain.
func (s *Single) Set(v int) {
	s.value = s.bounds.Clamp(v)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
