// Package filter implements the header's filter mega menu: a trigger-toggled
// panel holding a year picker, category toggles, a status choice, a
// department choice and the goal grid.
package filter

import (
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/gies-analytics/sustaindash/internal/clickout"
	"github.com/gies-analytics/sustaindash/internal/event"
	"github.com/gies-analytics/sustaindash/internal/logger"
	"github.com/gies-analytics/sustaindash/internal/slider"
)

// Region IDs the panel registers with its click-outside guard.
const (
	RegionPanel   = "filter-panel"
	RegionTrigger = "filter-trigger"
)

// GoalColumns is the width of the goal grid.
const GoalColumns = 6

// Control is a keyboard-focusable element of the panel.
type Control int

const (
	ControlSearch Control = iota
	ControlBusinessOnly
	ControlTopJournals
	ControlStatus
	ControlYearMode
	ControlLow
	ControlHigh
	ControlSingle
	ControlDepartment
	ControlGoals
	ControlClear
	ControlApply
)

var controlNames = map[Control]string{
	ControlSearch:       "search",
	ControlBusinessOnly: "business-only",
	ControlTopJournals:  "top-journals",
	ControlStatus:       "status",
	ControlYearMode:     "year-mode",
	ControlLow:          "year-low",
	ControlHigh:         "year-high",
	ControlSingle:       "year-single",
	ControlDepartment:   "department",
	ControlGoals:        "goals",
	ControlClear:        "clear",
	ControlApply:        "apply",
}

func (c Control) String() string {
	return controlNames[c]
}

// Panel is the filter mega menu.
type Panel struct {
	open        bool
	sel         *Selection
	focus       Control
	goalCursor  int // 1..GoalCount
	lastApplied *Snapshot
	guard       *clickout.Guard
	log         func(format string, args ...any)
}

// NewPanel creates a closed panel with the default selection.
func NewPanel(bounds slider.Bounds, singleDefault int) *Panel {
	return &Panel{
		sel:        DefaultSelection(bounds, singleDefault),
		focus:      ControlSearch,
		goalCursor: 1,
		log:        logger.Debug,
	}
}

// AttachGuard wires click-outside dismissal. regions must report the panel
// and trigger rectangles as currently laid out.
func (p *Panel) AttachGuard(bus *event.Bus[uv.Position], regions func() []clickout.Region) {
	if p.guard != nil {
		p.guard.Close()
	}
	p.guard = clickout.New(bus, regions, func() {
		p.log("Filter panel dismissed by outside press")
		p.Close()
	})
	p.guard.Sync(p.open)
}

// Guard returns the click-outside guard, or nil before AttachGuard.
func (p *Panel) Guard() *clickout.Guard {
	return p.guard
}

// IsOpen reports whether the panel is visible.
func (p *Panel) IsOpen() bool { return p.open }

// Open shows the panel.
func (p *Panel) Open() { p.setOpen(true) }

// Close hides the panel without applying.
func (p *Panel) Close() { p.setOpen(false) }

// Toggle flips visibility.
func (p *Panel) Toggle() { p.setOpen(!p.open) }

func (p *Panel) setOpen(open bool) {
	if p.open == open {
		return
	}
	p.open = open
	if open {
		p.focus = ControlSearch
	}
	if p.guard != nil {
		p.guard.Sync(open)
	}
}

// Detach releases the guard; used when the owning view is torn down.
func (p *Panel) Detach() {
	if p.guard != nil {
		p.guard.Close()
	}
}

// Selection returns the live selection.
func (p *Panel) Selection() *Selection { return p.sel }

// Apply closes the panel and records the selection.
func (p *Panel) Apply() Snapshot {
	snap := p.sel.Snapshot()
	p.lastApplied = &snap
	p.log("Filters applied: mode=%s years=%d-%d single=%d business=%v top=%v status=%s dept=%q goals=%v query=%q",
		snap.YearMode, snap.Low, snap.High, snap.Single, snap.BusinessOnly, snap.TopJournalsOnly,
		snap.Status, snap.Department, snap.Goals, snap.Query)
	p.Close()
	return snap
}

// LastApplied returns the most recent Apply result.
func (p *Panel) LastApplied() (Snapshot, bool) {
	if p.lastApplied == nil {
		return Snapshot{}, false
	}
	return *p.lastApplied, true
}

// ClearAll resets the selection; the panel stays open.
func (p *Panel) ClearAll() {
	p.sel.Reset()
	p.goalCursor = 1
	if p.focus == ControlLow || p.focus == ControlHigh || p.focus == ControlSingle {
		p.focus = ControlYearMode
	}
}

// SetYearMode switches the year picker.
func (p *Panel) SetYearMode(m YearMode) {
	if p.sel.YearMode == m {
		return
	}
	p.sel.YearMode = m
	switch {
	case m == SingleMode && (p.focus == ControlLow || p.focus == ControlHigh):
		p.focus = ControlSingle
	case m == RangeMode && p.focus == ControlSingle:
		p.focus = ControlLow
	}
}

// PointTrack moves a year handle to the value under fraction of the track
// width: the nearer handle in range mode, the only one in single mode.
func (p *Panel) PointTrack(fraction float64) {
	if p.sel.YearMode == SingleMode {
		p.sel.Single.Set(p.sel.Single.Bounds().ValueAt(fraction))
		return
	}
	r := p.sel.Range
	v := r.Bounds().ValueAt(fraction)
	if r.Nearest(v) {
		r.SetLow(v)
	} else {
		r.SetHigh(v)
	}
}

// Controls returns the focus order for the current year mode.
func (p *Panel) Controls() []Control {
	years := []Control{ControlLow, ControlHigh}
	if p.sel.YearMode == SingleMode {
		years = []Control{ControlSingle}
	}
	out := []Control{ControlSearch, ControlBusinessOnly, ControlTopJournals, ControlStatus, ControlYearMode}
	out = append(out, years...)
	return append(out, ControlDepartment, ControlGoals, ControlClear, ControlApply)
}

// Focus returns the focused control.
func (p *Panel) Focus() Control { return p.focus }

// SetFocus focuses c if it is part of the current focus order.
func (p *Panel) SetFocus(c Control) {
	for _, x := range p.Controls() {
		if x == c {
			p.focus = c
			return
		}
	}
}

// FocusNext moves focus forward, wrapping.
func (p *Panel) FocusNext() { p.moveFocus(1) }

// FocusPrev moves focus backward, wrapping.
func (p *Panel) FocusPrev() { p.moveFocus(-1) }

func (p *Panel) moveFocus(delta int) {
	controls := p.Controls()
	i := 0
	for j, c := range controls {
		if c == p.focus {
			i = j
			break
		}
	}
	p.focus = controls[wrap(i+delta, len(controls))]
}

// GoalCursor returns the highlighted goal number.
func (p *Panel) GoalCursor() int { return p.goalCursor }

// MoveGoalCursor moves the highlight by delta goals, clamped to 1..GoalCount.
func (p *Panel) MoveGoalCursor(delta int) {
	p.goalCursor = max(1, min(p.goalCursor+delta, GoalCount))
}

// Adjust applies a left/right step to the focused control.
func (p *Panel) Adjust(delta int) {
	s := p.sel
	switch p.focus {
	case ControlStatus:
		s.CycleStatus(delta)
	case ControlYearMode:
		if delta > 0 {
			p.SetYearMode(SingleMode)
		} else {
			p.SetYearMode(RangeMode)
		}
	case ControlLow:
		s.Range.SetLow(s.Range.Low() + delta)
	case ControlHigh:
		s.Range.SetHigh(s.Range.High() + delta)
	case ControlSingle:
		s.Single.Set(s.Single.Value() + delta)
	case ControlDepartment:
		s.CycleDepartment(delta)
	case ControlGoals:
		p.MoveGoalCursor(delta)
	case ControlBusinessOnly:
		s.BusinessOnly = delta > 0
	case ControlTopJournals:
		s.TopJournalsOnly = delta > 0
	}
}

// Activate performs the focused control's primary action.
func (p *Panel) Activate() {
	s := p.sel
	switch p.focus {
	case ControlBusinessOnly:
		s.BusinessOnly = !s.BusinessOnly
	case ControlTopJournals:
		s.TopJournalsOnly = !s.TopJournalsOnly
	case ControlStatus:
		s.CycleStatus(1)
	case ControlYearMode:
		if s.YearMode == RangeMode {
			p.SetYearMode(SingleMode)
		} else {
			p.SetYearMode(RangeMode)
		}
	case ControlDepartment:
		s.CycleDepartment(1)
	case ControlGoals:
		s.ToggleGoal(p.goalCursor)
	case ControlClear:
		p.ClearAll()
	case ControlApply:
		p.Apply()
	}
}

// SetQuery stores the "Search filters..." text.
func (p *Panel) SetQuery(q string) {
	p.sel.Query = q
}
