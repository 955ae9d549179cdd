package filter

import (
	"slices"

	"github.com/gies-analytics/sustaindash/internal/slider"
)

// YearMode selects which year picker is active.
type YearMode int

const (
	RangeMode YearMode = iota
	SingleMode
)

func (m YearMode) String() string {
	if m == SingleMode {
		return "single"
	}
	return "range"
}

// Status is the sustainability status choice.
type Status int

const (
	StatusAll Status = iota
	StatusSustainable
	StatusNotSustainable
)

// Statuses lists the choices in display order.
var Statuses = []Status{StatusSustainable, StatusNotSustainable, StatusAll}

func (s Status) String() string {
	switch s {
	case StatusSustainable:
		return "Sustainable"
	case StatusNotSustainable:
		return "Not Sustainable"
	default:
		return "All"
	}
}

// Departments lists the department choices; the first means no restriction.
var Departments = []string{
	"All Departments",
	"Accountancy",
	"Business Administration",
	"Finance",
}

// GoalCount is the number of UN Sustainable Development Goals.
const GoalCount = 17

// Selection is the panel's working state. It is never forwarded to a data
// source; Apply only records a Snapshot of it.
type Selection struct {
	YearMode        YearMode
	Range           *slider.Range
	Single          *slider.Single
	BusinessOnly    bool
	TopJournalsOnly bool
	Status          Status
	Department      int
	Query           string

	goals map[int]bool
	seed  int
}

// DefaultSelection returns the initial state: full year range, single year at
// singleDefault, no toggles, every status, every department, no goals.
func DefaultSelection(bounds slider.Bounds, singleDefault int) *Selection {
	return &Selection{
		YearMode: RangeMode,
		Range:    slider.NewRange(bounds),
		Single:   slider.NewSingle(bounds, singleDefault),
		Status:   StatusAll,
		goals:    make(map[int]bool),
		seed:     singleDefault,
	}
}

// Reset restores every field to its default.
func (s *Selection) Reset() {
	*s = *DefaultSelection(s.Range.Bounds(), s.seed)
}

// ToggleGoal flips goal n. Numbers outside 1..GoalCount are ignored.
func (s *Selection) ToggleGoal(n int) {
	if n < 1 || n > GoalCount {
		return
	}
	if s.goals[n] {
		delete(s.goals, n)
	} else {
		s.goals[n] = true
	}
}

// HasGoal reports whether goal n is selected.
func (s *Selection) HasGoal(n int) bool {
	return s.goals[n]
}

// SelectedGoals returns the selected goals in ascending order.
func (s *Selection) SelectedGoals() []int {
	out := make([]int, 0, len(s.goals))
	for n := range s.goals {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// CycleStatus moves through Statuses in display order, wrapping.
func (s *Selection) CycleStatus(delta int) {
	i := slices.Index(Statuses, s.Status)
	s.Status = Statuses[wrap(i+delta, len(Statuses))]
}

// CycleDepartment moves through Departments, wrapping.
func (s *Selection) CycleDepartment(delta int) {
	s.Department = wrap(s.Department+delta, len(Departments))
}

// DepartmentName returns the selected department label.
func (s *Selection) DepartmentName() string {
	return Departments[s.Department]
}

// Snapshot is an immutable copy of a Selection.
type Snapshot struct {
	YearMode        YearMode
	Low, High       int
	Single          int
	BusinessOnly    bool
	TopJournalsOnly bool
	Status          Status
	Department      string
	Goals           []int
	Query           string
}

// Snapshot copies the current state.
func (s *Selection) Snapshot() Snapshot {
	return Snapshot{
		YearMode:        s.YearMode,
		Low:             s.Range.Low(),
		High:            s.Range.High(),
		Single:          s.Single.Value(),
		BusinessOnly:    s.BusinessOnly,
		TopJournalsOnly: s.TopJournalsOnly,
		Status:          s.Status,
		Department:      s.DepartmentName(),
		Goals:           s.SelectedGoals(),
		Query:           s.Query,
	}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
