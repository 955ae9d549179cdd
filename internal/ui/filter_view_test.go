package ui

import (
	"strings"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"

	"github.com/gies-analytics/sustaindash/internal/filter"
	"github.com/gies-analytics/sustaindash/internal/slider"
)

func newTestPanel() *filter.Panel {
	p := filter.NewPanel(slider.DefaultBounds, 2024)
	p.Open()
	return p
}

func TestRenderFilterPanel_Content(t *testing.T) {
	layout := RenderFilterPanel(newTestPanel(), "Search filters...", 10, 3)
	view := stripANSI(layout.View)

	for _, want := range []string{
		"Filters", "Clear All", "Search filters...",
		"JOURNAL CATEGORIES", "Business Journals Only", "Top Journals Only (UTD/FT)",
		"SUSTAINABILITY STATUS", "○ Sustainable", "◉ All",
		"PUBLICATION YEAR", "Range", "Single", "From 1966", "To 2025",
		"DEPARTMENT", "All Departments",
		"UN SUSTAINABILITY GOALS", "17",
		"Apply Filters",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("panel missing %q", want)
		}
	}
	if layout.Rect.Min != uv.Pos(10, 3) {
		t.Errorf("Rect.Min = %v, want (10,3)", layout.Rect.Min)
	}
}

func TestRenderFilterPanel_SingleMode(t *testing.T) {
	p := newTestPanel()
	p.SetYearMode(filter.SingleMode)
	view := stripANSI(RenderFilterPanel(p, "", 0, 0).View)

	if !strings.Contains(view, "Year 2024") {
		t.Errorf("single mode should caption the chosen year:\n%s", view)
	}
	if strings.Contains(view, "From 1966") {
		t.Error("single mode hides the range caption")
	}
}

func TestRenderFilterPanel_HitsInsidePanel(t *testing.T) {
	layout := RenderFilterPanel(newTestPanel(), "", 20, 4)

	for _, h := range layout.Hits {
		if !h.Rect.In(layout.Rect) {
			t.Errorf("hit %+v lies outside panel %v", h, layout.Rect)
		}
	}

	goals := 0
	for _, h := range layout.Hits {
		if h.Kind == HitGoal {
			goals++
		}
	}
	if goals != filter.GoalCount {
		t.Errorf("got %d goal hits, want %d", goals, filter.GoalCount)
	}
}

func TestRenderFilterPanel_HitAt(t *testing.T) {
	layout := RenderFilterPanel(newTestPanel(), "", 0, 0)

	seven, ok := layout.Hit(HitGoal, filter.ControlGoals, 7)
	if !ok {
		t.Fatal("no hit for goal 7")
	}
	got, ok := layout.HitAt(seven.Rect.Min)
	if !ok || got.Value != 7 {
		t.Errorf("HitAt(goal 7) = %+v, %v", got, ok)
	}

	apply, ok := layout.Hit(HitControl, filter.ControlApply, 0)
	if !ok {
		t.Fatal("no hit for apply")
	}
	if apply.Rect.Min.Y <= seven.Rect.Min.Y {
		t.Error("apply button should sit below the goal grid")
	}

	if _, ok := layout.HitAt(uv.Pos(layout.Rect.Max.X+1, 0)); ok {
		t.Error("press outside the panel should not hit")
	}
}

func TestFilterHit_Fraction(t *testing.T) {
	h := FilterHit{Rect: uv.Rect(10, 0, 11, 1)}

	tests := []struct {
		x    int
		want float64
	}{
		{10, 0},
		{15, 0.5},
		{20, 1},
		{5, 0},
		{30, 1},
	}
	for _, tt := range tests {
		if got := h.Fraction(uv.Pos(tt.x, 0)); got != tt.want {
			t.Errorf("Fraction(x=%d) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestRenderTrack(t *testing.T) {
	got := stripANSI(renderTrack(10, 2, 6, 2, 6))
	if want := "──●━━━●───"; got != want {
		t.Errorf("renderTrack = %q, want %q", got, want)
	}
}

func TestTrackCol(t *testing.T) {
	b := slider.DefaultBounds
	if got := trackCol(b, b.Min, 40); got != 0 {
		t.Errorf("trackCol(min) = %d, want 0", got)
	}
	if got := trackCol(b, b.Max, 40); got != 39 {
		t.Errorf("trackCol(max) = %d, want 39", got)
	}
}

func TestRenderFilterPanel_FocusMarker(t *testing.T) {
	p := newTestPanel()
	p.SetFocus(filter.ControlApply)
	lines := strings.Split(stripANSI(RenderFilterPanel(p, "", 0, 0).View), "\n")

	marked := 0
	for _, l := range lines {
		if strings.Contains(l, "│ › ") {
			marked++
			if !strings.Contains(l, "Apply Filters") {
				t.Errorf("focus marker on the wrong line: %q", l)
			}
		}
	}
	if marked != 1 {
		t.Errorf("got %d focus markers, want 1", marked)
	}
}
