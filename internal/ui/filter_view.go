package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/gies-analytics/sustaindash/internal/filter"
	"github.com/gies-analytics/sustaindash/internal/slider"
)

// FilterHitKind says how a press on a filter panel element is interpreted.
type FilterHitKind int

const (
	HitControl  FilterHitKind = iota // focus the control, then activate it
	HitStatus                        // Value is a filter.Status
	HitYearMode                      // Value is a filter.YearMode
	HitTrack                         // press position picks a year
	HitGoal                          // Value is the goal number
)

// FilterHit is a clickable element of the rendered panel in screen cells.
type FilterHit struct {
	Kind    FilterHitKind
	Control filter.Control
	Value   int
	Rect    uv.Rectangle
}

// Fraction returns how far along the hit p lies, 0 at the left edge and 1
// at the right. Used for track presses.
func (h FilterHit) Fraction(p uv.Position) float64 {
	if h.Rect.Dx() <= 1 {
		return 0
	}
	f := float64(p.X-h.Rect.Min.X) / float64(h.Rect.Dx()-1)
	return min(max(f, 0), 1)
}

// FilterLayout is the rendered filter panel.
type FilterLayout struct {
	View string
	Rect uv.Rectangle
	Hits []FilterHit
}

// HitAt returns the element under p.
func (l FilterLayout) HitAt(p uv.Position) (FilterHit, bool) {
	for _, h := range l.Hits {
		if p.In(h.Rect) {
			return h, true
		}
	}
	return FilterHit{}, false
}

// Hit returns the first element matching kind and value.
func (l FilterLayout) Hit(kind FilterHitKind, control filter.Control, value int) (FilterHit, bool) {
	for _, h := range l.Hits {
		if h.Kind == kind && h.Control == control && h.Value == value {
			return h, true
		}
	}
	return FilterHit{}, false
}

// panelBuilder accumulates panel lines and the hits on them. Columns are
// relative to the content area; x and y locate that area on screen.
type panelBuilder struct {
	x, y  int
	width int
	focus filter.Control
	lines []string
	hits  []FilterHit
}

func (b *panelBuilder) add(s string) int {
	b.lines = append(b.lines, s)
	return len(b.lines) - 1
}

func (b *panelBuilder) hit(kind FilterHitKind, c filter.Control, value, row, col, width int) {
	b.hits = append(b.hits, FilterHit{
		Kind:    kind,
		Control: c,
		Value:   value,
		Rect:    uv.Rect(b.x+col, b.y+row, width, 1),
	})
}

// gutter marks the focused control's line.
func (b *panelBuilder) gutter(controls ...filter.Control) string {
	for _, c := range controls {
		if c == b.focus {
			return FocusMarkerStyle.Render("›") + " "
		}
	}
	return "  "
}

// gutterWidth is the width of the focus marker column.
const gutterWidth = 2

// goalCellWidth is one goal tile plus its gap.
const goalCellWidth = 5

// RenderFilterPanel draws p with its top-left corner at (x, y). search is the
// rendered query input.
func RenderFilterPanel(p *filter.Panel, search string, x, y int) FilterLayout {
	sel := p.Selection()
	content := FilterPanelWidth - 4
	body := content - gutterWidth
	b := &panelBuilder{x: x + 2, y: y + 1, width: content, focus: p.Focus()}

	// Title with the Clear All link on the right.
	clear := b.gutter(filter.ControlClear) + PanelLinkStyle.Render("Clear All")
	row := b.add(spread(PanelTitleStyle.Render("Filters"), clear, content))
	b.hit(HitControl, filter.ControlClear, 0, row, content-lipgloss.Width(clear), lipgloss.Width(clear))

	row = b.add(b.gutter(filter.ControlSearch) + SearchBoxStyle.Width(body).Render("⌕ "+search))
	b.hit(HitControl, filter.ControlSearch, 0, row, gutterWidth, body)

	b.add("")
	b.add(SectionLabelStyle.Render("JOURNAL CATEGORIES"))
	row = b.add(b.gutter(filter.ControlBusinessOnly) + spread("Business Journals Only", switchView(sel.BusinessOnly), body))
	b.hit(HitControl, filter.ControlBusinessOnly, 0, row, gutterWidth, body)
	row = b.add(b.gutter(filter.ControlTopJournals) + spread("Top Journals Only (UTD/FT)", switchView(sel.TopJournalsOnly), body))
	b.hit(HitControl, filter.ControlTopJournals, 0, row, gutterWidth, body)

	b.add("")
	b.add(SectionLabelStyle.Render("SUSTAINABILITY STATUS"))
	line := b.gutter(filter.ControlStatus)
	row = len(b.lines)
	col := gutterWidth
	for i, s := range filter.Statuses {
		if i > 0 {
			line += "  "
			col += 2
		}
		opt := "○ " + s.String()
		style := ToggleOffStyle
		if sel.Status == s {
			opt = "◉ " + s.String()
			style = ToggleOnStyle
		}
		w := lipgloss.Width(opt)
		b.hit(HitStatus, filter.ControlStatus, int(s), row, col, w)
		line += style.Render(opt)
		col += w
	}
	b.add(line)

	b.add("")
	b.add(SectionLabelStyle.Render("PUBLICATION YEAR"))
	line = b.gutter(filter.ControlYearMode)
	row = len(b.lines)
	col = gutterWidth
	for _, m := range []filter.YearMode{filter.RangeMode, filter.SingleMode} {
		style := TabInactiveStyle
		if sel.YearMode == m {
			style = TabActiveStyle
		}
		tab := style.Render(tabLabel(m))
		w := lipgloss.Width(tab)
		b.hit(HitYearMode, filter.ControlYearMode, int(m), row, col, w)
		line += tab
		col += w
	}
	b.add(line)

	var track string
	if sel.YearMode == filter.SingleMode {
		pos := trackCol(sel.Single.Bounds(), sel.Single.Value(), body)
		track = renderTrack(body, 0, pos, pos)
	} else {
		lo := trackCol(sel.Range.Bounds(), sel.Range.Low(), body)
		hi := trackCol(sel.Range.Bounds(), sel.Range.High(), body)
		track = renderTrack(body, lo, hi, lo, hi)
	}
	row = b.add(b.gutter(filter.ControlLow, filter.ControlHigh, filter.ControlSingle) + track)
	b.hit(HitTrack, filter.ControlYearMode, 0, row, gutterWidth, body)
	b.add("  " + yearValues(sel, p.Focus(), body))

	b.add("")
	b.add(SectionLabelStyle.Render("DEPARTMENT"))
	row = b.add(b.gutter(filter.ControlDepartment) + "‹ " + YearValueStyle.Render(sel.DepartmentName()) + " ›")
	b.hit(HitControl, filter.ControlDepartment, 0, row, gutterWidth, body)

	b.add("")
	goalsLabel := "UN SUSTAINABILITY GOALS"
	if n := len(sel.SelectedGoals()); n > 0 {
		goalsLabel += fmt.Sprintf(" (%d)", n)
	}
	b.add(SectionLabelStyle.Render(goalsLabel))
	for start := 1; start <= filter.GoalCount; start += filter.GoalColumns {
		line := "  "
		if start == 1 {
			line = b.gutter(filter.ControlGoals)
		}
		row := len(b.lines)
		for n := start; n < start+filter.GoalColumns && n <= filter.GoalCount; n++ {
			i := n - start
			cell := goalStyle(sel.HasGoal(n), p.Focus() == filter.ControlGoals && p.GoalCursor() == n).Render(fmt.Sprint(n))
			line += cell + " "
			b.hit(HitGoal, filter.ControlGoals, n, row, gutterWidth+i*goalCellWidth, goalCellWidth-1)
		}
		b.add(line)
	}

	b.add("")
	row = b.add(b.gutter(filter.ControlApply) + ApplyButtonStyle.Width(body).Render("Apply Filters"))
	b.hit(HitControl, filter.ControlApply, 0, row, gutterWidth, body)

	view := PanelStyle.Render(strings.Join(b.lines, "\n"))
	return FilterLayout{
		View: view,
		Rect: uv.Rect(x, y, lipgloss.Width(view), lipgloss.Height(view)),
		Hits: b.hits,
	}
}

func tabLabel(m filter.YearMode) string {
	if m == filter.SingleMode {
		return "Single"
	}
	return "Range"
}

func switchView(on bool) string {
	if on {
		return ToggleOnStyle.Render("━━●")
	}
	return ToggleOffStyle.Render("●──")
}

func goalStyle(selected, cursor bool) lipgloss.Style {
	switch {
	case selected && cursor:
		return GoalSelectedStyle.Underline(true)
	case selected:
		return GoalSelectedStyle
	case cursor:
		return GoalCursorStyle
	default:
		return GoalStyle
	}
}

// trackCol maps a year to a column of a track width cells wide.
func trackCol(b slider.Bounds, v, width int) int {
	return (b.PercentOf(v)*(width-1) + 50) / 100
}

// renderTrack draws a width-cell track with the span [from, to] filled and a
// handle at each of handles.
func renderTrack(width, from, to int, handles ...int) string {
	isHandle := make(map[int]bool, len(handles))
	for _, h := range handles {
		isHandle[h] = true
	}

	var sb strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case isHandle[i]:
			sb.WriteString(HandleStyle.Render("●"))
		case i >= from && i <= to:
			sb.WriteString(TrackFillStyle.Render("━"))
		default:
			sb.WriteString(TrackStyle.Render("─"))
		}
	}
	return sb.String()
}

func yearValue(v int, focused bool) string {
	if focused {
		return YearValueStyle.Underline(true).Render(fmt.Sprint(v))
	}
	return YearValueStyle.Render(fmt.Sprint(v))
}

// yearValues is the caption under the track.
func yearValues(sel *filter.Selection, focus filter.Control, width int) string {
	if sel.YearMode == filter.SingleMode {
		b := sel.Single.Bounds()
		mid := YearLabelStyle.Render("Year ") + yearValue(sel.Single.Value(), focus == filter.ControlSingle)
		left := YearLabelStyle.Render(fmt.Sprint(b.Min))
		right := YearLabelStyle.Render(fmt.Sprint(b.Max))
		gap := max(width-lipgloss.Width(left)-lipgloss.Width(mid)-lipgloss.Width(right), 2)
		return left + strings.Repeat(" ", gap/2) + mid + strings.Repeat(" ", gap-gap/2) + right
	}
	left := YearLabelStyle.Render("From ") + yearValue(sel.Range.Low(), focus == filter.ControlLow)
	right := YearLabelStyle.Render("To ") + yearValue(sel.Range.High(), focus == filter.ControlHigh)
	return spread(left, right, width)
}

// spread places left and right at the edges of a width-cell line.
func spread(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
