package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/gies-analytics/sustaindash/internal/nav"
)

// MobileLayout is the rendered compact-mode menu.
type MobileLayout struct {
	View   string
	Rect   uv.Rectangle
	Search uv.Rectangle
	rows   map[int]uv.Rectangle // flat row index to its visible line
}

// RowAt returns the flat row index under p. Rows scrolled out of view are
// never hit.
func (l MobileLayout) RowAt(p uv.Position) (int, bool) {
	for i, r := range l.rows {
		if p.In(r) {
			return i, true
		}
	}
	return -1, false
}

// Row returns the visible line of flat row i.
func (l MobileLayout) Row(i int) (uv.Rectangle, bool) {
	r, ok := l.rows[i]
	return r, ok
}

// RenderMobileMenu draws the flattened navigation tree under a search input.
// The box spans width cells from (x, y) and shows at most maxHeight lines,
// scrolling so cursor stays visible.
func RenderMobileMenu(rows []nav.FlatRow, cursor int, search string, width, maxHeight, x, y int) MobileLayout {
	inner := max(width-4, 10) // border and one cell of padding each side
	visible := max(maxHeight-3, 1)

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := min(start+visible, len(rows))

	lines := []string{SearchBoxStyle.Width(inner).Render("⌕ " + search)}
	layout := MobileLayout{
		Search: uv.Rect(x+2, y+1, inner, 1),
		rows:   make(map[int]uv.Rectangle, end-start),
	}
	for i := start; i < end; i++ {
		r := rows[i]
		label := strings.Repeat("  ", r.Depth) + r.Name
		var style lipgloss.Style
		switch {
		case i == cursor:
			style = DropdownSelectedStyle.Padding(0)
		case r.Heading:
			style = MobileHeadingStyle
		default:
			style = MobileLinkStyle
		}
		if r.Heading {
			label = strings.ToUpper(label)
		}
		lines = append(lines, style.Width(inner).Render(label))
		layout.rows[i] = uv.Rect(x+2, y+2+i-start, inner, 1)
	}

	layout.View = PanelStyle.Render(strings.Join(lines, "\n"))
	layout.Rect = uv.Rect(x, y, lipgloss.Width(layout.View), lipgloss.Height(layout.View))
	return layout
}
