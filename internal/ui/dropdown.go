package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/gies-analytics/sustaindash/internal/nav"
)

// DropdownLayout is a rendered nav dropdown positioned on screen.
type DropdownLayout struct {
	View string
	Rect uv.Rectangle   // outer box, border included
	Rows []uv.Rectangle // one per item, in item order
}

// RowAt returns the item index under p.
func (l DropdownLayout) RowAt(p uv.Position) (int, bool) {
	for i, r := range l.Rows {
		if p.In(r) {
			return i, true
		}
	}
	return -1, false
}

// RenderDropdown draws the items of a group entry with row highlighted,
// with the box's top-left corner at (x, y).
func RenderDropdown(e nav.Entry, row, x, y int) DropdownLayout {
	inner := DropdownMinWidth - 2
	for _, it := range e.Items {
		inner = max(inner, lipgloss.Width(it.Name)+2)
	}

	lines := make([]string, len(e.Items))
	rows := make([]uv.Rectangle, len(e.Items))
	for i, it := range e.Items {
		style := DropdownItemStyle
		if i == row {
			style = DropdownSelectedStyle
		}
		lines[i] = style.Width(inner).Render(it.Name)
		rows[i] = uv.Rect(x+1, y+1+i, inner, 1)
	}

	view := DropdownStyle.Render(strings.Join(lines, "\n"))
	return DropdownLayout{
		View: view,
		Rect: uv.Rect(x, y, lipgloss.Width(view), lipgloss.Height(view)),
		Rows: rows,
	}
}
