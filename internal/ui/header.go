package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mattn/go-runewidth"

	"github.com/gies-analytics/sustaindash/internal/clickout"
	"github.com/gies-analytics/sustaindash/internal/nav"
)

// Header hit region IDs.
const (
	RegionFilterButton = "filter-button"
	RegionThemeButton  = "theme-button"
	RegionMenuButton   = "menu-button"
	RegionSearch       = "search"
)

// HeaderState is everything the header needs to draw one frame.
type HeaderState struct {
	Width      int
	Title      string
	Subtitle   string
	Entries    []nav.Entry
	Hovered    string // hovered nav entry, for the underline
	FilterOpen bool
	Dark       bool
	Compact    bool
	MobileOpen bool
	Search     string // rendered search input, desktop only
}

// HeaderLayout is a rendered header plus its hit regions in screen cells.
type HeaderLayout struct {
	View     string
	Height   int
	Triggers []clickout.Region // one per nav entry, ID is the entry name
	Buttons  []clickout.Region // filter, theme, menu and search boxes
}

// Button returns the rectangle of the button with id.
func (l HeaderLayout) Button(id string) (uv.Rectangle, bool) {
	for _, r := range l.Buttons {
		if r.ID == id {
			return r.Rect, true
		}
	}
	return uv.Rectangle{}, false
}

// TriggerAt returns the nav entry under p.
func (l HeaderLayout) TriggerAt(p uv.Position) (string, bool) {
	for _, r := range l.Triggers {
		if r.Contains(p) {
			return r.ID, true
		}
	}
	return "", false
}

// ButtonAt returns the button under p.
func (l HeaderLayout) ButtonAt(p uv.Position) (string, bool) {
	for _, r := range l.Buttons {
		if r.Contains(p) {
			return r.ID, true
		}
	}
	return "", false
}

// segment is a styled piece of a header row with an optional hit ID.
type segment struct {
	text string
	id   string
}

func (s segment) width() int {
	return lipgloss.Width(s.text)
}

// NavLabel is the trigger text for an entry.
func NavLabel(e nav.Entry) string {
	if e.IsGroup() {
		return e.Name + " ▾"
	}
	return e.Name
}

// themeIcon shows the mode a click switches to.
func themeIcon(dark bool) string {
	if dark {
		return "☀"
	}
	return "☾"
}

// RenderHeader draws the header for s.
func RenderHeader(s HeaderState) HeaderLayout {
	width := max(s.Width, MinTerminalWidth)
	mark := BrandMarkStyle.Render("I")
	indent := lipgloss.Width(mark) + 2

	var right []segment
	if s.Compact {
		menu := "☰"
		if s.MobileOpen {
			menu = "✕"
		}
		right = []segment{
			{IconButtonStyle.Render(themeIcon(s.Dark)), RegionThemeButton},
			{IconButtonStyle.Render(menu), RegionMenuButton},
		}
	} else {
		filterStyle := IconButtonStyle
		if s.FilterOpen {
			filterStyle = IconActiveStyle
		}
		right = []segment{
			{filterStyle.Render("▽ Filters"), RegionFilterButton},
			{IconButtonStyle.Render(themeIcon(s.Dark)), RegionThemeButton},
		}
		search := SearchBoxStyle.Render("⌕ " + s.Search)
		if indent+minTitleWidth+lipgloss.Width(search)+segmentsWidth(right)+len(right)+1 <= width {
			right = append([]segment{{search, RegionSearch}}, right...)
		}
	}

	rightWidth := segmentsWidth(right) + len(right) // one space after each
	titleRoom := max(width-indent-rightWidth-1, 1)
	title := BrandTitleStyle.Render(runewidth.Truncate(s.Title, titleRoom, "…"))

	layout := HeaderLayout{}

	// Row 0: mark, title and the right-hand cluster.
	row0 := " " + mark + " " + title
	x := width - rightWidth
	row0 += strings.Repeat(" ", max(x-lipgloss.Width(row0), 0))
	for _, seg := range right {
		layout.Buttons = append(layout.Buttons, clickout.Region{ID: seg.id, Rect: uv.Rect(x, 0, seg.width(), 1)})
		row0 += seg.text + " "
		x += seg.width() + 1
	}

	subtitle := strings.Repeat(" ", indent) + BrandSubtitleStyle.Render(strings.ToUpper(s.Subtitle))
	rows := []string{row0, subtitle}

	if !s.Compact {
		row := strings.Repeat(" ", indent)
		x := indent
		for i, e := range s.Entries {
			style := NavItemStyle
			if e.Name == s.Hovered {
				style = NavItemHoverStyle
			}
			label := style.Render(NavLabel(e))
			w := lipgloss.Width(label)
			gap := 0
			if i > 0 {
				gap = 3
			}
			// Triggers that would run past the edge are left out whole.
			if x+gap+w > width {
				break
			}
			row += strings.Repeat(" ", gap)
			x += gap
			layout.Triggers = append(layout.Triggers, clickout.Region{ID: e.Name, Rect: uv.Rect(x, 2, w, 1)})
			row += label
			x += w
		}
		rows = append(rows, row)
	}

	rows = append(rows, HeaderRuleStyle.Render(strings.Repeat("─", width)))
	layout.View = strings.Join(rows, "\n")
	layout.Height = len(rows)
	return layout
}

// minTitleWidth keeps the brand readable before the search box is dropped.
const minTitleWidth = 29

func segmentsWidth(segs []segment) int {
	w := 0
	for _, s := range segs {
		w += s.width()
	}
	return w
}
