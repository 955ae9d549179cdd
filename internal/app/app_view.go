package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/gies-analytics/sustaindash/internal/keys"
	"github.com/gies-analytics/sustaindash/internal/ui"
)

// frame is one laid-out screen: the header, every open overlay and the hit
// rectangles mouse routing needs. It is recomputed from state on demand so
// hit testing always matches what View draws.
type frame struct {
	header    ui.HeaderLayout
	dropdown  *ui.DropdownLayout
	dropEntry int
	filter    *ui.FilterLayout
	mobile    *ui.MobileLayout
	badge     uv.Rectangle
	hasBadge  bool
	bodyTop   int
}

func (m *Model) headerState() ui.HeaderState {
	h := m.header
	brand := h.Brand()
	hovered, _ := h.Menu().Hovered()
	return ui.HeaderState{
		Width:      m.width,
		Title:      brand.Title,
		Subtitle:   brand.Subtitle,
		Entries:    h.Menu().Entries(),
		Hovered:    hovered,
		FilterOpen: h.Filter().IsOpen(),
		Dark:       h.IsDark(),
		Compact:    h.Compact(),
		MobileOpen: h.MobileMenuOpen(),
		Search:     m.search.View(),
	}
}

// frame lays out the current state.
func (m *Model) frame() frame {
	f := frame{header: ui.RenderHeader(m.headerState())}
	f.bodyTop = f.header.Height
	overlayY := f.header.Height - 1 // overlays cover the header rule
	menu := m.header.Menu()

	if name, ok := menu.Open(); ok && !m.header.Compact() {
		for i, e := range menu.Entries() {
			if e.Name != name {
				continue
			}
			for _, r := range f.header.Triggers {
				if r.ID == name {
					d := ui.RenderDropdown(e, menu.Row(), max(r.Rect.Min.X-1, 0), overlayY)
					f.dropdown = &d
					f.dropEntry = i
				}
			}
		}
	}

	if m.header.Filter().IsOpen() {
		x := max(m.width-ui.FilterPanelWidth-1, 0)
		fl := ui.RenderFilterPanel(m.header.Filter(), m.filterQuery.View(), x, overlayY)
		f.filter = &fl
	}

	if m.header.MobileMenuOpen() {
		maxHeight := m.height - overlayY - ui.FooterHeight
		ml := ui.RenderMobileMenu(m.mobileRows, m.mobileRow, m.mobileSearch.View(), m.width, maxHeight, 0, overlayY)
		f.mobile = &ml
	}

	if m.watcher.IsFarFromTop() {
		badge := ui.ScrollTopBadge()
		w := lipgloss.Width(badge)
		f.badge = uv.Rect(m.width-w-2, m.height-ui.FooterHeight-2, w, 1)
		f.hasBadge = true
	}
	return f
}

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current frame as a string.
// This is used by the snapshot command and tests.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	m.updateFooterBindings()
	f := m.frame()

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		f.header.View,
		m.body.View(),
		m.footer.View(),
	)

	if f.hasBadge {
		view = ui.Overlay(view, ui.ScrollTopBadge(), f.badge.Min.X, f.badge.Min.Y)
	}
	if f.dropdown != nil {
		view = ui.Overlay(view, f.dropdown.View, f.dropdown.Rect.Min.X, f.dropdown.Rect.Min.Y)
	}
	if f.mobile != nil {
		view = ui.Overlay(view, f.mobile.View, f.mobile.Rect.Min.X, f.mobile.Rect.Min.Y)
	}
	if f.filter != nil {
		view = ui.Overlay(view, f.filter.View, f.filter.Rect.Min.X, f.filter.Rect.Min.Y)
	}

	return ui.PaintBackground(view, m.width, m.height, ui.ColorBg)
}

// updateFooterBindings shows the key hints for whatever has input focus.
func (m *Model) updateFooterBindings() {
	h := m.header
	switch {
	case m.input != InputNone:
		m.footer.SetBindings(keys.Searching())
	case h.Filter().IsOpen():
		m.footer.SetBindings(keys.FilterPanel())
	case h.MobileMenuOpen():
		m.footer.SetBindings(keys.MobileMenuOpen())
	case h.Menu().Focused() >= 0:
		m.footer.SetBindings(keys.Dropdown())
	default:
		m.footer.SetBindings(keys.Page(h.Compact()))
	}
}
