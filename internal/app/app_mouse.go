package app

import (
	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/gies-analytics/sustaindash/internal/filter"
	"github.com/gies-analytics/sustaindash/internal/ui"
)

// handleClick routes a pointer press. The press is published to the pointer
// bus first so an open filter panel can dismiss itself, then dispatched to
// whatever is under the pointer in the frame as it was before the press.
func (m *Model) handleClick(mouse tea.Mouse) tea.Cmd {
	if mouse.Button != tea.MouseLeft {
		return nil
	}
	p := uv.Pos(mouse.X, mouse.Y)
	f := m.frame()

	m.pointerBus.Publish(p)

	// Presses outside a focused text input blur it.
	if m.input != InputNone {
		m.blurInput()
	}

	switch {
	case f.filter != nil && p.In(f.filter.Rect):
		return m.clickFilter(f.filter, p)
	case f.mobile != nil && p.In(f.mobile.Rect):
		return m.clickMobile(f.mobile, p)
	case f.dropdown != nil && p.In(f.dropdown.Rect):
		if row, ok := f.dropdown.RowAt(p); ok {
			if href, ok := m.header.Menu().Activate(f.dropEntry, row); ok {
				return m.navigate(href)
			}
		}
		return nil
	}

	if name, ok := f.header.TriggerAt(p); ok {
		return m.clickTrigger(name)
	}
	if id, ok := f.header.ButtonAt(p); ok {
		return m.clickButton(id)
	}
	if f.hasBadge && p.In(f.badge) {
		return m.scrollToTop()
	}

	// A press anywhere else closes the hover dropdown.
	m.header.Menu().CloseAll()
	return nil
}

func (m *Model) clickTrigger(name string) tea.Cmd {
	menu := m.header.Menu()
	for i, e := range menu.Entries() {
		if e.Name != name {
			continue
		}
		if e.IsGroup() {
			menu.Toggle(name)
			return nil
		}
		if href, ok := menu.Activate(i, -1); ok {
			return m.navigate(href)
		}
	}
	return nil
}

func (m *Model) clickButton(id string) tea.Cmd {
	switch id {
	case ui.RegionFilterButton:
		_, cmd := shortcutFilter(m)
		return cmd
	case ui.RegionThemeButton:
		_, cmd := shortcutTheme(m)
		return cmd
	case ui.RegionMenuButton:
		_, cmd := shortcutMobileMenu(m)
		return cmd
	case ui.RegionSearch:
		m.header.Menu().CloseAll()
		return m.focusInput(InputSearch)
	}
	return nil
}

// clickFilter applies a press inside the open filter panel.
func (m *Model) clickFilter(fl *ui.FilterLayout, p uv.Position) tea.Cmd {
	hit, ok := fl.HitAt(p)
	if !ok {
		return nil
	}
	panel := m.header.Filter()
	sel := panel.Selection()

	switch hit.Kind {
	case ui.HitControl:
		panel.SetFocus(hit.Control)
		switch hit.Control {
		case filter.ControlSearch:
			return m.focusInput(InputFilterQuery)
		case filter.ControlApply:
			return m.applyFilters()
		}
		panel.Activate()
	case ui.HitStatus:
		panel.SetFocus(filter.ControlStatus)
		sel.Status = filter.Status(hit.Value)
	case ui.HitYearMode:
		panel.SetFocus(filter.ControlYearMode)
		panel.SetYearMode(filter.YearMode(hit.Value))
	case ui.HitTrack:
		panel.PointTrack(hit.Fraction(p))
	case ui.HitGoal:
		panel.SetFocus(filter.ControlGoals)
		panel.MoveGoalCursor(hit.Value - panel.GoalCursor())
		sel.ToggleGoal(hit.Value)
	}
	return nil
}

// clickMobile applies a press inside the open mobile menu.
func (m *Model) clickMobile(ml *ui.MobileLayout, p uv.Position) tea.Cmd {
	if p.In(ml.Search) {
		return m.focusInput(InputMobileSearch)
	}
	row, ok := ml.RowAt(p)
	if !ok {
		return nil
	}
	m.mobileRow = row
	if href, ok := m.header.ActivateMobile(m.mobileRows[row]); ok {
		return m.navigate(href)
	}
	return nil
}

// handleMotion turns pointer movement into hover enter and leave events on
// the desktop nav triggers. Moving from a trigger into its dropdown keeps the
// dropdown open.
func (m *Model) handleMotion(mouse tea.Mouse) {
	if m.header.Compact() {
		return
	}
	p := uv.Pos(mouse.X, mouse.Y)
	f := m.frame()
	menu := m.header.Menu()

	if name, ok := f.header.TriggerAt(p); ok {
		menu.Hover(name)
		return
	}
	if f.dropdown != nil && p.In(f.dropdown.Rect) {
		if row, ok := f.dropdown.RowAt(p); ok {
			menu.MoveRow(row - menu.Row())
		}
		return
	}
	if name, ok := menu.Hovered(); ok {
		menu.Leave(name)
	}
}

// handleWheel scrolls the body.
func (m *Model) handleWheel(mouse tea.Mouse) {
	switch mouse.Button {
	case tea.MouseWheelUp:
		m.body.ScrollUp(wheelStep)
	case tea.MouseWheelDown:
		m.body.ScrollDown(wheelStep)
	default:
		return
	}
	m.frames = nil
	m.publishScroll()
}
