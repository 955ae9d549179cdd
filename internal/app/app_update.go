package app

import (
	"fmt"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/gies-analytics/sustaindash/internal/filter"
	"github.com/gies-analytics/sustaindash/internal/keys"
	"github.com/gies-analytics/sustaindash/internal/scroll"
	"github.com/gies-analytics/sustaindash/internal/theme"
	"github.com/gies-analytics/sustaindash/internal/ui"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case tea.BackgroundColorMsg:
		system := theme.Light
		if msg.IsDark() {
			system = theme.Dark
		}
		m.log.Debug("Terminal background reported", "dark", msg.IsDark())
		m.header.Theme().ApplySystem(system)
		m.refreshBody()

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.MouseClickMsg:
		return m, m.handleClick(msg.Mouse())

	case tea.MouseMotionMsg:
		m.handleMotion(msg.Mouse())

	case tea.MouseWheelMsg:
		m.handleWheel(msg.Mouse())

	case TickerTickMsg:
		m.ticker.Advance()
		m.refreshBody()
		return m, m.tickerCmd()

	case ScrollFrameMsg:
		return m, m.nextScrollFrame()

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() {
			return m, ui.FlashTick()
		}
	}
	return m, nil
}

// handleKey routes a key press: focused text inputs first, then the open
// overlay, then page shortcuts.
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == keys.CtrlC {
		return m, tea.Quit
	}

	if m.input != InputNone {
		return m, m.handleInputKey(msg)
	}

	h := m.header
	switch {
	case h.Filter().IsOpen():
		return m, m.handleFilterKey(msg)
	case h.MobileMenuOpen():
		if cmd, ok := m.handleMobileKey(key); ok {
			return m, cmd
		}
	case h.Menu().Focused() >= 0:
		if cmd, ok := m.handleMenuKey(key); ok {
			return m, cmd
		}
	}

	if result, cmd, ok := m.ExecuteShortcut(key); ok {
		return result, cmd
	}

	switch key {
	case keys.Left, keys.Right:
		if !h.Compact() {
			delta := 1
			if key == keys.Left {
				delta = -1
			}
			h.Menu().MoveFocus(delta)
		}
	case keys.Escape:
		h.CloseOverlays()
	default:
		m.scrollBody(key)
	}
	return m, nil
}

// handleInputKey feeds a key to the focused text input.
func (m *Model) handleInputKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case keys.Escape:
		m.inputModel().SetValue("")
		m.syncQuery()
		m.blurInput()
		return nil
	case keys.Enter, keys.Tab:
		m.blurInput()
		if msg.String() == keys.Tab && m.header.Filter().IsOpen() {
			m.header.Filter().FocusNext()
		}
		return nil
	}

	ti := m.inputModel()
	updated, cmd := ti.Update(msg)
	*ti = updated
	m.syncQuery()
	return cmd
}

func (m *Model) inputModel() *textinput.Model {
	switch m.input {
	case InputMobileSearch:
		return &m.mobileSearch
	case InputFilterQuery:
		return &m.filterQuery
	default:
		return &m.search
	}
}

// syncQuery mirrors the filter query input into the panel's selection.
func (m *Model) syncQuery() {
	if m.input == InputFilterQuery {
		m.header.Filter().SetQuery(m.filterQuery.Value())
	}
}

func (m *Model) focusInput(in Input) tea.Cmd {
	m.blurInput()
	m.input = in
	if in == InputFilterQuery {
		m.header.Filter().SetFocus(filter.ControlSearch)
	}
	return m.inputModel().Focus()
}

func (m *Model) blurInput() {
	if m.input == InputNone {
		return
	}
	m.inputModel().Blur()
	m.input = InputNone
}

// handleFilterKey drives the open filter panel from the keyboard.
func (m *Model) handleFilterKey(msg tea.KeyPressMsg) tea.Cmd {
	p := m.header.Filter()
	key := msg.String()

	// Typing while the query box is focused starts editing it. The filter
	// shortcut still closes the panel until the box has been entered.
	if p.Focus() == filter.ControlSearch && msg.Text != "" && key != keys.Space && key != keys.Filter {
		cmd := m.focusInput(InputFilterQuery)
		return tea.Batch(cmd, m.handleInputKey(msg))
	}

	switch key {
	case keys.Escape, keys.Filter:
		p.Close()
	case keys.CtrlA:
		return m.applyFilters()
	case keys.Tab, keys.Down:
		if key == keys.Down && p.Focus() == filter.ControlGoals && p.GoalCursor()+filter.GoalColumns <= filter.GoalCount {
			p.MoveGoalCursor(filter.GoalColumns)
			return nil
		}
		p.FocusNext()
	case keys.ShiftTab, keys.Up:
		if key == keys.Up && p.Focus() == filter.ControlGoals && p.GoalCursor() > filter.GoalColumns {
			p.MoveGoalCursor(-filter.GoalColumns)
			return nil
		}
		p.FocusPrev()
	case keys.Left:
		p.Adjust(-1)
	case keys.Right:
		p.Adjust(1)
	case keys.Home, keys.End:
		m.jumpYear(key == keys.End)
	case keys.Space, keys.Enter:
		switch p.Focus() {
		case filter.ControlSearch:
			return m.focusInput(InputFilterQuery)
		case filter.ControlApply:
			return m.applyFilters()
		}
		p.Activate()
	}
	return nil
}

// jumpYear moves the focused year handle to the end of the domain.
func (m *Model) jumpYear(toEnd bool) {
	sel := m.header.Filter().Selection()
	b := sel.Range.Bounds()
	target := b.Min
	if toEnd {
		target = b.Max
	}
	switch m.header.Filter().Focus() {
	case filter.ControlLow:
		sel.Range.SetLow(target)
	case filter.ControlHigh:
		sel.Range.SetHigh(target)
	case filter.ControlSingle:
		sel.Single.Set(target)
	}
}

func (m *Model) applyFilters() tea.Cmd {
	snap := m.header.Filter().Apply()
	m.log.Info("Filter selection applied", "status", snap.Status, "goals", len(snap.Goals))
	return m.ShowFlashSuccess("Filters applied")
}

// handleMobileKey drives the open mobile menu.
func (m *Model) handleMobileKey(key string) (tea.Cmd, bool) {
	switch key {
	case keys.Up:
		m.mobileRow = max(m.mobileRow-1, 0)
	case keys.Down:
		m.mobileRow = min(m.mobileRow+1, len(m.mobileRows)-1)
	case keys.Enter:
		if href, ok := m.header.ActivateMobile(m.mobileRows[m.mobileRow]); ok {
			return m.navigate(href), true
		}
	case keys.Escape:
		m.header.CloseMobileMenu()
	case keys.Search:
		return m.focusInput(InputMobileSearch), true
	default:
		return nil, false
	}
	return nil, true
}

// handleMenuKey drives the keyboard-focused desktop menu.
func (m *Model) handleMenuKey(key string) (tea.Cmd, bool) {
	menu := m.header.Menu()
	_, open := menu.Open()
	switch key {
	case keys.Down, keys.Up:
		if !open {
			return nil, false
		}
		if key == keys.Down {
			menu.MoveRow(1)
		} else {
			menu.MoveRow(-1)
		}
	case keys.Enter:
		if href, ok := menu.ActivateFocused(); ok {
			return m.navigate(href), true
		}
		menu.MoveRow(1)
	case keys.Escape:
		menu.CloseAll()
	default:
		return nil, false
	}
	return nil, true
}

// scrollBody handles the page scrolling keys.
func (m *Model) scrollBody(key string) {
	switch key {
	case keys.Up:
		m.body.ScrollUp(1)
	case keys.Down:
		m.body.ScrollDown(1)
	case keys.PgUp:
		m.body.PageUp()
	case keys.PgDown, keys.Space:
		m.body.PageDown()
	case keys.Home:
		m.body.GotoTop()
	case keys.End:
		m.body.GotoBottom()
	default:
		return
	}
	m.frames = nil
	m.publishScroll()
}

// publishScroll reports the body offset, in scroll units, to subscribers.
func (m *Model) publishScroll() {
	m.scrollBus.Publish(m.body.YOffset() * m.cfg.Scroll.LineUnits)
}

// scrollToTop starts the eased scroll animation. Repeated requests while it
// runs are ignored.
func (m *Model) scrollToTop() tea.Cmd {
	if len(m.frames) > 0 {
		return nil
	}
	m.frames = scroll.ScrollToTop(m.body.YOffset())
	if len(m.frames) == 0 {
		return nil
	}
	m.log.Debug("Scroll to top", "from", m.body.YOffset(), "frames", len(m.frames))
	return scrollFrameCmd()
}

func (m *Model) nextScrollFrame() tea.Cmd {
	if len(m.frames) == 0 {
		return nil
	}
	m.body.SetYOffset(m.frames[0])
	m.frames = m.frames[1:]
	m.publishScroll()
	if len(m.frames) == 0 {
		return nil
	}
	return scrollFrameCmd()
}

// navigate follows an in-page link.
func (m *Model) navigate(href string) tea.Cmd {
	line, ok := m.bodyLayout.Line(href)
	if !ok {
		m.log.Debug("Link target not on this page", "href", href)
		return m.ShowFlashInfo(fmt.Sprintf("%s is not part of this dashboard", href))
	}
	m.frames = nil
	m.body.SetYOffset(line)
	m.publishScroll()
	return nil
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	m.header.SetWidth(m.width)

	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height, m.header.Compact())
	width, _, _, bodyHeight := ctx.Snapshot()

	m.footer.SetWidth(width)
	m.body.SetWidth(width)
	m.body.SetHeight(bodyHeight)
	m.mobileSearch.SetWidth(max(width-10, 10))
	m.refreshBody()
}

// refreshBody re-renders the body content, keeping the scroll position.
func (m *Model) refreshBody() {
	if m.width == 0 {
		return
	}
	offset := m.body.YOffset()
	m.bodyLayout = ui.RenderBody(m.content, m.ticker, m.body.Width(), m.year)
	m.body.SetContent(m.bodyLayout.View)
	m.body.SetYOffset(offset)
	// A taller window or shorter content clamps the offset.
	if m.body.YOffset() != offset {
		m.publishScroll()
	}
}
