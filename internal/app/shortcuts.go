package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/gies-analytics/sustaindash/internal/keys"
	"github.com/gies-analytics/sustaindash/internal/logger"
)

// Shortcut represents a page-level keyboard shortcut with its handler.
type Shortcut struct {
	Key         string                              // The key binding (e.g., "d", "/")
	Description string                              // Human-readable description
	Category    string                              // Section for grouping in docs
	DesktopOnly bool                                // Hidden in the compact layout
	CompactOnly bool                                // Hidden in the desktop layout
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition   func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts
const (
	CategoryNavigation = "Navigation"
	CategoryView       = "View"
	CategoryGeneral    = "General"
)

// ShortcutRegistry is the central registry of page shortcuts. Keys handled
// inside an open overlay take precedence over these.
var ShortcutRegistry = []Shortcut{
	{
		Key:         keys.Filter,
		Description: "Toggle the filter panel",
		Category:    CategoryNavigation,
		DesktopOnly: true,
		Handler:     shortcutFilter,
	},
	{
		Key:         keys.MobileMenu,
		Description: "Toggle the navigation menu",
		Category:    CategoryNavigation,
		CompactOnly: true,
		Handler:     shortcutMobileMenu,
	},
	{
		Key:         keys.Search,
		Description: "Focus the search box",
		Category:    CategoryNavigation,
		Handler:     shortcutSearch,
	},
	{
		Key:         keys.ScrollTop,
		Description: "Scroll back to the top",
		Category:    CategoryView,
		Handler:     shortcutScrollTop,
		Condition:   func(m *Model) bool { return m.watcher.IsFarFromTop() },
	},
	{
		Key:         keys.Theme,
		Description: "Toggle light and dark theme",
		Category:    CategoryView,
		Handler:     shortcutTheme,
	},
	{
		Key:         keys.Quit,
		Description: "Quit",
		Category:    CategoryGeneral,
		Handler:     shortcutQuit,
	},
}

// isShortcutApplicable checks if a shortcut is applicable given the current
// layout and state.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	compact := m.header.Compact()
	if s.DesktopOnly && compact {
		return false
	}
	if s.CompactOnly && !compact {
		return false
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and executed.
// Returns (model, nil, false) if the shortcut was not found or guards failed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if !m.isShortcutApplicable(s) {
			logger.Debug("Shortcut: guard failed for %q", key)
			return m, nil, false
		}
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

func shortcutFilter(m *Model) (tea.Model, tea.Cmd) {
	m.header.Menu().CloseAll()
	m.header.Filter().Toggle()
	return m, nil
}

func shortcutMobileMenu(m *Model) (tea.Model, tea.Cmd) {
	m.header.ToggleMobileMenu()
	m.mobileRow = 0
	return m, nil
}

func shortcutSearch(m *Model) (tea.Model, tea.Cmd) {
	if m.header.Compact() {
		m.header.OpenMobileMenu()
		return m, m.focusInput(InputMobileSearch)
	}
	m.header.CloseOverlays()
	return m, m.focusInput(InputSearch)
}

func shortcutScrollTop(m *Model) (tea.Model, tea.Cmd) {
	return m, m.scrollToTop()
}

func shortcutTheme(m *Model) (tea.Model, tea.Cmd) {
	// A store failure only downgrades the theme to this session; nothing is shown.
	m.header.ToggleTheme()
	m.refreshBody()
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
