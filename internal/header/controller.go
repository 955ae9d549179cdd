// Package header composes the header's interactive state: navigation hover,
// the filter panel, the theme preference and the mobile menu.
package header

import (
	"github.com/gies-analytics/sustaindash/internal/filter"
	"github.com/gies-analytics/sustaindash/internal/logger"
	"github.com/gies-analytics/sustaindash/internal/nav"
	"github.com/gies-analytics/sustaindash/internal/theme"
)

// DefaultCompactWidth is the terminal width below which the header switches
// to the compact (mobile) layout.
const DefaultCompactWidth = 100

// Brand is the static logo block.
type Brand struct {
	Title    string
	Subtitle string
}

// Controller owns all transient header state.
type Controller struct {
	theme  *theme.Preference
	menu   *nav.Menu
	filter *filter.Panel

	compactWidth int
	width        int
	compact      bool
	mobileOpen   bool
}

// New creates a controller in the desktop layout. A non-positive
// compactWidth falls back to DefaultCompactWidth.
func New(pref *theme.Preference, menu *nav.Menu, panel *filter.Panel, compactWidth int) *Controller {
	if compactWidth <= 0 {
		compactWidth = DefaultCompactWidth
	}
	return &Controller{
		theme:        pref,
		menu:         menu,
		filter:       panel,
		compactWidth: compactWidth,
	}
}

// Brand returns the logo block text.
func (c *Controller) Brand() Brand {
	return Brand{Title: "Gies Sustainability Dashboard", Subtitle: "College of Business"}
}

// Theme returns the theme preference.
func (c *Controller) Theme() *theme.Preference { return c.theme }

// Menu returns the desktop navigation state.
func (c *Controller) Menu() *nav.Menu { return c.menu }

// Filter returns the filter panel.
func (c *Controller) Filter() *filter.Panel { return c.filter }

// SetWidth records the terminal width and switches layouts when it crosses
// the breakpoint. Entering the desktop layout closes the mobile menu; entering
// the compact layout closes the dropdown and the filter panel, which it has no
// room to show.
func (c *Controller) SetWidth(w int) {
	c.width = w
	compact := w < c.compactWidth
	if compact == c.compact {
		return
	}
	c.compact = compact
	if compact {
		c.menu.CloseAll()
		c.filter.Close()
	} else {
		c.mobileOpen = false
	}
	logger.Debug("Header layout changed: compact=%v width=%d", compact, w)
}

// Width returns the last width passed to SetWidth.
func (c *Controller) Width() int { return c.width }

// Compact reports whether the compact layout is active.
func (c *Controller) Compact() bool { return c.compact }

// MobileMenuOpen reports whether the mobile menu panel is visible.
func (c *Controller) MobileMenuOpen() bool { return c.mobileOpen }

// ToggleMobileMenu flips the mobile menu.
func (c *Controller) ToggleMobileMenu() { c.mobileOpen = !c.mobileOpen }

// OpenMobileMenu shows the mobile menu.
func (c *Controller) OpenMobileMenu() { c.mobileOpen = true }

// CloseMobileMenu hides the mobile menu.
func (c *Controller) CloseMobileMenu() { c.mobileOpen = false }

// ToggleTheme flips the theme through the preference.
func (c *Controller) ToggleTheme() theme.Mode {
	m := c.theme.Toggle()
	logger.Info("Theme toggled: %s (persistent=%v)", m, c.theme.Persistent())
	return m
}

// IsDark reports whether the dark theme is active.
func (c *Controller) IsDark() bool { return c.theme.IsDark() }

// ActivateMobile follows a link from the mobile menu and closes it.
func (c *Controller) ActivateMobile(row nav.FlatRow) (string, bool) {
	if row.Heading || row.Href == "" {
		return "", false
	}
	c.mobileOpen = false
	return row.Href, true
}

// CloseOverlays closes whichever transient surface is on top: filter panel,
// then dropdown, then mobile menu. It reports whether anything was closed.
func (c *Controller) CloseOverlays() bool {
	switch {
	case c.filter.IsOpen():
		c.filter.Close()
	case c.menu.Focused() >= 0:
		c.menu.CloseAll()
	case c.mobileOpen:
		c.mobileOpen = false
	default:
		return false
	}
	return true
}
