// Package ui provides constants for layout calculations.
package ui

// Layout constants
const (
	// DesktopHeaderHeight is brand title, subtitle, nav row and rule.
	DesktopHeaderHeight = 4

	// CompactHeaderHeight is brand title, subtitle and rule.
	CompactHeaderHeight = 3

	// FooterHeight is the height of the key hint bar in lines
	FooterHeight = 1

	// MinTerminalWidth and MinTerminalHeight bound layout math.
	MinTerminalWidth  = 40
	MinTerminalHeight = 12

	// SearchWidth is the width of the desktop search input.
	SearchWidth = 18

	// FilterPanelWidth is the outer width of the filter mega menu.
	FilterPanelWidth = 46

	// DropdownMinWidth is the minimum outer width of a nav dropdown.
	DropdownMinWidth = 26

	// SectionGap is the blank lines between body sections.
	SectionGap = 1
)

// Section anchors in the dashboard body.
const (
	AnchorOverview = "#overview"
	AnchorTicker   = "#ticker"
	AnchorImpact   = "#impact"
)
