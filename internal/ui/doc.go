// Package ui provides the rendering for the sustainability dashboard TUI.
//
// # Overview
//
// Components are plain render functions over state owned elsewhere: the
// header controller, the navigation menu and the filter panel hold the
// interactive state, and this package turns a snapshot of it into lipgloss
// strings plus the hit rectangles the app needs to route mouse presses.
//
// # Layout System
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (4 lines desktop, 3 compact)                 │
//	├─────────────────────────────────────────────────────┤
//	│                                                     │
//	│   Body viewport: mission grid, ticker,              │
//	│   spotlight, page footer                            │
//	│                                                     │
//	├─────────────────────────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// Dropdowns, the filter panel, the mobile menu and the scroll-to-top badge
// are drawn over this frame with Overlay.
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
//
// Header: Brand, nav triggers, search, filter button and theme icon on
// desktop; brand, theme icon and menu button in compact mode. Reports the
// rectangle of every trigger and button.
//
// Footer: Context-aware key hints, replaced by a flash message when one is
// set.
//
// Ticker: Infinite marquee over the ticker data, advanced one cell per tick.
//
// # Styles
//
// All styles are package-level lipgloss styles regenerated by SetMode from
// the light or dark palette in theme.go.
package ui
