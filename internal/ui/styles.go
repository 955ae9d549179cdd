package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors of the active palette.
var (
	ColorBg           color.Color
	ColorSurface      color.Color
	ColorSurfaceAlt   color.Color
	ColorText         color.Color
	ColorTextMuted    color.Color
	ColorTextSubtle   color.Color
	ColorBorder       color.Color
	ColorAccent       color.Color
	ColorAccentStrong color.Color
	ColorAccentSoft   color.Color
	ColorOnAccent     color.Color
	ColorWarning      color.Color
	ColorError        color.Color
)

// Header styles
var (
	BrandTitleStyle    lipgloss.Style
	BrandSubtitleStyle lipgloss.Style
	BrandMarkStyle     lipgloss.Style
	NavItemStyle       lipgloss.Style
	NavItemHoverStyle  lipgloss.Style
	IconButtonStyle    lipgloss.Style
	IconActiveStyle    lipgloss.Style
	SearchBoxStyle     lipgloss.Style
	HeaderRuleStyle    lipgloss.Style
)

// Overlay styles (dropdown, filter panel, mobile menu)
var (
	DropdownStyle         lipgloss.Style
	DropdownItemStyle     lipgloss.Style
	DropdownSelectedStyle lipgloss.Style
	PanelStyle            lipgloss.Style
	PanelTitleStyle       lipgloss.Style
	PanelLinkStyle        lipgloss.Style
	SectionLabelStyle     lipgloss.Style
	FocusMarkerStyle      lipgloss.Style
	ToggleOnStyle         lipgloss.Style
	ToggleOffStyle        lipgloss.Style
	TabActiveStyle        lipgloss.Style
	TabInactiveStyle      lipgloss.Style
	TrackStyle            lipgloss.Style
	TrackFillStyle        lipgloss.Style
	HandleStyle           lipgloss.Style
	YearLabelStyle        lipgloss.Style
	YearValueStyle        lipgloss.Style
	GoalStyle             lipgloss.Style
	GoalSelectedStyle     lipgloss.Style
	GoalCursorStyle       lipgloss.Style
	ApplyButtonStyle      lipgloss.Style
	MobileHeadingStyle    lipgloss.Style
	MobileLinkStyle       lipgloss.Style
)

// Body styles
var (
	MissionStyle       lipgloss.Style
	MissionBadgeStyle  lipgloss.Style
	MissionHighlight   lipgloss.Style
	CardStyle          lipgloss.Style
	CardTitleStyle     lipgloss.Style
	CardValueStyle     lipgloss.Style
	CardSubtextStyle   lipgloss.Style
	TickerLabelStyle   lipgloss.Style
	TickerValueStyle   lipgloss.Style
	TickerDotStyle     lipgloss.Style
	SectionTitleStyle  lipgloss.Style
	SectionSubStyle    lipgloss.Style
	SDGBadgeStyle      lipgloss.Style
	CaseStudyLinkStyle lipgloss.Style
	PageFooterStyle    lipgloss.Style
	ScrollTopStyle     lipgloss.Style
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
	FooterSepStyle  lipgloss.Style
)

// regenerateStyles updates all style variables based on the current palette
func regenerateStyles() {
	p := currentPalette

	ColorBg = lipgloss.Color(p.Bg)
	ColorSurface = lipgloss.Color(p.Surface)
	ColorSurfaceAlt = lipgloss.Color(p.SurfaceAlt)
	ColorText = lipgloss.Color(p.Text)
	ColorTextMuted = lipgloss.Color(p.TextMuted)
	ColorTextSubtle = lipgloss.Color(p.TextSubtle)
	ColorBorder = lipgloss.Color(p.Border)
	ColorAccent = lipgloss.Color(p.Accent)
	ColorAccentStrong = lipgloss.Color(p.AccentStrong)
	ColorAccentSoft = lipgloss.Color(p.AccentSoft)
	ColorOnAccent = lipgloss.Color(p.OnAccent)
	ColorWarning = lipgloss.Color(p.Amber)
	ColorError = lipgloss.Color("#EF4444")

	// Header
	BrandTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	BrandSubtitleStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)
	BrandMarkStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#E84A27")).
		Padding(0, 1)
	NavItemStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)
	NavItemHoverStyle = lipgloss.NewStyle().Foreground(ColorAccentStrong).Underline(true)
	IconButtonStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Padding(0, 1)
	IconActiveStyle = lipgloss.NewStyle().
		Foreground(ColorAccentStrong).
		Background(ColorAccentSoft).
		Padding(0, 1)
	SearchBoxStyle = lipgloss.NewStyle().Background(ColorSurfaceAlt).Padding(0, 1)
	HeaderRuleStyle = lipgloss.NewStyle().Foreground(ColorBorder)

	// Overlays
	DropdownStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Background(ColorSurface)
	DropdownItemStyle = lipgloss.NewStyle().Foreground(ColorText).Padding(0, 1)
	DropdownSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorAccentStrong).
		Background(ColorSurfaceAlt).
		Padding(0, 1)
	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Background(ColorSurface).
		Padding(0, 1)
	PanelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	PanelLinkStyle = lipgloss.NewStyle().Foreground(ColorAccentStrong)
	SectionLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorTextSubtle)
	FocusMarkerStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	ToggleOnStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	ToggleOffStyle = lipgloss.NewStyle().Foreground(ColorTextSubtle)
	TabActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorSurface).
		Padding(0, 2)
	TabInactiveStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Background(ColorSurfaceAlt).
		Padding(0, 2)
	TrackStyle = lipgloss.NewStyle().Foreground(ColorBorder)
	TrackFillStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	HandleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	YearLabelStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)
	YearValueStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccentStrong)
	GoalStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Background(ColorSurfaceAlt).
		Width(4).
		Align(lipgloss.Center)
	GoalSelectedStyle = GoalStyle.
		Bold(true).
		Foreground(ColorOnAccent).
		Background(ColorAccent)
	GoalCursorStyle = GoalStyle.Underline(true).Foreground(ColorText)
	ApplyButtonStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorOnAccent).
		Background(ColorAccent).
		Align(lipgloss.Center)
	MobileHeadingStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorTextSubtle)
	MobileLinkStyle = lipgloss.NewStyle().Foreground(ColorText)

	// Body
	MissionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.MissionFg)).
		Background(lipgloss.Color(p.Mission)).
		Padding(1, 3)
	MissionBadgeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Emerald)).
		Background(lipgloss.Color(p.Mission))
	MissionHighlight = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(p.Emerald)).
		Background(lipgloss.Color(p.Mission))
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)
	CardTitleStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)
	CardValueStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	CardSubtextStyle = lipgloss.NewStyle().Foreground(ColorTextSubtle)
	TickerLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorTextSubtle)
	TickerValueStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	TickerDotStyle = lipgloss.NewStyle().Foreground(ColorBorder)
	SectionTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	SectionSubStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)
	SDGBadgeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccentStrong).
		Background(ColorAccentSoft).
		Padding(0, 1)
	CaseStudyLinkStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccentStrong)
	PageFooterStyle = lipgloss.NewStyle().Foreground(ColorTextSubtle)
	ScrollTopStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorOnAccent).
		Background(ColorAccent).
		Padding(0, 1)

	// Footer
	FooterStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Padding(0, 1)
	FooterKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccentStrong)
	FooterDescStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)
	FooterSepStyle = lipgloss.NewStyle().Foreground(ColorBorder)
}
