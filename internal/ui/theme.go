package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/gies-analytics/sustaindash/internal/theme"
)

// Palette is the color set for one theme mode.
type Palette struct {
	Name string

	Bg         string // page background
	Surface    string // cards, panels, dropdowns
	SurfaceAlt string // inputs, inactive chips, slider track
	Text       string
	TextMuted  string
	TextSubtle string // section labels, separators
	Border     string

	Accent       string // emerald highlight
	AccentStrong string // hovered links, selected values
	AccentSoft   string // active filter button background
	OnAccent     string // text on Accent

	Mission   string // mission card background
	MissionFg string

	Blue    string
	Purple  string
	Amber   string
	Emerald string
}

// LightPalette is the slate/emerald light theme.
var LightPalette = Palette{
	Name:         "light",
	Bg:           "#F8FAFC",
	Surface:      "#FFFFFF",
	SurfaceAlt:   "#F1F5F9",
	Text:         "#0F172A",
	TextMuted:    "#64748B",
	TextSubtle:   "#94A3B8",
	Border:       "#E2E8F0",
	Accent:       "#10B981",
	AccentStrong: "#047857",
	AccentSoft:   "#D1FAE5",
	OnAccent:     "#FFFFFF",
	Mission:      "#0F172A",
	MissionFg:    "#FFFFFF",
	Blue:         "#3B82F6",
	Purple:       "#A855F7",
	Amber:        "#F59E0B",
	Emerald:      "#10B981",
}

// DarkPalette is the slate/emerald dark theme.
var DarkPalette = Palette{
	Name:         "dark",
	Bg:           "#020617",
	Surface:      "#0F172A",
	SurfaceAlt:   "#1E293B",
	Text:         "#F1F5F9",
	TextMuted:    "#94A3B8",
	TextSubtle:   "#64748B",
	Border:       "#1E293B",
	Accent:       "#10B981",
	AccentStrong: "#34D399",
	AccentSoft:   "#064E3B",
	OnAccent:     "#FFFFFF",
	Mission:      "#1E293B",
	MissionFg:    "#F8FAFC",
	Blue:         "#60A5FA",
	Purple:       "#C084FC",
	Amber:        "#FBBF24",
	Emerald:      "#34D399",
}

var (
	currentMode    = theme.Light
	currentPalette = LightPalette
)

// SetMode switches the palette and regenerates every style.
func SetMode(m theme.Mode) {
	currentMode = m
	if m == theme.Dark {
		currentPalette = DarkPalette
	} else {
		currentPalette = LightPalette
	}
	regenerateStyles()
}

// CurrentMode returns the active mode.
func CurrentMode() theme.Mode {
	return currentMode
}

// CurrentPalette returns the active palette.
func CurrentPalette() Palette {
	return currentPalette
}

// AccentColor maps a content accent name to the palette color.
func AccentColor(name string) color.Color {
	p := currentPalette
	switch name {
	case "blue":
		return lipgloss.Color(p.Blue)
	case "purple":
		return lipgloss.Color(p.Purple)
	case "amber":
		return lipgloss.Color(p.Amber)
	default:
		return lipgloss.Color(p.Emerald)
	}
}

func init() {
	regenerateStyles()
}
