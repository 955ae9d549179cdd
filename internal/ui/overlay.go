package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
)

// Overlay draws layer over base with its top-left corner at (x, y). Parts of
// the layer outside base are clipped.
func Overlay(base, layer string, x, y int) string {
	width, height := lipgloss.Width(base), lipgloss.Height(base)
	if width <= 0 || height <= 0 || layer == "" {
		return base
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(base).Draw(scr, area)

	layerArea := uv.Rect(x, y, lipgloss.Width(layer), lipgloss.Height(layer)).Intersect(area)
	if layerArea.Empty() {
		return base
	}
	uv.NewStyledString(layer).Draw(scr, uv.Rect(x, y, layerArea.Max.X-x, layerArea.Max.Y-y))

	return scr.Render()
}

// PaintBackground fills every cell of view that has no background of its own
// with bg, so the whole frame takes the theme's page color.
func PaintBackground(view string, width, height int, bg color.Color) string {
	if width <= 0 || height <= 0 || bg == nil {
		return view
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(view).Draw(scr, area)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := scr.CellAt(x, y)
			if cell == nil || cell.Width == 0 || cell.Style.Bg != nil {
				continue
			}
			cell = cell.Clone()
			cell.Style.Bg = bg
			scr.SetCell(x, y, cell)
		}
	}

	return scr.Render()
}
