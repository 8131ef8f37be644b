// Package palette maps cell states to the colours every renderer uses.
package palette

import (
	"fmt"
	"image/color"

	"astar-visualizer/internal/grid"
)

// Colores en (hex)
const (
	EmptyHex      = "#ffffff"
	OpenHex       = "#00ff00"
	ClosedHex     = "#ffff00"
	BarrierHex    = "#000000"
	StartHex      = "#ffbe6a"
	EndHex        = "#00ffa8"
	PathHex       = "#ff00ff"
	LinesHex      = "#808080"
	BackgroundHex = "#ffffff"
)

var stateHex = map[grid.State]string{
	grid.Empty:   EmptyHex,
	grid.Open:    OpenHex,
	grid.Closed:  ClosedHex,
	grid.Barrier: BarrierHex,
	grid.Start:   StartHex,
	grid.End:     EndHex,
	grid.Path:    PathHex,
}

// Color returns the fill colour of a cell in state s.
// Unknown states are drawn like Empty.
func Color(s grid.State) color.NRGBA {
	h, ok := stateHex[s]
	if !ok {
		h = EmptyHex
	}
	return MustHex(h)
}

// Lines is the colour of the grid lines.
func Lines() color.NRGBA { return MustHex(LinesHex) }

// Background is the board colour behind the cells.
func Background() color.NRGBA { return MustHex(BackgroundHex) }

// MustHex parses s and falls back to white on malformed input.
func MustHex(s string) color.NRGBA {
	c, err := Hex(s)
	if err != nil {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return c
}

// Hex parses a "#rrggbb" colour.
func Hex(s string) (color.NRGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("palette: invalid hex %q", s)
	}
	var rr, gg, bb uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &rr, &gg, &bb); err != nil {
		return color.NRGBA{}, fmt.Errorf("palette: invalid hex %q: %w", s, err)
	}
	return color.NRGBA{R: rr, G: gg, B: bb, A: 255}, nil
}
