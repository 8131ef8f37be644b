// Package snapshot renders a grid frame to an image, mainly to keep the
// final state of a headless run.
package snapshot

import (
	"errors"
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"astar-visualizer/internal/grid"
	"astar-visualizer/internal/palette"
)

// ErrBadExtent indicates an image side too small to give every cell a pixel.
var ErrBadExtent = errors.New("snapshot: extent must be at least the grid size")

const lineWidth = 1

// Render draws g on a square image of side extent pixels.
func Render(g *grid.Grid, extent int) (image.Image, error) {
	dc, err := draw(g, extent)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// SavePNG renders g and writes it to path.
func SavePNG(path string, g *grid.Grid, extent int) error {
	dc, err := draw(g, extent)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: save %s: %w", path, err)
	}
	return nil
}

func draw(g *grid.Grid, extent int) (*gg.Context, error) {
	if extent < g.Size() {
		return nil, fmt.Errorf("%w: %d px for %d cells", ErrBadExtent, extent, g.Size())
	}
	side := float32(extent)
	gap := float64(g.CellSize(side))

	dc := gg.NewContext(extent, extent)
	dc.SetColor(palette.Background())
	dc.Clear()

	for idx := 0; idx < g.Len(); idx++ {
		x, y := g.Origin(idx, side)
		dc.SetColor(palette.Color(g.State(idx)))
		dc.DrawRectangle(float64(x), float64(y), gap, gap)
		dc.Fill()
	}

	dc.SetColor(palette.Lines())
	dc.SetLineWidth(lineWidth)
	for i := 0; i <= g.Size(); i++ {
		p := float64(i) * gap
		dc.DrawLine(0, p, float64(extent), p)
		dc.DrawLine(p, 0, p, float64(extent))
	}
	dc.Stroke()
	return dc, nil
}
