package grid

// CellSize is the side of one cell on a square board of side extent.
func (g *Grid) CellSize(extent float32) float32 {
	return extent / float32(g.size)
}

// Locate maps a pixel position on a square board of side extent to the
// cell under it. Positions outside the board report false.
func (g *Grid) Locate(x, y, extent float32) (int, bool) {
	if extent <= 0 || x < 0 || y < 0 || x >= extent || y >= extent {
		return 0, false
	}
	gap := g.CellSize(extent)
	row, col := int(y/gap), int(x/gap)
	// float rounding right at the far edge
	if row >= g.size {
		row = g.size - 1
	}
	if col >= g.size {
		col = g.size - 1
	}
	return g.Index(row, col), true
}

// Origin returns the top-left pixel of cell idx on a board of side extent.
func (g *Grid) Origin(idx int, extent float32) (x, y float32) {
	row, col := g.Coord(idx)
	gap := g.CellSize(extent)
	return float32(col) * gap, float32(row) * gap
}
