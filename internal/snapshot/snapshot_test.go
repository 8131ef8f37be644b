package snapshot_test

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astar-visualizer/internal/grid"
	"astar-visualizer/internal/palette"
	"astar-visualizer/internal/snapshot"
)

func sampleGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(4)
	require.NoError(t, err)
	g.SetState(g.Index(0, 0), grid.Start)
	g.SetState(g.Index(3, 3), grid.End)
	g.SetState(g.Index(1, 2), grid.Barrier)
	g.SetState(g.Index(2, 1), grid.Path)
	return g
}

// centre returns the colour at the middle of cell (row, col) on a 4×4 grid
// drawn at 100 px per cell.
func centre(img interface{ At(x, y int) color.Color }, row, col int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(col*100+50, row*100+50)).(color.NRGBA)
}

func TestRender_CellColours(t *testing.T) {
	g := sampleGrid(t)
	img, err := snapshot.Render(g, 400)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())

	cases := []struct {
		row, col int
		state    grid.State
	}{
		{0, 0, grid.Start},
		{3, 3, grid.End},
		{1, 2, grid.Barrier},
		{2, 1, grid.Path},
		{0, 3, grid.Empty},
	}
	for _, tc := range cases {
		assert.Equal(t, palette.Color(tc.state), centre(img, tc.row, tc.col), "cell (%d,%d)", tc.row, tc.col)
	}
}

func TestRender_BadExtent(t *testing.T) {
	g := sampleGrid(t)
	_, err := snapshot.Render(g, 3)
	assert.ErrorIs(t, err, snapshot.ErrBadExtent)
	err = snapshot.SavePNG(filepath.Join(t.TempDir(), "x.png"), g, 0)
	assert.ErrorIs(t, err, snapshot.ErrBadExtent)
}

func TestSavePNG(t *testing.T) {
	g := sampleGrid(t)
	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, snapshot.SavePNG(path, g, 400))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, palette.Color(grid.Barrier), centre(img, 1, 2))
}
