package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astar-visualizer/internal/grid"
)

func TestEditor_PaintSequence(t *testing.T) {
	g := mustGrid(t, 3)
	e := grid.NewEditor(g)
	require.False(t, e.Ready())

	assert.Equal(t, grid.Start, e.Paint(0))
	assert.Equal(t, grid.End, e.Paint(8))
	assert.Equal(t, grid.Barrier, e.Paint(4))
	assert.True(t, e.Ready())

	// painting over start or end leaves them alone
	assert.Equal(t, grid.Start, e.Paint(0))
	assert.Equal(t, grid.End, e.Paint(8))
	assert.Equal(t, 1, g.Count(grid.Start))
	assert.Equal(t, 1, g.Count(grid.End))
}

func TestEditor_PaintEndCellBeforeStart(t *testing.T) {
	g := mustGrid(t, 3)
	e := grid.NewEditor(g)
	e.Paint(0)
	e.Paint(1)
	e.Erase(0)

	// the end cell must not be promoted to start
	assert.Equal(t, grid.End, e.Paint(1))
	_, ok := e.Start()
	assert.False(t, ok)

	assert.Equal(t, grid.Start, e.Paint(2))
	start, _ := e.Start()
	assert.Equal(t, 2, start)
}

func TestEditor_EraseForgetsMarkers(t *testing.T) {
	g := mustGrid(t, 3)
	e := grid.NewEditor(g)
	e.Paint(0)
	e.Paint(8)

	e.Erase(8)
	_, ok := e.End()
	assert.False(t, ok)
	assert.Equal(t, grid.Empty, g.State(8))

	assert.Equal(t, grid.End, e.Paint(5), "next paint places the end again")
	end, ok := e.End()
	require.True(t, ok)
	assert.Equal(t, 5, end)
}

func TestEditor_IgnoresOutOfRange(t *testing.T) {
	g := mustGrid(t, 2)
	e := grid.NewEditor(g)
	assert.Equal(t, grid.Empty, e.Paint(-1))
	assert.Equal(t, grid.Empty, e.Paint(4))
	e.Erase(99)
	assert.Equal(t, 4, g.Count(grid.Empty))
}

func TestEditor_Clear(t *testing.T) {
	g := mustGrid(t, 3)
	e := grid.NewEditor(g)
	e.Paint(0)
	e.Paint(1)
	e.Paint(2)
	e.Clear()
	assert.False(t, e.Ready())
	assert.Equal(t, 9, g.Count(grid.Empty))
}

func TestEditor_AdoptsExistingMarkers(t *testing.T) {
	g := mustGrid(t, 3)
	g.SetState(2, grid.Start)
	g.SetState(6, grid.End)
	e := grid.NewEditor(g)
	require.True(t, e.Ready())
	s, _ := e.Start()
	end, _ := e.End()
	assert.Equal(t, 2, s)
	assert.Equal(t, 6, end)
}

func TestEditor_Prepare(t *testing.T) {
	g := mustGrid(t, 3)
	e := grid.NewEditor(g)
	e.Paint(0)
	e.Paint(8)
	e.Paint(1)
	g.SetState(3, grid.Closed)
	g.SetState(4, grid.Path)
	g.SetState(0, grid.Path) // leftover overwrite of the start

	e.Prepare()
	assert.Equal(t, grid.Start, g.State(0))
	assert.Equal(t, grid.End, g.State(8))
	assert.Equal(t, grid.Barrier, g.State(1))
	assert.Equal(t, grid.Empty, g.State(3))
	assert.Equal(t, grid.Empty, g.State(4))
	assert.NotContains(t, g.Neighbors(0), 1)
}
