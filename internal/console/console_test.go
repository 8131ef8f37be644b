package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astar-visualizer/internal/console"
	"astar-visualizer/internal/grid"
	"astar-visualizer/internal/search"
)

const wallWithGap = `
; column 2 is blocked except on the last row
S.#..
..#..
..#..
..#..
....E
`

func TestParse(t *testing.T) {
	l, err := console.Parse(strings.NewReader(wallWithGap))
	require.NoError(t, err)
	g := l.Grid
	assert.Equal(t, 5, g.Size())
	assert.Equal(t, g.Index(0, 0), l.Start)
	assert.Equal(t, g.Index(4, 4), l.End)
	assert.Equal(t, 4, g.Count(grid.Barrier))
	assert.Equal(t, grid.Empty, g.State(g.Index(4, 2)))
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "\n; nothing\n\n", console.ErrEmptyLayout},
		{"ShortRow", "S.\n.", console.ErrNotSquare},
		{"TooManyRows", "SE\n..\n..", console.ErrNotSquare},
		{"UnknownGlyph", "S?\n.E", console.ErrUnknownGlyph},
		{"TwoStarts", "SS\n.E", console.ErrDuplicateMarker},
		{"NoEnd", "S.\n..", console.ErrMissingMarker},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := console.Parse(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestPrinter_PlainFrame(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)
	states := []grid.State{
		grid.Start, grid.Path, grid.Barrier,
		grid.Open, grid.Closed, grid.Empty,
		grid.Empty, grid.Empty, grid.End,
	}
	for i, s := range states {
		g.SetState(i, s)
	}

	var buf bytes.Buffer
	p := console.NewPrinter(&buf, false)
	require.NoError(t, p.Frame(g))
	assert.Equal(t, "S * #\no x .\n. . E\n\n", buf.String())
	assert.Equal(t, 1, p.Frames())
}

func TestPrinter_ColouredFrameHasEscapes(t *testing.T) {
	g, err := grid.New(2)
	require.NoError(t, err)
	g.SetState(0, grid.Path)

	var buf bytes.Buffer
	require.NoError(t, console.NewPrinter(&buf, true).Frame(g))
	assert.Contains(t, buf.String(), "\x1b[")
}

// TestParseAndSearch drives the engine from a parsed layout and prints the
// final frame.
func TestParseAndSearch(t *testing.T) {
	l, err := console.Parse(strings.NewReader(wallWithGap))
	require.NoError(t, err)
	l.Grid.UpdateNeighbors()

	var buf bytes.Buffer
	p := console.NewPrinter(&buf, false)
	res, err := search.Run(context.Background(), l.Grid, l.Start, l.End, nil)
	require.NoError(t, err)
	require.True(t, res.Found())
	require.NoError(t, p.Frame(l.Grid))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "* * * * E", lines[4])
	assert.Equal(t, 7, strings.Count(buf.String(), "*"))
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, "#", console.Glyph(grid.Barrier))
	assert.Equal(t, "?", console.Glyph(grid.State(200)))
}
