// Package console is the terminal side of the visualizer: it reads grid
// layouts from text and prints coloured frames of a running search.
//
// Layout format, one row per line:
//
//	; comment
//	S..#.
//	.#.#.
//	.#...
//	.#.#E
//	...#.
//
// '.' is empty, '#' a barrier, 'S' the start and 'E' the end. The layout
// must be square and hold exactly one 'S' and one 'E'. Blank lines and
// lines starting with ';' are skipped.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"astar-visualizer/internal/grid"
)

var (
	// ErrEmptyLayout indicates the input holds no rows.
	ErrEmptyLayout = errors.New("console: layout has no rows")
	// ErrNotSquare indicates rows of the wrong length or a row count that
	// differs from the row length.
	ErrNotSquare = errors.New("console: layout must be square")
	// ErrUnknownGlyph indicates a character outside ".#SE".
	ErrUnknownGlyph = errors.New("console: unknown glyph")
	// ErrDuplicateMarker indicates more than one 'S' or 'E'.
	ErrDuplicateMarker = errors.New("console: duplicate start or end")
	// ErrMissingMarker indicates no 'S' or no 'E'.
	ErrMissingMarker = errors.New("console: missing start or end")
)

const commentPrefix = ";"

var glyphStates = map[rune]grid.State{
	'.': grid.Empty,
	'#': grid.Barrier,
	'S': grid.Start,
	'E': grid.End,
}

// Layout is a parsed grid with its start and end cells.
type Layout struct {
	Grid  *grid.Grid
	Start int
	End   int
}

// Parse reads a layout from r.
func Parse(r io.Reader) (*Layout, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("console: read layout: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyLayout
	}

	size := len(rows)
	g, err := grid.New(size)
	if err != nil {
		return nil, err
	}
	starts, ends := 0, 0
	for row, line := range rows {
		if n := utf8.RuneCountInString(line); n != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, row+1, n, size)
		}
		col := 0
		for _, ch := range line {
			st, ok := glyphStates[ch]
			if !ok {
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrUnknownGlyph, ch, row+1, col+1)
			}
			switch st {
			case grid.Start:
				starts++
			case grid.End:
				ends++
			}
			g.SetState(g.Index(row, col), st)
			col++
		}
	}
	if starts > 1 || ends > 1 {
		return nil, fmt.Errorf("%w: %d starts, %d ends", ErrDuplicateMarker, starts, ends)
	}
	if starts == 0 || ends == 0 {
		return nil, fmt.Errorf("%w: %d starts, %d ends", ErrMissingMarker, starts, ends)
	}

	l := &Layout{Grid: g}
	l.Start, _ = g.Find(grid.Start)
	l.End, _ = g.Find(grid.End)
	return l, nil
}
