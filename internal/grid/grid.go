package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize indicates a non-positive grid dimension.
	ErrInvalidSize = errors.New("grid: size must be positive")
	// ErrOutOfRange indicates an index or coordinate outside the grid.
	ErrOutOfRange = errors.New("grid: cell out of range")
)

type delta struct{ dr, dc int }

// neighbour order is part of the search's tie-break behaviour
var moves = [...]delta{
	{dr: 1, dc: 0},  // abajo
	{dr: -1, dc: 0}, // arriba
	{dr: 0, dc: 1},  // derecha
	{dr: 0, dc: -1}, // izquierda
}

// Grid is a fixed-size square board of cells stored row-major.
// The zero value is not usable; build one with New.
type Grid struct {
	size      int
	states    []State
	neighbors [][]int
}

// New allocates a size×size grid with every cell Empty.
func New(size int) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	n := size * size
	return &Grid{
		size:      size,
		states:    make([]State, n),
		neighbors: make([][]int, n),
	}, nil
}

// Size returns N, the number of rows (and columns).
func (g *Grid) Size() int { return g.size }

// Len returns the number of cells, N*N.
func (g *Grid) Len() int { return len(g.states) }

// Index maps (row, col) to its row-major index. It does not check bounds.
func (g *Grid) Index(row, col int) int { return row*g.size + col }

// Coord converts a row-major index back to (row, col).
func (g *Grid) Coord(idx int) (row, col int) { return idx / g.size, idx % g.size }

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// Contains reports whether idx is a valid cell index.
func (g *Grid) Contains(idx int) bool { return idx >= 0 && idx < len(g.states) }

// At returns the index of (row, col), or ErrOutOfRange.
func (g *Grid) At(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfRange, row, col, g.size, g.size)
	}
	return g.Index(row, col), nil
}

// State returns the state of cell idx.
func (g *Grid) State(idx int) State { return g.states[idx] }

// SetState overwrites the state of cell idx. Keeping Start and End unique
// is the caller's job.
func (g *Grid) SetState(idx int, s State) { g.states[idx] = s }

// ComputeNeighbors returns the walkable 4-neighbours of idx in the order
// down, up, right, left. The result reflects the current barrier layout.
func (g *Grid) ComputeNeighbors(idx int) []int {
	row, col := g.Coord(idx)
	out := make([]int, 0, len(moves))
	for _, mv := range moves {
		r, c := row+mv.dr, col+mv.dc
		if !g.InBounds(r, c) {
			continue
		}
		n := g.Index(r, c)
		if g.states[n] == Barrier {
			continue
		}
		out = append(out, n)
	}
	return out
}

// UpdateNeighbors recomputes the cached neighbour list of every cell.
func (g *Grid) UpdateNeighbors() {
	for i := range g.states {
		g.neighbors[i] = g.ComputeNeighbors(i)
	}
}

// Neighbors returns the cached neighbour list of idx as of the last
// UpdateNeighbors call. The slice must not be modified.
func (g *Grid) Neighbors(idx int) []int { return g.neighbors[idx] }

// ResetNonStructural turns every Open, Closed and Path cell back to Empty,
// leaving Barrier, Start and End untouched.
func (g *Grid) ResetNonStructural() {
	for i, s := range g.states {
		if !s.Structural() {
			g.states[i] = Empty
		}
	}
}

// Clear sets every cell to Empty and drops cached neighbours.
func (g *Grid) Clear() {
	for i := range g.states {
		g.states[i] = Empty
		g.neighbors[i] = nil
	}
}

// Find returns the first cell, in row-major order, whose state is s.
func (g *Grid) Find(s State) (int, bool) {
	for i, st := range g.states {
		if st == s {
			return i, true
		}
	}
	return 0, false
}

// Count returns how many cells are in state s.
func (g *Grid) Count(s State) int {
	n := 0
	for _, st := range g.states {
		if st == s {
			n++
		}
	}
	return n
}
