package search

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"astar-visualizer/internal/grid"
)

const unreached = math.MaxInt

// Manhattan is |Δrow| + |Δcol| between cells a and b of g.
func Manhattan(g *grid.Grid, a, b int) int {
	ar, ac := g.Coord(a)
	br, bc := g.Coord(b)
	return abs(ar-br) + abs(ac-bc)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Run searches g for a shortest path from start to end. Neighbour lists
// must be current (grid.UpdateNeighbors) before the call. onStep may be nil.
//
// Run mutates cell states as described in the package documentation and
// returns once the end is reached, the frontier is empty or ctx is done.
func Run(ctx context.Context, g *grid.Grid, start, end int, onStep StepFunc, options ...Option) (Result, error) {
	if err := validate(g, start, end); err != nil {
		return Result{}, err
	}

	opts := Options{Logger: zap.NewNop()}
	for _, o := range options {
		o(&opts)
	}
	if onStep == nil {
		onStep = func() {}
	}
	log := opts.Logger.With(zap.Int("start", start), zap.Int("end", end), zap.Int("size", g.Size()))

	gScore := make([]int, g.Len())
	fScore := make([]int, g.Len())
	for i := range gScore {
		gScore[i], fScore[i] = unreached, unreached
	}
	origin := make(map[int]int)

	gScore[start] = 0
	fScore[start] = Manhattan(g, start, end)
	open := newFrontier()
	open.Push(start, fScore[start])

	var order []int
	for open.Len() > 0 {
		if err := ctx.Err(); err != nil {
			log.Info("search cancelled", zap.Int("expanded", len(order)), zap.Error(err))
			return Result{Outcome: Cancelled, Order: order}, nil
		}

		current := open.Pop()
		cell := current.cell
		order = append(order, cell)

		step := Expansion{
			Step:     len(order),
			Cell:     cell,
			G:        gScore[cell],
			F:        fScore[cell],
			Seq:      current.seq,
			Frontier: open.Len(),
		}
		if opts.Observer != nil {
			opts.Observer(step)
		}
		if ce := log.Check(zap.DebugLevel, "expand"); ce != nil {
			ce.Write(zap.Int("step", step.Step), zap.Int("cell", cell),
				zap.Int("g", step.G), zap.Int("f", step.F), zap.Int("seq", step.Seq))
		}

		if cell == end {
			path := reconstruct(g, origin, start, end, onStep)
			g.SetState(end, grid.End)
			g.SetState(start, grid.Start)
			log.Info("path found", zap.Int("cost", gScore[end]), zap.Int("expanded", len(order)))
			return Result{Outcome: PathFound, Path: path, Cost: gScore[end], Order: order}, nil
		}

		for _, next := range g.Neighbors(cell) {
			tentative := gScore[cell] + 1
			if tentative >= gScore[next] {
				continue
			}
			origin[next] = cell
			gScore[next] = tentative
			fScore[next] = tentative + Manhattan(g, next, end)
			// a queued cell keeps its place; only its scores change
			if open.Contains(next) {
				continue
			}
			open.Push(next, fScore[next])
			g.SetState(next, grid.Open)
		}

		onStep()

		if cell != start {
			g.SetState(cell, grid.Closed)
		}
	}

	log.Info("no path", zap.Int("expanded", len(order)))
	return Result{Outcome: NoPathExists, Order: order}, nil
}

func validate(g *grid.Grid, start, end int) error {
	switch {
	case g == nil:
		return fmt.Errorf("%w: nil grid", ErrInvalidInput)
	case !g.Contains(start):
		return fmt.Errorf("%w: start %d outside %d cells", ErrInvalidInput, start, g.Len())
	case !g.Contains(end):
		return fmt.Errorf("%w: end %d outside %d cells", ErrInvalidInput, end, g.Len())
	case start == end:
		return fmt.Errorf("%w: start and end are the same cell %d", ErrInvalidInput, start)
	}
	return nil
}

// reconstruct walks origin back from end, painting every intermediate cell
// and yielding after each one. It returns the path start..end.
func reconstruct(g *grid.Grid, origin map[int]int, start, end int, onStep StepFunc) []int {
	path := []int{end}
	for cur := end; ; {
		prev, ok := origin[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		if prev == start {
			break
		}
		g.SetState(prev, grid.Path)
		onStep()
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
