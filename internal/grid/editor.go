package grid

// Editor applies pointer input to a Grid. The first painted cell becomes
// the start, the next one the end, and every later one a barrier. It keeps
// at most one Start and at most one End on the grid.
type Editor struct {
	grid       *Grid
	start, end int
	hasStart   bool
	hasEnd     bool
}

// NewEditor wraps g. Existing Start/End cells on g are adopted.
func NewEditor(g *Grid) *Editor {
	e := &Editor{grid: g}
	e.start, e.hasStart = g.Find(Start)
	e.end, e.hasEnd = g.Find(End)
	return e
}

// Grid returns the edited grid.
func (e *Editor) Grid() *Grid { return e.grid }

// Start returns the start cell, if placed.
func (e *Editor) Start() (int, bool) { return e.start, e.hasStart }

// End returns the end cell, if placed.
func (e *Editor) End() (int, bool) { return e.end, e.hasEnd }

// Ready reports whether both start and end are placed.
func (e *Editor) Ready() bool { return e.hasStart && e.hasEnd }

// Paint handles a primary click on idx and returns the state the cell
// ended up in. Out-of-range indices are ignored.
func (e *Editor) Paint(idx int) State {
	if !e.grid.Contains(idx) {
		return Empty
	}
	switch {
	case !e.hasStart && !e.isEnd(idx):
		e.start, e.hasStart = idx, true
		e.grid.SetState(idx, Start)
	case !e.hasEnd && !e.isStart(idx):
		e.end, e.hasEnd = idx, true
		e.grid.SetState(idx, End)
	case !e.isStart(idx) && !e.isEnd(idx):
		e.grid.SetState(idx, Barrier)
	}
	return e.grid.State(idx)
}

// Erase handles a secondary click on idx: the cell becomes Empty, and if
// it was the start or end that marker is forgotten.
func (e *Editor) Erase(idx int) {
	if !e.grid.Contains(idx) {
		return
	}
	e.forget(idx)
	e.grid.SetState(idx, Empty)
}

// Clear empties the whole grid and forgets start and end.
func (e *Editor) Clear() {
	e.grid.Clear()
	e.hasStart, e.hasEnd = false, false
}

// Prepare readies the grid for a new search: leftovers of the previous run
// are wiped, start/end are re-asserted and neighbour lists rebuilt.
func (e *Editor) Prepare() {
	e.grid.ResetNonStructural()
	if e.hasStart {
		e.grid.SetState(e.start, Start)
	}
	if e.hasEnd {
		e.grid.SetState(e.end, End)
	}
	e.grid.UpdateNeighbors()
}

func (e *Editor) isStart(idx int) bool { return e.hasStart && e.start == idx }
func (e *Editor) isEnd(idx int) bool   { return e.hasEnd && e.end == idx }

func (e *Editor) forget(idx int) {
	if e.isStart(idx) {
		e.hasStart = false
	}
	if e.isEnd(idx) {
		e.hasEnd = false
	}
}
