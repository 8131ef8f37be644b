package grid

// State is the visual and structural tag of a cell.
type State uint8

const (
	// Empty is an unvisited, walkable cell.
	Empty State = iota
	// Open marks a cell sitting in the search frontier.
	Open
	// Closed marks a cell whose neighbours have all been examined.
	Closed
	// Barrier cells are excluded from the traversable graph.
	Barrier
	// Start is the search origin.
	Start
	// End is the search target.
	End
	// Path marks a cell on the reconstructed shortest path.
	Path
)

var stateNames = [...]string{
	Empty:   "empty",
	Open:    "open",
	Closed:  "closed",
	Barrier: "barrier",
	Start:   "start",
	End:     "end",
	Path:    "path",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Structural reports whether s survives ResetNonStructural.
func (s State) Structural() bool {
	return s == Barrier || s == Start || s == End
}
