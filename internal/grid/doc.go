// Package grid models the square board the A* visualizer paints on.
//
// What:
//
//   - Grid holds N×N cells in a flat, row-major slice; a cell is identified
//     by its index row*N+col, never by a pointer.
//   - Every cell carries exactly one State (Empty, Open, Closed, Barrier,
//     Start, End, Path).
//   - Neighbour lists are 4-connected, in the fixed order down, up, right,
//     left, and never contain a Barrier or an out-of-range cell.
//   - Locate/Origin translate between pixel positions on a square board and
//     cell indices.
//   - Editor applies pointer input to a Grid and keeps the "one start, at
//     most one end" invariant the search relies on.
//
// Neighbour lists are cached. They go stale as soon as a barrier is painted
// or erased, so callers run UpdateNeighbors (or Editor.Prepare) once before
// every search.
//
// Errors:
//
//   - ErrInvalidSize: requested size is not positive.
//   - ErrOutOfRange: an index or coordinate lies outside the grid.
package grid
