// Package search runs A* over a grid.Grid with the Manhattan heuristic and
// unit step cost, marking cells as it goes so a renderer can show the
// frontier growing.
//
// Run works on the caller's goroutine and never starts its own. After every
// expansion, and after every cell painted during path reconstruction, it
// calls the supplied step function; that is the renderer's chance to draw
// and the only point where control leaves the engine. Cancellation is read
// from the context at the top of each iteration.
//
// Ordering:
//
//   - The frontier is ordered by (f, sequence). Every insertion takes the
//     next sequence number, so cells with equal f leave in discovery order
//     and two runs over the same grid expand cells in the same order.
//   - A cell already queued is never queued twice; when a cheaper route to
//     it turns up only its g and f scores and its predecessor change. The
//     queue entry keeps the priority and sequence it was pushed with.
//
// Cell states written by Run:
//
//   - Open when a cell first enters the frontier.
//   - Closed once its neighbours have been examined (the start keeps Start).
//   - Path for every cell strictly between start and end on the result.
//
// Outcomes PathFound, NoPathExists and Cancelled are results, not errors.
// Only precondition violations return an error (ErrInvalidInput).
package search
