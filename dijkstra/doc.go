// Package dijkstra finds minimum-cost paths between two cells of a
// node-weighted grid (see gridgraph) using Dijkstra's algorithm.
//
// Overview:
//
//   - The cost of a path is the sum of the weights of every cell on it, the
//     start cell included exactly once. Moving into a cell charges that cell's
//     weight; there are no edge weights and no diagonal moves.
//   - Search runs from a start coordinate until the target is finalized, then
//     rebuilds the path from predecessor indices.
//   - A target that cannot be reached is a normal outcome reported as
//     Result.Reachable == false, never as an error.
//
// When to use:
//
//   - Terrain or cost-map navigation where every cell has an entry price.
//   - Any grid whose weights are non-negative integers of any width.
//
// Key features:
//
//   - Generic over every integer weight type (int, uint8, int64, ...).
//   - WithImpassable: cells whose weight ≥ threshold cannot be entered, which
//     models walls and disconnected grids.
//   - WithMaxCost: stop exploring paths that would cost more than a cap.
//   - SearchContext: cooperative cancellation for very large grids.
//   - Deterministic results: equal-cost frontier entries leave the heap in
//     insertion order, and neighbors are expanded up, left, down, right.
//
// Performance and complexity:
//
//   - Time:  O(N log N), N = Rows×Cols; each cell has at most four neighbors
//     so E ≤ 4N and every relaxation pushes at most one heap entry.
//   - Space: O(N) for distance, predecessor and state slices indexed by the
//     row-major cell index, plus O(E) stale heap entries in the worst case.
//
// Error handling (sentinel errors):
//
//   - gridgraph.ErrInvalidGrid (and its ErrEmptyGrid, ErrNonRectangular,
//     ErrNegativeWeight refinements): malformed input to FindPath.
//   - gridgraph.ErrOutOfBounds: start or target outside the grid.
//   - ErrNilGrid: nil *gridgraph.Grid passed to Search.
//   - ErrCostOverflow: the target was not reached and some path was dropped
//     because its cost did not fit in the weight type.
//   - ErrBadImpassable / ErrBadMaxCost: invalid option values (via panic).
//
// API reference:
//
//	func FindPath[W gridgraph.Weight](
//	    values [][]W, start, target gridgraph.Coord, opts ...Option[W],
//	) (Result[W], error)
//
//	func Search[W gridgraph.Weight](
//	    g *gridgraph.Grid[W], start, target gridgraph.Coord, opts ...Option[W],
//	) (Result[W], error)
//
// Thread safety:
//
//   - Every call owns its own search state. A Grid is never mutated, so any
//     number of goroutines may search the same Grid concurrently.
package dijkstra
