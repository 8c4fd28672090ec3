// Package gridgraph treats a rectangular 2D table of non-negative integer
// weights as an implicit graph whose vertices are cells and whose edges join
// orthogonally adjacent cells.
//
// What:
//
//   - Grid wraps a validated, deep-copied [][]W where W is any integer type.
//   - Coordinates are zero-based (Row, Col) pairs; rows grow downward.
//   - Neighbors are enumerated in a fixed order: up, left, down, right.
//   - Components groups passable cells into 4-connected regions.
//
// Why:
//
//   - Path search over terrain/cost maps without materialising edges.
//   - A row-major index (row*Cols + col) lets callers keep per-cell state
//     in flat slices instead of maps.
//
// Complexity:
//
//   - New:        O(R×C) time and memory.
//   - Neighbors:  O(1).
//   - Components: O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrInvalidGrid: base error for every malformed grid; matched with errors.Is.
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeWeight: a cell carries a weight below zero.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
package gridgraph
