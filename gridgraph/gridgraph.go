// Package gridgraph provides utilities to treat a 2D grid of integer weights
// as a graph. It supports:
//
//   - Validation of rectangular, non-negative input
//   - Bounds checks and row-major indexing
//   - Fixed-order 4-directional neighbor enumeration
//   - Identification of connected regions of passable cells
package gridgraph

import "fmt"

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later mutation by the caller has no effect.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrNegativeWeight if any cell is below zero.
// Complexity: O(R×C) time and memory.
func New[W Weight](values [][]W) (*Grid[W], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for r, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}
	cells := make([]W, 0, rows*cols)
	for r, row := range values {
		for c, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d)=%d", ErrNegativeWeight, r, c, v)
			}
		}
		cells = append(cells, row...)
	}

	return &Grid[W]{Rows: rows, Cols: cols, cells: cells}, nil
}

// Len returns the number of cells, Rows×Cols.
func (g *Grid[W]) Len() int {
	return len(g.cells)
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[W]) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Check returns nil if c is inside the grid, or an error wrapping
// ErrOutOfBounds that names the coordinate and the grid size.
func (g *Grid[W]) Check(c Coord) error {
	if g.InBounds(c) {
		return nil
	}

	return fmt.Errorf("%w: %v not in %dx%d grid", ErrOutOfBounds, c, g.Rows, g.Cols)
}

// At returns the weight stored at c. c must be in bounds.
func (g *Grid[W]) At(c Coord) W {
	return g.cells[g.Index(c)]
}

// AtIndex returns the weight stored at row-major index i.
func (g *Grid[W]) AtIndex(i int) W {
	return g.cells[i]
}

// Index maps c to a row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid[W]) Index(c Coord) int {
	return c.Row*g.Cols + c.Col
}

// Coord converts a row-major index back to a coordinate.
// Complexity: O(1).
func (g *Grid[W]) Coord(i int) Coord {
	return Coord{Row: i / g.Cols, Col: i % g.Cols}
}

// Values returns a fresh [][]W copy of the grid contents.
func (g *Grid[W]) Values() [][]W {
	out := make([][]W, g.Rows)
	for r := range out {
		out[r] = make([]W, g.Cols)
		copy(out[r], g.cells[r*g.Cols:(r+1)*g.Cols])
	}

	return out
}

// Neighbors appends the in-bounds 4-directional neighbors of c to buf and
// returns the extended slice. Order is fixed: up, left, down, right.
// Cells on the border have fewer neighbors; there is no wraparound.
// Pass buf[:0] to reuse storage across calls.
func (g *Grid[W]) Neighbors(c Coord, buf []Coord) []Coord {
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			buf = append(buf, n)
		}
	}

	return buf
}
