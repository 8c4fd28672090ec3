// Package gridgraph defines core types, constraints, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/gridpath.
package gridgraph

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrInvalidGrid is the base error for every malformed grid.
	ErrInvalidGrid = errors.New("gridgraph: invalid grid")
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: input grid must have at least one row and one column", ErrInvalidGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidGrid)
	// ErrNegativeWeight indicates a cell weight below zero.
	ErrNegativeWeight = fmt.Errorf("%w: cell weights must be non-negative", ErrInvalidGrid)
	// ErrOutOfBounds indicates a coordinate outside the grid dimensions.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
)

// Weight is the set of cell weight types a Grid can hold.
type Weight interface {
	constraints.Integer
}

// Coord is a zero-based (Row, Col) position within a grid.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// neighborOffsets lists 4-directional moves as {dRow, dCol}
// in enumeration order: up, left, down, right.
var neighborOffsets = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// Grid is an immutable rectangular table of non-negative weights.
// Rows and Cols define dimensions; cells are stored row-major.
type Grid[W Weight] struct {
	Rows, Cols int
	cells      []W
}
