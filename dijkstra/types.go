// Package dijkstra defines result types and configuration options
// for grid path search.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to Search.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrCostOverflow indicates the target was not reached and at least one
	// path was dropped because its cost exceeded the range of the weight
	// type. Use a wider weight type.
	ErrCostOverflow = errors.New("dijkstra: path cost overflows weight type")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrBadImpassable indicates that the impassable threshold was zero or
	// negative, which would wall off every cell.
	ErrBadImpassable = errors.New("dijkstra: impassable threshold must be positive")
)

// Result is the outcome of a search.
//
// When Reachable is true, Cost is the minimum total weight of any path from
// start to target and Path lists that path's cells from start to target
// inclusive. When Reachable is false, Cost is zero and Path is nil.
type Result[W gridgraph.Weight] struct {
	Reachable bool
	Cost      W
	Path      []gridgraph.Coord
}

// Options configures the search.
//
// Impassable – cells whose weight is ≥ this value cannot be entered.
// Only honoured when HasImpassable is set; must be > 0.
//
// MaxCost – paths costing more than this are not explored.
// Only honoured when HasMaxCost is set; must be ≥ 0.
type Options[W gridgraph.Weight] struct {
	Impassable    W
	HasImpassable bool
	MaxCost       W
	HasMaxCost    bool
}

// Option represents a functional option for configuring a search.
type Option[W gridgraph.Weight] func(*Options[W])

// WithImpassable marks every cell whose weight is ≥ threshold as a wall.
// Walls are never entered; the start cell is never entered either, so a
// search may begin on a wall. Panics with ErrBadImpassable if threshold ≤ 0.
func WithImpassable[W gridgraph.Weight](threshold W) Option[W] {
	if threshold <= 0 {
		panic(ErrBadImpassable.Error())
	}

	return func(o *Options[W]) {
		o.Impassable = threshold
		o.HasImpassable = true
	}
}

// WithMaxCost caps the total cost of explored paths. A target whose optimal
// cost exceeds max is reported as unreachable.
// Panics with ErrBadMaxCost if max < 0.
func WithMaxCost[W gridgraph.Weight](max W) Option[W] {
	if max < 0 {
		panic(ErrBadMaxCost.Error())
	}

	return func(o *Options[W]) {
		o.MaxCost = max
		o.HasMaxCost = true
	}
}

// DefaultOptions returns Options with no walls and no cost cap.
func DefaultOptions[W gridgraph.Weight]() Options[W] {
	return Options[W]{}
}
