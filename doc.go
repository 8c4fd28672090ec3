// Package gridpath finds minimum-cost paths across node-weighted 2D grids.
//
// A grid is a rectangular table of non-negative integer weights. Moving into
// a cell costs that cell's weight; the start cell's weight is charged once.
// Movement is 4-directional (up, left, down, right) with no wraparound.
//
// Packages:
//
//	gridgraph/ — Grid model: validation, coordinates, bounds, neighbors, regions
//	dijkstra/  — minimum-cost path search with path reconstruction
//
// Quick example:
//
//	grid := [][]int{
//	    {0, 1, 1},
//	    {10, 10, 1},
//	    {1, 1, 1},
//	}
//	res, err := dijkstra.FindPath(grid, gridgraph.Coord{}, gridgraph.Coord{Row: 2, Col: 0})
//	// res.Cost == 6
//	// res.Path == [(0,0) (0,1) (0,2) (1,2) (2,2) (2,1) (2,0)]
//
// A target that cannot be reached (for example behind cells marked with
// dijkstra.WithImpassable) yields res.Reachable == false and a nil error.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
