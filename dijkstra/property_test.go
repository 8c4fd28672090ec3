package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/gridgraph"
)

// wall is the weight treated as impassable by the wall-enabled checks.
const wall = 99

// randomGrid returns a rows×cols grid with weights drawn from palette.
func randomGrid(r *rand.Rand, rows, cols int, palette []int) [][]int {
	grid := make([][]int, rows)
	for i := range grid {
		grid[i] = make([]int, cols)
		for j := range grid[i] {
			grid[i][j] = palette[r.Intn(len(palette))]
		}
	}

	return grid
}

func randomCoord(r *rand.Rand, rows, cols int) gridgraph.Coord {
	return gridgraph.Coord{Row: r.Intn(rows), Col: r.Intn(cols)}
}

// pathCost sums grid weights over every coordinate of path.
func pathCost(grid [][]int, path []gridgraph.Coord) int {
	sum := 0
	for _, p := range path {
		sum += grid[p.Row][p.Col]
	}

	return sum
}

// requireWalk asserts path is a contiguous 4-directional walk from start
// to target that never revisits a cell.
func requireWalk(t *testing.T, path []gridgraph.Coord, start, target gridgraph.Coord) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0])
	require.Equal(t, target, path[len(path)-1])
	seen := map[gridgraph.Coord]bool{path[0]: true}
	for i := 1; i < len(path); i++ {
		dr := abs(path[i].Row - path[i-1].Row)
		dc := abs(path[i].Col - path[i-1].Col)
		require.Equal(t, 1, dr+dc, "step %v→%v is not a single orthogonal move", path[i-1], path[i])
		require.False(t, seen[path[i]], "cell %v visited twice", path[i])
		seen[path[i]] = true
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// bruteForce enumerates every simple 4-directional path from start to
// target and returns the cheapest cost. Cells with weight ≥ blocked are not
// entered when blocked > 0. ok is false when no path exists.
func bruteForce(grid [][]int, start, target gridgraph.Coord, blocked int) (best int, ok bool) {
	rows, cols := len(grid), len(grid[0])
	onPath := make([][]bool, rows)
	for i := range onPath {
		onPath[i] = make([]bool, cols)
	}

	var walk func(at gridgraph.Coord, cost int)
	walk = func(at gridgraph.Coord, cost int) {
		if ok && cost >= best {
			return
		}
		if at == target {
			best, ok = cost, true
			return
		}
		onPath[at.Row][at.Col] = true
		for _, d := range [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}} {
			n := gridgraph.Coord{Row: at.Row + d[0], Col: at.Col + d[1]}
			if n.Row < 0 || n.Row >= rows || n.Col < 0 || n.Col >= cols || onPath[n.Row][n.Col] {
				continue
			}
			w := grid[n.Row][n.Col]
			if blocked > 0 && w >= blocked {
				continue
			}
			walk(n, cost+w)
		}
		onPath[at.Row][at.Col] = false
	}
	walk(start, grid[start.Row][start.Col])

	return best, ok
}

// TestProperty_MatchesBruteForce checks optimality, the cost-sum invariant
// and path contiguity against exhaustive search on grids up to 4×4.
func TestProperty_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	palette := []int{0, 1, 3, 10}
	for trial := 0; trial < 300; trial++ {
		rows, cols := 1+r.Intn(4), 1+r.Intn(4)
		grid := randomGrid(r, rows, cols, palette)
		start, target := randomCoord(r, rows, cols), randomCoord(r, rows, cols)

		res, err := dijkstra.FindPath(grid, start, target)
		require.NoError(t, err)
		require.True(t, res.Reachable, "grid %v %v→%v", grid, start, target)

		want, ok := bruteForce(grid, start, target, 0)
		require.True(t, ok)
		require.Equal(t, want, res.Cost, "grid %v %v→%v", grid, start, target)
		require.Equal(t, res.Cost, pathCost(grid, res.Path))
		requireWalk(t, res.Path, start, target)
	}
}

// TestProperty_WallsMatchBruteForce repeats the comparison with impassable
// cells, and checks Unreachable agrees with gridgraph's region analysis.
func TestProperty_WallsMatchBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	palette := []int{1, 3, 10, wall}
	passable := func(w int) bool { return w < wall }
	unreachable := 0
	for trial := 0; trial < 300; trial++ {
		rows, cols := 1+r.Intn(4), 1+r.Intn(4)
		grid := randomGrid(r, rows, cols, palette)
		start, target := randomCoord(r, rows, cols), randomCoord(r, rows, cols)

		res, err := dijkstra.FindPath(grid, start, target, dijkstra.WithImpassable(wall))
		require.NoError(t, err)

		want, ok := bruteForce(grid, start, target, wall)
		require.Equal(t, ok, res.Reachable, "grid %v %v→%v", grid, start, target)
		if !ok {
			unreachable++
			assert.Nil(t, res.Path)
		} else {
			require.Equal(t, want, res.Cost, "grid %v %v→%v", grid, start, target)
			require.Equal(t, res.Cost, pathCost(grid, res.Path))
			requireWalk(t, res.Path, start, target)
		}

		if start == target || passable(grid[start.Row][start.Col]) {
			g, err := gridgraph.New(grid)
			require.NoError(t, err)
			require.Equal(t, g.Connected(start, target, passable), res.Reachable)
		}
	}
	assert.Positive(t, unreachable, "random walls never disconnected a pair")
}

// TestProperty_Monotonicity raises one cell's weight and recomputes:
// a cell off the returned path leaves the optimum unchanged, and a cell on
// it can only raise the optimum, by at most the increment.
func TestProperty_Monotonicity(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	palette := []int{1, 3, 10}
	for trial := 0; trial < 200; trial++ {
		rows, cols := 2+r.Intn(5), 2+r.Intn(5)
		grid := randomGrid(r, rows, cols, palette)
		start, target := randomCoord(r, rows, cols), randomCoord(r, rows, cols)

		base, err := dijkstra.FindPath(grid, start, target)
		require.NoError(t, err)
		onPath := make(map[gridgraph.Coord]bool, len(base.Path))
		for _, p := range base.Path {
			onPath[p] = true
		}

		cell := randomCoord(r, rows, cols)
		inc := 1 + r.Intn(20)
		grid[cell.Row][cell.Col] += inc

		again, err := dijkstra.FindPath(grid, start, target)
		require.NoError(t, err)
		if onPath[cell] {
			require.GreaterOrEqual(t, again.Cost, base.Cost)
			require.LessOrEqual(t, again.Cost, base.Cost+inc)
		} else {
			require.Equal(t, base.Cost, again.Cost)
		}
	}
}
