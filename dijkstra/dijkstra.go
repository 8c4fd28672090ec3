// Package dijkstra implements Dijkstra's shortest-path algorithm on
// node-weighted grids.
//
// Notes on implementation choices:
//
//   - Per-cell state lives in flat slices indexed by gridgraph's row-major
//     index; the path is rebuilt once from predecessor indices.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries when popped.
//   - Frontier ties are broken by insertion sequence.
package dijkstra

import (
	"container/heap"
	"context"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// cancelCheckInterval is how many heap pops pass between ctx.Err() checks.
const cancelCheckInterval = 1024

// FindPath validates values as a grid and searches it for a minimum-cost
// path from start to target. See Search for the result contract.
//
// Errors: any gridgraph.ErrInvalidGrid refinement for malformed values,
// gridgraph.ErrOutOfBounds for a bad start or target, ErrCostOverflow.
func FindPath[W gridgraph.Weight](values [][]W, start, target gridgraph.Coord, opts ...Option[W]) (Result[W], error) {
	g, err := gridgraph.New(values)
	if err != nil {
		return Result[W]{}, err
	}

	return Search(g, start, target, opts...)
}

// Search computes the minimum-cost path from start to target on g.
//
// The cost of a path is the sum of the weights of all its cells, the start
// cell included. If start == target the path is [start] and the cost is the
// start cell's weight. If no path exists, the Result has Reachable == false
// and err == nil.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. start must lie inside g (gridgraph.ErrOutOfBounds).
//  3. target must lie inside g (gridgraph.ErrOutOfBounds).
func Search[W gridgraph.Weight](g *gridgraph.Grid[W], start, target gridgraph.Coord, opts ...Option[W]) (Result[W], error) {
	return SearchContext(context.Background(), g, start, target, opts...)
}

// SearchContext is Search with cancellation. The context is polled
// periodically; when it is done the search stops and returns ctx.Err()
// wrapped.
func SearchContext[W gridgraph.Weight](
	ctx context.Context,
	g *gridgraph.Grid[W],
	start, target gridgraph.Coord,
	opts ...Option[W],
) (Result[W], error) {
	cfg := DefaultOptions[W]()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result[W]{}, ErrNilGrid
	}
	if err := g.Check(start); err != nil {
		return Result[W]{}, fmt.Errorf("dijkstra: start: %w", err)
	}
	if err := g.Check(target); err != nil {
		return Result[W]{}, fmt.Errorf("dijkstra: target: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return Result[W]{}, fmt.Errorf("dijkstra: search aborted: %w", err)
	}

	n := g.Len()
	r := &runner[W]{
		g:       g,
		options: cfg,
		dist:    make([]W, n),
		prev:    make([]int, n),
		seen:    make([]bool, n),
		done:    make([]bool, n),
		pq:      make(frontier[W], 0, n),
	}

	return r.run(ctx, g.Index(start), g.Index(target))
}

// runner holds the mutable state for a single search.
type runner[W gridgraph.Weight] struct {
	g       *gridgraph.Grid[W] // Read-only input.
	options Options[W]
	dist    []W    // Best known cost per cell; valid where seen is set.
	prev    []int  // Predecessor index on the best known path; -1 at start.
	seen    []bool // Cell has a distance record.
	done    []bool // Cell's distance is final.
	pq      frontier[W]
	seq     uint64 // Insertion counter for tie-breaking.

	overflow error // First skipped relaxation whose cost overflowed W.
}

// run seeds the frontier with the start cell and expands cells in cost order
// until target is finalized or the frontier empties.
func (r *runner[W]) run(ctx context.Context, s, t int) (Result[W], error) {
	// 1) The start cell is charged its own weight once.
	c0 := r.g.AtIndex(s)
	if r.options.HasMaxCost && c0 > r.options.MaxCost {
		return Result[W]{}, nil
	}

	// 2) Seed its distance record and the frontier.
	r.dist[s] = c0
	r.prev[s] = -1
	r.seen[s] = true
	r.push(s, c0)

	var buf [4]gridgraph.Coord
	for pops := 1; r.pq.Len() > 0; pops++ {
		// 3) Poll for cancellation every cancelCheckInterval pops.
		if pops%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Result[W]{}, fmt.Errorf("dijkstra: search aborted: %w", err)
			}
		}

		// 4) Pop the cheapest pending cell.
		item := heap.Pop(&r.pq).(frontierItem[W])
		u := item.idx

		// 5) Stale entry: u was finalized already or improved since the push.
		if r.done[u] || item.cost > r.dist[u] {
			continue
		}

		// 6) The first time target is popped its cost is optimal.
		if u == t {
			return r.result(t), nil
		}

		// 7) Finalize u and relax its neighbors.
		r.done[u] = true
		r.relax(u, buf[:0])
	}

	// 8) Frontier exhausted. If some cell was skipped only because its cost
	//    did not fit in W, the answer is unknown rather than unreachable.
	if r.overflow != nil {
		return Result[W]{}, r.overflow
	}

	return Result[W]{}, nil
}

// relax tries to improve every open neighbor of the finalized cell u.
// Entering neighbor v costs dist[u] + weight(v).
func (r *runner[W]) relax(u int, buf []gridgraph.Coord) {
	cu := r.dist[u]
	for _, nb := range r.g.Neighbors(r.g.Coord(u), buf) {
		// 1) Finalized cells cannot improve with non-negative weights.
		v := r.g.Index(nb)
		if r.done[v] {
			continue
		}

		// 2) Walls are never entered.
		w := r.g.AtIndex(v)
		if r.options.HasImpassable && w >= r.options.Impassable {
			continue
		}

		// 3) Weights are non-negative, so a smaller sum means wraparound.
		//    Skip the neighbor and remember it; a cheaper route may still
		//    reach the target. Under a cost cap the sum exceeds the cap anyway.
		cand := cu + w
		if cand < cu {
			if !r.options.HasMaxCost && r.overflow == nil {
				r.overflow = fmt.Errorf("%w: entering %v from %v", ErrCostOverflow, nb, r.g.Coord(u))
			}
			continue
		}
		if r.options.HasMaxCost && cand > r.options.MaxCost {
			continue
		}

		// 4) Keep only strictly cheaper records.
		if r.seen[v] && cand >= r.dist[v] {
			continue
		}

		// 5) Update the record and push a fresh frontier entry.
		r.dist[v] = cand
		r.prev[v] = u
		r.seen[v] = true
		r.push(v, cand)
	}
}

func (r *runner[W]) push(idx int, cost W) {
	heap.Push(&r.pq, frontierItem[W]{cost: cost, seq: r.seq, idx: idx})
	r.seq++
}

// result walks predecessor links back from t and returns the path in
// start-to-target order.
func (r *runner[W]) result(t int) Result[W] {
	n := 0
	for at := t; at >= 0; at = r.prev[at] {
		n++
	}
	path := make([]gridgraph.Coord, n)
	for at, i := t, n-1; at >= 0; at, i = r.prev[at], i-1 {
		path[i] = r.g.Coord(at)
	}

	return Result[W]{Reachable: true, Cost: r.dist[t], Path: path}
}

// frontierItem is a pending (cost, cell) pair. seq records push order.
type frontierItem[W gridgraph.Weight] struct {
	cost W
	seq  uint64
	idx  int
}

// frontier is a min-heap of frontierItem ordered by cost, then seq.
type frontier[W gridgraph.Weight] []frontierItem[W]

func (pq frontier[W]) Len() int { return len(pq) }

func (pq frontier[W]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

func (pq frontier[W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier[W]) Push(x interface{}) { *pq = append(*pq, x.(frontierItem[W])) }

func (pq *frontier[W]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
