package gridgraph

// Components finds all 4-connected regions of cells whose weight satisfies
// passable. A nil passable treats every cell as passable.
// Returns a slice of components; each component is a slice of row-major
// cell indices in BFS discovery order. Components are ordered by the
// row-major index of their first cell.
//
// Time:   O(R·C).
// Memory: O(R·C) for visited flags and output.
func (g *Grid[W]) Components(passable func(W) bool) [][]int {
	open := func(i int) bool { return passable == nil || passable(g.cells[i]) }
	seen := make([]bool, len(g.cells))
	var comps [][]int
	var nbuf [4]Coord

	for i0 := range g.cells {
		if seen[i0] || !open(i0) {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, n := range g.Neighbors(g.Coord(u), nbuf[:0]) {
				vi := g.Index(n)
				if !seen[vi] && open(vi) {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}

	return comps
}

// Connected reports whether a and b belong to the same 4-connected region of
// passable cells. Either endpoint being impassable or out of bounds yields
// false, except a == b in bounds, which is always connected.
func (g *Grid[W]) Connected(a, b Coord, passable func(W) bool) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	if a == b {
		return true
	}
	label := make([]int, len(g.cells))
	for id, comp := range g.Components(passable) {
		for _, i := range comp {
			label[i] = id + 1
		}
	}
	la, lb := label[g.Index(a)], label[g.Index(b)]

	return la != 0 && la == lb
}
