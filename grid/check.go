package grid

import "fmt"

// CheckPerfect verifies that the link graph is a spanning tree: every link
// is symmetric and joins neighbors, every cell is reachable from (0,0),
// and there are exactly rows×columns-1 passages.
//
// Returns nil for a perfect maze, otherwise one of ErrAsymmetricLink,
// ErrNotSpanning or ErrCycle wrapped with detail.
//
// Time:   O(R×C).
// Memory: O(R×C) for the visited flags and queue.
func (g *Grid) CheckPerfect() error {
	// 1) Symmetry and adjacency of every recorded link.
	for i := range g.cells {
		c := &g.cells[i]
		for _, o := range c.Links() {
			other, ok := g.At(o)
			if !ok || !c.IsNeighbor(o) || !other.links.Has(c.coord) {
				return fmt.Errorf("%w: %s -> %s", ErrAsymmetricLink, c.coord, o)
			}
		}
	}

	// 2) Reachability over links (BFS from the first cell).
	seen := make([]bool, len(g.cells))
	queue := []int{0}
	seen[0] = true
	for qi := 0; qi < len(queue); qi++ {
		c := &g.cells[queue[qi]]
		for _, d := range Directions {
			n, ok := c.Neighbor(d)
			if !ok || !c.links.Has(n) {
				continue
			}
			ni := g.index(n.Row, n.Column)
			if !seen[ni] {
				seen[ni] = true
				queue = append(queue, ni)
			}
		}
	}
	if len(queue) != len(g.cells) {
		return fmt.Errorf("%w: reached %d of %d cells", ErrNotSpanning, len(queue), len(g.cells))
	}

	// 3) A connected graph on N vertices is a tree iff it has N-1 edges.
	if edges := g.LinkCount(); edges != len(g.cells)-1 {
		return fmt.Errorf("%w: %d links for %d cells", ErrCycle, edges, len(g.cells))
	}
	return nil
}

// DeadEnds returns the coordinates of cells with exactly one passage,
// in row-major order.
func (g *Grid) DeadEnds() []Coord {
	var out []Coord
	for i := range g.cells {
		if g.cells[i].links.Size() == 1 {
			out = append(out, g.cells[i].coord)
		}
	}
	return out
}
