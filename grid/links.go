package grid

import "fmt"

// Link carves a passage between a and b, recording it on both cells.
// Linking an already linked pair is a no-op.
// Returns ErrOutOfBounds or ErrNotAdjacent on invalid input.
func (g *Grid) Link(a, b Coord) error {
	ca, cb, err := g.pair(a, b)
	if err != nil {
		return fmt.Errorf("Link(%s, %s): %w", a, b, err)
	}
	ca.links.Put(b)
	cb.links.Put(a)
	return nil
}

// Unlink removes the passage between a and b from both cells.
// Unlinking cells that are not linked is a no-op.
func (g *Grid) Unlink(a, b Coord) error {
	ca, cb, err := g.pair(a, b)
	if err != nil {
		return fmt.Errorf("Unlink(%s, %s): %w", a, b, err)
	}
	ca.links.Remove(b)
	cb.links.Remove(a)
	return nil
}

// Linked reports whether a passage joins a and b. Out-of-bounds
// coordinates are never linked.
func (g *Grid) Linked(a, b Coord) bool {
	ca, ok := g.At(a)
	if !ok {
		return false
	}
	return ca.links.Has(b)
}

// pair resolves both endpoints and checks adjacency.
func (g *Grid) pair(a, b Coord) (*Cell, *Cell, error) {
	ca, ok := g.At(a)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrOutOfBounds, a)
	}
	cb, ok := g.At(b)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrOutOfBounds, b)
	}
	if !ca.IsNeighbor(b) {
		return nil, nil, ErrNotAdjacent
	}
	return ca, cb, nil
}

// LinkCount returns the number of undirected passages in the grid.
func (g *Grid) LinkCount() int {
	total := 0
	for i := range g.cells {
		total += g.cells[i].links.Size()
	}
	return total / 2
}
