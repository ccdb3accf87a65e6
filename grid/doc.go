// Package grid models a rectangular maze as an arena of cells addressed by
// coordinates. It separates the fixed topology of the layout from the mutable
// passages ("links") carved into it by a generation algorithm.
//
// What:
//
//   - Grid owns a rows×columns matrix of Cell values, allocated once.
//   - Every Cell records up to four topological neighbors (north, south,
//     west, east) as Coord values, fixed at construction.
//   - Links are symmetric passages between adjacent cells. Link and Unlink
//     always update both endpoints through the Grid.
//   - CheckPerfect verifies the spanning-tree shape of a carved maze.
//
// Why:
//
//   - Cells never hold pointers to other cells, so there is no reference
//     cycle to manage: every cross-cell step resolves through Grid.At.
//   - Randomness is always supplied by the caller through the Rand
//     interface, so every consumer stays reproducible under a seed.
//
// Coordinates:
//
//	Row 0 is the northern edge, column 0 the western edge. Iteration is
//	row-major: (0,0), (0,1), ..., (rows-1, columns-1).
//
// Complexity:
//
//   - New:          O(R×C) time and memory.
//   - Link, Unlink: O(1) expected.
//   - CheckPerfect: O(R×C) time, O(R×C) memory.
//
// Errors:
//
//   - ErrInvalidDimensions: rows < 1 or columns < 1.
//   - ErrOutOfBounds:       a coordinate outside the grid passed to Link/Unlink.
//   - ErrNotAdjacent:       Link/Unlink on cells that are not topological neighbors.
//   - ErrAsymmetricLink, ErrNotSpanning, ErrCycle: CheckPerfect failures.
package grid
