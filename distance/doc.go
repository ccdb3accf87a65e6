// Package distance computes single-source shortest distances over the
// passages of a carved maze and reconstructs shortest paths from them.
//
// What
//
//   - Compute runs a layer-by-layer breadth-first search from a root cell,
//     following links only (walls are never crossed).
//   - Field.Get reports a cell's distance; unreachable cells are absent.
//   - Field.Max reports the farthest cell, ties broken by lowest row, then
//     lowest column.
//   - Field.PathTo walks back from a goal through linked neighbors whose
//     distance is exactly one less, yielding the root→goal path.
//   - LongestPath finds a longest path of a perfect maze with two passes.
//
// Why
//
//	A perfect maze is a tree, so every reachable cell has exactly one
//	shortest path and no relaxation is needed: plain BFS is exact.
//
// Complexity (N = rows×columns)
//
//   - Compute:     O(N) time, O(N) memory.
//   - Max, Cells:  O(N).
//   - PathTo:      O(d) where d is the goal's distance.
//   - LongestPath: two Computes plus one PathTo.
//
// Options
//
//   - WithMaxDepth(d): stop expanding beyond depth d (d > 0); 0 means no limit.
//   - WithOnVisit(fn): hook called for each cell as its layer is processed.
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrRootOutOfBounds  if the root coordinate is outside the grid.
//   - ErrOptionViolation  for invalid options (e.g. negative depth).
//
// Lookup misses (unreachable goal, broken link graph) are reported as a
// false boolean, never as an error.
package distance
