// Package generate carves perfect mazes into a grid.Grid.
//
// What
//
//   - Six spanning-tree algorithms, selected by the closed Algorithm enum:
//   - BinaryTree:           link each cell north or east.
//   - Sidewinder:           row runs closed by a random northward exit.
//   - AldousBroder:         unbiased random walk; uniform spanning tree.
//   - Wilsons:              loop-erased random walks; uniform spanning tree.
//   - HuntAndKill:          random walk plus a row-major hunt for new starts.
//   - RecursiveBacktracker: depth-first walk with an explicit stack.
//   - Apply mutates the grid in place and leaves exactly rows×columns-1
//     symmetric links: connected, acyclic, every cell visited.
//
// Determinism
//
//	All randomness comes from the grid.Rand supplied through WithRand or
//	WithSeed. Without either, Apply uses a stream seeded with DefaultSeed,
//	so two calls with the same options on equal grids carve the same maze.
//
// Complexity (N = rows×columns)
//
//   - BinaryTree, Sidewinder, RecursiveBacktracker: O(N).
//   - HuntAndKill: O(N²) worst case (each hunt rescans the grid).
//   - AldousBroder, Wilsons: expected O(N log N) to O(N²) depending on
//     cover time; Aldous–Broder is markedly slower on large grids.
//
// Usage
//
//	g, _ := grid.New(10, 10)
//	err := generate.Apply(g, generate.Wilsons, generate.WithSeed(42))
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrUnknownAlgorithm if the Algorithm value is outside the enum.
//   - ErrAlreadyCarved    if the grid already holds links.
package generate
