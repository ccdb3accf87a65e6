// Package lvmaze carves perfect mazes on rectangular grids and measures
// distances across them.
//
// 🚀 What is lvmaze?
//
//	A small, deterministic library plus CLI that brings together:
//		• Grid primitives: cells addressed by coordinate, symmetric passages
//		• Six carving algorithms: Binary Tree, Sidewinder, Aldous–Broder,
//		  Wilson's, Hunt-and-Kill, Recursive Backtracker
//		• Distance fields: BFS from any root, path reconstruction, longest path
//		• Rendering: ASCII art with distance, path and heat-map labels
//
// ✨ Why choose lvmaze?
//
//   - Reproducible – every random choice flows through an injected source
//   - Verifiable – CheckPerfect proves a carved grid is a spanning tree
//   - Pure Go algorithms – library packages never log or touch globals
//
// Everything is organized under four subpackages:
//
//	grid/     - Grid, Cell, Coord, Link/Unlink and perfection checks
//	generate/ - Apply(grid, algorithm, opts...) and the seeding policy
//	distance/ - Compute, Field.PathTo, Field.Max, LongestPath
//	render/   - ASCII output and cell labels
//
// The lvmaze command (cmd/lvmaze) wraps them:
//
//	lvmaze generate --rows 8 --columns 12 --algorithm wilsons --show distances
//
// Quick ASCII example, a 2×3 maze with one passage bending around:
//
//	+---+---+---+
//	|           |
//	+---+---+   +
//	|           |
//	+---+---+---+
package lvmaze
