// Package render draws a maze as text.
//
// The renderer needs only a narrow read surface: the grid dimensions and a
// link test between a cell and its east or south neighbor. Cell contents
// come from a caller-supplied Label, so the same walls can carry blanks,
// hexadecimal distances, a solution path or an ANSI heat map.
//
//	+---+---+---+
//	| 0   1   2 |
//	+---+---+   +
//	| 5   4   3 |
//	+---+---+---+
//
// Labels are expected to be three visible columns wide.
package render
