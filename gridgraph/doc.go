// Package gridgraph reads a floor plan into a grid of open cells and
// exposes it as a graph.
//
// What:
//
//   - Parse scans a plan string: '#' is an obstacle, '\n' ends a row, and
//     every other rune is an open cell at (row, column).
//   - Rows may be ragged; nothing about rectangularity is validated.
//   - Neighbors follow 4-connectivity in the fixed order up, down, left, right.
//   - ConnectedComponents groups open cells into 4-connected regions.
//   - ToCoreGraph converts open cells to a *core.Graph for other algorithms.
//
// Why:
//
//   - Tiling and matching problems on floor plans need a stable, row-major
//     enumeration of cells and cheap presence checks.
//
// Complexity:
//
//   - Parse:               O(len(plan)).
//   - IsOpen / Neighbors:  O(1).
//   - ConnectedComponents: O(N), Memory: O(N) for N open cells.
//   - ToCoreGraph:         O(N), Memory: O(N).
//
// Options:
//
//   - GridOptions.Obstacle: obstacle rune (default '#').
//   - GridOptions.RowTerminator: row terminator rune (default '\n').
//
// Errors:
//
//   - ErrInvalidOptions: obstacle and row terminator are equal.
package gridgraph
