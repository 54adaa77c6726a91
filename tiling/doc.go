// Package tiling decides whether a floor plan can be covered exactly by
// 1×2 dominoes.
//
// A plan is a string in which '#' marks an obstacle, '\n' ends a row and
// every other rune is an open cell. Open cells are colored like a
// checkerboard, anchored so that the first open cell (row-major) is black.
// Every domino covers one black and one red cell, so a tiling is a perfect
// matching in the bipartite graph joining orthogonally adjacent cells of
// opposite color.
//
// The matching is tested with maximum flow:
//
//	source ─1→ black ─1→ adjacent red ─1→ sink
//
// and the plan is tileable iff the flow equals the number of black cells.
// Plans with unequal color counts are rejected before any flow is run.
// A plan with no open cells is tileable.
//
// # Usage
//
//	tiling.CanTile("..\n..")   // true
//	tiling.CanTile("# #")      // false
//
//	checker := tiling.NewChecker(
//	    tiling.WithLogger(logger),
//	    tiling.WithObserver(recorder),
//	    tiling.WithComponentPrecheck(),
//	)
//	res := checker.Solve(plan)
//	fmt.Print(tiling.Render(gridgraph.Parse(plan), res.Dominoes))
package tiling
