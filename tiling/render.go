package tiling

import (
	"strings"

	"github.com/katalvlaran/lvtile/gridgraph"
)

const dominoLetters = "abcdefghijklmnopqrstuvwxyz"

// Render draws grid with each domino as a pair of equal letters. Obstacles
// keep '#', open cells not covered by any domino print '.'. Adjacent
// dominoes never share a letter. Every scanned row ends with '\n'.
func Render(grid *gridgraph.GridGraph, dominoes []Domino) string {
	// 1) Cell → domino index
	owner := make(map[gridgraph.Coord]int, 2*len(dominoes))
	for i, d := range dominoes {
		owner[d.Black] = i
		owner[d.Red] = i
	}

	// 2) Greedy lettering: smallest letter unused by already lettered neighbors
	letters := make([]byte, len(dominoes))
	for i, d := range dominoes {
		used := make(map[byte]bool)
		for _, c := range []gridgraph.Coord{d.Black, d.Red} {
			for _, n := range grid.Neighbors(c) {
				if j, ok := owner[n]; ok && j < i {
					used[letters[j]] = true
				}
			}
		}
		letters[i] = dominoLetters[len(dominoLetters)-1]
		for k := 0; k < len(dominoLetters); k++ {
			if !used[dominoLetters[k]] {
				letters[i] = dominoLetters[k]
				break
			}
		}
	}

	// 3) Rows
	var sb strings.Builder
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Width(row); col++ {
			c := gridgraph.Coord{Row: row, Col: col}
			switch j, ok := owner[c]; {
			case ok:
				sb.WriteByte(letters[j])
			case grid.IsOpen(c):
				sb.WriteByte('.')
			default:
				sb.WriteByte(gridgraph.Obstacle)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
