package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Unknown          CellState = -2
	Flagged          CellState = -1
	CorrectlyFlagged CellState = 64
	ExplodedMine     CellState = 65
	FalselyFlagged   CellState = 66
	UnflaggedMine    CellState = 67
	/*
	 * Each cell of a view is one of the following values:
	 *
	 * 	- 0 to 8 mean the cell is open and shows its surrounding mine
	 * 	  count.
	 *
	 * 	- -1 means the cell is flagged.
	 *
	 * 	- -2 means the cell is covered.
	 *
	 * 	- 64 means a flag turned out to be on a mine.
	 *
	 * 	- 65 means the mine that ended the game.
	 *
	 * 	- 66 means a flag turned out to be on a safe cell.
	 *
	 * 	- 67 means a mine nobody flagged.
	 *
	 * Values 64 and above only appear once the game is over.
	 */
)

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return "#"
	case s == Flagged, s == CorrectlyFlagged:
		return "F"
	case s == FalselyFlagged:
		return "X"
	case s == UnflaggedMine:
		return "*"
	case s == ExplodedMine:
		return "@"
	case s == 0:
		return "."
	case 0 < s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// Grid is a row-major projection of game grids.
type Grid []CellState

func (g Grid) ToString(width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			fmt.Fprint(&b, g[y*width+x].String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

// View projects g into what a player may see. With reveal set every mine
// and every misplaced flag is shown.
func View(g *GameGrids, reveal bool) Grid {
	if g == nil {
		return nil
	}
	dims := g.Dimensions()
	view := make(Grid, 0, dims.Area())
	for y := range dims.Height {
		for x := range dims.Width {
			mine := g.Mine[y][x] == 1
			var s CellState
			switch {
			case g.Flag[y][x] == 1 && reveal && mine:
				s = CorrectlyFlagged
			case g.Flag[y][x] == 1 && reveal:
				s = FalselyFlagged
			case g.Flag[y][x] == 1:
				s = Flagged
			case g.Cover[y][x] == 1 && reveal && mine:
				s = UnflaggedMine
			case g.Cover[y][x] == 1:
				s = Unknown
			case mine:
				s = ExplodedMine
			default:
				s = CellState(g.MineCount[y][x])
			}
			view = append(view, s)
		}
	}
	return view
}
