package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/vancomm/minesweeper-engine/internal/numbers"
)

// DefaultSparePerimeter keeps the first clicked cell and its neighbours free
// of mines.
const DefaultSparePerimeter = 1

func inSparePerimeter(dims Dimensions, c, spare Coordinates, perimeter int) bool {
	return numbers.Between(c.X, numbers.Min0(spare.X-perimeter), numbers.Limit(spare.X+perimeter, dims.Width-1), true) &&
		numbers.Between(c.Y, numbers.Min0(spare.Y-perimeter), numbers.Limit(spare.Y+perimeter, dims.Height-1), true)
}

// sparePerimeterSize counts the in-bounds cells of the safe perimeter.
func sparePerimeterSize(dims Dimensions, spare Coordinates, perimeter int) int {
	w := numbers.Limit(spare.X+perimeter, dims.Width-1) - numbers.Min0(spare.X-perimeter) + 1
	h := numbers.Limit(spare.Y+perimeter, dims.Height-1) - numbers.Min0(spare.Y-perimeter) + 1
	return w * h
}

// CreateGameGrids places mineCount mines on a fresh field, keeping every
// cell within sparePerimeter (Chebyshev distance) of spare free.
//
// Cells are visited column by column and each free cell receives a mine with
// probability mineCount/area; passes repeat until every mine is placed. A nil
// r draws from the global source.
func CreateGameGrids(
	dims Dimensions, mineCount int, spare Coordinates, sparePerimeter int, r *rand.Rand,
) (*GameGrids, error) {
	if dims.Width <= 0 || dims.Height <= 0 || mineCount < 0 || sparePerimeter < 0 {
		return nil, fmt.Errorf(
			"%w: %s with %d mines, spare perimeter %d",
			ErrInvalidDimensions, dims, mineCount, sparePerimeter,
		)
	}
	if !dims.Contains(spare) {
		return nil, fmt.Errorf("%w: spare cell %s outside %s", ErrPointOutOfBounds, spare, dims)
	}

	area := dims.Area()
	if mineCount > area-1 || mineCount > area-sparePerimeterSize(dims, spare, sparePerimeter) {
		return nil, ErrMineCountTooHigh
	}

	draw := rand.Float64
	if r != nil {
		draw = r.Float64
	}

	g := &GameGrids{
		Mine:      NewLayer(dims, 0),
		Cover:     NewLayer(dims, 1),
		Flag:      NewLayer(dims, 0),
		MineCount: NewLayer(dims, 0),
	}

	chance := float64(mineCount) / float64(area)
	left, passes := mineCount, 0
	for left > 0 {
		passes++
	scan:
		for x := range dims.Width {
			for y := range dims.Height {
				c := Coordinates{x, y}
				if g.Mine[y][x] == 1 || inSparePerimeter(dims, c, spare, sparePerimeter) {
					continue
				}
				if draw() <= chance {
					g.Mine[y][x] = 1
					g.MineCount[y][x] = MineSentinel
					addSurroundingMineCounts(g.MineCount, c)
					left--
				}
				if left == 0 {
					break scan
				}
			}
		}
	}

	Log.Debug("created game grids",
		"dimensions", dims.String(), "mines", mineCount, "spare", spare.String(), "passes", passes,
	)

	return g, nil
}
