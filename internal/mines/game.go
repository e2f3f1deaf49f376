package mines

import (
	"fmt"
	"log/slog"

	"github.com/gammazero/deque"
)

var Log *slog.Logger = slog.Default()

// HandleClick resolves a click on a copy of g and returns the copy.
//
// A right click toggles the flag of a covered cell. A left click reveals a
// covered cell, flood fills from a cell without adjacent mines, or chords a
// revealed number whose flags are all placed. Clicking a mine (directly or
// by chording) yields [ErrFieldIsMineField] and no grids.
func HandleClick(g *GameGrids, click Coordinates, isRightClick, skipValidityCheck bool) (*GameGrids, error) {
	if !skipValidityCheck {
		if err := Validate(g); err != nil {
			return nil, err
		}
	} else if g == nil {
		return nil, InvalidGridsError{MissingGrid}
	}

	if !g.Contains(click) {
		return nil, fmt.Errorf("%w: %s outside %s", ErrPointOutOfBounds, click, g.Dimensions())
	}

	next := g.Clone()
	x, y := click.X, click.Y

	if isRightClick {
		if next.Cover[y][x] != 1 {
			return nil, ErrFieldIsNotCovered
		}
		if next.Flag[y][x] == 1 {
			next.Flag[y][x] = 0
		} else {
			next.Flag[y][x] = 1
		}
		return next, nil
	}

	switch {
	case next.Flag[y][x] == 1:
		return nil, ErrFieldIsFlaggedField
	case next.Mine[y][x] == 1:
		return nil, ErrFieldIsMineField
	case next.MineCount[y][x] == 0:
		next.uncover(next.floodFill(click))
	case next.Cover[y][x] == 1:
		next.Cover[y][x] = 0
	default:
		if err := next.chord(click); err != nil {
			return nil, err
		}
	}

	return next, nil
}

// floodFill collects start and every cell reachable from it through cells
// without adjacent mines, including the border of numbered cells.
func (g *GameGrids) floodFill(start Coordinates) []Coordinates {
	dims := g.Dimensions()
	visited := make([]bool, dims.Area())
	visited[start.Y*dims.Width+start.X] = true

	region := []Coordinates{start}
	var queue deque.Deque[Coordinates]
	queue.PushBack(start)
	for queue.Len() != 0 {
		c := queue.PopFront()
		for _, n := range dims.Neighbours(c) {
			i := n.Y*dims.Width + n.X
			if visited[i] {
				continue
			}
			visited[i] = true
			region = append(region, n)
			if g.MineCount[n.Y][n.X] == 0 {
				queue.PushBack(n)
			}
		}
	}
	return region
}

// chord opens the unflagged neighbours of a revealed number once the number
// of flags around it matches. It reports [ErrFieldIsMineField] if any of them
// hides a mine, in which case g must be discarded.
func (g *GameGrids) chord(c Coordinates) error {
	neighbours := g.Dimensions().Neighbours(c)

	flagged := 0
	for _, n := range neighbours {
		flagged += int(g.Flag[n.Y][n.X])
	}
	if flagged != int(g.MineCount[c.Y][c.X]) {
		return nil
	}

	detonated := false
	for _, n := range neighbours {
		switch {
		case g.Flag[n.Y][n.X] == 1:
		case g.Mine[n.Y][n.X] == 1:
			detonated = true
		case g.MineCount[n.Y][n.X] == 0:
			g.uncover(g.floodFill(n))
		default:
			g.Cover[n.Y][n.X] = 0
		}
	}
	if detonated {
		return ErrFieldIsMineField
	}
	return nil
}
