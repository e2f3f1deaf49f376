package mines

import (
	"fmt"

	"github.com/vancomm/minesweeper-engine/internal/numbers"
)

// MineSentinel marks a mine cell in the mine count layer. Real adjacency
// counts never exceed 8.
const MineSentinel uint8 = 9

type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (d Dimensions) Area() int {
	return d.Width * d.Height
}

func (d Dimensions) Contains(c Coordinates) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < d.Width && c.Y < d.Height
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Neighbours returns the in-bounds cells at Chebyshev distance 1 from c.
func (d Dimensions) Neighbours(c Coordinates) []Coordinates {
	fromX, toX := numbers.Min0(c.X-1), numbers.Limit(c.X+1, d.Width-1)
	fromY, toY := numbers.Min0(c.Y-1), numbers.Limit(c.Y+1, d.Height-1)

	ns := make([]Coordinates, 0, 8)
	for y := fromY; y <= toY; y++ {
		for x := fromX; x <= toX; x++ {
			if x == c.X && y == c.Y {
				continue
			}
			ns = append(ns, Coordinates{x, y})
		}
	}
	return ns
}

type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coordinates) String() string {
	return fmt.Sprintf("%d:%d", c.X, c.Y)
}

// Layer is one rectangular grid of cell values, indexed [y][x].
type Layer [][]uint8

func NewLayer(dims Dimensions, initial uint8) Layer {
	l := make(Layer, dims.Height)
	for y := range l {
		row := make([]uint8, dims.Width)
		if initial != 0 {
			for x := range row {
				row[x] = initial
			}
		}
		l[y] = row
	}
	return l
}

// Dimensions reports the layer height and the width of its first row.
func (l Layer) Dimensions() Dimensions {
	d := Dimensions{Height: len(l)}
	if len(l) > 0 {
		d.Width = len(l[0])
	}
	return d
}

func (l Layer) Clone() Layer {
	if l == nil {
		return nil
	}
	c := make(Layer, len(l))
	for y, row := range l {
		c[y] = append([]uint8(nil), row...)
	}
	return c
}

// Count sums all cells of the layer.
func (l Layer) Count() (n int) {
	for _, row := range l {
		for _, v := range row {
			n += int(v)
		}
	}
	return
}

func (l Layer) hasDimensions(d Dimensions) bool {
	if len(l) != d.Height {
		return false
	}
	for _, row := range l {
		if len(row) != d.Width {
			return false
		}
	}
	return true
}

func (l Layer) valuesAtMost(limit uint8) bool {
	for _, row := range l {
		for _, v := range row {
			if v > limit {
				return false
			}
		}
	}
	return true
}

// GameGrids groups the four aligned layers of a game. Values are replaced,
// never mutated: every operation in this package returns fresh grids.
type GameGrids struct {
	Mine      Layer `json:"mine"`
	Cover     Layer `json:"cover"`
	Flag      Layer `json:"flag"`
	MineCount Layer `json:"mine_count"`
}

// NewIdleGrids returns the grids shown before the first click: fully
// covered, no mines, no flags.
func NewIdleGrids(dims Dimensions) *GameGrids {
	return &GameGrids{
		Mine:      NewLayer(dims, 0),
		Cover:     NewLayer(dims, 1),
		Flag:      NewLayer(dims, 0),
		MineCount: NewLayer(dims, 0),
	}
}

func (g *GameGrids) Clone() *GameGrids {
	if g == nil {
		return nil
	}
	return &GameGrids{
		Mine:      g.Mine.Clone(),
		Cover:     g.Cover.Clone(),
		Flag:      g.Flag.Clone(),
		MineCount: g.MineCount.Clone(),
	}
}

func (g *GameGrids) Dimensions() Dimensions {
	return g.Mine.Dimensions()
}

func (g *GameGrids) Contains(c Coordinates) bool {
	return g.Dimensions().Contains(c)
}

// uncover reveals every listed cell that is not flagged.
func (g *GameGrids) uncover(cells []Coordinates) {
	for _, c := range cells {
		if g.Flag[c.Y][c.X] == 1 {
			continue
		}
		g.Cover[c.Y][c.X] = 0
	}
}

// addSurroundingMineCounts bumps the count of every neighbour of a mine at c,
// saturating at MineSentinel so mined neighbours keep their sentinel.
func addSurroundingMineCounts(counts Layer, c Coordinates) {
	for _, n := range counts.Dimensions().Neighbours(c) {
		counts[n.Y][n.X] = min(MineSentinel, counts[n.Y][n.X]+1)
	}
}

// countMines derives the mine count layer from a mine layer.
func countMines(mine Layer) Layer {
	counts := NewLayer(mine.Dimensions(), 0)
	for y, row := range mine {
		for x, v := range row {
			if v == 1 {
				counts[y][x] = MineSentinel
				addSurroundingMineCounts(counts, Coordinates{x, y})
			}
		}
	}
	return counts
}
