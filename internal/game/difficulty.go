package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

const (
	Beginner     = "beginner"
	Intermediate = "intermediate"
	Expert       = "expert"
	Custom       = "custom"
)

const (
	MinCustomSide  = 5
	MaxCustomSide  = 100
	MinCustomMines = 10
)

type Difficulty struct {
	Name      string `json:"name"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	MineCount int    `json:"mine_count"`
}

func (d Difficulty) Dimensions() mines.Dimensions {
	return mines.Dimensions{Width: d.Width, Height: d.Height}
}

// Presets are offered in this order; the first one is the default.
var Presets = []Difficulty{
	{Name: Beginner, Width: 9, Height: 9, MineCount: 10},
	{Name: Intermediate, Width: 16, Height: 16, MineCount: 40},
	{Name: Expert, Width: 30, Height: 16, MineCount: 99},
}

var DefaultCustom = Difficulty{Name: Custom, Width: 10, Height: 10, MineCount: 20}

// NewCustom clamps the requested field to the supported range. Sides are
// kept within [MinCustomSide, MaxCustomSide]; mines are at least
// MinCustomMines and leave the first click and its neighbours free.
func NewCustom(width, height, mineCount int) Difficulty {
	width = min(max(width, MinCustomSide), MaxCustomSide)
	height = min(max(height, MinCustomSide), MaxCustomSide)
	mineCount = min(max(mineCount, MinCustomMines), width*height-9)
	return Difficulty{Name: Custom, Width: width, Height: height, MineCount: mineCount}
}

// FormatCustom renders custom settings as "W.H.M".
func FormatCustom(d Difficulty) string {
	return fmt.Sprintf("%d.%d.%d", d.Width, d.Height, d.MineCount)
}

// ParseCustom reads "W.H.M" settings. Missing trailing parts take their
// default; anything unparsable yields [DefaultCustom].
func ParseCustom(s string) Difficulty {
	values := []int{DefaultCustom.Width, DefaultCustom.Height, DefaultCustom.MineCount}
	if s != "" {
		parts := strings.Split(s, ".")
		if len(parts) > len(values) {
			return DefaultCustom
		}
		for i, part := range parts {
			v, err := strconv.Atoi(part)
			if err != nil {
				return DefaultCustom
			}
			values[i] = v
		}
	}
	return NewCustom(values[0], values[1], values[2])
}

// Difficulties holds the presets and the player's custom settings.
type Difficulties struct {
	Custom Difficulty
}

func (ds Difficulties) All() []Difficulty {
	return append(append([]Difficulty(nil), Presets...), ds.Custom)
}

func (ds Difficulties) Lookup(name string) (Difficulty, bool) {
	return lo.Find(ds.All(), func(d Difficulty) bool {
		return d.Name == name
	})
}

// Resolve returns the difficulty called name, or the first preset when the
// name is unknown.
func (ds Difficulties) Resolve(name string) Difficulty {
	if d, ok := ds.Lookup(name); ok {
		return d
	}
	return Presets[0]
}
