package mines

// Validate checks the shape and the value domain of every layer. It does not
// check that the layers agree with each other.
func Validate(g *GameGrids) error {
	if g == nil || g.Mine == nil || g.Cover == nil || g.Flag == nil || g.MineCount == nil {
		return InvalidGridsError{MissingGrid}
	}

	dims := g.Mine.Dimensions()
	if dims.Width == 0 || dims.Height == 0 {
		return InvalidGridsError{DimensionMismatch}
	}
	for _, l := range []Layer{g.Mine, g.Cover, g.Flag, g.MineCount} {
		if !l.hasDimensions(dims) {
			return InvalidGridsError{DimensionMismatch}
		}
	}

	switch {
	case !g.Flag.valuesAtMost(1):
		return InvalidGridsError{FlagGridInvalid}
	case !g.Mine.valuesAtMost(1):
		return InvalidGridsError{MineGridInvalid}
	case !g.MineCount.valuesAtMost(MineSentinel):
		return InvalidGridsError{MineCountGridInvalid}
	case !g.Cover.valuesAtMost(1):
		return InvalidGridsError{CoverGridInvalid}
	}
	return nil
}
