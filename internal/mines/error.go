package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions   = errors.New("invalid dimensions")
	ErrMineCountTooHigh    = errors.New("the number of mines is greater than the number of free fields")
	ErrInvalidGameGrids    = errors.New("the game grids are not valid")
	ErrPointOutOfBounds    = errors.New("point out of bounds")
	ErrFieldIsNotCovered   = errors.New("field is not covered")
	ErrFieldIsFlaggedField = errors.New("field is flagged")
	ErrFieldIsMineField    = errors.New("field is a mine")
	ErrInvalidSaveState    = errors.New("invalid save state")
)

type InvalidGridsReason uint8

const (
	MissingGrid InvalidGridsReason = iota + 1
	DimensionMismatch
	MineGridInvalid
	FlagGridInvalid
	MineCountGridInvalid
	CoverGridInvalid
)

func (r InvalidGridsReason) String() string {
	switch r {
	case MissingGrid:
		return "missing grid"
	case DimensionMismatch:
		return "the dimensions don't match"
	case MineGridInvalid:
		return "the mine grid has unexpected values"
	case FlagGridInvalid:
		return "the flag grid has unexpected values"
	case MineCountGridInvalid:
		return "the mine count grid has unexpected values"
	case CoverGridInvalid:
		return "the cover grid has unexpected values"
	default:
		return fmt.Sprintf("reason(%d)", uint8(r))
	}
}

// InvalidGridsError is returned by [Validate]. It matches
// [ErrInvalidGameGrids] with [errors.Is].
type InvalidGridsError struct {
	Reason InvalidGridsReason
}

// [InvalidGridsError] implements [error]
func (e InvalidGridsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidGameGrids, e.Reason)
}

func (e InvalidGridsError) Is(target error) bool {
	return target == ErrInvalidGameGrids
}
