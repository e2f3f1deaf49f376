package mines

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const SaveStateVersion = 1

// ToSaveState packs the mine, flag and cover layers into a printable
// envelope. Nil grids encode to the empty string.
func ToSaveState(g *GameGrids) (string, error) {
	if g == nil {
		return "", nil
	}
	if err := Validate(g); err != nil {
		return "", err
	}

	record := strings.Join([]string{
		strconv.Itoa(SaveStateVersion),
		g.Dimensions().String(),
		packLayer(g.Mine),
		packLayer(g.Flag),
		packLayer(g.Cover),
	}, ".")

	return base64.StdEncoding.EncodeToString([]byte(record)), nil
}

// FromSaveState restores grids produced by [ToSaveState]. The mine count
// layer is recomputed from the mines. The empty string decodes to nil grids.
func FromSaveState(s string) (*GameGrids, error) {
	if s == "" {
		return nil, nil
	}

	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSaveState, err)
	}

	parts := strings.Split(string(raw), ".")
	if len(parts) != 5 {
		return nil, fmt.Errorf("%w: expected 5 segments, got %d", ErrInvalidSaveState, len(parts))
	}

	version, err := strconv.Atoi(parts[0])
	if err != nil || version != SaveStateVersion {
		return nil, fmt.Errorf("%w: unsupported version %q", ErrInvalidSaveState, parts[0])
	}

	dims, err := parseDimensions(parts[1])
	if err != nil {
		return nil, err
	}

	layers := make([]Layer, 3)
	for i, blob := range parts[2:] {
		if layers[i], err = unpackLayer(blob, dims); err != nil {
			return nil, err
		}
	}
	mine, flag, cover := layers[0], layers[1], layers[2]

	return &GameGrids{
		Mine:      mine,
		Cover:     cover,
		Flag:      flag,
		MineCount: countMines(mine),
	}, nil
}

func parseDimensions(s string) (Dimensions, error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return Dimensions{}, fmt.Errorf("%w: malformed dimensions %q", ErrInvalidSaveState, s)
	}
	w, werr := strconv.Atoi(ws)
	h, herr := strconv.Atoi(hs)
	if werr != nil || herr != nil || w <= 0 || h <= 0 {
		return Dimensions{}, fmt.Errorf("%w: malformed dimensions %q", ErrInvalidSaveState, s)
	}
	return Dimensions{Width: w, Height: h}, nil
}

// packLayer writes one bit per cell, row by row, most significant bit first.
func packLayer(l Layer) string {
	dims := l.Dimensions()
	buf := make([]byte, (dims.Area()+7)/8)
	i := 0
	for _, row := range l {
		for _, v := range row {
			if v != 0 {
				buf[i/8] |= 0x80 >> (i % 8)
			}
			i++
		}
	}
	return base64.StdEncoding.EncodeToString(buf)
}

func unpackLayer(s string, dims Dimensions) (Layer, error) {
	buf, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSaveState, err)
	}

	bits := len(buf) * 8
	if dims.Width > bits || dims.Height > bits/dims.Width {
		return nil, fmt.Errorf(
			"%w: %d bytes cannot hold a %s layer", ErrInvalidSaveState, len(buf), dims,
		)
	}

	l := NewLayer(dims, 0)
	for i := range dims.Area() {
		if buf[i/8]&(0x80>>(i%8)) != 0 {
			l[i/dims.Width][i%dims.Width] = 1
		}
	}
	return l, nil
}
