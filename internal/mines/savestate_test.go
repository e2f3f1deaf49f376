package mines

import (
	"encoding/base64"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecord(t *testing.T, s string) []string {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(s)
	require.NoError(t, err)
	return strings.Split(string(raw), ".")
}

func encodeRecord(parts ...string) string {
	return base64.StdEncoding.EncodeToString([]byte(strings.Join(parts, ".")))
}

func TestToSaveStateSegments(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	g5x5, err := CreateGameGrids(Dimensions{5, 5}, 16, Coordinates{2, 2}, DefaultSparePerimeter, r)
	require.NoError(t, err)
	g7x3, err := CreateGameGrids(Dimensions{7, 3}, 12, Coordinates{1, 1}, DefaultSparePerimeter, r)
	require.NoError(t, err)

	s5x5, err := ToSaveState(g5x5)
	require.NoError(t, err)
	s7x3, err := ToSaveState(g7x3)
	require.NoError(t, err)

	parts := decodeRecord(t, s5x5)
	require.Len(t, parts, 5)
	assert.Equal(t, "1", parts[0])
	assert.Equal(t, "5x5", parts[1])
	assert.Equal(t, "7x3", decodeRecord(t, s7x3)[1])

	for _, blob := range parts[2:] {
		buf, err := base64.StdEncoding.DecodeString(blob)
		require.NoError(t, err)
		assert.Len(t, buf, 4)
	}
}

func TestToSaveStateMineBits(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	g, err := CreateGameGrids(Dimensions{5, 5}, 16, Coordinates{2, 2}, DefaultSparePerimeter, r)
	require.NoError(t, err)

	s, err := ToSaveState(g)
	require.NoError(t, err)

	buf, err := base64.StdEncoding.DecodeString(decodeRecord(t, s)[2])
	require.NoError(t, err)

	var bits strings.Builder
	for _, b := range buf {
		fmt.Fprintf(&bits, "%08b", b)
	}
	assert.Equal(t, "11111"+"10001"+"10001"+"10001"+"11111"+"0000000", bits.String())
}

func TestSaveStateRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	tests := []struct {
		dims  Dimensions
		mines int
	}{
		{Dimensions{5, 5}, 16},
		{Dimensions{9, 9}, 10},
		{Dimensions{30, 16}, 99},
		{Dimensions{7, 3}, 0},
	}

	for _, test := range tests {
		t.Run(test.dims.String(), func(t *testing.T) {
			g, err := CreateGameGrids(test.dims, test.mines, Coordinates{1, 1}, DefaultSparePerimeter, r)
			require.NoError(t, err)

			g, err = HandleClick(g, Coordinates{1, 1}, false, false)
			require.NoError(t, err)
			if g.Cover[test.dims.Height-1][test.dims.Width-1] == 1 {
				g, err = HandleClick(g, Coordinates{test.dims.Width - 1, test.dims.Height - 1}, true, false)
				require.NoError(t, err)
			}

			s, err := ToSaveState(g)
			require.NoError(t, err)

			restored, err := FromSaveState(s)
			require.NoError(t, err)
			assert.Equal(t, g, restored)
		})
	}
}

func TestSaveStateNil(t *testing.T) {
	s, err := ToSaveState(nil)
	require.NoError(t, err)
	assert.Empty(t, s)

	g, err := FromSaveState("")
	require.NoError(t, err)
	assert.Nil(t, g)
}

func TestToSaveStateInvalidGrids(t *testing.T) {
	g := NewIdleGrids(Dimensions{3, 3})
	g.Cover[0][0] = 2

	_, err := ToSaveState(g)
	assert.ErrorIs(t, err, ErrInvalidGameGrids)
}

func TestFromSaveStateInvalid(t *testing.T) {
	layer := base64.StdEncoding.EncodeToString([]byte{0, 0, 0, 0})

	tests := []struct {
		name  string
		input string
	}{
		{"not base64", "!!!"},
		{"too few segments", encodeRecord("1", "5x5", layer, layer)},
		{"too many segments", encodeRecord("1", "5x5", layer, layer, layer, layer)},
		{"unknown version", encodeRecord("2", "5x5", layer, layer, layer)},
		{"version not a number", encodeRecord("v1", "5x5", layer, layer, layer)},
		{"no dimension separator", encodeRecord("1", "55", layer, layer, layer)},
		{"zero width", encodeRecord("1", "0x5", layer, layer, layer)},
		{"negative height", encodeRecord("1", "5x-5", layer, layer, layer)},
		{"layer not base64", encodeRecord("1", "5x5", layer, "%%", layer)},
		{"layer too short", encodeRecord("1", "6x6", layer, layer, layer)},
		{"huge dimensions", encodeRecord("1", "9223372036854775807x2", layer, layer, layer)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g, err := FromSaveState(test.input)
			assert.ErrorIs(t, err, ErrInvalidSaveState)
			assert.Nil(t, g)
		})
	}
}
