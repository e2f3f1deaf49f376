package numbers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBetween(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		min, max  int
		inclusive bool
		want      bool
	}{
		{"inside", 2, 1, 3, true, true},
		{"below", 0, 1, 3, true, false},
		{"above", 4, 1, 3, true, false},
		{"equal bounds", 1, 1, 1, true, true},
		{"equal bounds exclusive", 1, 1, 1, false, false},
		{"lower bound exclusive", 1, 1, 3, false, false},
		{"inside exclusive", 2, 1, 3, false, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Between(test.value, test.min, test.max, test.inclusive))
		})
	}
}

func TestMin0(t *testing.T) {
	assert.Equal(t, 1, Min0(1))
	assert.Equal(t, 0, Min0(0))
	assert.Equal(t, 0, Min0(-1))
}

func TestLimit(t *testing.T) {
	assert.Equal(t, 0, Limit(0, 1))
	assert.Equal(t, 1, Limit(1, 1))
	assert.Equal(t, 1, Limit(2, 1))
}
