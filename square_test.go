package atomic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in   string
		want Square
	}{
		{"a1", Sq(0, 0)},
		{"h8", Sq(7, 7)},
		{"E4", Sq(4, 3)},
		{" b7 ", Sq(1, 6)},
	}
	for _, tt := range tests {
		got, err := ParseSquare(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseSquareOutOfBounds(t *testing.T) {
	for _, in := range []string{"", "i1", "a0", "a9", "e44", "4e", "zz"} {
		sq, err := ParseSquare(in)
		assert.ErrorIs(t, err, OutOfBounds, in)
		assert.False(t, sq.OnBoard(), in)
	}
}

func TestSquareString(t *testing.T) {
	assert.Equal(t, "a1", Sq(0, 0).String())
	assert.Equal(t, "e4", Sq(4, 3).String())
	assert.Equal(t, "h8", Sq(7, 7).String())
	assert.Equal(t, "-", Sq(8, 0).String())
	assert.Equal(t, "-", NoSquare.String())
}

func TestSquareOffsetNeverWraps(t *testing.T) {
	assert.False(t, Sq(7, 3).Offset(1, 0).OnBoard())
	assert.False(t, Sq(0, 0).Offset(0, -1).OnBoard())
	assert.Equal(t, Sq(2, 2), Sq(0, 0).Offset(2, 2))
}
