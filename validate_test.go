package atomic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardFromFEN(t *testing.T, fen string) *Board {
	t.Helper()
	b, _, err := decodeFEN(fen)
	require.NoError(t, err)
	return b
}

func TestValidationOrder(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		mover  Color
		move   string
		reason Reason
	}{
		// b5 is three files away, so geometry would also fail.
		{"king capture before geometry", "4k3/8/8/1p6/4K3/8/8/8 w", White, "e4b5", KingCannotCapture},
		{"friendly fire before king capture", "4k3/8/8/8/8/8/3P4/4K3 w", White, "e1d2", FriendlyFire},
		{"owner before friendly fire", StartingFEN, Black, "a1a2", WrongOwner},
		{"pawn double step through a piece", "4k3/8/8/8/8/4n3/4P3/4K3 w", White, "e2e4", PathBlocked},
		{"pawn forward onto a piece", "4k3/8/8/8/8/4n3/4P3/4K3 w", White, "e2e3", IllegalGeometry},
		{"geometry before path", StartingFEN, White, "c1c3", IllegalGeometry},
		{"path before double king", "8/8/2k5/Rn1p4/4K3/8/8/8 w", White, "a5d5", PathBlocked},
		{"black double king", "8/8/2k5/3R4/4K3/8/8/3r4 b", Black, "d1d5", DoubleKingLoss},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFromFEN(t, tt.fen)
			from, to, err := ParseMove(tt.move)
			require.NoError(t, err)

			_, moveErr := validateMove(b, tt.mover, from, to)
			require.NotNil(t, moveErr)
			assert.Equal(t, tt.reason, moveErr.Reason)
			assert.Equal(t, from, moveErr.From)
			assert.Equal(t, to, moveErr.To)
		})
	}
}

func TestValidPlan(t *testing.T) {
	b := boardFromFEN(t, "4k3/8/8/8/8/8/R2n4/4K3 w")
	p, moveErr := validateMove(b, White, Sq(0, 1), Sq(3, 1))
	require.Nil(t, moveErr)
	assert.True(t, p.capture)
	assert.Equal(t, Knight, p.victim.Type)
	assert.Equal(t, Rook, p.piece.Type)
}

func TestIsLegal(t *testing.T) {
	b := StartingBoard()
	before := b.SquareMap()

	assert.NoError(t, IsLegal(b, White, Sq(4, 1), Sq(4, 3)))
	assert.NoError(t, IsLegal(b, Black, Sq(6, 7), Sq(5, 5)))
	assert.ErrorIs(t, IsLegal(b, White, Sq(4, 1), Sq(4, 4)), IllegalGeometry)
	assert.ErrorIs(t, IsLegal(b, White, Sq(4, 1), Sq(4, 9)), OutOfBounds)
	assert.Equal(t, before, b.SquareMap())
}

func TestMoveErrorMessage(t *testing.T) {
	err := reject(Sq(0, 0), Sq(0, 2), PathBlocked)
	assert.Equal(t, "atomic: move a1a3 rejected: "+PathBlocked.Error(), err.Error())
	assert.ErrorIs(t, err, PathBlocked)
	assert.NotErrorIs(t, err, IllegalGeometry)
}
