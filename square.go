package atomic

import (
	"fmt"
	"strings"
)

const (
	numFiles   = 8
	numRanks   = 8
	numSquares = numFiles * numRanks
)

// A Square is a location on the board. File 0 is the a-file and rank 0 is
// the first rank. Squares outside [0,7] on either axis are representable but
// never refer to a board location.
type Square struct {
	File int
	Rank int
}

// NoSquare is the canonical off-board square.
var NoSquare = Square{File: -1, Rank: -1}

// Sq returns the square at the given file and rank.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// ParseSquare parses a square in algebraic form ("e4", "H8"). Input that does
// not name a board square returns an error wrapping OutOfBounds.
func ParseSquare(s string) (Square, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("atomic: square %q: %w", s, OutOfBounds)
	}
	return Square{File: int(s[0] - 'a'), Rank: int(s[1] - '1')}, nil
}

// OnBoard reports whether the square refers to one of the 64 board squares.
func (sq Square) OnBoard() bool {
	return sq.File >= 0 && sq.File < numFiles && sq.Rank >= 0 && sq.Rank < numRanks
}

// Offset returns the square displaced by df files and dr ranks. The result
// may be off the board.
func (sq Square) Offset(df, dr int) Square {
	return Square{File: sq.File + df, Rank: sq.Rank + dr}
}

// String implements the fmt.Stringer interface.
func (sq Square) String() string {
	if !sq.OnBoard() {
		return "-"
	}
	return string(rune('a'+sq.File)) + string(rune('1'+sq.Rank))
}

func (sq Square) index() int {
	return sq.Rank*numFiles + sq.File
}

func squareAt(idx int) Square {
	return Square{File: idx % numFiles, Rank: idx / numFiles}
}

// Offset is a file/rank displacement between two squares.
type Offset struct {
	DF, DR int
}

// delta returns the displacement from one square to another.
func delta(from, to Square) Offset {
	return Offset{DF: to.File - from.File, DR: to.Rank - from.Rank}
}
