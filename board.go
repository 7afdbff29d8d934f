package atomic

import "strings"

// A Board is an 8x8 grid holding at most one piece per square. The zero
// value is an empty board.
type Board struct {
	squares [numSquares]Piece
}

// NewBoard returns a board holding the given pieces. Off-board squares are
// ignored.
func NewBoard(m map[Square]Piece) *Board {
	b := &Board{}
	for sq, p := range m {
		b.Place(sq, p)
	}
	return b
}

// StartingBoard returns the standard chess starting arrangement.
func StartingBoard() *Board {
	b := &Board{}
	back := [numFiles]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file, t := range back {
		b.Place(Sq(file, 0), NewPiece(White, t))
		b.Place(Sq(file, 1), NewPiece(White, Pawn))
		b.Place(Sq(file, 6), NewPiece(Black, Pawn))
		b.Place(Sq(file, 7), NewPiece(Black, t))
	}
	return b
}

// Piece returns the piece on sq. The boolean is false when the square is
// empty or off the board.
func (b *Board) Piece(sq Square) (Piece, bool) {
	if !sq.OnBoard() {
		return NoPiece, false
	}
	p := b.squares[sq.index()]
	return p, !p.IsEmpty()
}

// Place puts p on sq, replacing any occupant.
func (b *Board) Place(sq Square, p Piece) {
	if !sq.OnBoard() {
		return
	}
	b.squares[sq.index()] = p
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.Place(sq, NoPiece)
}

// relocate moves the occupant of from onto to and empties from. Callers
// validate both squares first.
func (b *Board) relocate(from, to Square) {
	p := b.squares[from.index()]
	if p.Type == Pawn {
		p.moved = true
	}
	b.squares[to.index()] = p
	b.squares[from.index()] = NoPiece
}

var neighborOffsets = [8]Offset{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors returns the up to eight squares at Chebyshev distance one from
// sq, clipped to the board.
func (b *Board) Neighbors(sq Square) []Square {
	out := make([]Square, 0, len(neighborOffsets))
	for _, o := range neighborOffsets {
		n := sq.Offset(o.DF, o.DR)
		if n.OnBoard() {
			out = append(out, n)
		}
	}
	return out
}

// Count returns the number of pieces of type t and color c. NoColor counts
// both colors.
func (b *Board) Count(c Color, t PieceType) int {
	n := 0
	for _, p := range b.squares {
		if p.Type == t && (c == NoColor || p.Color == c) {
			n++
		}
	}
	return n
}

// SquareMap returns a snapshot of every occupied square. Mutating the map
// does not affect the board.
func (b *Board) SquareMap() map[Square]Piece {
	m := make(map[Square]Piece)
	for i, p := range b.squares {
		if !p.IsEmpty() {
			m[squareAt(i)] = p
		}
	}
	return m
}

func (b *Board) copy() *Board {
	cp := *b
	return &cp
}

// Draw returns a visual representation of the board from white's side,
// ranks 8 to 1.
func (b *Board) Draw() string {
	var sb strings.Builder
	sb.WriteString("  ╔═══╤═══╤═══╤═══╤═══╤═══╤═══╤═══╗\n")
	for rank := numRanks - 1; rank >= 0; rank-- {
		sb.WriteString(string(rune('1'+rank)) + " ║")
		for file := 0; file < numFiles; file++ {
			glyph := " "
			if p, ok := b.Piece(Sq(file, rank)); ok {
				glyph = p.Glyph()
			}
			sb.WriteString(" " + glyph + " ")
			if file < numFiles-1 {
				sb.WriteString("│")
			}
		}
		sb.WriteString("║\n")
		if rank > 0 {
			sb.WriteString("  ╟───┼───┼───┼───┼───┼───┼───┼───╢\n")
		}
	}
	sb.WriteString("  ╚═══╧═══╧═══╧═══╧═══╧═══╧═══╧═══╝\n")
	sb.WriteString("    a   b   c   d   e   f   g   h\n")
	return sb.String()
}
