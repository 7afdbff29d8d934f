package atomic

var (
	knightOffsets = []Offset{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	diagonalDirs   = []Offset{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	orthogonalDirs = []Offset{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	allDirs        = append(append([]Offset{}, diagonalDirs...), orthogonalDirs...)
)

// pawnDir is the rank direction a pawn of color c advances in.
func pawnDir(c Color) int {
	if c == Black {
		return -1
	}
	return 1
}

// rays expands each direction into displacements of length 1..maxLen.
func rays(dirs []Offset, maxLen int) []Offset {
	out := make([]Offset, 0, len(dirs)*maxLen)
	for _, d := range dirs {
		for n := 1; n <= maxLen; n++ {
			out = append(out, Offset{DF: d.DF * n, DR: d.DR * n})
		}
	}
	return out
}

// displacements returns the legal displacement set of p. capture selects
// the set used when the destination holds an opponent piece; only pawns
// distinguish the two.
func displacements(p Piece, capture bool) []Offset {
	switch p.Type {
	case Pawn:
		dir := pawnDir(p.Color)
		if capture {
			return []Offset{{-1, dir}, {1, dir}}
		}
		if p.moved {
			return []Offset{{0, dir}}
		}
		return []Offset{{0, dir}, {0, 2 * dir}}
	case Knight:
		return knightOffsets
	case Bishop:
		return rays(diagonalDirs, numFiles-1)
	case Rook:
		return rays(orthogonalDirs, numFiles-1)
	case Queen:
		return rays(allDirs, numFiles-1)
	case King:
		return rays(allDirs, 1)
	case NoPieceType:
		return nil
	}
	return nil
}

// needsClearPath reports whether every square strictly between origin and
// destination must be empty for t to move.
func needsClearPath(t PieceType) bool {
	switch t {
	case Knight, NoPieceType:
		return false
	case Pawn, Bishop, Rook, Queen, King:
		return true
	}
	return false
}

// canCapture reports whether t may ever move onto an occupied square.
func canCapture(t PieceType) bool {
	return t != King
}

func hasOffset(set []Offset, o Offset) bool {
	for _, s := range set {
		if s == o {
			return true
		}
	}
	return false
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

// path returns the squares strictly between from and to along the move's
// direction. The displacement must be orthogonal, diagonal or a pawn step;
// knight jumps have no path.
func path(from, to Square) []Square {
	d := delta(from, to)
	step := Offset{DF: sign(d.DF), DR: sign(d.DR)}
	var out []Square
	for sq := from.Offset(step.DF, step.DR); sq != to; sq = sq.Offset(step.DF, step.DR) {
		if !sq.OnBoard() {
			break
		}
		out = append(out, sq)
	}
	return out
}
