package atomic

// plan is an accepted move, ready to be applied.
type plan struct {
	from, to Square
	piece    Piece
	victim   Piece
	capture  bool
}

// validateMove checks whether mover may play from -> to on b. The checks run
// in a fixed order and the first failure is returned.
func validateMove(b *Board, mover Color, from, to Square) (plan, *MoveError) {
	if !from.OnBoard() || !to.OnBoard() {
		return plan{}, reject(from, to, OutOfBounds)
	}

	pc, ok := b.Piece(from)
	if !ok {
		return plan{}, reject(from, to, NoPieceSelected)
	}
	if pc.Color != mover {
		return plan{}, reject(from, to, WrongOwner)
	}

	victim, capture := b.Piece(to)
	if capture && victim.Color == mover {
		return plan{}, reject(from, to, FriendlyFire)
	}
	// Capturing is suicide for the capturer, so a king may never do it.
	if capture && !canCapture(pc.Type) {
		return plan{}, reject(from, to, KingCannotCapture)
	}

	if !hasOffset(displacements(pc, capture), delta(from, to)) {
		return plan{}, reject(from, to, IllegalGeometry)
	}

	if needsClearPath(pc.Type) {
		for _, sq := range path(from, to) {
			if _, occupied := b.Piece(sq); occupied {
				return plan{}, reject(from, to, PathBlocked)
			}
		}
	}

	if capture && kingsInBlast(b, to) > 1 {
		return plan{}, reject(from, to, DoubleKingLoss)
	}

	return plan{from: from, to: to, piece: pc, victim: victim, capture: capture}, nil
}

// kingsInBlast counts kings on center and its neighbors, the direct victim
// included.
func kingsInBlast(b *Board, center Square) int {
	n := 0
	for _, sq := range append(b.Neighbors(center), center) {
		if p, ok := b.Piece(sq); ok && p.Type == King {
			n++
		}
	}
	return n
}

// IsLegal reports whether mover could play from -> to on b, without
// changing the board. A nil error means the move is legal.
func IsLegal(b *Board, mover Color, from, to Square) error {
	if _, err := validateMove(b, mover, from, to); err != nil {
		return err
	}
	return nil
}
