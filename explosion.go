package atomic

// Casualty is a piece removed from the board by an explosion.
type Casualty struct {
	Square Square
	Piece  Piece
}

// An Explosion describes the effect of a capture.
type Explosion struct {
	// Center is the destination square of the capture.
	Center Square
	// Victim is the piece that stood on Center.
	Victim Piece
	// Capturer is the moving piece, which never survives a capture.
	Capturer Casualty
	// Collateral lists the non-pawn neighbors of Center that were destroyed.
	Collateral []Casualty
	// KingDestroyed is true if a king was among the collateral. It does not
	// account for the victim.
	KingDestroyed bool
}

// Removed returns every square emptied by the explosion: the capturer's
// origin, the center and each collateral square.
func (e *Explosion) Removed() []Square {
	out := make([]Square, 0, len(e.Collateral)+2)
	out = append(out, e.Capturer.Square, e.Center)
	for _, c := range e.Collateral {
		out = append(out, c.Square)
	}
	return out
}

// explode applies an accepted capture to b. Pawns next to the center are
// immune; they only die as the direct victim.
func explode(b *Board, p plan) *Explosion {
	ex := &Explosion{
		Center:   p.to,
		Victim:   p.victim,
		Capturer: Casualty{Square: p.from, Piece: p.piece},
	}
	b.Clear(p.to)
	b.Clear(p.from)

	for _, sq := range b.Neighbors(p.to) {
		pc, ok := b.Piece(sq)
		if !ok || pc.Type == Pawn {
			continue
		}
		b.Clear(sq)
		ex.Collateral = append(ex.Collateral, Casualty{Square: sq, Piece: pc})
		if pc.Type == King {
			ex.KingDestroyed = true
		}
	}
	return ex
}
