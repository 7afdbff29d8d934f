package atomic

// Color represents the color of a player or piece.
type Color int8

const (
	// NoColor represents no color.
	NoColor Color = iota
	// White represents the color white.
	White
	// Black represents the color black.
	Black
)

// Other returns the opposite color. NoColor stays NoColor.
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

// String implements the fmt.Stringer interface.
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	}
	return "-"
}

// Name returns the color's display name.
func (c Color) Name() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "No Color"
}

// PieceType is the kind of a piece, independent of color.
type PieceType int8

const (
	// NoPieceType marks an empty square.
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PieceTypes lists every real piece type.
func PieceTypes() [6]PieceType {
	return [6]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}
}

// String returns the lowercase letter used for the type in FEN.
func (p PieceType) String() string {
	switch p {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	}
	return ""
}

// Name returns the type's display name.
func (p PieceType) Name() string {
	switch p {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return ""
}

// Piece is a colored piece. The zero value is NoPiece.
type Piece struct {
	Color Color
	Type  PieceType

	// moved is only meaningful for pawns; it narrows the pawn's
	// non-capturing displacements to a single step.
	moved bool
}

// NoPiece represents an empty square.
var NoPiece = Piece{}

// NewPiece returns an unmoved piece of the given color and type.
func NewPiece(c Color, t PieceType) Piece {
	return Piece{Color: c, Type: t}
}

// HasMoved reports whether a pawn has made its first move. It is always
// false for other piece types.
func (p Piece) HasMoved() bool {
	return p.Type == Pawn && p.moved
}

// IsEmpty reports whether p is NoPiece.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// String returns the FEN letter of the piece: uppercase for white.
func (p Piece) String() string {
	s := p.Type.String()
	if s != "" && p.Color == White {
		return string(rune(s[0] - 'a' + 'A'))
	}
	return s
}

var whiteGlyphs = map[PieceType]string{
	King: "♔", Queen: "♕", Rook: "♖", Bishop: "♗", Knight: "♘", Pawn: "♙",
}

var blackGlyphs = map[PieceType]string{
	King: "♚", Queen: "♛", Rook: "♜", Bishop: "♝", Knight: "♞", Pawn: "♟",
}

// Glyph returns the Unicode chess symbol for the piece, or "" for NoPiece.
func (p Piece) Glyph() string {
	if p.Color == White {
		return whiteGlyphs[p.Type]
	}
	return blackGlyphs[p.Type]
}
