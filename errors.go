package atomic

import "fmt"

// Reason classifies why a move was rejected. Every Reason is an error, so
// callers can match with errors.Is(err, atomic.PathBlocked).
type Reason uint8

const (
	// OutOfBounds indicates that the origin or destination is off the board.
	OutOfBounds Reason = iota + 1
	// GameAlreadyOver indicates that the game has an outcome.
	GameAlreadyOver
	// NoPieceSelected indicates that the origin square is empty.
	NoPieceSelected
	// WrongOwner indicates that the selected piece belongs to the opponent.
	WrongOwner
	// FriendlyFire indicates that the destination holds the mover's own piece.
	FriendlyFire
	// IllegalGeometry indicates that the displacement is not in the piece's
	// legal set for this context.
	IllegalGeometry
	// PathBlocked indicates that a square between origin and destination is
	// occupied.
	PathBlocked
	// KingCannotCapture indicates that a king tried to move onto an occupied
	// square.
	KingCannotCapture
	// DoubleKingLoss indicates that the capture would destroy both kings.
	DoubleKingLoss
)

var reasonText = map[Reason]string{
	OutOfBounds:       "square out of bounds",
	GameAlreadyOver:   "game already over",
	NoPieceSelected:   "no piece on origin square",
	WrongOwner:        "piece belongs to the opponent",
	FriendlyFire:      "destination holds own piece",
	IllegalGeometry:   "illegal move for piece",
	PathBlocked:       "path not clear",
	KingCannotCapture: "king cannot capture",
	DoubleKingLoss:    "capture would destroy both kings",
}

// Error implements the error interface.
func (r Reason) Error() string {
	if s, ok := reasonText[r]; ok {
		return s
	}
	return fmt.Sprintf("unknown reason %d", uint8(r))
}

// String implements the fmt.Stringer interface.
func (r Reason) String() string {
	return r.Error()
}

// MoveError is returned for every rejected move.
type MoveError struct {
	From   Square
	To     Square
	Reason Reason
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("atomic: move %s%s rejected: %s", e.From, e.To, e.Reason)
}

// Unwrap returns the rejection reason.
func (e *MoveError) Unwrap() error {
	return e.Reason
}

func reject(from, to Square, r Reason) *MoveError {
	return &MoveError{From: from, To: to, Reason: r}
}
