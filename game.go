/*
Package atomic implements the rules of Atomic Chess: every capture detonates,
removing the capturing piece, the captured piece and every non-pawn piece next
to the destination square. A game ends as soon as a king is removed, either by
a direct capture or by the blast.

The package validates and applies moves, tracks the side to move and the
outcome, and reports what each explosion destroyed. It has no notion of check.

Example usage:

	// Create new game
	game := NewGame()

	// Make moves
	game.PushMove("b2b4")
	game.PushMove("g7g5")

	// Check game status
	if game.Outcome() != NoOutcome {
		fmt.Printf("Game ended: %s by %s\n", game.Outcome(), game.Method())
	}
*/
package atomic

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// A Outcome is the result of a game.
type Outcome string

const (
	// NoOutcome indicates that a game is in progress.
	NoOutcome Outcome = "*"
	// WhiteWon indicates that white won the game.
	WhiteWon Outcome = "1-0"
	// BlackWon indicates that black won the game.
	BlackWon Outcome = "0-1"
)

// String implements the fmt.Stringer interface.
func (o Outcome) String() string {
	return string(o)
}

func winner(c Color) Outcome {
	if c == White {
		return WhiteWon
	}
	return BlackWon
}

// A Method is the method that generated the outcome.
type Method uint8

const (
	// NoMethod indicates that an outcome hasn't occurred.
	NoMethod Method = iota
	// KingCaptured indicates that a king was the direct victim of a capture.
	KingCaptured
	// KingExploded indicates that a king was destroyed by a blast.
	KingExploded
	// Resignation indicates that the game was won by resignation.
	Resignation
)

// String implements the fmt.Stringer interface.
func (m Method) String() string {
	switch m {
	case KingCaptured:
		return "KingCaptured"
	case KingExploded:
		return "KingExploded"
	case Resignation:
		return "Resignation"
	}
	return "NoMethod"
}

// TagPairs represents a collection of tag pairs describing a game.
type TagPairs map[string]string

// MoveResult describes an accepted move.
type MoveResult struct {
	From  Square
	To    Square
	Piece Piece
	// Explosion is nil for a plain relocation.
	Explosion *Explosion
	// Ended is true if the move decided the game.
	Ended bool
}

// Capture reports whether the move was a capture.
func (r *MoveResult) Capture() bool {
	return r.Explosion != nil
}

// A Game represents a single game of Atomic Chess. A Game is not safe for
// concurrent use.
type Game struct {
	board    *Board
	turn     Color
	outcome  Outcome
	method   Method
	tagPairs TagPairs
}

// NewGame returns a new game in the standard starting position with white
// to move. Optional functions can be provided to configure the initial game
// state.
//
// Example:
//
//	// Standard game
//	game := NewGame()
//
//	// Game from a custom position
//	fen, err := FEN("4k3/8/8/8/8/8/8/4K2R w")
//	if err != nil {
//	    panic(err)
//	}
//	game := NewGame(fen)
func NewGame(options ...func(*Game)) *Game {
	g := &Game{
		board:    StartingBoard(),
		turn:     White,
		outcome:  NoOutcome,
		method:   NoMethod,
		tagPairs: make(TagPairs),
	}
	for _, f := range options {
		if f != nil {
			f(g)
		}
	}
	return g
}

// Move submits a move from one square to another.
// On success it returns a result describing the move; on rejection it
// returns a *MoveError and leaves the game unchanged.
//
// Example:
//
//	res, err := game.Move(Sq(1, 1), Sq(1, 3)) // b2b4
//	if errors.Is(err, PathBlocked) {
//	    ...
//	}
func (g *Game) Move(from, to Square) (*MoveResult, error) {
	if g.outcome != NoOutcome {
		return nil, reject(from, to, GameAlreadyOver)
	}

	p, err := validateMove(g.board, g.turn, from, to)
	if err != nil {
		return nil, err
	}

	res := &MoveResult{From: from, To: to, Piece: p.piece}

	if !p.capture {
		g.board.relocate(from, to)
		g.turn = g.turn.Other()
		return res, nil
	}

	res.Explosion = explode(g.board, p)
	switch {
	case p.victim.Type == King:
		g.finish(winner(g.turn), KingCaptured)
	case res.Explosion.KingDestroyed:
		// The mover wins even when the king that exploded was its own.
		g.finish(winner(g.turn), KingExploded)
	default:
		g.turn = g.turn.Other()
	}
	res.Ended = g.outcome != NoOutcome
	return res, nil
}

// PushMove submits a move written in coordinate notation: "b2b4",
// "b2-b4" or "e4xf5".
//
// Example:
//
//	if _, err := game.PushMove("e2e4"); err != nil {
//	    log.Fatal(err)
//	}
func (g *Game) PushMove(notation string) (*MoveResult, error) {
	from, to, err := ParseMove(notation)
	if err != nil {
		return nil, err
	}
	return g.Move(from, to)
}

func (g *Game) finish(o Outcome, m Method) {
	g.outcome = o
	g.method = m
}

// Outcome returns the game outcome.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Method returns the method in which the outcome occurred.
func (g *Game) Method() Method {
	return g.method
}

// Turn returns the color to move. It stays on the winner once the game is over.
func (g *Game) Turn() Color {
	return g.turn
}

// Board returns a copy of the current board.
func (g *Game) Board() *Board {
	return g.board.copy()
}

// Position returns the FEN placement and side to move of the current board.
func (g *Game) Position() string {
	return encodeFEN(g.board, g.turn)
}

// Resign resigns the game for the given color. If the game has
// already been completed then the game is not updated.
func (g *Game) Resign(color Color) {
	if g.outcome != NoOutcome || color == NoColor {
		return
	}
	g.finish(winner(color.Other()), Resignation)
}

// AddTagPair adds or updates a tag pair with the given key and
// value and returns true if the value is overwritten.
func (g *Game) AddTagPair(k, v string) bool {
	if g.tagPairs == nil {
		g.tagPairs = make(TagPairs)
	}
	_, existing := g.tagPairs[k]
	g.tagPairs[k] = v
	return existing
}

// GetTagPair returns the value for the given key or "" if it is not present.
func (g *Game) GetTagPair(k string) string {
	return g.tagPairs[k]
}

// TagPairs returns a copy of the tag pairs.
func (g *Game) TagPairs() TagPairs {
	return maps.Clone(g.tagPairs)
}

// RemoveTagPair removes the tag pair for the given key and
// returns true if a tag pair was removed.
func (g *Game) RemoveTagPair(k string) bool {
	if _, existing := g.tagPairs[k]; existing {
		delete(g.tagPairs, k)
		return true
	}
	return false
}

// Clone returns a deep copy of the game.
func (g *Game) Clone() *Game {
	return &Game{
		board:    g.board.copy(),
		turn:     g.turn,
		outcome:  g.outcome,
		method:   g.method,
		tagPairs: maps.Clone(g.tagPairs),
	}
}

// String implements the fmt.Stringer interface. It returns the tag pairs
// and the current position as a move script without moves, which
// ParseScript reads back into an equivalent in-progress game.
func (g *Game) String() string {
	var sb strings.Builder

	tagPairList := make([]sortableTagPair, 0, len(g.tagPairs)+1)
	for tag, value := range g.tagPairs {
		if tag == "FEN" {
			continue
		}
		tagPairList = append(tagPairList, sortableTagPair{Key: tag, Value: value})
	}
	tagPairList = append(tagPairList, sortableTagPair{Key: "FEN", Value: g.Position()})
	slices.SortFunc(tagPairList, cmpTags)

	for _, tagPair := range tagPairList {
		sb.WriteString(fmt.Sprintf("[%s \"%s\"]\n", tagPair.Key, tagPair.Value))
	}
	sb.WriteString("\n")
	sb.WriteString(g.outcome.String())
	return sb.String()
}

type sortableTagPair struct {
	Key   string
	Value string
}

// cmpTags puts the standard tags first, then sorts the rest by key.
func cmpTags(a, b sortableTagPair) int {
	if a.Key == b.Key {
		return 0
	}
	for _, req := range []string{
		"Event",
		"Site",
		"Date",
		"Round",
		"White",
		"Black",
		"Result",
		"FEN",
	} {
		if a.Key == req {
			return -1
		}
		if b.Key == req {
			return +1
		}
	}
	return strings.Compare(a.Key, b.Key)
}
