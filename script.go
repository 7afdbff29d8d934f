/*
Package atomic provides parsing of move scripts: a small PGN-like text
format holding tag pairs, numbered coordinate moves, comments and a result.

	[Event "Demo"]
	[FEN "4k3/8/8/8/8/8/8/R3K3 w"]

	1. a1a8 {boom} 1-0

Example usage:

	// Parse a script
	script, err := ParseScript(strings.NewReader(text))

	// Replay it on a fresh game
	game, steps, err := script.Replay()
*/
package atomic

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/exp/maps"
)

// ErrResultMismatch is returned by Replay when the declared result of a
// script differs from the outcome of playing it.
var ErrResultMismatch = errors.New("atomic: script result does not match game outcome")

// TokenType is the type of a script token.
type TokenType int

const (
	EOF TokenType = iota
	TagStart
	TagKey
	TagValue
	TagEnd
	MoveNumber
	DOT
	MOVE
	COMMENT
	RESULT
)

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case TagStart:
		return "TagStart"
	case TagKey:
		return "TagKey"
	case TagValue:
		return "TagValue"
	case TagEnd:
		return "TagEnd"
	case MoveNumber:
		return "MoveNumber"
	case DOT:
		return "DOT"
	case MOVE:
		return "MOVE"
	case COMMENT:
		return "COMMENT"
	case RESULT:
		return "RESULT"
	}
	return "Unknown"
}

// Token is a lexical unit of a script.
type Token struct {
	Type  TokenType
	Value string
}

// ParserError is returned for malformed scripts.
type ParserError struct {
	Message    string
	TokenValue string
	TokenType  TokenType
	Position   int
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("atomic: parse error at token %d (%s %q): %s", e.Position, e.TokenType, e.TokenValue, e.Message)
}

// ScriptMove is one move of a script.
type ScriptMove struct {
	Number  int
	Color   Color
	Text    string
	From    Square
	To      Square
	Comment string
}

// Script is a parsed move script.
type Script struct {
	TagPairs TagPairs
	Moves    []ScriptMove
	// Result is the declared result, NoOutcome when the script ends
	// without one or with "*".
	Result Outcome
}

// Step records what happened to one scripted move.
type Step struct {
	Move   ScriptMove
	Result *MoveResult
	Err    error
}

// ParseMove parses a move in coordinate notation: "b2b4", "b2-b4" or
// "e4xf5". Trailing annotation marks ("+", "#", "!", "?") are ignored.
func ParseMove(s string) (Square, Square, error) {
	s = strings.TrimRight(strings.TrimSpace(s), "+#!?")
	s = strings.NewReplacer("-", "", "x", "", "X", "").Replace(s)
	if len(s) != 4 {
		return NoSquare, NoSquare, fmt.Errorf("atomic: move %q: %w", s, OutOfBounds)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return NoSquare, NoSquare, err
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return NoSquare, NoSquare, err
	}
	return from, to, nil
}

// ParseScript reads a complete script.
// An error is returned if the script is malformed or contains a move that
// does not name two board squares. Legality is only checked by Replay.
func ParseScript(r io.Reader) (*Script, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	tokens, err := TokenizeScript(string(raw))
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).Parse()
}

// TokenizeScript splits a script into tokens.
func TokenizeScript(s string) ([]Token, error) {
	var tokens []Token
	rs := []rune(s)
	for i := 0; i < len(rs); {
		ch := rs[i]
		switch {
		case unicode.IsSpace(ch):
			i++
		case ch == '[':
			tokens = append(tokens, Token{Type: TagStart, Value: "["})
			i++
			start := i
			for i < len(rs) && !unicode.IsSpace(rs[i]) && rs[i] != '"' && rs[i] != ']' {
				i++
			}
			tokens = append(tokens, Token{Type: TagKey, Value: string(rs[start:i])})
		case ch == ']':
			tokens = append(tokens, Token{Type: TagEnd, Value: "]"})
			i++
		case ch == '"':
			i++
			start := i
			for i < len(rs) && rs[i] != '"' {
				i++
			}
			if i >= len(rs) {
				return nil, &ParserError{Message: "unterminated tag value", TokenType: TagValue, TokenValue: string(rs[start:]), Position: len(tokens)}
			}
			tokens = append(tokens, Token{Type: TagValue, Value: string(rs[start:i])})
			i++
		case ch == '{':
			i++
			start := i
			for i < len(rs) && rs[i] != '}' {
				i++
			}
			if i >= len(rs) {
				return nil, &ParserError{Message: "unterminated comment", TokenType: COMMENT, TokenValue: string(rs[start:]), Position: len(tokens)}
			}
			tokens = append(tokens, Token{Type: COMMENT, Value: strings.TrimSpace(string(rs[start:i]))})
			i++
		case ch == ';':
			for i < len(rs) && rs[i] != '\n' {
				i++
			}
		default:
			start := i
			for i < len(rs) && !unicode.IsSpace(rs[i]) && !strings.ContainsRune("[]{}\";", rs[i]) {
				i++
			}
			tokens = append(tokens, wordTokens(string(rs[start:i]))...)
		}
	}
	return tokens, nil
}

// wordTokens classifies a bare word, splitting "12." and "12..." into a
// move number and a dot.
func wordTokens(w string) []Token {
	switch w {
	case "1-0", "0-1", "*":
		return []Token{{Type: RESULT, Value: w}}
	}
	digits := strings.TrimRight(w, ".")
	if digits != "" {
		if _, err := strconv.Atoi(digits); err == nil {
			if digits == w {
				return []Token{{Type: MoveNumber, Value: digits}}
			}
			return []Token{{Type: MoveNumber, Value: digits}, {Type: DOT, Value: w[len(digits):]}}
		}
	}
	return []Token{{Type: MOVE, Value: w}}
}

// Parser holds the state needed during parsing.
type Parser struct {
	script   *Script
	tokens   []Token
	position int
}

// NewParser creates a new parser for the given tokens.
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens: tokens,
		script: &Script{TagPairs: make(TagPairs), Result: NoOutcome},
	}
}

func (p *Parser) currentToken() Token {
	if p.position >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.position]
}

func (p *Parser) advance() {
	p.position++
}

func (p *Parser) errorf(format string, args ...any) *ParserError {
	tok := p.currentToken()
	return &ParserError{
		Message:    fmt.Sprintf(format, args...),
		TokenType:  tok.Type,
		TokenValue: tok.Value,
		Position:   p.position,
	}
}

// Parse processes all tokens and returns the script.
func (p *Parser) Parse() (*Script, error) {
	if err := p.parseHeader(); err != nil {
		return nil, err
	}
	if err := p.parseMoveText(); err != nil {
		return nil, err
	}
	return p.script, nil
}

func (p *Parser) parseHeader() error {
	for p.currentToken().Type == TagStart {
		if err := p.parseTagPair(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) parseTagPair() error {
	p.advance()

	if p.currentToken().Type != TagKey || p.currentToken().Value == "" {
		return p.errorf("expected tag key")
	}
	key := p.currentToken().Value
	p.advance()

	if p.currentToken().Type != TagValue {
		return p.errorf("expected tag value")
	}
	value := p.currentToken().Value
	p.advance()

	if p.currentToken().Type != TagEnd {
		return p.errorf("expected tag end")
	}
	p.advance()

	p.script.TagPairs[key] = value
	return nil
}

func (p *Parser) parseMoveText() error {
	number := 1
	color := White
	if fen, ok := p.script.TagPairs["FEN"]; ok {
		if _, turn, err := decodeFEN(fen); err == nil {
			color = turn
		}
	}

	for p.position < len(p.tokens) {
		token := p.currentToken()

		switch token.Type {
		case MoveNumber:
			n, err := strconv.Atoi(token.Value)
			if err != nil || n < 1 {
				return p.errorf("invalid move number")
			}
			number = n
			p.advance()
			if p.currentToken().Type == DOT {
				if p.currentToken().Value == "..." {
					color = Black
				}
				p.advance()
			}

		case MOVE:
			from, to, err := ParseMove(token.Value)
			if err != nil {
				return p.errorf("invalid move: %v", err)
			}
			p.script.Moves = append(p.script.Moves, ScriptMove{
				Number: number,
				Color:  color,
				Text:   token.Value,
				From:   from,
				To:     to,
			})
			if color == Black {
				number++
			}
			color = color.Other()
			p.advance()

		case COMMENT:
			if n := len(p.script.Moves); n > 0 {
				mv := &p.script.Moves[n-1]
				if mv.Comment != "" {
					mv.Comment += " " + token.Value
				} else {
					mv.Comment = token.Value
				}
			}
			p.advance()

		case RESULT:
			p.script.Result = Outcome(token.Value)
			p.advance()
			if p.currentToken().Type != EOF {
				return p.errorf("unexpected token after result")
			}
			return nil

		default:
			return p.errorf("unexpected token")
		}
	}
	return nil
}

// NewGame returns a game set up from the script's tag pairs: the FEN tag,
// if present, selects the starting position and every tag is copied.
func (s *Script) NewGame() (*Game, error) {
	var options []func(*Game)
	if fen, ok := s.TagPairs["FEN"]; ok {
		opt, err := FEN(fen)
		if err != nil {
			return nil, err
		}
		options = append(options, opt)
	}
	g := NewGame(options...)
	maps.Copy(g.tagPairs, s.TagPairs)
	return g, nil
}

// Play submits every scripted move to g in order. Rejected moves are
// recorded and play continues with the next move, so a script may contain
// illegal attempts.
func (s *Script) Play(g *Game) []Step {
	steps := make([]Step, 0, len(s.Moves))
	for _, mv := range s.Moves {
		res, err := g.Move(mv.From, mv.To)
		steps = append(steps, Step{Move: mv, Result: res, Err: err})
	}
	return steps
}

// Replay plays the script on a new game. If the script declares a decisive
// result that differs from the final outcome, the game and steps are
// returned together with an error wrapping ErrResultMismatch.
func (s *Script) Replay() (*Game, []Step, error) {
	g, err := s.NewGame()
	if err != nil {
		return nil, nil, err
	}
	steps := s.Play(g)
	return g, steps, s.CheckResult(g.Outcome())
}

// CheckResult compares the declared result with the outcome o of playing the
// script. A script without a decisive result matches any outcome.
func (s *Script) CheckResult(o Outcome) error {
	if s.Result != NoOutcome && s.Result != o {
		return fmt.Errorf("%w: declared %s, got %s", ErrResultMismatch, s.Result, o)
	}
	return nil
}
