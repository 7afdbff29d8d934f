package atomic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StartingFEN is the standard starting position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"

var fenPieceTypes = map[byte]PieceType{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// FEN takes a string and returns a function that updates the game to the
// position it describes. Only the piece placement and the side to move are
// read; any further fields are ignored. Pawns off their home rank are
// treated as having moved. The returned function is designed to be used in
// the NewGame constructor.
// An error is returned if there is a problem parsing the FEN data.
func FEN(fen string) (func(*Game), error) {
	b, turn, err := decodeFEN(fen)
	if err != nil {
		return nil, err
	}
	return func(g *Game) {
		g.board = b
		g.turn = turn
	}, nil
}

func decodeFEN(fen string) (*Board, Color, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, NoColor, errors.New("atomic: invalid FEN: empty")
	}

	rows := strings.Split(fields[0], "/")
	if len(rows) != numRanks {
		return nil, NoColor, fmt.Errorf("atomic: invalid FEN %q: expected %d ranks, got %d", fen, numRanks, len(rows))
	}

	b := &Board{}
	for i, row := range rows {
		rank := numRanks - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			color := Black
			lower := ch
			if ch >= 'A' && ch <= 'Z' {
				color = White
				lower = ch - 'A' + 'a'
			}
			t, ok := fenPieceTypes[lower]
			if !ok {
				return nil, NoColor, fmt.Errorf("atomic: invalid FEN %q: unknown piece %q", fen, ch)
			}
			if file >= numFiles {
				return nil, NoColor, fmt.Errorf("atomic: invalid FEN %q: rank %d overflows", fen, rank+1)
			}
			p := NewPiece(color, t)
			if t == Pawn {
				p.moved = rank != pawnHomeRank(color)
			}
			b.Place(Sq(file, rank), p)
			file++
		}
		if file != numFiles {
			return nil, NoColor, fmt.Errorf("atomic: invalid FEN %q: rank %d has %d files", fen, rank+1, file)
		}
	}

	turn := White
	if len(fields) > 1 {
		switch fields[1] {
		case "w":
			turn = White
		case "b":
			turn = Black
		default:
			return nil, NoColor, fmt.Errorf("atomic: invalid FEN %q: side to move %q", fen, fields[1])
		}
	}
	return b, turn, nil
}

func pawnHomeRank(c Color) int {
	if c == Black {
		return numRanks - 2
	}
	return 1
}

func encodeFEN(b *Board, turn Color) string {
	var sb strings.Builder
	for rank := numRanks - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < numFiles; file++ {
			p, ok := b.Piece(Sq(file, rank))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteString("/")
		}
	}
	sb.WriteString(" ")
	sb.WriteString(turn.String())
	return sb.String()
}
