// Package fen reads and writes board.Position values in Forsyth-Edwards
// Notation, so tests and the CLI driver can set up positions concisely.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/chessgen/chessgen/pkg/board"
)

// Initial is the FEN of the standard chess starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN record into a Position. En passant target squares (FEN
// field 4) are accepted but discarded: this module does not model en passant
// (see DESIGN.md).
func Decode(s string) (*board.Position, error) {
	parts := strings.Split(strings.TrimSpace(s), " ")
	if len(parts) != 6 {
		return nil, fmt.Errorf("fen: invalid number of fields: %q", s)
	}

	placements, err := decodePlacement(parts[0])
	if err != nil {
		return nil, fmt.Errorf("fen: %v: %q", err, s)
	}

	turn, ok := parseColor(parts[1])
	if !ok {
		return nil, fmt.Errorf("fen: invalid active color: %q", s)
	}

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, fmt.Errorf("fen: invalid castling rights: %q", s)
	}

	if parts[3] != "-" {
		if _, err := board.ParseSquareStr(parts[3]); err != nil {
			return nil, fmt.Errorf("fen: invalid en passant square: %q", s)
		}
	}

	halfmove, err := strconv.Atoi(parts[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("fen: invalid halfmove clock: %q", s)
	}

	fullmove, err := strconv.Atoi(parts[5])
	if err != nil || fullmove < 1 {
		return nil, fmt.Errorf("fen: invalid fullmove number: %q", s)
	}

	ply := 2 * (fullmove - 1)
	if turn == board.Black {
		ply++
	}

	return board.NewPosition(placements, turn, castling, ply, halfmove, board.Queen)
}

// Encode renders pos as a FEN record. The en passant field is always "-":
// this module does not track an en passant target square (see DESIGN.md).
func Encode(pos *board.Position) string {
	var sb strings.Builder
	for r := board.Rank8; ; r-- {
		blanks := 0
		for f := board.ZeroFile; f < board.NumFiles; f++ {
			p := pos.PieceAt(board.NewSquare(f, r))
			if p.IsEmpty() {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(printPiece(p))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r == board.Rank1 {
			break
		}
		sb.WriteString("/")
	}

	fullmove := pos.Ply()/2 + 1

	return fmt.Sprintf("%v %v %v - %v %v", sb.String(), printColor(pos.Turn()), printCastling(pos.Castling()), pos.HalfmoveClock(), fullmove)
}

func decodePlacement(field string) ([]board.Placement, error) {
	var placements []board.Placement

	rank := board.Rank8
	file := board.ZeroFile
	for _, r := range field {
		switch {
		case r == '/':
			rank--
			file = board.ZeroFile
		case unicode.IsDigit(r):
			file += board.File(r - '0')
		case unicode.IsLetter(r):
			kind, ok := board.ParsePieceKind(r)
			if !ok {
				return nil, fmt.Errorf("invalid piece %q", r)
			}
			side := board.Black
			if unicode.IsUpper(r) {
				side = board.White
			}
			placements = append(placements, board.Placement{
				Square: board.NewSquare(file, rank),
				Piece:  board.Piece{Kind: kind, Side: side},
			})
			file++
		default:
			return nil, fmt.Errorf("invalid character %q", r)
		}
	}
	return placements, nil
}

func parseCastling(str string) (board.Castling, bool) {
	if str == "-" {
		return board.NoCastlingRights, true
	}

	var ret board.Castling
	for _, r := range str {
		switch r {
		case 'K':
			ret |= board.WhiteKingSideCastle
		case 'Q':
			ret |= board.WhiteQueenSideCastle
		case 'k':
			ret |= board.BlackKingSideCastle
		case 'q':
			ret |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return ret, true
}

func printCastling(c board.Castling) string {
	return c.String()
}

func parseColor(str string) (board.Color, bool) {
	switch str {
	case "w":
		return board.White, true
	case "b":
		return board.Black, true
	default:
		return 0, false
	}
}

func printColor(c board.Color) string {
	if c == board.White {
		return "w"
	}
	return "b"
}

func printPiece(p board.Piece) rune {
	r := []rune(p.Kind.String())[0]
	if p.Side == board.White {
		return unicode.ToUpper(r)
	}
	return r
}
