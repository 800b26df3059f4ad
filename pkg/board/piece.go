package board

import "fmt"

// PieceKind represents a chess piece type (King, Pawn, etc), independent of color. 3 bits.
type PieceKind uint8

const (
	NoPieceKind PieceKind = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

// Value returns the material value of the kind. The king's value is an engineering
// choice -- overwhelmingly large so that material balance never outweighs mate
// avoidance -- and is excluded from material-balance computations in pkg/eval.
func (k PieceKind) Value() int {
	switch k {
	case Pawn:
		return 1
	case Rook:
		return 5
	case Knight:
		return 3
	case Bishop:
		return 3
	case Queen:
		return 9
	case King:
		return 1000000
	default:
		return 0
	}
}

func (k PieceKind) IsValid() bool {
	return Pawn <= k && k <= King
}

// abbrev is the two-letter code used by the non-normative textual board rendering.
func (k PieceKind) abbrev() string {
	switch k {
	case Pawn:
		return "Pa"
	case Rook:
		return "Ro"
	case Knight:
		return "Kn"
	case Bishop:
		return "Bi"
	case Queen:
		return "Qu"
	case King:
		return "Ki"
	default:
		return "??"
	}
}

func ParsePieceKind(r rune) (PieceKind, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'r', 'R':
		return Rook, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoPieceKind, false
	}
}

func (k PieceKind) String() string {
	switch k {
	case NoPieceKind:
		return "-"
	case Pawn:
		return "p"
	case Rook:
		return "r"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

// Piece is a (kind, side) pair. The zero value is the empty-square sentinel.
type Piece struct {
	Kind PieceKind
	Side Color
}

// Empty is the empty-square sentinel piece.
var Empty = Piece{}

func (p Piece) IsEmpty() bool {
	return p.Kind == NoPieceKind
}

// String renders the piece as "{w,b}{Pa,Ro,Kn,Bi,Qu,Ki}", or three blanks for
// an empty cell.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "   "
	}
	return fmt.Sprintf("%v%v", p.Side, p.Kind.abbrev())
}
