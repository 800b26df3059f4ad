package board

import (
	"fmt"
)

// NumCells is the size of the 0x88 occupancy array: 16 files x 8 ranks, half of
// which (files 8-15 of every rank) are permanently off-board sentinels.
const NumCells = 128

// Placement describes one occupied square, used by NewPosition and the FEN codec.
type Placement struct {
	Square Square
	Piece  Piece
}

func (p Placement) String() string {
	return fmt.Sprintf("%v@%v", p.Piece, p.Square)
}

// Position is an immutable chess position: enough to generate, apply, and
// evaluate moves, but not to detect repetition-based draws (see DESIGN.md).
// All mutating operations return a new *Position; a successor holds no
// reference to its predecessor, which may be freed.
type Position struct {
	cells [NumCells]Piece

	turn     Color
	castling Castling
	ply      int
	halfmove int // half-moves since the last capture
	pending  PieceKind
}

// NewPosition builds a Position from an explicit piece placement list. castling
// is the initial set of castling rights; pending is the piece kind a pawn
// reaching its last rank promotes to (Queen if zero).
func NewPosition(placements []Placement, turn Color, castling Castling, ply, halfmove int, pending PieceKind) (*Position, error) {
	if pending == NoPieceKind {
		pending = Queen
	}

	ret := &Position{turn: turn, castling: castling, ply: ply, halfmove: halfmove, pending: pending}

	for _, pl := range placements {
		if !pl.Square.OnBoard() {
			return nil, fmt.Errorf("off-board placement: %v", pl)
		}
		if !ret.cells[pl.Square].IsEmpty() {
			return nil, fmt.Errorf("duplicate placement: %v", pl)
		}
		ret.cells[pl.Square] = pl.Piece
	}

	// Exactly-one-king-per-side holds for reachable positions but is not
	// enforced here: callers (tests, the FEN codec) need to build arbitrary,
	// even anomalous, positions -- an empty board included.
	return ret, nil
}

// StartingPosition returns the standard chess starting position, White to move,
// full castling rights, ply 0, half-move clock 0, pending promotion Queen.
func StartingPosition() *Position {
	back := [NumFiles]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

	var placements []Placement
	for f := ZeroFile; f < NumFiles; f++ {
		placements = append(placements,
			Placement{NewSquare(f, Rank1), Piece{back[f], White}},
			Placement{NewSquare(f, Rank2), Piece{Pawn, White}},
			Placement{NewSquare(f, Rank7), Piece{Pawn, Black}},
			Placement{NewSquare(f, Rank8), Piece{back[f], Black}},
		)
	}

	pos, err := NewPosition(placements, White, FullCastlingRights, 0, 0, Queen)
	if err != nil {
		panic(fmt.Sprintf("board: starting position: %v", err))
	}
	return pos
}

// PieceAt returns the piece occupying sq, or the Empty sentinel. Off-board
// squares are always empty.
func (p *Position) PieceAt(sq Square) Piece {
	if !sq.OnBoard() {
		return Empty
	}
	return p.cells[sq]
}

// Turn returns the side to move.
func (p *Position) Turn() Color {
	return p.turn
}

// Castling returns the set of castling rights still available to either side.
func (p *Position) Castling() Castling {
	return p.castling
}

// Ply returns the number of half-moves played since the start of the game.
func (p *Position) Ply() int {
	return p.ply
}

// HalfmoveClock returns the number of half-moves since the last capture.
func (p *Position) HalfmoveClock() int {
	return p.halfmove
}

// PendingPromotion returns the piece kind a pawn reaching its last rank becomes.
func (p *Position) PendingPromotion() PieceKind {
	return p.pending
}

// WithPendingPromotion returns a copy of p with its pending promotion kind
// changed. k must be one of Rook, Knight, Bishop, Queen; King and NoPieceKind
// are rejected by returning p unchanged.
func (p *Position) WithPendingPromotion(k PieceKind) *Position {
	if k == NoPieceKind || k == King || k == Pawn {
		return p
	}
	next := *p
	next.pending = k
	return &next
}

// KingSquare returns the square of side's king.
func (p *Position) KingSquare(side Color) (Square, bool) {
	for sq := Square(0); int(sq) < NumCells; sq++ {
		if !sq.OnBoard() {
			continue
		}
		if pc := p.cells[sq]; pc.Kind == King && pc.Side == side {
			return sq, true
		}
	}
	return 0, false
}

// clone returns a deep copy (the cells array is copied by value) ready for a
// caller to mutate into a successor position.
func (p *Position) clone() *Position {
	next := *p
	return &next
}

func (p *Position) String() string {
	return fmt.Sprintf("%v\n%v to move, castling %v, ply %v, halfmove %v, promotes-to %v",
		Render(p), p.turn, p.castling, p.ply, p.halfmove, p.pending)
}
