// Package chess is the engine's external API, built on pkg/board's immutable
// Position and pkg/eval's evaluator: an immutable Board value type plus the
// free search functions that operate on it.
package chess

import (
	"github.com/chessgen/chessgen/pkg/board"
	"github.com/chessgen/chessgen/pkg/eval"
)

// Board is an immutable chess position. Every mutating operation returns a new
// Board; the receiver is never modified and may be retained and reused freely.
// pos is held by value, not by pointer, so that two Boards built from separate
// allocations but identical content compare equal with ==: this is what lets
// pkg/search match a search hint against a freshly generated successor, and
// what lets callers compare a Board they built against one a search returned.
type Board struct {
	pos board.Position
}

// StartingBoard returns the standard chess starting position, White to move.
func StartingBoard() Board {
	return Board{pos: *board.StartingPosition()}
}

// FromPosition wraps an already-built *board.Position, e.g. one produced by
// pkg/board/fen.Decode.
func FromPosition(pos *board.Position) Board {
	return Board{pos: *pos}
}

// Position returns a *board.Position snapshot of b, e.g. for pkg/board/fen.Encode.
func (b Board) Position() *board.Position {
	return &b.pos
}

// PieceAt returns the piece at (file, rank) and true, or (Empty, false) if the
// square is unoccupied. Panics with board.IndexOutOfRange if file or rank is
// outside [0,7].
func (b Board) PieceAt(file, rank int) (board.Piece, bool) {
	sq := board.SquareFromFileRank(file, rank)
	p := b.pos.PieceAt(sq)
	return p, !p.IsEmpty()
}

// Move validates and applies the move (fromFile,fromRank)->(toFile,toRank),
// returning the resulting Board. b itself is never modified. Returns
// *board.InvalidMove if the move is illegal.
func (b Board) Move(fromFile, fromRank, toFile, toRank int) (Board, error) {
	from := board.SquareFromFileRank(fromFile, fromRank)
	to := board.SquareFromFileRank(toFile, toRank)

	next, err := b.pos.Move(from, to, true)
	if err != nil {
		return Board{}, err
	}
	return Board{pos: *next}, nil
}

// WithPromotionPiece returns a copy of b whose pending promotion kind is set to
// kind, for the next pawn move that reaches its last rank.
func (b Board) WithPromotionPiece(kind board.PieceKind) Board {
	return Board{pos: *b.pos.WithPendingPromotion(kind)}
}

// MoveCoord is a (from, to) square pair, the element type of LegalMoves.
type MoveCoord struct {
	From, To board.Square
}

func (m MoveCoord) String() string {
	return m.From.String() + m.To.String()
}

// LegalMoves returns the set of (from, to) square pairs reachable by a single
// legal move from b: a pawn with several promotion choices to the same
// destination contributes one entry.
func (b Board) LegalMoves() []MoveCoord {
	seen := make(map[MoveCoord]bool)
	var out []MoveCoord
	for _, m := range board.LegalMoves(&b.pos) {
		c := MoveCoord{m.From, m.To}
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// InCheck reports whether the side to move is in check.
func (b Board) InCheck() bool {
	return board.InCheck(&b.pos)
}

// InCheckmate reports whether the side to move is checkmated.
func (b Board) InCheckmate() bool {
	return board.InCheckmate(&b.pos)
}

// InStalemate reports whether the side to move is stalemated.
func (b Board) InStalemate() bool {
	return board.InStalemate(&b.pos)
}

// IsDraw reports whether b is drawn, by stalemate or the fifty-move rule.
func (b Board) IsDraw() bool {
	return board.IsDraw(&b.pos)
}

// GameOver reports whether b is a terminal position: checkmate, stalemate, or
// the fifty-move draw.
func (b Board) GameOver() bool {
	return board.IsGameOver(&b.pos)
}

// Evaluate returns b's static evaluation from the side-to-move's perspective.
func (b Board) Evaluate() float64 {
	return eval.Evaluate(&b.pos)
}

// Turn returns the side to move.
func (b Board) Turn() board.Color {
	return b.pos.Turn()
}

func (b Board) String() string {
	return b.pos.String()
}
