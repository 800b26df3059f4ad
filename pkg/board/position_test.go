package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chessgen/chessgen/pkg/board"
)

func TestStartingPosition(t *testing.T) {
	pos := board.StartingPosition()

	assert.Equal(t, board.White, pos.Turn())
	assert.Equal(t, board.FullCastlingRights, pos.Castling())
	assert.Equal(t, 0, pos.Ply())
	assert.Equal(t, 0, pos.HalfmoveClock())

	p := pos.PieceAt(board.NewSquare(board.FileA, board.Rank2))
	assert.Equal(t, board.Piece{Kind: board.Pawn, Side: board.White}, p)

	king, ok := pos.KingSquare(board.White)
	require.True(t, ok)
	assert.Equal(t, board.NewSquare(board.FileE, board.Rank1), king)
}

func TestPieceAtOffBoardIsEmpty(t *testing.T) {
	pos := board.StartingPosition()
	assert.True(t, pos.PieceAt(board.Square(0x18)).IsEmpty())
}

func TestMoveIsImmutable(t *testing.T) {
	pos := board.StartingPosition()

	from := board.NewSquare(board.FileE, board.Rank2)
	to := board.NewSquare(board.FileE, board.Rank4)

	next, err := pos.Move(from, to, true)
	require.NoError(t, err)

	assert.False(t, pos.PieceAt(from).IsEmpty(), "original position must be unmodified")
	assert.True(t, next.PieceAt(from).IsEmpty())
	assert.Equal(t, board.Piece{Kind: board.Pawn, Side: board.White}, next.PieceAt(to))
	assert.Equal(t, board.Black, next.Turn())
	assert.Equal(t, pos.Ply()+1, next.Ply())
}

func TestCastlingRookRelocation(t *testing.T) {
	placements := []board.Placement{
		{Square: board.NewSquare(board.FileE, board.Rank1), Piece: board.Piece{Kind: board.King, Side: board.White}},
		{Square: board.NewSquare(board.FileH, board.Rank1), Piece: board.Piece{Kind: board.Rook, Side: board.White}},
		{Square: board.NewSquare(board.FileE, board.Rank8), Piece: board.Piece{Kind: board.King, Side: board.Black}},
	}
	pos, err := board.NewPosition(placements, board.White, board.WhiteKingSideCastle, 0, 0, board.Queen)
	require.NoError(t, err)

	next, err := pos.Move(board.NewSquare(board.FileE, board.Rank1), board.NewSquare(board.FileG, board.Rank1), true)
	require.NoError(t, err)

	assert.Equal(t, board.Piece{Kind: board.King, Side: board.White}, next.PieceAt(board.NewSquare(board.FileG, board.Rank1)))
	assert.Equal(t, board.Piece{Kind: board.Rook, Side: board.White}, next.PieceAt(board.NewSquare(board.FileF, board.Rank1)))
	assert.True(t, next.PieceAt(board.NewSquare(board.FileH, board.Rank1)).IsEmpty())
	assert.False(t, next.Castling().Allows(board.WhiteKingSide))
}

func TestPromotion(t *testing.T) {
	placements := []board.Placement{
		{Square: board.NewSquare(board.FileA, board.Rank7), Piece: board.Piece{Kind: board.Pawn, Side: board.White}},
		{Square: board.NewSquare(board.FileE, board.Rank1), Piece: board.Piece{Kind: board.King, Side: board.White}},
		{Square: board.NewSquare(board.FileE, board.Rank8), Piece: board.Piece{Kind: board.King, Side: board.Black}},
	}
	pos, err := board.NewPosition(placements, board.White, board.NoCastlingRights, 0, 0, board.Rook)
	require.NoError(t, err)

	next, err := pos.Move(board.NewSquare(board.FileA, board.Rank7), board.NewSquare(board.FileA, board.Rank8), true)
	require.NoError(t, err)

	assert.Equal(t, board.Piece{Kind: board.Rook, Side: board.White}, next.PieceAt(board.NewSquare(board.FileA, board.Rank8)))
}

func TestFiftyMoveDraw(t *testing.T) {
	placements := []board.Placement{
		{Square: board.NewSquare(board.FileE, board.Rank1), Piece: board.Piece{Kind: board.King, Side: board.White}},
		{Square: board.NewSquare(board.FileE, board.Rank8), Piece: board.Piece{Kind: board.King, Side: board.Black}},
	}
	pos, err := board.NewPosition(placements, board.White, board.NoCastlingRights, 0, 50, board.Queen)
	require.NoError(t, err)

	assert.True(t, board.IsFiftyMoveDraw(pos))
	assert.True(t, board.IsDraw(pos))
}
