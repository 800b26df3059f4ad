package chess_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chessgen/chessgen/pkg/board"
	"github.com/chessgen/chessgen/pkg/chess"
)

func move(t *testing.T, b chess.Board, ff, fr, tf, tr int) chess.Board {
	t.Helper()
	next, err := b.Move(ff, fr, tf, tr)
	require.NoError(t, err)
	return next
}

func TestFoolsMate(t *testing.T) {
	b := chess.StartingBoard()
	b = move(t, b, 4, 1, 4, 3)
	b = move(t, b, 4, 6, 4, 4)
	b = move(t, b, 5, 0, 2, 3)
	b = move(t, b, 5, 7, 2, 4)
	b = move(t, b, 3, 0, 5, 2)
	b = move(t, b, 0, 6, 0, 5)
	b = move(t, b, 5, 2, 5, 6)

	assert.True(t, b.InCheckmate())
	assert.Equal(t, board.Black, b.Turn())
}

func TestCheckWithoutMate(t *testing.T) {
	b := chess.StartingBoard()
	b = move(t, b, 1, 0, 0, 2)
	b = move(t, b, 0, 6, 0, 5)
	b = move(t, b, 0, 2, 1, 4)
	b = move(t, b, 1, 6, 1, 5)
	b = move(t, b, 1, 4, 2, 6)

	assert.True(t, b.InCheck())
	assert.False(t, b.InCheckmate())
}

func TestIllegalMoveRejected(t *testing.T) {
	b := chess.StartingBoard()
	_, err := b.Move(0, 1, 1, 2)
	assert.Error(t, err)
}

func TestWrongSideRejected(t *testing.T) {
	b := chess.StartingBoard()
	_, err := b.Move(0, 6, 0, 5)
	assert.Error(t, err)
}

func TestEmptyBoardStalemate(t *testing.T) {
	pos, err := board.NewPosition(nil, board.White, board.NoCastlingRights, 0, 0, board.Queen)
	require.NoError(t, err)
	b := chess.FromPosition(pos)

	assert.True(t, b.IsDraw())
	assert.True(t, b.GameOver())
}

func TestIterativeDeepeningReturnsLegalMove(t *testing.T) {
	ctx := context.Background()
	b := chess.StartingBoard()

	next := chess.SearchWithin(ctx, b, 500)

	var found bool
	for _, m := range b.LegalMoves() {
		moved := move(t, b, int(m.From.File()), int(m.From.Rank()), int(m.To.File()), int(m.To.Rank()))
		if moved == next {
			found = true
			break
		}
	}
	assert.True(t, found)
}

func TestStartingBoardInvariants(t *testing.T) {
	b := chess.StartingBoard()
	assert.Len(t, b.LegalMoves(), 20)

	p, ok := b.PieceAt(0, 1)
	require.True(t, ok)
	assert.Equal(t, board.Pawn, p.Kind)
	assert.Equal(t, board.White, p.Side)
}

func TestMoveDoesNotMutateReceiver(t *testing.T) {
	b := chess.StartingBoard()
	next := move(t, b, 4, 1, 4, 3)

	assert.NotEqual(t, b, next)
	p, ok := b.PieceAt(4, 1)
	require.True(t, ok)
	assert.Equal(t, board.Pawn, p.Kind)
}

func TestIndexOutOfRangePanics(t *testing.T) {
	b := chess.StartingBoard()
	assert.Panics(t, func() {
		b.PieceAt(8, 0)
	})
}
