package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chessgen/chessgen/pkg/board"
	"github.com/chessgen/chessgen/pkg/eval"
)

// TestDistanceFromEdge checks a few hand-computed corner, center and
// near-corner values.
func TestDistanceFromEdge(t *testing.T) {
	assert.Equal(t, 3.0, eval.DistanceFromEdge(board.NewSquare(board.FileD, board.Rank4))) // idx(3,3)
	assert.Equal(t, 0.0, eval.DistanceFromEdge(board.NewSquare(board.FileA, board.Rank1))) // idx(0,0)
	assert.Equal(t, 0.0, eval.DistanceFromEdge(board.NewSquare(board.FileA, board.Rank8))) // idx(0,7)
	assert.Equal(t, 1.0, eval.DistanceFromEdge(board.NewSquare(board.FileG, board.Rank7))) // idx(6,6)
}

func TestEvaluateFiftyMoveDrawShortcut(t *testing.T) {
	placements := []board.Placement{
		{Square: board.NewSquare(board.FileE, board.Rank1), Piece: board.Piece{Kind: board.King, Side: board.White}},
		{Square: board.NewSquare(board.FileE, board.Rank8), Piece: board.Piece{Kind: board.King, Side: board.Black}},
		{Square: board.NewSquare(board.FileA, board.Rank1), Piece: board.Piece{Kind: board.Queen, Side: board.White}},
	}
	pos, err := board.NewPosition(placements, board.White, board.NoCastlingRights, 0, 50, board.Queen)
	require.NoError(t, err)

	assert.Equal(t, 0.0, eval.Evaluate(pos))
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	withExtraQueen := []board.Placement{
		{Square: board.NewSquare(board.FileE, board.Rank1), Piece: board.Piece{Kind: board.King, Side: board.White}},
		{Square: board.NewSquare(board.FileE, board.Rank8), Piece: board.Piece{Kind: board.King, Side: board.Black}},
		{Square: board.NewSquare(board.FileD, board.Rank1), Piece: board.Piece{Kind: board.Queen, Side: board.White}},
	}
	withoutExtraQueen := []board.Placement{
		{Square: board.NewSquare(board.FileE, board.Rank1), Piece: board.Piece{Kind: board.King, Side: board.White}},
		{Square: board.NewSquare(board.FileE, board.Rank8), Piece: board.Piece{Kind: board.King, Side: board.Black}},
	}

	ahead, err := board.NewPosition(withExtraQueen, board.White, board.NoCastlingRights, 0, 0, board.Queen)
	require.NoError(t, err)
	even, err := board.NewPosition(withoutExtraQueen, board.White, board.NoCastlingRights, 0, 0, board.Queen)
	require.NoError(t, err)

	assert.Greater(t, eval.Evaluate(ahead), eval.Evaluate(even))
}
