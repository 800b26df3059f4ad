package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chessgen/chessgen/pkg/board"
)

func TestEmptyBoardIsDrawAndGameOver(t *testing.T) {
	pos, err := board.NewPosition(nil, board.White, board.NoCastlingRights, 0, 0, board.Queen)
	require.NoError(t, err)

	assert.True(t, board.IsDraw(pos))
	assert.True(t, board.IsGameOver(pos))
	assert.False(t, board.InCheck(pos))
}

// TestFoolsMateCheckmate reaches section 8 scenario S1 directly on *Position.
func TestFoolsMateCheckmate(t *testing.T) {
	pos := board.StartingPosition()

	seq := [][4]int{
		{4, 1, 4, 3}, {4, 6, 4, 4},
		{5, 0, 2, 3}, {5, 7, 2, 4},
		{3, 0, 5, 2}, {0, 6, 0, 5},
		{5, 2, 5, 6},
	}
	for _, m := range seq {
		from := board.SquareFromFileRank(m[0], m[1])
		to := board.SquareFromFileRank(m[2], m[3])
		next, err := pos.Move(from, to, true)
		require.NoError(t, err)
		pos = next
	}

	assert.True(t, board.InCheckmate(pos))
	assert.Equal(t, board.Black, pos.Turn())
}

func TestCheckmateImpliesCheckAndNotStalemate(t *testing.T) {
	pos := board.StartingPosition()
	seq := [][4]int{
		{4, 1, 4, 3}, {4, 6, 4, 4},
		{5, 0, 2, 3}, {5, 7, 2, 4},
		{3, 0, 5, 2}, {0, 6, 0, 5},
		{5, 2, 5, 6},
	}
	for _, m := range seq {
		from := board.SquareFromFileRank(m[0], m[1])
		to := board.SquareFromFileRank(m[2], m[3])
		next, err := pos.Move(from, to, true)
		require.NoError(t, err)
		pos = next
	}

	assert.True(t, board.InCheck(pos))
	assert.False(t, board.InStalemate(pos))
}
