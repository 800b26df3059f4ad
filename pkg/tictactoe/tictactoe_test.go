package tictactoe_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chessgen/chessgen/pkg/search"
	"github.com/chessgen/chessgen/pkg/tictactoe"
)

func TestWinnerDetectsCompletedRow(t *testing.T) {
	b := tictactoe.NewBoard()
	b = b.Move(0, 0) // X
	b = b.Move(1, 0) // O
	b = b.Move(0, 1) // X
	b = b.Move(1, 1) // O
	b = b.Move(0, 2) // X completes top row

	winner, won := b.Winner()
	require.True(t, won)
	assert.Equal(t, tictactoe.X, winner)
}

func TestFullySearchedGameEndsInDraw(t *testing.T) {
	ctx := context.Background()
	b := tictactoe.NewBoard()

	for i := 0; i < 9; i++ {
		if _, won := b.Winner(); won || b.Full() {
			break
		}
		b = search.SearchBest[tictactoe.Board](ctx, tictactoe.Game, b, 9)
	}

	_, won := b.Winner()
	assert.False(t, won, "perfect play from both sides should draw")
	assert.True(t, b.Full())
}
