package connectfour_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chessgen/chessgen/pkg/connectfour"
	"github.com/chessgen/chessgen/pkg/search"
)

func TestWinnerDetectsHorizontalFour(t *testing.T) {
	b := connectfour.NewBoard()
	for _, col := range []int{0, 0, 1, 1, 2, 2, 3} {
		b = b.Drop(col)
	}
	winner, won := b.Winner()
	require.True(t, won)
	assert.Equal(t, connectfour.Red, winner)
}

func TestSearchBestReturnsAReachableSuccessor(t *testing.T) {
	ctx := context.Background()
	b := connectfour.NewBoard()

	next := search.SearchBest[connectfour.Board](ctx, connectfour.Game, b, 3)

	var found bool
	for _, s := range connectfour.Game.Successors(b) {
		if s == next {
			found = true
		}
	}
	assert.True(t, found)
}
