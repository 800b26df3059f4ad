package searchctl_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/chessgen/chessgen/pkg/chess"
	"github.com/chessgen/chessgen/pkg/search/searchctl"
)

func TestSearchWithinZeroBudgetReturnsDepthOneResult(t *testing.T) {
	ctx := context.Background()
	b := chess.StartingBoard()

	next := chess.SearchWithin(ctx, b, 0)

	found := false
	for _, m := range b.LegalMoves() {
		moved, err := b.Move(int(m.From.File()), int(m.From.Rank()), int(m.To.File()), int(m.To.Rank()))
		require.NoError(t, err)
		if moved == next {
			found = true
			break
		}
	}
	assert.True(t, found, "search_within with zero budget must return a legal successor")
}

func TestSearchWithinRespectsBudget(t *testing.T) {
	ctx := context.Background()
	b := chess.StartingBoard()

	start := time.Now()
	chess.SearchWithin(ctx, b, 300)
	elapsed := time.Since(start)

	assert.Less(t, elapsed, 2*time.Second)
}

func TestIterativeDepthLimitStopsEarly(t *testing.T) {
	ctx := context.Background()
	b := chess.StartingBoard()

	it := searchctl.Iterative[chess.Board]{Game: chess.Game, DepthLimit: lang.Some(2)}
	h, out := it.Launch(ctx, b)
	for range out {
	}
	pv := h.Halt()
	assert.LessOrEqual(t, pv.Depth, 2)
}
