package chess

import (
	"context"
	"time"

	"github.com/chessgen/chessgen/pkg/board"
	"github.com/chessgen/chessgen/pkg/game"
	"github.com/chessgen/chessgen/pkg/search"
	"github.com/chessgen/chessgen/pkg/search/searchctl"
)

// gameImpl implements game.Game[Board], adapting pkg/board/pkg/eval to the
// generic search core. It is stateless: every method reads only its argument.
type gameImpl struct{}

var _ game.Game[Board] = gameImpl{}

// Game is the shared game.Game[Board] instance, exported for callers that
// want to drive pkg/search/searchctl directly instead of through SearchBest
// and SearchWithin.
var Game game.Game[Board] = gameImpl{}

// Successors returns every Board reachable from b by one legal move.
func (gameImpl) Successors(b Board) []Board {
	moves := board.LegalMoves(&b.pos)
	out := make([]Board, 0, len(moves))
	for _, m := range moves {
		next, err := b.pos.Move(m.From, m.To, false)
		if err != nil {
			continue // defensive: every move in LegalMoves is, by construction, legal.
		}
		out = append(out, Board{pos: *next})
	}
	return out
}

// Evaluate returns b's static score from the side to move's perspective.
func (gameImpl) Evaluate(b Board) float64 {
	return b.Evaluate()
}

// IsWinner always reports false: in standard chess the side with no legal move
// is the one to move, so a position is never terminal from its own winning
// perspective.
func (gameImpl) IsWinner(Board) bool {
	return false
}

// IsLoser reports whether the side to move is checkmated.
func (gameImpl) IsLoser(b Board) bool {
	return b.InCheckmate()
}

// IsTie reports whether b is drawn: stalemate or the fifty-move rule.
func (gameImpl) IsTie(b Board) bool {
	return b.InStalemate() || board.IsFiftyMoveDraw(&b.pos)
}

// PreFetchDeep and PreFetchShallow are no-ops: this is a single-threaded
// search with no cache to warm.
func (gameImpl) PreFetchDeep(Board)    {}
func (gameImpl) PreFetchShallow(Board) {}

// SearchBest runs a single fixed-depth search from root and returns the chosen
// successor.
func SearchBest(ctx context.Context, root Board, depth int) Board {
	return search.SearchBest[Board](ctx, gameImpl{}, root, depth)
}

// SearchWithin runs iterative deepening within budgetMs and returns the best
// successor found. A budget of zero or less returns the depth-1 result.
func SearchWithin(ctx context.Context, root Board, budgetMs int) Board {
	budget := time.Duration(budgetMs) * time.Millisecond
	return searchctl.SearchWithin[Board](ctx, gameImpl{}, root, budget)
}
