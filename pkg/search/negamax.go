// Package search implements negamax with alpha-beta pruning over pkg/game's
// generic Game[S] contract, plus (in pkg/search/searchctl) the
// iterative-deepening driver built on top of it.
package search

import (
	"context"
	"math"

	"github.com/seekerror/stdlib/pkg/util/contextx"

	"github.com/chessgen/chessgen/pkg/game"
)

// CancelledScore is the sentinel Search returns when cancellation is observed
// mid-recursion: a value outside any score Evaluate or a terminal state can
// legitimately produce. Callers must recognize and discard it rather than treat
// it as a real score -- it is deliberately not math.Inf so it cannot be
// confused with a genuine mate score by a stray sign flip.
const CancelledScore = -1_234_567

// Search implements negamax with alpha-beta pruning:
//
//	search(node, depth, α, β, hint) → (score, chosen_successor)
//
//	if depth == 0: return (evaluate(node), node)
//	successors := fully legal moves from node
//	if successors is empty: return (-∞, node) if loser, (+∞, node) if winner, else (0, node)
//	order successors: hint first if present, then descending by static evaluate
//	for each child:
//	    v := -search(child, depth-1, -β, -α, nil).score
//	    if v >= β: return (v, child)  // beta cutoff
//	    if v > α: α, best := v, child
//	return (α, best)
//
// The search periodically checks ctx for cancellation (contextx.IsCancelled)
// and, if cancelled, returns CancelledScore, which propagates up unchanged
// through every enclosing call rather than being negated like a real score.
func Search[S comparable](ctx context.Context, g game.Game[S], node S, depth int, alpha, beta float64, hint *S) (float64, S) {
	if contextx.IsCancelled(ctx) {
		return CancelledScore, node
	}
	if depth == 0 {
		return g.Evaluate(node), node
	}

	successors := g.Successors(node)
	if len(successors) == 0 {
		switch {
		case g.IsLoser(node):
			return math.Inf(-1), node
		case g.IsWinner(node):
			return math.Inf(1), node
		default:
			return 0, node
		}
	}

	orderSuccessors(g, successors, hint)

	best := successors[0]
	for _, child := range successors {
		g.PreFetchDeep(child)

		childScore, _ := Search(ctx, g, child, depth-1, -beta, -alpha, nil)
		if childScore == CancelledScore {
			return CancelledScore, node
		}

		v := -childScore
		if v >= beta {
			return v, child // beta cutoff
		}
		if v > alpha {
			alpha = v
			best = child
		}
	}
	return alpha, best
}

// SearchBest runs a single fixed-depth search from root and returns the chosen
// successor.
func SearchBest[S comparable](ctx context.Context, g game.Game[S], root S, depth int) S {
	_, best := Search(ctx, g, root, depth, math.Inf(-1), math.Inf(1), nil)
	return best
}
