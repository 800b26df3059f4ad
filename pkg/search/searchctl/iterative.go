// Package searchctl implements the iterative-deepening driver on top of
// pkg/search's negamax core.
package searchctl

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/seekerror/stdlib/pkg/util/iox"

	"github.com/chessgen/chessgen/pkg/game"
	"github.com/chessgen/chessgen/pkg/search"
)

// PV reports the outcome of the deepest iteration completed so far.
type PV[S any] struct {
	Depth int
	Score float64
	Best  S
	Time  time.Duration
}

func (p PV[S]) String() string {
	return fmt.Sprintf("depth=%v score=%.3f time=%v best=%v", p.Depth, p.Score, p.Time, p.Best)
}

// Handle lets a caller halt an in-flight iterative search and read back the
// best fully-completed depth's result. Halt is idempotent.
type Handle[S any] interface {
	Halt() PV[S]
}

// Iterative runs searches at depth 1, 2, 3, ... in a cancellable worker,
// adopting each one as the current best as soon as it completes. Halt blocks
// until depth 1 has completed, so a halted search always has a result.
type Iterative[S comparable] struct {
	Game game.Game[S]
	// DepthLimit caps how deep the driver will iterate, if present. Absent
	// means unbounded (limited only by the caller halting it or a budget
	// elapsing).
	DepthLimit lang.Optional[int]
}

// Launch starts the driver from root and returns a Handle plus a channel of
// completed-depth results. The channel is closed when the worker stops: when it
// is halted, when DepthLimit is reached, or when a depth returns an infinite
// (forced win or loss) score.
func (it Iterative[S]) Launch(ctx context.Context, root S) (Handle[S], <-chan PV[S]) {
	out := make(chan PV[S], 1)
	h := &handle[S]{init: iox.NewAsyncCloser(), quit: iox.NewAsyncCloser()}
	go h.run(ctx, it.Game, root, it.DepthLimit, out)
	return h, out
}

type handle[S comparable] struct {
	init, quit iox.AsyncCloser

	mu sync.Mutex
	pv PV[S]
}

func (h *handle[S]) run(ctx context.Context, g game.Game[S], root S, depthLimit lang.Optional[int], out chan PV[S]) {
	defer h.init.Close()
	defer close(out)

	wctx, cancel := contextx.WithQuitCancel(ctx, h.quit.Closed())
	defer cancel()

	limit, hasLimit := depthLimit.V()

	var hint *S
	for depth := 1; !h.quit.IsClosed(); depth++ {
		if hasLimit && depth > limit {
			return
		}
		start := time.Now()

		score, best := search.Search(wctx, g, root, depth, math.Inf(-1), math.Inf(1), hint)
		if score == search.CancelledScore {
			return // halted mid-depth: current_best remains the last completed one.
		}

		pv := PV[S]{Depth: depth, Score: score, Best: best, Time: time.Since(start)}
		logw.Debugf(ctx, "searched depth %v: %v", depth, pv)

		h.mu.Lock()
		h.pv = pv
		h.mu.Unlock()

		select {
		case <-out: // drop a stale unread result, keep only the latest.
		default:
		}
		out <- pv

		h.init.Close()
		hint = &best

		if math.IsInf(score, 0) {
			return // forced win/loss found: deeper search cannot improve on it.
		}
	}
}

func (h *handle[S]) Halt() PV[S] {
	<-h.init.Closed()
	h.quit.Close()

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pv
}

// SearchWithin runs iterative deepening until either the search exhausts
// itself or the budget is spent, then returns the best successor from the
// deepest fully-completed depth. A budget of zero or less returns the depth-1
// result.
func SearchWithin[S comparable](ctx context.Context, g game.Game[S], root S, budget time.Duration) S {
	if budget <= 0 {
		_, best := search.Search(ctx, g, root, 1, math.Inf(-1), math.Inf(1), nil)
		return best
	}

	it := Iterative[S]{Game: g}
	h, out := it.Launch(ctx, root)

	start := time.Now()
	soft := time.Duration(float64(budget) * 0.85)

	timer := time.NewTimer(budget)
	defer timer.Stop()

	for {
		select {
		case _, ok := <-out:
			if !ok || time.Since(start) >= soft {
				return h.Halt().Best
			}
		case <-timer.C:
			return h.Halt().Best
		}
	}
}
