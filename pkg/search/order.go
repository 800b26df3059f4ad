package search

import (
	"sort"

	"github.com/chessgen/chessgen/pkg/game"
)

// orderSuccessors sorts successors in place for alpha-beta move ordering: the
// hint, if present among them, goes first; everything else follows in
// descending order of static evaluation. Good move ordering is what makes
// alpha-beta cutoffs effective, so this is not a cosmetic step.
func orderSuccessors[S comparable](g game.Game[S], successors []S, hint *S) {
	priority := make(map[S]float64, len(successors))
	for _, s := range successors {
		priority[s] = g.Evaluate(s)
	}

	var h S
	if hint != nil {
		h = *hint
	}

	sort.SliceStable(successors, func(i, j int) bool {
		if hint != nil {
			hi, hj := successors[i] == h, successors[j] == h
			if hi != hj {
				return hi
			}
		}
		return priority[successors[i]] > priority[successors[j]]
	})
}
