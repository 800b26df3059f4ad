// Package game defines the contract a two-player, perfect-information,
// zero-sum game must satisfy to be searched by pkg/search's negamax engine.
// Chess (pkg/chess), Tic-Tac-Toe (pkg/tictactoe) and Connect Four
// (pkg/connectfour) each instantiate Game[S] over their own state type, which
// validates that the search core carries no chess-specific assumptions.
package game

// Game is implemented by a state type S. S is expected to be an immutable value
// (or pointer to one): Successors must never mutate s or alias it into the
// states it returns.
type Game[S any] interface {
	// Successors returns every legal state reachable from s in one ply, from
	// the mover's perspective. An empty result means the position is terminal.
	Successors(s S) []S
	// Evaluate returns a static, side-to-move-relative score for s: larger is
	// better for whoever is to move in s.
	Evaluate(s S) float64
	// IsWinner reports whether the side to move in s has already won.
	IsWinner(s S) bool
	// IsLoser reports whether the side to move in s has already lost (e.g. is
	// checkmated): s itself has no successors and is not a tie.
	IsLoser(s S) bool
	// IsTie reports whether s is a drawn/terminal-non-decisive state.
	IsTie(s S) bool
	// PreFetchDeep hints that s's full subtree is about to be explored, giving
	// an implementation the opportunity to warm any caches it maintains. A
	// single-threaded implementation may treat this as a no-op.
	PreFetchDeep(s S)
	// PreFetchShallow hints that only s's static evaluation is about to be
	// read, not its subtree. A single-threaded implementation may treat this
	// as a no-op.
	PreFetchShallow(s S)
}
