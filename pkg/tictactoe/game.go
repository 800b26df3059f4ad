package tictactoe

import "github.com/chessgen/chessgen/pkg/game"

// gameImpl implements game.Game[Board].
type gameImpl struct{}

var _ game.Game[Board] = gameImpl{}

// Successors returns one successor per empty cell, unless the board is
// already terminal (a win or a full board).
func (gameImpl) Successors(b Board) []Board {
	if _, won := b.Winner(); won || b.Full() {
		return nil
	}
	var out []Board
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if b.At(r, c) == Empty {
				out = append(out, b.Move(r, c))
			}
		}
	}
	return out
}

// Evaluate returns -1 if the side to move's opponent has already won (i.e. b
// is a loss for the mover) and 0 otherwise: a flat evaluation is sufficient
// since the full game tree is small enough to search exhaustively.
func (gameImpl) Evaluate(b Board) float64 {
	if winner, won := b.Winner(); won && winner != b.turn {
		return -1
	}
	return 0
}

// IsWinner always reports false: Tic-Tac-Toe's terminal check is framed from
// the side-to-move's perspective (IsLoser), matching pkg/chess's convention.
func (gameImpl) IsWinner(Board) bool {
	return false
}

// IsLoser reports whether the side to move has already lost: the mover's
// opponent completed a line on the previous ply.
func (gameImpl) IsLoser(b Board) bool {
	winner, won := b.Winner()
	return won && winner != b.turn
}

// IsTie reports whether the board is full with no winner.
func (gameImpl) IsTie(b Board) bool {
	_, won := b.Winner()
	return !won && b.Full()
}

func (gameImpl) PreFetchDeep(Board)    {}
func (gameImpl) PreFetchShallow(Board) {}

// Game is the shared Game[Board] instance.
var Game game.Game[Board] = gameImpl{}
