package connectfour

import "github.com/chessgen/chessgen/pkg/game"

// gameImpl implements game.Game[Board].
type gameImpl struct{}

var _ game.Game[Board] = gameImpl{}

// Successors returns one successor per open column, unless the board is
// already terminal.
func (gameImpl) Successors(b Board) []Board {
	if _, won := b.Winner(); won || b.Full() {
		return nil
	}
	var out []Board
	for col := 0; col < Columns; col++ {
		if b.ColumnOpen(col) {
			out = append(out, b.Drop(col))
		}
	}
	return out
}

// Evaluate scores center columns higher: a disc near the middle participates
// in more potential four-in-a-rows than one on an edge column, the classic
// Connect Four heuristic when the tree is too large to search to a decision.
func (gameImpl) Evaluate(b Board) float64 {
	if winner, won := b.Winner(); won && winner != b.turn {
		return -1000
	}

	var score float64
	center := Columns / 2
	for col := 0; col < Columns; col++ {
		weight := float64(center - abs(col-center))
		for row := 0; row < Rows; row++ {
			switch b.at(col, row) {
			case b.turn:
				score += weight
			case b.turn.opponent():
				score -= weight
			}
		}
	}
	return score
}

// IsWinner always reports false, matching pkg/chess and pkg/tictactoe's
// side-to-move-relative terminal convention.
func (gameImpl) IsWinner(Board) bool {
	return false
}

// IsLoser reports whether the side to move has already lost.
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

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
