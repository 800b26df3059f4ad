package board

// stalemateShortcutThreshold is the pseudo-legal move count at or above which
// InStalemate short-circuits to false without enumerating legal moves. The
// shortcut rests on the assumption that with this many pseudo-legal moves and
// no check at least one of them is legal; no proof of that is given here --
// see DESIGN.md Open Questions.
const stalemateShortcutThreshold = 12

// LegalMoves returns the fully legal moves available to the side to move: the
// Legality-purpose pseudo-legal moves filtered to those that do not leave the
// mover's own king in check (and, for castling, do not pass through check).
func LegalMoves(pos *Position) []Move {
	pseudo := GenerateMoves(pos, Legality)
	legal := make([]Move, 0, len(pseudo))
	for _, m := range pseudo {
		if isLegal(pos, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// InCheck reports whether the side to move's king is attacked by the opponent.
func InCheck(pos *Position) bool {
	kingSq, ok := pos.KingSquare(pos.turn)
	if !ok {
		return false
	}
	return IsAttacked(pos, pos.turn.Opponent(), kingSq)
}

// InCheckmate reports whether the side to move is in check with no legal move.
func InCheckmate(pos *Position) bool {
	return InCheck(pos) && len(LegalMoves(pos)) == 0
}

// InStalemate reports whether the side to move is not in check but has no legal
// move. When the pseudo-legal move count is at least stalemateShortcutThreshold
// and the side is not in check, it reports false without enumerating legal moves.
func InStalemate(pos *Position) bool {
	if InCheck(pos) {
		return false
	}

	pseudo := GenerateMoves(pos, Legality)
	if len(pseudo) >= stalemateShortcutThreshold {
		return false
	}
	for _, m := range pseudo {
		if isLegal(pos, m) {
			return false
		}
	}
	return true
}

// IsFiftyMoveDraw reports whether the half-move-since-capture clock has
// exceeded 49, i.e. fifty half-moves without a capture.
func IsFiftyMoveDraw(pos *Position) bool {
	return pos.halfmove > 49
}

// IsDraw reports whether pos is drawn by any of this module's draw rules.
// Threefold repetition is not modeled -- see DESIGN.md.
func IsDraw(pos *Position) bool {
	return IsFiftyMoveDraw(pos) || InStalemate(pos)
}

// IsGameOver reports whether play has reached a terminal position: checkmate,
// stalemate, or the fifty-move draw.
func IsGameOver(pos *Position) bool {
	return InCheckmate(pos) || InStalemate(pos) || IsFiftyMoveDraw(pos)
}
