package board

// Purpose selects which of the three pseudo-legal move rule sets GenerateMoves
// applies. The same per-piece machinery is shared; only the occupancy rule that
// decides whether a candidate target is kept differs.
type Purpose int

const (
	// Legality enumerates moves available to the side to move: the final filter
	// on user-requested moves and on successor enumeration.
	Legality Purpose = iota
	// Check enumerates the squares attacked by the side to move, used to test
	// whether a given square (typically the opponent's king) is under attack.
	Check
	// Evaluation enumerates mobility for the static evaluator: friendly-occupied
	// squares count (a piece defending another), and forward pawn pushes count.
	Evaluation
)

// maxSlide bounds a rook/bishop/queen slide; the board is 8 squares wide, so no
// slide ever needs more steps than that. Off-board termination stops it earlier
// in practice.
const maxSlide = 8

// GenerateMoves returns the purpose-dependent pseudo-legal moves for the side to
// move in pos. The result is unordered; callers needing a specific order (search
// move ordering, hint placement) sort it themselves.
func GenerateMoves(pos *Position, purpose Purpose) []Move {
	var moves []Move

	side := pos.turn
	for sq := Square(0); int(sq) < NumCells; sq++ {
		if !sq.OnBoard() {
			continue
		}
		pc := pos.cells[sq]
		if pc.IsEmpty() || pc.Side != side {
			continue
		}

		switch pc.Kind {
		case Pawn:
			genPawnMoves(pos, sq, purpose, &moves)
		case Knight:
			genLeaperMoves(pos, sq, KnightOffsets[:], purpose, &moves)
		case Bishop:
			genSlides(pos, sq, Diagonal[:], purpose, maxSlide, &moves)
		case Rook:
			genSlides(pos, sq, Straight[:], purpose, maxSlide, &moves)
		case Queen:
			genSlides(pos, sq, Straight[:], purpose, maxSlide, &moves)
			genSlides(pos, sq, Diagonal[:], purpose, maxSlide, &moves)
		case King:
			genLeaperMoves(pos, sq, KingOffsets[:], purpose, &moves)
			genCastlingMoves(pos, sq, purpose, &moves)
		}
	}
	return moves
}

// slide walks from from in steps of dir, stopping on off-board, on a blocker, or
// after max steps. The blocking square is included iff its occupant is an
// opponent piece (Legality/Check) or any piece at all (Evaluation, where landing
// on a friendly square represents defending it).
func slide(pos *Position, from Square, dir Direction, purpose Purpose, max int) []Move {
	var moves []Move

	side := pos.cells[from].Side
	cur := from
	for steps := 0; steps < max; steps++ {
		next, ok := cur.Add(dir)
		if !ok {
			break
		}
		cur = next

		target := pos.cells[cur]
		if target.IsEmpty() {
			moves = append(moves, Move{From: from, To: cur, Type: Normal})
			continue
		}
		if target.Side == side {
			if purpose == Evaluation {
				moves = append(moves, Move{From: from, To: cur, Type: Normal})
			}
			break
		}
		moves = append(moves, Move{From: from, To: cur, Type: Capture, Capture: target})
		break
	}
	return moves
}

func genSlides(pos *Position, from Square, dirs []Direction, purpose Purpose, max int, moves *[]Move) {
	for _, d := range dirs {
		*moves = append(*moves, slide(pos, from, d, purpose, max)...)
	}
}

// genLeaperMoves handles knight and (non-castling) king moves: a single step to
// each offset, kept iff on-board and (Evaluation, or the target is empty, or the
// target holds an opponent piece).
func genLeaperMoves(pos *Position, from Square, offsets []Direction, purpose Purpose, moves *[]Move) {
	side := pos.cells[from].Side
	for _, d := range offsets {
		to, ok := from.Add(d)
		if !ok {
			continue
		}

		target := pos.cells[to]
		if target.IsEmpty() {
			*moves = append(*moves, Move{From: from, To: to, Type: Normal})
			continue
		}
		if target.Side == side {
			if purpose == Evaluation {
				*moves = append(*moves, Move{From: from, To: to, Type: Normal})
			}
			continue
		}
		*moves = append(*moves, Move{From: from, To: to, Type: Capture, Capture: target})
	}
}

// genCastlingMoves generates the Legality-only two-square king castling moves.
// Attack-based legality (king not moving through or into check) is enforced at
// move application time, not here -- see apply.go.
func genCastlingMoves(pos *Position, from Square, purpose Purpose, moves *[]Move) {
	if purpose != Legality {
		return
	}

	for _, dir := range [2]Direction{E, W} {
		right := CastlingRight{pos.turn, dir}
		if !pos.castling.Allows(right) {
			continue
		}

		transit, ok := from.Add(dir)
		if !ok || !pos.cells[transit].IsEmpty() {
			continue
		}
		dest, ok := transit.Add(dir)
		if !ok || !pos.cells[dest].IsEmpty() {
			continue
		}

		if dir == W {
			// b-file square, adjacent to the a-file rook, must also be clear
			// even though the king does not pass over it.
			rookAdjacent, ok := dest.Add(W)
			if !ok || !pos.cells[rookAdjacent].IsEmpty() {
				continue
			}
		}

		mt := KingSideCastle
		if dir == W {
			mt = QueenSideCastle
		}
		*moves = append(*moves, Move{From: from, To: dest, Type: mt})
	}
}

// genPawnMoves applies the side-dependent forward/diagonal pawn rules, including
// the purpose-dependent diagonal occupancy rule and the two-square jump from the
// starting rank. A pawn landing on its last rank is flagged Promotion/
// CapturePromotion with Move.Promotion set to the position's pending kind.
func genPawnMoves(pos *Position, from Square, purpose Purpose, moves *[]Move) {
	side := pos.cells[from].Side

	forward, startRank, lastRank := N, Rank2, Rank8
	diag1, diag2 := NE, NW
	if side == Black {
		forward, startRank, lastRank = S, Rank7, Rank1
		diag1, diag2 = SE, SW
	}

	if purpose != Check {
		if one, ok := from.Add(forward); ok && pos.cells[one].IsEmpty() {
			appendPawnMove(pos, from, one, Push, Empty, lastRank, moves)
			if from.Rank() == startRank {
				if two, ok := one.Add(forward); ok && pos.cells[two].IsEmpty() {
					*moves = append(*moves, Move{From: from, To: two, Type: Jump})
				}
			}
		}
	}

	for _, d := range [2]Direction{diag1, diag2} {
		to, ok := from.Add(d)
		if !ok {
			continue
		}
		target := pos.cells[to]

		switch purpose {
		case Legality:
			if !target.IsEmpty() && target.Side != side {
				appendPawnMove(pos, from, to, Capture, target, lastRank, moves)
			}
		case Check:
			*moves = append(*moves, Move{From: from, To: to, Type: Capture})
		case Evaluation:
			mt := Normal
			if !target.IsEmpty() {
				mt = Capture
			}
			appendPawnMove(pos, from, to, mt, target, lastRank, moves)
		}
	}
}

func appendPawnMove(pos *Position, from, to Square, mt MoveType, capture Piece, lastRank Rank, moves *[]Move) {
	m := Move{From: from, To: to, Type: mt, Capture: capture}
	if to.Rank() == lastRank {
		if mt == Capture {
			m.Type = CapturePromotion
		} else {
			m.Type = Promotion
		}
		m.Promotion = pos.pending
	}
	*moves = append(*moves, m)
}
