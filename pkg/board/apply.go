package board

// homeRank returns the back rank a side's pieces start on.
func homeRank(side Color) Rank {
	if side == Black {
		return Rank8
	}
	return Rank1
}

// IsAttacked reports whether sq is attacked by bySide, regardless of whose turn
// it is in pos. It runs the Check-purpose move generator on a view of pos with
// the turn forced to bySide, and asks whether any generated target equals sq.
func IsAttacked(pos *Position, bySide Color, sq Square) bool {
	view := *pos
	view.turn = bySide
	for _, m := range GenerateMoves(&view, Check) {
		if m.To == sq {
			return true
		}
	}
	return false
}

// Move validates and applies the move from->to, returning the successor
// position. Validation:
//  1. from must hold a piece belonging to the side to move.
//  2. (from,to) must appear in the Legality-purpose move set from from.
//  3. if strict, the resulting position must not leave the mover's king attacked.
//  4. a two-square king move (castling) additionally requires that neither the
//     king's origin, transit, nor destination square is attacked.
//
// Check 4 runs before check 3, so a castling move that fails both reports the
// castling reason.
//
// Failure returns a *InvalidMove. p itself is never modified.
func (p *Position) Move(from, to Square, strict bool) (*Position, error) {
	mover := p.cells[from]
	if mover.IsEmpty() || mover.Side != p.turn {
		return nil, &InvalidMove{from, to, "source square is not this side's piece"}
	}

	var chosen *Move
	for _, m := range GenerateMoves(p, Legality) {
		if m.From == from && m.To == to {
			mv := m
			chosen = &mv
			break
		}
	}
	if chosen == nil {
		return nil, &InvalidMove{from, to, "not a legal move"}
	}

	if chosen.Type == KingSideCastle || chosen.Type == QueenSideCastle {
		if !castlingPathClear(p, *chosen) {
			return nil, &InvalidMove{from, to, "castling through or out of check"}
		}
	}

	next := p.apply(*chosen)

	if strict {
		kingSq, ok := next.KingSquare(p.turn)
		if ok && IsAttacked(next, next.turn, kingSq) {
			return nil, &InvalidMove{from, to, "leaves own king in check"}
		}
	}

	return next, nil
}

// castlingPathClear reports whether none of the king's origin, transit, or
// destination square is attacked by the opponent -- castling through or out of
// check is illegal even though the generator already confirmed the path is
// unoccupied.
func castlingPathClear(pos *Position, m Move) bool {
	dir := E
	if m.Type == QueenSideCastle {
		dir = W
	}
	transit, _ := m.From.Add(dir)
	opp := pos.turn.Opponent()
	return !IsAttacked(pos, opp, m.From) && !IsAttacked(pos, opp, transit) && !IsAttacked(pos, opp, m.To)
}

// isLegal reports whether pseudo-legal move m, played from pos, leaves the
// mover's own king safe (and, for castling, does not pass through check).
func isLegal(pos *Position, m Move) bool {
	if m.Type == KingSideCastle || m.Type == QueenSideCastle {
		if !castlingPathClear(pos, m) {
			return false
		}
	}
	next := pos.apply(m)
	kingSq, ok := next.KingSquare(pos.turn)
	if !ok {
		return true
	}
	return !IsAttacked(next, next.turn, kingSq)
}

// apply builds the successor for an already-validated move. It does not
// re-validate legality.
func (p *Position) apply(m Move) *Position {
	next := p.clone()

	mover := p.cells[m.From]
	next.cells[m.From] = Empty

	placed := mover
	if m.Type == Promotion || m.Type == CapturePromotion {
		placed = Piece{Kind: m.Promotion, Side: mover.Side}
	}
	next.cells[m.To] = placed

	switch m.Type {
	case KingSideCastle, QueenSideCastle:
		rank := homeRank(mover.Side)
		if m.Type == KingSideCastle {
			next.cells[NewSquare(FileH, rank)] = Empty
			next.cells[NewSquare(FileF, rank)] = Piece{Rook, mover.Side}
		} else {
			next.cells[NewSquare(FileA, rank)] = Empty
			next.cells[NewSquare(FileD, rank)] = Piece{Rook, mover.Side}
		}
	}

	next.castling = p.castling.revokedBy(mover, m.From)

	if m.Type == Capture || m.Type == CapturePromotion {
		next.halfmove = 0
	} else {
		next.halfmove = p.halfmove + 1
	}

	next.turn = p.turn.Opponent()
	next.ply = p.ply + 1
	return next
}

// revokedBy returns c with any rights revoked by a piece of kind/side moving (or
// being moved from) sq: a king move clears both of its side's rights; a rook
// move from its home corner clears the matching right.
func (c Castling) revokedBy(mover Piece, from Square) Castling {
	switch mover.Kind {
	case King:
		return c.WithoutSide(mover.Side)
	case Rook:
		rank := homeRank(mover.Side)
		switch from {
		case NewSquare(FileA, rank):
			return c.Without(CastlingRight{mover.Side, W})
		case NewSquare(FileH, rank):
			return c.Without(CastlingRight{mover.Side, E})
		}
	}
	return c
}
