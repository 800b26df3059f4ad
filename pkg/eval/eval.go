// Package eval implements the static position evaluator: four additive terms
// (material, mobility and attack, opening/endgame phase, pawn advance), all
// computed from the side-to-move's viewpoint so that pkg/search's negamax core
// can treat every node symmetrically.
package eval

import (
	"math"

	"github.com/chessgen/chessgen/pkg/board"
)

const (
	// queenDevelopmentUnit is the per-square penalty for an opening-phase queen
	// standing away from its home square.
	queenDevelopmentUnit = 0.002
	// castlingRightUnit is the opening-phase bonus per remaining castling right.
	castlingRightUnit = 0.005
	// kingMobilityUnit is the endgame-phase bonus per Evaluation-purpose king move.
	kingMobilityUnit = 0.01
	// pawnAdvanceUnit scales the per-pawn offsides-rank-squared bonus.
	pawnAdvanceUnit = 0.001

	openingMaterialThreshold = 35.0
	endgameMaterialThreshold = 8.0
)

// Evaluate returns pos's signed score from the perspective of the side to move:
// larger is better. Returns 0 outright if pos is drawn by the fifty-move rule;
// checkmate-at-root is the search's responsibility, not the evaluator's.
func Evaluate(pos *board.Position) float64 {
	if board.IsFiftyMoveDraw(pos) {
		return 0
	}

	turn := pos.Turn()
	opp := turn.Opponent()

	ownMaterial := material(pos, turn)
	oppMaterial := material(pos, opp)

	score := ownMaterial - oppMaterial
	score += mobilityAndAttack(pos, oppMaterial)
	score += phaseTerms(pos, turn, ownMaterial)
	score += pawnAdvance(pos, turn)
	return score
}

// material sums side's own piece values. The king is excluded deliberately:
// it is never captured, so it contributes nothing to material balance.
func material(pos *board.Position, side board.Color) float64 {
	var total float64
	forEachOwn(pos, side, func(sq board.Square, p board.Piece) {
		if p.Kind != board.King {
			total += float64(p.Kind.Value())
		}
	})
	return total
}

// mobilityAndAttack is term 2: for every Evaluation-purpose move to square t,
// a small flat mobility credit (larger if t is occupied, by the value of the
// piece there capped at 50, divided by 100), plus a center-control credit scaled by the
// opponent's remaining material so the center matters more with pieces still
// on the board than in a stripped-down endgame.
func mobilityAndAttack(pos *board.Position, oppMaterial float64) float64 {
	var total float64
	for _, m := range board.GenerateMoves(pos, board.Evaluation) {
		target := pos.PieceAt(m.To)
		if target.IsEmpty() {
			total += 0.011
		} else {
			total += 0.01 + 0.001 + math.Min(float64(target.Kind.Value()), 50)/100
		}
		total += DistanceFromEdge(m.To) * (oppMaterial / 1000)
	}
	return total
}

// phaseTerms is term 3: an opening-phase development/castling-rights term when
// the mover still has substantial material, or an endgame-phase king-activity
// term once material has thinned out. Between the two thresholds, neither
// applies.
func phaseTerms(pos *board.Position, side board.Color, ownMaterial float64) float64 {
	switch {
	case ownMaterial > openingMaterialThreshold:
		return -queenDevelopmentPenalty(pos, side) + castlingRightUnit*float64(castlingRightCount(pos, side))
	case ownMaterial < endgameMaterialThreshold:
		return kingMobilityUnit * float64(kingMobility(pos, side))
	default:
		return 0
	}
}

func queenDevelopmentPenalty(pos *board.Position, side board.Color) float64 {
	home := board.NewSquare(board.FileD, homeRank(side))

	var penalty float64
	forEachOwn(pos, side, func(sq board.Square, p board.Piece) {
		if p.Kind == board.Queen {
			penalty += queenDevelopmentUnit * chebyshev(sq, home)
		}
	})
	return penalty
}

func castlingRightCount(pos *board.Position, side board.Color) int {
	count := 0
	for _, dir := range [2]board.Direction{board.E, board.W} {
		if pos.Castling().Allows(board.CastlingRight{Side: side, Dir: dir}) {
			count++
		}
	}
	return count
}

// kingMobility counts side's king moves in the Evaluation-purpose move set.
// Only valid when side is pos.Turn(), since GenerateMoves always enumerates
// for the side to move; phaseTerms only ever calls it that way.
func kingMobility(pos *board.Position, side board.Color) int {
	kingSq, ok := pos.KingSquare(side)
	if !ok {
		return 0
	}
	count := 0
	for _, m := range board.GenerateMoves(pos, board.Evaluation) {
		if m.From == kingSq {
			count++
		}
	}
	return count
}

// pawnAdvance is term 4: for each own pawn at offsides-rank r (its distance
// from its starting rank, 0 at home), add r²·pawnAdvanceUnit.
func pawnAdvance(pos *board.Position, side board.Color) float64 {
	var total float64
	forEachOwn(pos, side, func(sq board.Square, p board.Piece) {
		if p.Kind == board.Pawn {
			r := float64(offsidesRank(sq, side))
			total += r * r * pawnAdvanceUnit
		}
	})
	return total
}

// DistanceFromEdge is max(min(x,7-x), min(y,7-y)): the larger of sq's file and
// rank distances to their nearest edges. It is 0 only in the four corners and
// 3 whenever either coordinate is central (d4 gives 3, and so does a4).
func DistanceFromEdge(sq board.Square) float64 {
	x, y := int(sq.File()), int(sq.Rank())
	dx, dy := min(x, 7-x), min(y, 7-y)
	return float64(max(dx, dy))
}

func offsidesRank(sq board.Square, side board.Color) int {
	y := int(sq.Rank())
	if side == board.Black {
		return 7 - y
	}
	return y
}

func homeRank(side board.Color) board.Rank {
	if side == board.Black {
		return board.Rank8
	}
	return board.Rank1
}

func chebyshev(a, b board.Square) float64 {
	df := int(a.File()) - int(b.File())
	dr := int(a.Rank()) - int(b.Rank())
	return float64(max(abs(df), abs(dr)))
}

func forEachOwn(pos *board.Position, side board.Color, fn func(sq board.Square, p board.Piece)) {
	for sq := board.Square(0); int(sq) < board.NumCells; sq++ {
		if !sq.OnBoard() {
			continue
		}
		if p := pos.PieceAt(sq); !p.IsEmpty() && p.Side == side {
			fn(sq, p)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
