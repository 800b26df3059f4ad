package board

// Direction is a step offset in 0x88 index space. Eight cardinals/diagonals are
// defined; composing one cardinal step with an offset gives sliding and leaping
// piece move generation a single shared primitive (see movegen.go).
type Direction int8

const (
	N  Direction = 16
	S  Direction = -16
	E  Direction = 1
	W  Direction = -1
	NE           = N + E
	NW           = N + W
	SE           = S + E
	SW           = S + W
)

// Straight holds the four rook/queen directions.
var Straight = [4]Direction{N, S, E, W}

// Diagonal holds the four bishop/queen directions.
var Diagonal = [4]Direction{NE, NW, SE, SW}

// KnightOffsets holds the eight knight leaps, each the composition of one cardinal
// step with two steps in an orthogonal cardinal direction.
var KnightOffsets = [8]Direction{
	N + N + E, N + N + W,
	S + S + E, S + S + W,
	E + E + N, E + E + S,
	W + W + N, W + W + S,
}

// KingOffsets holds the eight one-step king directions (all cardinals and diagonals).
var KingOffsets = [8]Direction{N, S, E, W, NE, NW, SE, SW}
