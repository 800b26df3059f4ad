// Package connectfour is a second toy Game[S] implementation: a 7-column,
// 6-row board, searched by pkg/search to a bounded depth rather than solved
// outright, since its full game tree is far larger than Tic-Tac-Toe's.
package connectfour

import "fmt"

const (
	Columns = 7
	Rows    = 6
)

// Disc is a cell occupant.
type Disc uint8

const (
	Empty Disc = iota
	Red
	Yellow
)

func (d Disc) String() string {
	switch d {
	case Red:
		return "R"
	case Yellow:
		return "Y"
	default:
		return "."
	}
}

func (d Disc) opponent() Disc {
	if d == Red {
		return Yellow
	}
	return Red
}

// Board is an immutable Connect Four position. Row 0 is the bottom row.
type Board struct {
	cells [Columns * Rows]Disc
	turn  Disc
}

// NewBoard returns the empty board, Red to move.
func NewBoard() Board {
	return Board{turn: Red}
}

func (b Board) at(col, row int) Disc {
	return b.cells[col*Rows+row]
}

// At returns the disc at (col, row), col in [0,Columns), row in [0,Rows).
func (b Board) At(col, row int) Disc {
	return b.at(col, row)
}

// Turn returns the disc to move.
func (b Board) Turn() Disc {
	return b.turn
}

// height returns the number of discs already dropped into col.
func (b Board) height(col int) int {
	h := 0
	for row := 0; row < Rows; row++ {
		if b.at(col, row) == Empty {
			break
		}
		h++
	}
	return h
}

// ColumnOpen reports whether col has room for another disc.
func (b Board) ColumnOpen(col int) bool {
	return b.height(col) < Rows
}

// Drop returns the successor with a disc of the side to move dropped into
// col. col must be open; the caller (Successors) is the only producer of
// legal moves in practice.
func (b Board) Drop(col int) Board {
	next := b
	next.cells[col*Rows+b.height(col)] = b.turn
	next.turn = b.turn.opponent()
	return next
}

var directions = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// Winner reports whether some disc has four in a row, and which.
func (b Board) Winner() (Disc, bool) {
	for col := 0; col < Columns; col++ {
		for row := 0; row < Rows; row++ {
			d := b.at(col, row)
			if d == Empty {
				continue
			}
			for _, dir := range directions {
				count := 1
				for n := 1; n < 4; n++ {
					c, r := col+dir[0]*n, row+dir[1]*n
					if c < 0 || c >= Columns || r < 0 || r >= Rows || b.at(c, r) != d {
						break
					}
					count++
				}
				if count >= 4 {
					return d, true
				}
			}
		}
	}
	return Empty, false
}

// Full reports whether every column is filled.
func (b Board) Full() bool {
	for col := 0; col < Columns; col++ {
		if b.ColumnOpen(col) {
			return false
		}
	}
	return true
}

func (b Board) String() string {
	var s string
	for row := Rows - 1; row >= 0; row-- {
		for col := 0; col < Columns; col++ {
			s += fmt.Sprintf("%v", b.at(col, row))
		}
		s += "\n"
	}
	return s
}
