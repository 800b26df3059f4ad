package board

import "fmt"

// Square is a 0x88 board index: the low nibble is the file (0=A..7=H), the high
// nibble is the rank (0=rank1..7=rank8). Indices with either nibble above 7 are
// off-board sentinels; testing s&0x88 != 0 rejects them in a single masked check,
// which is the reason the representation is popular for leaper/slider move
// generation despite wasting half the 128-entry array. 8 bits.
type Square uint8

const (
	offBoardMask Square = 0x88
)

// NewSquare builds the 0x88 index of a file/rank pair. Both must be in [0,7]; the
// caller is responsible for range-checking, e.g. via adding a Direction and
// checking OnBoard before dereferencing.
func NewSquare(f File, r Rank) Square {
	return Square(r)<<4 | Square(f)
}

func ParseSquare(f, r rune) (Square, error) {
	file, ok := ParseFile(f)
	if !ok {
		return 0, fmt.Errorf("invalid file: %v", f)
	}
	rank, ok := ParseRank(r)
	if !ok {
		return 0, fmt.Errorf("invalid rank: %v", r)
	}
	return NewSquare(file, rank), nil
}

func ParseSquareStr(str string) (Square, error) {
	runes := []rune(str)
	if len(runes) != 2 {
		return 0, fmt.Errorf("invalid square: %v", str)
	}
	return ParseSquare(runes[0], runes[1])
}

// OnBoard reports whether s falls within the real 8x8 board, as opposed to one of
// the 0x88 sentinel cells.
func (s Square) OnBoard() bool {
	return s&offBoardMask == 0
}

// IsValid is an alias for OnBoard, kept for symmetry with the other board types'
// IsValid methods.
func (s Square) IsValid() bool {
	return s.OnBoard()
}

func (s Square) Rank() Rank {
	return Rank(s >> 4)
}

func (s Square) File() File {
	return File(s & 0x7)
}

// Add steps s by d and returns the result along with whether it landed on-board.
// The caller must not use the Square value if ok is false.
func (s Square) Add(d Direction) (Square, bool) {
	n := Square(int8(s) + int8(d))
	return n, n.OnBoard()
}

func (s Square) String() string {
	return fmt.Sprintf("%v%v", s.File(), s.Rank())
}

// Rank represents a chess board rank, Rank1=0 .. Rank8=7. 3 bits.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const (
	ZeroRank Rank = 0
	NumRanks Rank = 8
)

func ParseRank(r rune) (Rank, bool) {
	switch r {
	case '1':
		return Rank1, true
	case '2':
		return Rank2, true
	case '3':
		return Rank3, true
	case '4':
		return Rank4, true
	case '5':
		return Rank5, true
	case '6':
		return Rank6, true
	case '7':
		return Rank7, true
	case '8':
		return Rank8, true
	default:
		return 0, false
	}
}

func (r Rank) IsValid() bool {
	return r <= Rank8
}

func (r Rank) V() int {
	return int(r)
}

func (r Rank) String() string {
	switch r {
	case Rank1:
		return "1"
	case Rank2:
		return "2"
	case Rank3:
		return "3"
	case Rank4:
		return "4"
	case Rank5:
		return "5"
	case Rank6:
		return "6"
	case Rank7:
		return "7"
	case Rank8:
		return "8"
	default:
		return "?"
	}
}

// File represents a chess board file, FileA=0 .. FileH=7. 3 bits.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	ZeroFile File = 0
	NumFiles File = 8
)

func ParseFile(r rune) (File, bool) {
	switch r {
	case 'a', 'A':
		return FileA, true
	case 'b', 'B':
		return FileB, true
	case 'c', 'C':
		return FileC, true
	case 'd', 'D':
		return FileD, true
	case 'e', 'E':
		return FileE, true
	case 'f', 'F':
		return FileF, true
	case 'g', 'G':
		return FileG, true
	case 'h', 'H':
		return FileH, true
	default:
		return 0, false
	}
}

func (f File) IsValid() bool {
	return f <= FileH
}

func (f File) V() int {
	return int(f)
}

func (f File) String() string {
	switch f {
	case FileA:
		return "a"
	case FileB:
		return "b"
	case FileC:
		return "c"
	case FileD:
		return "d"
	case FileE:
		return "e"
	case FileF:
		return "f"
	case FileG:
		return "g"
	case FileH:
		return "h"
	default:
		return "?"
	}
}
