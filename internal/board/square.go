// Package board implements the chess board model and move generation.
package board

import "fmt"

// Square identifies a board square (0-63).
// Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// BoardSize is the board dimension (files and ranks per side).
const BoardSize = 8

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// IsValid returns true if the square is on the board.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// NewSquare creates a square from file and rank (0-indexed).
// Returns NoSquare if either coordinate is off the board, so callers
// proposing candidate destinations never have to range-check twice.
func NewSquare(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// Offset returns the square displaced by (df, dr) from sq, or NoSquare
// if the result falls off the board. Displacement is computed in file/rank
// space, so a file overflow never wraps onto the neighboring rank.
func (sq Square) Offset(df, dr int) Square {
	return NewSquare(sq.File()+df, sq.Rank()+dr)
}

// Mirror returns the square reflected across the horizontal midline.
func (sq Square) Mirror() Square {
	if !sq.IsValid() {
		return NoSquare
	}
	return sq ^ 56
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}

	sq := NewSquare(int(s[0]-'a'), int(s[1]-'1'))
	if sq == NoSquare {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	return sq, nil
}
