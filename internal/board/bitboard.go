package board

import (
	"math/bits"
	"strings"
)

// Bitboard is a set of squares, one bit per square.
// Bit 0 = A1, Bit 7 = H1, Bit 56 = A8, Bit 63 = H8.
//
// Occupancy views and move generator results are both Bitboards: membership
// is O(1) and a square can never appear twice.
type Bitboard uint64

// Empty is the set with no squares.
const Empty Bitboard = 0

// SquareBB returns a bitboard with only the given square set.
// NoSquare yields the empty set.
func SquareBB(sq Square) Bitboard {
	if !sq.IsValid() {
		return Empty
	}
	return 1 << sq
}

// Set returns the set with sq added.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | SquareBB(sq)
}

// Clear returns the set with sq removed.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ SquareBB(sq)
}

// Has returns true if sq is in the set.
// NoSquare is never a member.
func (b Bitboard) Has(sq Square) bool {
	return b&SquareBB(sq) != 0
}

// Count returns the number of squares in the set.
func (b Bitboard) Count() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the lowest square in the set, or NoSquare if empty.
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB removes and returns the lowest square in the set.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Squares returns the members in ascending square order.
func (b Bitboard) Squares() []Square {
	sqs := make([]Square, 0, b.Count())
	for b != 0 {
		sqs = append(sqs, b.PopLSB())
	}
	return sqs
}

// String renders the set as an 8x8 diagram, rank 8 at the top.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			if b.Has(NewSquare(file, rank)) {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('.')
			}
			if file < 7 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
