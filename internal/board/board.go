package board

import (
	"fmt"
	"strings"
)

// Board is a snapshot of the placed pieces plus whose turn it is. The zero
// value is an empty board with White to move.
//
// Board owns the piece lifecycle: pieces are placed at setup and removed
// when captured. Move generation itself never mutates the board; it only
// reads occupancy views derived from it.
type Board struct {
	squares    [64]Piece
	SideToMove Color
}

// backRank is the starting piece order from file a to file h.
var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns an empty board with White to move.
func NewBoard() *Board {
	b := &Board{}
	for sq := range b.squares {
		b.squares[sq] = NoPiece
	}
	return b
}

// StartingPosition returns a board with the standard starting layout.
func StartingPosition() *Board {
	b := NewBoard()
	for file := 0; file < BoardSize; file++ {
		b.Put(NewPiece(backRank[file], White), NewSquare(file, 0))
		b.Put(WhitePawn, NewSquare(file, 1))
		b.Put(BlackPawn, NewSquare(file, BoardSize-2))
		b.Put(NewPiece(backRank[file], Black), NewSquare(file, BoardSize-1))
	}
	return b
}

// PieceAt returns the piece on sq, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return b.squares[sq]
}

// Put places a piece on sq, replacing whatever was there.
func (b *Board) Put(p Piece, sq Square) {
	if sq.IsValid() {
		b.squares[sq] = p
	}
}

// Remove clears sq.
func (b *Board) Remove(sq Square) {
	if sq.IsValid() {
		b.squares[sq] = NoPiece
	}
}

// Occupied returns the set of squares holding pieces of the given color.
// The view is derived fresh on every call; the board mutates between
// queries and a cached partition would go stale.
func (b *Board) Occupied(c Color) Bitboard {
	var occ Bitboard
	for sq := A1; sq <= H8; sq++ {
		if p := b.squares[sq]; p != NoPiece && p.Color() == c {
			occ = occ.Set(sq)
		}
	}
	return occ
}

// MovesFrom returns the pseudo-legal destinations for the piece on sq.
// An empty square yields the empty set.
func (b *Board) MovesFrom(sq Square) Bitboard {
	p := b.PieceAt(sq)
	if p == NoPiece {
		return Empty
	}
	friendly, enemy := Partition(p.Color(), b.Occupied(White), b.Occupied(Black))
	return Moves(p.Type(), p.Color(), sq, friendly, enemy)
}

// Apply moves the piece on from to to, validating that the piece belongs to
// the side to move and that to is one of its generated destinations. Any
// piece on the destination is captured (removed outright) and returned.
// The turn passes to the other side on success.
func (b *Board) Apply(from, to Square) (Piece, error) {
	p := b.PieceAt(from)
	if p == NoPiece {
		return NoPiece, fmt.Errorf("no piece on %v", from)
	}
	if p.Color() != b.SideToMove {
		return NoPiece, fmt.Errorf("%v to move, but %v is %v", b.SideToMove, from, p.Color())
	}
	if !b.MovesFrom(from).Has(to) {
		return NoPiece, fmt.Errorf("%v cannot move %v-%v", p.Type(), from, to)
	}

	captured := b.PieceAt(to)
	b.squares[to] = p
	b.squares[from] = NoPiece
	b.SideToMove = b.SideToMove.Other()
	return captured, nil
}

// Copy returns an independent copy of the board.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// String renders the board as an 8x8 diagram, rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < BoardSize; file++ {
			p := b.PieceAt(NewSquare(file, rank))
			if p == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteString(p.String() + " ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
