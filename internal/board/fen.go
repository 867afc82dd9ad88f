package board

import (
	"fmt"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses a FEN string into a Board. Only the piece placement and
// side-to-move fields are interpreted; castling, en passant, and the move
// clocks are accepted and ignored, since this board model does not track
// them.
func ParseFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, fmt.Errorf("invalid FEN: need at least 2 fields, got %d", len(parts))
	}

	b := NewBoard()
	if err := parsePiecePlacement(b, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		b.SideToMove = White
	case "b":
		b.SideToMove = Black
	default:
		return nil, fmt.Errorf("invalid side to move: %s", parts[1])
	}

	return b, nil
}

// parsePiecePlacement parses the piece placement section of a FEN string.
func parsePiecePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != BoardSize {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := BoardSize - 1 - i // FEN starts from rank 8
		file := 0

		for _, c := range rankStr {
			if file >= BoardSize {
				return fmt.Errorf("too many squares in rank %d", rank+1)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
			} else {
				piece := PieceFromChar(byte(c))
				if piece == NoPiece {
					return fmt.Errorf("invalid piece character: %c", c)
				}
				b.Put(piece, NewSquare(file, rank))
				file++
			}
		}

		if file != BoardSize {
			return fmt.Errorf("invalid number of squares in rank %d: got %d", rank+1, file)
		}
	}

	return nil
}

// ToFEN formats the board as a FEN string. The fields this model does not
// track are emitted as their conventional placeholders.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	for rank := BoardSize - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < BoardSize; file++ {
			p := b.PieceAt(NewSquare(file, rank))
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&sb, "%d", empty)
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			fmt.Fprintf(&sb, "%d", empty)
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	side := "w"
	if b.SideToMove == Black {
		side = "b"
	}
	fmt.Fprintf(&sb, " %s - - 0 1", side)

	return sb.String()
}
