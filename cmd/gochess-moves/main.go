// gochess-moves prints the destinations a piece can move to from a given
// position, rendered as a colored board in the terminal.
//
//	gochess-moves -from e2
//	gochess-moves -fen "8/8/8/3p4/8/8/8/3R4 w - - 0 1" -from d1
//	gochess-moves -all
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/exp/slices"

	"github.com/tlemaire/gochess/internal/board"
)

var (
	fen     = flag.String("fen", board.StartFEN, "position in FEN")
	from    = flag.String("from", "", "origin square, e.g. e2")
	all     = flag.Bool("all", false, "list moves for every piece of the side to move")
	noColor = flag.Bool("no-color", false, "disable colored output")
)

var pieceSymbols = map[board.Piece]string{
	board.NewPiece(board.Pawn, board.White):   "♙",
	board.NewPiece(board.Knight, board.White): "♘",
	board.NewPiece(board.Bishop, board.White): "♗",
	board.NewPiece(board.Rook, board.White):   "♖",
	board.NewPiece(board.Queen, board.White):  "♕",
	board.NewPiece(board.King, board.White):   "♔",
	board.NewPiece(board.Pawn, board.Black):   "♟",
	board.NewPiece(board.Knight, board.Black): "♞",
	board.NewPiece(board.Bishop, board.Black): "♝",
	board.NewPiece(board.Rook, board.Black):   "♜",
	board.NewPiece(board.Queen, board.Black):  "♛",
	board.NewPiece(board.King, board.Black):   "♚",
}

func main() {
	flag.Parse()

	if *noColor {
		color.NoColor = true
	}

	if err := run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	b, err := board.ParseFEN(*fen)
	if err != nil {
		return fmt.Errorf("parse fen: %w", err)
	}

	if *all {
		return listAll(b)
	}

	if *from == "" {
		flag.Usage()
		return fmt.Errorf("either -from or -all is required")
	}

	origin, err := board.ParseSquare(*from)
	if err != nil {
		return err
	}

	piece := b.PieceAt(origin)
	if piece == board.NoPiece {
		return fmt.Errorf("no piece on %v", origin)
	}

	dests := b.MovesFrom(origin)
	drawBoard(b, origin, dests)
	fmt.Printf("\n%v %s on %v: %s\n", piece.Color(), piece.Type(), origin, formatSquares(dests))
	return nil
}

// listAll prints the destination set of every piece of the side to move,
// origins sorted in square order.
func listAll(b *board.Board) error {
	drawBoard(b, board.NoSquare, board.Empty)
	fmt.Println()

	for _, origin := range b.Occupied(b.SideToMove).Squares() {
		piece := b.PieceAt(origin)
		dests := b.MovesFrom(origin)
		fmt.Printf("%-6s %v: %s\n", piece.Type(), origin, formatSquares(dests))
	}
	return nil
}

// formatSquares renders a destination set as sorted algebraic names.
func formatSquares(bb board.Bitboard) string {
	if bb == board.Empty {
		return "(none)"
	}
	names := make([]string, 0, bb.Count())
	for _, sq := range bb.Squares() {
		names = append(names, sq.String())
	}
	slices.Sort(names)
	return strings.Join(names, " ")
}

// drawBoard prints the position with the origin and its destinations
// highlighted. Ranks run top to bottom from Black's side.
func drawBoard(b *board.Board, origin board.Square, dests board.Bitboard) {
	light := color.New(color.FgBlack, color.BgHiGreen)
	dark := color.New(color.FgBlack, color.BgGreen)
	originBg := color.New(color.FgBlack, color.BgHiYellow)
	destBg := color.New(color.FgBlack, color.BgHiCyan)
	label := color.New(color.Bold)

	for rank := board.BoardSize - 1; rank >= 0; rank-- {
		label.Printf(" %d ", rank+1)
		for file := 0; file < board.BoardSize; file++ {
			sq := board.NewSquare(file, rank)

			cell := light
			if (file+rank)%2 == 0 {
				cell = dark
			}
			if dests.Has(sq) {
				cell = destBg
			}
			if sq == origin {
				cell = originBg
			}

			sym := " "
			if piece := b.PieceAt(sq); piece != board.NoPiece {
				sym = pieceSymbols[piece]
			}
			cell.Printf(" %s ", sym)
		}
		fmt.Println()
	}

	label.Print("   ")
	for file := 0; file < board.BoardSize; file++ {
		label.Printf(" %c ", 'a'+file)
	}
	fmt.Println()
	label.Printf("   %v to move\n", b.SideToMove)
}
