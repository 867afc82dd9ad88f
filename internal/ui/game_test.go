package ui

import (
	"testing"

	"github.com/tlemaire/gochess/internal/board"
	"github.com/tlemaire/gochess/internal/testutil"
)

// newTestGame builds a game with no storage, audio, or renderer attached.
// handleBoardClick and makeMove tolerate the missing components, so the
// interaction contract is testable without a window.
func newTestGame(b *board.Board) *Game {
	return &Game{
		board:          b,
		selectedSquare: board.NoSquare,
		lastFrom:       board.NoSquare,
		lastTo:         board.NoSquare,
	}
}

func TestClickSelectsOwnPiece(t *testing.T) {
	g := newTestGame(board.StartingPosition())

	g.handleBoardClick(board.E2)

	testutil.AssertEqual(t, g.selectedSquare, board.E2, "selected square")
	testutil.AssertEqual(t, g.destinations.Has(board.E4), true, "double step highlighted")
	testutil.AssertEqual(t, g.dragging, true, "drag started")
}

func TestClickEmptySquareClearsSelection(t *testing.T) {
	g := newTestGame(board.StartingPosition())

	g.handleBoardClick(board.E2)
	g.handleBoardClick(board.H5)

	testutil.AssertEqual(t, g.selectedSquare, board.NoSquare, "selection cleared")
	testutil.AssertEqual(t, g.dragging, false, "drag cancelled")
}

func TestClickDestinationMakesMove(t *testing.T) {
	g := newTestGame(board.StartingPosition())

	g.handleBoardClick(board.G1)
	g.handleBoardClick(board.F3)

	testutil.AssertEqual(t, g.board.PieceAt(board.G1), board.NoPiece, "origin vacated")
	testutil.AssertEqual(t, g.board.PieceAt(board.F3), board.NewPiece(board.Knight, board.White), "knight moved")
	testutil.AssertEqual(t, g.board.SideToMove, board.Black, "turn passed")
	testutil.AssertEqual(t, g.moveHistory, []string{"g1-f3"}, "history entry")
	testutil.AssertEqual(t, g.moveCount, 1, "move count")
	testutil.AssertEqual(t, g.lastFrom, board.G1, "last move origin")
	testutil.AssertEqual(t, g.lastTo, board.F3, "last move target")
}

func TestClickOpponentPieceOutsideDestinationsClears(t *testing.T) {
	g := newTestGame(board.StartingPosition())

	g.handleBoardClick(board.E2)
	g.handleBoardClick(board.E7)

	testutil.AssertEqual(t, g.selectedSquare, board.NoSquare, "selection cleared")
}

func TestClickReselectsBetweenOwnPieces(t *testing.T) {
	g := newTestGame(board.StartingPosition())

	g.handleBoardClick(board.B1)
	g.handleBoardClick(board.G1)

	testutil.AssertEqual(t, g.selectedSquare, board.G1, "selection moved")
	testutil.AssertEqual(t, g.destinations.Has(board.H3), true, "new destinations generated")
	testutil.AssertEqual(t, g.destinations.Has(board.A3), false, "old destinations dropped")
}

func TestCaptureUpdatesTallyAndNotation(t *testing.T) {
	b, err := board.ParseFEN("8/8/8/3p4/8/8/8/3R4 w - - 0 1")
	testutil.AssertNoError(t, err, "parse position")
	g := newTestGame(b)

	g.handleBoardClick(board.D1)
	g.handleBoardClick(board.D5)

	testutil.AssertEqual(t, g.captures[board.White], 1, "white capture tally")
	testutil.AssertEqual(t, g.captures[board.Black], 0, "black capture tally")
	testutil.AssertEqual(t, g.moveHistory, []string{"d1xd5"}, "capture notation")
	testutil.AssertEqual(t, g.CapturedByWhite(), 1, "accessor")
}

func TestNewGameActionResetsState(t *testing.T) {
	g := newTestGame(board.StartingPosition())

	g.handleBoardClick(board.E2)
	g.handleBoardClick(board.E4)
	g.NewGameAction()

	testutil.AssertEqual(t, g.moveCount, 0, "move count reset")
	testutil.AssertEqual(t, len(g.moveHistory), 0, "history reset")
	testutil.AssertEqual(t, g.board.SideToMove, board.White, "white to move")
	testutil.AssertEqual(t, g.lastFrom, board.NoSquare, "last move cleared")
	testutil.AssertEqual(t, g.board.PieceAt(board.E2), board.NewPiece(board.Pawn, board.White), "pawn restored")
}

func TestMoveOutOfTurnRejected(t *testing.T) {
	g := newTestGame(board.StartingPosition())

	g.handleBoardClick(board.E7)

	testutil.AssertEqual(t, g.selectedSquare, board.NoSquare, "black piece not selectable on white's turn")
	testutil.AssertEqual(t, g.moveCount, 0, "no move made")
}
