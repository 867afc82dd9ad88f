package ui

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tlemaire/gochess/internal/board"
	"github.com/tlemaire/gochess/internal/storage"
)

// UI Constants
const (
	BoardSize    = 640
	SquareSize   = BoardSize / board.BoardSize
	PanelWidth   = 320
	ScreenWidth  = BoardSize + PanelWidth
	ScreenHeight = BoardSize
)

// Game implements ebiten.Game. All turn and selection state lives here;
// there are no package-level game state variables.
type Game struct {
	// Core game state
	board       *board.Board
	moveHistory []string
	moveCount   int

	// Capture tallies, indexed by the capturing side.
	captures [2]int

	// Selection state
	selectedSquare board.Square
	destinations   board.Bitboard
	dragging       bool
	dragPiece      board.Piece
	dragSquare     board.Square
	lastFrom       board.Square
	lastTo         board.Square

	// Storage
	storage *storage.Storage
	prefs   *storage.Preferences
	stats   *storage.PlayStats

	// Components
	renderer *Renderer
	input    *InputHandler
	panel    *Panel
	audio    *AudioManager
}

// NewGame creates the game, restoring the autosaved board and preferences
// when present.
func NewGame() *Game {
	g := &Game{
		board:          board.StartingPosition(),
		selectedSquare: board.NoSquare,
		lastFrom:       board.NoSquare,
		lastTo:         board.NoSquare,
		renderer:       NewRenderer(BoardSize, SquareSize),
		input:          NewInputHandler(),
		audio:          NewAudioManager(),
	}

	var err error
	g.storage, err = storage.NewStorage()
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v", err)
	}

	g.loadPreferences()
	g.resumeSavedGame()
	g.refreshStats()

	g.panel = NewPanel(g)

	if g.moveCount == 0 {
		g.recordGameStart()
	}

	return g
}

// loadPreferences loads user preferences from storage.
func (g *Game) loadPreferences() {
	if g.storage == nil {
		g.prefs = storage.DefaultPreferences()
		return
	}

	var err error
	g.prefs, err = g.storage.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Failed to load preferences: %v", err)
		g.prefs = storage.DefaultPreferences()
	}

	g.renderer.SetFlipped(g.prefs.FlippedBoard)
	g.audio.SetEnabled(g.prefs.SoundEnabled)
}

// savePreferences persists the current preferences.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}

	g.prefs.FlippedBoard = g.renderer.Flipped()
	g.prefs.SoundEnabled = g.audio.IsEnabled()

	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// resumeSavedGame restores the autosaved board, if any.
func (g *Game) resumeSavedGame() {
	if g.storage == nil {
		return
	}

	saved, err := g.storage.LoadGame()
	if err != nil {
		log.Printf("Warning: Failed to load saved game: %v", err)
		return
	}
	if saved == nil {
		return
	}

	b, err := board.ParseFEN(saved.FEN)
	if err != nil {
		log.Printf("Warning: Discarding corrupt saved game: %v", err)
		return
	}

	g.board = b
	g.moveCount = saved.MoveCount
	g.captures[board.White] = saved.CapturedByWhite
	g.captures[board.Black] = saved.CapturedByBlack
}

// autosave persists the in-progress game after every move.
func (g *Game) autosave() {
	if g.storage == nil {
		return
	}

	saved := &storage.SavedGame{
		FEN:             g.board.ToFEN(),
		MoveCount:       g.moveCount,
		CapturedByWhite: g.captures[board.White],
		CapturedByBlack: g.captures[board.Black],
	}
	if err := g.storage.SaveGame(saved); err != nil {
		log.Printf("Warning: Failed to autosave game: %v", err)
	}
}

// refreshStats reloads the cached play statistics.
func (g *Game) refreshStats() {
	if g.storage == nil {
		return
	}

	stats, err := g.storage.LoadStats()
	if err != nil {
		log.Printf("Warning: Failed to load stats: %v", err)
		return
	}
	g.stats = stats
}

// recordGameStart bumps the games-started statistic.
func (g *Game) recordGameStart() {
	if g.storage == nil {
		return
	}
	if err := g.storage.RecordGameStart(); err != nil {
		log.Printf("Warning: Failed to record game start: %v", err)
	}
	g.refreshStats()
}

// Update handles one frame of game logic.
func (g *Game) Update() error {
	g.input.Update()

	if g.panel.HandleInput(g.input) {
		g.updateCursor()
		return nil
	}

	// Keyboard shortcuts
	if IsKeyJustPressed(ebiten.KeyN) {
		g.NewGameAction()
	}
	if IsKeyJustPressed(ebiten.KeyF) {
		g.FlipBoardAction()
	}

	g.handleBoardInput()
	g.updateCursor()

	return nil
}

// updateCursor sets the cursor shape based on hover state.
func (g *Game) updateCursor() {
	if g.panel.AnyButtonHovered() {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)

	g.renderer.DrawBoard(screen)
	g.renderer.DrawHighlights(screen, g.selectedSquare, g.destinations, g.lastFrom, g.lastTo)
	g.renderer.DrawPieces(screen, g.board, g.dragging, g.dragSquare)

	if g.dragging {
		mx, my := g.input.MousePosition()
		g.renderer.DrawDraggedPiece(screen, g.dragPiece, mx, my)
	}

	g.panel.Draw(screen)
}

// Layout returns the game's screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// handleBoardInput translates mouse events into board clicks and drags.
func (g *Game) handleBoardInput() {
	mx, my := g.input.MousePosition()

	if g.input.IsLeftJustPressed() {
		if sq := g.renderer.ScreenToSquare(mx, my); sq != board.NoSquare {
			g.handleBoardClick(sq)
		}
	}

	if g.dragging && g.input.IsLeftJustReleased() {
		g.handleDragRelease(mx, my)
	}
}

// handleBoardClick processes a click (or drag start) on the given square.
// This is the whole board interaction contract: select an own piece, move
// to a highlighted destination, or clear the selection.
func (g *Game) handleBoardClick(sq board.Square) {
	piece := g.board.PieceAt(sq)

	// Clicking an own piece selects it and highlights its destinations.
	if piece != board.NoPiece && piece.Color() == g.board.SideToMove {
		g.selectSquare(sq)
		g.startDrag(sq)
		return
	}

	// With a selection active, clicking a highlighted square moves there.
	if g.selectedSquare != board.NoSquare && g.destinations.Has(sq) {
		g.makeMove(g.selectedSquare, sq)
		return
	}

	g.clearSelection()
}

// selectSquare selects a square and generates its destination set.
func (g *Game) selectSquare(sq board.Square) {
	g.selectedSquare = sq
	g.destinations = g.board.MovesFrom(sq)
}

// clearSelection clears the current selection and drag state.
func (g *Game) clearSelection() {
	g.selectedSquare = board.NoSquare
	g.destinations = board.Empty
	g.dragging = false
	g.dragPiece = board.NoPiece
	g.dragSquare = board.NoSquare
}

// startDrag begins dragging the piece on sq.
func (g *Game) startDrag(sq board.Square) {
	g.dragging = true
	g.dragPiece = g.board.PieceAt(sq)
	g.dragSquare = sq
}

// handleDragRelease drops a dragged piece.
func (g *Game) handleDragRelease(mx, my int) {
	target := g.renderer.ScreenToSquare(mx, my)

	if target != board.NoSquare && g.destinations.Has(target) {
		g.makeMove(g.dragSquare, target)
		return
	}

	// Dropping back on the origin keeps the selection for click-to-move.
	if target == g.dragSquare {
		g.dragging = false
		g.dragPiece = board.NoPiece
		g.dragSquare = board.NoSquare
		return
	}

	if target != board.NoSquare {
		g.playSound(SoundInvalid)
	}
	g.clearSelection()
}

// makeMove applies a move and updates history, tallies, and the autosave.
func (g *Game) makeMove(from, to board.Square) {
	mover := g.board.SideToMove

	captured, err := g.board.Apply(from, to)
	if err != nil {
		log.Printf("Warning: Rejected move %v-%v: %v", from, to, err)
		g.playSound(SoundInvalid)
		g.clearSelection()
		return
	}

	notation := fmt.Sprintf("%v-%v", from, to)
	if captured != board.NoPiece {
		notation = fmt.Sprintf("%vx%v", from, to)
		g.captures[mover]++
		g.playSound(SoundCapture)
	} else {
		g.playSound(SoundMove)
	}

	g.moveHistory = append(g.moveHistory, notation)
	g.moveCount++
	g.lastFrom = from
	g.lastTo = to

	g.clearSelection()
	g.autosave()

	if g.storage != nil {
		if err := g.storage.RecordMove(captured != board.NoPiece); err != nil {
			log.Printf("Warning: Failed to record move: %v", err)
		}
		g.refreshStats()
	}
}

// playSound plays a sound effect if audio is available and enabled.
func (g *Game) playSound(s SoundType) {
	if g.audio != nil {
		g.audio.Play(s)
	}
}

// NewGameAction resets the board to the starting position.
func (g *Game) NewGameAction() {
	g.board = board.StartingPosition()
	g.moveHistory = nil
	g.moveCount = 0
	g.captures = [2]int{}
	g.lastFrom = board.NoSquare
	g.lastTo = board.NoSquare
	g.clearSelection()

	if g.storage != nil {
		if err := g.storage.ClearGame(); err != nil {
			log.Printf("Warning: Failed to clear saved game: %v", err)
		}
	}
	g.recordGameStart()
}

// FlipBoardAction flips the board orientation.
func (g *Game) FlipBoardAction() {
	g.renderer.SetFlipped(!g.renderer.Flipped())
	g.savePreferences()
}

// ToggleSoundAction toggles sound effects.
func (g *Game) ToggleSoundAction() {
	g.audio.SetEnabled(!g.audio.IsEnabled())
	g.savePreferences()
}

// Board returns the current board.
func (g *Game) Board() *board.Board {
	return g.board
}

// MoveHistory returns the move log in coordinate notation.
func (g *Game) MoveHistory() []string {
	return g.moveHistory
}

// MoveCount returns the number of moves made this game.
func (g *Game) MoveCount() int {
	return g.moveCount
}

// CapturedByWhite returns how many pieces White has captured.
func (g *Game) CapturedByWhite() int {
	return g.captures[board.White]
}

// CapturedByBlack returns how many pieces Black has captured.
func (g *Game) CapturedByBlack() int {
	return g.captures[board.Black]
}

// Stats returns the cached all-time play statistics, or nil.
func (g *Game) Stats() *storage.PlayStats {
	return g.stats
}

// SoundEnabled returns whether sound effects are on.
func (g *Game) SoundEnabled() bool {
	return g.audio != nil && g.audio.IsEnabled()
}

// Close releases game resources.
func (g *Game) Close() {
	if g.storage != nil {
		g.storage.Close()
	}
}
