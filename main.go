// GoChess - A chess board built with Ebitengine
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tlemaire/gochess/internal/ui"
)

func main() {
	game := ui.NewGame()
	defer game.Close()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("GoChess")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
