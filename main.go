package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/suttonwilliamd/bitbybit-sub001/internal/game"
)

func main() {
	ebiten.SetWindowSize(1200, 800)
	ebiten.SetWindowTitle("Bit by Bit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(640, 480, -1, -1)

	g := game.New()
	defer g.SaveOnExit()
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
