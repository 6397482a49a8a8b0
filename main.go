package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Shun-H1115/viscoelastic-fluid/config"
)

func main() {
	cfg := config.Load()

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.WindowTitle)

	if err := ebiten.RunGame(NewApp(cfg.WindowWidth, cfg.WindowHeight)); err != nil {
		log.Fatal(err)
	}
}
