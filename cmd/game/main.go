package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"territorial/internal/config"
	"territorial/internal/game"
)

func main() {
	cfg := config.Load()
	ebiten.SetWindowTitle("Territorial Control")
	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)
	if err := ebiten.RunGame(game.New(cfg)); err != nil {
		log.Fatal(err)
	}
}
