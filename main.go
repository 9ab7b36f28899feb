package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/speedrun/besttimes"
	"github.com/milk9111/speedrun/prefabs"
	"github.com/milk9111/speedrun/session"
)

func main() {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		log.Fatal(err)
	}

	cfg := session.ConfigFromSpec(spec)
	store := besttimes.Load(spec.BestTimesPath, cfg.MaxLevel)

	game, err := NewGame(spec, session.New(cfg, store))
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(spec.ScreenWidth, spec.ScreenHeight)
	ebiten.SetWindowTitle(spec.Title)
	ebiten.SetTPS(spec.TPS)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
