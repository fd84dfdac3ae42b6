//go:build ebiten

// Command terragen-view opens an interactive window on a preview sim.
package main

import (
	"errors"
	"flag"
	"log"

	"terragen/internal/app"
	"terragen/internal/core"
	_ "terragen/internal/sims/dla"
	_ "terragen/internal/sims/landform"
	_ "terragen/internal/sims/stacked"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := core.New(cfg.Sim, cfg.Params)
	if err != nil {
		log.Fatalf("sim %q: %v", cfg.Sim, err)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("terragen: " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
