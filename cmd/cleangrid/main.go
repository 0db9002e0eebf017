//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"cleangrid/internal/app"
	"cleangrid/internal/core"
	_ "cleangrid/internal/sims/cleaning"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.TPS, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("cleangrid — " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
