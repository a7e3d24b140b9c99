//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"d1ca/internal/app"
	"d1ca/internal/core"
	_ "d1ca/internal/sims/d1ca"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	err := cfg.Parse(flag.CommandLine, os.Args[1:])
	log := app.NewLogger(os.Stderr, app.ParseLevel(cfg.LogLevel))
	if err != nil {
		log.Error("invalid configuration", "err", err)
		os.Exit(2)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Error("unknown sim", "sim", cfg.Sim, "available", core.Names())
		os.Exit(2)
	}

	sim := factory(cfg.SimOptions())
	log.Info("starting", "sim", sim.Name(), "width", cfg.Width, "rule", cfg.Order, "seed", cfg.Seed, "tps", cfg.TPS)

	game := app.New(sim, cfg.Scale, cfg.Seed, log)
	ebiten.SetWindowTitle("d1ca: rule " + cfg.SimOptions()["rule"])
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game exited", "err", err)
		os.Exit(1)
	}
}
