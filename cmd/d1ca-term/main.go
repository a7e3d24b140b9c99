// Command d1ca-term runs the automaton in a terminal, printing either the
// scrolling lattice or one row per generation.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"d1ca/internal/app"
	"d1ca/internal/core"
	"d1ca/internal/sims/d1ca"
)

const clearScreen = "\x1b[H\x1b[2J"

type options struct {
	app.Config
	generations int
	rows        bool
	clear       bool
	direction   uint
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts := options{Config: *app.NewConfig(), direction: 1, clear: true}
	opts.Width = 64
	opts.TPS = 10

	fs := flag.NewFlagSet("d1ca-term", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.generations, "n", 0, "number of generations to run; 0 runs until interrupted")
	fs.BoolVar(&opts.rows, "rows", false, "print one row per generation instead of lattice frames")
	fs.BoolVar(&opts.clear, "clear", opts.clear, "clear the terminal between lattice frames")
	fs.UintVar(&opts.direction, "dir", opts.direction, "initial scan direction (0, 1 or 2)")
	err := opts.Parse(fs, args)
	log := app.NewLogger(stderr, app.ParseLevel(opts.LogLevel))
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			log.Error("invalid configuration", "err", err)
		}
		return err
	}

	u, err := d1ca.New(uint32(opts.Width), uint32(opts.Order), core.NewRNG(opts.Seed))
	if err != nil {
		log.Error("cannot create universe", "err", err)
		return err
	}
	if opts.direction != uint(u.Direction()) {
		if opts.direction > 255 {
			err = fmt.Errorf("direction %d: %w", opts.direction, d1ca.ErrInvalidDirection)
		} else {
			err = u.SetDirection(uint8(opts.direction))
		}
		if err != nil {
			log.Error("cannot set direction", "err", err)
			return err
		}
	}
	log.Info("starting", "width", u.Width(), "rule", u.Order(), "rule_table", d1ca.RuleTable(u.Order()),
		"direction", u.Direction(), "seed", opts.Seed)

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	if err := loop(ctx, u, opts, out, log); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("run aborted", "err", err)
		return err
	}
	return nil
}

func loop(ctx context.Context, u *d1ca.Universe, opts options, out *bufio.Writer, log *slog.Logger) error {
	step := core.NewFixedStep(opts.TPS)
	log.Debug("pacing", "interval", step.Step(), "generations", opts.generations)
	if opts.rows {
		fmt.Fprintln(out, d1ca.RenderRow(u.Cells()))
	}
	for gen := 1; opts.generations == 0 || gen <= opts.generations; gen++ {
		if err := step.Wait(ctx); err != nil {
			log.Info("stopped", "generation", gen-1)
			return err
		}
		if opts.rows {
			u.Tick()
			fmt.Fprintln(out, d1ca.RenderRow(u.Cells()))
		} else {
			u.TickLattice()
			if opts.clear {
				out.WriteString(clearScreen)
			}
			out.WriteString(u.Render())
		}
		if err := out.Flush(); err != nil {
			return err
		}
		log.Debug("tick", "generation", gen)
	}
	return nil
}
