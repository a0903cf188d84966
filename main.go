package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
	"github.com/iburimskiy/particle-field/internal/game"
	"github.com/iburimskiy/particle-field/internal/raster"
	"github.com/iburimskiy/particle-field/internal/sdl"
	"github.com/iburimskiy/particle-field/internal/term"
)

func main() {
	cfg := config.Default()
	var backend string
	flag.StringVar(&backend, "backend", string(cfg.Backend), "Host to run in: window, terminal, sdl or headless.")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Initial viewport width.")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Initial viewport height.")
	flag.IntVar(&cfg.Frames, "frames", cfg.Frames, "Frames to render in headless mode.")
	flag.StringVar(&cfg.Out, "out", cfg.Out, "PNG output path in headless mode.")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Random seed (0 = time based).")
	flag.BoolVar(&cfg.Grid, "grid", false, "Use the grid index for proximity links.")
	flag.BoolVar(&cfg.Debug, "debug", false, "Log lifecycle events and show the stats overlay.")
	flag.Parse()
	cfg.Backend = config.Backend(backend)

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Run) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := log.New(os.Stderr, "particle-field: ", log.LstdFlags)
	fieldLog := log.New(io.Discard, "", 0)
	if cfg.Debug {
		fieldLog = logger
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	ix := field.BruteForce
	if cfg.Grid {
		ix = field.Grid
	}
	f := field.New(
		field.WithRand(rand.New(rand.NewPCG(seed, seed>>1))),
		field.WithLinkIndex(ix),
		field.WithLogger(fieldLog),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch cfg.Backend {
	case config.BackendWindow:
		err = game.Run(cfg, f, ix, logger)
	case config.BackendTerminal:
		err = term.RunScreen(ctx, f)
	case config.BackendSDL:
		err = sdl.Run(ctx, cfg, f)
	case config.BackendHeadless:
		err = renderHeadless(ctx, cfg, f, logger)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func renderHeadless(ctx context.Context, cfg config.Run, f *field.Field, logger *log.Logger) error {
	start := time.Now()
	img, err := raster.Render(ctx, cfg, f)
	if err != nil {
		return err
	}
	if err := raster.WritePNG(cfg.Out, img); err != nil {
		return err
	}
	logger.Printf("rendered %d frames (%dx%d) to %s in %v",
		cfg.Frames, cfg.Width, cfg.Height, cfg.Out, time.Since(start).Round(time.Millisecond))
	return nil
}
