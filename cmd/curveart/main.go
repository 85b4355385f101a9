// Command curveart renders random Bezier curve art to a PNG file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/curveart"
	"github.com/gogpu/curveart/internal/applog"
	"github.com/gogpu/curveart/internal/config"
	"github.com/gogpu/curveart/internal/scene"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	switch {
	case errors.Is(err, flag.ErrHelp):
		os.Exit(0)
	case err != nil:
		fmt.Fprintln(os.Stderr, "curveart:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("curveart", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "YAML configuration file")
		output     = fs.String("output", "", "output file (overrides config)")
		seed       = fs.Uint64("seed", 0, "random seed, 0 seeds from the clock (overrides config)")
		preview    = fs.String("preview", "", "also write a downscaled preview to this file")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *output != "" {
		cfg.Output.Path = *output
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *preview != "" {
		cfg.Output.PreviewPath = *preview
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	logger := applog.New(applog.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	}, stderr)
	defer func() { _ = logger.Close() }()
	curveart.SetLogger(applog.WithComponent(logger.Logger, "render"))
	defer curveart.SetLogger(nil)

	log := applog.WithComponent(logger.Logger, "cli")
	log.Info("start", slog.Uint64("seed", cfg.Seed), slog.String("output", cfg.Output.Path))

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	sc, err := scene.New(scene.FromConfig(cfg), rng, applog.WithComponent(logger.Logger, "scene"))
	if err != nil {
		return err
	}

	start := time.Now()
	stats, err := sc.Run(ctx)
	if err != nil {
		log.Error("run failed", slog.Any("err", err))
		return err
	}

	p := message.NewPrinter(language.English)
	_, _ = p.Fprintf(stdout, "%s: %d curves, %d quads, %d fallbacks, %d lines in %v (seed %d)\n",
		cfg.Output.Path, stats.Curves, stats.Strokes.Quads, stats.Strokes.Fallbacks,
		stats.LineSegments, time.Since(start).Round(time.Millisecond), cfg.Seed)
	return nil
}
