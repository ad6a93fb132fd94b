package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"shapes/app"
	"shapes/hal"
	"shapes/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		cfgPath  = flag.String("config", "", "Optional YAML config file.")
		variant  = flag.String("variant", "", "Shape to show: "+strings.Join(app.Variants(), ", ")+".")
		headless = flag.Bool("headless", false, "Run without a window.")
		ticks    = flag.Uint64("ticks", 0, "Stop after N frames in headless mode (0 = run until interrupted).")
		hz       = flag.Int("hz", 0, "Frame rate (0 = 60 Hz).")
		snapshot = flag.String("snapshot", "", "Write the last headless frame to this PNG file.")
		hud      = flag.Bool("hud", false, "Overlay variant, phase and frame counter.")
		depth    = flag.Bool("depth", false, "Enable the depth test.")
		logLevel = flag.String("log-level", "", "Log level: debug, info, warn, error.")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	// Flags given on the command line override the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "variant":
			cfg.Variant = *variant
		case "headless":
			cfg.Headless.Enabled = *headless
		case "ticks":
			cfg.Headless.Ticks = *ticks
		case "hz":
			cfg.Hz = *hz
		case "snapshot":
			cfg.Headless.Snapshot = *snapshot
		case "hud":
			cfg.HUD = *hud
		case "depth":
			cfg.Depth = *depth
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := config.ParseLevel(cfg.LogLevel)
	app.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if cfg.Headless.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		host := hal.NewHeadless(hal.HeadlessConfig{
			Ticks:         cfg.Headless.Ticks,
			Snapshot:      cfg.Headless.Snapshot,
			SnapshotScale: cfg.Headless.SnapshotScale,
		})
		if err := app.Run(ctx, host, cfg); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}

	return hal.RunWindow(func(h hal.Host) error {
		return app.Run(context.Background(), h, cfg)
	})
}
