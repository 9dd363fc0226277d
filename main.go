package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flurry/app"
	"github.com/pthm-cable/flurry/config"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output frame stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxFrames := flag.Int64("max-frames", 0, "Stop after N frames (0 = unlimited)")
	backend := flag.String("backend", "", "Video backend identity for pixel format selection (overrides config)")
	effect := flag.String("effect", "", "Particle effect to start with (overrides config)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := app.Options{
		Seed:      rngSeed,
		LogStats:  *logStats,
		OutputDir: *outputDir,
		Headless:  *headless,
		Backend:   *backend,
		Effect:    *effect,
	}

	if *headless {
		// Headless mode - pure CPU rendering, no raylib needed
		a, err := app.New(opts)
		if err != nil {
			slog.Error("failed to start", "error", err)
			os.Exit(1)
		}
		defer a.Unload()

		slog.Info("starting headless run",
			"seed", rngSeed,
			"max_frames", *maxFrames,
		)

		for {
			a.UpdateHeadless()

			if *maxFrames > 0 && a.Frame() >= *maxFrames {
				slog.Info("max frames reached", "frame", a.Frame())
				return
			}
		}
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	a, err := app.New(opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer a.Unload()

	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()

		if *maxFrames > 0 && a.Frame() >= *maxFrames {
			break
		}
	}
}
