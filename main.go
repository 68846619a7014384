package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/spruce/config"
	"github.com/pthm-cable/spruce/gesture"
	"github.com/pthm-cable/spruce/scene"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	syntheticHand := flag.Bool("synthetic-hand", false, "Drive gestures from a scripted hand instead of input devices")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *syntheticHand {
		cfg.Gesture.Enabled = true
	}

	opts := scene.Options{
		Seed:      *seed,
		Headless:  *headless,
		LogStats:  *logStats,
		OutputDir: *outputDir,
	}

	if *headless {
		// Headless mode - fixed timestep, no raylib needed
		s, err := scene.New(cfg, opts)
		if err != nil {
			slog.Error("failed to build scene", "error", err)
			os.Exit(1)
		}
		defer s.Unload()

		if *syntheticHand {
			s.StartTracker(&gesture.SyntheticTracker{})
		}

		dt := float32(1) / float32(cfg.Screen.TargetFPS)
		slog.Info("starting headless run",
			"dt", dt,
			"max_ticks", *maxTicks,
		)
		for {
			s.Update(dt)
			if *maxTicks > 0 && int(s.Tick()) >= *maxTicks {
				slog.Info("max ticks reached", "tick", s.Tick())
				return
			}
		}
	} else {
		// Graphical mode
		rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Spruce")
		defer rl.CloseWindow()

		rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

		s, err := scene.New(cfg, opts)
		if err != nil {
			slog.Error("failed to build scene", "error", err)
			os.Exit(1)
		}
		defer s.Unload()

		if *syntheticHand {
			s.StartTracker(&gesture.SyntheticTracker{})
		}

		for !rl.WindowShouldClose() {
			s.Update(rl.GetFrameTime())
			s.Draw()

			if *maxTicks > 0 && int(s.Tick()) >= *maxTicks {
				break
			}
		}
	}
}
