// snowbench runs the snowfall simulation headless and reports step cost
// and accumulation behaviour over a scripted formation cycle.
package main

import (
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/spruce/config"
	"github.com/pthm-cable/spruce/systems"
)

// TickSample is one CSV row of the benchmark trace.
type TickSample struct {
	Tick       int     `csv:"tick"`
	Mode       string  `csv:"mode"`
	Falling    int     `csv:"falling"`
	Landed     int     `csv:"landed"`
	StepMicros float64 `csv:"step_us"`
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	count := flag.Int("count", 0, "Flake count override (0 = use config)")
	ticks := flag.Int("ticks", 3600, "Ticks to simulate")
	togglePeriod := flag.Int("toggle-period", 900, "Ticks between formation toggles (0 = never)")
	sampleEvery := flag.Int("sample-every", 10, "Record every Nth tick")
	out := flag.String("out", "", "Trace CSV path (empty = no trace)")
	seed := flag.Int64("seed", 42, "RNG seed")

	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	params := systems.SnowParamsFromConfig(cfg)
	if *count > 0 {
		params.Count = *count
	}

	rng := rand.New(rand.NewSource(*seed))
	snow := systems.NewSnowSystem(params, rng)

	dt := float32(1) / float32(cfg.Screen.TargetFPS)
	mode := systems.ModeTree
	elapsed := float32(0)

	samples := make([]TickSample, 0, *ticks / *sampleEvery+1)
	stepCosts := make([]float64, 0, *ticks)

	for tick := 1; tick <= *ticks; tick++ {
		if *togglePeriod > 0 && tick%*togglePeriod == 0 {
			if mode == systems.ModeTree {
				mode = systems.ModeExploded
			} else {
				mode = systems.ModeTree
				snow.ResetFalling()
			}
		}

		elapsed += dt
		start := time.Now()
		snow.Update(dt, elapsed, mode)
		cost := float64(time.Since(start)) / float64(time.Microsecond)
		stepCosts = append(stepCosts, cost)

		if tick%*sampleEvery == 0 {
			landed := snow.LandedCount()
			samples = append(samples, TickSample{
				Tick:       tick,
				Mode:       mode.String(),
				Falling:    snow.Count() - landed,
				Landed:     landed,
				StepMicros: cost,
			})
		}
	}

	sort.Float64s(stepCosts)
	landed := snow.LandedCount()
	slog.Info("benchmark complete",
		"flakes", params.Count,
		"ticks", *ticks,
		"landed", landed,
		"step_mean_us", stat.Mean(stepCosts, nil),
		"step_p95_us", stat.Quantile(0.95, stat.Empirical, stepCosts, nil),
	)

	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			slog.Error("failed to create trace file", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := gocsv.Marshal(samples, f); err != nil {
			slog.Error("failed to write trace", "error", err)
			os.Exit(1)
		}
		slog.Info("trace written", "path", *out, "rows", len(samples))
	}
}
