// Package telemetry collects per-window frame statistics for logging and
// CSV output.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one stats window.
type WindowStats struct {
	WindowEndSec float64 `csv:"window_end"`
	Frames       int     `csv:"frames"`
	FPS          float64 `csv:"fps"`

	// Frame time distribution in milliseconds
	FrameMeanMs float64 `csv:"frame_mean_ms"`
	FrameStdMs  float64 `csv:"frame_std_ms"`
	FrameP95Ms  float64 `csv:"frame_p95_ms"`

	// Scene state at window end
	Mode        string `csv:"mode"`
	Toggles     int    `csv:"toggles"`
	SnowFalling int    `csv:"snow_falling"`
	SnowLanded  int    `csv:"snow_landed"`
}

// computeFrameStats aggregates a window of frame durations (seconds).
func computeFrameStats(frames []float64) (meanMs, stdMs, p95Ms float64) {
	if len(frames) == 0 {
		return 0, 0, 0
	}

	sorted := make([]float64, len(frames))
	copy(sorted, frames)
	sort.Float64s(sorted)

	meanMs = stat.Mean(sorted, nil) * 1000
	if len(sorted) > 1 {
		stdMs = stat.StdDev(sorted, nil) * 1000
	}
	p95Ms = stat.Quantile(0.95, stat.Empirical, sorted, nil) * 1000
	return meanMs, stdMs, p95Ms
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("window_end", s.WindowEndSec),
		slog.Int("frames", s.Frames),
		slog.Float64("fps", s.FPS),
		slog.Float64("frame_mean_ms", s.FrameMeanMs),
		slog.Float64("frame_std_ms", s.FrameStdMs),
		slog.Float64("frame_p95_ms", s.FrameP95Ms),
		slog.String("mode", s.Mode),
		slog.Int("toggles", s.Toggles),
		slog.Int("snow_falling", s.SnowFalling),
		slog.Int("snow_landed", s.SnowLanded),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndSec,
		"frames", s.Frames,
		"fps", s.FPS,
		"frame_mean_ms", s.FrameMeanMs,
		"frame_std_ms", s.FrameStdMs,
		"frame_p95_ms", s.FrameP95Ms,
		"mode", s.Mode,
		"toggles", s.Toggles,
		"snow_falling", s.SnowFalling,
		"snow_landed", s.SnowLanded,
	)
}
