package telemetry

// Collector accumulates per-frame observations and emits WindowStats once
// per stats window. The frame buffer is reused across windows.
type Collector struct {
	windowSec   float64
	windowStart float64
	frames      []float64
	toggles     int
}

// NewCollector creates a collector with the given window length in seconds.
func NewCollector(windowSec float64) *Collector {
	return &Collector{
		windowSec: windowSec,
		frames:    make([]float64, 0, 1024),
	}
}

// RecordFrame records one frame duration in seconds.
func (c *Collector) RecordFrame(dt float64) {
	c.frames = append(c.frames, dt)
}

// RecordToggle records one scene-mode toggle.
func (c *Collector) RecordToggle() {
	c.toggles++
}

// Flush returns the aggregated stats for the closing window once elapsed
// crosses the window boundary, and resets for the next window. The snow
// counts and mode are sampled at flush time.
func (c *Collector) Flush(elapsed float64, mode string, snowFalling, snowLanded int) (WindowStats, bool) {
	if elapsed-c.windowStart < c.windowSec {
		return WindowStats{}, false
	}

	span := elapsed - c.windowStart
	stats := WindowStats{
		WindowEndSec: elapsed,
		Frames:       len(c.frames),
		Mode:         mode,
		Toggles:      c.toggles,
		SnowFalling:  snowFalling,
		SnowLanded:   snowLanded,
	}
	if span > 0 {
		stats.FPS = float64(len(c.frames)) / span
	}
	stats.FrameMeanMs, stats.FrameStdMs, stats.FrameP95Ms = computeFrameStats(c.frames)

	c.windowStart = elapsed
	c.frames = c.frames[:0]
	c.toggles = 0
	return stats, true
}
