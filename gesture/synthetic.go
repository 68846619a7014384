package gesture

import (
	"context"
	"math"
	"time"
)

// SyntheticTracker publishes a scripted hand for demos and soak runs: the
// wrist sweeps side to side while the hand periodically opens wide enough
// to cross the open threshold and closes again.
type SyntheticTracker struct {
	// Rate is the publish frequency. Zero means 30 Hz.
	Rate time.Duration

	// SweepSpeed is the wrist oscillation rate in rad/s.
	SweepSpeed float64

	// OpenPeriod is the seconds between open-hand pulses.
	OpenPeriod float64
}

// Run publishes signals until the context is canceled.
func (t *SyntheticTracker) Run(ctx context.Context, out *Source) error {
	rate := t.Rate
	if rate <= 0 {
		rate = time.Second / 30
	}
	sweep := t.SweepSpeed
	if sweep == 0 {
		sweep = 0.4
	}
	period := t.OpenPeriod
	if period <= 0 {
		period = 8
	}

	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			elapsed := time.Since(start).Seconds()
			ratio := 1.0
			if math.Mod(elapsed, period) < 0.6 {
				ratio = 1.6
			}
			out.Publish(Signal{
				OpenRatio: float32(ratio),
				WristX:    float32(0.5 + 0.4*math.Sin(elapsed*sweep)),
			})
		}
	}
}
