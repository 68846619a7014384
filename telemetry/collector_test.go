package telemetry

import (
	"math"
	"testing"
)

func TestFlushBeforeWindowBoundary(t *testing.T) {
	c := NewCollector(5.0)
	c.RecordFrame(1.0 / 60.0)

	if _, ok := c.Flush(2.0, "tree", 100, 0); ok {
		t.Error("flush before the window boundary should emit nothing")
	}
}

func TestFlushAggregatesWindow(t *testing.T) {
	c := NewCollector(5.0)
	for i := 0; i < 300; i++ {
		c.RecordFrame(1.0 / 60.0)
	}
	c.RecordToggle()
	c.RecordToggle()

	stats, ok := c.Flush(5.0, "tree", 120, 30)
	if !ok {
		t.Fatal("expected a stats record at the window boundary")
	}
	if stats.Frames != 300 {
		t.Errorf("frames %d, expected 300", stats.Frames)
	}
	if math.Abs(stats.FPS-60) > 0.5 {
		t.Errorf("fps %f, expected ~60", stats.FPS)
	}
	if math.Abs(stats.FrameMeanMs-1000.0/60.0) > 0.01 {
		t.Errorf("mean frame time %f ms, expected ~16.67", stats.FrameMeanMs)
	}
	if stats.FrameStdMs > 1e-6 {
		t.Errorf("uniform frames should have ~zero stddev, got %f", stats.FrameStdMs)
	}
	if stats.Toggles != 2 || stats.SnowFalling != 120 || stats.SnowLanded != 30 || stats.Mode != "tree" {
		t.Errorf("unexpected sampled fields: %+v", stats)
	}
}

func TestFlushResetsWindow(t *testing.T) {
	c := NewCollector(5.0)
	for i := 0; i < 10; i++ {
		c.RecordFrame(0.02)
	}
	c.RecordToggle()

	if _, ok := c.Flush(5.0, "tree", 0, 0); !ok {
		t.Fatal("expected first window to flush")
	}

	// The next window starts empty.
	stats, ok := c.Flush(10.0, "exploded", 0, 0)
	if !ok {
		t.Fatal("expected second window to flush")
	}
	if stats.Frames != 0 || stats.Toggles != 0 {
		t.Errorf("window state leaked across flush: %+v", stats)
	}
	if stats.Mode != "exploded" {
		t.Errorf("mode sampled at flush time should be exploded, got %q", stats.Mode)
	}
}

func TestComputeFrameStatsPercentile(t *testing.T) {
	// One slow frame among fast ones should dominate the p95.
	frames := make([]float64, 100)
	for i := range frames {
		frames[i] = 0.016
	}
	frames[50] = 0.100

	_, _, p95 := computeFrameStats(frames)
	if p95 < 15.9 || p95 > 17.0 {
		t.Errorf("p95 %f ms, expected near 16 with a single outlier", p95)
	}

	mean, std, _ := computeFrameStats(frames)
	if mean <= 16.0 {
		t.Errorf("outlier should pull the mean above 16 ms, got %f", mean)
	}
	if std <= 0 {
		t.Errorf("expected positive stddev with an outlier, got %f", std)
	}
}

func TestComputeFrameStatsEmpty(t *testing.T) {
	mean, std, p95 := computeFrameStats(nil)
	if mean != 0 || std != 0 || p95 != 0 {
		t.Errorf("empty window should aggregate to zeros, got %f %f %f", mean, std, p95)
	}
}
