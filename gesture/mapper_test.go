package gesture

import (
	"math"
	"testing"
)

func TestWristDeadZoneAndGain(t *testing.T) {
	cases := []struct {
		wristX float32
		want   float32
	}{
		{0.5, 0},    // exact center: dead zone
		{0.52, 0},   // still inside the dead zone
		{0.48, 0},
		{0.8, 1.5},  // (0.8 - 0.55) * 6.0
		{0.2, -1.5}, // -((0.45 - 0.2) * 6.0)
		{1.0, 2.7},
		{0.0, -2.7},
	}

	for _, tc := range cases {
		m := NewMapper(DefaultParams())
		m.Observe(Signal{OpenRatio: 1.0, WristX: tc.wristX})
		if got := m.Rotation(); math.Abs(float64(got-tc.want)) > 1e-5 {
			t.Errorf("wristX=%f: rotation %f, expected %f", tc.wristX, got, tc.want)
		}
	}
}

func TestHysteresisSingleOpenEvent(t *testing.T) {
	m := NewMapper(DefaultParams())

	opens := 0
	for ratio := float32(1.0); ratio < 1.8; ratio += 0.02 {
		switch m.Observe(Signal{OpenRatio: ratio, WristX: 0.5}) {
		case EdgeOpened:
			opens++
		case EdgeClosed:
			t.Fatal("monotonically increasing ratio must not emit a close edge")
		}
	}
	if opens != 1 {
		t.Errorf("expected exactly one open event, got %d", opens)
	}
	if !m.Open() {
		t.Error("mapper should report open after crossing the upper threshold")
	}
}

func TestHysteresisDeadBandEmitsNothing(t *testing.T) {
	m := NewMapper(DefaultParams())
	m.Observe(Signal{OpenRatio: 1.0, WristX: 0.5}) // seed well below both thresholds

	// Oscillate entirely within the [1.25, 1.35] dead band.
	for i := 0; i < 200; i++ {
		ratio := float32(1.30)
		if i%2 == 0 {
			ratio = 1.26
		} else {
			ratio = 1.34
		}
		if edge := m.Observe(Signal{OpenRatio: ratio, WristX: 0.5}); edge != EdgeNone {
			t.Fatalf("iteration %d: dead-band oscillation emitted edge %d", i, edge)
		}
	}
	if m.Open() {
		t.Error("mapper should remain closed inside the dead band")
	}
}

func TestHysteresisOpenThenClose(t *testing.T) {
	m := NewMapper(DefaultParams())
	m.Observe(Signal{OpenRatio: 1.0, WristX: 0.5})

	var edges []Edge
	feed := func(ratio float32, n int) {
		for i := 0; i < n; i++ {
			if e := m.Observe(Signal{OpenRatio: ratio, WristX: 0.5}); e != EdgeNone {
				edges = append(edges, e)
			}
		}
	}

	feed(1.6, 50) // smoothed ratio converges above 1.35
	feed(1.0, 50) // then drops below 1.25

	if len(edges) != 2 || edges[0] != EdgeOpened || edges[1] != EdgeClosed {
		t.Errorf("expected [opened, closed], got %v", edges)
	}
}

func TestSmoothingSuppressesSpikes(t *testing.T) {
	m := NewMapper(DefaultParams())
	m.Observe(Signal{OpenRatio: 1.0, WristX: 0.5})

	// A single-frame detection spike above the open threshold must not flip
	// the state once the EMA has it diluted.
	if edge := m.Observe(Signal{OpenRatio: 2.2, WristX: 0.5}); edge != EdgeNone {
		t.Errorf("one spike flipped the state: smoothed ratio should lag, got edge %d", edge)
	}
}

func TestNoHandFramesPersistState(t *testing.T) {
	m := NewMapper(DefaultParams())
	for i := 0; i < 30; i++ {
		m.Observe(Signal{OpenRatio: 1.6, WristX: 0.8})
	}
	openBefore, rotBefore := m.Open(), m.Rotation()

	// No-hand frames: Observe is simply not called. State must persist.
	if m.Open() != openBefore || m.Rotation() != rotBefore {
		t.Error("state changed without an observation")
	}
	if !openBefore {
		t.Error("setup: mapper should be open")
	}
	if math.Abs(float64(rotBefore-1.5)) > 1e-3 {
		t.Errorf("setup: rotation %f, expected ~1.5", rotBefore)
	}
}

func TestSourceLatestValueSemantics(t *testing.T) {
	var s Source

	if _, ok := s.Latest(); ok {
		t.Error("empty source should report no signal")
	}

	s.Publish(Signal{OpenRatio: 1.1, WristX: 0.3})
	s.Publish(Signal{OpenRatio: 1.4, WristX: 0.7})

	sig, ok := s.Latest()
	if !ok || sig.OpenRatio != 1.4 || sig.WristX != 0.7 {
		t.Errorf("expected the most recent signal, got %+v ok=%v", sig, ok)
	}
	if s.Seq() != 2 {
		t.Errorf("expected 2 published signals, got %d", s.Seq())
	}

	// Reading is non-destructive: the same value stays latest.
	again, _ := s.Latest()
	if again != sig {
		t.Error("Latest must not consume the signal")
	}
}
