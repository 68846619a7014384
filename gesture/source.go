// Package gesture converts hand-tracking signals into scene controls: a
// hysteresis-filtered open/close toggle and a dead-zoned rotation command.
// The capture and landmark-detection pipeline is an external collaborator;
// this package only consumes its two scalar outputs.
package gesture

import (
	"context"
	"sync/atomic"
)

// Signal is one observation from the hand tracker.
type Signal struct {
	OpenRatio float32 // hand-openness shape descriptor, larger = more open
	WristX    float32 // normalized horizontal wrist position in [0, 1]
}

// Source is a latest-value hand-off between the tracker goroutine and the
// render tick. One writer, one reader, staleness acceptable: the reader
// simply sees the most recent published signal and tolerates missed ticks.
type Source struct {
	latest atomic.Pointer[Signal]
	seq    atomic.Uint64
}

// Publish stores a new observation, replacing any unread one.
func (s *Source) Publish(sig Signal) {
	s.latest.Store(&sig)
	s.seq.Add(1)
}

// Latest returns the most recent signal, or ok=false if none has ever been
// published.
func (s *Source) Latest() (Signal, bool) {
	p := s.latest.Load()
	if p == nil {
		return Signal{}, false
	}
	return *p, true
}

// Seq returns the number of signals published so far. The scene uses it to
// detect whether a fresh observation arrived since the last tick.
func (s *Source) Seq() uint64 {
	return s.seq.Load()
}

// Tracker is the external detection collaborator. Run blocks, publishing
// signals into the source until the context is cancelled; it must release
// any captured device on return.
type Tracker interface {
	Run(ctx context.Context, out *Source) error
}
