// Package scene owns the interactive holiday scene: the ornament
// populations, snowfall, gifts, camera and gesture wiring, and the
// per-frame update order.
package scene

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/spruce/camera"
	"github.com/pthm-cable/spruce/components"
	"github.com/pthm-cable/spruce/config"
	"github.com/pthm-cable/spruce/gesture"
	"github.com/pthm-cable/spruce/renderer"
	"github.com/pthm-cable/spruce/systems"
	"github.com/pthm-cable/spruce/telemetry"
	"github.com/pthm-cable/spruce/ui"
)

// Options controls scene construction.
type Options struct {
	Seed      int64  // 0 picks a time-based seed
	Headless  bool   // skip all rendering resources
	LogStats  bool   // emit per-window stats to the structured log
	OutputDir string // telemetry output directory, empty disables
}

// Scene is the top-level simulation state. All mutation happens on the
// main loop goroutine; only the gesture source is written from elsewhere.
type Scene struct {
	cfg *config.Config
	rng *rand.Rand

	mode    systems.Mode
	elapsed float32
	tick    uint64
	paused  bool

	treeTargets  []systems.Vec3
	shellTargets []systems.Vec3
	ornaments    *systems.Population
	snow         *systems.SnowSystem
	rotation     *systems.RotationControl
	orbit        *camera.Orbit

	world      *ecs.World
	giftMapper *ecs.Map3[components.Transform, components.Wrap, components.Bow]
	giftFilter *ecs.Filter3[components.Transform, components.Wrap, components.Bow]
	giftCount  int

	source  *gesture.Source
	mapper  *gesture.Mapper
	lastSeq uint64

	trackerCancel context.CancelFunc
	trackerDone   chan struct{}

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool

	headless bool
	showHUD  bool

	ornamentR *renderer.OrnamentRenderer
	giftR     *renderer.GiftRenderer
}

// New builds the scene from the loaded config. In windowed mode the raylib
// window must already exist so mesh resources can be created.
func New(cfg *config.Config, opts Options) (*Scene, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	world := ecs.NewWorld()

	n := cfg.Tree.Ornaments
	treeTargets := systems.TreeLayout(n, systems.TreeParamsFromConfig(cfg), rng)
	shellTargets := systems.ShellLayout(n, systems.ShellParamsFromConfig(cfg), rng)
	colors := systems.AssignColors(n, systems.PaletteFromConfig(cfg), rng)

	s := &Scene{
		cfg:          cfg,
		rng:          rng,
		mode:         systems.ModeTree,
		treeTargets:  treeTargets,
		shellTargets: shellTargets,
		ornaments:    systems.NewPopulation(treeTargets, colors, float32(cfg.Tree.Lambda)),
		snow:         systems.NewSnowSystem(systems.SnowParamsFromConfig(cfg), rng),
		rotation:     systems.NewRotationControl(systems.RotationParamsFromConfig(cfg)),
		world:        world,
		giftMapper:   ecs.NewMap3[components.Transform, components.Wrap, components.Bow](world),
		giftFilter:   ecs.NewFilter3[components.Transform, components.Wrap, components.Bow](world),
		source:       &gesture.Source{},
		mapper:       gesture.NewMapper(gestureParams(cfg)),
		collector:    telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		logStats:     opts.LogStats,
		headless:     opts.Headless,
		showHUD:      !opts.Headless,
	}

	s.orbit = camera.New(0, float32(cfg.Tree.Height)*0.35, 0,
		float32(cfg.Camera.Radius), float32(cfg.Camera.Pitch))

	s.spawnGifts()

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			return nil, err
		}
		s.output = om
		if err := om.WriteConfig(cfg); err != nil {
			slog.Warn("writing run config", "error", err)
		}
	}

	if !opts.Headless {
		s.ornamentR = renderer.NewOrnamentRenderer(
			float32(cfg.Tree.SpinSpeed),
			float32(cfg.Tree.ScaleBase),
			float32(cfg.Tree.ScalePulse),
		)
		s.giftR = renderer.NewGiftRenderer(systems.RibbonParamsFromConfig(cfg))
	}

	slog.Info("scene ready",
		"seed", seed,
		"ornaments", n,
		"snow", s.snow.Count(),
		"gifts", s.giftCount,
		"headless", opts.Headless,
	)
	return s, nil
}

func gestureParams(cfg *config.Config) gesture.Params {
	return gesture.Params{
		RatioAlpha:     float32(cfg.Gesture.RatioAlpha),
		WristAlpha:     float32(cfg.Gesture.WristAlpha),
		OpenThreshold:  float32(cfg.Gesture.OpenThreshold),
		CloseThreshold: float32(cfg.Gesture.CloseThreshold),
		DeadZone:       float32(cfg.Gesture.DeadZone),
		Sensitivity:    float32(cfg.Gesture.Sensitivity),
	}
}

// Mode returns the current formation.
func (s *Scene) Mode() systems.Mode {
	return s.mode
}

// Elapsed returns simulated seconds since start.
func (s *Scene) Elapsed() float32 {
	return s.elapsed
}

// Tick returns the number of simulation steps taken.
func (s *Scene) Tick() uint64 {
	return s.tick
}

// Source returns the gesture hand-off slot for external trackers.
func (s *Scene) Source() *gesture.Source {
	return s.source
}

// SetManualRotation feeds a manual rotation command to the controller.
// Values inside the threshold fall back to the idle rate for the mode.
func (s *Scene) SetManualRotation(cmd float32) {
	s.rotation.SetManual(cmd)
}

// ToggleMode flips between the assembled tree and the scattered shell.
func (s *Scene) ToggleMode() {
	if s.mode == systems.ModeTree {
		s.SetMode(systems.ModeExploded)
	} else {
		s.SetMode(systems.ModeTree)
	}
}

// SetMode switches formations. Setting the current mode is a no-op, so
// repeated open-hand events while already exploded do nothing.
func (s *Scene) SetMode(m systems.Mode) {
	if m == s.mode {
		return
	}
	s.mode = m
	switch m {
	case systems.ModeExploded:
		s.ornaments.Retarget(s.shellTargets)
	case systems.ModeTree:
		s.ornaments.Retarget(s.treeTargets)
		s.snow.ResetFalling()
	}
	s.collector.RecordToggle()
	slog.Info("formation switched", "mode", m.String(), "tick", s.tick)
}

// Update advances the scene by dt seconds.
func (s *Scene) Update(dt float32) {
	if !s.headless {
		s.handleInput(dt)
	}
	s.drainGesture()

	if s.paused {
		return
	}

	s.elapsed += dt
	s.tick++

	speed := s.rotation.Step(s.mode, dt)
	s.orbit.Advance(speed, dt)
	s.ornaments.Step(dt)
	s.snow.Update(dt, s.elapsed, s.mode)
	s.animateGifts(dt)

	s.collector.RecordFrame(float64(dt))
	landed := s.snow.LandedCount()
	if stats, ok := s.collector.Flush(float64(s.elapsed), s.mode.String(), s.snow.Count()-landed, landed); ok {
		if s.logStats {
			stats.LogStats()
		}
		if s.output != nil {
			if err := s.output.WriteStats(stats); err != nil {
				slog.Warn("writing stats", "error", err)
			}
		}
	}
}

// drainGesture consumes the latest tracker signal, if any arrived since the
// previous frame. Missed intermediate signals are fine: only the newest
// matters, and no-hand gaps simply leave the mapper state as it was.
func (s *Scene) drainGesture() {
	if !s.cfg.Gesture.Enabled {
		return
	}
	if seq := s.source.Seq(); seq != s.lastSeq {
		s.lastSeq = seq
		if sig, ok := s.source.Latest(); ok {
			if s.mapper.Observe(sig) == gesture.EdgeOpened {
				s.ToggleMode()
			}
		}
	}
	s.rotation.SetManual(s.mapper.Rotation())
}

// StartTracker runs a hand tracker on its own goroutine, publishing into
// the scene's gesture source until Unload cancels it.
func (s *Scene) StartTracker(t gesture.Tracker) {
	ctx, cancel := context.WithCancel(context.Background())
	s.trackerCancel = cancel
	s.trackerDone = make(chan struct{})
	go func() {
		defer close(s.trackerDone)
		if err := t.Run(ctx, s.source); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("tracker stopped", "error", err)
		}
	}()
}

// Draw renders one frame. Must not be called in headless mode.
func (s *Scene) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	renderer.DrawSky(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))

	rl.BeginMode3D(s.raylibCamera())
	renderer.DrawGround(float32(s.cfg.Snow.GroundY), float32(s.cfg.Snow.AreaRadius))
	s.ornamentR.Draw(s.ornaments, s.elapsed)

	query := s.giftFilter.Query()
	for query.Next() {
		tr, wrap, bow := query.Get()
		s.giftR.Draw(tr, wrap, bow, s.elapsed)
	}

	renderer.DrawSnow(s.snow.Particles())
	rl.EndMode3D()

	if s.showHUD {
		landed := s.snow.LandedCount()
		acts := ui.Draw(ui.State{
			Mode:           s.mode.String(),
			Paused:         s.paused,
			FPS:            rl.GetFPS(),
			Ornaments:      s.ornaments.Count(),
			SnowFalling:    s.snow.Count() - landed,
			SnowLanded:     landed,
			Gifts:          s.giftCount,
			GestureEnabled: s.cfg.Gesture.Enabled,
			HandOpen:       s.mapper.Open(),
			RotationSpeed:  s.rotation.Speed(),
		})
		if acts.ToggleMode {
			s.ToggleMode()
		}
		if acts.ResetCamera {
			s.orbit.Reset()
		}
		if acts.TogglePause {
			s.paused = !s.paused
		}
	}
	rl.EndDrawing()
}

func (s *Scene) raylibCamera() rl.Camera3D {
	x, y, z := s.orbit.Position()
	return rl.Camera3D{
		Position:   rl.NewVector3(x, y, z),
		Target:     rl.NewVector3(s.orbit.TargetX, s.orbit.TargetY, s.orbit.TargetZ),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       float32(s.cfg.Camera.Fovy),
		Projection: rl.CameraPerspective,
	}
}

// Unload stops the tracker, flushes telemetry, and frees GPU resources.
func (s *Scene) Unload() {
	if s.trackerCancel != nil {
		s.trackerCancel()
		<-s.trackerDone
	}
	if s.output != nil {
		if err := s.output.Close(); err != nil {
			slog.Warn("closing telemetry output", "error", err)
		}
	}
	if s.ornamentR != nil {
		s.ornamentR.Unload()
	}
}
