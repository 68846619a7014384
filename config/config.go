// Package config provides configuration loading and access for the scene.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all scene configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Tree      TreeConfig      `yaml:"tree"`
	Explosion ExplosionConfig `yaml:"explosion"`
	Snow      SnowConfig      `yaml:"snow"`
	Ribbon    RibbonConfig    `yaml:"ribbon"`
	Gifts     GiftsConfig     `yaml:"gifts"`
	Gesture   GestureConfig   `yaml:"gesture"`
	Rotation  RotationConfig  `yaml:"rotation"`
	Camera    CameraConfig    `yaml:"camera"`
	Palette   []RGB           `yaml:"palette"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// RGB is a palette entry.
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// TreeConfig holds ornament population and cone formation parameters.
type TreeConfig struct {
	Ornaments  int     `yaml:"ornaments"`   // instance population size
	Height     float64 `yaml:"height"`      // cone height
	BaseRadius float64 `yaml:"base_radius"` // cone radius at the bottom
	TipRadius  float64 `yaml:"tip_radius"`  // cone radius at the top
	Jitter     float64 `yaml:"jitter"`      // max placement jitter per axis
	Lambda     float64 `yaml:"lambda"`      // position damping rate (1/s)
	SpinSpeed  float64 `yaml:"spin_speed"`  // ornament angular velocity (rad/s)
	ScaleBase  float64 `yaml:"scale_base"`  // ornament base scale
	ScalePulse float64 `yaml:"scale_pulse"` // pulsing sine amplitude
}

// ExplosionConfig holds the scattered-shell formation parameters.
type ExplosionConfig struct {
	BaseRadius float64 `yaml:"base_radius"` // inner shell radius
	Extent     float64 `yaml:"extent"`      // random shell thickness
}

// SnowConfig holds the snowfall simulation parameters.
type SnowConfig struct {
	Count            int     `yaml:"count"`
	AreaRadius       float64 `yaml:"area_radius"`
	SpawnHeight      float64 `yaml:"spawn_height"`
	SpawnHeightSpan  float64 `yaml:"spawn_height_span"`
	GroundY          float64 `yaml:"ground_y"`
	GroundJitter     float64 `yaml:"ground_jitter"`
	FallSpeedMin     float64 `yaml:"fall_speed_min"` // units per tick at 60 Hz
	FallSpeedMax     float64 `yaml:"fall_speed_max"`
	WobbleAmp        float64 `yaml:"wobble_amp"`
	WobbleFreq       float64 `yaml:"wobble_freq"`
	AccumulateRadius float64 `yaml:"accumulate_radius"`
	RecycleChance    float64 `yaml:"recycle_chance"` // per-tick lift-off chance when landed
	ScatterSpeed     float64 `yaml:"scatter_speed"`
	TurbulenceAmp    float64 `yaml:"turbulence_amp"`
	TurbulenceScale  float64 `yaml:"turbulence_scale"`
}

// RibbonConfig holds the bow-ribbon curve parameters.
type RibbonConfig struct {
	Segments     int     `yaml:"segments"`
	LoopLength   float64 `yaml:"loop_length"`
	LoopWidth    float64 `yaml:"loop_width"`
	PuffDepth    float64 `yaml:"puff_depth"`
	BreathAmp    float64 `yaml:"breath_amp"`
	BreathSpeed  float64 `yaml:"breath_speed"`
	TailLength   float64 `yaml:"tail_length"`
	TailDrop     float64 `yaml:"tail_drop"`
	FlutterAmp   float64 `yaml:"flutter_amp"`
	FlutterSpeed float64 `yaml:"flutter_speed"`
	HalfWidth    float64 `yaml:"half_width"`
}

// GiftsConfig holds the decorative gift-box parameters.
type GiftsConfig struct {
	Count      int     `yaml:"count"`
	RingRadius float64 `yaml:"ring_radius"` // distance from the tree center
	MinSize    float64 `yaml:"min_size"`
	MaxSize    float64 `yaml:"max_size"`
	BobAmp     float64 `yaml:"bob_amp"`   // idle vertical bob amplitude
	BobSpeed   float64 `yaml:"bob_speed"` // idle bob rate (rad/s)
}

// GestureConfig holds the hand-tracking mapper parameters.
type GestureConfig struct {
	Enabled        bool    `yaml:"enabled"`
	RatioAlpha     float64 `yaml:"ratio_alpha"`
	WristAlpha     float64 `yaml:"wrist_alpha"`
	OpenThreshold  float64 `yaml:"open_threshold"`
	CloseThreshold float64 `yaml:"close_threshold"`
	DeadZone       float64 `yaml:"dead_zone"`
	Sensitivity    float64 `yaml:"sensitivity"`
}

// RotationConfig holds the camera auto-rotation controller parameters.
type RotationConfig struct {
	ManualThreshold float64 `yaml:"manual_threshold"`
	ManualGain      float64 `yaml:"manual_gain"`
	IdleTree        float64 `yaml:"idle_tree"`     // rad/s while assembled
	IdleExploded    float64 `yaml:"idle_exploded"` // rad/s while scattered
	Lambda          float64 `yaml:"lambda"`        // damping rate (1/s)
}

// CameraConfig holds the orbit camera pose.
type CameraConfig struct {
	Radius float64 `yaml:"radius"`
	Pitch  float64 `yaml:"pitch"`
	Fovy   float64 `yaml:"fovy"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds per stats window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if
// path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
