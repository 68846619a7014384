package systems

import "github.com/pthm-cable/spruce/config"

// Param constructors bridging the loaded config to the simulation
// structs. Kept here so headless tools and the scene share one mapping.

func TreeParamsFromConfig(c *config.Config) TreeParams {
	return TreeParams{
		Height:     float32(c.Tree.Height),
		BaseRadius: float32(c.Tree.BaseRadius),
		TipRadius:  float32(c.Tree.TipRadius),
		Jitter:     float32(c.Tree.Jitter),
	}
}

func ShellParamsFromConfig(c *config.Config) ShellParams {
	return ShellParams{
		BaseRadius: float32(c.Explosion.BaseRadius),
		Extent:     float32(c.Explosion.Extent),
	}
}

func SnowParamsFromConfig(c *config.Config) SnowParams {
	return SnowParams{
		Count:            c.Snow.Count,
		AreaRadius:       float32(c.Snow.AreaRadius),
		SpawnHeight:      float32(c.Snow.SpawnHeight),
		SpawnHeightSpan:  float32(c.Snow.SpawnHeightSpan),
		GroundY:          float32(c.Snow.GroundY),
		GroundJitter:     float32(c.Snow.GroundJitter),
		FallSpeedMin:     float32(c.Snow.FallSpeedMin),
		FallSpeedMax:     float32(c.Snow.FallSpeedMax),
		WobbleAmp:        float32(c.Snow.WobbleAmp),
		WobbleFreq:       float32(c.Snow.WobbleFreq),
		AccumulateRadius: float32(c.Snow.AccumulateRadius),
		RecycleChance:    float32(c.Snow.RecycleChance),
		ScatterSpeed:     float32(c.Snow.ScatterSpeed),
		TurbulenceAmp:    float32(c.Snow.TurbulenceAmp),
		TurbulenceScale:  float32(c.Snow.TurbulenceScale),
	}
}

func RibbonParamsFromConfig(c *config.Config) RibbonParams {
	return RibbonParams{
		Segments:     c.Ribbon.Segments,
		LoopLength:   float32(c.Ribbon.LoopLength),
		LoopWidth:    float32(c.Ribbon.LoopWidth),
		PuffDepth:    float32(c.Ribbon.PuffDepth),
		BreathAmp:    float32(c.Ribbon.BreathAmp),
		BreathSpeed:  float32(c.Ribbon.BreathSpeed),
		TailLength:   float32(c.Ribbon.TailLength),
		TailDrop:     float32(c.Ribbon.TailDrop),
		FlutterAmp:   float32(c.Ribbon.FlutterAmp),
		FlutterSpeed: float32(c.Ribbon.FlutterSpeed),
		HalfWidth:    float32(c.Ribbon.HalfWidth),
	}
}

func RotationParamsFromConfig(c *config.Config) RotationParams {
	return RotationParams{
		ManualThreshold: float32(c.Rotation.ManualThreshold),
		ManualGain:      float32(c.Rotation.ManualGain),
		IdleTree:        float32(c.Rotation.IdleTree),
		IdleExploded:    float32(c.Rotation.IdleExploded),
		Lambda:          float32(c.Rotation.Lambda),
	}
}

// PaletteFromConfig converts the configured palette to render colors.
func PaletteFromConfig(c *config.Config) []Color {
	out := make([]Color, len(c.Palette))
	for i, p := range c.Palette {
		out[i] = Color{R: p.R, G: p.G, B: p.B}
	}
	return out
}
