package config

const (
	WindowWidth  = 1024
	WindowHeight = 768
	TPS          = 60

	// Audio tap
	VisualRingSize  = 8192
	LevelWindow     = 2048
	SmoothingFactor = 0.6
	// TempoGain scales how far loudness pushes the sweep past its base step.
	TempoGain = 4.0

	// Camera
	DefaultScale = 60.0
	OrbitSpeed   = 0.03
	ZoomFactor   = 1.1
)

// Pattern field ranges.
const (
	MinN, MaxN             = 1, 100
	MinM, MaxM             = 2, 100
	MinSpeed, MaxSpeed     = 1, 100
	MinSegments            = 3
	MaxSegments            = 360
	MinRadius      float32 = 0.001
)

// Config describes one times-table pattern.
type Config struct {
	N                int     `toml:"n"`
	M                float32 `toml:"m"`
	Speed            float32 `toml:"speed"`
	CircleSegments   int     `toml:"circle_segments"`
	ThreeDimensional bool    `toml:"three_dimensional"`
	Radius           float32 `toml:"radius"`
	// ColorMode colors by chord length when set and by angle otherwise.
	ColorMode bool `toml:"color_mode"`
	Animate   bool `toml:"animate"`
	// Smooth places partners at their fractional position on the circle.
	Smooth bool `toml:"smooth"`
}

func Default() Config {
	return Config{
		N:                20,
		M:                3,
		Speed:            2,
		CircleSegments:   36,
		ThreeDimensional: true,
		Radius:           5,
	}
}

// Sanitize clamps every field into its valid range.
func (c Config) Sanitize() Config {
	c.N = clamp(c.N, MinN, MaxN)
	c.M = clamp(c.M, MinM, MaxM)
	c.Speed = clamp(c.Speed, MinSpeed, MaxSpeed)
	c.CircleSegments = clamp(c.CircleSegments, MinSegments, MaxSegments)
	if !(c.Radius >= MinRadius) {
		c.Radius = MinRadius
	}
	return c
}

func clamp[T int | float32](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
