package config

import (
	"image/color"
	"time"

	"github.com/tanema/gween/ease"
	"gonum.org/v1/gonum/spatial/r3"
)

// Range is an inclusive [Min, Max] interval sampled uniformly by the spawner.
type Range struct {
	Min float64
	Max float64
}

// Lerp maps t in [0,1] onto the range.
func (r Range) Lerp(t float64) float64 {
	return r.Min + (r.Max-r.Min)*t
}

// FieldConfig parameterizes one particle field. Every field runs through the same
// spawner and simulator; the values here select the behavior.
type FieldConfig struct {
	Name   string
	Policy SpawnPolicy

	// Population
	InitialCount  int           // particles created when the field is built
	TargetCount   int           // periodic spawner refills up to this count
	SpawnInterval time.Duration // periodic spawner tick
	BurstSize     int           // particles appended per scroll event
	MaxParticles  int           // hard cap, oldest evicted first (0 = uncapped)

	// Spawn distribution. Origin ranges are fractions of the surface size.
	OriginX      Range
	OriginY      Range
	Radius       Range
	InitialAlpha Range
	VelocityX    Range // shooting stars sample each component independently
	VelocityY    Range
	Speed        Range // burst and drift particles sample a scalar speed

	// Shooting behavior
	TriggerProbability float64 // per idle particle, per frame
	DecayRate          float64 // alpha lost per frame while active
	TrailCap           int     // 0 disables the trail
	Margin             float64 // bounds-with-margin for the offscreen test
	RemoveOnExit       bool    // remove instead of reverting to idle
	ParkX, ParkY       float64 // where idle shooting stars wait

	// Ambient behavior
	BlinkSpeed      float64 // alpha += uniform(-1,1) * BlinkSpeed
	AlphaFloor      float64
	AlphaCeil       float64
	Replace         bool    // closed population: decayed particles are replaced in the same step
	ReplaceBelow    float64 // alpha at or below which a particle is replaced
	ReplaceAlpha    float64 // lowest starting alpha of a replacement
	DriftFactor     float64 // horizontal drift = speed * DriftFactor
	RemoveOffscreen bool    // drifting ambient particles leave through the bounds check

	// Appearance
	Color      color.RGBA
	HeadScale  float64 // head radius multiplier for shooting stars
	GlowBlur   float64 // glow radius at full alpha
	TrailWidth float64
}

// BackgroundConfig holds the two stops of the vertical backdrop gradient.
type BackgroundConfig struct {
	Top    color.RGBA
	Bottom color.RGBA
}

// HorizonConfig describes the static planet-curve shape painted once into an
// off-screen layer.
type HorizonConfig struct {
	HeightFrac     float64 // ellipse vertical radius as a fraction of surface height
	WidthFrac      float64 // ellipse horizontal radius as a fraction of surface width
	CenterDrop     float64 // center sits below the bottom edge by HeightFrac*H*CenterDrop
	GradientStartY float64 // fraction of surface height where the fill gradient begins
	Top            color.RGBA
	Bottom         color.RGBA
	GlowColor      color.RGBA
	GlowBlur       float64
}

// FocusConfig tunes the camera-focus easer.
type FocusConfig struct {
	Increment     float64        // progress added per step
	InitialTarget [3]float64     // published look-at before any selection
	Easing        ease.TweenFunc // nil keeps the interpolation linear
}

// Mission is one timeline section.
type Mission struct {
	Year  int
	Name  string
	Badge string
}

// TimelineConfig holds the scroll-field page settings.
type TimelineConfig struct {
	Missions        []Mission
	WheelStep       float64 // pixels scrolled per wheel notch
	IndicatorX      float64
	IndicatorRadius float64
	IndicatorGap    float64
	Highlight       color.RGBA
	Idle            color.RGBA
	LabelColor      color.RGBA
}

// PlanetInfo is the descriptive record delivered with a planet selection.
type PlanetInfo struct {
	Name        string
	Density     string
	Temperature string
	Gravity     string
}

// PlanetConfig is one body of the planets viewer.
type PlanetConfig struct {
	Position [3]float64
	Size     float64
	Speed    float64 // orbital angular speed in radians per second (0 = static)
	Color    color.RGBA
	Info     PlanetInfo
}

// Vec returns the initial position as a vector.
func (p PlanetConfig) Vec() r3.Vec {
	return r3.Vec{X: p.Position[0], Y: p.Position[1], Z: p.Position[2]}
}

// OrbitViewConfig tunes the flat stand-in for the 3D camera controller.
type OrbitViewConfig struct {
	Scale         float64 // pixels per world unit
	Rings         []float64
	RingColor     color.RGBA
	HoverScale    float64
	HoverDuration float32 // seconds
	PickCell      int
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var ShootingStars FieldConfig
var StreakStars FieldConfig
var Twinkle FieldConfig
var DimTwinkle FieldConfig
var DriftStars FieldConfig
var ScrollStars FieldConfig
var Background BackgroundConfig
var Horizon HorizonConfig
var Focus FocusConfig
var Timeline TimelineConfig
var Planets []PlanetConfig
var OrbitView OrbitViewConfig
var Debug DebugConfig

// DebugConfig contains command-line overrides
type DebugConfig struct {
	StartPage Page
	Seed      uint64
	Overlay   bool // draws field counts and pick boxes
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	DarkBlue     = color.RGBA{R: 0x0d, G: 0x1b, B: 0x2a, A: 255}
	Gray400      = color.RGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 255}
	SkyBlue      = color.RGBA{R: 0x00, G: 0xaa, B: 0xff, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 200}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
	}

	// Home page shooting stars: rare, slow, long trail
	ShootingStars = FieldConfig{
		Name:               "shooting",
		Policy:             SpawnProbabilistic,
		InitialCount:       12,
		OriginX:            Range{0, 1},
		OriginY:            Range{0, 0.5},
		Radius:             Range{1, 3.5},
		InitialAlpha:       Range{1, 1},
		VelocityX:          Range{-1, 1},
		VelocityY:          Range{-1, 1},
		TriggerProbability: 0.0009,
		DecayRate:          0.001,
		TrailCap:           190,
		Margin:             5000,
		ParkX:              -100,
		ParkY:              -100,
		AlphaFloor:         0,
		AlphaCeil:          1,
		Color:              White,
		HeadScale:          1.5,
		GlowBlur:           15,
		TrailWidth:         1.5,
	}

	// Planets backdrop streaks: frequent, fast, short trail
	StreakStars = FieldConfig{
		Name:               "streak",
		Policy:             SpawnProbabilistic,
		InitialCount:       4,
		OriginX:            Range{0, 0.8},
		OriginY:            Range{0, 0.4},
		Radius:             Range{0.8, 1.6},
		InitialAlpha:       Range{1, 1},
		VelocityX:          Range{2, 5},
		VelocityY:          Range{1, 3},
		TriggerProbability: 0.005,
		DecayRate:          0.01,
		TrailCap:           24,
		Margin:             50,
		ParkX:              -100,
		ParkY:              -100,
		AlphaFloor:         0,
		AlphaCeil:          1,
		Color:              White,
		HeadScale:          1.2,
		GlowBlur:           8,
		TrailWidth:         1,
	}

	// Home page twinkle: closed population in the upper sky
	Twinkle = FieldConfig{
		Name:          "twinkle",
		Policy:        SpawnPeriodic,
		InitialCount:  20,
		TargetCount:   20,
		SpawnInterval: 300 * time.Millisecond,
		OriginX:       Range{0, 1},
		OriginY:       Range{0, 0.3},
		Radius:        Range{0.5, 2},
		InitialAlpha:  Range{0, 1},
		BlinkSpeed:    0.0075,
		AlphaFloor:    0,
		AlphaCeil:     1,
		Replace:       true,
		ReplaceBelow:  0.01,
		ReplaceAlpha:  0,
		Color:         White,
	}

	// Planets backdrop twinkle never fades out completely
	DimTwinkle = FieldConfig{
		Name:          "dim-twinkle",
		Policy:        SpawnPeriodic,
		InitialCount:  80,
		TargetCount:   80,
		SpawnInterval: 300 * time.Millisecond,
		OriginX:       Range{0, 1},
		OriginY:       Range{0, 1},
		Radius:        Range{0.4, 1.4},
		InitialAlpha:  Range{0.2, 1},
		BlinkSpeed:    0.01,
		AlphaFloor:    0.2,
		AlphaCeil:     1,
		Replace:       true,
		ReplaceBelow:  0.01,
		ReplaceAlpha:  0.2,
		Color:         White,
	}

	// Timeline ambient layer: slow rightward drift, refilled on a timer
	DriftStars = FieldConfig{
		Name:            "drift",
		Policy:          SpawnPeriodic,
		TargetCount:     150,
		SpawnInterval:   300 * time.Millisecond,
		OriginX:         Range{0, 1},
		OriginY:         Range{0, 1},
		Radius:          Range{0.5, 1.5},
		InitialAlpha:    Range{1, 1},
		Speed:           Range{0.2, 0.7},
		DriftFactor:     0.2,
		RemoveOffscreen: true,
		AlphaFloor:      0,
		AlphaCeil:       1,
		Color:           White,
	}

	// Timeline scroll bursts: up-right streaks removed at the edges
	ScrollStars = FieldConfig{
		Name:         "scroll",
		Policy:       SpawnBurst,
		BurstSize:    5,
		MaxParticles: 600,
		OriginX:      Range{0, 1},
		OriginY:      Range{0, 1},
		Radius:       Range{1, 3},
		InitialAlpha: Range{1, 1},
		Speed:        Range{3, 8},
		Margin:       0,
		RemoveOnExit: true,
		AlphaFloor:   0,
		AlphaCeil:    1,
		Color:        White,
	}

	Background = BackgroundConfig{
		Top:    DarkBlue,
		Bottom: Black,
	}

	Horizon = HorizonConfig{
		HeightFrac:     0.4,
		WidthFrac:      1.8,
		CenterDrop:     0.5,
		GradientStartY: 0.5,
		Top:            color.RGBA{R: 0x0a, G: 0x2a, B: 0x43, A: 255},
		Bottom:         color.RGBA{R: 0x04, G: 0x1d, B: 0x2e, A: 255},
		GlowColor:      SkyBlue,
		GlowBlur:       40,
	}

	Focus = FocusConfig{
		Increment:     0.02, // ~50 steps to converge
		InitialTarget: [3]float64{4, 0, 0},
	}

	Timeline = TimelineConfig{
		Missions: []Mission{
			{Year: 1957, Name: "Sputnik 1", Badge: "SP"},
			{Year: 1969, Name: "Apollo 11", Badge: "A11"},
			{Year: 1998, Name: "ISS Assembly", Badge: "ISS"},
			{Year: 2015, Name: "New Horizons", Badge: "NH"},
			{Year: 2021, Name: "James Webb Space Telescope", Badge: "JW"},
		},
		WheelStep:       120,
		IndicatorX:      64,
		IndicatorRadius: 8,
		IndicatorGap:    64,
		Highlight:       White,
		Idle:            Gray400,
		LabelColor:      White,
	}

	Planets = []PlanetConfig{
		{
			Position: [3]float64{0, 0, 0}, Size: 3.5, Speed: 0,
			Color: color.RGBA{R: 255, G: 200, B: 60, A: 255},
			Info:  PlanetInfo{Name: "Sun", Density: "1.41 g/cm³", Temperature: "5,778 K", Gravity: "274 m/s²"},
		},
		{
			Position: [3]float64{6, 0, 0}, Size: 1.5, Speed: 0.25,
			Color: color.RGBA{R: 70, G: 130, B: 220, A: 255},
			Info:  PlanetInfo{Name: "Earth", Density: "5.51 g/cm³", Temperature: "15°C", Gravity: "9.8 m/s²"},
		},
		{
			Position: [3]float64{10, 0, 0}, Size: 1.2, Speed: 0.19,
			Color: color.RGBA{R: 200, G: 90, B: 50, A: 255},
			Info:  PlanetInfo{Name: "Mars", Density: "3.93 g/cm³", Temperature: "-63°C", Gravity: "3.7 m/s²"},
		},
		{
			Position: [3]float64{15, 0, 0}, Size: 2, Speed: 0.13,
			Color: color.RGBA{R: 210, G: 170, B: 130, A: 255},
			Info:  PlanetInfo{Name: "Jupiter", Density: "1.33 g/cm³", Temperature: "-145°C", Gravity: "24.8 m/s²"},
		},
		{
			Position: [3]float64{20, 0, 0}, Size: 1.8, Speed: 0.096,
			Color: color.RGBA{R: 230, G: 210, B: 150, A: 255},
			Info:  PlanetInfo{Name: "Saturn", Density: "0.687 g/cm³", Temperature: "-178°C", Gravity: "10.4 m/s²"},
		},
		{
			Position: [3]float64{25, 0, 0}, Size: 1.6, Speed: 0.068,
			Color: color.RGBA{R: 150, G: 220, B: 230, A: 255},
			Info:  PlanetInfo{Name: "Uranus", Density: "1.27 g/cm³", Temperature: "-224°C", Gravity: "8.7 m/s²"},
		},
		{
			Position: [3]float64{30, 0, 0}, Size: 1.6, Speed: 0.054,
			Color: color.RGBA{R: 70, G: 90, B: 220, A: 255},
			Info:  PlanetInfo{Name: "Neptune", Density: "1.64 g/cm³", Temperature: "-214°C", Gravity: "11.2 m/s²"},
		},
	}

	OrbitView = OrbitViewConfig{
		Scale:         12,
		Rings:         []float64{6, 10, 15, 20, 25, 30},
		RingColor:     color.RGBA{R: 255, G: 255, B: 255, A: 38}, // ~0.15 alpha
		HoverScale:    1.1,
		HoverDuration: 0.15,
		PickCell:      32,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		StartPage: PageHome,
		Seed:      0,
	}
}
