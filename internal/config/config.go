// Package config handles application configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Camera     CameraConfig     `yaml:"camera"`
	Simulation SimulationConfig `yaml:"simulation"`
	Grid       GridConfig       `yaml:"grid"`
	Compute    ComputeConfig    `yaml:"compute"`
	Debug      DebugConfig      `yaml:"debug"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// CameraConfig holds the initial orbit and its limits.
type CameraConfig struct {
	Radius     float32 `yaml:"radius"`
	MinRadius  float32 `yaml:"min_radius"`
	MaxRadius  float32 `yaml:"max_radius"`
	Azimuth    float32 `yaml:"azimuth"`
	Elevation  float32 `yaml:"elevation"`
	OrbitSpeed float32 `yaml:"orbit_speed"` // radians per pixel of drag
	ZoomSpeed  float32 `yaml:"zoom_speed"`  // meters per scroll unit
}

// BodyConfig describes one massive body at simulation start.
type BodyConfig struct {
	Name     string     `yaml:"name"`
	Position [3]float64 `yaml:"position"`
	Velocity [3]float64 `yaml:"velocity"`
	Mass     float64    `yaml:"mass"`
	Radius   float64    `yaml:"radius"` // 0 means use the Schwarzschild radius
	Color    [4]float32 `yaml:"color"`
	Pinned   bool       `yaml:"pinned"`
}

// SimulationConfig holds the initial body list.
type SimulationConfig struct {
	GravityEnabled bool         `yaml:"gravity_enabled"`
	Central        BodyConfig   `yaml:"central"`
	Bodies         []BodyConfig `yaml:"bodies"`
}

// GridConfig holds the curvature grid lattice.
type GridConfig struct {
	Size    int     `yaml:"size"`
	Spacing float64 `yaml:"spacing"`
	Offset  float64 `yaml:"offset"`
}

// ResolutionConfig is a compute image size in pixels.
type ResolutionConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ComputeConfig holds ray-marching kernel settings.
type ComputeConfig struct {
	KernelPath    string           `yaml:"kernel_path"`
	Moving        ResolutionConfig `yaml:"moving"`
	Static        ResolutionConfig `yaml:"static"`
	FOVDegrees    float32          `yaml:"fov_degrees"`
	NumRays       float32          `yaml:"num_rays"`
	DiskThickness float32          `yaml:"disk_thickness"`
}

// DebugConfig holds debug tooling settings.
type DebugConfig struct {
	ScreenshotDir    string `yaml:"screenshot_dir"`
	ScreenshotFormat string `yaml:"screenshot_format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Solar mass in kilograms used by the default stars.
const solarMass = 1.98892e30

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			Radius:     1.38e11,
			MinRadius:  1e10,
			MaxRadius:  1e12,
			Azimuth:    -2.35,
			Elevation:  1.5,
			OrbitSpeed: 0.01,
			ZoomSpeed:  25e9,
		},
		Simulation: SimulationConfig{
			GravityEnabled: false,
			// Sagittarius A*
			Central: BodyConfig{
				Name:   "sgr-a",
				Mass:   8.54e36,
				Color:  [4]float32{0, 0, 0, 1},
				Pinned: true,
			},
			Bodies: []BodyConfig{
				{
					Name:     "yellow",
					Position: [3]float64{4e11, 0, 0},
					Mass:     solarMass,
					Radius:   4e10,
					Color:    [4]float32{1, 1, 0, 1},
				},
				{
					Name:     "red",
					Position: [3]float64{0, 0, 4e11},
					Mass:     solarMass,
					Radius:   4e10,
					Color:    [4]float32{1, 0, 0, 1},
				},
			},
		},
		Grid: GridConfig{
			Size:    25,
			Spacing: 1e10,
			Offset:  3e10,
		},
		Compute: ComputeConfig{
			KernelPath:    "shaders/geodesic.comp",
			Moving:        ResolutionConfig{Width: 200, Height: 150},
			Static:        ResolutionConfig{Width: 400, Height: 300},
			FOVDegrees:    60,
			NumRays:       2,
			DiskThickness: 1e9,
		},
		Debug: DebugConfig{
			ScreenshotDir:    "screenshots",
			ScreenshotFormat: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
