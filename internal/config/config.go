// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	VSync  bool `yaml:"vsync"`
}

// ViewerConfig holds rendering toggles and interaction settings.
type ViewerConfig struct {
	Wireframe bool `yaml:"wireframe"`
	Normals   bool `yaml:"normals"`
	Bounds    bool `yaml:"bounds"`
	Specular  bool `yaml:"specular"`

	MoveSpeed       float32 `yaml:"move_speed"`       // units per second
	DragSensitivity float32 `yaml:"drag_sensitivity"` // radians per pixel

	WatchFiles    bool   `yaml:"watch_files"` // reload meshes changed on disk
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1024,
			Height: 768,
			VSync:  true,
		},
		Viewer: ViewerConfig{
			Specular:        true,
			MoveSpeed:       2.5,
			DragSensitivity: 0.005,
			WatchFiles:      true,
			ScreenshotDir:   "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
