package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagWidth     = flag.Int("width", 0, "Window width")
	flagHeight    = flag.Int("height", 0, "Window height")
	flagNoVSync   = flag.Bool("no-vsync", false, "Disable vertical sync")
	flagWireframe = flag.Bool("wireframe", false, "Start with the wireframe overlay enabled")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// MeshArgs returns the positional arguments: mesh files to load at startup.
func MeshArgs() []string {
	return flag.Args()
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagNoVSync {
		cfg.Graphics.VSync = false
	}
	if *flagWireframe {
		cfg.Viewer.Wireframe = true
	}
}
