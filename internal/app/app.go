// Package app implements the viewer application: the fixed-rate frame loop,
// input dispatch, and scene operations around the rendering core.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/assets"
	"github.com/Faultbox/meshview/internal/config"
	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/debug"
	"github.com/Faultbox/meshview/internal/engine/framebuffer"
	"github.com/Faultbox/meshview/internal/engine/hud"
	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/internal/engine/renderer"
	"github.com/Faultbox/meshview/internal/engine/scene"
	"github.com/Faultbox/meshview/internal/engine/window"
	"github.com/Faultbox/meshview/internal/logger"
)

// tickRate is the nominal frame rate of the viewer.
const tickRate = 60

// App is the viewer application instance.
type App struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	input    *input.Input
	fb       *framebuffer.Framebuffer
	renderer *renderer.Renderer
	camera   *camera.Camera
	scene    *scene.Scene
	hud      *hud.HUD

	opts        renderer.Options
	screenshots *debug.ScreenshotCapture
	watcher     *watcher

	loadedCount int // drives the color palette for loaded meshes
	lastStats   renderer.FrameStats
	fps         int
	fpsCounter  int
	fpsTimer    time.Time
}

// New creates the application: window, default scene, camera, and watcher.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:  "Meshview",
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
		VSync:  cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	a.input = input.New()
	a.fb = framebuffer.New(cfg.Graphics.Width, cfg.Graphics.Height)
	a.renderer = renderer.New()
	a.hud = hud.New()
	a.screenshots = debug.NewScreenshotCapture(cfg.Viewer.ScreenshotDir, "meshview")

	a.camera = camera.New()
	a.camera.MoveSpeed = cfg.Viewer.MoveSpeed
	a.camera.DragSensitivity = cfg.Viewer.DragSensitivity

	defaults, errs := assets.Defaults()
	for _, err := range errs {
		logger.Error("default mesh unavailable", zap.Error(err))
	}
	a.scene = scene.New(defaults)

	a.opts = renderer.Options{
		Wireframe: cfg.Viewer.Wireframe,
		Normals:   cfg.Viewer.Normals,
		Bounds:    cfg.Viewer.Bounds,
		Specular:  cfg.Viewer.Specular,
	}

	if cfg.Viewer.WatchFiles {
		a.watcher, err = newWatcher()
		if err != nil {
			logger.Warn("file watching disabled", zap.Error(err))
		}
	}

	logger.Info("application initialized",
		zap.Int("default_objects", len(a.scene.Objects)),
	)
	return a, nil
}

// LoadStartupMeshes loads mesh files given on the command line.
func (a *App) LoadStartupMeshes(paths []string) {
	for _, path := range paths {
		if _, err := a.loadMeshFile(path); err != nil {
			logger.Error("startup mesh failed", zap.String("path", path), zap.Error(err))
		}
	}
}

// Run drives the frame loop at the nominal tick rate until quit. Each tick
// performs one complete input-update-render-present step; the timer re-arms
// the next step so input handling and rendering interleave without a busy
// loop.
func (a *App) Run() error {
	a.running = true
	a.fpsTimer = time.Now()

	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	lastTime := time.Now()

	logger.Info("starting frame loop")
	for a.running {
		<-ticker.C

		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if err := a.step(dt); err != nil {
			return fmt.Errorf("frame step: %w", err)
		}
	}

	return nil
}

// Close cleans up application resources and persists the config.
func (a *App) Close() {
	logger.Info("closing application")

	if a.watcher != nil {
		a.watcher.Close()
	}

	if w, h := a.window.Size(); w > 0 && h > 0 {
		a.cfg.Graphics.Width = w
		a.cfg.Graphics.Height = h
	}
	a.cfg.Viewer.Wireframe = a.opts.Wireframe
	a.cfg.Viewer.Normals = a.opts.Normals
	a.cfg.Viewer.Bounds = a.opts.Bounds
	a.cfg.Viewer.Specular = a.opts.Specular
	if err := a.cfg.Save(); err != nil {
		logger.Warn("saving config", zap.Error(err))
	}

	a.window.Close()
}
