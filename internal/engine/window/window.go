// Package window handles SDL2 window creation and framebuffer presentation.
package window

import (
	"fmt"
	"image"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/meshview/internal/logger"
	"go.uber.org/zap"
)

func init() {
	// SDL calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title  string
	Width  int
	Height int
	VSync  bool
}

// Window wraps an SDL2 window with a streaming texture that the CPU
// framebuffer is copied into each frame. No GL context is created.
type Window struct {
	config      Config
	sdlWindow   *sdl.Window
	sdlRenderer *sdl.Renderer
	texture     *sdl.Texture
	texWidth    int
	texHeight   int
}

// New creates a window and its presentation texture.
func New(cfg Config) (*Window, error) {
	w := &Window{
		config: cfg,
	}

	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	w.sdlRenderer, err = sdl.CreateRenderer(w.sdlWindow, -1, flags)
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Size returns the current drawable size in device pixels.
func (w *Window) Size() (int, int) {
	width, height, err := w.sdlRenderer.GetOutputSize()
	if err != nil {
		return w.config.Width, w.config.Height
	}
	return int(width), int(height)
}

// Present copies the rendered RGBA image to the screen, recreating the
// streaming texture if the surface size changed.
func (w *Window) Present(img *image.RGBA) error {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if w.texture == nil || width != w.texWidth || height != w.texHeight {
		if w.texture != nil {
			w.texture.Destroy()
		}
		var err error
		// ABGR8888 matches RGBA byte order on little-endian machines.
		w.texture, err = w.sdlRenderer.CreateTexture(
			sdl.PIXELFORMAT_ABGR8888,
			sdl.TEXTUREACCESS_STREAMING,
			int32(width),
			int32(height),
		)
		if err != nil {
			return fmt.Errorf("creating texture: %w", err)
		}
		w.texWidth = width
		w.texHeight = height
	}

	if err := w.texture.Update(nil, img.Pix, img.Stride); err != nil {
		return fmt.Errorf("updating texture: %w", err)
	}
	if err := w.sdlRenderer.Clear(); err != nil {
		return fmt.Errorf("clearing renderer: %w", err)
	}
	if err := w.sdlRenderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("copying texture: %w", err)
	}
	w.sdlRenderer.Present()

	return nil
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	logger.Info("closing window")

	if w.texture != nil {
		w.texture.Destroy()
	}
	if w.sdlRenderer != nil {
		w.sdlRenderer.Destroy()
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}
