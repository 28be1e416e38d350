package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/engine/camera"
	"github.com/Faultbox/meshview/internal/engine/input"
	"github.com/Faultbox/meshview/internal/logger"
	"github.com/Faultbox/meshview/pkg/math"
)

// objectEditRate is how fast held keys rotate or scale the selected object,
// in radians (or scale factor) per second.
const objectEditRate = 1.5

var whiteText = color.RGBA{R: 235, G: 235, B: 235, A: 255}

// step advances one frame: poll input, apply the per-frame input snapshot,
// drain pending mesh reloads, render, overlay, present.
func (a *App) step(dt float32) error {
	if a.input.Update() {
		a.running = false
		return nil
	}

	for _, ev := range a.input.Events() {
		a.handleEvent(ev)
	}
	if !a.running {
		return nil
	}

	a.applyInputSnapshot(dt)
	a.drainReloads()

	width, height := a.window.Size()
	if width != a.fb.Width() || height != a.fb.Height() {
		a.fb.Resize(width, height)
	}

	a.lastStats = a.renderer.Frame(a.fb, a.scene, a.camera, a.opts)
	a.drawHUD()

	if err := a.window.Present(a.fb.RGBA()); err != nil {
		return fmt.Errorf("presenting frame: %w", err)
	}

	a.fpsCounter++
	if time.Since(a.fpsTimer) >= time.Second {
		a.fps = a.fpsCounter
		a.fpsCounter = 0
		a.fpsTimer = time.Now()
	}

	return nil
}

// handleEvent dispatches edge-triggered events: toggles, selection, and
// scene operations.
func (a *App) handleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventQuit:
		a.running = false

	case input.EventClick:
		a.pickAt(ev.X, ev.Y)

	case input.EventDropFile:
		if _, err := a.loadMeshFile(ev.File); err != nil {
			logger.Error("dropped mesh failed", zap.String("path", ev.File), zap.Error(err))
		}

	case input.EventKeyDown:
		switch ev.Key {
		case sdl.SCANCODE_ESCAPE:
			a.running = false
		case sdl.SCANCODE_1:
			a.opts.Wireframe = !a.opts.Wireframe
		case sdl.SCANCODE_2:
			a.opts.Normals = !a.opts.Normals
		case sdl.SCANCODE_3:
			a.opts.Bounds = !a.opts.Bounds
		case sdl.SCANCODE_4:
			a.opts.Specular = !a.opts.Specular
		case sdl.SCANCODE_TAB:
			a.scene.CycleSelection()
		case sdl.SCANCODE_O:
			a.openMeshDialog()
		case sdl.SCANCODE_E:
			a.exportSelectedDialog()
		case sdl.SCANCODE_X, sdl.SCANCODE_DELETE:
			a.scene.Remove(a.scene.Selected)
		case sdl.SCANCODE_C:
			a.scene.Clear()
		case sdl.SCANCODE_R:
			a.scene.ResetDefaultPoses()
		case sdl.SCANCODE_F12:
			a.captureScreenshot()
		}
	}
}

// applyInputSnapshot feeds the held-key and drag state into the camera and
// the selected object's transform, once per frame.
func (a *App) applyInputSnapshot(dt float32) {
	a.camera.HandleMovement(camera.Movement{
		Forward: a.input.Axis(sdl.SCANCODE_S, sdl.SCANCODE_W),
		Right:   a.input.Axis(sdl.SCANCODE_A, sdl.SCANCODE_D),
		Up:      a.input.Axis(sdl.SCANCODE_LCTRL, sdl.SCANCODE_SPACE),
	}, dt)
	a.camera.HandleDrag(a.input.DragDelta())

	obj := a.scene.SelectedObject()
	if obj == nil {
		return
	}

	rotY := a.input.Axis(sdl.SCANCODE_LEFT, sdl.SCANCODE_RIGHT)
	rotX := a.input.Axis(sdl.SCANCODE_DOWN, sdl.SCANCODE_UP)
	if rotY != 0 || rotX != 0 {
		obj.Rotation = obj.Rotation.Add(math.Vec3{
			X: rotX * objectEditRate * dt,
			Y: rotY * objectEditRate * dt,
		})
	}

	if grow := a.input.Axis(sdl.SCANCODE_MINUS, sdl.SCANCODE_EQUALS); grow != 0 {
		factor := 1 + grow*objectEditRate*dt
		obj.Scale = obj.Scale.Scale(factor)
	}
}

// drainReloads applies mesh file changes detected by the watcher. Events
// arrive on the watcher goroutine and are marshaled here, onto the render
// thread, before any scene state is touched.
func (a *App) drainReloads() {
	if a.watcher == nil {
		return
	}
	for _, path := range a.watcher.drain() {
		m, err := readMeshFile(path)
		if err != nil {
			logger.Warn("reload failed", zap.String("path", path), zap.Error(err))
			continue
		}
		n := a.scene.ReplaceMeshBySource(path, m)
		logger.Info("mesh reloaded",
			zap.String("path", path),
			zap.Int("objects", n),
			zap.Int("triangles", m.TriangleCount()),
		)
	}
}

func (a *App) captureScreenshot() {
	name, err := a.screenshots.CaptureFromImage(a.fb.RGBA())
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}

func (a *App) drawHUD() {
	img := a.fb.RGBA()
	white := whiteText
	lines := []string{
		fmt.Sprintf("fps %d  objects %d  drawn %d  culled %d",
			a.fps, len(a.scene.Objects), a.lastStats.Drawn, a.lastStats.Culled),
		fmt.Sprintf("[1]wire %s  [2]normals %s  [3]bounds %s  [4]spec %s",
			onOff(a.opts.Wireframe), onOff(a.opts.Normals),
			onOff(a.opts.Bounds), onOff(a.opts.Specular)),
	}
	if obj := a.scene.SelectedObject(); obj != nil {
		lines = append(lines, fmt.Sprintf("selected: %s (%d tris)",
			obj.Name, obj.Mesh.TriangleCount()))
	}
	a.hud.DrawLines(img, 4, 14, lines, white)

	if len(a.scene.Objects) == 0 {
		a.hud.DrawCentered(img, a.fb.Height()/2, "no meshes loaded - press O to open a file", white)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
