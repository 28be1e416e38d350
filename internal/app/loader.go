package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/meshview/internal/engine/mesh"
	"github.com/Faultbox/meshview/internal/engine/scene"
	"github.com/Faultbox/meshview/internal/logger"
	"github.com/Faultbox/meshview/pkg/formats"
)

// loadPalette colors newly loaded objects in rotation.
var loadPalette = []scene.Color{
	{R: 221, G: 177, B: 88},
	{R: 134, G: 196, B: 118},
	{R: 189, G: 120, B: 196},
	{R: 120, G: 186, B: 196},
	{R: 214, G: 124, B: 110},
}

// readMeshFile reads, parses, and normalizes a mesh file.
func readMeshFile(path string) (*mesh.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading mesh: %w", err)
	}

	o := formats.ParseOBJ(data)
	if o.SkippedRecords > 0 {
		logger.Debug("malformed records skipped",
			zap.String("path", path),
			zap.Int("count", o.SkippedRecords),
		)
	}
	if len(o.Vertices) == 0 {
		return nil, fmt.Errorf("%s: no vertices parsed", path)
	}

	return mesh.Normalize(mesh.FromOBJ(o)), nil
}

// loadMeshFile loads a mesh from disk and places it in the scene at the
// origin. Returns the new object's handle.
func (a *App) loadMeshFile(path string) (uuid.UUID, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	m, err := readMeshFile(abs)
	if err != nil {
		return uuid.Nil, err
	}

	name := filepath.Base(abs)
	color := loadPalette[a.loadedCount%len(loadPalette)]
	a.loadedCount++

	obj := scene.NewObject(name, m, scene.UnitPose(), color)
	obj.SourcePath = abs
	a.scene.Add(obj)

	if a.watcher != nil {
		if err := a.watcher.Add(abs); err != nil {
			logger.Warn("cannot watch mesh file", zap.String("path", abs), zap.Error(err))
		}
	}

	logger.Info("mesh loaded",
		zap.String("name", name),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", m.TriangleCount()),
	)
	return obj.Handle, nil
}

// openMeshDialog prompts for a mesh file and loads it.
func (a *App) openMeshDialog() {
	path, err := dialog.File().Filter("OBJ mesh", "obj").Title("Open mesh").Load()
	if err != nil {
		// Cancelled dialogs land here too; nothing to do.
		return
	}
	if _, err := a.loadMeshFile(path); err != nil {
		logger.Error("mesh load failed", zap.String("path", path), zap.Error(err))
	}
}

// exportSelectedDialog writes the selected object's mesh to a file chosen
// by the user.
func (a *App) exportSelectedDialog() {
	obj := a.scene.SelectedObject()
	if obj == nil || obj.Mesh == nil {
		return
	}

	path, err := dialog.File().Filter("OBJ mesh", "obj").Title("Export mesh").Save()
	if err != nil {
		return
	}
	if filepath.Ext(path) == "" {
		path += ".obj"
	}

	data := formats.EncodeOBJ(obj.Mesh.ToOBJ())
	if err := os.WriteFile(path, data, 0644); err != nil {
		logger.Error("mesh export failed", zap.String("path", path), zap.Error(err))
		return
	}
	logger.Info("mesh exported",
		zap.String("name", obj.Name),
		zap.String("path", path),
	)
}
