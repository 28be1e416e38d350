package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadMeshFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.obj")
	data := "v 0 0 0\nv 4 0 0\nv 0 4 0\nf 1 2 3\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := readMeshFile(path)
	if err != nil {
		t.Fatalf("readMeshFile: %v", err)
	}
	if m.TriangleCount() != 1 {
		t.Fatalf("TriangleCount = %d, want 1", m.TriangleCount())
	}

	// Loaded meshes come back normalized: largest extent 0.9, centered.
	ext := m.Bounds.Max.Sub(m.Bounds.Min)
	if ext.X < 0.899 || ext.X > 0.901 {
		t.Errorf("normalized X extent = %v, want 0.9", ext.X)
	}
	center := m.Bounds.Min.Add(m.Bounds.Max).Scale(0.5)
	if center.Length() > 1e-5 {
		t.Errorf("center = %+v, want origin", center)
	}
}

func TestReadMeshFileNoVertices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.obj")
	if err := os.WriteFile(path, []byte("# nothing here\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := readMeshFile(path); err == nil {
		t.Error("expected error for mesh with no vertices")
	}
}

func TestReadMeshFileMissing(t *testing.T) {
	if _, err := readMeshFile(filepath.Join(t.TempDir(), "absent.obj")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWatcherDrain(t *testing.T) {
	w := &watcher{pending: make(chan string, 16)}

	w.pending <- "a.obj"
	w.pending <- "b.obj"
	w.pending <- "a.obj"

	got := w.drain()
	if len(got) != 2 || got[0] != "a.obj" || got[1] != "b.obj" {
		t.Fatalf("drain = %v, want [a.obj b.obj]", got)
	}
	if again := w.drain(); len(again) != 0 {
		t.Errorf("second drain = %v, want empty", again)
	}
}
