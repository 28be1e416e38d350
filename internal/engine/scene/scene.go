// Package scene holds the set of placed objects and the current selection.
package scene

import (
	"github.com/Faultbox/meshview/internal/engine/mesh"
)

// Default describes one entry of the default layout: a mesh with its
// canonical pose, attached to the object as metadata at construction time.
type Default struct {
	Name  string
	Mesh  *mesh.Mesh
	Pose  Pose
	Color Color
	Unlit bool
}

// Scene is an ordered object list plus the selected index. The selection is
// clamped into range whenever the list changes and is 0 when empty.
//
// All scene mutation happens on the render goroutine; Scene does no locking.
type Scene struct {
	Objects  []*Object
	Selected int

	defaults []Default
}

// New creates a scene populated with the default layout. The defaults are
// retained: removing the last remaining object restores them.
func New(defaults []Default) *Scene {
	return &Scene{
		Objects:  BuildDefaultLayout(defaults),
		defaults: defaults,
	}
}

// BuildDefaultLayout constructs a fresh object list from the default mesh
// set. It is a pure function: every call yields new objects, so callers can
// never alias layout state.
func BuildDefaultLayout(defaults []Default) []*Object {
	objects := make([]*Object, 0, len(defaults))
	for _, d := range defaults {
		obj := NewObject(d.Name, d.Mesh, d.Pose, d.Color)
		obj.Unlit = d.Unlit
		pose := d.Pose
		obj.DefaultPose = &pose
		objects = append(objects, obj)
	}
	return objects
}

// Add appends an object and selects it.
func (s *Scene) Add(obj *Object) {
	s.Objects = append(s.Objects, obj)
	s.Selected = len(s.Objects) - 1
}

// Remove deletes the object at index i. Removing the last remaining object
// restores the default layout. Out-of-range indices are ignored.
func (s *Scene) Remove(i int) {
	if i < 0 || i >= len(s.Objects) {
		return
	}
	s.Objects = append(s.Objects[:i], s.Objects[i+1:]...)
	if len(s.Objects) == 0 {
		s.Objects = BuildDefaultLayout(s.defaults)
	}
	s.clampSelection()
}

// Clear removes every object and restores the default layout.
func (s *Scene) Clear() {
	s.Objects = BuildDefaultLayout(s.defaults)
	s.clampSelection()
}

// ResetDefaultPoses snaps every object that carries default-pose metadata
// back to it. Objects without a default pose are left untouched.
func (s *Scene) ResetDefaultPoses() {
	for _, obj := range s.Objects {
		if obj.DefaultPose != nil {
			obj.ApplyPose(*obj.DefaultPose)
		}
	}
}

// Select sets the selected index, clamped into range.
func (s *Scene) Select(i int) {
	s.Selected = i
	s.clampSelection()
}

// CycleSelection advances the selection by one, wrapping around.
func (s *Scene) CycleSelection() {
	if len(s.Objects) == 0 {
		s.Selected = 0
		return
	}
	s.Selected = (s.Selected + 1) % len(s.Objects)
}

// SelectedObject returns the selected object, or nil for an empty scene.
func (s *Scene) SelectedObject() *Object {
	if len(s.Objects) == 0 {
		return nil
	}
	return s.Objects[s.Selected]
}

// ReplaceMeshBySource swaps a freshly loaded mesh into every object whose
// mesh came from path. Returns the number of objects updated.
func (s *Scene) ReplaceMeshBySource(path string, m *mesh.Mesh) int {
	n := 0
	for _, obj := range s.Objects {
		if obj.SourcePath == path {
			obj.Mesh = m
			n++
		}
	}
	return n
}

func (s *Scene) clampSelection() {
	if len(s.Objects) == 0 {
		s.Selected = 0
		return
	}
	if s.Selected < 0 {
		s.Selected = 0
	}
	if s.Selected >= len(s.Objects) {
		s.Selected = len(s.Objects) - 1
	}
}
