// Package input handles SDL2 input events and per-frame input snapshots.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/meshview/pkg/math"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventDropFile
	EventClick
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	File   string
	X      int
	Y      int
}

// clickSlop is the total mouse travel in pixels below which a press and
// release still count as a click rather than a drag.
const clickSlop = 4

// Input polls SDL events and tracks held keys and mouse-look drags.
// The renderer consumes its state once per frame as a snapshot.
type Input struct {
	events    []Event
	held      map[sdl.Scancode]bool
	dragging  bool
	dragDX    float32
	dragDY    float32
	pressMove float32
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events. Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				if e.Repeat == 0 {
					i.events = append(i.events, Event{
						Type: EventKeyDown,
						Key:  e.Keysym.Scancode,
					})
				}
				i.held[e.Keysym.Scancode] = true
			} else if e.Type == sdl.KEYUP {
				i.events = append(i.events, Event{
					Type: EventKeyUp,
					Key:  e.Keysym.Scancode,
				})
				delete(i.held, e.Keysym.Scancode)
			}

		case *sdl.MouseButtonEvent:
			if e.Button == sdl.BUTTON_LEFT {
				if e.Type == sdl.MOUSEBUTTONDOWN {
					i.dragging = true
					i.pressMove = 0
				} else {
					i.dragging = false
					if i.pressMove < clickSlop {
						i.events = append(i.events, Event{
							Type: EventClick,
							X:    int(e.X),
							Y:    int(e.Y),
						})
					}
				}
			}

		case *sdl.MouseMotionEvent:
			if i.dragging {
				i.dragDX += float32(e.XRel)
				i.dragDY += float32(e.YRel)
				i.pressMove += absRel(e.XRel) + absRel(e.YRel)
			}

		case *sdl.DropEvent:
			if e.Type == sdl.DROPFILE {
				i.events = append(i.events, Event{
					Type: EventDropFile,
					File: e.File,
				})
			}
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyHeld reports whether a key is currently held down.
func (i *Input) IsKeyHeld(scancode sdl.Scancode) bool {
	return i.held[scancode]
}

// DragDelta returns the mouse-look delta accumulated since the last call
// and resets it.
func (i *Input) DragDelta() math.Vec2 {
	d := math.Vec2{X: i.dragDX, Y: i.dragDY}
	i.dragDX = 0
	i.dragDY = 0
	return d
}

func absRel(v int32) float32 {
	if v < 0 {
		return float32(-v)
	}
	return float32(v)
}

// Axis combines a negative and a positive held key into [-1, 1].
func (i *Input) Axis(negative, positive sdl.Scancode) float32 {
	var v float32
	if i.held[negative] {
		v--
	}
	if i.held[positive] {
		v++
	}
	return v
}
