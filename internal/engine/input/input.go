// Package input turns SDL2 events into viewer events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
	DeltaX float32 // relative motion or wheel steps
	DeltaY float32
	Button uint8
}

// Input handles all input processing.
type Input struct {
	events  []Event
	buttons map[uint8]bool
	keys    map[sdl.Scancode]bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events:  make([]Event, 0, 16),
		buttons: make(map[uint8]bool),
		keys:    make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events for this frame.
// Returns true if the window was asked to close.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			code := e.Keysym.Scancode
			if e.Type == sdl.KEYDOWN {
				i.keys[code] = true
				i.events = append(i.events, Event{Type: EventKeyDown, Key: code})
			} else if e.Type == sdl.KEYUP {
				i.keys[code] = false
				i.events = append(i.events, Event{Type: EventKeyUp, Key: code})
			}

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				DeltaX: float32(e.XRel),
				DeltaY: float32(e.YRel),
			})

		case *sdl.MouseButtonEvent:
			ev := Event{MouseX: int(e.X), MouseY: int(e.Y), Button: e.Button}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				ev.Type = EventMouseDown
				i.buttons[e.Button] = true
			} else {
				ev.Type = EventMouseUp
				i.buttons[e.Button] = false
			}
			i.events = append(i.events, ev)

		case *sdl.MouseWheelEvent:
			i.events = append(i.events, Event{
				Type:   EventMouseWheel,
				DeltaX: float32(e.X),
				DeltaY: float32(e.Y),
			})
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key went down this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// IsKeyHeld reports whether a key is currently down.
func (i *Input) IsKeyHeld(scancode sdl.Scancode) bool {
	return i.keys[scancode]
}

// IsButtonHeld reports whether a mouse button is currently down.
func (i *Input) IsButtonHeld(button uint8) bool {
	return i.buttons[button]
}
