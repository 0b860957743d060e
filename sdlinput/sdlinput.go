// Package sdlinput feeds SDL2 events into a bind.Binder
package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/lixenwraith/sib/bind"
)

// Translate converts an SDL event into a binder event
// Returns false for events the binder does not consume
func Translate(event sdl.Event) (bind.Event, bool) {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		ev := bind.Event{
			Kind:     bind.EventKeyUp,
			Scancode: bind.Scancode(e.Keysym.Scancode),
			Repeat:   e.Repeat != 0,
		}
		if e.State == sdl.PRESSED {
			ev.Kind = bind.EventKeyDown
		}
		return ev, true

	case *sdl.MouseButtonEvent:
		ev := bind.Event{
			Kind:        bind.EventMouseButtonUp,
			MouseButton: bind.MouseButton(e.Button),
		}
		if e.State == sdl.PRESSED {
			ev.Kind = bind.EventMouseButtonDown
		}
		return ev, true

	case *sdl.MouseWheelEvent:
		return bind.Event{
			Kind:    bind.EventMouseWheel,
			WheelX:  e.X,
			WheelY:  e.Y,
			Flipped: e.Direction == uint32(sdl.MOUSEWHEEL_FLIPPED),
		}, true

	case *sdl.ControllerButtonEvent:
		ev := bind.Event{
			Kind:             bind.EventControllerButtonUp,
			ControllerButton: bind.ControllerButton(e.Button),
		}
		if e.State == sdl.PRESSED {
			ev.Kind = bind.EventControllerButtonDown
		}
		return ev, true

	case *sdl.ControllerAxisEvent:
		return bind.Event{
			Kind:  bind.EventControllerAxis,
			Axis:  bind.ControllerAxis(e.Axis),
			Value: e.Value,
		}, true
	}
	return bind.Event{}, false
}

// HandleEvent translates and applies one SDL event
func HandleEvent(b *bind.Binder, event sdl.Event) {
	if ev, ok := Translate(event); ok {
		b.HandleEvent(ev)
	}
}

// Layout resolves keycodes against the keyboard layout SDL reports
// Requires SDL video to be initialized
type Layout struct{}

// ScancodeFromKey returns the scancode SDL maps k to, ScancodeUnknown if none
func (Layout) ScancodeFromKey(k bind.Keycode) bind.Scancode {
	s := sdl.GetScancodeFromKey(sdl.Keycode(k))
	if s >= bind.NumScancodes {
		return bind.ScancodeUnknown
	}
	return bind.Scancode(s)
}
