package bind

import (
	"errors"
	"strings"
	"testing"
)

const (
	actJump Action = iota
	actFire
	actZoom
)

// TestPressRelease verifies key transitions reach the mapped action
func TestPressRelease(t *testing.T) {
	b := New()
	if err := b.MapScancode(ScancodeSpace, actJump); err != nil {
		t.Fatalf("MapScancode: %v", err)
	}

	b.HandleEvent(KeyDown(ScancodeSpace))
	if !b.Pressed(actJump) {
		t.Error("Expected jump pressed after key down")
	}
	if b.Released(actJump) {
		t.Error("Expected jump not released after key down")
	}

	b.HandleEvent(KeyUp(ScancodeSpace))
	if !b.Released(actJump) {
		t.Error("Expected jump released after key up")
	}

	b.ResetInputs()
	if b.Pressed(actJump) || b.Released(actJump) {
		t.Error("Expected no transitions after ResetInputs")
	}
}

// TestUnmappedInputIgnored verifies events without a binding do nothing
func TestUnmappedInputIgnored(t *testing.T) {
	b := New()
	b.HandleEvent(KeyDown(ScancodeA))
	b.HandleEvent(MouseDown(MouseLeft))
	b.HandleEvent(ControllerDown(ButtonA))
	b.HandleEvent(Wheel(0, 1))

	for a := Action(0); int(a) < b.MaxActions(); a++ {
		if b.Pressed(a) {
			t.Errorf("Expected action %d not pressed", a)
		}
	}
	if b.ErrorCode() != NoError {
		t.Errorf("Expected no error, got %v", b.ErrorCode())
	}
}

// TestActionOutOfRange verifies bad actions are reported and never mapped
func TestActionOutOfRange(t *testing.T) {
	var seen []*Error
	b := New(WithMaxActions(8), WithErrorCallback(func(err *Error) { seen = append(seen, err) }))

	err := b.MapScancode(ScancodeA, 8)
	if !errors.Is(err, ErrBadAction) {
		t.Fatalf("Expected ErrBadAction, got %v", err)
	}
	if len(b.Bindings()) != 0 {
		t.Errorf("Expected no bindings, got %v", b.Bindings())
	}

	if b.Pressed(8) {
		t.Error("Expected Pressed(8) false")
	}
	if b.Released(200) {
		t.Error("Expected Released(200) false")
	}
	if len(seen) != 3 {
		t.Fatalf("Expected 3 callback calls, got %d", len(seen))
	}
	if want := "Action 8 not in range 0-7"; seen[0].Error() != want {
		t.Errorf("Expected %q, got %q", want, seen[0].Error())
	}
	if b.ErrorCode() != BadAction {
		t.Errorf("Expected last code BadAction, got %v", b.ErrorCode())
	}
}

// TestWithMaxActionsClamp verifies the action limit stays in range
func TestWithMaxActionsClamp(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 1},
		{-4, 1},
		{16, 16},
		{1000, MaxActionsLimit},
	}
	for _, tt := range tests {
		if got := New(WithMaxActions(tt.in)).MaxActions(); got != tt.want {
			t.Errorf("WithMaxActions(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if got := New().MaxActions(); got != DefaultMaxActions {
		t.Errorf("Expected default %d, got %d", DefaultMaxActions, got)
	}
}

// TestFullActionRange verifies the highest action id is usable
func TestFullActionRange(t *testing.T) {
	b := New(WithMaxActions(MaxActionsLimit))
	if err := b.MapScancode(ScancodeZ, 255); err != nil {
		t.Fatalf("MapScancode: %v", err)
	}
	b.HandleEvent(KeyDown(ScancodeZ))
	if !b.Pressed(255) {
		t.Error("Expected action 255 pressed")
	}
	if b.Pressed(254) {
		t.Error("Expected action 254 not pressed")
	}
}

// TestResetKeepsMappings verifies ResetInputs only clears transitions
func TestResetKeepsMappings(t *testing.T) {
	b := New()
	b.MapScancode(ScancodeW, actJump)
	b.ResetInputs()

	b.HandleEvent(KeyDown(ScancodeW))
	if !b.Pressed(actJump) {
		t.Error("Expected mapping to survive ResetInputs")
	}
}

// TestRemapReplaces verifies a key holds a single action
func TestRemapReplaces(t *testing.T) {
	b := New()
	b.MapScancode(ScancodeE, actJump)
	b.MapScancode(ScancodeE, actFire)

	b.HandleEvent(KeyDown(ScancodeE))
	if b.Pressed(actJump) {
		t.Error("Expected old action not to fire")
	}
	if !b.Pressed(actFire) {
		t.Error("Expected new action to fire")
	}
}

// TestManyInputsOneAction verifies several inputs can share an action
func TestManyInputsOneAction(t *testing.T) {
	b := New()
	b.MapScancode(ScancodeSpace, actJump)
	b.MapControllerButton(ButtonA, actJump)

	b.HandleEvent(ControllerDown(ButtonA))
	if !b.Pressed(actJump) {
		t.Error("Expected controller button to press jump")
	}
	b.ResetInputs()
	b.HandleEvent(KeyUp(ScancodeSpace))
	if !b.Released(actJump) {
		t.Error("Expected key to release jump")
	}
}

// TestKeyRepeatIgnored verifies auto-repeat is not a new press
func TestKeyRepeatIgnored(t *testing.T) {
	b := New()
	b.MapScancode(ScancodeS, actFire)

	ev := KeyDown(ScancodeS)
	ev.Repeat = true
	b.HandleEvent(ev)
	if b.Pressed(actFire) {
		t.Error("Expected repeat event ignored")
	}
}

// TestUnmap verifies each unmap call removes its binding
func TestUnmap(t *testing.T) {
	b := New()
	b.MapScancode(ScancodeA, actJump)
	b.MapMouseButton(MouseRight, actFire)
	b.MapControllerButton(ButtonB, actFire)
	b.MapControllerAxis(LeftXPos, actZoom)
	b.MapMouseWheelUp(actZoom)

	b.UnmapScancode(ScancodeA)
	if err := b.UnmapMouseButton(MouseRight); err != nil {
		t.Fatalf("UnmapMouseButton: %v", err)
	}
	b.UnmapControllerButton(ButtonB)
	if err := b.UnmapControllerAxis(LeftXPos); err != nil {
		t.Fatalf("UnmapControllerAxis: %v", err)
	}
	b.UnmapMouseWheelUp()

	if got := b.Bindings(); len(got) != 0 {
		t.Errorf("Expected no bindings, got %v", got)
	}

	b.HandleEvent(KeyDown(ScancodeA))
	b.HandleEvent(MouseDown(MouseRight))
	b.HandleEvent(ControllerDown(ButtonB))
	b.HandleEvent(AxisMotion(AxisLeftX, 32767))
	b.HandleEvent(Wheel(0, 1))
	for _, a := range []Action{actJump, actFire, actZoom} {
		if b.Pressed(a) {
			t.Errorf("Expected action %d not pressed after unmap", a)
		}
	}
}

// TestUnmapAll verifies every table is emptied but names are kept
func TestUnmapAll(t *testing.T) {
	b := New()
	b.SetActionString(actJump, "jump")
	b.MapScancode(ScancodeA, actJump)
	b.MapMouseButton(MouseLeft, actJump)
	b.MapMouseWheelDown(actJump)
	b.MapControllerAxis(RightTrigger, actJump)

	b.UnmapAll()
	if got := b.Bindings(); len(got) != 0 {
		t.Errorf("Expected no bindings, got %v", got)
	}
	if name, ok := b.ActionString(actJump); !ok || name != "jump" {
		t.Errorf("Expected action string kept, got %q %v", name, ok)
	}
}

// TestMouseButtons verifies press and release of mapped mouse buttons
func TestMouseButtons(t *testing.T) {
	b := New()
	if err := b.MapMouseButton(MouseX2, actFire); err != nil {
		t.Fatalf("MapMouseButton: %v", err)
	}

	b.HandleEvent(MouseDown(MouseX2))
	b.HandleEvent(MouseUp(MouseX2))
	if !b.Pressed(actFire) || !b.Released(actFire) {
		t.Error("Expected both transitions for mouse X2")
	}
}

// TestMouseButtonOutOfRange verifies buttons outside 1-5 are rejected
func TestMouseButtonOutOfRange(t *testing.T) {
	b := New()
	for _, btn := range []MouseButton{0, 6, 255} {
		err := b.MapMouseButton(btn, actFire)
		if !errors.Is(err, ErrBadMouseButton) {
			t.Errorf("MapMouseButton(%d): expected ErrBadMouseButton, got %v", btn, err)
		}
		if err := b.UnmapMouseButton(btn); !errors.Is(err, ErrBadMouseButton) {
			t.Errorf("UnmapMouseButton(%d): expected ErrBadMouseButton, got %v", btn, err)
		}
	}
	if want := "Mouse button 255 out of range 1-5"; b.ErrorString() != want {
		t.Errorf("Expected %q, got %q", want, b.ErrorString())
	}

	// Events for invalid buttons are dropped silently
	b.HandleEvent(MouseDown(0))
	b.HandleEvent(MouseDown(9))
}

// TestWheel verifies each direction ticks press and release together
func TestWheel(t *testing.T) {
	const (
		up Action = iota
		down
		left
		right
	)
	tests := []struct {
		name    string
		x, y    int32
		flipped bool
		want    Action
	}{
		{"up", 0, 1, false, up},
		{"down", 0, -3, false, down},
		{"right", 2, 0, false, right},
		{"left", -1, 0, false, left},
		{"flipped up", 0, 1, true, down},
		{"flipped left", -1, 0, true, right},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			b.MapMouseWheelUp(up)
			b.MapMouseWheelDown(down)
			b.MapMouseWheelLeft(left)
			b.MapMouseWheelRight(right)

			ev := Wheel(tt.x, tt.y)
			ev.Flipped = tt.flipped
			b.HandleEvent(ev)

			for a := up; a <= right; a++ {
				fired := a == tt.want
				if b.Pressed(a) != fired || b.Released(a) != fired {
					t.Errorf("action %d: pressed=%v released=%v, want both %v",
						a, b.Pressed(a), b.Released(a), fired)
				}
			}
		})
	}
}

// TestWheelDiagonal verifies both components fire in one event
func TestWheelDiagonal(t *testing.T) {
	b := New()
	b.MapMouseWheelUp(actJump)
	b.MapMouseWheelRight(actFire)

	b.HandleEvent(Wheel(1, 1))
	if !b.Pressed(actJump) || !b.Pressed(actFire) {
		t.Error("Expected both wheel directions pressed")
	}
}

// TestKeycodeMapping verifies keycodes bind through the layout
func TestKeycodeMapping(t *testing.T) {
	b := New()
	if err := b.MapKeycode('q', actFire); err != nil {
		t.Fatalf("MapKeycode: %v", err)
	}
	b.HandleEvent(KeyDown(ScancodeQ))
	if !b.Pressed(actFire) {
		t.Error("Expected 'q' keycode to map to Q scancode")
	}

	if err := b.UnmapKeycode('q'); err != nil {
		t.Fatalf("UnmapKeycode: %v", err)
	}
	if len(b.Bindings()) != 0 {
		t.Error("Expected keycode unmap to clear the scancode binding")
	}
}

// TestKeycodeNoScancode verifies unresolvable keycodes are reported
func TestKeycodeNoScancode(t *testing.T) {
	b := New()
	err := b.MapKeycode('!', actFire)
	if !errors.Is(err, ErrNoScancode) {
		t.Fatalf("Expected ErrNoScancode, got %v", err)
	}
	if want := "Keycode EXCLAIM has no matching scancode"; err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
}

// TestKeyResolver verifies a custom layout is consulted
func TestKeyResolver(t *testing.T) {
	azerty := KeyResolverFunc(func(k Keycode) Scancode {
		if k == 'a' {
			return ScancodeQ
		}
		return USLayout.ScancodeFromKey(k)
	})
	b := New(WithKeyResolver(azerty))
	b.MapKeycode('a', actJump)

	b.HandleEvent(KeyDown(ScancodeQ))
	if !b.Pressed(actJump) {
		t.Error("Expected 'a' to resolve to Q scancode")
	}

	b.SetKeyResolver(nil)
	b.MapKeycode('a', actFire)
	b.HandleEvent(KeyDown(ScancodeA))
	if !b.Pressed(actFire) {
		t.Error("Expected nil resolver to restore US layout")
	}
}

// TestActionString verifies name registration
func TestActionString(t *testing.T) {
	b := New(WithMaxActions(4))
	if err := b.SetActionString(2, "zoom"); err != nil {
		t.Fatalf("SetActionString: %v", err)
	}
	b.SetActionString(2, "magnify")

	if name, ok := b.ActionString(2); !ok || name != "magnify" {
		t.Errorf("Expected first sorted name magnify, got %q %v", name, ok)
	}
	if _, ok := b.ActionString(3); ok {
		t.Error("Expected no name for action 3")
	}
	if err := b.SetActionString(4, "bad"); !errors.Is(err, ErrBadAction) {
		t.Errorf("Expected ErrBadAction, got %v", err)
	}
}

// TestActionStringRejectsUnusableNames verifies names a bind file could
// never match are refused
func TestActionStringRejectsUnusableNames(t *testing.T) {
	b := New()
	var calls int
	b.SetErrorCallback(func(*Error) { calls++ })

	for _, name := range []string{"", "two words", "tab\tname", "trail\n"} {
		if err := b.SetActionString(actJump, name); !errors.Is(err, ErrBadActionString) {
			t.Errorf("SetActionString(%q): expected ErrBadActionString, got %v", name, err)
		}
	}
	if calls != 4 {
		t.Errorf("Expected 4 callback calls, got %d", calls)
	}
	if _, ok := b.ActionString(actJump); ok {
		t.Error("Expected no name registered")
	}

	// A line with no action token must still fail
	if err := b.Read(strings.NewReader("scancode A\n"), "test"); !errors.Is(err, ErrBadActionString) {
		t.Errorf("Expected missing action to fail, got %v", err)
	}
}

// TestErrorStateStartsClear verifies a new Binder has no error
func TestErrorStateStartsClear(t *testing.T) {
	b := New()
	if b.Err() != nil || b.ErrorCode() != NoError || b.ErrorString() != "" {
		t.Errorf("Expected clear error state, got %v %q", b.ErrorCode(), b.ErrorString())
	}
}
