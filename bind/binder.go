package bind

import (
	"fmt"
	"strings"
	"unicode"
)

// wheel slot positions
const (
	wheelLeft = iota
	wheelRight
	wheelDown
	wheelUp
	numWheels
)

// Binder maps raw input events to actions and tracks per-frame transitions
// A Binder is not safe for concurrent use; the owning input loop must
// serialize HandleEvent, queries and ResetInputs
type Binder struct {
	maxActions int

	actionStrings map[string]Action
	scancodes     map[Scancode]Action
	cbuttons      map[ControllerButton]Action
	mbuttons      [numMouseButtons]slot
	wheels        [numWheels]slot
	axes          [numAxisDirections]slot

	pressed  actionSet
	released actionSet

	thresholdHigh uint8
	thresholdLow  uint8
	stickState    uint8
	triggerState  [2]bool

	resolver KeyResolver
	onError  ErrorCallback
	err      *Error
}

// Option configures a Binder at construction
type Option func(*Binder)

// WithMaxActions sets the action limit, clamped to [1, MaxActionsLimit]
func WithMaxActions(n int) Option {
	return func(b *Binder) {
		switch {
		case n < 1:
			n = 1
		case n > MaxActionsLimit:
			n = MaxActionsLimit
		}
		b.maxActions = n
	}
}

// WithErrorCallback registers the error observer
func WithErrorCallback(cb ErrorCallback) Option {
	return func(b *Binder) { b.onError = cb }
}

// WithKeyResolver sets the layout used to resolve keycodes
func WithKeyResolver(r KeyResolver) Option {
	return func(b *Binder) {
		if r != nil {
			b.resolver = r
		}
	}
}

// WithAxisThresholds sets the analog activation and release thresholds
func WithAxisThresholds(high, low uint8) Option {
	return func(b *Binder) {
		b.thresholdHigh = clampThreshold(high)
		b.thresholdLow = clampThreshold(low)
	}
}

// New creates an empty Binder
func New(opts ...Option) *Binder {
	b := &Binder{
		maxActions:    DefaultMaxActions,
		actionStrings: make(map[string]Action),
		scancodes:     make(map[Scancode]Action),
		cbuttons:      make(map[ControllerButton]Action),
		thresholdHigh: defaultThresholdHigh,
		thresholdLow:  defaultThresholdLow,
		resolver:      USLayout,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// MaxActions returns the action limit
func (b *Binder) MaxActions() int { return b.maxActions }

// SetErrorCallback replaces the error observer; nil disables it
func (b *Binder) SetErrorCallback(cb ErrorCallback) { b.onError = cb }

// SetKeyResolver replaces the keycode layout; nil restores USLayout
func (b *Binder) SetKeyResolver(r KeyResolver) {
	if r == nil {
		r = USLayout
	}
	b.resolver = r
}

// Err returns the last reported error, nil if none was ever reported
func (b *Binder) Err() *Error { return b.err }

// ErrorCode returns the code of the last reported error
func (b *Binder) ErrorCode() Code {
	if b.err == nil {
		return NoError
	}
	return b.err.Code
}

// ErrorString returns the message of the last reported error
func (b *Binder) ErrorString() string {
	if b.err == nil {
		return ""
	}
	return b.err.Error()
}

// report records err as the last error and notifies the observer
func (b *Binder) report(err *Error) *Error {
	b.err = err
	if b.onError != nil {
		b.onError(err)
	}
	return err
}

func (b *Binder) reportf(code Code, line int, format string, args ...any) *Error {
	return b.report(&Error{Code: code, Line: line, Msg: fmt.Sprintf(format, args...)})
}

func (b *Binder) validateAction(a Action) error {
	if int(a) >= b.maxActions {
		return b.reportf(BadAction, 0, "Action %d not in range 0-%d", a, b.maxActions-1)
	}
	return nil
}

func validMouseButton(btn MouseButton) bool {
	return btn >= MouseLeft && btn <= MouseX2
}

func (b *Binder) validateMouseButton(btn MouseButton) error {
	if !validMouseButton(btn) {
		return b.reportf(BadMouseButton, 0, "Mouse button %d out of range 1-%d", btn, numMouseButtons)
	}
	return nil
}

// ValidActionName reports whether name can appear as a bind-file token
func ValidActionName(name string) bool {
	return name != "" && !strings.ContainsFunc(name, unicode.IsSpace)
}

// SetActionString registers name for use as an action in bind files
// Empty names and names containing whitespace report BadActionString
func (b *Binder) SetActionString(a Action, name string) error {
	if err := b.validateAction(a); err != nil {
		return err
	}
	if !ValidActionName(name) {
		return b.reportf(BadActionString, 0, "String \"%s\" is not a valid action name", name)
	}
	b.actionStrings[name] = a
	return nil
}

// ActionString returns the lexically first name registered for a
func (b *Binder) ActionString(a Action) (string, bool) {
	found := false
	var best string
	for name, act := range b.actionStrings {
		if act == a && (!found || name < best) {
			best, found = name, true
		}
	}
	return best, found
}

// MapScancode binds a physical key, replacing any previous binding
func (b *Binder) MapScancode(s Scancode, a Action) error {
	if err := b.validateAction(a); err != nil {
		return err
	}
	b.scancodes[s] = a
	return nil
}

// UnmapScancode removes the binding of a physical key, if any
func (b *Binder) UnmapScancode(s Scancode) {
	delete(b.scancodes, s)
}

func (b *Binder) resolveKey(k Keycode) (Scancode, error) {
	s := b.resolver.ScancodeFromKey(k)
	if s == ScancodeUnknown {
		return s, b.reportf(NoScancode, 0, "Keycode %s has no matching scancode", k)
	}
	return s, nil
}

// MapKeycode binds the physical key that currently produces k
func (b *Binder) MapKeycode(k Keycode, a Action) error {
	if err := b.validateAction(a); err != nil {
		return err
	}
	s, err := b.resolveKey(k)
	if err != nil {
		return err
	}
	b.scancodes[s] = a
	return nil
}

// UnmapKeycode removes the binding of the physical key that produces k
func (b *Binder) UnmapKeycode(k Keycode) error {
	s, err := b.resolveKey(k)
	if err != nil {
		return err
	}
	delete(b.scancodes, s)
	return nil
}

// MapControllerButton binds a controller button
func (b *Binder) MapControllerButton(btn ControllerButton, a Action) error {
	if err := b.validateAction(a); err != nil {
		return err
	}
	b.cbuttons[btn] = a
	return nil
}

// UnmapControllerButton removes a controller button binding, if any
func (b *Binder) UnmapControllerButton(btn ControllerButton) {
	delete(b.cbuttons, btn)
}

// MapControllerAxis binds one stick direction or trigger
func (b *Binder) MapControllerAxis(d AxisDirection, a Action) error {
	if err := b.validateAction(a); err != nil {
		return err
	}
	if d >= numAxisDirections {
		return b.reportf(BadAxis, 0, "Axis direction %d out of range 0-%d", d, numAxisDirections-1)
	}
	b.axes[d].bind(a)
	return nil
}

// UnmapControllerAxis removes a stick direction or trigger binding
func (b *Binder) UnmapControllerAxis(d AxisDirection) error {
	if d >= numAxisDirections {
		return b.reportf(BadAxis, 0, "Axis direction %d out of range 0-%d", d, numAxisDirections-1)
	}
	b.axes[d].unbind()
	return nil
}

// MapMouseButton binds mouse button 1-5
func (b *Binder) MapMouseButton(btn MouseButton, a Action) error {
	if err := b.validateAction(a); err != nil {
		return err
	}
	if err := b.validateMouseButton(btn); err != nil {
		return err
	}
	b.mbuttons[btn-1].bind(a)
	return nil
}

// UnmapMouseButton removes the binding of mouse button 1-5
func (b *Binder) UnmapMouseButton(btn MouseButton) error {
	if err := b.validateMouseButton(btn); err != nil {
		return err
	}
	b.mbuttons[btn-1].unbind()
	return nil
}

func (b *Binder) mapWheel(i int, a Action) error {
	if err := b.validateAction(a); err != nil {
		return err
	}
	b.wheels[i].bind(a)
	return nil
}

// MapMouseWheelUp binds upward wheel motion to a
func (b *Binder) MapMouseWheelUp(a Action) error { return b.mapWheel(wheelUp, a) }

// MapMouseWheelDown binds downward wheel motion to a
func (b *Binder) MapMouseWheelDown(a Action) error { return b.mapWheel(wheelDown, a) }

// MapMouseWheelLeft binds leftward wheel motion to a
func (b *Binder) MapMouseWheelLeft(a Action) error { return b.mapWheel(wheelLeft, a) }

// MapMouseWheelRight binds rightward wheel motion to a
func (b *Binder) MapMouseWheelRight(a Action) error { return b.mapWheel(wheelRight, a) }

// UnmapMouseWheelUp removes the upward wheel binding
func (b *Binder) UnmapMouseWheelUp() { b.wheels[wheelUp].unbind() }

// UnmapMouseWheelDown removes the downward wheel binding
func (b *Binder) UnmapMouseWheelDown() { b.wheels[wheelDown].unbind() }

// UnmapMouseWheelLeft removes the leftward wheel binding
func (b *Binder) UnmapMouseWheelLeft() { b.wheels[wheelLeft].unbind() }

// UnmapMouseWheelRight removes the rightward wheel binding
func (b *Binder) UnmapMouseWheelRight() { b.wheels[wheelRight].unbind() }

// UnmapAll removes every binding
// Action strings, transition bits and analog state are kept
func (b *Binder) UnmapAll() {
	clear(b.scancodes)
	clear(b.cbuttons)
	b.mbuttons = [numMouseButtons]slot{}
	b.wheels = [numWheels]slot{}
	b.axes = [numAxisDirections]slot{}
}

// SetAxisThresholdLow sets the release threshold, clamped to 100
func (b *Binder) SetAxisThresholdLow(v uint8) { b.thresholdLow = clampThreshold(v) }

// SetAxisThresholdHigh sets the activation threshold, clamped to 100
func (b *Binder) SetAxisThresholdHigh(v uint8) { b.thresholdHigh = clampThreshold(v) }

// AxisThresholdLow returns the release threshold, 0-100
func (b *Binder) AxisThresholdLow() uint8 { return b.thresholdLow }

// AxisThresholdHigh returns the activation threshold, 0-100
func (b *Binder) AxisThresholdHigh() uint8 { return b.thresholdHigh }

// Pressed reports whether a was pressed since the last ResetInputs
func (b *Binder) Pressed(a Action) bool {
	if b.validateAction(a) != nil {
		return false
	}
	return b.pressed.has(a)
}

// Released reports whether a was released since the last ResetInputs
func (b *Binder) Released(a Action) bool {
	if b.validateAction(a) != nil {
		return false
	}
	return b.released.has(a)
}

// ResetInputs clears pressed and released flags; call once per frame
// after all queries
func (b *Binder) ResetInputs() {
	b.pressed.clear()
	b.released.clear()
}

// HandleEvent applies one raw input event
func (b *Binder) HandleEvent(ev Event) {
	switch ev.Kind {
	case EventKeyDown:
		if !ev.Repeat {
			b.handleKey(ev.Scancode, true)
		}
	case EventKeyUp:
		b.handleKey(ev.Scancode, false)
	case EventMouseButtonDown, EventMouseButtonUp:
		b.handleMouseButton(ev)
	case EventMouseWheel:
		b.handleWheel(ev)
	case EventControllerButtonDown:
		b.handleControllerButton(ev.ControllerButton, true)
	case EventControllerButtonUp:
		b.handleControllerButton(ev.ControllerButton, false)
	case EventControllerAxis:
		b.handleAxis(ev)
	}
}

func (b *Binder) handleKey(s Scancode, down bool) {
	a, ok := b.scancodes[s]
	if !ok {
		return
	}
	b.setDigital(a, down)
}

func (b *Binder) handleControllerButton(btn ControllerButton, down bool) {
	a, ok := b.cbuttons[btn]
	if !ok {
		return
	}
	b.setDigital(a, down)
}

func (b *Binder) setDigital(a Action, down bool) {
	if down {
		b.pressed.set(a)
	} else {
		b.released.set(a)
	}
}

func (b *Binder) handleMouseButton(ev Event) {
	if !validMouseButton(ev.MouseButton) {
		return
	}
	s := &b.mbuttons[ev.MouseButton-1]
	if ev.Kind == EventMouseButtonDown {
		b.press(s)
	} else {
		b.release(s)
	}
}

// handleWheel treats each nonzero wheel component as an instantaneous tick
func (b *Binder) handleWheel(ev Event) {
	if ev.WheelX != 0 {
		right := ev.WheelX > 0
		if ev.Flipped {
			right = !right
		}
		if right {
			b.tick(&b.wheels[wheelRight])
		} else {
			b.tick(&b.wheels[wheelLeft])
		}
	}
	if ev.WheelY != 0 {
		up := ev.WheelY > 0
		if ev.Flipped {
			up = !up
		}
		if up {
			b.tick(&b.wheels[wheelUp])
		} else {
			b.tick(&b.wheels[wheelDown])
		}
	}
}

func (b *Binder) press(s *slot) {
	if s.exists {
		b.pressed.set(s.action)
	}
}

func (b *Binder) release(s *slot) {
	if s.exists {
		b.released.set(s.action)
	}
}

func (b *Binder) tick(s *slot) {
	b.press(s)
	b.release(s)
}
