package bind

// EventKind distinguishes raw input event categories
type EventKind uint8

const (
	EventNone EventKind = iota
	EventKeyDown
	EventKeyUp
	EventMouseButtonDown
	EventMouseButtonUp
	EventMouseWheel
	EventControllerButtonDown
	EventControllerButtonUp
	EventControllerAxis
)

// MouseButton is a mouse button index, 1-5
type MouseButton uint8

const (
	MouseLeft MouseButton = iota + 1
	MouseMiddle
	MouseRight
	MouseX1
	MouseX2
)

const numMouseButtons = 5

// ControllerButton identifies a game controller button
type ControllerButton uint8

const (
	ButtonA ControllerButton = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonBack
	ButtonGuide
	ButtonStart
	ButtonLeftStick
	ButtonRightStick
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
	ButtonMisc1
	ButtonPaddle1
	ButtonPaddle2
	ButtonPaddle3
	ButtonPaddle4
	ButtonTouchpad
)

// ControllerAxis identifies a game controller analog axis
type ControllerAxis uint8

const (
	AxisLeftX ControllerAxis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisTriggerLeft
	AxisTriggerRight
)

const numStickAxes = 4

// Event is one raw input event
// Only the fields relevant to Kind are meaningful
type Event struct {
	Kind EventKind

	// Key events
	Scancode Scancode
	Repeat   bool // OS auto-repeat, not a transition

	// Mouse button events
	MouseButton MouseButton

	// Wheel events; positive Y is away from the user, positive X is right
	WheelX  int32
	WheelY  int32
	Flipped bool // platform reports inverted ("natural") scrolling

	// Controller events
	ControllerButton ControllerButton
	Axis             ControllerAxis
	Value            int16
}

// KeyDown returns a key press event
func KeyDown(s Scancode) Event { return Event{Kind: EventKeyDown, Scancode: s} }

// KeyUp returns a key release event
func KeyUp(s Scancode) Event { return Event{Kind: EventKeyUp, Scancode: s} }

// MouseDown returns a mouse button press event
func MouseDown(b MouseButton) Event { return Event{Kind: EventMouseButtonDown, MouseButton: b} }

// MouseUp returns a mouse button release event
func MouseUp(b MouseButton) Event { return Event{Kind: EventMouseButtonUp, MouseButton: b} }

// Wheel returns an unflipped wheel motion event
func Wheel(x, y int32) Event { return Event{Kind: EventMouseWheel, WheelX: x, WheelY: y} }

// ControllerDown returns a controller button press event
func ControllerDown(b ControllerButton) Event {
	return Event{Kind: EventControllerButtonDown, ControllerButton: b}
}

// ControllerUp returns a controller button release event
func ControllerUp(b ControllerButton) Event {
	return Event{Kind: EventControllerButtonUp, ControllerButton: b}
}

// AxisMotion returns a controller axis event
func AxisMotion(a ControllerAxis, value int16) Event {
	return Event{Kind: EventControllerAxis, Axis: a, Value: value}
}
