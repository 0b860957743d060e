package bind

// AxisDirection is one bindable half of a stick axis, or a trigger
type AxisDirection uint8

const (
	LeftXPos AxisDirection = iota
	LeftXNeg
	LeftYPos
	LeftYNeg
	RightXPos
	RightXNeg
	RightYPos
	RightYNeg
	LeftTrigger
	RightTrigger
)

const numAxisDirections = 10

const (
	// axisScale reduces a raw ±32767 axis value to roughly ±100
	axisScale = 327

	defaultThresholdHigh = 66
	defaultThresholdLow  = 33
	maxThreshold         = 100
)

func positiveDirection(a ControllerAxis) AxisDirection { return AxisDirection(a) * 2 }

func negativeDirection(a ControllerAxis) AxisDirection { return AxisDirection(a)*2 + 1 }

// edge is the transition an analog sample produced
type edge uint8

const (
	edgeNone edge = iota
	edgePress
	edgeRelease
)

// crossing applies the hysteresis rule to one tracked direction
// Activates above high, deactivates below low, otherwise holds
func crossing(active bool, magnitude int, high, low uint8) (bool, edge) {
	switch {
	case magnitude > int(high) && !active:
		return true, edgePress
	case magnitude < int(low) && active:
		return false, edgeRelease
	}
	return active, edgeNone
}

func clampThreshold(v uint8) uint8 {
	if v > maxThreshold {
		return maxThreshold
	}
	return v
}

// handleAxis routes a controller axis sample to stick or trigger tracking
func (b *Binder) handleAxis(ev Event) {
	switch ev.Axis {
	case AxisTriggerLeft, AxisTriggerRight:
		b.handleTrigger(ev.Axis, int(ev.Value))
	case AxisLeftX, AxisLeftY, AxisRightX, AxisRightY:
		b.handleStick(ev.Axis, int(ev.Value))
	}
}

// handleStick tracks both directions of a stick axis
// stickState keeps negative directions in the low nibble and positive in
// the high nibble, one bit per axis
func (b *Binder) handleStick(axis ControllerAxis, value int) {
	negMask := uint8(1) << axis
	posMask := negMask << 4
	pos := &b.axes[positiveDirection(axis)]
	neg := &b.axes[negativeDirection(axis)]

	switch {
	case value == 0:
		// Recentered: force both directions off
		if b.stickState&negMask != 0 {
			b.stickState &^= negMask
			b.release(neg)
		}
		if b.stickState&posMask != 0 {
			b.stickState &^= posMask
			b.release(pos)
		}
	case value > 0:
		b.stepStick(posMask, pos, value/axisScale)
	default:
		b.stepStick(negMask, neg, -value/axisScale)
	}
}

func (b *Binder) stepStick(mask uint8, s *slot, magnitude int) {
	active, e := crossing(b.stickState&mask != 0, magnitude, b.thresholdHigh, b.thresholdLow)
	if active {
		b.stickState |= mask
	} else {
		b.stickState &^= mask
	}
	b.fire(s, e)
}

// handleTrigger tracks a single-direction trigger axis
func (b *Binder) handleTrigger(axis ControllerAxis, value int) {
	i := axis - AxisTriggerLeft
	s := &b.axes[LeftTrigger+AxisDirection(i)]
	var e edge
	b.triggerState[i], e = crossing(b.triggerState[i], value/axisScale, b.thresholdHigh, b.thresholdLow)
	b.fire(s, e)
}

func (b *Binder) fire(s *slot, e edge) {
	switch e {
	case edgePress:
		b.press(s)
	case edgeRelease:
		b.release(s)
	}
}
