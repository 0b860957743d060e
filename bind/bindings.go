package bind

import (
	"cmp"
	"slices"
)

// Binding is one active mapping in bind-file terms
// Input is empty for wheel commands
type Binding struct {
	Command string
	Input   string
	Action  Action
}

// Line renders the binding as a bind-file command using actionName
func (bd Binding) Line(actionName string) string {
	if bd.Input == "" {
		return bd.Command + " " + actionName
	}
	return bd.Command + " " + bd.Input + " " + actionName
}

// commandOrder fixes the order commands are listed in
var commandOrder = map[string]int{
	"scancode":   0,
	"mbutton":    1,
	"wheelup":    2,
	"wheeldown":  3,
	"wheelleft":  4,
	"wheelright": 5,
	"cbutton":    6,
	"caxis":      7,
}

var wheelCommandNames = [numWheels]string{
	wheelLeft:  "wheelleft",
	wheelRight: "wheelright",
	wheelDown:  "wheeldown",
	wheelUp:    "wheelup",
}

// Bindings lists every active mapping, ordered by command then input name
// Keycode mappings are reported as the scancode they resolved to
func (b *Binder) Bindings() []Binding {
	out := make([]Binding, 0, len(b.scancodes)+len(b.cbuttons)+numMouseButtons+numWheels+numAxisDirections)

	for s, a := range b.scancodes {
		out = append(out, Binding{Command: "scancode", Input: s.String(), Action: a})
	}
	for i, s := range b.mbuttons {
		if s.exists {
			out = append(out, Binding{Command: "mbutton", Input: MouseButton(i + 1).String(), Action: s.action})
		}
	}
	for i, s := range b.wheels {
		if s.exists {
			out = append(out, Binding{Command: wheelCommandNames[i], Action: s.action})
		}
	}
	for btn, a := range b.cbuttons {
		out = append(out, Binding{Command: "cbutton", Input: btn.String(), Action: a})
	}
	for i, s := range b.axes {
		if s.exists {
			out = append(out, Binding{Command: "caxis", Input: AxisDirection(i).String(), Action: s.action})
		}
	}

	slices.SortFunc(out, func(x, y Binding) int {
		if c := cmp.Compare(commandOrder[x.Command], commandOrder[y.Command]); c != 0 {
			return c
		}
		return cmp.Compare(x.Input, y.Input)
	})
	return out
}
