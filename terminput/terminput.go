// Package terminput feeds tcell terminal events into a bind.Binder
//
// Terminals report key presses but never releases, so every key event is
// delivered as a press immediately followed by a release. Mouse releases
// are derived from the button mask of consecutive mouse events.
package terminput

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sib/bind"
)

// specialKeys maps non-rune tcell keys to physical keys
var specialKeys = map[tcell.Key]bind.Scancode{
	tcell.KeyEnter:      bind.ScancodeReturn,
	tcell.KeyTab:        bind.ScancodeTab,
	tcell.KeyBacktab:    bind.ScancodeTab,
	tcell.KeyEscape:     bind.ScancodeEscape,
	tcell.KeyBackspace:  bind.ScancodeBackspace,
	tcell.KeyBackspace2: bind.ScancodeBackspace,
	tcell.KeyDelete:     bind.ScancodeDelete,
	tcell.KeyInsert:     bind.ScancodeInsert,
	tcell.KeyHome:       bind.ScancodeHome,
	tcell.KeyEnd:        bind.ScancodeEnd,
	tcell.KeyPgUp:       bind.ScancodePageUp,
	tcell.KeyPgDn:       bind.ScancodePageDown,
	tcell.KeyUp:         bind.ScancodeUp,
	tcell.KeyDown:       bind.ScancodeDown,
	tcell.KeyLeft:       bind.ScancodeLeft,
	tcell.KeyRight:      bind.ScancodeRight,
	tcell.KeyPrint:      bind.ScancodePrintScreen,
	tcell.KeyPause:      bind.ScancodePause,
	tcell.KeyClear:      bind.ScancodeClear,
	tcell.KeyHelp:       bind.ScancodeHelp,
	tcell.KeyCancel:     bind.ScancodeCancel,
	tcell.KeyF1:         bind.ScancodeF1,
	tcell.KeyF2:         bind.ScancodeF2,
	tcell.KeyF3:         bind.ScancodeF3,
	tcell.KeyF4:         bind.ScancodeF4,
	tcell.KeyF5:         bind.ScancodeF5,
	tcell.KeyF6:         bind.ScancodeF6,
	tcell.KeyF7:         bind.ScancodeF7,
	tcell.KeyF8:         bind.ScancodeF8,
	tcell.KeyF9:         bind.ScancodeF9,
	tcell.KeyF10:        bind.ScancodeF10,
	tcell.KeyF11:        bind.ScancodeF11,
	tcell.KeyF12:        bind.ScancodeF12,
}

// shiftedRunes maps US shifted symbols to the unshifted character on the same key
var shiftedRunes = map[rune]rune{
	'!': '1', '@': '2', '#': '3', '$': '4', '%': '5',
	'^': '6', '&': '7', '*': '8', '(': '9', ')': '0',
	'_': '-', '+': '=', '{': '[', '}': ']', '|': '\\',
	':': ';', '"': '\'', '<': ',', '>': '.', '?': '/',
	'~': '`',
}

// KeyScancode returns the physical key a tcell key event most likely came from
// Returns bind.ScancodeUnknown for keys with no US layout position
func KeyScancode(ev *tcell.EventKey) bind.Scancode {
	if ev.Key() == tcell.KeyRune {
		return runeScancode(ev.Rune())
	}
	if s, ok := specialKeys[ev.Key()]; ok {
		return s
	}
	// Remaining control keys are Ctrl+letter
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		return bind.ScancodeA + bind.Scancode(ev.Key()-tcell.KeyCtrlA)
	}
	return bind.ScancodeUnknown
}

func runeScancode(r rune) bind.Scancode {
	if unshifted, ok := shiftedRunes[r]; ok {
		r = unshifted
	}
	if r < unicode.MaxASCII {
		r = unicode.ToLower(r)
	}
	return bind.USLayout.ScancodeFromKey(bind.Keycode(r))
}

// mouseButtons pairs tcell button bits with binder mouse buttons
var mouseButtons = [...]struct {
	mask tcell.ButtonMask
	btn  bind.MouseButton
}{
	{tcell.ButtonPrimary, bind.MouseLeft},
	{tcell.ButtonMiddle, bind.MouseMiddle},
	{tcell.ButtonSecondary, bind.MouseRight},
	{tcell.Button4, bind.MouseX1},
	{tcell.Button5, bind.MouseX2},
}

// Translator converts tcell events into binder events
// Tracks the mouse button mask between events; not safe for concurrent use
type Translator struct {
	buttons tcell.ButtonMask
	buf     []bind.Event
}

// NewTranslator returns a Translator with no buttons held
func NewTranslator() *Translator {
	return &Translator{buf: make([]bind.Event, 0, 8)}
}

// Translate converts one tcell event
// The returned slice is reused by the next call
func (t *Translator) Translate(ev tcell.Event) []bind.Event {
	t.buf = t.buf[:0]

	switch ev := ev.(type) {
	case *tcell.EventKey:
		s := KeyScancode(ev)
		if s == bind.ScancodeUnknown {
			return t.buf
		}
		t.buf = append(t.buf, bind.KeyDown(s), bind.KeyUp(s))

	case *tcell.EventMouse:
		mask := ev.Buttons()
		for _, mb := range mouseButtons {
			was := t.buttons&mb.mask != 0
			is := mask&mb.mask != 0
			switch {
			case is && !was:
				t.buf = append(t.buf, bind.MouseDown(mb.btn))
			case was && !is:
				t.buf = append(t.buf, bind.MouseUp(mb.btn))
			}
		}
		t.buttons = mask

		var wx, wy int32
		if mask&tcell.WheelUp != 0 {
			wy++
		}
		if mask&tcell.WheelDown != 0 {
			wy--
		}
		if mask&tcell.WheelRight != 0 {
			wx++
		}
		if mask&tcell.WheelLeft != 0 {
			wx--
		}
		if wx != 0 || wy != 0 {
			t.buf = append(t.buf, bind.Wheel(wx, wy))
		}

	case *tcell.EventFocus:
		// Focus loss drops held buttons; release them so no action sticks
		if !ev.Focused {
			for _, mb := range mouseButtons {
				if t.buttons&mb.mask != 0 {
					t.buf = append(t.buf, bind.MouseUp(mb.btn))
				}
			}
			t.buttons = 0
		}
	}
	return t.buf
}

// Feed translates ev and applies the result to b
func (t *Translator) Feed(b *bind.Binder, ev tcell.Event) {
	for _, e := range t.Translate(ev) {
		b.HandleEvent(e)
	}
}
