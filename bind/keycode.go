package bind

// Keycode identifies a logical key as produced by the active layout
// Printable keys use their character value; the rest are the scancode
// with keycodeScancodeMask set, matching SDL keycodes
type Keycode int32

const keycodeScancodeMask Keycode = 1 << 30

// KeycodeFromScancode returns the keycode for a non-printable scancode
func KeycodeFromScancode(s Scancode) Keycode {
	return Keycode(s) | keycodeScancodeMask
}

// KeyResolver maps a logical key to the physical key that produces it
// Returns ScancodeUnknown when the current layout has no such key
type KeyResolver interface {
	ScancodeFromKey(k Keycode) Scancode
}

// KeyResolverFunc adapts a plain function to KeyResolver
type KeyResolverFunc func(k Keycode) Scancode

// ScancodeFromKey calls f(k)
func (f KeyResolverFunc) ScancodeFromKey(k Keycode) Scancode {
	return f(k)
}

// USLayout resolves keycodes against an unshifted US QWERTY layout
// Shifted symbols such as '!' have no key of their own and do not resolve
var USLayout KeyResolver = usLayout{}

type usLayout struct{}

func (usLayout) ScancodeFromKey(k Keycode) Scancode {
	if k&keycodeScancodeMask != 0 {
		s := Scancode(k &^ keycodeScancodeMask)
		if s == ScancodeUnknown || s >= NumScancodes {
			return ScancodeUnknown
		}
		return s
	}
	if s, ok := usPrintable[k]; ok {
		return s
	}
	return ScancodeUnknown
}

// usPrintable maps unshifted US characters to their key
var usPrintable = func() map[Keycode]Scancode {
	m := map[Keycode]Scancode{
		'\r':   ScancodeReturn,
		'\x1b': ScancodeEscape,
		'\b':   ScancodeBackspace,
		'\t':   ScancodeTab,
		' ':    ScancodeSpace,
		'-':    ScancodeMinus,
		'=':    ScancodeEquals,
		'[':    ScancodeLeftBracket,
		']':    ScancodeRightBracket,
		'\\':   ScancodeBackslash,
		';':    ScancodeSemicolon,
		'\'':   ScancodeApostrophe,
		'`':    ScancodeGrave,
		',':    ScancodeComma,
		'.':    ScancodePeriod,
		'/':    ScancodeSlash,
		'\x7f': ScancodeDelete,
		'0':    Scancode0,
	}
	for i := 0; i < 26; i++ {
		m[Keycode('a'+i)] = ScancodeA + Scancode(i)
	}
	for i := 0; i < 9; i++ {
		m[Keycode('1'+i)] = Scancode1 + Scancode(i)
	}
	return m
}()
