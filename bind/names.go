package bind

import (
	"slices"
	"strconv"
	"strings"
)

// Name tables used by bind files. Lookups are case-sensitive.
// Built once; read-only afterwards

var scancodeNames = map[string]Scancode{
	"A": ScancodeA, "B": ScancodeB, "C": ScancodeC, "D": ScancodeD, "E": ScancodeE,
	"F": ScancodeF, "G": ScancodeG, "H": ScancodeH, "I": ScancodeI, "J": ScancodeJ,
	"K": ScancodeK, "L": ScancodeL, "M": ScancodeM, "N": ScancodeN, "O": ScancodeO,
	"P": ScancodeP, "Q": ScancodeQ, "R": ScancodeR, "S": ScancodeS, "T": ScancodeT,
	"U": ScancodeU, "V": ScancodeV, "W": ScancodeW, "X": ScancodeX, "Y": ScancodeY,
	"Z": ScancodeZ,

	"1": Scancode1, "2": Scancode2, "3": Scancode3, "4": Scancode4, "5": Scancode5,
	"6": Scancode6, "7": Scancode7, "8": Scancode8, "9": Scancode9, "0": Scancode0,

	"RETURN":       ScancodeReturn,
	"ESCAPE":       ScancodeEscape,
	"BACKSPACE":    ScancodeBackspace,
	"TAB":          ScancodeTab,
	"SPACE":        ScancodeSpace,
	"MINUS":        ScancodeMinus,
	"EQUALS":       ScancodeEquals,
	"LEFTBRACKET":  ScancodeLeftBracket,
	"RIGHTBRACKET": ScancodeRightBracket,
	"BACKSLASH":    ScancodeBackslash,
	"NONUSHASH":    ScancodeNonUSHash,
	"SEMICOLON":    ScancodeSemicolon,
	"APOSTROPHE":   ScancodeApostrophe,
	"GRAVE":        ScancodeGrave,
	"COMMA":        ScancodeComma,
	"PERIOD":       ScancodePeriod,
	"SLASH":        ScancodeSlash,
	"CAPSLOCK":     ScancodeCapsLock,

	"F1": ScancodeF1, "F2": ScancodeF2, "F3": ScancodeF3, "F4": ScancodeF4,
	"F5": ScancodeF5, "F6": ScancodeF6, "F7": ScancodeF7, "F8": ScancodeF8,
	"F9": ScancodeF9, "F10": ScancodeF10, "F11": ScancodeF11, "F12": ScancodeF12,

	"PRINTSCREEN": ScancodePrintScreen,
	"SCROLLLOCK":  ScancodeScrollLock,
	"PAUSE":       ScancodePause,
	"INSERT":      ScancodeInsert,
	"HOME":        ScancodeHome,
	"PAGEUP":      ScancodePageUp,
	"DELETE":      ScancodeDelete,
	"END":         ScancodeEnd,
	"PAGEDOWN":    ScancodePageDown,
	"RIGHT":       ScancodeRight,
	"LEFT":        ScancodeLeft,
	"DOWN":        ScancodeDown,
	"UP":          ScancodeUp,

	"NUMLOCKCLEAR": ScancodeNumLockClear,
	"KP_DIVIDE":    ScancodeKPDivide,
	"KP_MULTIPLY":  ScancodeKPMultiply,
	"KP_MINUS":     ScancodeKPMinus,
	"KP_PLUS":      ScancodeKPPlus,
	"KP_ENTER":     ScancodeKPEnter,
	"KP_1":         ScancodeKP1,
	"KP_2":         ScancodeKP2,
	"KP_3":         ScancodeKP3,
	"KP_4":         ScancodeKP4,
	"KP_5":         ScancodeKP5,
	"KP_6":         ScancodeKP6,
	"KP_7":         ScancodeKP7,
	"KP_8":         ScancodeKP8,
	"KP_9":         ScancodeKP9,
	"KP_0":         ScancodeKP0,
	"KP_PERIOD":    ScancodeKPPeriod,

	"NONUSBACKSLASH": ScancodeNonUSBackslash,
	"APPLICATION":    ScancodeApplication,
	"POWER":          ScancodePower,
	"KP_EQUALS":      ScancodeKPEquals,

	"F13": ScancodeF13, "F14": ScancodeF14, "F15": ScancodeF15, "F16": ScancodeF16,
	"F17": ScancodeF17, "F18": ScancodeF18, "F19": ScancodeF19, "F20": ScancodeF20,
	"F21": ScancodeF21, "F22": ScancodeF22, "F23": ScancodeF23, "F24": ScancodeF24,

	"EXECUTE":    ScancodeExecute,
	"HELP":       ScancodeHelp,
	"MENU":       ScancodeMenu,
	"SELECT":     ScancodeSelect,
	"STOP":       ScancodeStop,
	"AGAIN":      ScancodeAgain,
	"UNDO":       ScancodeUndo,
	"CUT":        ScancodeCut,
	"COPY":       ScancodeCopy,
	"PASTE":      ScancodePaste,
	"FIND":       ScancodeFind,
	"MUTE":       ScancodeMute,
	"VOLUMEUP":   ScancodeVolumeUp,
	"VOLUMEDOWN": ScancodeVolumeDown,

	"KP_COMMA":       ScancodeKPComma,
	"KP_EQUALSAS400": ScancodeKPEqualsAS400,

	"INTERNATIONAL1": ScancodeInternational1, "INTERNATIONAL2": ScancodeInternational2,
	"INTERNATIONAL3": ScancodeInternational3, "INTERNATIONAL4": ScancodeInternational4,
	"INTERNATIONAL5": ScancodeInternational5, "INTERNATIONAL6": ScancodeInternational6,
	"INTERNATIONAL7": ScancodeInternational7, "INTERNATIONAL8": ScancodeInternational8,
	"INTERNATIONAL9": ScancodeInternational9,

	"LANG1": ScancodeLang1, "LANG2": ScancodeLang2, "LANG3": ScancodeLang3,
	"LANG4": ScancodeLang4, "LANG5": ScancodeLang5, "LANG6": ScancodeLang6,
	"LANG7": ScancodeLang7, "LANG8": ScancodeLang8, "LANG9": ScancodeLang9,

	"ALTERASE":   ScancodeAltErase,
	"SYSREQ":     ScancodeSysReq,
	"CANCEL":     ScancodeCancel,
	"CLEAR":      ScancodeClear,
	"PRIOR":      ScancodePrior,
	"RETURN2":    ScancodeReturn2,
	"SEPARATOR":  ScancodeSeparator,
	"OUT":        ScancodeOut,
	"OPER":       ScancodeOper,
	"CLEARAGAIN": ScancodeClearAgain,
	"CRSEL":      ScancodeCrSel,
	"EXSEL":      ScancodeExSel,

	"KP_00":              ScancodeKP00,
	"KP_000":             ScancodeKP000,
	"THOUSANDSSEPARATOR": ScancodeThousandsSeparator,
	"DECIMALSEPARATOR":   ScancodeDecimalSeparator,
	"CURRENCYUNIT":       ScancodeCurrencyUnit,
	"CURRENCYSUBUNIT":    ScancodeCurrencySubunit,
	"KP_LEFTPAREN":       ScancodeKPLeftParen,
	"KP_RIGHTPAREN":      ScancodeKPRightParen,
	"KP_LEFTBRACE":       ScancodeKPLeftBrace,
	"KP_RIGHTBRACE":      ScancodeKPRightBrace,
	"KP_TAB":             ScancodeKPTab,
	"KP_BACKSPACE":       ScancodeKPBackspace,
	"KP_A":               ScancodeKPA,
	"KP_B":               ScancodeKPB,
	"KP_C":               ScancodeKPC,
	"KP_D":               ScancodeKPD,
	"KP_E":               ScancodeKPE,
	"KP_F":               ScancodeKPF,
	"KP_XOR":             ScancodeKPXor,
	"KP_POWER":           ScancodeKPPower,
	"KP_PERCENT":         ScancodeKPPercent,
	"KP_LESS":            ScancodeKPLess,
	"KP_GREATER":         ScancodeKPGreater,
	"KP_AMPERSAND":       ScancodeKPAmpersand,
	"KP_DBLAMPERSAND":    ScancodeKPDblAmpersand,
	"KP_VERTICALBAR":     ScancodeKPVerticalBar,
	"KP_DBLVERTICALBAR":  ScancodeKPDblVerticalBar,
	"KP_COLON":           ScancodeKPColon,
	"KP_HASH":            ScancodeKPHash,
	"KP_SPACE":           ScancodeKPSpace,
	"KP_AT":              ScancodeKPAt,
	"KP_EXCLAM":          ScancodeKPExclam,
	"KP_MEMSTORE":        ScancodeKPMemStore,
	"KP_MEMRECALL":       ScancodeKPMemRecall,
	"KP_MEMCLEAR":        ScancodeKPMemClear,
	"KP_MEMADD":          ScancodeKPMemAdd,
	"KP_MEMSUBTRACT":     ScancodeKPMemSubtract,
	"KP_MEMMULTIPLY":     ScancodeKPMemMultiply,
	"KP_MEMDIVIDE":       ScancodeKPMemDivide,
	"KP_PLUSMINUS":       ScancodeKPPlusMinus,
	"KP_CLEAR":           ScancodeKPClear,
	"KP_CLEARENTRY":      ScancodeKPClearEntry,
	"KP_BINARY":          ScancodeKPBinary,
	"KP_OCTAL":           ScancodeKPOctal,
	"KP_DECIMAL":         ScancodeKPDecimal,
	"KP_HEXADECIMAL":     ScancodeKPHexadecimal,

	"LCTRL":  ScancodeLCtrl,
	"LSHIFT": ScancodeLShift,
	"LALT":   ScancodeLAlt,
	"LGUI":   ScancodeLGUI,
	"RCTRL":  ScancodeRCtrl,
	"RSHIFT": ScancodeRShift,
	"RALT":   ScancodeRAlt,
	"RGUI":   ScancodeRGUI,

	"MODE":           ScancodeMode,
	"AUDIONEXT":      ScancodeAudioNext,
	"AUDIOPREV":      ScancodeAudioPrev,
	"AUDIOSTOP":      ScancodeAudioStop,
	"AUDIOPLAY":      ScancodeAudioPlay,
	"AUDIOMUTE":      ScancodeAudioMute,
	"MEDIASELECT":    ScancodeMediaSelect,
	"WWW":            ScancodeWWW,
	"MAIL":           ScancodeMail,
	"CALCULATOR":     ScancodeCalculator,
	"COMPUTER":       ScancodeComputer,
	"AC_SEARCH":      ScancodeACSearch,
	"AC_HOME":        ScancodeACHome,
	"AC_BACK":        ScancodeACBack,
	"AC_FORWARD":     ScancodeACForward,
	"AC_STOP":        ScancodeACStop,
	"AC_REFRESH":     ScancodeACRefresh,
	"AC_BOOKMARKS":   ScancodeACBookmarks,
	"BRIGHTNESSDOWN": ScancodeBrightnessDown,
	"BRIGHTNESSUP":   ScancodeBrightnessUp,
	"DISPLAYSWITCH":  ScancodeDisplaySwitch,
	"KBDILLUMTOGGLE": ScancodeKbdIllumToggle,
	"KBDILLUMDOWN":   ScancodeKbdIllumDown,
	"KBDILLUMUP":     ScancodeKbdIllumUp,
	"EJECT":          ScancodeEject,
	"SLEEP":          ScancodeSleep,
	"APP1":           ScancodeApp1,
	"APP2":           ScancodeApp2,
}

// printableKeycodeNames are keycodes that carry their character value
var printableKeycodeNames = map[string]Keycode{
	"RETURN":       '\r',
	"ESCAPE":       '\x1b',
	"BACKSPACE":    '\b',
	"TAB":          '\t',
	"SPACE":        ' ',
	"EXCLAIM":      '!',
	"QUOTEDBL":     '"',
	"HASH":         '#',
	"PERCENT":      '%',
	"DOLLAR":       '$',
	"AMPERSAND":    '&',
	"QUOTE":        '\'',
	"LEFTPAREN":    '(',
	"RIGHTPAREN":   ')',
	"ASTERISK":     '*',
	"PLUS":         '+',
	"COMMA":        ',',
	"MINUS":        '-',
	"PERIOD":       '.',
	"SLASH":        '/',
	"COLON":        ':',
	"SEMICOLON":    ';',
	"LESS":         '<',
	"EQUALS":       '=',
	"GREATER":      '>',
	"QUESTION":     '?',
	"AT":           '@',
	"LEFTBRACKET":  '[',
	"BACKSLASH":    '\\',
	"RIGHTBRACKET": ']',
	"CARET":        '^',
	"UNDERSCORE":   '_',
	"BACKQUOTE":    '`',
	"DELETE":       '\x7f',
}

// scancodeKeycodeNames are keycodes defined as their scancode with the
// scancode mask; the names match the scancode table
var scancodeKeycodeNames = []string{
	"CAPSLOCK",
	"F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11", "F12",
	"PRINTSCREEN", "SCROLLLOCK", "PAUSE", "INSERT", "HOME", "PAGEUP", "END",
	"PAGEDOWN", "RIGHT", "LEFT", "DOWN", "UP",
	"NUMLOCKCLEAR", "KP_DIVIDE", "KP_MULTIPLY", "KP_MINUS", "KP_PLUS", "KP_ENTER",
	"KP_1", "KP_2", "KP_3", "KP_4", "KP_5", "KP_6", "KP_7", "KP_8", "KP_9", "KP_0",
	"KP_PERIOD", "APPLICATION", "POWER", "KP_EQUALS",
	"F13", "F14", "F15", "F16", "F17", "F18", "F19", "F20", "F21", "F22", "F23", "F24",
	"EXECUTE", "HELP", "MENU", "SELECT", "STOP", "AGAIN", "UNDO", "CUT", "COPY",
	"PASTE", "FIND", "MUTE", "VOLUMEUP", "VOLUMEDOWN", "KP_COMMA", "KP_EQUALSAS400",
	"ALTERASE", "SYSREQ", "CANCEL", "CLEAR", "PRIOR", "RETURN2", "SEPARATOR", "OUT",
	"OPER", "CLEARAGAIN", "CRSEL", "EXSEL",
	"KP_00", "KP_000", "THOUSANDSSEPARATOR", "DECIMALSEPARATOR", "CURRENCYUNIT",
	"CURRENCYSUBUNIT", "KP_LEFTPAREN", "KP_RIGHTPAREN", "KP_LEFTBRACE",
	"KP_RIGHTBRACE", "KP_TAB", "KP_BACKSPACE", "KP_A", "KP_B", "KP_C", "KP_D",
	"KP_E", "KP_F", "KP_XOR", "KP_POWER", "KP_PERCENT", "KP_LESS", "KP_GREATER",
	"KP_AMPERSAND", "KP_DBLAMPERSAND", "KP_VERTICALBAR", "KP_DBLVERTICALBAR",
	"KP_COLON", "KP_HASH", "KP_SPACE", "KP_AT", "KP_EXCLAM", "KP_MEMSTORE",
	"KP_MEMRECALL", "KP_MEMCLEAR", "KP_MEMADD", "KP_MEMSUBTRACT", "KP_MEMMULTIPLY",
	"KP_MEMDIVIDE", "KP_PLUSMINUS", "KP_CLEAR", "KP_CLEARENTRY", "KP_BINARY",
	"KP_OCTAL", "KP_DECIMAL", "KP_HEXADECIMAL",
	"LCTRL", "LSHIFT", "LALT", "LGUI", "RCTRL", "RSHIFT", "RALT", "RGUI",
	"MODE", "AUDIONEXT", "AUDIOPREV", "AUDIOSTOP", "AUDIOPLAY", "AUDIOMUTE",
	"MEDIASELECT", "WWW", "MAIL", "CALCULATOR", "COMPUTER", "AC_SEARCH", "AC_HOME",
	"AC_BACK", "AC_FORWARD", "AC_STOP", "AC_REFRESH", "AC_BOOKMARKS",
	"BRIGHTNESSDOWN", "BRIGHTNESSUP", "DISPLAYSWITCH", "KBDILLUMTOGGLE",
	"KBDILLUMDOWN", "KBDILLUMUP", "EJECT", "SLEEP",
}

var mouseButtonNames = map[string]MouseButton{
	"LEFT":   MouseLeft,
	"MIDDLE": MouseMiddle,
	"RIGHT":  MouseRight,
	"X1":     MouseX1,
	"X2":     MouseX2,
}

var controllerButtonNames = map[string]ControllerButton{
	"A":             ButtonA,
	"B":             ButtonB,
	"X":             ButtonX,
	"Y":             ButtonY,
	"BACK":          ButtonBack,
	"GUIDE":         ButtonGuide,
	"START":         ButtonStart,
	"LEFTSTICK":     ButtonLeftStick,
	"RIGHTSTICK":    ButtonRightStick,
	"LEFTSHOULDER":  ButtonLeftShoulder,
	"RIGHTSHOULDER": ButtonRightShoulder,
	"DPAD_UP":       ButtonDPadUp,
	"DPAD_DOWN":     ButtonDPadDown,
	"DPAD_LEFT":     ButtonDPadLeft,
	"DPAD_RIGHT":    ButtonDPadRight,
	"MISC1":         ButtonMisc1,
	"PADDLE1":       ButtonPaddle1,
	"PADDLE2":       ButtonPaddle2,
	"PADDLE3":       ButtonPaddle3,
	"PADDLE4":       ButtonPaddle4,
	"TOUCHPAD":      ButtonTouchpad,
}

var axisDirectionNames = map[string]AxisDirection{
	"LEFTXPOS":     LeftXPos,
	"LEFTXNEG":     LeftXNeg,
	"LEFTYPOS":     LeftYPos,
	"LEFTYNEG":     LeftYNeg,
	"RIGHTXPOS":    RightXPos,
	"RIGHTXNEG":    RightXNeg,
	"RIGHTYPOS":    RightYPos,
	"RIGHTYNEG":    RightYNeg,
	"TRIGGERLEFT":  LeftTrigger,
	"TRIGGERRIGHT": RightTrigger,
}

var (
	keycodeNames     map[string]Keycode
	scancodeToName   map[Scancode]string
	keycodeToName    map[Keycode]string
	mouseToName      map[MouseButton]string
	controllerToName map[ControllerButton]string
	axisToName       map[AxisDirection]string
)

func init() {
	keycodeNames = make(map[string]Keycode, len(printableKeycodeNames)+len(scancodeKeycodeNames)+36)
	for name, k := range printableKeycodeNames {
		keycodeNames[name] = k
	}
	for i := 0; i < 10; i++ {
		keycodeNames[strconv.Itoa(i)] = Keycode('0' + i)
	}
	for c := 'a'; c <= 'z'; c++ {
		keycodeNames[string(c)] = Keycode(c)
	}
	for _, name := range scancodeKeycodeNames {
		keycodeNames[name] = KeycodeFromScancode(scancodeNames[name])
	}

	scancodeToName = invert(scancodeNames)
	keycodeToName = invert(keycodeNames)
	mouseToName = invert(mouseButtonNames)
	controllerToName = invert(controllerButtonNames)
	axisToName = invert(axisDirectionNames)
}

func invert[K comparable, V comparable](m map[K]V) map[V]K {
	out := make(map[V]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// LookupScancode resolves a bind-file physical key name
func LookupScancode(name string) (Scancode, bool) {
	s, ok := scancodeNames[name]
	return s, ok
}

// LookupKeycode resolves a bind-file logical key name
func LookupKeycode(name string) (Keycode, bool) {
	k, ok := keycodeNames[name]
	return k, ok
}

// LookupMouseButton resolves a bind-file mouse button name
func LookupMouseButton(name string) (MouseButton, bool) {
	b, ok := mouseButtonNames[name]
	return b, ok
}

// LookupControllerButton resolves a bind-file controller button name
func LookupControllerButton(name string) (ControllerButton, bool) {
	b, ok := controllerButtonNames[name]
	return b, ok
}

// LookupAxisDirection resolves a bind-file axis direction name
func LookupAxisDirection(name string) (AxisDirection, bool) {
	d, ok := axisDirectionNames[name]
	return d, ok
}

// ScancodeName returns the bind-file name of s
func ScancodeName(s Scancode) (string, bool) {
	name, ok := scancodeToName[s]
	return name, ok
}

// String returns the bind-file name of k, or KEYCODE_<n>
func (k Keycode) String() string {
	if name, ok := keycodeToName[k]; ok {
		return name
	}
	return "KEYCODE_" + strconv.Itoa(int(k))
}

// String returns the bind-file name of b, or MOUSE_<n>
func (b MouseButton) String() string {
	if name, ok := mouseToName[b]; ok {
		return name
	}
	return "MOUSE_" + strconv.Itoa(int(b))
}

// String returns the bind-file name of b, or BUTTON_<n>
func (b ControllerButton) String() string {
	if name, ok := controllerToName[b]; ok {
		return name
	}
	return "BUTTON_" + strconv.Itoa(int(b))
}

// String returns the bind-file name of d, or AXIS_<n>
func (d AxisDirection) String() string {
	if name, ok := axisToName[d]; ok {
		return name
	}
	return "AXIS_" + strconv.Itoa(int(d))
}

// ScancodeNames returns every physical key name, sorted
func ScancodeNames() []string { return sortedKeys(scancodeNames) }

// KeycodeNames returns every logical key name, sorted
func KeycodeNames() []string { return sortedKeys(keycodeNames) }

// MouseButtonNames returns every mouse button name, sorted
func MouseButtonNames() []string { return sortedKeys(mouseButtonNames) }

// ControllerButtonNames returns every controller button name, sorted
func ControllerButtonNames() []string { return sortedKeys(controllerButtonNames) }

// AxisDirectionNames returns every axis direction name, sorted
func AxisDirectionNames() []string { return sortedKeys(axisDirectionNames) }

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.SortFunc(names, strings.Compare)
	return names
}
