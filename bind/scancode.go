package bind

import "strconv"

// Scancode identifies a physical key independent of keyboard layout
// Values follow the USB HID usage table, identical to SDL scancodes
type Scancode uint16

// NumScancodes bounds every valid Scancode
const NumScancodes = 512

const ScancodeUnknown Scancode = 0

const (
	ScancodeA Scancode = iota + 4
	ScancodeB
	ScancodeC
	ScancodeD
	ScancodeE
	ScancodeF
	ScancodeG
	ScancodeH
	ScancodeI
	ScancodeJ
	ScancodeK
	ScancodeL
	ScancodeM
	ScancodeN
	ScancodeO
	ScancodeP
	ScancodeQ
	ScancodeR
	ScancodeS
	ScancodeT
	ScancodeU
	ScancodeV
	ScancodeW
	ScancodeX
	ScancodeY
	ScancodeZ

	Scancode1
	Scancode2
	Scancode3
	Scancode4
	Scancode5
	Scancode6
	Scancode7
	Scancode8
	Scancode9
	Scancode0

	ScancodeReturn
	ScancodeEscape
	ScancodeBackspace
	ScancodeTab
	ScancodeSpace
	ScancodeMinus
	ScancodeEquals
	ScancodeLeftBracket
	ScancodeRightBracket
	ScancodeBackslash
	ScancodeNonUSHash
	ScancodeSemicolon
	ScancodeApostrophe
	ScancodeGrave
	ScancodeComma
	ScancodePeriod
	ScancodeSlash
	ScancodeCapsLock

	ScancodeF1
	ScancodeF2
	ScancodeF3
	ScancodeF4
	ScancodeF5
	ScancodeF6
	ScancodeF7
	ScancodeF8
	ScancodeF9
	ScancodeF10
	ScancodeF11
	ScancodeF12

	ScancodePrintScreen
	ScancodeScrollLock
	ScancodePause
	ScancodeInsert
	ScancodeHome
	ScancodePageUp
	ScancodeDelete
	ScancodeEnd
	ScancodePageDown
	ScancodeRight
	ScancodeLeft
	ScancodeDown
	ScancodeUp

	ScancodeNumLockClear
	ScancodeKPDivide
	ScancodeKPMultiply
	ScancodeKPMinus
	ScancodeKPPlus
	ScancodeKPEnter
	ScancodeKP1
	ScancodeKP2
	ScancodeKP3
	ScancodeKP4
	ScancodeKP5
	ScancodeKP6
	ScancodeKP7
	ScancodeKP8
	ScancodeKP9
	ScancodeKP0
	ScancodeKPPeriod

	ScancodeNonUSBackslash
	ScancodeApplication
	ScancodePower
	ScancodeKPEquals
	ScancodeF13
	ScancodeF14
	ScancodeF15
	ScancodeF16
	ScancodeF17
	ScancodeF18
	ScancodeF19
	ScancodeF20
	ScancodeF21
	ScancodeF22
	ScancodeF23
	ScancodeF24
	ScancodeExecute
	ScancodeHelp
	ScancodeMenu
	ScancodeSelect
	ScancodeStop
	ScancodeAgain
	ScancodeUndo
	ScancodeCut
	ScancodeCopy
	ScancodePaste
	ScancodeFind
	ScancodeMute
	ScancodeVolumeUp
	ScancodeVolumeDown
)

// 130-132 are the locking caps/num/scroll keys, unused by SDL
const (
	ScancodeKPComma Scancode = iota + 133
	ScancodeKPEqualsAS400
	ScancodeInternational1
	ScancodeInternational2
	ScancodeInternational3
	ScancodeInternational4
	ScancodeInternational5
	ScancodeInternational6
	ScancodeInternational7
	ScancodeInternational8
	ScancodeInternational9
	ScancodeLang1
	ScancodeLang2
	ScancodeLang3
	ScancodeLang4
	ScancodeLang5
	ScancodeLang6
	ScancodeLang7
	ScancodeLang8
	ScancodeLang9
	ScancodeAltErase
	ScancodeSysReq
	ScancodeCancel
	ScancodeClear
	ScancodePrior
	ScancodeReturn2
	ScancodeSeparator
	ScancodeOut
	ScancodeOper
	ScancodeClearAgain
	ScancodeCrSel
	ScancodeExSel
)

const (
	ScancodeKP00 Scancode = iota + 176
	ScancodeKP000
	ScancodeThousandsSeparator
	ScancodeDecimalSeparator
	ScancodeCurrencyUnit
	ScancodeCurrencySubunit
	ScancodeKPLeftParen
	ScancodeKPRightParen
	ScancodeKPLeftBrace
	ScancodeKPRightBrace
	ScancodeKPTab
	ScancodeKPBackspace
	ScancodeKPA
	ScancodeKPB
	ScancodeKPC
	ScancodeKPD
	ScancodeKPE
	ScancodeKPF
	ScancodeKPXor
	ScancodeKPPower
	ScancodeKPPercent
	ScancodeKPLess
	ScancodeKPGreater
	ScancodeKPAmpersand
	ScancodeKPDblAmpersand
	ScancodeKPVerticalBar
	ScancodeKPDblVerticalBar
	ScancodeKPColon
	ScancodeKPHash
	ScancodeKPSpace
	ScancodeKPAt
	ScancodeKPExclam
	ScancodeKPMemStore
	ScancodeKPMemRecall
	ScancodeKPMemClear
	ScancodeKPMemAdd
	ScancodeKPMemSubtract
	ScancodeKPMemMultiply
	ScancodeKPMemDivide
	ScancodeKPPlusMinus
	ScancodeKPClear
	ScancodeKPClearEntry
	ScancodeKPBinary
	ScancodeKPOctal
	ScancodeKPDecimal
	ScancodeKPHexadecimal
)

const (
	ScancodeLCtrl Scancode = iota + 224
	ScancodeLShift
	ScancodeLAlt
	ScancodeLGUI
	ScancodeRCtrl
	ScancodeRShift
	ScancodeRAlt
	ScancodeRGUI
)

const (
	ScancodeMode Scancode = iota + 257
	ScancodeAudioNext
	ScancodeAudioPrev
	ScancodeAudioStop
	ScancodeAudioPlay
	ScancodeAudioMute
	ScancodeMediaSelect
	ScancodeWWW
	ScancodeMail
	ScancodeCalculator
	ScancodeComputer
	ScancodeACSearch
	ScancodeACHome
	ScancodeACBack
	ScancodeACForward
	ScancodeACStop
	ScancodeACRefresh
	ScancodeACBookmarks
	ScancodeBrightnessDown
	ScancodeBrightnessUp
	ScancodeDisplaySwitch
	ScancodeKbdIllumToggle
	ScancodeKbdIllumDown
	ScancodeKbdIllumUp
	ScancodeEject
	ScancodeSleep
	ScancodeApp1
	ScancodeApp2
)

// String returns the config-file name of the scancode, or a numeric form
func (s Scancode) String() string {
	if name, ok := ScancodeName(s); ok {
		return name
	}
	return "SCANCODE_" + strconv.Itoa(int(s))
}
