package bind

import (
	"fmt"
	"strings"
)

// Code classifies a binder failure
type Code int

const (
	NoError Code = iota
	BadAction
	BadAxis
	BadMouseButton
	BadScancodeString
	BadKeycodeString
	BadMouseButtonString
	BadControllerButtonString
	BadAxisString
	BadActionString
	NoScancode
	BadCommand
	OpenFile
)

var codeNames = [...]string{
	NoError:                   "no error",
	BadAction:                 "bad action",
	BadAxis:                   "bad axis",
	BadMouseButton:            "bad mouse button",
	BadScancodeString:         "bad scancode string",
	BadKeycodeString:          "bad keycode string",
	BadMouseButtonString:      "bad mouse button string",
	BadControllerButtonString: "bad controller button string",
	BadAxisString:             "bad axis string",
	BadActionString:           "bad action string",
	NoScancode:                "no scancode for keycode",
	BadCommand:                "bad command",
	OpenFile:                  "open file",
}

// String returns the short description of c
func (c Code) String() string {
	if c >= 0 && int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("code(%d)", int(c))
}

// Error is a single binder failure
// Line is the 1-based bind file line, 0 outside of file loading
type Error struct {
	Code Code
	Line int
	Msg  string
	Err  error // underlying cause, if any
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("Line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error carrying the same code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinels for errors.Is
var (
	ErrBadAction                 = &Error{Code: BadAction}
	ErrBadAxis                   = &Error{Code: BadAxis}
	ErrBadMouseButton            = &Error{Code: BadMouseButton}
	ErrBadScancodeString         = &Error{Code: BadScancodeString}
	ErrBadKeycodeString          = &Error{Code: BadKeycodeString}
	ErrBadMouseButtonString      = &Error{Code: BadMouseButtonString}
	ErrBadControllerButtonString = &Error{Code: BadControllerButtonString}
	ErrBadAxisString             = &Error{Code: BadAxisString}
	ErrBadActionString           = &Error{Code: BadActionString}
	ErrNoScancode                = &Error{Code: NoScancode}
	ErrBadCommand                = &Error{Code: BadCommand}
	ErrOpenFile                  = &Error{Code: OpenFile}
)

// ErrorCallback observes every reported error before the reporting call returns
type ErrorCallback func(err *Error)

// LoadError collects every line that failed during one bind file load
type LoadError struct {
	Source string
	Errs   []*Error
}

func (e *LoadError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %d bad line", e.Source, len(e.Errs))
	if len(e.Errs) != 1 {
		sb.WriteByte('s')
	}
	for _, err := range e.Errs {
		sb.WriteString("\n  ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Unwrap exposes every line error to errors.Is and errors.As
func (e *LoadError) Unwrap() []error {
	errs := make([]error, len(e.Errs))
	for i, err := range e.Errs {
		errs[i] = err
	}
	return errs
}
