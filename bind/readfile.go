package bind

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const unmapPrefix = "unmap_"

// ReadFile applies every command in a bind file
// An unreadable file reports OpenFile and leaves the bindings untouched
func (b *Binder) ReadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return b.report(&Error{
			Code: OpenFile,
			Msg:  fmt.Sprintf("Failed to open file: %s", path),
			Err:  err,
		})
	}
	defer f.Close()

	return b.Read(f, path)
}

// Read applies bind commands from r, one per line
// Every line is applied independently; failed lines are reported and
// collected into a *LoadError, the rest still take effect. Lines have no
// length limit. A read failure stops the load and is collected as OpenFile.
func (b *Binder) Read(r io.Reader, source string) error {
	var failed []*Error

	br := bufio.NewReader(r)
	n := 0
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			n++
			if fields := strings.Fields(line); len(fields) > 0 {
				if lineErr := b.applyLine(n, fields); lineErr != nil {
					failed = append(failed, lineErr)
				}
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			failed = append(failed, b.report(&Error{
				Code: OpenFile,
				Msg:  fmt.Sprintf("Failed to read file: %s", source),
				Err:  err,
			}))
			break
		}
	}

	if len(failed) > 0 {
		return &LoadError{Source: source, Errs: failed}
	}
	return nil
}

// applyLine executes one tokenized command
// Tokens past the third are ignored
func (b *Binder) applyLine(n int, fields []string) *Error {
	arg := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	cmd := fields[0]
	kind, unmap := strings.CutPrefix(cmd, unmapPrefix)

	switch kind {
	case "scancode":
		s, ok := scancodeNames[arg(1)]
		if !ok {
			return b.reportf(BadScancodeString, n, "String \"%s\" does not match any scancode", arg(1))
		}
		if unmap {
			b.UnmapScancode(s)
			return nil
		}
		return b.withAction(n, arg(2), func(a Action) { b.scancodes[s] = a })

	case "keycode":
		k, ok := keycodeNames[arg(1)]
		if !ok {
			return b.reportf(BadKeycodeString, n, "String \"%s\" does not match any keycode", arg(1))
		}
		s := b.resolver.ScancodeFromKey(k)
		if s == ScancodeUnknown {
			return b.reportf(NoScancode, n, "Keycode %s has no matching scancode", k)
		}
		if unmap {
			b.UnmapScancode(s)
			return nil
		}
		return b.withAction(n, arg(2), func(a Action) { b.scancodes[s] = a })

	case "mbutton":
		btn, ok := mouseButtonNames[arg(1)]
		if !ok {
			return b.reportf(BadMouseButtonString, n, "String \"%s\" does not match any mouse button", arg(1))
		}
		s := &b.mbuttons[btn-1]
		if unmap {
			s.unbind()
			return nil
		}
		return b.withAction(n, arg(2), s.bind)

	case "cbutton":
		btn, ok := controllerButtonNames[arg(1)]
		if !ok {
			return b.reportf(BadControllerButtonString, n, "String \"%s\" does not match any controller button", arg(1))
		}
		if unmap {
			b.UnmapControllerButton(btn)
			return nil
		}
		return b.withAction(n, arg(2), func(a Action) { b.cbuttons[btn] = a })

	case "caxis":
		d, ok := axisDirectionNames[arg(1)]
		if !ok {
			return b.reportf(BadAxisString, n, "String \"%s\" is not a valid axis", arg(1))
		}
		s := &b.axes[d]
		if unmap {
			s.unbind()
			return nil
		}
		return b.withAction(n, arg(2), s.bind)
	}

	if i, ok := wheelCommands[kind]; ok {
		s := &b.wheels[i]
		if unmap {
			s.unbind()
			return nil
		}
		return b.withAction(n, arg(1), s.bind)
	}

	return b.reportf(BadCommand, n, "String \"%s\" is not a valid bind command", cmd)
}

var wheelCommands = map[string]int{
	"wheelup":    wheelUp,
	"wheeldown":  wheelDown,
	"wheelleft":  wheelLeft,
	"wheelright": wheelRight,
}

// withAction resolves a registered action name and hands it to bind
func (b *Binder) withAction(n int, name string, bind func(Action)) *Error {
	a, ok := b.actionStrings[name]
	if !ok {
		return b.reportf(BadActionString, n, "String \"%s\" does not match any registered action", name)
	}
	bind(a)
	return nil
}
