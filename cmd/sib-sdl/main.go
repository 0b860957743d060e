// Command sib-sdl opens an SDL window and prints bound actions as they fire
//
// Run it from this directory to pick up example_binds.txt, or pass a bind
// file as the only argument.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/lixenwraith/sib/bind"
	"github.com/lixenwraith/sib/sdlinput"
)

const (
	actQuit bind.Action = iota
	actUp
	actScrollUp
	actLeftMouse
	actLeftStickDown
	actRightTrigger
	actLeftTrigger
	actButtonA
)

var actions = []struct {
	action  bind.Action
	name    string
	message string
}{
	{actQuit, "q", "q key pressed"},
	{actUp, "up", "up key pressed"},
	{actScrollUp, "scroll_up", "mouse scrolled up"},
	{actLeftMouse, "left_mb", "left mouse button pressed"},
	{actLeftStickDown, "left_stick_down", "left stick moved down"},
	{actRightTrigger, "right_trigger", "right trigger pressed"},
	{actLeftTrigger, "left_trigger", "left trigger pressed"},
	{actButtonA, "button_a", "a button pressed"},
}

func init() {
	// SDL requires its calls on the main thread
	runtime.LockOSThread()
}

func main() {
	path := "example_binds.txt"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if err := run(path); err != nil {
		fmt.Fprintf(os.Stderr, "sib-sdl: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("sib basic", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, 200, 200, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	// Keycode lines resolve through the active layout once video is up
	b := bind.New(
		bind.WithKeyResolver(sdlinput.Layout{}),
		bind.WithErrorCallback(func(e *bind.Error) {
			fmt.Fprintln(os.Stderr, e)
		}),
	)
	for _, a := range actions {
		if err := b.SetActionString(a.action, a.name); err != nil {
			return err
		}
	}

	if err := b.ReadFile(path); errors.Is(err, bind.ErrOpenFile) {
		return err
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		if sdl.IsGameController(i) {
			if c := sdl.GameControllerOpen(i); c != nil {
				defer c.Close()
			}
		}
	}

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, ok := event.(*sdl.QuitEvent); ok {
				return nil
			}
			sdlinput.HandleEvent(b, event)
		}

		for _, a := range actions {
			if b.Pressed(a.action) {
				fmt.Println(a.message)
			}
		}
		if b.Pressed(actQuit) {
			return nil
		}

		b.ResetInputs()
		sdl.Delay(16)
	}
}
