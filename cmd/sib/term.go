package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/sib/bind"
	"github.com/lixenwraith/sib/cue"
	"github.com/lixenwraith/sib/profile"
	"github.com/lixenwraith/sib/terminput"
	"github.com/lixenwraith/sib/watch"
)

const (
	frameInterval = 16 * time.Millisecond // ~60 FPS
	flashDuration = 250 * time.Millisecond
	maxLog        = 10
)

var flagNoSound, flagNoWatch bool

var termCmd = &cobra.Command{
	Use:   "term [bind files...]",
	Short: "Interactively test bindings in the terminal",
	Long: `Term shows every declared action and flashes it when a bound key, mouse
button or wheel motion fires. Bind files are reloaded when they change.
Press Ctrl+C to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadProfile(flagProfile, flagActions, args)
		if err != nil {
			return err
		}
		if len(p.Actions) == 0 {
			return fmt.Errorf("no actions declared; use -p or -a")
		}

		t, err := newTester(p)
		if err != nil {
			return err
		}
		defer t.cleanup()

		t.run()
		return nil
	},
}

func init() {
	termCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable audio cues")
	termCmd.Flags().BoolVar(&flagNoWatch, "no-watch", false, "Do not reload bind files on change")
}

// actionRow is one line of the tester display
type actionRow struct {
	name         string
	action       bind.Action
	lastPress    time.Time
	lastRelease  time.Time
	pressCount   int
	releaseCount int
}

// tester owns the screen and the Binder; all Binder access happens on the
// run loop goroutine
type tester struct {
	screen     tcell.Screen
	binder     *bind.Binder
	profile    *profile.Profile
	translator *terminput.Translator
	player     *cue.Player
	watcher    *watch.Watcher

	rows     []actionRow
	actions  []bind.Action
	eventLog []string
	status   string
	reloads  int
}

func newTester(p *profile.Profile) (*tester, error) {
	t := &tester{
		profile:    p,
		translator: terminput.NewTranslator(),
	}

	b, err := p.NewBinder(bind.WithErrorCallback(func(e *bind.Error) {
		log.Printf("bind: %v", e)
	}))
	if b == nil {
		return nil, err
	}
	t.binder = b
	t.setStatus(err)

	for _, name := range p.ActionNames() {
		a := bind.Action(p.Actions[name])
		t.rows = append(t.rows, actionRow{name: name, action: a})
		t.actions = append(t.actions, a)
	}

	cfg := cue.LoadConfig()
	if p.Cue.Volume > 0 {
		cfg.Volume = p.Cue.Volume
	}
	cfg.Enabled = cfg.Enabled && !flagNoSound
	t.player = cue.NewPlayer(cfg)
	if err := t.player.Initialize(); err != nil {
		// Non-fatal, tester runs silently
		log.Printf("Audio initialization failed: %v", err)
	}

	if !flagNoWatch && len(p.BindPaths()) > 0 {
		w, err := watch.New(p.BindPaths())
		if err != nil {
			log.Printf("watch disabled: %v", err)
		} else {
			t.watcher = w
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		t.cleanup()
		return nil, err
	}
	if err := screen.Init(); err != nil {
		t.cleanup()
		return nil, err
	}
	screen.EnableMouse()
	screen.EnableFocus()
	t.screen = screen

	return t, nil
}

func (t *tester) setStatus(err error) {
	if err == nil {
		t.status = fmt.Sprintf("%d binding(s) loaded", len(t.binder.Bindings()))
		return
	}
	t.status = "load errors: " + firstLine(err.Error())
}

func firstLine(s string) string {
	if head, _, found := strings.Cut(s, "\n"); found {
		return head + " ..."
	}
	return s
}

func (t *tester) reload(paths []string) {
	log.Printf("reload %v", paths)
	t.reloads++
	t.setStatus(t.profile.Reload(t.binder))
}

func (t *tester) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	var reloads <-chan []string
	if t.watcher != nil {
		reloads = t.watcher.Reloads()
	}

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !t.handleEvent(ev) {
				return
			}

		case paths, ok := <-reloads:
			if !ok {
				reloads = nil
				continue
			}
			t.reload(paths)

		case <-ticker.C:
			t.frame(time.Now())
			t.draw()
		}
	}
}

func (t *tester) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	for _, e := range t.translator.Translate(ev) {
		t.addLog(describe(e))
		t.binder.HandleEvent(e)
	}
	return true
}

// addLog keeps the last maxLog entries
func (t *tester) addLog(s string) {
	if len(t.eventLog) >= maxLog {
		copy(t.eventLog, t.eventLog[1:])
		t.eventLog = t.eventLog[:maxLog-1]
	}
	t.eventLog = append(t.eventLog, s)
}

func describe(e bind.Event) string {
	switch e.Kind {
	case bind.EventKeyDown:
		return "key down " + e.Scancode.String()
	case bind.EventKeyUp:
		return "key up   " + e.Scancode.String()
	case bind.EventMouseButtonDown:
		return "mouse down " + e.MouseButton.String()
	case bind.EventMouseButtonUp:
		return "mouse up   " + e.MouseButton.String()
	case bind.EventMouseWheel:
		return fmt.Sprintf("wheel x=%d y=%d", e.WheelX, e.WheelY)
	}
	return fmt.Sprintf("event %d", e.Kind)
}

// frame consumes this frame's transitions and resets the binder
func (t *tester) frame(now time.Time) {
	t.player.Observe(t.binder, t.actions)
	for i := range t.rows {
		r := &t.rows[i]
		if t.binder.Pressed(r.action) {
			r.lastPress = now
			r.pressCount++
		}
		if t.binder.Released(r.action) {
			r.lastRelease = now
			r.releaseCount++
		}
	}
	t.binder.ResetInputs()
}

func (t *tester) draw() {
	t.screen.Clear()
	now := time.Now()

	header := tcell.StyleDefault.Bold(true)
	t.drawText(0, 0, header, "sib term - Ctrl+C quits")

	for i, r := range t.rows {
		style := tcell.StyleDefault
		if now.Sub(r.lastPress) < flashDuration {
			style = style.Foreground(tcell.ColorGreen).Reverse(true)
		} else if now.Sub(r.lastRelease) < flashDuration {
			style = style.Foreground(tcell.ColorYellow)
		}
		line := fmt.Sprintf("%3d %-20s pressed %4d  released %4d", r.action, r.name, r.pressCount, r.releaseCount)
		t.drawText(0, i+2, style, line)
	}

	logTop := len(t.rows) + 3
	for i, entry := range t.eventLog {
		t.drawText(2, logTop+i, tcell.StyleDefault.Foreground(tcell.ColorSilver), entry)
	}

	_, height := t.screen.Size()
	footer := t.status
	if t.reloads > 0 {
		footer = fmt.Sprintf("%s (reloaded %d)", footer, t.reloads)
	}
	t.drawText(0, height-1, tcell.StyleDefault.Foreground(tcell.ColorGray), footer)

	t.screen.Show()
}

func (t *tester) drawText(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (t *tester) cleanup() {
	if t.watcher != nil {
		t.watcher.Close()
	}
	if t.player != nil {
		t.player.Cleanup()
	}
	if t.screen != nil {
		t.screen.Fini()
	}
}
