// Package cue plays short tones when bound actions change state
package cue

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/sib/bind"
)

const (
	baseFreq      = 440.0
	toneLength    = 50 * time.Millisecond
	releaseOctave = 0.5 // release tones sound an octave below the press
)

// Player voices action transitions through the system speaker
// All methods are safe to call before Initialize or after a failed one
type Player struct {
	mu          sync.Mutex
	cfg         Config
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player; nil cfg uses DefaultConfig
func NewPlayer(cfg *Config) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg
	c.Volume = clampVolume(c.Volume)
	return &Player{
		cfg:        c,
		sampleRate: beep.SampleRate(c.SampleRate),
		mixer:      &beep.Mixer{},
	}
}

// Initialize opens the speaker; a disabled player stays silent
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(p.sampleRate, p.sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences pending tones and closes the speaker
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Active reports whether tones will be heard
func (p *Player) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// PlayPress sounds the press tone of a
func (p *Player) PlayPress(a bind.Action) { p.play(ToneFreq(a, true)) }

// PlayRelease sounds the release tone of a
func (p *Player) PlayRelease(a bind.Action) { p.play(ToneFreq(a, false)) }

// Observe voices the transitions of actions recorded by b this frame
// Call before b.ResetInputs
func (p *Player) Observe(b *bind.Binder, actions []bind.Action) {
	for _, a := range actions {
		if b.Pressed(a) {
			p.PlayPress(a)
		}
		if b.Released(a) {
			p.PlayRelease(a)
		}
	}
}

func (p *Player) play(freq float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	sine, err := generators.SineTone(p.sampleRate, freq)
	if err != nil {
		return
	}
	tone := &effects.Gain{
		Streamer: beep.Take(p.sampleRate.N(toneLength), sine),
		Gain:     p.cfg.Volume - 1,
	}

	speaker.Lock()
	p.mixer.Add(tone)
	speaker.Unlock()
}

// ToneFreq maps an action to a semitone above baseFreq, wrapping each octave
func ToneFreq(a bind.Action, press bool) float64 {
	freq := baseFreq * math.Pow(2, float64(a%12)/12)
	if !press {
		freq *= releaseOctave
	}
	return freq
}
