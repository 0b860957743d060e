// Package profile loads host profiles describing how a Binder is set up:
// the action names bind files may use, analog thresholds, and which bind
// files to read. Profiles are TOML or YAML, chosen by file extension.
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/sib/bind"
)

// Format is a profile encoding
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

// Profile describes one Binder setup
type Profile struct {
	// MaxActions is the action limit; 0 keeps bind.DefaultMaxActions
	MaxActions int `toml:"max_actions" yaml:"max_actions"`

	// Actions maps bind-file action names to action ids
	Actions map[string]int `toml:"actions" yaml:"actions"`

	Axis Axis `toml:"axis" yaml:"axis"`

	// Binds lists bind files, relative to the profile's directory
	Binds []string `toml:"binds" yaml:"binds"`

	Cue Cue `toml:"cue" yaml:"cue"`

	// Dir is the directory relative bind paths resolve against
	Dir string `toml:"-" yaml:"-"`
}

// Axis holds optional analog thresholds, 0-100
type Axis struct {
	High *uint8 `toml:"high" yaml:"high"`
	Low  *uint8 `toml:"low" yaml:"low"`
}

// Cue configures audible transition feedback
type Cue struct {
	Enabled bool    `toml:"enabled" yaml:"enabled"`
	Volume  float64 `toml:"volume" yaml:"volume"`
}

// FormatFor picks the encoding from a file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("profile %s: unsupported extension %q", path, filepath.Ext(path))
}

// Load reads and validates a profile file
func Load(path string) (*Profile, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}

	p, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	p.Dir = filepath.Dir(path)
	return p, nil
}

// Parse decodes and validates profile data; unknown fields are rejected
func Parse(data []byte, format Format) (*Profile, error) {
	p := &Profile{}

	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(p); err != nil {
			return nil, fmt.Errorf("toml parse: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// Documents with no content, comments included, decode to io.EOF
		if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("yaml parse: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %d", format)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks action ids and thresholds against the action limit
func (p *Profile) Validate() error {
	limit := p.limit()
	if p.MaxActions < 0 || p.MaxActions > bind.MaxActionsLimit {
		return fmt.Errorf("max_actions %d out of range 0-%d", p.MaxActions, bind.MaxActionsLimit)
	}

	var errs []error
	for _, name := range p.ActionNames() {
		id := p.Actions[name]
		if !bind.ValidActionName(name) {
			errs = append(errs, fmt.Errorf("action name %q must be a single token", name))
		}
		if id < 0 || id >= limit {
			errs = append(errs, fmt.Errorf("action %q: id %d not in range 0-%d", name, id, limit-1))
		}
	}
	if p.Axis.High != nil && *p.Axis.High > 100 {
		errs = append(errs, fmt.Errorf("axis high %d above 100", *p.Axis.High))
	}
	if p.Axis.Low != nil && *p.Axis.Low > 100 {
		errs = append(errs, fmt.Errorf("axis low %d above 100", *p.Axis.Low))
	}
	if p.Cue.Volume < 0 || p.Cue.Volume > 1 {
		errs = append(errs, fmt.Errorf("cue volume %g not in range 0-1", p.Cue.Volume))
	}
	return errors.Join(errs...)
}

func (p *Profile) limit() int {
	if p.MaxActions == 0 {
		return bind.DefaultMaxActions
	}
	return p.MaxActions
}

// ActionNames returns the declared action names, sorted
func (p *Profile) ActionNames() []string {
	names := make([]string, 0, len(p.Actions))
	for name := range p.Actions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// BindPaths returns the bind files resolved against Dir
func (p *Profile) BindPaths() []string {
	paths := make([]string, len(p.Binds))
	for i, b := range p.Binds {
		if filepath.IsAbs(b) || p.Dir == "" {
			paths[i] = b
		} else {
			paths[i] = filepath.Join(p.Dir, b)
		}
	}
	return paths
}

// Options returns the Binder construction options the profile implies
func (p *Profile) Options() []bind.Option {
	var opts []bind.Option
	if p.MaxActions != 0 {
		opts = append(opts, bind.WithMaxActions(p.MaxActions))
	}
	return opts
}

// Apply registers action names and thresholds on b
// Bindings are left untouched
func (p *Profile) Apply(b *bind.Binder) error {
	for _, name := range p.ActionNames() {
		if err := b.SetActionString(bind.Action(p.Actions[name]), name); err != nil {
			return fmt.Errorf("action %q: %w", name, err)
		}
	}
	if p.Axis.High != nil {
		b.SetAxisThresholdHigh(*p.Axis.High)
	}
	if p.Axis.Low != nil {
		b.SetAxisThresholdLow(*p.Axis.Low)
	}
	return nil
}

// LoadBinds reads every bind file in order
// All files are read even if one fails; failures are joined
func (p *Profile) LoadBinds(b *bind.Binder) error {
	var errs []error
	for _, path := range p.BindPaths() {
		if err := b.ReadFile(path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Reload drops every binding and reads the bind files again
func (p *Profile) Reload(b *bind.Binder) error {
	b.UnmapAll()
	return p.LoadBinds(b)
}

// NewBinder builds a Binder configured by the profile with its bind files loaded
// The Binder is returned even when some bind lines failed
func (p *Profile) NewBinder(opts ...bind.Option) (*bind.Binder, error) {
	b := bind.New(append(p.Options(), opts...)...)
	if err := p.Apply(b); err != nil {
		return nil, err
	}
	return b, p.LoadBinds(b)
}
