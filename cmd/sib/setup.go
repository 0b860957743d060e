package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lixenwraith/sib/profile"
)

// loadProfile builds the effective profile from flags and bind file arguments
// Bind files given on the command line are read after the profile's own
func loadProfile(profilePath string, actions, bindFiles []string) (*profile.Profile, error) {
	p := &profile.Profile{}
	if profilePath != "" {
		var err error
		if p, err = profile.Load(profilePath); err != nil {
			return nil, err
		}
	}
	if p.Actions == nil {
		p.Actions = make(map[string]int)
	}

	if err := declareActions(p, actions); err != nil {
		return nil, err
	}

	for _, f := range bindFiles {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("bind file %s: %w", f, err)
		}
		p.Binds = append(p.Binds, abs)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// declareActions adds name or name=id declarations
// Names without an id take the lowest id not yet used
func declareActions(p *profile.Profile, decls []string) error {
	used := make(map[int]bool, len(p.Actions))
	for _, id := range p.Actions {
		used[id] = true
	}

	var auto []string
	for _, d := range decls {
		name, idStr, hasID := strings.Cut(d, "=")
		if name == "" {
			return fmt.Errorf("action %q: empty name", d)
		}
		if !hasID {
			auto = append(auto, name)
			continue
		}
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return fmt.Errorf("action %q: %w", d, err)
		}
		p.Actions[name] = id
		used[id] = true
	}

	next := 0
	for _, name := range auto {
		if _, ok := p.Actions[name]; ok {
			continue
		}
		for used[next] {
			next++
		}
		p.Actions[name] = next
		used[next] = true
	}
	return nil
}
