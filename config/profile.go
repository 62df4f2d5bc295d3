// Package config loads optional board profiles for the host simulator:
// timing overrides and per-cell key legend remaps. Pin assignment and key
// tables are configuration data, not protocol; a profile never changes the
// scan algorithm.
package config

import (
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml"

	"keymatrix/hal"
	"keymatrix/key"
	"keymatrix/scan"
)

type Profile struct {
	Timing Timing        `toml:"timing"`
	Keys   []KeyOverride `toml:"keys"`
}

// Timing overrides; zero fields keep the defaults.
type Timing struct {
	KeyHoldMS     int `toml:"key-hold-ms"`
	RepeatHoldMS  int `toml:"repeat-hold-ms"`
	SustainCycles int `toml:"sustain-cycles"`
	IdleSamples   int `toml:"idle-samples"`
}

// KeyOverride remaps one matrix cell.
type KeyOverride struct {
	Row int    `toml:"row"`
	Col int    `toml:"col"`
	Key string `toml:"key"`
}

func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Profile
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return &p, nil
}

// Apply folds the profile into params and topology. The remapped topology
// must still pass the same validation as the built-in one.
func (p *Profile) Apply(params *scan.Params, top *scan.Topology) error {
	if p == nil {
		return nil
	}
	if p.Timing.KeyHoldMS > 0 {
		params.KeyHold = time.Duration(p.Timing.KeyHoldMS) * time.Millisecond
	}
	if p.Timing.RepeatHoldMS > 0 {
		params.RepeatHold = time.Duration(p.Timing.RepeatHoldMS) * time.Millisecond
	}
	if p.Timing.SustainCycles > 0 {
		params.SustainThreshold = p.Timing.SustainCycles
	}
	if p.Timing.IdleSamples > 0 {
		params.IdleThreshold = p.Timing.IdleSamples
	}

	for _, o := range p.Keys {
		if o.Row < 0 || o.Row >= hal.MatrixRows || o.Col < 0 || o.Col >= hal.MatrixCols {
			return fmt.Errorf("profile: cell (%d,%d) out of range", o.Row, o.Col)
		}
		code, err := ParseKey(o.Key)
		if err != nil {
			return fmt.Errorf("profile: cell (%d,%d): %w", o.Row, o.Col, err)
		}
		top.Keys[o.Row][o.Col] = code
	}
	return top.Validate()
}

// ParseKey turns a profile key name into a code: a single printable ASCII
// character, or one of the named keys.
func ParseKey(s string) (key.Code, error) {
	switch s {
	case "enter":
		return key.Enter, nil
	case "tab":
		return key.Tab, nil
	case "backspace":
		return key.Backspace, nil
	case "escape":
		return key.Escape, nil
	case "space":
		return key.Space, nil
	}
	if len(s) == 1 && key.Code(s[0]).Printable() {
		return key.Code(s[0]), nil
	}
	return key.None, fmt.Errorf("unknown key %q", s)
}
