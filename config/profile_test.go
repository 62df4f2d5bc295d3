package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keymatrix/key"
	"keymatrix/scan"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAndApply(t *testing.T) {
	path := writeProfile(t, `
[timing]
key-hold-ms = 25
sustain-cycles = 90

[[keys]]
row = 0
col = 6
key = "w"

[[keys]]
row = 0
col = 7
key = "q"
`)
	p, err := Load(path)
	require.NoError(t, err)

	params := scan.DefaultParams()
	top := scan.DefaultTopology()
	require.NoError(t, p.Apply(&params, top))

	assert.Equal(t, 25*time.Millisecond, params.KeyHold)
	assert.Equal(t, 90, params.SustainThreshold)
	// Untouched fields keep their defaults.
	assert.Equal(t, scan.DefaultParams().RepeatHold, params.RepeatHold)
	assert.Equal(t, scan.DefaultParams().IdleThreshold, params.IdleThreshold)

	assert.Equal(t, key.Code('w'), top.Keys[0][6])
	assert.Equal(t, key.Code('q'), top.Keys[0][7])
}

func TestApplyRejectsOutOfRangeCell(t *testing.T) {
	p := &Profile{Keys: []KeyOverride{{Row: 9, Col: 0, Key: "a"}}}
	params := scan.DefaultParams()
	err := p.Apply(&params, scan.DefaultTopology())
	assert.ErrorContains(t, err, "out of range")
}

func TestApplyRejectsUnknownKey(t *testing.T) {
	p := &Profile{Keys: []KeyOverride{{Row: 0, Col: 0, Key: "hyper"}}}
	params := scan.DefaultParams()
	err := p.Apply(&params, scan.DefaultTopology())
	assert.ErrorContains(t, err, "unknown key")
}

func TestApplyRevalidatesTopology(t *testing.T) {
	// Remapping a never-scanned cell must fail the topology check, not
	// slip through.
	p := &Profile{Keys: []KeyOverride{{Row: 5, Col: 6, Key: "a"}}}
	params := scan.DefaultParams()
	err := p.Apply(&params, scan.DefaultTopology())
	assert.Error(t, err)
}

func TestParseKeyNames(t *testing.T) {
	for name, want := range map[string]key.Code{
		"enter":     key.Enter,
		"tab":       key.Tab,
		"backspace": key.Backspace,
		"escape":    key.Escape,
		"space":     key.Space,
		"q":         'q',
		";":         ';',
	} {
		got, err := ParseKey(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseKey("")
	assert.Error(t, err)
}
