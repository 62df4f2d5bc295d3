package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keymatrix/hal"
	"keymatrix/key"
	"keymatrix/scan"
)

type stubHAL struct {
	m    *hal.SimMatrix
	sink *key.CaptureSink
}

func (s *stubHAL) Logger() hal.Logger    { return nil }
func (s *stubHAL) LED() hal.LED          { return nil }
func (s *stubHAL) Matrix() hal.MatrixPins { return s.m.Pins() }
func (s *stubHAL) Sink() key.Sink        { return s.sink }

func TestNewWiresDefaultLayout(t *testing.T) {
	h := &stubHAL{m: hal.NewSimMatrix(), sink: &key.CaptureSink{}}
	step, err := New(h)
	require.NoError(t, err)

	h.m.SetKey(0, 6, true) // 'q'
	require.NoError(t, step())

	evs := h.sink.Take()
	require.Len(t, evs, 2)
	assert.Equal(t, key.Event{Kind: key.EvPress, Code: 'q'}, evs[0])
	assert.Equal(t, key.Event{Kind: key.EvReleaseAll}, evs[1])
}

func TestNewWithConfigFillsZeroValues(t *testing.T) {
	h := &stubHAL{m: hal.NewSimMatrix(), sink: &key.CaptureSink{}}
	step, err := NewWithConfig(h, Config{})
	require.NoError(t, err)
	require.NoError(t, step())
}

func TestNewWithConfigCustomParams(t *testing.T) {
	h := &stubHAL{m: hal.NewSimMatrix(), sink: &key.CaptureSink{}}
	p := scan.DefaultParams()
	p.KeyHold = time.Millisecond
	_, err := NewWithConfig(h, Config{Params: p})
	require.NoError(t, err)
}

func TestNewWithConfigRejectsBrokenTopology(t *testing.T) {
	h := &stubHAL{m: hal.NewSimMatrix(), sink: &key.CaptureSink{}}
	top := scan.DefaultTopology()
	top.Keys[0][0] = key.None // scanned cell without a legend
	_, err := NewWithConfig(h, Config{Topology: top})
	assert.Error(t, err)
}
