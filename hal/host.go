//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"

	"keymatrix/key"
)

type hostHAL struct {
	logger *hostLogger
	led    *hostLED
	sim    *SimMatrix
	sink   key.Sink
}

// New returns a host HAL implementation backed by the simulated matrix.
func New() HAL { return newHostHAL(false) }

func newHostHAL(quiet bool) *hostHAL {
	logger := &hostLogger{w: os.Stdout, quiet: quiet}
	h := &hostHAL{
		logger: logger,
		led:    &hostLED{logger: logger},
		sim:    NewSimMatrix(),
	}
	h.sink = &key.LogSink{W: logger}
	return h
}

func (h *hostHAL) Logger() Logger     { return h.logger }
func (h *hostHAL) LED() LED           { return h.led }
func (h *hostHAL) Matrix() MatrixPins { return h.sim.Pins() }
func (h *hostHAL) Sink() key.Sink     { return h.sink }

// Sim exposes the simulated connector so the window and headless runners
// can actuate switches.
func (h *hostHAL) Sim() *SimMatrix { return h.sim }

type hostLogger struct {
	mu    sync.Mutex
	w     *os.File
	quiet bool
}

func (l *hostLogger) WriteLineString(s string) {
	if l.quiet {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	if l.quiet {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = true
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = false
}

func (l *hostLED) lit() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}
