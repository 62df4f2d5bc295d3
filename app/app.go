// Package app assembles the scanner from the board services a target
// provides. Both entrypoints, the desktop simulator and the TinyGo
// firmware, go through here so the scan behaviour is identical.
package app

import (
	"keymatrix/hal"
	"keymatrix/scan"
)

// Config carries the tunables an entrypoint may override before boot.
type Config struct {
	Params   scan.Params
	Topology *scan.Topology
}

func DefaultConfig() Config {
	return Config{
		Params:   scan.DefaultParams(),
		Topology: scan.DefaultTopology(),
	}
}

// New wires the default layout and timing onto h and returns the per-cycle
// step function.
func New(h hal.HAL) (func() error, error) {
	return NewWithConfig(h, DefaultConfig())
}

func NewWithConfig(h hal.HAL, cfg Config) (func() error, error) {
	if cfg.Topology == nil {
		cfg.Topology = scan.DefaultTopology()
	}
	if cfg.Params == (scan.Params{}) {
		cfg.Params = scan.DefaultParams()
	}
	c, err := scan.New(h.Matrix(), cfg.Topology, h.Sink(),
		scan.WithParams(cfg.Params),
		scan.WithLogger(h.Logger()),
		scan.WithLED(h.LED()),
	)
	if err != nil {
		return nil, err
	}
	return c.Cycle, nil
}

// Run boots the scanner and loops forever. This is the firmware entrypoint;
// it never returns. A boot failure is logged and the board parks, since
// there is nowhere to report the error to.
func Run(h hal.HAL) {
	step, err := New(h)
	if err != nil {
		if l := h.Logger(); l != nil {
			l.WriteLineString("boot: " + err.Error())
		}
		select {}
	}
	for {
		if err := step(); err != nil {
			if l := h.Logger(); l != nil {
				l.WriteLineString("scan: " + err.Error())
			}
		}
	}
}
