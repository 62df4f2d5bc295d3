package scan

import (
	"fmt"
	"time"

	"keymatrix/hal"
	"keymatrix/key"
)

// Params tunes the debounce/typematic policy and the emission holds. The
// holds are deliberate blocking waits: the host needs time to register a
// press edge before release-all is sent. They are not the debounce
// mechanism.
type Params struct {
	// KeyHold is the settle time between a fresh press and release-all.
	KeyHold time.Duration
	// RepeatHold is the shorter settle time used for typematic repeats.
	RepeatHold time.Duration
	// SustainThreshold is how many consecutive identical readings a held
	// key needs before it starts repeating.
	SustainThreshold int
	// IdleThreshold is the staleness guard: once this many empty samples
	// accumulate, even a reading identical to the last emitted key counts
	// as a fresh press.
	IdleThreshold int
}

func DefaultParams() Params {
	return Params{
		KeyHold:          40 * time.Millisecond,
		RepeatHold:       15 * time.Millisecond,
		SustainThreshold: 150,
		IdleThreshold:    10000,
	}
}

// Controller owns the scan cycle. It is single-threaded: Cycle runs to
// completion and must not be called concurrently.
type Controller struct {
	top    *Topology
	rows   *RowDriver
	cols   *Sampler
	enable hal.GPIOPin
	sink   key.Sink
	log    hal.Logger
	led    hal.LED
	sleep  func(time.Duration)
	p      Params

	// Scan cycle state, persisted across cycles.
	last    key.Code
	sustain int
	idle    int

	// Last latched lock switch reading.
	lockOn bool
}

type Option func(*Controller)

// WithParams overrides the default policy parameters.
func WithParams(p Params) Option { return func(c *Controller) { c.p = p } }

// WithLogger attaches a best-effort diagnostic logger.
func WithLogger(l hal.Logger) Option { return func(c *Controller) { c.log = l } }

// WithLED attaches an activity LED raised for the duration of each
// emission hold.
func WithLED(l hal.LED) Option { return func(c *Controller) { c.led = l } }

// WithSleep replaces the blocking hold, so tests run instantly.
func WithSleep(f func(time.Duration)) Option { return func(c *Controller) { c.sleep = f } }

// New validates the topology, puts every line into its idle state and
// returns a ready controller. Configuration errors here are fatal; there
// is no runtime error taxonomy beyond pin access failures.
func New(pins hal.MatrixPins, top *Topology, sink key.Sink, opts ...Option) (*Controller, error) {
	if err := top.Validate(); err != nil {
		return nil, err
	}
	if sink == nil {
		return nil, fmt.Errorf("scan: nil sink")
	}
	if pins.Enable == nil {
		return nil, fmt.Errorf("scan: enable pin is nil")
	}

	rows, err := NewRowDriver(pins)
	if err != nil {
		return nil, err
	}
	cols, err := NewSampler(pins.Cols)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		top:    top,
		rows:   rows,
		cols:   cols,
		enable: pins.Enable,
		sink:   sink,
		sleep:  time.Sleep,
		p:      DefaultParams(),
	}
	for _, o := range opts {
		o(c)
	}

	if err := rows.DeactivateAll(); err != nil {
		return nil, err
	}
	if err := cols.Init(); err != nil {
		return nil, err
	}
	if err := pins.Enable.Configure(hal.GPIOModeInput, hal.GPIOPullUp); err != nil {
		return nil, err
	}
	return c, nil
}

// Cycle runs one complete polling pass: enable gate, modifier probe, the
// row-by-row scan, then the lock probe. The caller provides the loop.
func (c *Controller) Cycle() error {
	enabled, err := c.enable.Read()
	if err != nil {
		return err
	}
	if !enabled {
		// Deliberate safe mode. All state stays frozen.
		return nil
	}

	mod, err := c.detectModifier()
	if err != nil {
		return err
	}

	for r := 0; r < hal.MatrixRows; r++ {
		if err := c.scanRow(r, mod); err != nil {
			return err
		}
	}

	// The lock switch overlaps the last row physically; every scan line
	// must float before the lock line is driven.
	if err := c.rows.DeactivateAll(); err != nil {
		return err
	}
	return c.pollLock()
}

func (c *Controller) scanRow(row int, mod key.Code) error {
	if err := c.rows.Activate(row); err != nil {
		return err
	}
	hits, err := c.cols.SampleActive(c.top.ActiveCols[row])
	if err != nil {
		return err
	}
	if len(hits) == 0 {
		c.idle++
		return nil
	}
	for _, col := range hits {
		c.decide(c.top.Keys[row][col], mod)
	}
	return nil
}

// decide applies the debounce/typematic policy to one asserted cell.
//
// Release is never observed directly: a key is considered gone when a
// different key (or nothing) is read instead. Bounce-induced repeats of
// the same key coalesce into one logical hold; only crossing the sustain
// threshold turns the hold into typematic repeat.
func (c *Controller) decide(code, mod key.Code) {
	stale := c.idle >= c.p.IdleThreshold
	if code != c.last || stale {
		if stale && code == c.last {
			c.diag("key: idle refresh " + code.String())
		} else {
			c.diag("key: press " + code.String())
		}
		c.emit(code, mod, c.p.KeyHold)
		c.sustain = 0
		c.idle = 0
	} else {
		c.sustain++
		if c.sustain >= c.p.SustainThreshold {
			c.diag("key: repeat " + code.String())
			c.emit(code, mod, c.p.RepeatHold)
			c.idle = 0
		}
	}
	c.last = code
}

// emit performs the press / hold / release-all sequence. Release-all is a
// full release on purpose; it also drops the modifier and doubles as the
// debounce reset. Once started the sequence always runs to completion.
func (c *Controller) emit(code, mod key.Code, hold time.Duration) {
	if c.led != nil {
		c.led.High()
	}
	if mod != key.None {
		c.sink.Press(mod)
	}
	c.sink.Press(code)
	c.sleep(hold)
	c.sink.ReleaseAll()
	if c.led != nil {
		c.led.Low()
	}
}

func (c *Controller) diag(s string) {
	if c.log == nil {
		return
	}
	c.log.WriteLineString(s)
}
