package scan

import (
	"fmt"

	"keymatrix/hal"
)

// RowDriver multiplexes the row lines. At most one line (a row or the lock
// line) is ever driven low; every other line floats as a pulled-up input.
// Columns are shared across rows, so two driven rows would make a column
// reading ambiguous.
type RowDriver struct {
	rows   []hal.GPIOPin
	lock   hal.GPIOPin
	active hal.GPIOPin
}

func NewRowDriver(pins hal.MatrixPins) (*RowDriver, error) {
	if len(pins.Rows) != hal.MatrixRows {
		return nil, fmt.Errorf("rowdriver: %d row pins, want %d", len(pins.Rows), hal.MatrixRows)
	}
	for i, p := range pins.Rows {
		if p == nil {
			return nil, fmt.Errorf("rowdriver: row pin %d is nil", i)
		}
	}
	if pins.Lock == nil {
		return nil, fmt.Errorf("rowdriver: lock pin is nil")
	}
	return &RowDriver{rows: pins.Rows, lock: pins.Lock}, nil
}

// Activate sinks the given row low, releasing whichever line was active.
func (d *RowDriver) Activate(row int) error {
	if row < 0 || row >= len(d.rows) {
		return fmt.Errorf("rowdriver: row %d out of range", row)
	}
	return d.switchTo(d.rows[row])
}

// ActivateLock sinks the lock line low for the lock probe. The caller must
// have deactivated the last scan row first; the lock switch and the last
// row overlap physically.
func (d *RowDriver) ActivateLock() error {
	return d.switchTo(d.lock)
}

// DeactivateAll floats every line.
func (d *RowDriver) DeactivateAll() error {
	for _, p := range d.rows {
		if err := float(p); err != nil {
			return err
		}
	}
	if err := float(d.lock); err != nil {
		return err
	}
	d.active = nil
	return nil
}

func (d *RowDriver) switchTo(p hal.GPIOPin) error {
	if d.active != nil && d.active != p {
		if err := float(d.active); err != nil {
			return err
		}
		d.active = nil
	}
	if err := p.Configure(hal.GPIOModeOutput, hal.GPIOPullNone); err != nil {
		return err
	}
	if err := p.Write(false); err != nil {
		return err
	}
	d.active = p
	return nil
}

func float(p hal.GPIOPin) error {
	return p.Configure(hal.GPIOModeInput, hal.GPIOPullUp)
}
