package scan

import (
	"keymatrix/hal"
	"keymatrix/key"
)

// pollLock probes the latching lock switch once per cycle, after the last
// scan row has been deactivated. The host's own lock indicator cannot be
// read back, so a position change is translated into an edge-triggered
// caps-lock tap and latched locally.
func (c *Controller) pollLock() error {
	if err := c.rows.ActivateLock(); err != nil {
		return err
	}
	asserted, err := c.cols.Asserted(hal.LockCol)
	if ferr := c.rows.DeactivateAll(); err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}

	if asserted == c.lockOn {
		return nil
	}
	c.lockOn = asserted
	if asserted {
		c.diag("lock: on")
	} else {
		c.diag("lock: off")
	}
	c.sink.Press(key.CapsLock)
	c.sink.Release(key.CapsLock)
	return nil
}
