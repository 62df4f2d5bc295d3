package scan

import (
	"keymatrix/hal"
	"keymatrix/key"
)

// Probe order fixes the modifier priority: shift wins over ctrl wins over
// fctn. The keyboard normally allows only one modifier line at a time; if
// the hardware asserts several, the first hit wins and the rest are
// silently ignored.
var modifierProbe = [...]struct {
	col  int
	code key.Code
}{
	{hal.ModShiftCol, key.LeftShift},
	{hal.ModCtrlCol, key.LeftCtrl},
	{hal.ModFctnCol, key.LeftAlt},
}

// detectModifier probes the modifier columns on the shared modifier row and
// returns at most one active modifier for the whole cycle. It runs before
// the row-by-row scan; the row it activates is the same one the final scan
// pass drives, so the two probes are electrically compatible.
func (c *Controller) detectModifier() (key.Code, error) {
	if err := c.rows.Activate(hal.ModifierRow); err != nil {
		return key.None, err
	}
	for _, m := range modifierProbe {
		hit, err := c.cols.Asserted(m.col)
		if err != nil {
			return key.None, err
		}
		if hit {
			return m.code, nil
		}
	}
	return key.None, nil
}
