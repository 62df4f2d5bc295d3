// Package scan implements the matrix-scan engine: row multiplexing, column
// sampling, modifier and lock detection, and the debounce/typematic-repeat
// policy that decides which key events reach the sink.
package scan

import (
	"fmt"

	"keymatrix/hal"
	"keymatrix/key"
)

// Topology is the immutable wiring description: which symbolic key sits at
// each matrix cell and how many columns each row actually wires. The last
// row wires fewer columns; its remaining columns carry the modifier
// switches and must never be scanned as regular keys.
type Topology struct {
	Keys       [hal.MatrixRows][hal.MatrixCols]key.Code
	ActiveCols [hal.MatrixRows]int
}

// Validate checks the topology for configuration errors. Every scanned cell
// must map to a real key; cells beyond a row's active count must be empty;
// modifier and lock codes never appear in the table. A failure here is
// fatal at startup, not a runtime condition.
func (t *Topology) Validate() error {
	if t == nil {
		return fmt.Errorf("topology: nil")
	}
	if t.ActiveCols[hal.ModifierRow] > hal.ModShiftCol {
		return fmt.Errorf("topology: row %d scans into the modifier columns", hal.ModifierRow)
	}
	for r := 0; r < hal.MatrixRows; r++ {
		ac := t.ActiveCols[r]
		if ac < 0 || ac > hal.MatrixCols {
			return fmt.Errorf("topology: row %d: active column count %d out of range", r, ac)
		}
		for c := 0; c < hal.MatrixCols; c++ {
			code := t.Keys[r][c]
			if c < ac {
				if code == key.None {
					return fmt.Errorf("topology: cell (%d,%d) scanned but unmapped", r, c)
				}
				if code.Modifier() || code == key.CapsLock {
					return fmt.Errorf("topology: cell (%d,%d) maps reserved key %s", r, c, code)
				}
			} else if code != key.None {
				return fmt.Errorf("topology: cell (%d,%d) mapped but never scanned", r, c)
			}
		}
	}
	return nil
}

// Legends returns the full connector picture for the simulator window:
// the key table plus the modifier switches on their reserved columns.
func (t *Topology) Legends() [][]key.Code {
	out := make([][]key.Code, hal.MatrixRows)
	for r := 0; r < hal.MatrixRows; r++ {
		row := make([]key.Code, hal.MatrixCols)
		copy(row, t.Keys[r][:])
		out[r] = row
	}
	out[hal.ModifierRow][hal.ModShiftCol] = key.LeftShift
	out[hal.ModifierRow][hal.ModCtrlCol] = key.LeftCtrl
	out[hal.ModifierRow][hal.ModFctnCol] = key.LeftAlt
	return out
}
