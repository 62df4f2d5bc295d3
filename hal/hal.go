// Package hal is the only contact point between the scanner and real
// hardware. It describes pins, the board wiring, and the platform services
// (diagnostics, LED, event sink) each target provides.
package hal

import (
	"errors"

	"keymatrix/key"
)

// Logger writes newline-delimited diagnostic lines. Best effort: callers
// must tolerate a nil logger.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// Matrix wiring. The connector carries 6 row lines, 8 column lines, one
// lock-switch line and one enable line. The last regular row doubles as the
// modifier row; its top three columns carry the modifier switches and are
// excluded from the regular scan.
const (
	MatrixRows = 6
	MatrixCols = 8

	ModifierRow = MatrixRows - 1
	ModShiftCol = 5
	ModCtrlCol  = 6
	ModFctnCol  = 7

	// The lock switch shares column 0 with the matrix.
	LockCol = 0
)

// MatrixPins groups the lines of the keyboard connector.
type MatrixPins struct {
	Rows   []GPIOPin
	Cols   []GPIOPin
	Lock   GPIOPin
	Enable GPIOPin
}

// HAL provides the per-target board services.
type HAL interface {
	Logger() Logger
	LED() LED
	Matrix() MatrixPins
	Sink() key.Sink
}
