package hal

import (
	"fmt"
	"sync"
)

// SimMatrix is an electrical simulation of the keyboard connector: a
// diode-less crossbar of switches plus the lock line and the enable line.
//
// A column line idles high (external pull-up) and reads low exactly while
// some driven-low line has a closed switch onto that column. The lock
// switch is modelled as one extra line with a single switch on LockCol.
//
// The simulation also records whether two lines were ever driven at the
// same instant, which the scanner's sequencing must never allow.
type SimMatrix struct {
	mu      sync.Mutex
	closed  [MatrixRows + 1][MatrixCols]bool // index MatrixRows is the lock line
	driven  [MatrixRows + 1]bool
	overlap bool
	enable  bool

	rows    [MatrixRows]*simLinePin
	cols    [MatrixCols]*simColPin
	lock    *simLinePin
	enaPin  *simEnablePin
}

// NewSimMatrix returns a simulated connector with all switches open, all
// lines floating and the enable line pulled high.
func NewSimMatrix() *SimMatrix {
	m := &SimMatrix{enable: true}
	for r := 0; r < MatrixRows; r++ {
		m.rows[r] = &simLinePin{m: m, line: r, name: fmt.Sprintf("ROW%d", r)}
	}
	for c := 0; c < MatrixCols; c++ {
		m.cols[c] = &simColPin{m: m, col: c, name: fmt.Sprintf("COL%d", c)}
	}
	m.lock = &simLinePin{m: m, line: MatrixRows, name: "LOCK"}
	m.enaPin = &simEnablePin{m: m, name: "ENABLE"}
	return m
}

// Pins returns the connector as seen by the scanner.
func (m *SimMatrix) Pins() MatrixPins {
	p := MatrixPins{Lock: m.lock, Enable: m.enaPin}
	for r := 0; r < MatrixRows; r++ {
		p.Rows = append(p.Rows, m.rows[r])
	}
	for c := 0; c < MatrixCols; c++ {
		p.Cols = append(p.Cols, m.cols[c])
	}
	return p
}

// SetKey closes or opens the switch at (row, col).
func (m *SimMatrix) SetKey(row, col int, down bool) {
	if row < 0 || row >= MatrixRows || col < 0 || col >= MatrixCols {
		return
	}
	m.mu.Lock()
	m.closed[row][col] = down
	m.mu.Unlock()
}

// SetLock latches the lock switch open or closed.
func (m *SimMatrix) SetLock(on bool) {
	m.mu.Lock()
	m.closed[MatrixRows][LockCol] = on
	m.mu.Unlock()
}

// LockOn reports the latched lock switch position.
func (m *SimMatrix) LockOn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed[MatrixRows][LockCol]
}

// SetEnabled drives the enable line high (scanning allowed) or low.
func (m *SimMatrix) SetEnabled(on bool) {
	m.mu.Lock()
	m.enable = on
	m.mu.Unlock()
}

// Enabled reports the enable line level.
func (m *SimMatrix) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enable
}

// DrivenLine returns the index of the line currently driven low, MatrixRows
// for the lock line, or -1 when every line floats.
func (m *SimMatrix) DrivenLine() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.driven {
		if m.driven[i] {
			return i
		}
	}
	return -1
}

// OverlapSeen reports whether two lines were ever driven simultaneously.
func (m *SimMatrix) OverlapSeen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.overlap
}

// colLevel computes the electrical level of a column line.
func (m *SimMatrix) colLevel(col int) bool {
	for line := 0; line <= MatrixRows; line++ {
		if m.driven[line] && m.closed[line][col] {
			return false
		}
	}
	return true
}

// setDriven updates a line's drive state and checks the overlap invariant.
func (m *SimMatrix) setDriven(line int, driven bool) {
	m.driven[line] = driven
	if !driven {
		return
	}
	n := 0
	for i := range m.driven {
		if m.driven[i] {
			n++
		}
	}
	if n > 1 {
		m.overlap = true
	}
}

// simLinePin is a row or lock line: floats as a pulled-up input, sinks low
// as an output.
type simLinePin struct {
	m    *SimMatrix
	line int
	name string

	mode  GPIOMode
	level bool
}

func (p *simLinePin) Name() string { return p.name }

func (p *simLinePin) Configure(mode GPIOMode, pull GPIOPull) error {
	if mode == GPIOModeInput && pull == GPIOPullDown {
		return fmt.Errorf("gpio: pin %s: pull-down unsupported", p.name)
	}
	p.m.mu.Lock()
	defer p.m.mu.Unlock()
	p.mode = mode
	p.level = true // undriven until written
	p.m.setDriven(p.line, false)
	return nil
}

func (p *simLinePin) Read() (bool, error) {
	p.m.mu.Lock()
	defer p.m.mu.Unlock()
	if p.mode == GPIOModeOutput {
		return p.level, nil
	}
	return true, nil // pulled up
}

func (p *simLinePin) Write(level bool) error {
	p.m.mu.Lock()
	defer p.m.mu.Unlock()
	if p.mode != GPIOModeOutput {
		return fmt.Errorf("gpio: pin %s: not in output mode", p.name)
	}
	p.level = level
	p.m.setDriven(p.line, !level)
	return nil
}

// simColPin is a column sense line.
type simColPin struct {
	m    *SimMatrix
	col  int
	name string

	mode GPIOMode
}

func (p *simColPin) Name() string { return p.name }

func (p *simColPin) Configure(mode GPIOMode, pull GPIOPull) error {
	if mode != GPIOModeInput {
		return fmt.Errorf("gpio: pin %s: only input supported", p.name)
	}
	p.m.mu.Lock()
	defer p.m.mu.Unlock()
	p.mode = mode
	return nil
}

func (p *simColPin) Read() (bool, error) {
	p.m.mu.Lock()
	defer p.m.mu.Unlock()
	if p.mode != GPIOModeInput {
		return false, fmt.Errorf("gpio: pin %s: not configured for input", p.name)
	}
	return p.m.colLevel(p.col), nil
}

func (p *simColPin) Write(bool) error {
	return fmt.Errorf("gpio: pin %s: output unsupported", p.name)
}

// simEnablePin is the enable gate input, pulled high by default.
type simEnablePin struct {
	m    *SimMatrix
	name string
}

func (p *simEnablePin) Name() string { return p.name }

func (p *simEnablePin) Configure(mode GPIOMode, pull GPIOPull) error {
	if mode != GPIOModeInput {
		return fmt.Errorf("gpio: pin %s: only input supported", p.name)
	}
	return nil
}

func (p *simEnablePin) Read() (bool, error) {
	p.m.mu.Lock()
	defer p.m.mu.Unlock()
	return p.m.enable, nil
}

func (p *simEnablePin) Write(bool) error {
	return fmt.Errorf("gpio: pin %s: output unsupported", p.name)
}
