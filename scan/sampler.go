package scan

import (
	"fmt"

	"keymatrix/hal"
)

// Sampler reads the column lines for the currently active row. Columns are
// asserted low: a closed switch sinks the line through the driven row.
type Sampler struct {
	cols []hal.GPIOPin
	hits []int
}

func NewSampler(cols []hal.GPIOPin) (*Sampler, error) {
	if len(cols) != hal.MatrixCols {
		return nil, fmt.Errorf("sampler: %d column pins, want %d", len(cols), hal.MatrixCols)
	}
	for i, p := range cols {
		if p == nil {
			return nil, fmt.Errorf("sampler: column pin %d is nil", i)
		}
	}
	return &Sampler{cols: cols, hits: make([]int, 0, hal.MatrixCols)}, nil
}

// Init configures every column as a pulled-up input. Done once at startup.
func (s *Sampler) Init() error {
	for _, p := range s.cols {
		if err := p.Configure(hal.GPIOModeInput, hal.GPIOPullUp); err != nil {
			return err
		}
	}
	return nil
}

// SampleActive reads the first n columns and returns the asserted indices.
// The returned slice is reused across calls.
func (s *Sampler) SampleActive(n int) ([]int, error) {
	if n > len(s.cols) {
		n = len(s.cols)
	}
	s.hits = s.hits[:0]
	for c := 0; c < n; c++ {
		level, err := s.cols[c].Read()
		if err != nil {
			return nil, err
		}
		if !level {
			s.hits = append(s.hits, c)
		}
	}
	return s.hits, nil
}

// Asserted probes a single column; used for the modifier and lock reads.
func (s *Sampler) Asserted(col int) (bool, error) {
	if col < 0 || col >= len(s.cols) {
		return false, fmt.Errorf("sampler: column %d out of range", col)
	}
	level, err := s.cols[col].Read()
	if err != nil {
		return false, err
	}
	return !level, nil
}
