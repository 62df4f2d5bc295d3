package scan

import (
	"testing"

	"keymatrix/hal"
)

func TestSampleActiveReadsClosedSwitches(t *testing.T) {
	m := hal.NewSimMatrix()
	pins := m.Pins()
	d, err := NewRowDriver(pins)
	if err != nil {
		t.Fatalf("NewRowDriver: %v", err)
	}
	s, err := NewSampler(pins.Cols)
	if err != nil {
		t.Fatalf("NewSampler: %v", err)
	}
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	m.SetKey(2, 1, true)
	m.SetKey(2, 6, true)
	m.SetKey(3, 0, true) // different row, must not leak

	if err := d.Activate(2); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	hits, err := s.SampleActive(hal.MatrixCols)
	if err != nil {
		t.Fatalf("SampleActive: %v", err)
	}
	if len(hits) != 2 || hits[0] != 1 || hits[1] != 6 {
		t.Fatalf("hits = %v, want [1 6]", hits)
	}
}

// The active-column limit keeps the modifier columns out of the regular
// scan of the shared row.
func TestSampleActiveHonoursLimit(t *testing.T) {
	m := hal.NewSimMatrix()
	pins := m.Pins()
	d, _ := NewRowDriver(pins)
	s, _ := NewSampler(pins.Cols)
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	m.SetKey(hal.ModifierRow, hal.ModShiftCol, true)
	if err := d.Activate(hal.ModifierRow); err != nil {
		t.Fatalf("Activate: %v", err)
	}

	hits, err := s.SampleActive(hal.ModShiftCol)
	if err != nil {
		t.Fatalf("SampleActive: %v", err)
	}
	if len(hits) != 0 {
		t.Fatalf("hits = %v, want none below the modifier columns", hits)
	}

	on, err := s.Asserted(hal.ModShiftCol)
	if err != nil {
		t.Fatalf("Asserted: %v", err)
	}
	if !on {
		t.Fatal("single-column probe must still see the modifier switch")
	}
}
