package scan

import (
	"testing"

	"keymatrix/hal"
	"keymatrix/key"
)

func TestModifierDetection(t *testing.T) {
	r := newRig(t)

	mod, err := r.c.detectModifier()
	if err != nil {
		t.Fatalf("detectModifier: %v", err)
	}
	if mod != key.None {
		t.Fatalf("mod = %s, want none", mod)
	}

	r.m.SetKey(hal.ModifierRow, hal.ModCtrlCol, true)
	mod, _ = r.c.detectModifier()
	if mod != key.LeftCtrl {
		t.Fatalf("mod = %s, want ctrl", mod)
	}

	r.m.SetKey(hal.ModifierRow, hal.ModCtrlCol, false)
	r.m.SetKey(hal.ModifierRow, hal.ModFctnCol, true)
	mod, _ = r.c.detectModifier()
	if mod != key.LeftAlt {
		t.Fatalf("mod = %s, want fctn", mod)
	}
}

// Shift wins when the hardware asserts two modifier lines at once.
func TestModifierPriority(t *testing.T) {
	r := newRig(t)
	r.m.SetKey(hal.ModifierRow, hal.ModShiftCol, true)
	r.m.SetKey(hal.ModifierRow, hal.ModCtrlCol, true)

	mod, err := r.c.detectModifier()
	if err != nil {
		t.Fatalf("detectModifier: %v", err)
	}
	if mod != key.LeftShift {
		t.Fatalf("mod = %s, want shift", mod)
	}
}

// A held modifier alone produces no emission; modifiers only ride along
// with a regular key.
func TestModifierAloneIsSilent(t *testing.T) {
	r := newRig(t)
	r.m.SetKey(hal.ModifierRow, hal.ModShiftCol, true)
	r.cycle(t)
	if evs := r.sink.Take(); len(evs) != 0 {
		t.Fatalf("unexpected events: %v", evs)
	}
}
