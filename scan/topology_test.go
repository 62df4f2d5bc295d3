package scan

import (
	"strings"
	"testing"

	"keymatrix/hal"
	"keymatrix/key"
)

func TestDefaultTopologyComplete(t *testing.T) {
	top := DefaultTopology()
	if err := top.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	// Every scanned cell maps to a real key.
	for r := 0; r < hal.MatrixRows; r++ {
		for c := 0; c < top.ActiveCols[r]; c++ {
			if top.Keys[r][c] == key.None {
				t.Fatalf("cell (%d,%d) unmapped", r, c)
			}
		}
	}
	if top.Keys[0][6] != 'q' {
		t.Fatalf("cell (0,6) = %s, want q", top.Keys[0][6])
	}
}

func TestValidateRejectsUnmappedCell(t *testing.T) {
	top := DefaultTopology()
	top.Keys[2][4] = key.None
	err := top.Validate()
	if err == nil || !strings.Contains(err.Error(), "(2,4)") {
		t.Fatalf("err = %v, want unmapped (2,4)", err)
	}
}

func TestValidateRejectsUnscannedMapping(t *testing.T) {
	top := DefaultTopology()
	top.Keys[hal.ModifierRow][6] = 'x'
	if top.Validate() == nil {
		t.Fatal("expected error for mapped cell beyond active columns")
	}
}

func TestValidateRejectsReservedCodes(t *testing.T) {
	top := DefaultTopology()
	top.Keys[1][1] = key.LeftShift
	if top.Validate() == nil {
		t.Fatal("modifiers must not appear in the key table")
	}
	top = DefaultTopology()
	top.Keys[1][1] = key.CapsLock
	if top.Validate() == nil {
		t.Fatal("caps lock must not appear in the key table")
	}
}

func TestValidateRejectsScanIntoModifierColumns(t *testing.T) {
	top := DefaultTopology()
	top.ActiveCols[hal.ModifierRow] = hal.ModShiftCol + 1
	if top.Validate() == nil {
		t.Fatal("modifier row must not scan the modifier columns")
	}
}

func TestLegendsIncludeModifiers(t *testing.T) {
	leg := DefaultTopology().Legends()
	if leg[hal.ModifierRow][hal.ModShiftCol] != key.LeftShift {
		t.Fatal("legend grid missing shift")
	}
	if leg[hal.ModifierRow][hal.ModFctnCol] != key.LeftAlt {
		t.Fatal("legend grid missing fctn")
	}
	if leg[0][6] != 'q' {
		t.Fatal("legend grid lost the key table")
	}
}
