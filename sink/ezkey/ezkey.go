// Package ezkey delivers key events as Bluefruit EzKey style HID reports
// over a byte stream (a UART on real hardware): one modifier byte, one
// reserved byte, then up to six key usages.
package ezkey

import (
	"io"

	"keymatrix/key"
)

const maxKeys = 6

// Device tracks the held-key set and writes a fresh report on every change.
type Device struct {
	w    io.Writer
	mod  uint8
	keys [maxKeys]uint8
	n    int
}

func New(w io.Writer) *Device {
	return &Device{w: w}
}

func (d *Device) Press(c key.Code) {
	if bit := key.ModifierBit(c); bit != 0 {
		d.mod |= bit
		d.send()
		return
	}
	u := key.Usage(c)
	if u == 0 {
		return
	}
	for i := 0; i < d.n; i++ {
		if d.keys[i] == u {
			return
		}
	}
	if d.n == maxKeys {
		return
	}
	d.keys[d.n] = u
	d.n++
	d.send()
}

func (d *Device) Release(c key.Code) {
	if bit := key.ModifierBit(c); bit != 0 {
		d.mod &^= bit
		d.send()
		return
	}
	u := key.Usage(c)
	if u == 0 {
		return
	}
	for i := 0; i < d.n; i++ {
		if d.keys[i] != u {
			continue
		}
		copy(d.keys[i:], d.keys[i+1:d.n])
		d.n--
		d.keys[d.n] = 0
		d.send()
		return
	}
}

func (d *Device) ReleaseAll() {
	d.mod = 0
	d.n = 0
	d.keys = [maxKeys]uint8{}
	d.send()
}

// Report returns the 8-byte report for the current state.
func (d *Device) Report() [8]byte {
	var r [8]byte
	r[0] = d.mod
	for i := 0; i < d.n; i++ {
		r[i+2] = d.keys[i]
	}
	return r
}

func (d *Device) send() {
	if d.w == nil {
		return
	}
	r := d.Report()
	_, _ = d.w.Write(r[:])
}
