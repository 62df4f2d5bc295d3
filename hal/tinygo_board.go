//go:build tinygo && baremetal && !expander

package hal

import (
	"machine"

	"keymatrix/key"
	"keymatrix/sink/ezkey"
)

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	pins   MatrixPins
	sink   key.Sink
}

// New returns a Pico (RP2040) HAL with the matrix wired directly to GPIO.
//
// UART0 on GP0 (TX) / GP1 (RX), 115200 8N1: diagnostics.
// UART1 on GP4 (TX) / GP5 (RX), 9600 8N1: EzKey HID event sink.
// Rows on GP2, GP3, GP6-GP9; columns on GP10-GP17; lock on GP18; enable on
// GP19.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	hid := machine.UART1
	hid.Configure(machine.UARTConfig{
		BaudRate: 9600,
		TX:       machine.GP4,
		RX:       machine.GP5,
	})

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	rowGP := [MatrixRows]machine.Pin{machine.GP2, machine.GP3, machine.GP6, machine.GP7, machine.GP8, machine.GP9}
	colGP := [MatrixCols]machine.Pin{machine.GP10, machine.GP11, machine.GP12, machine.GP13, machine.GP14, machine.GP15, machine.GP16, machine.GP17}

	pins := MatrixPins{
		Lock:   machinePin{pin: machine.GP18, name: "LOCK"},
		Enable: machinePin{pin: machine.GP19, name: "ENABLE"},
	}
	for i, gp := range rowGP {
		pins.Rows = append(pins.Rows, machinePin{pin: gp, name: rowName(i)})
	}
	for i, gp := range colGP {
		pins.Cols = append(pins.Cols, machinePin{pin: gp, name: colName(i)})
	}

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		led:    &pinLED{pin: ledPin},
		pins:   pins,
		sink:   ezkey.New(hid),
	}
}

func (h *tinyGoHAL) Logger() Logger     { return h.logger }
func (h *tinyGoHAL) LED() LED           { return h.led }
func (h *tinyGoHAL) Matrix() MatrixPins { return h.pins }
func (h *tinyGoHAL) Sink() key.Sink     { return h.sink }
