//go:build tinygo && baremetal

package hal

import "machine"

type machinePin struct {
	pin  machine.Pin
	name string
}

func (p machinePin) Name() string { return p.name }

func (p machinePin) Configure(mode GPIOMode, pull GPIOPull) error {
	var m machine.PinMode
	switch mode {
	case GPIOModeOutput:
		m = machine.PinOutput
	default:
		switch pull {
		case GPIOPullUp:
			m = machine.PinInputPullup
		case GPIOPullDown:
			m = machine.PinInputPulldown
		default:
			m = machine.PinInput
		}
	}
	p.pin.Configure(machine.PinConfig{Mode: m})
	return nil
}

func (p machinePin) Read() (bool, error) { return p.pin.Get(), nil }

func (p machinePin) Write(level bool) error {
	p.pin.Set(level)
	return nil
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

func rowName(i int) string { return "ROW" + string(rune('0'+i)) }
func colName(i int) string { return "COL" + string(rune('0'+i)) }
