//go:build tinygo && baremetal && expander

package hal

import (
	"machine"

	"tinygo.org/x/drivers/mcp23017"

	"keymatrix/key"
	"keymatrix/sink/ezkey"
)

// Expander pin plan: the MCP23017's sixteen pins carry the whole connector.
const (
	xpRowBase = 0  // rows 0-5
	xpColBase = 6  // columns 6-13
	xpLockPin = 14
	xpEnaPin  = 15
)

type expanderHAL struct {
	logger *uartLogger
	led    *pinLED
	pins   MatrixPins
	sink   key.Sink
}

// New returns a Pico HAL with the matrix behind an MCP23017 port expander
// on I2C0 (GP4 SDA / GP5 SCL, address 0x20).
//
// UART0 on GP0 (TX) / GP1 (RX), 115200 8N1: diagnostics.
// UART1 on GP8 (TX) / GP9 (RX), 9600 8N1: EzKey HID event sink.
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
		TX:       machine.GP8,
		RX:       machine.GP9,
	})

	machine.I2C0.Configure(machine.I2CConfig{
		SDA: machine.GP4,
		SCL: machine.GP5,
	})

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led := &pinLED{pin: ledPin}
	logger := &uartLogger{uart: uart}

	dev, err := mcp23017.NewI2C(machine.I2C0, 0x20)
	if err != nil {
		logger.WriteLineString("boot: expander: " + err.Error())
		return &expanderHAL{logger: logger, led: led, sink: ezkey.New(hid)}
	}

	pins := MatrixPins{
		Lock:   &expanderPin{pin: dev.Pin(xpLockPin), name: "LOCK"},
		Enable: &expanderPin{pin: dev.Pin(xpEnaPin), name: "ENABLE"},
	}
	for i := 0; i < MatrixRows; i++ {
		pins.Rows = append(pins.Rows, &expanderPin{pin: dev.Pin(xpRowBase + i), name: rowName(i)})
	}
	for i := 0; i < MatrixCols; i++ {
		pins.Cols = append(pins.Cols, &expanderPin{pin: dev.Pin(xpColBase + i), name: colName(i)})
	}

	return &expanderHAL{
		logger: logger,
		led:    led,
		pins:   pins,
		sink:   ezkey.New(hid),
	}
}

func (h *expanderHAL) Logger() Logger     { return h.logger }
func (h *expanderHAL) LED() LED           { return h.led }
func (h *expanderHAL) Matrix() MatrixPins { return h.pins }
func (h *expanderHAL) Sink() key.Sink     { return h.sink }

type expanderPin struct {
	pin  mcp23017.Pin
	name string
}

func (p *expanderPin) Name() string { return p.name }

func (p *expanderPin) Configure(mode GPIOMode, pull GPIOPull) error {
	var m mcp23017.PinMode
	switch mode {
	case GPIOModeOutput:
		m = mcp23017.Output
	default:
		m = mcp23017.Input
		if pull == GPIOPullUp {
			m |= mcp23017.Pullup
		}
	}
	return p.pin.SetMode(m)
}

func (p *expanderPin) Read() (bool, error) { return p.pin.Get() }

func (p *expanderPin) Write(level bool) error { return p.pin.Set(level) }
