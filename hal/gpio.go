package hal

// GPIOMode selects whether a pin is an input or output.
type GPIOMode uint8

const (
	GPIOModeInput GPIOMode = iota
	GPIOModeOutput
)

// GPIOPull selects the pull resistor configuration.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
	GPIOPullDown
)

// GPIOPin is a single digital IO pin.
//
// Matrix lines spend most of their life as pulled-up inputs; a row line is
// reconfigured to a low-driven output only while it is being scanned.
// Reconfiguration is not guaranteed glitch-free; callers sequence direction
// changes before sampling.
type GPIOPin interface {
	Name() string
	Configure(mode GPIOMode, pull GPIOPull) error
	Read() (level bool, err error)
	Write(level bool) error
}
