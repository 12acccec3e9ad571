package plantowerpms5003

import "strconv"

// OptionalPin is a GPIO pin number or PinNone when the line is not wired
type OptionalPin uint8

// PinNone marks an unconfigured pin; it is distinct from every usable pin number
const PinNone OptionalPin = 0xFF

// IsSet reports whether a pin is configured
func (p OptionalPin) IsSet() bool {
	return p != PinNone
}

func (p OptionalPin) String() string {
	if !p.IsSet() {
		return "none"
	}
	return strconv.Itoa(int(p))
}

// GPIO drives the optional reset and sleep lines of the sensor
type GPIO interface {
	SetPinMode(pin uint8, output bool) error
	WritePin(pin uint8, high bool) error
}

type noGPIO struct{}

func (noGPIO) SetPinMode(uint8, bool) error { return nil }
func (noGPIO) WritePin(uint8, bool) error   { return nil }
