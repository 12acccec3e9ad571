package plantowerpms5003

import (
	coreio "github.com/go-sensors/core/io"
	"github.com/pkg/errors"
	"go.bug.st/serial"
)

// SerialPortFactory opens a named serial device
type SerialPortFactory struct {
	name string
	mode *serial.Mode
}

// NewSerialPortFactory creates a PortFactory for the device at name; a nil mode uses GetDefaultSerialMode
func NewSerialPortFactory(name string, mode *serial.Mode) *SerialPortFactory {
	if mode == nil {
		mode = GetDefaultSerialMode()
	}
	return &SerialPortFactory{
		name: name,
		mode: mode,
	}
}

// Open opens the serial device
func (f *SerialPortFactory) Open() (coreio.Port, error) {
	port, err := serial.Open(f.name, f.mode)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open serial device %s", f.name)
	}
	return port, nil
}

var _ coreio.PortFactory = (*SerialPortFactory)(nil)
