package plantowerpms5003

import (
	"time"

	"go.bug.st/serial"
)

const (
	// DefaultReconnectTimeout is the default duration to wait before reconnecting after a recoverable error
	DefaultReconnectTimeout time.Duration = 5 * time.Second
	// DefaultReadInterval is the default period between read commands in passive mode
	DefaultReadInterval time.Duration = 1 * time.Second

	// BaudRate is the fixed UART speed of the sensor
	BaudRate = 9600
	// TimeoutPassive covers the transfer of one frame at 9600 bps, doubled
	TimeoutPassive time.Duration = 68 * time.Millisecond
	// TimeoutActive is the read timeout while the sensor streams frames on its own schedule
	TimeoutActive time.Duration = 1000 * time.Millisecond
	// WakeupTime is the time the sensor needs to resume sending data after reset or wakeup
	WakeupTime time.Duration = 2500 * time.Millisecond

	ackTimeout    time.Duration = 30 * time.Millisecond
	resetDuration time.Duration = 33 * time.Millisecond
	pollInterval  time.Duration = 1 * time.Millisecond
)

// GetDefaultSerialMode returns the UART configuration of the sensor: 9600 baud, 8N1
func GetDefaultSerialMode() *serial.Mode {
	return &serial.Mode{
		BaudRate: BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
}
