package plantowerpms5003

import "time"

// Transport is a byte oriented duplex channel to the sensor.
// Reads and writes block for at most the configured read timeout.
type Transport interface {
	Open(baud int) error
	Close() error
	SetReadTimeout(timeout time.Duration)
	// Available returns the number of bytes that can be read without blocking
	Available() int
	// Peek returns the next byte without consuming it
	Peek() (byte, error)
	ReadByte() (byte, error)
	// Read fills buf, returning fewer bytes than requested when the read timeout expires
	Read(buf []byte) (int, error)
	Write(buf []byte) (int, error)
	// FlushInput discards all buffered input
	FlushInput()
}

// Clock provides monotonic time and delays; it has the shape of ratelimit.Clock
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time        { return time.Now() }
func (realClock) Sleep(d time.Duration) { time.Sleep(d) }
