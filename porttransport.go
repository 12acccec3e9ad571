package plantowerpms5003

import (
	"sync"
	"time"

	coreio "github.com/go-sensors/core/io"
	"github.com/pkg/errors"
	"go.bug.st/serial"
)

const pumpChunkSize = 64

// PortTransport adapts a go-sensors Port to a Transport.
// Once opened, a background reader copies everything the port produces into an input buffer so
// that buffered bytes can be counted and peeked at.
type PortTransport struct {
	port        coreio.Port
	readTimeout time.Duration

	mu      sync.Mutex
	input   []byte
	pumpErr error
	started bool
	arrived chan struct{}
	done    chan struct{}
}

// NewPortTransport wraps port; the port must already be open
func NewPortTransport(port coreio.Port) *PortTransport {
	return &PortTransport{
		port:        port,
		readTimeout: TimeoutPassive,
		arrived:     make(chan struct{}, 1),
		done:        make(chan struct{}),
	}
}

// Open applies baud when the port supports changing its mode and starts the background reader
func (t *PortTransport) Open(baud int) error {
	if p, ok := t.port.(interface{ SetMode(*serial.Mode) error }); ok {
		mode := GetDefaultSerialMode()
		mode.BaudRate = baud
		if err := p.SetMode(mode); err != nil {
			return errors.Wrap(err, "failed to set serial mode")
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.started {
		t.started = true
		go t.pump()
	}
	return nil
}

// Close closes the port, which also stops the background reader
func (t *PortTransport) Close() error {
	return t.port.Close()
}

// Done is closed once the background reader has stopped
func (t *PortTransport) Done() <-chan struct{} {
	return t.done
}

// Err returns the error that stopped the background reader
func (t *PortTransport) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pumpErr
}

func (t *PortTransport) pump() {
	defer close(t.done)
	chunk := make([]byte, pumpChunkSize)
	for {
		n, err := t.port.Read(chunk)
		t.mu.Lock()
		t.input = append(t.input, chunk[:n]...)
		if err != nil {
			t.pumpErr = err
		}
		t.mu.Unlock()

		if n > 0 {
			select {
			case t.arrived <- struct{}{}:
			default:
			}
		}
		if err != nil {
			return
		}
	}
}

func (t *PortTransport) SetReadTimeout(timeout time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.readTimeout = timeout
}

func (t *PortTransport) Available() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.input)
}

func (t *PortTransport) Peek() (byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.input) == 0 {
		return 0, ErrNoData
	}
	return t.input[0], nil
}

func (t *PortTransport) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := t.Read(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// Read blocks until buf is full, the read timeout expires or the port fails
func (t *PortTransport) Read(buf []byte) (int, error) {
	t.mu.Lock()
	timeout := t.readTimeout
	t.mu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	n := 0
	for {
		t.mu.Lock()
		copied := copy(buf[n:], t.input)
		t.input = t.input[copied:]
		n += copied
		pumpErr := t.pumpErr
		t.mu.Unlock()

		if n == len(buf) {
			return n, nil
		}
		if pumpErr != nil {
			return n, pumpErr
		}

		select {
		case <-t.arrived:
		case <-t.done:
		case <-timer.C:
			return n, errors.Errorf("timed out after reading %d of %d bytes", n, len(buf))
		}
	}
}

func (t *PortTransport) Write(buf []byte) (int, error) {
	return t.port.Write(buf)
}

// FlushInput drops buffered input, including the operating system buffer when the port exposes it
func (t *PortTransport) FlushInput() {
	if p, ok := t.port.(interface{ ResetInputBuffer() error }); ok {
		_ = p.ResetInputBuffer()
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.input = t.input[:0]
}
