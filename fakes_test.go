package plantowerpms5003_test

import (
	"io"
	"time"
)

// fakeTransport serves input from memory and records everything written
type fakeTransport struct {
	input      []byte
	written    []byte
	writeLimit int
	flushes    int
	opened     bool
	openErr    error
	baud       int
	timeout    time.Duration
	onWrite    func(t *fakeTransport, buf []byte)
}

func newFakeTransport(input ...[]byte) *fakeTransport {
	t := &fakeTransport{writeLimit: -1}
	for _, in := range input {
		t.input = append(t.input, in...)
	}
	return t
}

func (t *fakeTransport) feed(buf ...byte) {
	t.input = append(t.input, buf...)
}

func (t *fakeTransport) Open(baud int) error {
	if t.openErr != nil {
		return t.openErr
	}
	t.opened = true
	t.baud = baud
	return nil
}

func (t *fakeTransport) Close() error {
	t.opened = false
	return nil
}

func (t *fakeTransport) SetReadTimeout(timeout time.Duration) {
	t.timeout = timeout
}

func (t *fakeTransport) Available() int {
	return len(t.input)
}

func (t *fakeTransport) Peek() (byte, error) {
	if len(t.input) == 0 {
		return 0, io.EOF
	}
	return t.input[0], nil
}

func (t *fakeTransport) ReadByte() (byte, error) {
	if len(t.input) == 0 {
		return 0, io.EOF
	}
	b := t.input[0]
	t.input = t.input[1:]
	return b, nil
}

func (t *fakeTransport) Read(buf []byte) (int, error) {
	n := copy(buf, t.input)
	t.input = t.input[n:]
	if n < len(buf) {
		return n, io.ErrUnexpectedEOF
	}
	return n, nil
}

func (t *fakeTransport) Write(buf []byte) (int, error) {
	n := len(buf)
	if t.writeLimit >= 0 {
		if n > t.writeLimit {
			n = t.writeLimit
		}
		t.writeLimit -= n
	}
	t.written = append(t.written, buf[:n]...)
	if t.onWrite != nil {
		t.onWrite(t, buf[:n])
	}
	if n < len(buf) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

func (t *fakeTransport) FlushInput() {
	t.flushes++
	t.input = t.input[:0]
}

// fakeClock advances only when slept on
type fakeClock struct {
	now     time.Time
	slept   time.Duration
	onSleep func(total time.Duration)
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.now = c.now.Add(d)
	c.slept += d
	if c.onSleep != nil {
		c.onSleep(c.slept)
	}
}
