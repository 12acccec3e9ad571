package plantowerpms5003

import (
	"time"

	"github.com/pkg/errors"
)

// Session tracks the mode of one sensor and sequences commands and reads against its Transport.
// A Session is not safe for concurrent use.
type Session struct {
	transport Transport
	gpio      GPIO
	clock     Clock
	timeout   time.Duration

	pinReset     OptionalPin
	pinSleepMode OptionalPin

	modeActive      Tribool
	modeSleep       Tribool
	hasReceivedData bool
	hasSentCommand  bool
}

// SessionOption is a configured option that may be applied to a Session
type SessionOption struct {
	apply func(*Session)
}

// WithGPIO specifies the GPIO controller driving the optional reset and sleep lines
func WithGPIO(gpio GPIO) *SessionOption {
	return &SessionOption{
		apply: func(s *Session) {
			s.gpio = gpio
		},
	}
}

// WithClock specifies the clock used for delays and bounded waits
func WithClock(clock Clock) *SessionOption {
	return &SessionOption{
		apply: func(s *Session) {
			s.clock = clock
		},
	}
}

// NewSession creates a Session bound to transport, which may be nil and attached later
func NewSession(transport Transport, options ...*SessionOption) *Session {
	s := &Session{
		gpio:    noGPIO{},
		clock:   realClock{},
		timeout: TimeoutPassive,
	}
	for _, o := range options {
		o.apply(s)
	}
	s.AttachTransport(transport)
	return s
}

// AttachTransport replaces the transport and forgets everything known about the sensor
func (s *Session) AttachTransport(transport Transport) {
	s.clearState()
	s.transport = transport
}

func (s *Session) clearState() {
	s.hasReceivedData = false
	s.hasSentCommand = false
	s.modeActive = Unknown
	s.modeSleep = Unknown
	s.pinSleepMode = PinNone
	s.pinReset = PinNone
}

// Initialized reports whether a transport is attached
func (s *Session) Initialized() bool {
	return s.transport != nil
}

// Begin opens the transport; on failure the transport is detached
func (s *Session) Begin() error {
	if s.transport == nil {
		return ErrNoSerial
	}

	s.transport.SetReadTimeout(s.timeout)
	if err := s.transport.Open(BaudRate); err != nil {
		s.AttachTransport(nil)
		return errors.Wrap(err, "failed to open transport")
	}
	return nil
}

// End closes the transport
func (s *Session) End() error {
	if s.transport == nil {
		return nil
	}
	return s.transport.Close()
}

// SetTimeout sets the read timeout used for every transport read
func (s *Session) SetTimeout(timeout time.Duration) {
	s.timeout = timeout
	if s.transport != nil {
		s.transport.SetReadTimeout(timeout)
	}
}

// Timeout returns the read timeout
func (s *Session) Timeout() time.Duration {
	return s.timeout
}

// ModeActive is True when the sensor streams measurements, False when it waits for read commands
func (s *Session) ModeActive() Tribool {
	return s.modeActive
}

// ModeSleep is True while the sensor is asleep
func (s *Session) ModeSleep() Tribool {
	return s.modeSleep
}

// IsWorking reports whether a command was sent and a measurement received since the last reset
func (s *Session) IsWorking() bool {
	return s.hasReceivedData && s.hasSentCommand
}

// SetPinReset configures the GPIO line wired to the sensor RESET input; PinNone disables it
func (s *Session) SetPinReset(pin OptionalPin) error {
	return s.setupHardwarePin(&s.pinReset, pin)
}

// SetPinSleepMode configures the GPIO line wired to the sensor SET input; PinNone disables it
func (s *Session) SetPinSleepMode(pin OptionalPin) error {
	return s.setupHardwarePin(&s.pinSleepMode, pin)
}

// PinReset returns the configured reset line
func (s *Session) PinReset() OptionalPin {
	return s.pinReset
}

// PinSleepMode returns the configured sleep line
func (s *Session) PinSleepMode() OptionalPin {
	return s.pinSleepMode
}

func (s *Session) setupHardwarePin(pin *OptionalPin, newPin OptionalPin) error {
	if pin.IsSet() {
		if err := s.gpio.WritePin(uint8(*pin), true); err != nil {
			return errors.Wrapf(err, "failed to release pin %d", *pin)
		}
	}
	*pin = newPin
	if !newPin.IsSet() {
		return nil
	}

	// drive high before switching to output so the sensor never sees a low pulse
	if err := s.gpio.WritePin(uint8(newPin), true); err != nil {
		return errors.Wrapf(err, "failed to drive pin %d", newPin)
	}
	if err := s.gpio.SetPinMode(uint8(newPin), true); err != nil {
		return errors.Wrapf(err, "failed to configure pin %d", newPin)
	}
	if err := s.gpio.WritePin(uint8(newPin), true); err != nil {
		return errors.Wrapf(err, "failed to drive pin %d", newPin)
	}
	return nil
}

// Available aligns the input on a frame signature and returns the number of buffered bytes
func (s *Session) Available() int {
	if s.transport == nil {
		return 0
	}
	SkipToSignature(s.transport)
	return s.transport.Available()
}

// WaitForData polls the transport until n aligned bytes (or any byte when n is 0) are buffered or maxTime elapses
func (s *Session) WaitForData(maxTime time.Duration, n int) bool {
	if s.transport == nil {
		return false
	}

	ready := func() bool {
		if n == 0 {
			return s.transport.Available() > 0
		}
		return s.Available() >= n
	}

	start := s.clock.Now()
	for ; s.clock.Now().Sub(start) < maxTime; s.clock.Sleep(pollInterval) {
		if ready() {
			return true
		}
	}
	return ready()
}

// ReadMeasurement decodes the next buffered frame into m
func (s *Session) ReadMeasurement(m *Measurement) error {
	if s.transport == nil {
		return ErrNoSerial
	}

	SkipToSignature(s.transport)
	if err := DecodeFrame(s.transport, m[:]); err != nil {
		return err
	}
	s.hasReceivedData = true
	return nil
}

// SendCommand transmits cmd and updates the tracked mode when it was sent.
// Reset and, when a sleep line is configured, sleep and wakeup are carried out on the GPIO lines.
// After reset and wakeup the session waits up to wakeupGracePeriod for the sensor to resume.
func (s *Session) SendCommand(cmd Command, wakeupGracePeriod time.Duration) bool {
	if cmd == CmdReset {
		return s.hardwareReset(wakeupGracePeriod)
	}

	if (cmd == CmdSleep || cmd == CmdWakeup) && s.hardwareSleep(cmd, wakeupGracePeriod) {
		return true
	}

	if s.transport == nil {
		return false
	}

	frame := EncodeCommand(cmd)
	body, sum := frame[:len(frame)-wordSize], frame[len(frame)-wordSize:]
	if n, _ := s.transport.Write(body); n != len(body) {
		return false
	}

	// the sensor sometimes echoes stale command bytes
	if cmd.expectsAck() {
		s.transport.FlushInput()
	}

	if n, _ := s.transport.Write(sum); n != len(sum) {
		return false
	}

	if cmd.expectsAck() {
		// firmware before 2.x does not acknowledge
		SkipToSignature(s.transport)
		s.WaitForData(ackTimeout, ResponseFrameSize)
		s.transport.FlushInput()
	}

	if cmd == CmdWakeup && wakeupGracePeriod > 0 {
		s.WaitForData(wakeupGracePeriod, ResponseFrameSize)
		SkipToSignature(s.transport)
	}

	s.setMode(cmd)
	s.hasSentCommand = true
	return true
}

func (s *Session) setMode(cmd Command) {
	switch cmd {
	case CmdModePassive:
		s.modeActive = False
	case CmdModeActive:
		s.modeActive = True
	case CmdSleep:
		s.modeSleep = True
	case CmdWakeup, CmdReset:
		s.modeSleep = False
		s.modeActive = True
	}
}

func (s *Session) hardwareReset(wakeupGracePeriod time.Duration) bool {
	if !s.pinReset.IsSet() || s.transport == nil {
		return false
	}

	if err := s.gpio.WritePin(uint8(s.pinReset), false); err != nil {
		return false
	}
	s.clock.Sleep(resetDuration)
	s.transport.FlushInput()
	if err := s.gpio.WritePin(uint8(s.pinReset), true); err != nil {
		return false
	}

	s.setMode(CmdReset)
	s.hasReceivedData = false
	s.hasSentCommand = false
	if wakeupGracePeriod > 0 {
		s.WaitForData(wakeupGracePeriod, FrameSize)
		SkipToSignature(s.transport)
	}
	return true
}

func (s *Session) hardwareSleep(cmd Command, wakeupGracePeriod time.Duration) bool {
	if !s.pinSleepMode.IsSet() || s.transport == nil {
		return false
	}

	if err := s.gpio.WritePin(uint8(s.pinSleepMode), cmd != CmdSleep); err != nil {
		return false
	}
	s.clock.Sleep(resetDuration)
	s.transport.FlushInput()

	s.setMode(cmd)
	if cmd == CmdWakeup && wakeupGracePeriod > 0 {
		s.WaitForData(wakeupGracePeriod, FrameSize)
		SkipToSignature(s.transport)
	}
	return true
}
