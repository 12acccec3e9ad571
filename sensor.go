package plantowerpms5003

import (
	"context"
	"time"

	coreio "github.com/go-sensors/core/io"
	"github.com/juju/ratelimit"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Sensor represents a configured Plantower PMS5003 particulate matter sensor
type Sensor struct {
	measurements     chan *Measurement
	portFactory      coreio.PortFactory
	reconnectTimeout time.Duration
	errorHandlerFunc ShouldTerminate
	activeMode       bool
	readInterval     time.Duration
	gpio             GPIO
	clock            Clock
	pinReset         OptionalPin
	pinSleepMode     OptionalPin
}

// Option is a configured option that may be applied to a Sensor
type Option struct {
	apply func(*Sensor)
}

// NewSensor creates a Sensor with optional configuration
func NewSensor(portFactory coreio.PortFactory, options ...*Option) *Sensor {
	measurements := make(chan *Measurement)
	s := &Sensor{
		measurements:     measurements,
		portFactory:      portFactory,
		reconnectTimeout: DefaultReconnectTimeout,
		errorHandlerFunc: nil,
		activeMode:       false,
		readInterval:     DefaultReadInterval,
		gpio:             noGPIO{},
		clock:            realClock{},
		pinReset:         PinNone,
		pinSleepMode:     PinNone,
	}
	for _, o := range options {
		o.apply(s)
	}
	return s
}

// WithReconnectTimeout specifies the duration to wait before reconnecting after a recoverable error
func WithReconnectTimeout(timeout time.Duration) *Option {
	return &Option{
		apply: func(s *Sensor) {
			s.reconnectTimeout = timeout
		},
	}
}

// ReconnectTimeout is the duration to wait before reconnecting after a recoverable error
func (s *Sensor) ReconnectTimeout() time.Duration {
	return s.reconnectTimeout
}

// ShouldTerminate is a function that returns a result indicating whether the Sensor should terminate after a recoverable error
type ShouldTerminate func(error) bool

// WithRecoverableErrorHandler registers a function that will be called when a recoverable error occurs
func WithRecoverableErrorHandler(f ShouldTerminate) *Option {
	return &Option{
		apply: func(s *Sensor) {
			s.errorHandlerFunc = f
		},
	}
}

// RecoverableErrorHandler a function that will be called when a recoverable error occurs
func (s *Sensor) RecoverableErrorHandler() ShouldTerminate {
	return s.errorHandlerFunc
}

// WithActiveMode lets the sensor stream measurements instead of polling it with read commands
func WithActiveMode() *Option {
	return &Option{
		apply: func(s *Sensor) {
			s.activeMode = true
		},
	}
}

// ActiveMode reports whether the sensor is run in active mode
func (s *Sensor) ActiveMode() bool {
	return s.activeMode
}

// WithReadInterval specifies the period between read commands in passive mode
func WithReadInterval(interval time.Duration) *Option {
	return &Option{
		apply: func(s *Sensor) {
			s.readInterval = interval
		},
	}
}

// ReadInterval is the period between read commands in passive mode
func (s *Sensor) ReadInterval() time.Duration {
	return s.readInterval
}

// WithPinReset specifies the GPIO line wired to the sensor RESET input
func WithPinReset(gpio GPIO, pin OptionalPin) *Option {
	return &Option{
		apply: func(s *Sensor) {
			s.gpio = gpio
			s.pinReset = pin
		},
	}
}

// WithPinSleepMode specifies the GPIO line wired to the sensor SET input
func WithPinSleepMode(gpio GPIO, pin OptionalPin) *Option {
	return &Option{
		apply: func(s *Sensor) {
			s.gpio = gpio
			s.pinSleepMode = pin
		},
	}
}

// WithSensorClock specifies the clock used for delays, bounded waits and read pacing
func WithSensorClock(clock Clock) *Option {
	return &Option{
		apply: func(s *Sensor) {
			s.clock = clock
		},
	}
}

const maxConsecutiveDecodeErrors = 3

// Run begins reading from the sensor and blocks until either an error occurs or the context is completed
func (s *Sensor) Run(ctx context.Context) error {
	defer close(s.measurements)
	for {
		port, err := s.portFactory.Open()
		if err != nil {
			return errors.Wrap(err, "failed to open port")
		}

		session := NewSession(NewPortTransport(port), WithGPIO(s.gpio), WithClock(s.clock))

		group, innerCtx := errgroup.WithContext(ctx)
		group.Go(func() error {
			<-innerCtx.Done()
			return port.Close()
		})
		group.Go(func() error {
			err := s.start(session)
			if err != nil {
				return errors.Wrap(err, "failed to start sensor")
			}

			return s.poll(innerCtx, session)
		})

		err = group.Wait()
		if s.errorHandlerFunc != nil {
			if s.errorHandlerFunc(err) {
				return err
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(s.reconnectTimeout):
		}
	}
}

func (s *Sensor) start(session *Session) error {
	if err := session.Begin(); err != nil {
		return err
	}
	if err := session.SetPinReset(s.pinReset); err != nil {
		return errors.Wrap(err, "failed to configure reset pin")
	}
	if err := session.SetPinSleepMode(s.pinSleepMode); err != nil {
		return errors.Wrap(err, "failed to configure sleep pin")
	}

	// only succeeds when a reset line is wired
	session.SendCommand(CmdReset, WakeupTime)

	// the first measurement wait covers the wakeup time
	if session.ModeSleep() != False && !session.SendCommand(CmdWakeup, 0) {
		return errors.New("failed to wake up sensor")
	}

	if s.activeMode {
		session.SetTimeout(TimeoutActive)
		if !session.SendCommand(CmdModeActive, 0) {
			return errors.New("failed to set active mode")
		}
		return nil
	}

	if !session.SendCommand(CmdModePassive, 0) {
		return errors.New("failed to set passive mode")
	}
	return nil
}

func (s *Sensor) poll(ctx context.Context, session *Session) error {
	bucket := ratelimit.NewBucketWithClock(s.readInterval, 1, s.clock)
	frameTimeout := TimeoutActive
	if s.activeMode {
		frameTimeout = WakeupTime
	}

	timeout := WakeupTime
	decodeErrors := 0
	for {
		if !s.activeMode {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(bucket.Take(1)):
			}

			if !session.SendCommand(CmdReadData, 0) {
				return errors.New("failed to request measurement")
			}
		}

		if !session.WaitForData(timeout, FrameSize) {
			if ctx.Err() != nil {
				return nil
			}
			return errors.New("timed out waiting for measurement")
		}

		measurement := new(Measurement)
		err := session.ReadMeasurement(measurement)
		if errors.Is(err, ErrNoData) {
			continue
		}
		if err != nil {
			decodeErrors++
			if decodeErrors >= maxConsecutiveDecodeErrors {
				return errors.Wrap(err, "failed to read measurement")
			}
			continue
		}
		decodeErrors = 0
		timeout = frameTimeout

		select {
		case s.measurements <- measurement:
		case <-ctx.Done():
			return nil
		}
	}
}

// Measurements returns a channel of measurements as they become available from the sensor
func (s *Sensor) Measurements() <-chan *Measurement {
	return s.measurements
}
