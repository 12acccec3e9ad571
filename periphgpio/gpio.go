// Package periphgpio drives the sensor RESET and SET lines through periph.io.
package periphgpio

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/host"
)

// PinResolver finds a GPIO line by name
type PinResolver func(name string) gpio.PinIO

// GPIO maps numeric pins onto periph.io lines named "GPIO<n>"
type GPIO struct {
	resolve PinResolver
	mu      sync.Mutex
	pins    map[uint8]gpio.PinIO
}

var initOnce sync.Once
var initErr error

// New initialises the periph.io host drivers and returns a GPIO using the global pin registry
func New() (*GPIO, error) {
	initOnce.Do(func() {
		_, initErr = host.Init()
	})
	if initErr != nil {
		return nil, errors.Wrap(initErr, "failed to initialise host")
	}
	return NewWithResolver(gpioreg.ByName), nil
}

// NewWithResolver returns a GPIO that looks lines up with resolve
func NewWithResolver(resolve PinResolver) *GPIO {
	return &GPIO{
		resolve: resolve,
		pins:    make(map[uint8]gpio.PinIO),
	}
}

func (g *GPIO) pin(number uint8) (gpio.PinIO, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if p, ok := g.pins[number]; ok {
		return p, nil
	}
	name := fmt.Sprintf("GPIO%d", number)
	p := g.resolve(name)
	if p == nil {
		return nil, errors.Errorf("unknown pin %s", name)
	}
	g.pins[number] = p
	return p, nil
}

// SetPinMode switches the pin to output, keeping its current level, or to a floating input
func (g *GPIO) SetPinMode(number uint8, output bool) error {
	p, err := g.pin(number)
	if err != nil {
		return err
	}
	if output {
		if err := p.Out(p.Read()); err != nil {
			return errors.Wrapf(err, "failed to set %s as output", p.Name())
		}
		return nil
	}
	if err := p.In(gpio.Float, gpio.NoEdge); err != nil {
		return errors.Wrapf(err, "failed to set %s as input", p.Name())
	}
	return nil
}

// WritePin drives the pin high or low
func (g *GPIO) WritePin(number uint8, high bool) error {
	p, err := g.pin(number)
	if err != nil {
		return err
	}
	if err := p.Out(gpio.Level(high)); err != nil {
		return errors.Wrapf(err, "failed to drive %s", p.Name())
	}
	return nil
}
