package main

import (
	"io/ioutil"
	"time"

	"github.com/go-sensors/plantowerpms5003"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// noPin disables an optional GPIO line in the config file
const noPin = -1

type Config struct {
	Port             string        `yaml:"port"`
	ResetPin         int           `yaml:"reset-pin"`
	SleepPin         int           `yaml:"sleep-pin"`
	Active           bool          `yaml:"active"`
	ReadInterval     time.Duration `yaml:"read-interval"`
	ReconnectTimeout time.Duration `yaml:"reconnect-timeout"`
	LogInterval      time.Duration `yaml:"log-interval"`
}

var defaultConfig = Config{
	Port:             "/dev/serial0",
	ResetPin:         noPin,
	SleepPin:         noPin,
	Active:           false,
	ReadInterval:     plantowerpms5003.DefaultReadInterval,
	ReconnectTimeout: plantowerpms5003.DefaultReconnectTimeout,
	LogInterval:      time.Minute,
}

func ParseConfigFile(filename string) (*Config, error) {
	buf, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseConfig(buf)
}

func ParseConfig(buf []byte) (*Config, error) {
	conf := defaultConfig
	if err := yaml.Unmarshal(buf, &conf); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (conf *Config) Validate() error {
	if conf.Port == "" {
		return errors.New("port must be set")
	}
	if err := validatePin("reset-pin", conf.ResetPin); err != nil {
		return err
	}
	if err := validatePin("sleep-pin", conf.SleepPin); err != nil {
		return err
	}
	if conf.ResetPin != noPin && conf.ResetPin == conf.SleepPin {
		return errors.Errorf("reset-pin and sleep-pin must differ, both are %d", conf.ResetPin)
	}
	if conf.ReadInterval <= 0 {
		return errors.Errorf("read-interval must be positive, got %s", conf.ReadInterval)
	}
	if conf.ReconnectTimeout < 0 {
		return errors.Errorf("reconnect-timeout must not be negative, got %s", conf.ReconnectTimeout)
	}
	return nil
}

func validatePin(name string, pin int) error {
	if pin == noPin {
		return nil
	}
	if pin < 0 || pin >= int(plantowerpms5003.PinNone) {
		return errors.Errorf("%s out of range: %d", name, pin)
	}
	return nil
}

// optionalPin converts a config pin number into the sensor representation
func optionalPin(pin int) plantowerpms5003.OptionalPin {
	if pin == noPin {
		return plantowerpms5003.PinNone
	}
	return plantowerpms5003.OptionalPin(pin)
}

func (conf *Config) usesGPIO() bool {
	return conf.ResetPin != noPin || conf.SleepPin != noPin
}
