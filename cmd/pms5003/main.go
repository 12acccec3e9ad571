package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	arg "github.com/alexflint/go-arg"
	"github.com/coreos/go-systemd/daemon"
	"github.com/go-sensors/plantowerpms5003"
	"github.com/go-sensors/plantowerpms5003/periphgpio"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var version = "<not set>"

type Args struct {
	ConfigFile string `arg:"-c,--config" help:"path to configuration file"`
	Port       string `arg:"-p,--port" help:"serial device, overrides the configuration file"`
	Timestamps bool   `arg:"-t,--timestamps" help:"include timestamps in log output"`
}

func (Args) Version() string {
	return version
}

func procArgs() Args {
	var args Args
	args.ConfigFile = "/etc/pms5003.yaml"
	arg.MustParse(&args)
	return args
}

func main() {
	err := runMain()
	if err != nil {
		log.Fatal(err)
	}
}

func runMain() error {
	args := procArgs()
	if !args.Timestamps {
		log.SetFlags(0)
	}

	log.Printf("version: %s", version)
	conf, err := ParseConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}
	if args.Port != "" {
		conf.Port = args.Port
	}
	logConfig(conf)

	limiter := newLogLimiter(conf.LogInterval)
	options, err := sensorOptions(conf, limiter)
	if err != nil {
		return err
	}
	sensor := plantowerpms5003.NewSensor(plantowerpms5003.NewSerialPortFactory(conf.Port, nil), options...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return sensor.Run(ctx)
	})
	group.Go(func() error {
		reportMeasurements(sensor.Measurements())
		return nil
	})
	return group.Wait()
}

func logConfig(conf *Config) {
	log.Printf("serial port: %s", conf.Port)
	log.Printf("reset pin: %s", optionalPin(conf.ResetPin))
	log.Printf("sleep pin: %s", optionalPin(conf.SleepPin))
	log.Printf("active mode: %t", conf.Active)
	log.Printf("read interval: %s", conf.ReadInterval)
	log.Printf("reconnect timeout: %s", conf.ReconnectTimeout)
}

func sensorOptions(conf *Config, limiter *logLimiter) ([]*plantowerpms5003.Option, error) {
	options := []*plantowerpms5003.Option{
		plantowerpms5003.WithReadInterval(conf.ReadInterval),
		plantowerpms5003.WithReconnectTimeout(conf.ReconnectTimeout),
		plantowerpms5003.WithRecoverableErrorHandler(func(err error) bool {
			limiter.Printf("sensor error: %v", err)
			return false
		}),
	}
	if conf.Active {
		options = append(options, plantowerpms5003.WithActiveMode())
	}

	if !conf.usesGPIO() {
		return options, nil
	}
	log.Print("host initialisation")
	gpio, err := periphgpio.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to set up GPIO")
	}
	return append(options,
		plantowerpms5003.WithPinReset(gpio, optionalPin(conf.ResetPin)),
		plantowerpms5003.WithPinSleepMode(gpio, optionalPin(conf.SleepPin)),
	), nil
}

func reportMeasurements(measurements <-chan *plantowerpms5003.Measurement) {
	ready := false
	for m := range measurements {
		if !ready {
			daemon.SdNotify(false, "READY=1")
			ready = true
		} else {
			daemon.SdNotify(false, "WATCHDOG=1")
		}
		log.Print(formatMeasurement(m))
	}
}

func formatMeasurement(m *plantowerpms5003.Measurement) string {
	fields := make([]string, 0, plantowerpms5003.Particles10-plantowerpms5003.PM1_0+1)
	for i := plantowerpms5003.PM1_0; i <= plantowerpms5003.Particles10; i++ {
		fields = append(fields, fmt.Sprintf("%s: %d %s", plantowerpms5003.Name(i), m[i], plantowerpms5003.Metric(i)))
	}
	return strings.Join(fields, "; ")
}
