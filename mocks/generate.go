package mocks

//go:generate mockgen -destination=gpio.go -package=mocks github.com/go-sensors/plantowerpms5003 GPIO
//go:generate mockgen -destination=transport.go -package=mocks github.com/go-sensors/plantowerpms5003 Transport
