package factory

import (
	"github.com/go-leo/assembly/event"
	"go.uber.org/zap"
)

type option struct {
	Name   string
	Logger *zap.Logger
	Bus    event.Bus
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Name == "" {
		o.Name = "factory"
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

type Option func(*option)

// Name names the factory.
func Name(name string) Option {
	return func(o *option) {
		o.Name = name
	}
}

// Logger sets the logger of the factory.
func Logger(logger *zap.Logger) Option {
	return func(o *option) {
		o.Logger = logger
	}
}

// Bus publishes event.LineAdded and event.ProductionFinished on bus.
func Bus(bus event.Bus) Option {
	return func(o *option) {
		o.Bus = bus
	}
}
