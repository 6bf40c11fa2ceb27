package event

import (
	"reflect"

	"github.com/go-leo/gox/syncx/gopher"
	"github.com/go-leo/gox/syncx/gopher/sample"
	"go.uber.org/zap"
)

type option struct {
	Pool   gopher.Gopher
	Logger *zap.Logger
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Pool == nil {
		o.Pool = sample.Gopher{}
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

type Option func(*option)

// Pool sets the goroutine pool used by AsyncEmit.
func Pool(pool gopher.Gopher) Option {
	return func(o *option) {
		o.Pool = pool
	}
}

// Logger sets the logger of the bus.
func Logger(logger *zap.Logger) Option {
	return func(o *option) {
		o.Logger = logger
	}
}

func NewBus(opts ...Option) Bus {
	return &bus{
		listeners:     make(map[reflect.Type][]Listener),
		onceListeners: make(map[reflect.Type][]Listener),
		options:       newOption(opts...),
	}
}
