package factory

import (
	"github.com/go-leo/assembly/event"
	"github.com/go-leo/assembly/line"
	"github.com/go-leo/assembly/product"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// Produce asks every line for one item, in order, and returns the items.
// It keeps nothing. A nil line panics with line.ErrLineNil.
func Produce[P any](lines ...line.ProductionLine[P]) []P {
	items := make([]P, 0, len(lines))
	for _, l := range lines {
		if l == nil {
			panic(line.ErrLineNil)
		}
		items = append(items, l.Produce())
	}
	return items
}

// Factory owns production lines of product P and the warehouse of everything
// they produced. Lines and warehouse only grow.
//
// Build one with New or NewWith: the zero value has no way to make lines.
// A Factory is not safe for concurrent use.
type Factory[P any] struct {
	lines     []line.ProductionLine[P]
	warehouse []P
	batches   int
	newLine   func() line.ProductionLine[P]
	options   *option
}

// New returns a Factory whose lines are line.Generic[P].
//
//	chocolates := factory.New[product.Chocolate]()
func New[P any, PP product.Product[P]](opts ...Option) *Factory[P] {
	return NewWith[P](func() line.ProductionLine[P] {
		return line.New[P, PP]()
	}, opts...)
}

// NewWith returns a Factory that builds its lines with newLine.
func NewWith[P any](newLine func() line.ProductionLine[P], opts ...Option) *Factory[P] {
	if newLine == nil {
		panic(ErrNewLineNil)
	}
	return &Factory[P]{newLine: newLine, options: newOption(opts...)}
}

// Name returns the factory name used in logs, events and reports.
func (f *Factory[P]) Name() string {
	return f.opts().Name
}

// AddProductionLine appends one new line.
// It panics with line.ErrLineNil if the line constructor returns nil.
func (f *Factory[P]) AddProductionLine() {
	if f.newLine == nil {
		panic(ErrNewLineNil)
	}
	l := f.newLine()
	if l == nil {
		panic(line.ErrLineNil)
	}
	f.lines = append(f.lines, l)
	f.opts().Logger.Debug("production line added",
		zap.String("factory", f.Name()),
		zap.Int("lines", len(f.lines)))
	f.publish(event.LineAdded{Factory: f.Name(), Lines: len(f.lines)})
}

// Produce runs every line once in the order they were added, stores the batch
// in the warehouse and returns it.
func (f *Factory[P]) Produce() []P {
	batch := Produce(f.lines...)
	f.warehouse = append(f.warehouse, batch...)
	f.batches++
	f.opts().Logger.Info("finished production",
		zap.String("factory", f.Name()),
		zap.Int("produced", len(batch)),
		zap.Int("stock", len(f.warehouse)))
	f.publish(event.ProductionFinished{Factory: f.Name(), Produced: len(batch), Stock: len(f.warehouse)})
	return batch
}

// ProductionLines returns a copy of the owned lines.
func (f *Factory[P]) ProductionLines() []line.ProductionLine[P] {
	return slices.Clone(f.lines)
}

func (f *Factory[P]) LineCount() int {
	return len(f.lines)
}

// Warehouse returns a copy of the stored items in production order.
func (f *Factory[P]) Warehouse() []P {
	return slices.Clone(f.warehouse)
}

// Stock returns the number of stored items.
func (f *Factory[P]) Stock() int {
	return len(f.warehouse)
}

// publish hands body to the bus. A listener error never rolls back production.
func (f *Factory[P]) publish(body any) {
	o := f.opts()
	if o.Bus == nil {
		return
	}
	if err := o.Bus.Emit(event.New(body)); err != nil {
		o.Logger.Warn("event listener failed",
			zap.String("factory", f.Name()),
			zap.Error(err))
	}
}

func (f *Factory[P]) opts() *option {
	if f.options == nil {
		f.options = newOption()
	}
	return f.options
}
