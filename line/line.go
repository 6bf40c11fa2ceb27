package line

import (
	"github.com/go-leo/assembly/product"
	"github.com/google/uuid"
)

// ProductionLine produces one item of product P per call.
type ProductionLine[P any] interface {
	// Produce returns a newly constructed P.
	Produce() P
}

// The Func type is an adapter to allow the use of ordinary functions as ProductionLine.
// If f is a function with the appropriate signature, Func(f) is a ProductionLine that calls f.
type Func[P any] func() P

// Produce calls f().
func (f Func[P]) Produce() P {
	return f()
}

// Generic is the default line of product P. It default-constructs one P per Produce.
type Generic[P any] struct {
	id    string
	build func() P
}

// New returns a Generic line for P.
//
//	cars := line.New[product.Car]()
func New[P any, PP product.Product[P]]() *Generic[P] {
	return &Generic[P]{id: uuid.NewString(), build: product.New[P, PP]}
}

// ID identifies the line.
func (l *Generic[P]) ID() string {
	return l.id
}

func (l *Generic[P]) Produce() P {
	return l.build()
}

// ProduceN runs l count times and returns the items in call order.
func ProduceN[P any](l ProductionLine[P], count int) ([]P, error) {
	if l == nil {
		return nil, ErrLineNil
	}
	if count < 0 {
		return nil, ErrNegativeCount
	}
	items := make([]P, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, l.Produce())
	}
	return items, nil
}
