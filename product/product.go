package product

// Product is the default-construction contract of a product.
// P is a value type whose zero value becomes a finished product once Assemble
// has been called on its address. No arguments are involved.
type Product[P any] interface {
	*P
	Assemble()
}

// New default-constructs one P.
//
//	car := product.New[product.Car]()
func New[P any, PP Product[P]]() P {
	var p P
	PP(&p).Assemble()
	return p
}
