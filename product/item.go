package product

// Kind enumerates the concrete products.
type Kind int

const (
	KindCar Kind = iota + 1
	KindChocolate
)

func (k Kind) String() string {
	switch k {
	case KindCar:
		return "car"
	case KindChocolate:
		return "chocolate"
	default:
		return "unknown"
	}
}

// ParseKind returns the Kind named s.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "car":
		return KindCar, nil
	case "chocolate":
		return KindChocolate, nil
	default:
		return 0, UnknownKindError{Name: s}
	}
}

// Item is a product of any kind. The set of implementations is closed: only
// the types of this package satisfy it.
type Item interface {
	Kind() Kind
	Serial() string
	item()
}

var (
	_ Item = Car{}
	_ Item = Chocolate{}
)
