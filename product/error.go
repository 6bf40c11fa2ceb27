package product

import "fmt"

// UnknownKindError is returned when a product name does not match any Kind.
type UnknownKindError struct {
	Name string
}

func (e UnknownKindError) Error() string {
	return fmt.Sprintf("product: unknown kind %q", e.Name)
}
