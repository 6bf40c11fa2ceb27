package ownership

import "errors"

var (
	ErrUnknownPerson   = errors.New("unknown person")
	ErrUnknownCar      = errors.New("unknown car")
	ErrUnknownCustomer = errors.New("unknown customer")
)
