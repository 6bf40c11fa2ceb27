package product

import "github.com/google/uuid"

// Car 🚘
type Car struct {
	serial string
}

func (c *Car) Assemble() {
	c.serial = uuid.NewString()
}

func (c Car) Kind() Kind {
	return KindCar
}

func (c Car) Serial() string {
	return c.serial
}

func (c Car) String() string {
	return "Car 🚘 " + c.serial
}

func (Car) item() {}
