package product

import "github.com/google/uuid"

// Chocolate bar 🍫
type Chocolate struct {
	serial string
}

func (c *Chocolate) Assemble() {
	c.serial = uuid.NewString()
}

func (c Chocolate) Kind() Kind {
	return KindChocolate
}

func (c Chocolate) Serial() string {
	return c.serial
}

func (c Chocolate) String() string {
	return "Chocolate bar 🍫 " + c.serial
}

func (Chocolate) item() {}
