// Package ownership links entities that refer to each other without either
// one owning the other. The Registry owns every entity; relations are IDs
// resolved on lookup, so removing an entity never leaves a dangling pointer.
package ownership

import (
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

type Person struct {
	ID    string
	Name  string
	Email string
}

type Car struct {
	ID   int
	Type string
}

type Customer struct {
	ID    string
	Name  string
	Email string
}

// BankAccount always belongs to a customer.
type BankAccount struct {
	Number     int
	Type       string
	CustomerID string
}

type Registry struct {
	people    map[string]Person
	cars      map[int]Car
	carOf     map[string]int
	ownerOf   map[int]string
	customers map[string]Customer
	accounts  map[int]BankAccount
	logger    *zap.Logger
}

// NewRegistry returns an empty Registry. A nil logger logs nothing.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		people:    make(map[string]Person),
		cars:      make(map[int]Car),
		carOf:     make(map[string]int),
		ownerOf:   make(map[int]string),
		customers: make(map[string]Customer),
		accounts:  make(map[int]BankAccount),
		logger:    logger,
	}
}

func (r *Registry) AddPerson(p Person) {
	r.people[p.ID] = p
}

func (r *Registry) AddCar(c Car) {
	r.cars[c.ID] = c
}

// Link records that person owns car. Both must be registered.
// A previous car of the person and a previous owner of the car are unlinked.
func (r *Registry) Link(personID string, carID int) error {
	if _, ok := r.people[personID]; !ok {
		return ErrUnknownPerson
	}
	if _, ok := r.cars[carID]; !ok {
		return ErrUnknownCar
	}
	if oldCarID, ok := r.carOf[personID]; ok {
		delete(r.ownerOf, oldCarID)
	}
	if oldOwnerID, ok := r.ownerOf[carID]; ok {
		delete(r.carOf, oldOwnerID)
	}
	r.carOf[personID] = carID
	r.ownerOf[carID] = personID
	return nil
}

// CarOf returns the car of a person, if both still exist.
func (r *Registry) CarOf(personID string) (Car, bool) {
	carID, ok := r.carOf[personID]
	if !ok {
		return Car{}, false
	}
	car, ok := r.cars[carID]
	return car, ok
}

// OwnerOf returns the owner of a car, if both still exist.
func (r *Registry) OwnerOf(carID int) (Person, bool) {
	personID, ok := r.ownerOf[carID]
	if !ok {
		return Person{}, false
	}
	p, ok := r.people[personID]
	return p, ok
}

// Release drops a person and its relation.
func (r *Registry) Release(personID string) {
	p, ok := r.people[personID]
	if !ok {
		return
	}
	if carID, ok := r.carOf[personID]; ok {
		delete(r.ownerOf, carID)
		delete(r.carOf, personID)
	}
	delete(r.people, personID)
	r.logger.Debug("goodbye", zap.String("person", p.Name))
}

// Scrap drops a car and its relation.
func (r *Registry) Scrap(carID int) {
	c, ok := r.cars[carID]
	if !ok {
		return
	}
	if personID, ok := r.ownerOf[carID]; ok {
		delete(r.carOf, personID)
		delete(r.ownerOf, carID)
	}
	delete(r.cars, carID)
	r.logger.Debug("goodbye", zap.String("car", c.Type))
}

func (r *Registry) AddCustomer(c Customer) {
	r.customers[c.ID] = c
}

// OpenAccount registers an account for an existing customer.
func (r *Registry) OpenAccount(a BankAccount) error {
	if _, ok := r.customers[a.CustomerID]; !ok {
		return ErrUnknownCustomer
	}
	r.accounts[a.Number] = a
	return nil
}

// AccountsOf returns the account numbers of a customer.
func (r *Registry) AccountsOf(customerID string) []int {
	var numbers []int
	for number, a := range r.accounts {
		if a.CustomerID == customerID {
			numbers = append(numbers, number)
		}
	}
	slices.Sort(numbers)
	return numbers
}

// CustomerOf resolves the customer of an account.
func (r *Registry) CustomerOf(number int) (Customer, bool) {
	a, ok := r.accounts[number]
	if !ok {
		return Customer{}, false
	}
	c, ok := r.customers[a.CustomerID]
	return c, ok
}

// CloseCustomer drops a customer together with its accounts.
func (r *Registry) CloseCustomer(customerID string) {
	for number, a := range r.accounts {
		if a.CustomerID == customerID {
			delete(r.accounts, number)
			r.logger.Debug("goodbye", zap.String("account_type", a.Type), zap.Int("account", number))
		}
	}
	if c, ok := r.customers[customerID]; ok {
		delete(r.customers, customerID)
		r.logger.Debug("goodbye", zap.String("customer", c.Name))
	}
}
