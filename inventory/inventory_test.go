package inventory

import (
	"testing"

	"github.com/go-leo/assembly/factory"
	"github.com/go-leo/assembly/product"
	"github.com/stretchr/testify/assert"
)

func TestInventory(t *testing.T) {
	inv := New()
	assert.Zero(t, inv.Len())
	assert.Empty(t, inv.Kinds())

	bar := product.New[product.Chocolate]()
	car := product.New[product.Car]()
	inv.Put(bar, car, nil)

	assert.Equal(t, 2, inv.Len())
	assert.Equal(t, 1, inv.Count(product.KindCar))
	assert.Equal(t, []product.Kind{product.KindCar, product.KindChocolate}, inv.Kinds())
	assert.Equal(t, []product.Item{car}, inv.Items(product.KindCar))
}

func TestCollect(t *testing.T) {
	cars := factory.New[product.Car]()
	cars.AddProductionLine()
	cars.AddProductionLine()
	chocolates := factory.New[product.Chocolate]()
	chocolates.AddProductionLine()

	inv := New()
	Collect(inv, cars.Produce())
	Collect(inv, chocolates.Produce())

	assert.Equal(t, 3, inv.Len())
	assert.Equal(t, 2, inv.Count(product.KindCar))
	assert.Equal(t, 1, inv.Count(product.KindChocolate))
	for _, item := range inv.Items(product.KindCar) {
		_, ok := item.(product.Car)
		assert.True(t, ok)
	}
}
