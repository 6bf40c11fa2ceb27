// Package inventory stores products of different kinds side by side.
package inventory

import (
	"github.com/go-leo/assembly/product"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Inventory holds product.Item values grouped by kind, in arrival order.
type Inventory struct {
	items map[product.Kind][]product.Item
	size  int
}

func New() *Inventory {
	return &Inventory{items: make(map[product.Kind][]product.Item)}
}

// Put stores items. Nil items are skipped.
func (inv *Inventory) Put(items ...product.Item) {
	for _, item := range items {
		if item == nil {
			continue
		}
		inv.items[item.Kind()] = append(inv.items[item.Kind()], item)
		inv.size++
	}
}

// Collect stores a homogeneous batch, such as the result of a factory run.
func Collect[P product.Item](inv *Inventory, batch []P) {
	for _, item := range batch {
		inv.Put(item)
	}
}

func (inv *Inventory) Len() int {
	return inv.size
}

func (inv *Inventory) Count(kind product.Kind) int {
	return len(inv.items[kind])
}

// Kinds returns the stored kinds in ascending order.
func (inv *Inventory) Kinds() []product.Kind {
	kinds := maps.Keys(inv.items)
	slices.Sort(kinds)
	return kinds
}

// Items returns a copy of the items of kind.
func (inv *Inventory) Items(kind product.Kind) []product.Item {
	return slices.Clone(inv.items[kind])
}
