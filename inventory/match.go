package inventory

import (
	"strings"

	"github.com/go-leo/assembly/product"
)

// Match selects items. Matches compose with And, Or and Not.
type Match func(item product.Item) bool

// OfKind matches items of kind.
func OfKind(kind product.Kind) Match {
	return func(item product.Item) bool {
		return item.Kind() == kind
	}
}

// SerialPrefix matches items whose serial starts with prefix.
func SerialPrefix(prefix string) Match {
	return func(item product.Item) bool {
		return strings.HasPrefix(item.Serial(), prefix)
	}
}

// And matches when every match does. No matches match everything.
func And(matches ...Match) Match {
	return func(item product.Item) bool {
		for _, m := range matches {
			if !m(item) {
				return false
			}
		}
		return true
	}
}

// Or matches when any match does. No matches match nothing.
func Or(matches ...Match) Match {
	return func(item product.Item) bool {
		for _, m := range matches {
			if m(item) {
				return true
			}
		}
		return false
	}
}

func Not(m Match) Match {
	return func(item product.Item) bool {
		return !m(item)
	}
}

// Select returns the items satisfying m, kinds in ascending order and
// arrival order within a kind.
func (inv *Inventory) Select(m Match) []product.Item {
	var selected []product.Item
	for _, kind := range inv.Kinds() {
		for _, item := range inv.items[kind] {
			if m(item) {
				selected = append(selected, item)
			}
		}
	}
	return selected
}
