package weight

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Weighable reports a weight measured in W.
type Weighable[W Number] interface {
	Weight() W
}

// Combine adds the weights of two things of the same type.
func Combine[T Weighable[W], W Number](a, b T) W {
	return a.Weight() + b.Weight()
}

// Sum adds up values. An empty slice sums to zero.
func Sum[S ~[]E, E Number](values S) E {
	var total E
	for _, v := range values {
		total += v
	}
	return total
}

// Product multiplies values. An empty slice multiplies to one.
func Product[S ~[]E, E Number](values S) E {
	total := E(1)
	for _, v := range values {
		total *= v
	}
	return total
}

// Collection is any container of E that can list its values.
type Collection[E any] interface {
	Values() []E
}

// Slice is an ordered Collection.
type Slice[E any] []E

func (s Slice[E]) Values() []E {
	return s
}

// Set is an unordered Collection.
type Set[E comparable] map[E]struct{}

// SetOf returns a Set holding values.
func SetOf[E comparable](values ...E) Set[E] {
	set := make(Set[E], len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func (s Set[E]) Values() []E {
	return maps.Keys(s)
}

// Reversed lists the values of a slice back to front.
type Reversed[E any] []E

func (r Reversed[E]) Values() []E {
	values := make([]E, len(r))
	for i, v := range r {
		values[len(r)-1-i] = v
	}
	return values
}

// SumAll adds up the values of collections of different concrete types.
func SumAll[E Number](collections ...Collection[E]) E {
	var total E
	for _, c := range collections {
		total += Sum(c.Values())
	}
	return total
}

// Truck only needs integer accuracy.
type Truck struct{}

func (Truck) Weight() int {
	return 100
}

// Flower needs decimal places.
type Flower struct{}

func (Flower) Weight() float64 {
	return 0.0025
}
