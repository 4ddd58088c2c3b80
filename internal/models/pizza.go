package models

import "fmt"

// PizzaKind selects the main ingredient and preparation routine of a pizza
type PizzaKind int

const (
	CheesePizza PizzaKind = iota
	BraccioDiFerroPizza
)

// PizzaKinds returns every supported pizza kind in menu order
func PizzaKinds() []PizzaKind {
	return []PizzaKind{CheesePizza, BraccioDiFerroPizza}
}

// Valid reports whether k is one of the supported pizza kinds
func (k PizzaKind) Valid() bool {
	return k == CheesePizza || k == BraccioDiFerroPizza
}

func (k PizzaKind) String() string {
	switch k {
	case CheesePizza:
		return "cheese"
	case BraccioDiFerroPizza:
		return "braccio_di_ferro"
	default:
		return fmt.Sprintf("PizzaKind(%d)", int(k))
	}
}

// DisplayName is the human readable name used on receipts
func (k PizzaKind) DisplayName() string {
	switch k {
	case CheesePizza:
		return "Cheese"
	case BraccioDiFerroPizza:
		return "Braccio di Ferro"
	default:
		return k.String()
	}
}

// Region selects which ingredient factory and name prefix a store uses
type Region string

const (
	RegionNY     Region = "ny"
	RegionMoscow Region = "moscow"
)

// Regions returns every supported region
func Regions() []Region {
	return []Region{RegionNY, RegionMoscow}
}

// Prefix is prepended to the names of pizzas made in the region
func (r Region) Prefix() string {
	switch r {
	case RegionNY:
		return "NY"
	case RegionMoscow:
		return "Moscow"
	default:
		return string(r)
	}
}
