package models

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedPizzaKind is returned when no pizza variant matches the requested kind
	ErrUnsupportedPizzaKind = errors.New("unsupported pizza kind")
	// ErrUnsupportedRegion is returned when no ingredient factory exists for a region
	ErrUnsupportedRegion = errors.New("unsupported region")
	// ErrNameAlreadySet is returned when a pizza is named twice
	ErrNameAlreadySet = errors.New("pizza name already set")
)

// OrderError describes a failed order for a given store region and pizza kind
type OrderError struct {
	Region Region
	Kind   PizzaKind
	Err    error
}

// NewOrderError creates a new OrderError wrapping err
func NewOrderError(region Region, kind PizzaKind, err error) *OrderError {
	return &OrderError{
		Region: region,
		Kind:   kind,
		Err:    err,
	}
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("order %s pizza from %s store: %v", e.Kind, e.Region, e.Err)
}

func (e *OrderError) Unwrap() error {
	return e.Err
}
