package models

import (
	"github.com/google/uuid"
)

// Receipt summarizes one completed order
type Receipt struct {
	OrderID   uuid.UUID
	Region    Region
	Kind      PizzaKind
	PizzaName string
	Text      string
}
