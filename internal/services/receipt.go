package services

import (
	"github.com/franciscosanchezn/pizza-factory/internal/models"
	"github.com/franciscosanchezn/pizza-factory/internal/pizzas"
	"github.com/google/uuid"
)

// RenderReceipt formats the name, handling steps and ingredients of a prepared pizza
func RenderReceipt(pizza *pizzas.Pizza) string {
	return "~~~ Making a " + pizza.Name() + "\n" +
		pizza.Bake() + "\n" +
		pizza.Cut() + "\n" +
		pizza.Box() + "\n" +
		pizza.Get()
}

func newReceipt(id uuid.UUID, region models.Region, pizza *pizzas.Pizza) models.Receipt {
	return models.Receipt{
		OrderID:   id,
		Region:    region,
		Kind:      pizza.Kind(),
		PizzaName: pizza.Name(),
		Text:      RenderReceipt(pizza),
	}
}
