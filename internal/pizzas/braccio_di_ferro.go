package pizzas

import (
	"github.com/franciscosanchezn/pizza-factory/internal/factories"
	"github.com/franciscosanchezn/pizza-factory/internal/models"
)

// NewBraccioDiFerroPizza creates the spinach-mushroom pizza. Its main ingredient is always mushrooms.
func NewBraccioDiFerroPizza(factory factories.IngredientFactory) *Pizza {
	return newPizza(models.BraccioDiFerroPizza, models.Mushroom{}, factory)
}
