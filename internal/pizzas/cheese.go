package pizzas

import (
	"github.com/franciscosanchezn/pizza-factory/internal/factories"
	"github.com/franciscosanchezn/pizza-factory/internal/models"
)

// NewCheesePizza creates a cheese pizza topped with mozzarella whatever the region
func NewCheesePizza(factory factories.IngredientFactory) *Pizza {
	return newPizza(models.CheesePizza, models.MozzarellaCheese{}, factory)
}
