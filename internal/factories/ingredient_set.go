package factories

import "github.com/franciscosanchezn/pizza-factory/internal/models"

// IngredientSet is the cheese, sauce and vegetables produced by one factory pass
type IngredientSet struct {
	Cheese  models.Cheese
	Sauce   models.Sauce
	Veggies []models.Veggie
}

// Produce runs one full pass over the factory.
// Vegetables are requested first, then cheese, then sauce.
func Produce(f IngredientFactory) IngredientSet {
	veggies := f.CreateVeggies()
	return IngredientSet{
		Veggies: veggies,
		Cheese:  f.CreateCheese(),
		Sauce:   f.CreateSauce(),
	}
}
