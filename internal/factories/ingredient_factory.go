package factories

import (
	"fmt"

	"github.com/franciscosanchezn/pizza-factory/internal/models"
)

// IngredientFactory produces the regional ingredients a pizza is prepared with
type IngredientFactory interface {
	// CreateCheese returns a fresh cheese
	CreateCheese() models.Cheese
	// CreateSauce returns a fresh sauce
	CreateSauce() models.Sauce
	// CreateVeggies returns a fresh, ordered list of vegetables
	CreateVeggies() []models.Veggie
}

// NYIngredientFactory produces New York style ingredients
type NYIngredientFactory struct{}

func (NYIngredientFactory) CreateCheese() models.Cheese {
	return models.MaccagnoCheese{}
}

func (NYIngredientFactory) CreateSauce() models.Sauce {
	return models.MarinaraSauce{}
}

func (NYIngredientFactory) CreateVeggies() []models.Veggie {
	return []models.Veggie{
		models.Onion{},
		models.Mushroom{},
	}
}

// MoscowIngredientFactory produces Moscow style ingredients
type MoscowIngredientFactory struct{}

func (MoscowIngredientFactory) CreateCheese() models.Cheese {
	return models.BrieCheese{}
}

func (MoscowIngredientFactory) CreateSauce() models.Sauce {
	return models.TomatoSauce{}
}

func (MoscowIngredientFactory) CreateVeggies() []models.Veggie {
	return []models.Veggie{
		models.Spinach{},
		models.Mushroom{},
		models.Onion{},
	}
}

// ForRegion returns the ingredient factory serving the given region
func ForRegion(region models.Region) (IngredientFactory, error) {
	switch region {
	case models.RegionNY:
		return NYIngredientFactory{}, nil
	case models.RegionMoscow:
		return MoscowIngredientFactory{}, nil
	default:
		return nil, fmt.Errorf("no ingredient factory for region %q: %w", region, models.ErrUnsupportedRegion)
	}
}
