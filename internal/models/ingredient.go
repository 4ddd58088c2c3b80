package models

// IngredientCategory tags an ingredient as a cheese, a vegetable or a sauce
type IngredientCategory int

const (
	CategoryCheese IngredientCategory = iota
	CategoryVeggie
	CategorySauce
)

func (c IngredientCategory) String() string {
	switch c {
	case CategoryCheese:
		return "cheese"
	case CategoryVeggie:
		return "veggie"
	case CategorySauce:
		return "sauce"
	default:
		return "unknown"
	}
}

// Ingredient is anything that can be put on a pizza
type Ingredient interface {
	// Get returns the display name of the ingredient
	Get() string
	// Category returns the category the ingredient belongs to
	Category() IngredientCategory
}

// Cheese is an ingredient of the cheese category
type Cheese interface {
	Ingredient
	isCheese()
}

// Veggie is an ingredient of the vegetable category
type Veggie interface {
	Ingredient
	isVeggie()
}

// Sauce is an ingredient of the sauce category
type Sauce interface {
	Ingredient
	isSauce()
}

type cheese struct{}

func (cheese) Category() IngredientCategory { return CategoryCheese }
func (cheese) isCheese() {}

type veggie struct{}

func (veggie) Category() IngredientCategory { return CategoryVeggie }
func (veggie) isVeggie() {}

type sauce struct{}

func (sauce) Category() IngredientCategory { return CategorySauce }
func (sauce) isSauce() {}

// Cheeses.

type BrieCheese struct{ cheese }

func (BrieCheese) Get() string { return "Brie Cheese" }

type MaccagnoCheese struct{ cheese }

func (MaccagnoCheese) Get() string { return "Maccagno Cheese" }

type MozzarellaCheese struct{ cheese }

func (MozzarellaCheese) Get() string { return "Mozzarella Cheese" }

// Veggies.

type Mushroom struct{ veggie }

func (Mushroom) Get() string { return "Mushrooms" }

type Onion struct{ veggie }

func (Onion) Get() string { return "Onion" }

type Spinach struct{ veggie }

func (Spinach) Get() string { return "Spinach" }

// Sauces.

type MarinaraSauce struct{ sauce }

func (MarinaraSauce) Get() string { return "Marinara Sauce" }

type TomatoSauce struct{ sauce }

func (TomatoSauce) Get() string { return "Tomato Sauce" }

// IngredientNames returns the display names of the given ingredients, in order
func IngredientNames[T Ingredient](ingredients []T) []string {
	names := make([]string, 0, len(ingredients))
	for _, i := range ingredients {
		names = append(names, i.Get())
	}
	return names
}
