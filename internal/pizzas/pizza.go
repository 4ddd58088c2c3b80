package pizzas

import (
	"errors"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/pizza-factory/internal/factories"
	"github.com/franciscosanchezn/pizza-factory/internal/models"
)

const preparingBanner = "~~~ Preparing pizza... ~~~\n"

// Pizza holds the state shared by every pizza variant.
// The variant fixes the main ingredient, the injected factory supplies the rest.
type Pizza struct {
	kind    models.PizzaKind
	factory factories.IngredientFactory

	name    string
	main    models.Ingredient
	cheese  models.Cheese
	sauce   models.Sauce
	veggies []models.Veggie
}

// New builds the pizza variant matching kind, wired to the given ingredient factory
func New(kind models.PizzaKind, factory factories.IngredientFactory) (*Pizza, error) {
	if factory == nil {
		return nil, errors.New("ingredient factory is required")
	}
	switch kind {
	case models.CheesePizza:
		return NewCheesePizza(factory), nil
	case models.BraccioDiFerroPizza:
		return NewBraccioDiFerroPizza(factory), nil
	default:
		return nil, fmt.Errorf("%w: %s", models.ErrUnsupportedPizzaKind, kind)
	}
}

func newPizza(kind models.PizzaKind, main models.Ingredient, factory factories.IngredientFactory) *Pizza {
	return &Pizza{
		kind:    kind,
		main:    main,
		factory: factory,
	}
}

// Prepare attaches the regional ingredients and returns the preparation banner.
// Calling it again replaces the ingredients instead of accumulating them.
// A pizza built without a factory is left unprepared.
func (p *Pizza) Prepare() string {
	if p.factory == nil {
		return preparingBanner + p.Get()
	}
	set := factories.Produce(p.factory)
	p.veggies = set.Veggies
	p.cheese = set.Cheese
	p.sauce = set.Sauce

	return preparingBanner + p.Get()
}

// Get renders the populated fields of the pizza
func (p *Pizza) Get() string {
	var b strings.Builder

	if p.name != "" {
		b.WriteString("\tName: " + p.name + "\n")
	}
	if p.main != nil {
		b.WriteString("\tMain ingredient: " + p.main.Get() + "\n")
	}
	if p.cheese != nil {
		b.WriteString("\tCheese: " + p.cheese.Get() + "\n")
	}
	if p.sauce != nil {
		b.WriteString("\tSauce: " + p.sauce.Get() + "\n")
	}
	if len(p.veggies) > 0 {
		b.WriteString("\tVeggies: " + strings.Join(models.IngredientNames(p.veggies), " "))
	}

	return b.String()
}

func (p *Pizza) Bake() string {
	return "Bake for 25 minutes at 350"
}

func (p *Pizza) Cut() string {
	return "Cutting the pizza into diagonal slices"
}

func (p *Pizza) Box() string {
	return "Place pizza in official PizzaStore box"
}

// SetName names the pizza. A pizza can only be named once.
func (p *Pizza) SetName(name string) error {
	if p.name != "" {
		return fmt.Errorf("%w: %q", models.ErrNameAlreadySet, p.name)
	}
	p.name = name
	return nil
}

func (p *Pizza) Name() string {
	return p.name
}

func (p *Pizza) Kind() models.PizzaKind {
	return p.kind
}

func (p *Pizza) MainIngredient() models.Ingredient {
	return p.main
}

func (p *Pizza) Cheese() models.Cheese {
	return p.cheese
}

func (p *Pizza) Sauce() models.Sauce {
	return p.sauce
}

// Veggies returns a copy of the attached vegetables
func (p *Pizza) Veggies() []models.Veggie {
	if p.veggies == nil {
		return nil
	}
	veggies := make([]models.Veggie, len(p.veggies))
	copy(veggies, p.veggies)
	return veggies
}

// Ingredients returns every attached ingredient: main ingredient, cheese, sauce, then vegetables
func (p *Pizza) Ingredients() []models.Ingredient {
	var ingredients []models.Ingredient
	if p.main != nil {
		ingredients = append(ingredients, p.main)
	}
	if p.cheese != nil {
		ingredients = append(ingredients, p.cheese)
	}
	if p.sauce != nil {
		ingredients = append(ingredients, p.sauce)
	}
	for _, v := range p.veggies {
		ingredients = append(ingredients, v)
	}
	return ingredients
}

// Prepared reports whether the regional ingredients have been attached
func (p *Pizza) Prepared() bool {
	return p.cheese != nil && p.sauce != nil && len(p.veggies) > 0
}
