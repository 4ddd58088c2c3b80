package services

import (
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizza-factory/internal/factories"
	"github.com/franciscosanchezn/pizza-factory/internal/metrics"
	"github.com/franciscosanchezn/pizza-factory/internal/models"
	"github.com/franciscosanchezn/pizza-factory/internal/pizzas"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// ReceiptWriter receives the receipt of every completed order
type ReceiptWriter interface {
	Write(text string) error
}

// PizzaStore takes orders for the pizzas of one region
type PizzaStore interface {
	// OrderPizza builds, prepares and records a pizza of the given kind
	OrderPizza(kind models.PizzaKind) (*pizzas.Pizza, error)
	// Region returns the region the store belongs to
	Region() models.Region
}

// ErrNoReceiptWriter is returned by stores created without a receipt writer
var ErrNoReceiptWriter = errors.New("no receipt writer configured")

// missingWriter stands in for a nil ReceiptWriter and rejects every receipt
type missingWriter struct {
	region models.Region
}

func (w missingWriter) Write(string) error {
	return fmt.Errorf("%s store: %w", w.region.Prefix(), ErrNoReceiptWriter)
}

// StoreOption customizes a pizza store
type StoreOption func(*pizzaStore)

// WithRecorder makes the store report every order to rec
func WithRecorder(rec metrics.OrderRecorder) StoreOption {
	return func(s *pizzaStore) {
		if rec != nil {
			s.recorder = rec
		}
	}
}

// pizzaStore is the implementation of the PizzaStore interface
type pizzaStore struct {
	region   models.Region
	writer   ReceiptWriter
	recorder metrics.OrderRecorder
	newID    func() uuid.UUID
}

// NewPizzaStore creates the store of the given region writing receipts to w
func NewPizzaStore(region models.Region, w ReceiptWriter, opts ...StoreOption) (PizzaStore, error) {
	if _, err := factories.ForRegion(region); err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("receipt writer is required for %s store: %w", region.Prefix(), ErrNoReceiptWriter)
	}
	return newPizzaStore(region, w, opts...), nil
}

// NewNYPizzaStore creates a New York pizza store
func NewNYPizzaStore(w ReceiptWriter, opts ...StoreOption) PizzaStore {
	return newPizzaStore(models.RegionNY, w, opts...)
}

// NewMoscowPizzaStore creates a Moscow pizza store
func NewMoscowPizzaStore(w ReceiptWriter, opts ...StoreOption) PizzaStore {
	return newPizzaStore(models.RegionMoscow, w, opts...)
}

func newPizzaStore(region models.Region, w ReceiptWriter, opts ...StoreOption) *pizzaStore {
	if w == nil {
		w = missingWriter{region: region}
	}
	s := &pizzaStore{
		region:   region,
		writer:   w,
		recorder: metrics.NopRecorder{},
		newID:    uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *pizzaStore) Region() models.Region {
	return s.region
}

func (s *pizzaStore) OrderPizza(kind models.PizzaKind) (*pizzas.Pizza, error) {
	fields := logrus.Fields{
		"region": s.region,
		"kind":   kind.String(),
	}

	pizza, err := s.createPizza(kind)
	if err != nil {
		s.recorder.RecordOrder(string(s.region), kind.String(), false)
		log.WithFields(fields).WithError(err).Warn("Failed to create pizza")
		return nil, models.NewOrderError(s.region, kind, err)
	}

	receipt := newReceipt(s.newID(), s.region, pizza)
	fields = logrus.Fields{
		"order_id": receipt.OrderID.String(),
		"region":   receipt.Region,
		"kind":     receipt.Kind.String(),
		"pizza":    receipt.PizzaName,
	}

	if err := s.writer.Write(receipt.Text); err != nil {
		s.recorder.RecordOrder(string(s.region), kind.String(), false)
		log.WithFields(fields).WithError(err).Error("Failed to record receipt")
		return nil, models.NewOrderError(s.region, kind, fmt.Errorf("failed to record receipt for order %s: %w", receipt.OrderID, err))
	}

	s.recorder.RecordOrder(string(s.region), kind.String(), true)
	log.WithFields(fields).Info("Pizza ordered")
	return pizza, nil
}

// createPizza pairs the requested variant with the regional ingredient factory, names it and prepares it
func (s *pizzaStore) createPizza(kind models.PizzaKind) (*pizzas.Pizza, error) {
	factory, err := factories.ForRegion(s.region)
	if err != nil {
		return nil, err
	}

	pizza, err := pizzas.New(kind, factory)
	if err != nil {
		return nil, err
	}

	if err := pizza.SetName(pizzaName(s.region, kind)); err != nil {
		return nil, err
	}

	prepared := pizza.Prepare()
	log.WithFields(ingredientFields(pizza)).WithField("pizza", pizza.Name()).Debug(prepared)

	return pizza, nil
}

// ingredientFields groups the attached ingredient names by category
func ingredientFields(pizza *pizzas.Pizza) logrus.Fields {
	fields := logrus.Fields{}
	for _, ingredient := range pizza.Ingredients() {
		key := ingredient.Category().String()
		names, _ := fields[key].([]string)
		fields[key] = append(names, ingredient.Get())
	}
	return fields
}

// pizzaName builds names like "NY Cheese Pizza" or "Moscow Braccio di Ferro Pizza"
func pizzaName(region models.Region, kind models.PizzaKind) string {
	return fmt.Sprintf("%s %s Pizza", region.Prefix(), kind.DisplayName())
}
