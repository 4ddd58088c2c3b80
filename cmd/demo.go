package main

import (
	"fmt"
	"io"

	"github.com/franciscosanchezn/pizza-factory/internal/config"
	"github.com/franciscosanchezn/pizza-factory/internal/metrics"
	"github.com/franciscosanchezn/pizza-factory/internal/models"
	"github.com/franciscosanchezn/pizza-factory/internal/orderlog"
	"github.com/franciscosanchezn/pizza-factory/internal/services"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// sectioner is implemented by sinks that separate the receipts of each store
type sectioner interface {
	Section()
}

// runDemo orders every pizza kind from the NY store, then from the Moscow store.
// Receipts go to the configured sink; stdout is used by the stdout sink.
func runDemo(conf *config.Config, stdout io.Writer) error {
	sink, err := orderlog.NewSink(conf.ReceiptLog(), stdout)
	if err != nil {
		return err
	}
	defer func() {
		if err := sink.Close(); err != nil {
			log.WithError(err).Warn("Failed to close receipt sink")
		}
	}()

	var opts []services.StoreOption
	registry := prometheus.NewRegistry()
	if conf.MetricsEnabled {
		recorder, err := metrics.NewPromRecorder(registry)
		if err != nil {
			return fmt.Errorf("failed to register order metrics: %w", err)
		}
		opts = append(opts, services.WithRecorder(recorder))
	}

	for _, region := range models.Regions() {
		store, err := services.NewPizzaStore(region, sink, opts...)
		if err != nil {
			return err
		}
		if s, ok := sink.(sectioner); ok {
			s.Section()
		}
		for _, kind := range models.PizzaKinds() {
			if _, err := store.OrderPizza(kind); err != nil {
				return err
			}
		}
	}

	if conf.MetricsEnabled {
		logOrderTotals(registry)
	}
	return nil
}

func logOrderTotals(g prometheus.Gatherer) {
	totals, err := metrics.Totals(g)
	if err != nil {
		log.WithError(err).Warn("Failed to gather order metrics")
		return
	}
	for _, key := range metrics.SortedKeys(totals) {
		log.WithFields(log.Fields{
			"orders": key,
			"total":  totals[key],
		}).Info("Order summary")
	}
}
