package metrics

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

const ordersMetric = "pizzeria_orders_total"

// PromRecorder counts orders in Prometheus metrics.
type PromRecorder struct {
	orders *prometheus.CounterVec
}

// NewPromRecorder registers order metrics on the provided Prometheus registerer.
// If reg is nil, the default registerer is used. If the collector is already
// registered, the existing one is reused.
func NewPromRecorder(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	orders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: ordersMetric,
		Help: "Total number of pizza orders by region, kind and outcome",
	}, []string{"region", "kind", "status"})

	if err := reg.Register(orders); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			orders = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}

	return &PromRecorder{orders: orders}, nil
}

// RecordOrder increments the counter for one order outcome.
func (r *PromRecorder) RecordOrder(region, kind string, ok bool) {
	r.orders.WithLabelValues(region, kind, status(ok)).Inc()
}

// Totals gathers the order counters and keys them by "region/kind/status".
func Totals(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	for _, family := range families {
		if family.GetName() != ordersMetric {
			continue
		}
		for _, m := range family.GetMetric() {
			labels := make(map[string]string, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			key := strings.Join([]string{labels["region"], labels["kind"], labels["status"]}, "/")
			totals[key] += m.GetCounter().GetValue()
		}
	}
	return totals, nil
}

// SortedKeys returns the keys of totals in lexical order.
func SortedKeys(totals map[string]float64) []string {
	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
