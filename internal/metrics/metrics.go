// Package metrics holds the Prometheus collectors of the catalog service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_sessions_active",
		Help: "Browsing sessions currently held in memory",
	})
	Operations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_operations_total",
		Help: "Storefront operations by name",
	}, []string{"operation"})
	EmptyResults = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_empty_results_total",
		Help: "Search or filter operations that left nothing to show",
	})
	CartAdds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_cart_adds_total",
		Help: "Patterns added to a cart",
	})
	CatalogSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_products",
		Help: "Products in the loaded catalog",
	})
)
