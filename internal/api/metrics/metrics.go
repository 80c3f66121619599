// Package metrics defines all custom Prometheus metrics for the recipe API.
// It is the single source of truth for metric names, labels, and help
// strings. Metrics self-register with the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "recipeshare"

// SignupsTotal counts account registrations.
// Label:
//   - result: "created" or "conflict" (duplicate email)
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "rejected"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RecipesCreatedTotal counts newly created recipes.
// Label:
//   - difficulty: "Easy", "Medium", or "Hard" (derived, never user input)
var RecipesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recipes_created_total",
		Help:      "Total number of recipes created, by derived difficulty.",
	},
	[]string{"difficulty"},
)

// IngredientsCreatedTotal counts create-or-get calls on the catalog.
// Label:
//   - result: "created" (new row) or "existing" (idempotent hit)
var IngredientsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ingredients_created_total",
		Help:      "Total number of ingredient create-or-get calls, by result.",
	},
	[]string{"result"},
)

// DashboardCacheTotal counts dashboard listing cache decisions.
// Label:
//   - result: "hit" or "miss"
var DashboardCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_cache_total",
		Help:      "Total number of dashboard cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
