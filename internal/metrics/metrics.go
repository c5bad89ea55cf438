// Package metrics holds the Prometheus collectors for the generation and
// update pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GenerationsTotal counts description generation attempts by outcome.
	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "description_generations_total",
			Help: "Total number of description generation attempts",
		},
		[]string{"status"},
	)

	// TokensTotal counts tokens consumed by the generation API, by direction.
	TokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "generation_tokens_total",
			Help: "Total tokens consumed by generation calls",
		},
		[]string{"kind"},
	)

	// GenerationCostTotal accumulates the reported generation cost in dollars.
	GenerationCostTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "generation_cost_dollars_total",
			Help: "Accumulated generation cost in dollars",
		},
	)

	// UpdatesTotal counts storefront update posts by outcome.
	UpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_updates_total",
			Help: "Total number of storefront update posts",
		},
		[]string{"status"},
	)

	// AuditWritesTotal counts audit file writes by status directory.
	AuditWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_writes_total",
			Help: "Total number of audit XML copies written",
		},
		[]string{"status"},
	)
)

// Label values used with the collectors above.
const (
	StatusOK    = "ok"
	StatusError = "error"

	TokenKindPrompt     = "prompt"
	TokenKindCompletion = "completion"
)
