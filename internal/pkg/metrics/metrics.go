// Package metrics holds the Prometheus collectors of the service. They are registered with
// the default registry and exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProductionOrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dietrack_production_orders_created_total",
		Help: "Total number of production orders created",
	})

	ProductionOrdersExpandedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dietrack_production_orders_expanded_total",
		Help: "Total number of production orders expanded into work orders",
	})

	WorkOrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dietrack_work_orders_created_total",
		Help: "Total number of work orders created by expansion",
	})

	ExpansionsRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dietrack_expansions_rejected_total",
		Help: "Total number of rejected expansion requests",
	}, []string{"reason"})

	OperationTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dietrack_operation_transitions_total",
		Help: "Total number of applied operation status transitions",
	}, []string{"to"})

	OperationTransitionsRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dietrack_operation_transitions_rejected_total",
		Help: "Total number of rejected operation status transitions",
	}, []string{"reason"})

	StockMovementsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dietrack_stock_movements_total",
		Help: "Total number of recorded stock movements",
	})

	StockDebitedKgTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dietrack_stock_debited_kg_total",
		Help: "Total bar stock drawn from lots in kilograms",
	})

	OutboxPublishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dietrack_outbox_published_total",
		Help: "Total number of outbox messages published to the broker",
	})

	OutboxPublishFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dietrack_outbox_publish_failures_total",
		Help: "Total number of failed outbox relay runs",
	})

	WorkCentersReleasedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dietrack_work_centers_released_total",
		Help: "Total number of idle Busy work centers released by housekeeping",
	})

	JobRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dietrack_job_run_duration_seconds",
		Help:    "Duration of scheduled job runs",
		Buckets: prometheus.DefBuckets,
	}, []string{"job", "result"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
