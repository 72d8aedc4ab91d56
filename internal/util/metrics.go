package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersAcceptedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_accepted_total",
		Help: "Total number of orders accepted for fulfillment",
	})

	OrdersRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_rejected_total",
		Help: "Total number of orders rejected at the boundary",
	}, []string{"reason"})

	PackagesShippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "packages_shipped_total",
		Help: "Total number of packages handed to the shipping collaborator",
	})

	PackageWeightGrams = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "package_weight_grams",
		Help:    "Weight distribution of shipped packages",
		Buckets: []float64{200, 400, 600, 800, 1000, 1200, 1400, 1600, 1800},
	})

	UnitsShippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "units_shipped_total",
		Help: "Total number of product units shipped",
	})

	UnitsDeferredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "units_deferred_total",
		Help: "Total number of product units deferred pending restock",
	}, []string{"reason"})

	DeferredQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "deferred_orders_queue_depth",
		Help: "Current number of deferred orders awaiting restock",
	})

	RestocksAppliedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "restocks_applied_total",
		Help: "Total number of restock calls applied",
	})

	RestocksRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "restocks_rejected_total",
		Help: "Total number of restock calls rejected",
	}, []string{"reason"})

	ReplayLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "deferred_replay_latency_seconds",
		Help:    "Latency of deferred demand replay passes",
		Buckets: prometheus.DefBuckets,
	})

	ProductsAddedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_added_total",
		Help: "Total number of products added to the catalog",
	})

	ShipmentNotifyFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shipment_notify_failed_total",
		Help: "Total number of failed shipment notifications",
	})

	ShipmentNotifyDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shipment_notify_dropped_total",
		Help: "Total number of shipment notifications dropped due to a full buffer",
	})

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
