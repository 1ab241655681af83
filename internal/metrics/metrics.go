// Package metrics exposes the Prometheus instruments for the order pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Orders accepted and durably recorded.",
	})

	ValidationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "order_validation_failures_total",
		Help: "Submissions rejected for missing required fields.",
	})

	PersistenceFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "order_persistence_failures_total",
		Help: "Orders lost because the store could not be written.",
	})

	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notifications_sent_total",
		Help: "Notifications delivered, by channel.",
	}, []string{"channel"})

	NotificationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notification_failures_total",
		Help: "Notifications that failed or were dropped, by channel.",
	}, []string{"channel"})
)
