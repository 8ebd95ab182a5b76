// Package metrics exposes the application's prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	SearchesTotal   prometheus.Counter
	OffersReturned  prometheus.Counter
	SearchDuration  prometheus.Histogram
	Notifications   *prometheus.CounterVec
	ProviderErrors  *prometheus.CounterVec
	RegisteredUsers prometheus.Counter
}

// New creates new prometheus metrics registered on the default registry.
func New(namespace string) *Metrics {
	return &Metrics{
		SearchesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "The total number of flight searches served",
		}),
		OffersReturned: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offers_returned_total",
			Help:      "The total number of flight offers returned to clients",
		}),
		SearchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Time taken to answer a flight search",
			Buckets:   prometheus.DefBuckets,
		}),
		Notifications: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "The total number of notification attempts",
		}, []string{"channel", "status"}),
		ProviderErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_errors_total",
			Help:      "The total number of provider failures",
		}, []string{"provider"}),
		RegisteredUsers: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registered_users_total",
			Help:      "The total number of user registrations",
		}),
	}
}
