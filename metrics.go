package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "giftsender_client",
			Name:      "requests_total",
			Help:      "Requests observed by the client, by classified outcome.",
		},
		[]string{"kind"},
	)

	notificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "giftsender_client",
			Name:      "notifications_total",
			Help:      "User-facing failure notifications raised, by kind.",
		},
		[]string{"kind"},
	)
)
