package infra

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SearchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "facetkit_searches_total",
		Help: "The total number of demo searches served",
	})
	SearchErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "facetkit_search_errors_total",
		Help: "The total number of failed demo searches",
	})
	SearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "facetkit_search_duration_seconds",
		Help:    "Demo search latency",
		Buckets: prometheus.DefBuckets,
	})
)
