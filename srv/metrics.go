package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var inferTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "sleuth_infer_total",
	Help: "Documents run through schema inference.",
}, []string{"status"})

var inferDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "sleuth_infer_duration_seconds",
	Help:    "Time spent inferring one document's schema.",
	Buckets: prometheus.DefBuckets,
})
