package apiserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "useswap",
		Subsystem: "rpc",
		Name:      "requests_total",
		Help:      "json rpc requests by method and result",
	}, []string{"method", "result"})

	rpcDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "useswap",
		Subsystem: "rpc",
		Name:      "request_duration_seconds",
		Help:      "json rpc handling time",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	txExecuted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "useswap",
		Subsystem: "chain",
		Name:      "transactions_total",
		Help:      "executed transactions by contract method and status",
	}, []string{"method", "status"})

	chainHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "useswap",
		Subsystem: "chain",
		Name:      "height",
		Help:      "height of the committed context",
	})
)
