package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "freyr",
		Name:      "orders_accepted_total",
		Help:      "Orders accepted into the pending buffer.",
	})
	ordersRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "freyr",
		Name:      "orders_rejected_total",
		Help:      "Orders rejected at submission.",
	})
	cyclesRun = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "freyr",
		Name:      "cycles_total",
		Help:      "Completed clearing cycles.",
	})
	cycleFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "freyr",
		Name:      "cycle_failures_total",
		Help:      "Clearing cycles aborted by a collaborator failure.",
	})
	tradesCleared = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "freyr",
		Name:      "trades_total",
		Help:      "Pending trades settled.",
	})
	volumeCleared = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "freyr",
		Name:      "volume_total",
		Help:      "Total quantity settled across all periods.",
	})
)
