// Package metrics holds the process-wide prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CheckoutsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bnpl",
		Subsystem: "checkout",
		Name:      "orders_total",
		Help:      "Create order attempts by outcome.",
	}, []string{"outcome"})

	CheckoutDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bnpl",
		Subsystem: "checkout",
		Name:      "duration_seconds",
		Help:      "Create order pipeline duration.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})

	// step is "shipping" or "gateway"
	ExternalCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bnpl",
		Subsystem: "checkout",
		Name:      "external_call_duration_seconds",
		Help:      "Duration of calls to the shipping service and the payment gateway.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"step", "status"})

	ShippingCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bnpl",
		Subsystem: "shipping",
		Name:      "cache_lookups_total",
		Help:      "Shipping cost cache lookups.",
	}, []string{"result"}) // hit / miss / error

	HTTPRequests = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bnpl",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "status"})
)

func ObserveCheckout(outcome string, d time.Duration) {
	CheckoutsTotal.WithLabelValues(outcome).Inc()
	CheckoutDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

func ObserveExternalCall(step string, err error, d time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ExternalCallDuration.WithLabelValues(step, status).Observe(d.Seconds())
}

func ObserveRequest(route string, status int, d time.Duration) {
	HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Observe(d.Seconds())
}

func Handler() http.Handler {
	return promhttp.Handler()
}
