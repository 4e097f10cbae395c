package metrics

import (
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	reg *prometheus.Registry

	JourneyActive    prometheus.Gauge
	CompletionPct    prometheus.Gauge
	CitiesVisited    prometheus.Gauge
	BasketsDelivered prometheus.Gauge

	TicksTotal     prometheus.Counter
	TicksNoJourney prometheus.Counter

	NATSPublished   prometheus.Counter
	NATSPublishErrs prometheus.Counter
	NATSConnected   prometheus.Gauge

	TickDuration    prometheus.Histogram
	PublishDuration prometheus.Histogram

	PublishInterval prometheus.Gauge // seconds
}

func NewCollector(publishInterval time.Duration) *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		JourneyActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tracker_journey_active",
			Help: "1 while the global Easter window contains the current instant.",
		}),
		CompletionPct: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tracker_completion_percentage",
			Help: "Progress through the global Easter window, 0-100.",
		}),
		CitiesVisited: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tracker_cities_visited",
			Help: "Index of the current city in the visit schedule.",
		}),
		BasketsDelivered: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tracker_baskets_delivered",
			Help: "Estimated baskets delivered so far.",
		}),
		TicksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracker_ticks_total",
			Help: "Total position computation ticks.",
		}),
		TicksNoJourney: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracker_ticks_no_journey_total",
			Help: "Ticks computed outside any Easter window.",
		}),
		NATSPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracker_nats_published_total",
			Help: "Total NATS messages published.",
		}),
		NATSPublishErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tracker_nats_publish_errors_total",
			Help: "Total NATS publish errors.",
		}),
		NATSConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tracker_nats_connected",
			Help: "1 if NATS connection is established, 0 otherwise.",
		}),
		TickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tracker_tick_duration_seconds",
			Help:    "Duration of position computation ticks.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 15),
		}),
		PublishDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tracker_publish_duration_seconds",
			Help:    "Duration to marshal and publish a NATS message.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 15),
		}),
		PublishInterval: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tracker_publish_interval_seconds",
			Help: "Tick interval in seconds.",
		}),
	}

	reg.MustRegister(
		c.JourneyActive, c.CompletionPct, c.CitiesVisited, c.BasketsDelivered,
		c.TicksTotal, c.TicksNoJourney,
		c.NATSPublished, c.NATSPublishErrs, c.NATSConnected,
		c.TickDuration, c.PublishDuration,
		c.PublishInterval,
	)

	c.PublishInterval.Set(publishInterval.Seconds())

	return c
}

func (c *Collector) Handler() http.Handler { return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}) }

// Serve starts an HTTP server exposing /metrics on the given address.
func (c *Collector) Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("metrics server error: %v", err)
		}
	}()
	log.Printf("metrics listening on %s", addr)
	return srv
}

// NATSPublishedInc implements publisher.Metrics.
func (c *Collector) NATSPublishedInc() { c.NATSPublished.Inc() }

// NATSPublishErrInc implements publisher.Metrics.
func (c *Collector) NATSPublishErrInc() { c.NATSPublishErrs.Inc() }

// PublishObserve implements publisher.Metrics.
func (c *Collector) PublishObserve(d time.Duration) { c.PublishDuration.Observe(d.Seconds()) }

// NATSSetConnected implements publisher.Metrics.
func (c *Collector) NATSSetConnected(connected bool) {
	if connected {
		c.NATSConnected.Set(1)
	} else {
		c.NATSConnected.Set(0)
	}
}
