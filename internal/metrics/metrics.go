package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"shipment-generator/internal/geo"
	"shipment-generator/internal/shipment"
)

// Collector holds the run's metrics. A generator run is short-lived, so the
// registry is exported once at the end (textfile and/or Pushgateway) rather
// than scraped.
type Collector struct {
	reg *prometheus.Registry

	ShipmentsGenerated *prometheus.CounterVec // profile, company, status
	OrdersGenerated    *prometheus.CounterVec // profile
	RouteSpanKm        *prometheus.HistogramVec

	GenerateDuration *prometheus.HistogramVec
	WriteDuration    *prometheus.HistogramVec
	OutputBytes      *prometheus.GaugeVec

	NATSPublished   prometheus.Counter
	NATSPublishErrs prometheus.Counter
	NATSConnected   prometheus.Gauge
	PublishDuration prometheus.Histogram

	DBRowsInserted *prometheus.CounterVec

	Seed prometheus.Gauge
}

func NewCollector(seed uint64) *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		ShipmentsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shipgen_shipments_generated_total",
			Help: "Shipment records generated.",
		}, []string{"profile", "company", "status"}),
		OrdersGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shipgen_orders_generated_total",
			Help: "Order sub-records generated.",
		}, []string{"profile"}),
		RouteSpanKm: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shipgen_route_span_km",
			Help:    "Great-circle distance between origin and destination.",
			Buckets: []float64{25, 50, 100, 200, 400, 600, 800, 1000, 1500},
		}, []string{"profile"}),
		GenerateDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shipgen_generate_duration_seconds",
			Help:    "Time spent synthesizing one profile's collection.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
		}, []string{"profile"}),
		WriteDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shipgen_write_duration_seconds",
			Help:    "Time spent serializing and writing one fixture file.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
		}, []string{"profile"}),
		OutputBytes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "shipgen_output_bytes",
			Help: "Size of the last fixture file written.",
		}, []string{"profile"}),
		NATSPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shipgen_nats_published_total",
			Help: "Total NATS messages published.",
		}),
		NATSPublishErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shipgen_nats_publish_errors_total",
			Help: "Total NATS publish errors.",
		}),
		NATSConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "shipgen_nats_connected",
			Help: "1 if NATS connection is established, 0 otherwise.",
		}),
		PublishDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "shipgen_publish_duration_seconds",
			Help:    "Duration to marshal and publish a NATS message.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 15),
		}),
		DBRowsInserted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shipgen_db_rows_inserted_total",
			Help: "Shipment rows upserted into Postgres.",
		}, []string{"profile"}),
		Seed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "shipgen_last_seed",
			Help: "Seed of the last run (float64, may lose low bits for large seeds).",
		}),
	}

	reg.MustRegister(
		c.ShipmentsGenerated, c.OrdersGenerated, c.RouteSpanKm,
		c.GenerateDuration, c.WriteDuration, c.OutputBytes,
		c.NATSPublished, c.NATSPublishErrs, c.NATSConnected, c.PublishDuration,
		c.DBRowsInserted, c.Seed,
	)
	c.Seed.Set(float64(seed))

	return c
}

// Registry exposes the underlying registry as a Gatherer.
func (c *Collector) Registry() prometheus.Gatherer { return c.reg }

// ObserveShipment records one generated shipment.
func (c *Collector) ObserveShipment(profile string, s *shipment.Shipment) {
	c.ShipmentsGenerated.WithLabelValues(profile, s.Company, string(s.Status)).Inc()
	c.OrdersGenerated.WithLabelValues(profile).Add(float64(len(s.Orders)))
	span := geo.Haversine(s.Origin.Latitude, s.Origin.Longitude, s.Destination.Latitude, s.Destination.Longitude)
	c.RouteSpanKm.WithLabelValues(profile).Observe(span / 1000)
}

// ObserveWrite records a finished fixture write.
func (c *Collector) ObserveWrite(profile string, d time.Duration, bytes int64) {
	c.WriteDuration.WithLabelValues(profile).Observe(d.Seconds())
	c.OutputBytes.WithLabelValues(profile).Set(float64(bytes))
}

// WriteTextfile dumps the registry in the node-exporter textfile format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

// Push sends the registry to a Pushgateway under job.
func (c *Collector) Push(ctx context.Context, url, job string) error {
	if err := push.New(url, job).Gatherer(c.reg).PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics: %w", err)
	}
	return nil
}

// PublisherMetrics adapts the collector to the publisher's metrics interface.
func (c *Collector) PublisherMetrics() *PublisherMetrics { return &PublisherMetrics{c: c} }

type PublisherMetrics struct{ c *Collector }

func (p *PublisherMetrics) NATSPublishedInc()              { p.c.NATSPublished.Inc() }
func (p *PublisherMetrics) NATSPublishErrInc()             { p.c.NATSPublishErrs.Inc() }
func (p *PublisherMetrics) PublishObserve(d time.Duration) { p.c.PublishDuration.Observe(d.Seconds()) }
func (p *PublisherMetrics) NATSSetConnected(b bool) {
	if b {
		p.c.NATSConnected.Set(1)
	} else {
		p.c.NATSConnected.Set(0)
	}
}
