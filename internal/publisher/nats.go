package publisher

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"shipment-generator/internal/shipment"
)

// NATSPublisher fans generated shipments out to a downstream tracking app.
type NATSPublisher struct {
	nc          *nats.Conn
	prefix      string
	logSubjects bool
	metrics     PublisherMetrics
	log         *zap.Logger
}

type PublisherMetrics interface {
	NATSPublishedInc()
	NATSPublishErrInc()
	PublishObserve(d time.Duration)
	NATSSetConnected(connected bool)
}

func NewNATSPublisher(url, prefix string, logSubjects bool, m PublisherMetrics, log *zap.Logger) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("shipgen"),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if m != nil {
				m.NATSSetConnected(false)
			}
			log.Warn("nats disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			if m != nil {
				m.NATSSetConnected(true)
			}
			log.Info("nats reconnected")
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			if m != nil {
				m.NATSSetConnected(false)
			}
			log.Debug("nats closed")
		}),
	)
	if err != nil {
		return nil, err
	}
	if m != nil {
		m.NATSSetConnected(true)
	}
	return newPublisher(nc, prefix, logSubjects, m, log), nil
}

func newPublisher(nc *nats.Conn, prefix string, logSubjects bool, m PublisherMetrics, log *zap.Logger) *NATSPublisher {
	return &NATSPublisher{nc: nc, prefix: prefix, logSubjects: logSubjects, metrics: m, log: log}
}

func (p *NATSPublisher) Close() {
	if p.nc != nil {
		_ = p.nc.Drain()
		p.nc.Close()
	}
}

// Flush blocks until the server has acknowledged everything published so far.
func (p *NATSPublisher) Flush(timeout time.Duration) error {
	return p.nc.FlushTimeout(timeout)
}

// Subject is <prefix>.<profile>.<company>.<status>. The prefix may itself
// hold several tokens.
func (p *NATSPublisher) Subject(profile string, s *shipment.Shipment) string {
	return fmt.Sprintf("%s.%s.%s.%s", p.prefix, subjectToken(profile), subjectToken(s.Company), subjectToken(string(s.Status)))
}

func (p *NATSPublisher) PublishShipment(profile string, s *shipment.Shipment) error {
	subject := p.Subject(profile, s)
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if p.logSubjects {
		p.log.Debug("nats publish", zap.String("subject", subject), zap.String("id", s.ID))
	}
	start := time.Now()
	err = p.nc.Publish(subject, b)
	if p.metrics != nil {
		p.metrics.PublishObserve(time.Since(start))
		if err != nil {
			p.metrics.NATSPublishErrInc()
		} else {
			p.metrics.NATSPublishedInc()
		}
	}
	return err
}

// PublishAll publishes every shipment of a collection, then flushes.
func (p *NATSPublisher) PublishAll(profile string, c *shipment.Collection) error {
	for i := range c.Shipments {
		if err := p.PublishShipment(profile, &c.Shipments[i]); err != nil {
			return fmt.Errorf("publish %s: %w", c.Shipments[i].ID, err)
		}
	}
	return p.Flush(10 * time.Second)
}

func subjectToken(s string) string {
	s = strings.TrimSpace(s)
	// NATS token cannot contain spaces, '>', '*', or trailing '.'
	repl := strings.NewReplacer(" ", "_", ".", "_", ">", "_", "*", "_", "/", "_", "\t", "_")
	s = repl.Replace(s)
	if s == "" {
		s = "_"
	}
	return s
}
