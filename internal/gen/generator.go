package gen

import (
	"context"
	"fmt"
	"time"

	"shipment-generator/internal/catalog"
	"shipment-generator/internal/shipment"
)

// Observer is notified of every record right after it is built.
type Observer interface {
	ObserveShipment(profile string, s *shipment.Shipment)
}

type Generator struct {
	profile  Profile
	src      *Source
	now      func() time.Time
	observer Observer
}

type Option func(*Generator)

// WithCount resizes the run, keeping the profile's company proportions.
func WithCount(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.profile.Companies = g.profile.Companies.Scale(n)
		}
	}
}

// WithBase pins the time every timestamp is derived from.
func WithBase(t time.Time) Option {
	return func(g *Generator) { g.profile.Base = t }
}

// WithClock sets the clock used when the profile has no fixed base.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

func WithCatalog(c *catalog.Catalog) Option {
	return func(g *Generator) {
		if c != nil {
			g.profile.Catalog = c
		}
	}
}

func WithTiming(t Timing) Option {
	return func(g *Generator) { g.profile.Timing = t }
}

func WithObserver(o Observer) Option {
	return func(g *Generator) { g.observer = o }
}

func New(p Profile, src *Source, opts ...Option) *Generator {
	g := &Generator{profile: p, src: src, now: time.Now}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Profile returns the profile after options were applied.
func (g *Generator) Profile() Profile { return g.profile }

// Generate builds the whole collection. It stops at the first error.
func (g *Generator) Generate(ctx context.Context) (*shipment.Collection, error) {
	p := g.profile
	if err := p.Catalog.Validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", p.Name, err)
	}
	base := p.Base
	if base.IsZero() {
		base = g.now()
	}
	total := p.Companies.Total()
	out := &shipment.Collection{Shipments: make([]shipment.Shipment, 0, total)}
	for seq := 0; seq < total; seq++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s, err := g.record(seq, total, base)
		if err != nil {
			return nil, fmt.Errorf("profile %s record %d: %w", p.Name, seq+1, err)
		}
		out.Shipments = append(out.Shipments, s)
		if g.observer != nil {
			g.observer.ObserveShipment(p.Name, &out.Shipments[len(out.Shipments)-1])
		}
	}
	return out, nil
}

func (g *Generator) record(seq, total int, base time.Time) (shipment.Shipment, error) {
	p, src := g.profile, g.src

	company := p.Companies.Company(src, seq)
	status := p.Status.Assign(src, seq, total)
	progress := Progress(src, status, p.IdleProgress)

	leg, err := p.Selector.Select(src, p.Catalog)
	if err != nil {
		return shipment.Shipment{}, err
	}
	origin, dest := toPlace(leg.Origin), toPlace(leg.Destination)

	sched := p.Timing.Schedule(src, base)
	route, err := Route(src, origin, dest, p.Route)
	if err != nil {
		return shipment.Shipment{}, err
	}
	pos, err := CurrentPosition(src, origin, dest, status, progress)
	if err != nil {
		return shipment.Shipment{}, err
	}

	s := shipment.Shipment{
		ID:                     fmt.Sprintf("%s-%04d", company, seq+1),
		Company:                company,
		Origin:                 origin,
		Destination:            dest,
		DepartureTime:          shipment.Timestamp{Time: sched.Departure},
		EstimatedArrivalTime:   shipment.Timestamp{Time: sched.Arrival},
		DistanceKm:             g.distance(),
		EstimatedDurationHours: sched.DurationHours,
		Status:                 status,
		Progress:               progress,
		CurrentPosition:        pos,
		Orders:                 Orders(src, company, p.Orders),
		Route:                  route,
	}
	if p.Fleet != nil {
		s.SupportPhone = Pick(src, p.Fleet.SupportPhones)
		s.Truck = Truck(src, origin.Name, *p.Fleet)
		s.Region = leg.Region
		s.Warehouse = Warehouse(src, origin.Name, *p.Fleet)
	}
	return s, nil
}

func (g *Generator) distance() float64 {
	lo, hi := g.profile.DistanceKm[0], g.profile.DistanceKm[1]
	if g.profile.DistanceWhole {
		return float64(g.src.IntRange(int(lo), int(hi)))
	}
	return round(g.src.Uniform(lo, hi), 1)
}

func toPlace(p catalog.Place) shipment.Place {
	return shipment.Place{Name: p.Name, Latitude: p.Latitude, Longitude: p.Longitude}
}
