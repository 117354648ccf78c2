package gen

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipment-generator/internal/catalog"
	"shipment-generator/internal/shipment"
)

var fixedNow = time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

func generate(t *testing.T, p Profile, seed uint64, opts ...Option) *shipment.Collection {
	t.Helper()
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	c, err := New(p, NewSource(seed), opts...).Generate(context.Background())
	require.NoError(t, err)
	return c
}

func TestGenerateRecordCount(t *testing.T) {
	assert.Len(t, generate(t, RegionalProfile(), 1).Shipments, 1000)
	assert.Len(t, generate(t, FleetProfile(), 1).Shipments, 1000)
	assert.Len(t, generate(t, RegionalProfile(), 1, WithCount(37)).Shipments, 37)
}

func TestGenerateRegionalQuotas(t *testing.T) {
	c := generate(t, RegionalProfile(), 7)

	counts := map[string]int{}
	for i, s := range c.Shipments {
		counts[s.Company]++
		assert.Equal(t, fmt.Sprintf("%s-%04d", s.Company, i+1), s.ID)
	}
	assert.Equal(t, map[string]int{"TBL": 450, "SERMSUK": 450, "HAVI": 100}, counts)
	assert.Equal(t, "TBL-0001", c.Shipments[0].ID)
	assert.Equal(t, "SERMSUK-0451", c.Shipments[450].ID)
	assert.Equal(t, "HAVI-1000", c.Shipments[999].ID)
}

func TestGenerateProperties(t *testing.T) {
	profiles := []Profile{RegionalProfile(), FleetProfile()}
	for _, p := range profiles {
		t.Run(p.Name, func(t *testing.T) {
			c := generate(t, p, 42)
			regions := p.Catalog
			for _, s := range c.Shipments {
				assert.NotEqual(t, s.Origin.Name, s.Destination.Name, s.ID)
				assert.True(t, s.Status.Valid(), s.ID)

				if s.Status == shipment.StatusInTransit {
					assert.GreaterOrEqual(t, s.Progress, 1, s.ID)
					assert.LessOrEqual(t, s.Progress, 99, s.ID)
				} else {
					assert.Equal(t, p.IdleProgress, s.Progress, s.ID)
				}

				switch s.Status {
				case shipment.StatusAvailable:
					assert.InDelta(t, s.Origin.Latitude, s.CurrentPosition.Latitude, AvailableJitter+1e-9, s.ID)
					assert.InDelta(t, s.Origin.Longitude, s.CurrentPosition.Longitude, AvailableJitter+1e-9, s.ID)
				case shipment.StatusBroken:
					assert.InDelta(t, s.Origin.Latitude+BrokenOffsetLat, s.CurrentPosition.Latitude, BrokenJitter+1e-9, s.ID)
					assert.InDelta(t, s.Origin.Longitude+BrokenOffsetLng, s.CurrentPosition.Longitude, BrokenJitter+1e-9, s.ID)
				}

				require.Len(t, s.Route, p.Route.Waypoints, s.ID)
				for _, w := range s.Route {
					assert.False(t, math.IsNaN(w.Lat) || math.IsInf(w.Lat, 0), s.ID)
					assert.False(t, math.IsNaN(w.Lng) || math.IsInf(w.Lng, 0), s.ID)
				}

				assert.GreaterOrEqual(t, len(s.Orders), p.Orders.Count[0], s.ID)
				assert.LessOrEqual(t, len(s.Orders), p.Orders.Count[1], s.ID)
				assert.GreaterOrEqual(t, s.DistanceKm, p.DistanceKm[0], s.ID)
				assert.LessOrEqual(t, s.DistanceKm, p.DistanceKm[1], s.ID)

				originRegion, ok := regions.RegionOf(s.Origin.Name)
				require.True(t, ok)
				destRegion, ok := regions.RegionOf(s.Destination.Name)
				require.True(t, ok)
				if p.Name == Fleet || originRegion == "South" || originRegion == "Northeast" {
					assert.Equal(t, originRegion, destRegion, s.ID)
				}
			}
		})
	}
}

func TestGenerateRegionalTimesAreConsistent(t *testing.T) {
	base := RegionalProfile().Base
	for _, s := range generate(t, RegionalProfile(), 3).Shipments {
		dep, arr := s.DepartureTime.Time, s.EstimatedArrivalTime.Time
		assert.False(t, dep.Before(base), s.ID)
		assert.False(t, dep.After(base.Add(72*time.Hour)), s.ID)
		assert.Equal(t, hoursToDuration(s.EstimatedDurationHours), arr.Sub(dep), s.ID)
		assert.GreaterOrEqual(t, s.EstimatedDurationHours, 5.0)
		assert.LessOrEqual(t, s.EstimatedDurationHours, 48.0)
	}
}

// The fleet feed draws departure and arrival independently; some arrivals
// land before their departure. Downstream consumers see this today.
func TestGenerateFleetArrivalMayPrecedeDeparture(t *testing.T) {
	inverted := 0
	for _, s := range generate(t, FleetProfile(), 11).Shipments {
		if s.EstimatedArrivalTime.Before(s.DepartureTime.Time) {
			inverted++
		}
	}
	assert.Positive(t, inverted)

	for _, s := range generate(t, FleetProfile(), 11, WithTiming(ConsistentFleetTiming())).Shipments {
		assert.True(t, s.EstimatedArrivalTime.After(s.DepartureTime.Time), s.ID)
	}
}

func TestGenerateFleetStatusBlocks(t *testing.T) {
	c := generate(t, FleetProfile(), 5)
	for i, s := range c.Shipments {
		switch {
		case i < 800:
			assert.Equal(t, shipment.StatusInTransit, s.Status)
		case i < 900:
			assert.Equal(t, shipment.StatusAvailable, s.Status)
		default:
			assert.Equal(t, shipment.StatusBroken, s.Status)
		}
	}
}

func TestGenerateFleetMetadata(t *testing.T) {
	p := FleetProfile()
	for _, s := range generate(t, p, 9, WithCount(50)).Shipments {
		require.NotNil(t, s.Truck, s.ID)
		assert.Contains(t, p.Fleet.SupportPhones, s.SupportPhone)
		assert.Contains(t, p.Fleet.TruckClasses, s.Truck.TruckClass)
		assert.Contains(t, p.Fleet.DriverNames, s.Truck.DriverName)
		assert.Equal(t, "RDC "+s.Origin.Name, s.Truck.Depot)
		assert.True(t, strings.HasPrefix(s.Truck.DriverPhone, "08"))
		assert.Len(t, s.Truck.DriverPhone, 10)
		assert.GreaterOrEqual(t, s.Truck.Region, 1)
		assert.LessOrEqual(t, s.Truck.Region, 4)
		assert.True(t, strings.HasSuffix(s.Warehouse, ": RDC "+s.Origin.Name))
		assert.NotEmpty(t, s.Region)
		assert.Contains(t, []string{"TBL", "SERMSUK", "Longtitude"}, s.Company)
		require.Len(t, s.Orders, 1)
		assert.True(t, strings.HasPrefix(s.Orders[0].OrderID, "ORD-TBL"))
	}
	for _, s := range generate(t, RegionalProfile(), 9, WithCount(50)).Shipments {
		assert.Nil(t, s.Truck)
		assert.Empty(t, s.Warehouse)
		assert.Empty(t, s.SupportPhone)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, err := json.Marshal(generate(t, FleetProfile(), 99))
	require.NoError(t, err)
	b, err := json.Marshal(generate(t, FleetProfile(), 99))
	require.NoError(t, err)
	c, err := json.Marshal(generate(t, FleetProfile(), 100))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestGenerateUsesClockForFleet(t *testing.T) {
	c := generate(t, FleetProfile(), 1, WithCount(200))
	for _, s := range c.Shipments {
		dep := s.DepartureTime.Time
		assert.False(t, dep.Before(fixedNow.AddDate(0, 0, -3)), s.ID)
		assert.False(t, dep.After(fixedNow.AddDate(0, 0, 3)), s.ID)
	}

	pinned := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)
	c = generate(t, FleetProfile(), 1, WithCount(10), WithBase(pinned))
	for _, s := range c.Shipments {
		assert.False(t, s.DepartureTime.Before(pinned.AddDate(0, 0, -3)), s.ID)
	}
}

func TestGenerateRejectsInvalidCatalog(t *testing.T) {
	bad := &catalog.Catalog{Regions: []catalog.Region{
		{Name: "Solo", Provinces: []catalog.Province{{Name: "Only", Latitude: 1, Longitude: 1}}},
	}}
	_, err := New(FleetProfile(), NewSource(1), WithCatalog(bad)).Generate(context.Background())
	assert.ErrorIs(t, err, catalog.ErrInvalid)
}

func TestGenerateHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(RegionalProfile(), NewSource(1)).Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

type countingObserver struct{ byStatus map[shipment.Status]int }

func (o *countingObserver) ObserveShipment(_ string, s *shipment.Shipment) {
	o.byStatus[s.Status]++
}

func TestGenerateNotifiesObserver(t *testing.T) {
	obs := &countingObserver{byStatus: map[shipment.Status]int{}}
	generate(t, FleetProfile(), 1, WithObserver(obs))
	assert.Equal(t, 800, obs.byStatus[shipment.StatusInTransit])
	assert.Equal(t, 100, obs.byStatus[shipment.StatusAvailable])
	assert.Equal(t, 100, obs.byStatus[shipment.StatusBroken])
}

func TestLookup(t *testing.T) {
	for _, name := range Profiles {
		p, ok := Lookup(name)
		require.True(t, ok)
		assert.Equal(t, name, p.Name)
	}
	_, ok := Lookup("nope")
	assert.False(t, ok)
}
