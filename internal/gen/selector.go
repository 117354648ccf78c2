package gen

import (
	"errors"
	"fmt"
	"slices"

	"shipment-generator/internal/catalog"
)

// ErrNoEligibleChoice is returned when a pool a selector samples from is empty.
var ErrNoEligibleChoice = errors.New("no eligible choice")

// Leg is a selected origin/destination pair.
type Leg struct {
	Origin      catalog.Place
	Destination catalog.Place
	// Region is the region the pair was drawn for (the origin's region).
	Region string
}

// PairSelector chooses an origin and a distinct destination from a catalog.
type PairSelector interface {
	Select(src *Source, c *catalog.Catalog) (Leg, error)
}

// RegionRestricted draws the origin from all places. Origins in a restricted
// region only ship within that region; any other origin may ship anywhere.
type RegionRestricted struct {
	Restricted []string
}

func (s RegionRestricted) Select(src *Source, c *catalog.Catalog) (Leg, error) {
	places := c.Places()
	if len(places) == 0 {
		return Leg{}, fmt.Errorf("origin: %w", ErrNoEligibleChoice)
	}
	origin := Pick(src, places)

	pool := make([]catalog.Place, 0, len(places))
	restricted := slices.Contains(s.Restricted, origin.Region)
	for _, p := range places {
		if p.Name == origin.Name {
			continue
		}
		if restricted && p.Region != origin.Region {
			continue
		}
		pool = append(pool, p)
	}
	if len(pool) == 0 {
		return Leg{}, fmt.Errorf("destination for %q: %w", origin.Name, ErrNoEligibleChoice)
	}
	return Leg{Origin: origin, Destination: Pick(src, pool), Region: origin.Region}, nil
}

// SameRegion picks one region and two distinct provinces inside it.
type SameRegion struct{}

func (SameRegion) Select(src *Source, c *catalog.Catalog) (Leg, error) {
	if len(c.Regions) == 0 {
		return Leg{}, fmt.Errorf("region: %w", ErrNoEligibleChoice)
	}
	r := Pick(src, c.Regions)
	if len(r.Provinces) < 2 {
		return Leg{}, fmt.Errorf("region %q has %d provinces: %w", r.Name, len(r.Provinces), ErrNoEligibleChoice)
	}
	i, j := src.Sample2(len(r.Provinces))
	return Leg{
		Origin:      catalog.Place{Province: r.Provinces[i], Region: r.Name},
		Destination: catalog.Place{Province: r.Provinces[j], Region: r.Name},
		Region:      r.Name,
	}, nil
}
