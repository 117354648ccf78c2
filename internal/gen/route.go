package gen

import (
	"fmt"

	"shipment-generator/internal/geo"
	"shipment-generator/internal/shipment"
)

// RouteSpec shapes the waypoint list of a shipment.
type RouteSpec struct {
	Waypoints int
	Jitter    float64 // degrees, per axis
	Precision int     // decimal places kept
}

// Route returns spec.Waypoints points evenly spaced from origin to dest, each
// axis nudged by up to spec.Jitter degrees.
func Route(src *Source, origin, dest shipment.Place, spec RouteSpec) ([]shipment.Waypoint, error) {
	n := spec.Waypoints
	if n < 2 {
		return nil, fmt.Errorf("route needs at least 2 waypoints, got %d", n)
	}
	pts := make([]shipment.Waypoint, n)
	for i := range pts {
		f := float64(i) / float64(n-1)
		lat, lng := geo.Lerp(origin.Latitude, origin.Longitude, dest.Latitude, dest.Longitude, f)
		pts[i] = shipment.Waypoint{
			Lat: round(src.Jitter(lat, spec.Jitter), spec.Precision),
			Lng: round(src.Jitter(lng, spec.Jitter), spec.Precision),
		}
	}
	return pts, nil
}
