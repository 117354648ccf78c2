package gen

import (
	"errors"
	"fmt"

	"shipment-generator/internal/geo"
	"shipment-generator/internal/shipment"
)

var ErrUnknownStatus = errors.New("unknown status")

const (
	// Parked trucks sit within this many degrees of the origin.
	AvailableJitter = 0.01

	// Broken trucks cluster around a yard offset from the origin.
	BrokenOffsetLat = 0.009
	BrokenOffsetLng = -0.005
	BrokenJitter    = 0.003

	TransitJitter    = 0.01
	transitPrecision = 5
)

// CurrentPosition places a truck according to its status and progress.
func CurrentPosition(src *Source, origin, dest shipment.Place, status shipment.Status, progress int) (shipment.Position, error) {
	switch status {
	case shipment.StatusAvailable:
		return shipment.Position{
			Latitude:  src.Jitter(origin.Latitude, AvailableJitter),
			Longitude: src.Jitter(origin.Longitude, AvailableJitter),
		}, nil
	case shipment.StatusBroken:
		return shipment.Position{
			Latitude:  src.Jitter(origin.Latitude+BrokenOffsetLat, BrokenJitter),
			Longitude: src.Jitter(origin.Longitude+BrokenOffsetLng, BrokenJitter),
		}, nil
	case shipment.StatusInTransit:
		lat, lng := geo.Lerp(origin.Latitude, origin.Longitude, dest.Latitude, dest.Longitude, float64(progress)/100)
		return shipment.Position{
			Latitude:  round(src.Jitter(lat, TransitJitter), transitPrecision),
			Longitude: round(src.Jitter(lng, TransitJitter), transitPrecision),
		}, nil
	}
	return shipment.Position{}, fmt.Errorf("current position for %q: %w", status, ErrUnknownStatus)
}
