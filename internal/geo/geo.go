package geo

import "math"

const earthRadiusMeters = 6371000.0

// Haversine distance in meters
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}

// Lerp interpolates between (lat1, lon1) and (lat2, lon2) at frac in [0,1].
// Plain linear interpolation in degrees; fine for the short spans we draw.
func Lerp(lat1, lon1, lat2, lon2, frac float64) (lat, lon float64) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return lat1 + (lat2-lat1)*frac, lon1 + (lon2-lon1)*frac
}
