package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	assert.Zero(t, Haversine(13.7563, 100.5018, 13.7563, 100.5018))

	// Bangkok -> Chiang Mai is roughly 580 km as the crow flies.
	d := Haversine(13.7563, 100.5018, 18.7883, 98.9853) / 1000
	assert.InDelta(t, 585, d, 15)

	assert.InDelta(t, Haversine(1, 2, 3, 4), Haversine(3, 4, 1, 2), 1e-6)
}

func TestLerp(t *testing.T) {
	lat, lon := Lerp(10, 100, 20, 110, 0.5)
	assert.InDelta(t, 15, lat, 1e-12)
	assert.InDelta(t, 105, lon, 1e-12)

	lat, lon = Lerp(10, 100, 20, 110, 0)
	assert.Equal(t, 10.0, lat)
	assert.Equal(t, 100.0, lon)

	lat, lon = Lerp(10, 100, 20, 110, 1.5)
	assert.Equal(t, 20.0, lat)
	assert.Equal(t, 110.0, lon)
}
