package catalog

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinsValidate(t *testing.T) {
	for name, c := range map[string]*Catalog{"regional": Regional(), "fleet": Fleet()} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, c.Validate())
		})
	}
	assert.Len(t, Regional().Places(), 15)
	assert.Len(t, Fleet().Places(), 8)
}

func TestPlacesOrderAndRegion(t *testing.T) {
	places := Regional().Places()
	assert.Equal(t, "กรุงเทพฯ", places[0].Name)
	assert.Equal(t, "Central", places[0].Region)
	assert.Equal(t, "นครศรีธรรมราช", places[len(places)-1].Name)
	assert.Equal(t, "South", places[len(places)-1].Region)

	region, ok := Regional().RegionOf("สกลนคร")
	require.True(t, ok)
	assert.Equal(t, "Northeast", region)

	_, ok = Regional().RegionOf("Atlantis")
	assert.False(t, ok)

	r, ok := Fleet().Region("South")
	require.True(t, ok)
	assert.Len(t, r.Provinces, 2)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name    string
		catalog *Catalog
		want    string
	}{
		{"empty", &Catalog{}, "no regions"},
		{"single province", &Catalog{Regions: []Region{
			{Name: "A", Provinces: []Province{{"x", 1, 1}}},
		}}, "at least 2"},
		{"duplicate province", &Catalog{Regions: []Region{
			{Name: "A", Provinces: []Province{{"x", 1, 1}, {"y", 2, 2}}},
			{Name: "B", Provinces: []Province{{"x", 1, 1}, {"z", 2, 2}}},
		}}, "listed in"},
		{"duplicate region", &Catalog{Regions: []Region{
			{Name: "A", Provinces: []Province{{"x", 1, 1}, {"y", 2, 2}}},
			{Name: "A", Provinces: []Province{{"w", 1, 1}, {"z", 2, 2}}},
		}}, "duplicate region"},
		{"latitude out of range", &Catalog{Regions: []Region{
			{Name: "A", Provinces: []Province{{"x", 91, 1}, {"y", 2, 2}}},
		}}, "bad coordinates"},
		{"nan longitude", &Catalog{Regions: []Region{
			{Name: "A", Provinces: []Province{{"x", 1, math.NaN()}, {"y", 2, 2}}},
		}}, "bad coordinates"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEncodeDecodeTOML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fleet().Encode(&buf))
	assert.Contains(t, buf.String(), "[[regions]]")

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Fleet(), got)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	doc := `
[[regions]]
name = "West"

  [[regions.provinces]]
  name = "Kanchanaburi"
  latitude = 14.0228
  longitude = 99.5328

  [[regions.provinces]]
  name = "Ratchaburi"
  latitude = 13.5283
  longitude = 99.8134
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Regions, 1)
	assert.Equal(t, "West", c.Regions[0].Name)
	assert.Equal(t, 13.5283, c.Regions[0].Provinces[1].Latitude)

	_, err = Decode(strings.NewReader("[[regions]]\nname = \"Lonely\"\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
