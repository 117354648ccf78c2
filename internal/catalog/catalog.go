package catalog

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid catalog")

type Province struct {
	Name      string  `toml:"name"`
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
}

type Region struct {
	Name      string     `toml:"name"`
	Provinces []Province `toml:"provinces"`
}

// Catalog is the geographic reference table a generator samples from.
// Treat it as read-only once handed to a generator.
type Catalog struct {
	Regions []Region `toml:"regions"`
}

// Place is a province tagged with the region it belongs to.
type Place struct {
	Province
	Region string
}

// Places flattens the catalog in declaration order.
func (c *Catalog) Places() []Place {
	var out []Place
	for _, r := range c.Regions {
		for _, p := range r.Provinces {
			out = append(out, Place{Province: p, Region: r.Name})
		}
	}
	return out
}

// Region returns the region with the given name.
func (c *Catalog) Region(name string) (Region, bool) {
	for _, r := range c.Regions {
		if r.Name == name {
			return r, true
		}
	}
	return Region{}, false
}

// RegionOf returns the name of the region holding the province.
func (c *Catalog) RegionOf(province string) (string, bool) {
	for _, r := range c.Regions {
		for _, p := range r.Provinces {
			if p.Name == province {
				return r.Name, true
			}
		}
	}
	return "", false
}

func (c *Catalog) Validate() error {
	if c == nil || len(c.Regions) == 0 {
		return fmt.Errorf("%w: no regions", ErrInvalid)
	}
	regions := make(map[string]bool, len(c.Regions))
	seen := make(map[string]string)
	for _, r := range c.Regions {
		if r.Name == "" {
			return fmt.Errorf("%w: region without name", ErrInvalid)
		}
		if regions[r.Name] {
			return fmt.Errorf("%w: duplicate region %q", ErrInvalid, r.Name)
		}
		regions[r.Name] = true
		if len(r.Provinces) < 2 {
			return fmt.Errorf("%w: region %q needs at least 2 provinces, has %d", ErrInvalid, r.Name, len(r.Provinces))
		}
		for _, p := range r.Provinces {
			if p.Name == "" {
				return fmt.Errorf("%w: province without name in region %q", ErrInvalid, r.Name)
			}
			if other, ok := seen[p.Name]; ok {
				return fmt.Errorf("%w: province %q listed in %q and %q", ErrInvalid, p.Name, other, r.Name)
			}
			seen[p.Name] = r.Name
			if !validCoord(p.Latitude, 90) || !validCoord(p.Longitude, 180) {
				return fmt.Errorf("%w: province %q has bad coordinates (%v, %v)", ErrInvalid, p.Name, p.Latitude, p.Longitude)
			}
		}
	}
	return nil
}

func validCoord(v, bound float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= -bound && v <= bound
}

// Decode reads a TOML catalog and validates it.
func Decode(r io.Reader) (*Catalog, error) {
	var c Catalog
	if _, err := toml.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Encode writes the catalog as TOML.
func (c *Catalog) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
