// Package sites loads named ground sites from a TOML catalog.
//
// A catalog file holds one [[site]] table per entry:
//
//	[[site]]
//	name = "malindi"
//	x    = 5186.454
//	y    = 3653.907
//	z    = -326.011
//
// Coordinates are ECEF kilometers, the same frame the conversion
// routines work in.
package sites

import (
	"fmt"
	"math"
	"sort"

	"github.com/midbel/toml"

	"github.com/groundtrack/sezgo/internal/frames"
)

// Site is one named ground point.
type Site struct {
	Name string
	X    float64
	Y    float64
	Z    float64
}

// Position returns the site's ECEF position.
func (s Site) Position() frames.ECEF {
	return frames.ECEF{X: s.X, Y: s.Y, Z: s.Z}
}

// Catalog is a set of sites indexed by name. Methods are safe on a nil
// receiver so callers without a catalog can skip the nil checks.
type Catalog struct {
	byName map[string]Site
}

type catalogFile struct {
	Sites []Site `toml:"site"`
}

// Load reads a TOML catalog from path.
func Load(path string) (*Catalog, error) {
	var cf catalogFile
	if err := toml.DecodeFile(path, &cf); err != nil {
		return nil, fmt.Errorf("decode site catalog %s: %w", path, err)
	}
	c, err := New(cf.Sites)
	if err != nil {
		return nil, fmt.Errorf("site catalog %s: %w", path, err)
	}
	return c, nil
}

// New builds a catalog from a list of sites. Every site needs a unique,
// non-empty name and finite coordinates.
func New(list []Site) (*Catalog, error) {
	byName := make(map[string]Site, len(list))
	for i, s := range list {
		if s.Name == "" {
			return nil, fmt.Errorf("site %d has no name", i+1)
		}
		if _, ok := byName[s.Name]; ok {
			return nil, fmt.Errorf("duplicate site %q", s.Name)
		}
		if !finite(s.X) || !finite(s.Y) || !finite(s.Z) {
			return nil, fmt.Errorf("site %q has non-finite coordinates", s.Name)
		}
		byName[s.Name] = s
	}
	return &Catalog{byName: byName}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Get looks up a site by name.
func (c *Catalog) Get(name string) (Site, bool) {
	if c == nil {
		return Site{}, false
	}
	s, ok := c.byName[name]
	return s, ok
}

// All returns every site sorted by name.
func (c *Catalog) All() []Site {
	if c == nil {
		return nil
	}
	list := make([]Site, 0, len(c.byName))
	for _, s := range c.byName {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// Len returns the number of sites in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.byName)
}
