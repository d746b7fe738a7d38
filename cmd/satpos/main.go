// satpos reports where a satellite sits in a ground site's local sky.
//
// The satellite comes from a TLE file (-tle), the ground site from -obs
// x,y,z kilometers or a catalog entry (-site, -sites), and the time
// from -at as RFC3339 (default: now). The satellite is propagated with
// SGP4, rotated into the Earth-fixed frame, and expressed in the site's
// topocentric frame:
//
//	satpos -tle iss.tle -obs 6378,0,0 -at 2024-04-10T12:00:00Z
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/groundtrack/sezgo/internal/frames"
	"github.com/groundtrack/sezgo/internal/sites"
	"github.com/groundtrack/sezgo/internal/track"
)

func main() {
	var (
		tlePath = flag.String("tle", "", "TLE file (optional name line plus two element lines)")
		obs     = flag.String("obs", "", "observer ECEF position as x,y,z kilometers")
		site    = flag.String("site", "", "observer site name from the catalog")
		catalog = flag.String("sites", "", "site catalog file (TOML)")
		atStr   = flag.String("at", "", "observation time, RFC3339 (default now)")
	)
	flag.Parse()

	if *tlePath == "" {
		fmt.Fprintln(os.Stderr, "satpos: -tle is required")
		os.Exit(2)
	}

	at := time.Now().UTC()
	if *atStr != "" {
		var err error
		at, err = time.Parse(time.RFC3339, *atStr)
		if err != nil {
			fatal(err)
		}
	}

	origin, err := resolveObserver(*obs, *site, *catalog)
	if err != nil {
		fatal(err)
	}

	t, err := track.ReadTLEFile(*tlePath)
	if err != nil {
		fatal(err)
	}

	pos, err := track.PropagateECEF(t, at)
	if err != nil {
		fatal(err)
	}

	s := frames.ToSEZ(origin, pos)
	la := frames.Look(s)
	ll := frames.GeocentricLatLon(origin)

	name := t.Name
	if name == "" {
		name = "(unnamed)"
	}

	fmt.Printf("satellite: %s\n", name)
	fmt.Printf("time:      %s\n", at.UTC().Format(time.RFC3339))
	fmt.Printf("site:      lat %.4f°  lon %.4f°\n", ll.LatDeg, ll.LonDeg)
	fmt.Printf("ecef:      [%.3f, %.3f, %.3f] km\n", pos.X, pos.Y, pos.Z)
	fmt.Printf("sez:       [%.3f, %.3f, %.3f] km\n", s.South, s.East, s.Zenith)
	fmt.Printf("look:      az %.2f°  el %.2f°  range %.1f km\n", la.AzimuthDeg, la.ElevationDeg, la.RangeKm)
	if la.ElevationDeg < 0 {
		fmt.Println("           (below the horizon)")
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "satpos:", err)
	os.Exit(1)
}

// resolveObserver picks the observer from the -obs literal or the site
// catalog.
func resolveObserver(obs, site, catalogPath string) (frames.ECEF, error) {
	switch {
	case obs != "" && site != "":
		return frames.ECEF{}, fmt.Errorf("use either -obs or -site, not both")
	case obs != "":
		return parseTriplet(obs)
	case site != "":
		if catalogPath == "" {
			return frames.ECEF{}, fmt.Errorf("-site requires -sites")
		}
		cat, err := sites.Load(catalogPath)
		if err != nil {
			return frames.ECEF{}, err
		}
		s, ok := cat.Get(site)
		if !ok {
			return frames.ECEF{}, fmt.Errorf("unknown site %q in %s", site, catalogPath)
		}
		return s.Position(), nil
	default:
		return frames.ECEF{}, fmt.Errorf("an observer is required (-obs or -site)")
	}
}

// parseTriplet parses "x,y,z" kilometers.
func parseTriplet(s string) (frames.ECEF, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return frames.ECEF{}, fmt.Errorf("observer %q: want x,y,z", s)
	}
	var vs [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return frames.ECEF{}, fmt.Errorf("observer %q: %q is not a number", s, part)
		}
		vs[i] = v
	}
	return frames.ECEF{X: vs[0], Y: vs[1], Z: vs[2]}, nil
}
