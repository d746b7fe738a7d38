package frames

import (
	"fmt"
	"math"
	"testing"
)

func TestGeocentricLatLon_CardinalSites(t *testing.T) {
	cases := []struct {
		name    string
		site    ECEF
		wantLat float64
		wantLon float64
	}{
		{"equator prime meridian", ECEF{X: 6378, Y: 0, Z: 0}, 0, 0},
		{"equator 90E", ECEF{X: 0, Y: 6378, Z: 0}, 0, 90},
		{"equator 90W", ECEF{X: 0, Y: -6378, Z: 0}, 0, -90},
		{"north pole", ECEF{X: 0, Y: 0, Z: 6357}, 90, 0},
		{"south pole", ECEF{X: 0, Y: 0, Z: -6357}, -90, 0},
		{"45N 45E", ECEF{X: 3189, Y: 3189, Z: 4509.927}, 45, 45},
		{"frame origin", ECEF{}, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ll := GeocentricLatLon(tc.site)
			if math.Abs(ll.LatDeg-tc.wantLat) > 1e-4 {
				t.Errorf("lat = %.6f deg, want %.6f", ll.LatDeg, tc.wantLat)
			}
			if math.Abs(ll.LonDeg-tc.wantLon) > 1e-4 {
				t.Errorf("lon = %.6f deg, want %.6f", ll.LonDeg, tc.wantLon)
			}
		})
	}
}

func TestToSEZ_ZeroOffset(t *testing.T) {
	// A target coincident with the site must land exactly at the local
	// origin, whatever the site's position (the degenerate frame origin
	// included).
	sites := []ECEF{
		{X: 6378, Y: 0, Z: 0},
		{X: -2294.2, Y: 5637.6, Z: -1823.9},
		{X: 0, Y: 0, Z: 6357},
		{},
	}

	for _, site := range sites {
		s := ToSEZ(site, site)
		if s.South != 0 || s.East != 0 || s.Zenith != 0 {
			t.Errorf("ToSEZ(%v, same) = %+v, want all zero", site, s)
		}
	}
}

func TestToSEZ_EquatorialWorkedCase(t *testing.T) {
	// Site on the equator at the prime meridian, target 1 km further
	// along +Z. The offset is entirely along the local latitude axis.
	site := ECEF{X: 6378, Y: 0, Z: 0}
	target := ECEF{X: 6378, Y: 0, Z: 1}

	s := ToSEZ(site, target)

	if math.Abs(s.South-1.0) > 1e-12 {
		t.Errorf("south = %.15f km, want 1.0", s.South)
	}
	if math.Abs(s.East) > 1e-12 {
		t.Errorf("east = %.15f km, want 0", s.East)
	}
	if math.Abs(s.Zenith) > 1e-12 {
		t.Errorf("zenith = %.15f km, want 0", s.Zenith)
	}
}

func TestToSEZ_RadialTargetIsAllZenith(t *testing.T) {
	// A target along the site's own radial must project onto the zenith
	// axis alone, with zenith equal to the radial offset.
	site := ECEF{X: 4000, Y: 3000, Z: 5000}
	const eps = 1e-3
	target := site.Add(site.Scale(eps))

	s := ToSEZ(site, target)
	wantZenith := eps * site.Norm()

	if math.Abs(s.South) > 1e-9 {
		t.Errorf("south = %.12f km, want ~0", s.South)
	}
	if math.Abs(s.East) > 1e-9 {
		t.Errorf("east = %.12f km, want ~0", s.East)
	}
	if math.Abs(s.Zenith-wantZenith) > 1e-9 {
		t.Errorf("zenith = %.12f km, want %.12f", s.Zenith, wantZenith)
	}
}

func TestToSEZ_PolarSite(t *testing.T) {
	// On the polar axis the longitude collapses to 0 by the Atan2
	// convention and the transform stays well defined: latitude is 90,
	// so an equatorward displacement is negative along the latitude
	// axis and the radial component vanishes.
	site := ECEF{X: 0, Y: 0, Z: 6357}
	target := ECEF{X: 100, Y: 0, Z: 6357}

	s := ToSEZ(site, target)

	if math.Abs(s.South-(-100)) > 1e-9 {
		t.Errorf("south = %.12f km, want -100", s.South)
	}
	if math.Abs(s.East) > 1e-9 {
		t.Errorf("east = %.12f km, want ~0", s.East)
	}
	if math.Abs(s.Zenith) > 1e-9 {
		t.Errorf("zenith = %.12f km, want ~0", s.Zenith)
	}
}

func TestToSEZ_PreservesDistance(t *testing.T) {
	// The transform is a rotation of the offset vector, so the local
	// range must equal the ECEF separation.
	pairs := []struct{ site, target ECEF }{
		{ECEF{X: 6378, Y: 0, Z: 0}, ECEF{X: 6778, Y: 120, Z: -45}},
		{ECEF{X: -2294.2, Y: 5637.6, Z: -1823.9}, ECEF{X: 1234.5, Y: -678.9, Z: 7000.1}},
		{ECEF{X: 0, Y: 0, Z: 6357}, ECEF{X: 0.001, Y: -0.002, Z: 6357.003}},
		{ECEF{X: 1e-6, Y: 2e-6, Z: -3e-6}, ECEF{X: 42164, Y: 0, Z: 0}},
	}

	for _, p := range pairs {
		got := ToSEZ(p.site, p.target).Range()
		want := p.target.Sub(p.site).Norm()
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("range = %.12f km, want %.12f (site %v)", got, want, p.site)
		}
	}
}

func TestFromSEZ_RoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		site   ECEF
		target ECEF
	}{
		{"equatorial", ECEF{X: 6378, Y: 0, Z: 0}, ECEF{X: 6378, Y: 0, Z: 1}},
		{"mid latitude", ECEF{X: 1343.1, Y: -4655.4, Z: 4131.6}, ECEF{X: -3871.9, Y: 3811.5, Z: 4014.3}},
		{"polar site", ECEF{X: 0, Y: 0, Z: -6357}, ECEF{X: 500, Y: -250, Z: -7000}},
		{"geostationary target", ECEF{X: 3930.3, Y: 3930.3, Z: 3170.4}, ECEF{X: 29814, Y: 29814, Z: 0}},
		{"sub-meter offset", ECEF{X: 6378, Y: 0, Z: 0}, ECEF{X: 6378.0001, Y: -0.0002, Z: 0.0003}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FromSEZ(tc.site, ToSEZ(tc.site, tc.target))
			if math.Abs(got.X-tc.target.X) > 1e-9 ||
				math.Abs(got.Y-tc.target.Y) > 1e-9 ||
				math.Abs(got.Z-tc.target.Z) > 1e-9 {
				t.Errorf("roundtrip = %+v, want %+v", got, tc.target)
			}
		})
	}
}

func TestFromSEZ_ZenithOnly(t *testing.T) {
	// Pure zenith displacement stacks straight onto the site's radial.
	site := ECEF{X: 4000, Y: 3000, Z: 5000}
	p := FromSEZ(site, SEZ{Zenith: 10})

	want := site.Norm() + 10
	if math.Abs(p.Norm()-want) > 1e-9 {
		t.Errorf("|p| = %.12f km, want %.12f", p.Norm(), want)
	}
}

func ExampleToSEZ() {
	site := ECEF{X: 6378, Y: 0, Z: 0}
	target := ECEF{X: 6378, Y: 0, Z: 1}

	s := ToSEZ(site, target)
	fmt.Println(s.South, s.East, s.Zenith)
	// Output:
	// 1 0 0
}
