// Package frames converts positions between the Earth-centered
// Earth-fixed (ECEF) Cartesian frame and site-local topocentric SEZ
// frames. All distances are kilometers.
//
// Site angles are geocentric: latitude and longitude come straight from
// the direction of the site's ECEF vector (spherical Earth), not from
// an ellipsoid normal. The zenith axis is therefore the geocentric
// radial through the site, which keeps ToSEZ and FromSEZ exact inverses
// of each other.
package frames

import "math"

const rad2deg = 180.0 / math.Pi

// ECEF is a position in the Earth-centered Earth-fixed Cartesian frame,
// kilometers.
type ECEF struct {
	X, Y, Z float64
}

// Add returns p + q.
func (p ECEF) Add(q ECEF) ECEF {
	return ECEF{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns p - q.
func (p ECEF) Sub(q ECEF) ECEF {
	return ECEF{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Scale returns p scaled by k.
func (p ECEF) Scale(k float64) ECEF {
	return ECEF{X: k * p.X, Y: k * p.Y, Z: k * p.Z}
}

// Norm returns the Euclidean length of p in kilometers.
func (p ECEF) Norm() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// SEZ is a displacement expressed in a site's local topocentric axes,
// kilometers. South is positive toward increasing geocentric latitude,
// East toward increasing longitude, Zenith along the geocentric radial
// out of the site.
type SEZ struct {
	South, East, Zenith float64
}

// Range returns the length of the displacement in kilometers.
func (s SEZ) Range() float64 {
	return math.Sqrt(s.South*s.South + s.East*s.East + s.Zenith*s.Zenith)
}

// LatLon holds geocentric site angles in degrees.
type LatLon struct {
	LatDeg, LonDeg float64
}

// geocentricRadians returns the site's geocentric latitude and
// longitude in radians. Atan2(0, 0) = 0, so a site on the polar axis
// gets longitude 0 and the frame origin gets latitude 0 as well; both
// are degenerate but defined.
func geocentricRadians(site ECEF) (lat, lon float64) {
	lon = math.Atan2(site.Y, site.X)
	lat = math.Atan2(site.Z, math.Sqrt(site.X*site.X+site.Y*site.Y))
	return lat, lon
}

// GeocentricLatLon returns the site's geocentric latitude and longitude
// in degrees.
func GeocentricLatLon(site ECEF) LatLon {
	lat, lon := geocentricRadians(site)
	return LatLon{LatDeg: lat * rad2deg, LonDeg: lon * rad2deg}
}

// ToSEZ expresses target in the topocentric frame of site. The rotation
// is built from the site's geocentric angles, so a target along the
// site's own radial lands entirely on the zenith axis.
func ToSEZ(site, target ECEF) SEZ {
	lat, lon := geocentricRadians(site)

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	sinLon := math.Sin(lon)
	cosLon := math.Cos(lon)

	d := target.Sub(site)

	return SEZ{
		South:  -sinLat*cosLon*d.X - sinLat*sinLon*d.Y + cosLat*d.Z,
		East:   -sinLon*d.X + cosLon*d.Y,
		Zenith: cosLat*cosLon*d.X + cosLat*sinLon*d.Y + sinLat*d.Z,
	}
}

// FromSEZ maps a topocentric displacement at site back to an absolute
// ECEF position. The rotation used by ToSEZ is orthonormal, so its
// transpose undoes it exactly.
func FromSEZ(site ECEF, s SEZ) ECEF {
	lat, lon := geocentricRadians(site)

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	sinLon := math.Sin(lon)
	cosLon := math.Cos(lon)

	return ECEF{
		X: site.X - sinLat*cosLon*s.South - sinLon*s.East + cosLat*cosLon*s.Zenith,
		Y: site.Y - sinLat*sinLon*s.South + cosLon*s.East + cosLat*sinLon*s.Zenith,
		Z: site.Z + cosLat*s.South + sinLat*s.Zenith,
	}
}
