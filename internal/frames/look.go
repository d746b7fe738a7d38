package frames

import "math"

// LookAngles is the pointing solution for a topocentric displacement.
type LookAngles struct {
	AzimuthDeg   float64 // 0 = toward increasing latitude, measured clockwise
	ElevationDeg float64 // 0 = horizon, 90 = zenith
	RangeKm      float64
}

// Look converts a topocentric displacement to azimuth, elevation, and
// range. With this package's axis signs azimuth is atan2(East, South):
// a target toward increasing latitude sits at azimuth 0 and one toward
// increasing longitude at 90. A zero displacement has no direction and
// returns the zero LookAngles.
func Look(s SEZ) LookAngles {
	rng := s.Range()
	if rng == 0 {
		return LookAngles{}
	}

	el := math.Asin(s.Zenith / rng)

	az := math.Atan2(s.East, s.South)
	if az < 0 {
		az += 2 * math.Pi
	}

	return LookAngles{
		AzimuthDeg:   az * rad2deg,
		ElevationDeg: el * rad2deg,
		RangeKm:      rng,
	}
}
