package api

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/groundtrack/sezgo/internal/frames"
	"github.com/groundtrack/sezgo/internal/metrics"
	"github.com/groundtrack/sezgo/internal/sites"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// queryFloat parses a required finite float query parameter.
func queryFloat(q url.Values, key string) (float64, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, fmt.Errorf("missing parameter %q", key)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parameter %q is not a number", key)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("parameter %q is not finite", key)
	}
	return v, nil
}

// queryECEF parses a point from three float parameters.
func queryECEF(q url.Values, kx, ky, kz string) (frames.ECEF, error) {
	x, err := queryFloat(q, kx)
	if err != nil {
		return frames.ECEF{}, err
	}
	y, err := queryFloat(q, ky)
	if err != nil {
		return frames.ECEF{}, err
	}
	z, err := queryFloat(q, kz)
	if err != nil {
		return frames.ECEF{}, err
	}
	return frames.ECEF{X: x, Y: y, Z: z}, nil
}

// observerFromQuery resolves the observer site, either from the site
// parameter (catalog lookup) or from literal ox/oy/oz kilometers. The
// returned status is the HTTP code to use on error.
func observerFromQuery(q url.Values, catalog *sites.Catalog) (frames.ECEF, int, error) {
	if name := q.Get("site"); name != "" {
		s, ok := catalog.Get(name)
		if !ok {
			if catalog.Len() == 0 {
				return frames.ECEF{}, http.StatusBadRequest, fmt.Errorf("no site catalog loaded")
			}
			return frames.ECEF{}, http.StatusNotFound, fmt.Errorf("unknown site %q", name)
		}
		return s.Position(), 0, nil
	}

	o, err := queryECEF(q, "ox", "oy", "oz")
	if err != nil {
		return frames.ECEF{}, http.StatusBadRequest, err
	}
	return o, 0, nil
}

type observerInfo struct {
	LatDeg float64 `json:"lat_deg"`
	LonDeg float64 `json:"lon_deg"`
}

type sezResponse struct {
	SouthKm  float64      `json:"south_km"`
	EastKm   float64      `json:"east_km"`
	ZenithKm float64      `json:"zenith_km"`
	Observer observerInfo `json:"observer"`
}

// sezHandler converts an ECEF target to site-local SEZ components.
// Query: x, y, z (target, km) plus either site=<name> or ox, oy, oz.
func sezHandler(catalog *sites.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		observer, status, err := observerFromQuery(q, catalog)
		if err != nil {
			writeError(w, status, err.Error())
			return
		}
		target, err := queryECEF(q, "x", "y", "z")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		s := frames.ToSEZ(observer, target)
		ll := frames.GeocentricLatLon(observer)
		metrics.RecordConversion("sez")

		writeJSON(w, http.StatusOK, sezResponse{
			SouthKm:  s.South,
			EastKm:   s.East,
			ZenithKm: s.Zenith,
			Observer: observerInfo{LatDeg: ll.LatDeg, LonDeg: ll.LonDeg},
		})
	}
}

type lookAnglesResponse struct {
	AzimuthDeg   float64      `json:"azimuth_deg"`
	ElevationDeg float64      `json:"elevation_deg"`
	RangeKm      float64      `json:"range_km"`
	Observer     observerInfo `json:"observer"`
}

// lookAnglesHandler converts an ECEF target to azimuth, elevation, and
// range as seen from the observer site. Same query parameters as the
// SEZ endpoint.
func lookAnglesHandler(catalog *sites.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		observer, status, err := observerFromQuery(q, catalog)
		if err != nil {
			writeError(w, status, err.Error())
			return
		}
		target, err := queryECEF(q, "x", "y", "z")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		la := frames.Look(frames.ToSEZ(observer, target))
		ll := frames.GeocentricLatLon(observer)
		metrics.RecordConversion("lookangles")

		writeJSON(w, http.StatusOK, lookAnglesResponse{
			AzimuthDeg:   la.AzimuthDeg,
			ElevationDeg: la.ElevationDeg,
			RangeKm:      la.RangeKm,
			Observer:     observerInfo{LatDeg: ll.LatDeg, LonDeg: ll.LonDeg},
		})
	}
}

type siteEntry struct {
	Name   string  `json:"name"`
	XKm    float64 `json:"x_km"`
	YKm    float64 `json:"y_km"`
	ZKm    float64 `json:"z_km"`
	LatDeg float64 `json:"lat_deg"`
	LonDeg float64 `json:"lon_deg"`
}

// sitesHandler lists the loaded site catalog.
func sitesHandler(catalog *sites.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all := catalog.All()
		list := make([]siteEntry, 0, len(all))
		for _, s := range all {
			ll := frames.GeocentricLatLon(s.Position())
			list = append(list, siteEntry{
				Name:   s.Name,
				XKm:    s.X,
				YKm:    s.Y,
				ZKm:    s.Z,
				LatDeg: ll.LatDeg,
				LonDeg: ll.LonDeg,
			})
		}
		writeJSON(w, http.StatusOK, map[string][]siteEntry{"sites": list})
	}
}
