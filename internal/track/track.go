// Package track propagates two-line element sets with SGP4 and
// expresses the result in the Earth-fixed frame the rest of the toolkit
// works in.
//
// SGP4 library: github.com/joshuaferrara/go-satellite. Propagate()
// takes Satellite by value so SGP4 error codes are not visible to the
// caller; propagation failures are detected by checking the output for
// NaN/Inf and unreasonable position magnitudes.
package track

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"

	"github.com/groundtrack/sezgo/internal/frames"
)

// TLE holds one two-line element set. Name is the optional title line.
type TLE struct {
	Name  string
	Line1 string
	Line2 string
}

// ReadTLEFile loads the first element set from a file in the usual
// text format: an optional name line followed by the two element lines.
func ReadTLEFile(path string) (TLE, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TLE{}, fmt.Errorf("read TLE: %w", err)
	}

	var lines []string
	for _, l := range strings.Split(string(data), "\n") {
		if l = strings.TrimRight(l, "\r"); strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}

	var t TLE
	switch {
	case len(lines) >= 3 && !strings.HasPrefix(lines[0], "1 "):
		t = TLE{Name: strings.TrimSpace(lines[0]), Line1: lines[1], Line2: lines[2]}
	case len(lines) >= 2:
		t = TLE{Line1: lines[0], Line2: lines[1]}
	default:
		return TLE{}, fmt.Errorf("TLE file %s: want 2 element lines, got %d lines", path, len(lines))
	}

	if err := validateLines(t.Line1, t.Line2); err != nil {
		return TLE{}, fmt.Errorf("TLE file %s: %w", path, err)
	}
	return t, nil
}

// validateLines performs basic format validation on TLE lines. This
// prevents passing garbage to go-satellite, which calls log.Fatal on
// parse errors.
func validateLines(line1, line2 string) error {
	line1 = strings.TrimSpace(line1)
	line2 = strings.TrimSpace(line2)

	if len(line1) != 69 {
		return fmt.Errorf("line1 length %d, expected 69", len(line1))
	}
	if len(line2) != 69 {
		return fmt.Errorf("line2 length %d, expected 69", len(line2))
	}
	if line1[0] != '1' {
		return fmt.Errorf("line1 must start with '1', got '%c'", line1[0])
	}
	if line2[0] != '2' {
		return fmt.Errorf("line2 must start with '2', got '%c'", line2[0])
	}
	return nil
}

// PropagateECEF computes the satellite's ECEF position in kilometers at
// time at, truncated to whole seconds UTC.
func PropagateECEF(t TLE, at time.Time) (frames.ECEF, error) {
	if err := validateLines(t.Line1, t.Line2); err != nil {
		return frames.ECEF{}, fmt.Errorf("invalid TLE: %w", err)
	}

	sat := satellite.TLEToSat(t.Line1, t.Line2, satellite.GravityWGS84)
	if sat.Error != 0 {
		return frames.ECEF{}, fmt.Errorf("sgp4 init failed: code=%d %s", sat.Error, sat.ErrorStr)
	}

	at = at.UTC()
	year, month, day := at.Date()
	hour, min, sec := at.Clock()

	pos, _ := satellite.Propagate(sat, year, int(month), day, hour, min, sec)

	if math.IsNaN(pos.X) || math.IsNaN(pos.Y) || math.IsNaN(pos.Z) ||
		math.IsInf(pos.X, 0) || math.IsInf(pos.Y, 0) || math.IsInf(pos.Z, 0) {
		return frames.ECEF{}, fmt.Errorf("sgp4 propagation failed at %s: output is NaN/Inf", at.Format(time.RFC3339))
	}

	// Sanity check: position magnitude should be between ~6200km and ~50000km.
	mag := math.Sqrt(pos.X*pos.X + pos.Y*pos.Y + pos.Z*pos.Z)
	if mag < 6200.0 || mag > 50000.0 {
		return frames.ECEF{}, fmt.Errorf("sgp4 propagation failed at %s: unreasonable position magnitude %.1f km", at.Format(time.RFC3339), mag)
	}

	jd := satellite.JDay(year, int(month), day, hour, min, sec)
	gmst := satellite.ThetaG_JD(jd)
	ecef := satellite.ECIToECEF(pos, gmst)

	return frames.ECEF{X: ecef.X, Y: ecef.Y, Z: ecef.Z}, nil
}
