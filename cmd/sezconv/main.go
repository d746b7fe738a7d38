// sezconv converts CSV rows of Earth-fixed positions into site-local
// topocentric rows.
//
// Input rows start with the target's ECEF x, y, z in kilometers; any
// further fields are carried through unchanged. Rows are read from
// stdin or from the files given as arguments, and lines starting with
// '#' are skipped. The observer site comes from -obs x,y,z or from a
// named catalog entry via -site and -sites:
//
//	sezconv -obs 6378,0,0 < targets.csv
//	sezconv -sites etc/sites.toml -site malindi -angles targets.csv
//
// Output rows hold the south, east, and zenith components, then with
// -angles the azimuth, elevation, and range, then the carried fields.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/groundtrack/sezgo/internal/frames"
	"github.com/groundtrack/sezgo/internal/sites"
)

func init() {
	log.SetFlags(0)
	log.SetPrefix("sezconv: ")
}

func main() {
	var (
		obs     = flag.String("obs", "", "observer ECEF position as x,y,z kilometers")
		site    = flag.String("site", "", "observer site name from the catalog")
		catalog = flag.String("sites", "", "site catalog file (TOML)")
		angles  = flag.Bool("angles", false, "append azimuth, elevation, and range columns")
	)
	flag.Parse()

	origin, err := resolveObserver(*obs, *site, *catalog)
	if err != nil {
		log.Fatalln(err)
	}

	in, err := openInput(flag.Args())
	if err != nil {
		log.Fatalln(err)
	}

	if err := convert(origin, in, os.Stdout, *angles); err != nil {
		log.Fatalln(err)
	}
}

// resolveObserver picks the observer from the -obs literal or the site
// catalog. Exactly one of the two forms must be given.
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

// openInput returns stdin when no files are given, otherwise the files
// concatenated in order.
func openInput(paths []string) (io.Reader, error) {
	if len(paths) == 0 {
		return os.Stdin, nil
	}
	rs := make([]io.Reader, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, err
		}
		rs = append(rs, f)
	}
	return io.MultiReader(rs...), nil
}

// convert streams CSV rows from in to out, replacing the leading ECEF
// triplet with the topocentric components.
func convert(origin frames.ECEF, in io.Reader, out io.Writer, angles bool) error {
	r := csv.NewReader(in)
	r.Comment = '#'
	r.FieldsPerRecord = -1

	w := csv.NewWriter(out)

	for row := 1; ; row++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if len(rec) < 3 {
			return fmt.Errorf("row %d: want at least 3 fields, got %d", row, len(rec))
		}

		var target frames.ECEF
		if target.X, err = parseField(rec[0], row, "x"); err != nil {
			return err
		}
		if target.Y, err = parseField(rec[1], row, "y"); err != nil {
			return err
		}
		if target.Z, err = parseField(rec[2], row, "z"); err != nil {
			return err
		}

		s := frames.ToSEZ(origin, target)
		fields := []string{fmtNum(s.South), fmtNum(s.East), fmtNum(s.Zenith)}
		if angles {
			la := frames.Look(s)
			fields = append(fields, fmtNum(la.AzimuthDeg), fmtNum(la.ElevationDeg), fmtNum(la.RangeKm))
		}
		fields = append(fields, rec[3:]...)

		w.Write(fields)
	}

	w.Flush()
	return w.Error()
}

func parseField(raw string, row int, name string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("row %d: %s field %q is not a number", row, name, raw)
	}
	return v, nil
}

func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
