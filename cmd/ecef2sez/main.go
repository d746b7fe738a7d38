// ecef2sez converts an Earth-fixed position to site-local
// south/east/zenith components.
//
// Usage:
//
//	ecef2sez o_x_km o_y_km o_z_km x_km y_km z_km
//
// The first three arguments are the site's ECEF position, the last
// three the target's, all kilometers. The three output lines are the
// target's south, east, and zenith components in the site's
// topocentric frame.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/groundtrack/sezgo/internal/frames"
)

const usage = "Usage: ecef2sez o_x_km o_y_km o_z_km x_km y_km z_km"

var errUsage = errors.New("wrong argument count")

// args holds the six positional inputs.
type args struct {
	Site   frames.ECEF
	Target frames.ECEF
}

// parseArgs converts the raw argument vector into an args value.
func parseArgs(argv []string) (args, error) {
	if len(argv) != 6 {
		return args{}, errUsage
	}

	var vs [6]float64
	for i, raw := range argv {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return args{}, fmt.Errorf("argument %d: %q is not a number", i+1, raw)
		}
		vs[i] = v
	}

	return args{
		Site:   frames.ECEF{X: vs[0], Y: vs[1], Z: vs[2]},
		Target: frames.ECEF{X: vs[3], Y: vs[4], Z: vs[5]},
	}, nil
}

func run(argv []string, stdout, stderr io.Writer) int {
	a, err := parseArgs(argv)
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stdout, usage)
		} else {
			fmt.Fprintln(stderr, "ecef2sez:", err)
		}
		return 1
	}

	s := frames.ToSEZ(a.Site, a.Target)

	fmt.Fprintln(stdout, s.South)
	fmt.Fprintln(stdout, s.East)
	fmt.Fprintln(stdout, s.Zenith)
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
