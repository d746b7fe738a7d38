// sez2ecef maps site-local south/east/zenith components back to an
// Earth-fixed position.
//
// Usage:
//
//	sez2ecef o_x_km o_y_km o_z_km s_km e_km z_km
//
// The first three arguments are the site's ECEF position, the last
// three a displacement in the site's topocentric frame, all kilometers.
// The three output lines are the target's ECEF x, y, and z. The command
// is the exact inverse of ecef2sez.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/groundtrack/sezgo/internal/frames"
)

const usage = "Usage: sez2ecef o_x_km o_y_km o_z_km s_km e_km z_km"

var errUsage = errors.New("wrong argument count")

// args holds the six positional inputs.
type args struct {
	Site  frames.ECEF
	Local frames.SEZ
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
		Site:  frames.ECEF{X: vs[0], Y: vs[1], Z: vs[2]},
		Local: frames.SEZ{South: vs[3], East: vs[4], Zenith: vs[5]},
	}, nil
}

func run(argv []string, stdout, stderr io.Writer) int {
	a, err := parseArgs(argv)
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stdout, usage)
		} else {
			fmt.Fprintln(stderr, "sez2ecef:", err)
		}
		return 1
	}

	p := frames.FromSEZ(a.Site, a.Local)

	fmt.Fprintln(stdout, p.X)
	fmt.Fprintln(stdout, p.Y)
	fmt.Fprintln(stdout, p.Z)
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
