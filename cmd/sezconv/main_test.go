package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/groundtrack/sezgo/internal/frames"
)

func TestConvert(t *testing.T) {
	origin := frames.ECEF{X: 6378, Y: 0, Z: 0}
	in := strings.NewReader("# target positions\n6378,0,1\n6378,0,1,ISS,pass3\n")
	var out bytes.Buffer

	if err := convert(origin, in, &out, false); err != nil {
		t.Fatalf("convert: %v", err)
	}

	want := "1.000000,0.000000,0.000000\n" +
		"1.000000,0.000000,0.000000,ISS,pass3\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestConvert_Angles(t *testing.T) {
	origin := frames.ECEF{X: 6378, Y: 0, Z: 0}
	in := strings.NewReader("6778,0,0\n")
	var out bytes.Buffer

	if err := convert(origin, in, &out, true); err != nil {
		t.Fatalf("convert: %v", err)
	}

	// Radial target: azimuth 0, elevation 90, range 400.
	want := "0.000000,0.000000,400.000000,0.000000,90.000000,400.000000\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestConvert_BadField(t *testing.T) {
	origin := frames.ECEF{X: 6378, Y: 0, Z: 0}
	in := strings.NewReader("6378,zero,1\n")

	err := convert(origin, in, &bytes.Buffer{}, false)
	if err == nil {
		t.Fatal("convert accepted a non-numeric field")
	}
	if !strings.Contains(err.Error(), "row 1") || !strings.Contains(err.Error(), "zero") {
		t.Errorf("error = %q, want row number and bad field", err)
	}
}

func TestConvert_ShortRow(t *testing.T) {
	origin := frames.ECEF{X: 6378, Y: 0, Z: 0}
	in := strings.NewReader("6378,0\n")

	if err := convert(origin, in, &bytes.Buffer{}, false); err == nil {
		t.Fatal("convert accepted a two-field row")
	}
}

func TestParseTriplet(t *testing.T) {
	p, err := parseTriplet("6378, 0, -326.5")
	if err != nil {
		t.Fatalf("parseTriplet: %v", err)
	}
	if p.X != 6378 || p.Y != 0 || p.Z != -326.5 {
		t.Errorf("point = %+v, want {6378 0 -326.5}", p)
	}

	for _, bad := range []string{"", "1,2", "1,2,3,4", "a,b,c"} {
		if _, err := parseTriplet(bad); err == nil {
			t.Errorf("parseTriplet(%q) succeeded, want error", bad)
		}
	}
}

func TestResolveObserver(t *testing.T) {
	catalog := filepath.Join(t.TempDir(), "sites.toml")
	body := "[[site]]\nname = \"malindi\"\nx = 5186.454\ny = 3653.907\nz = -326.011\n"
	if err := os.WriteFile(catalog, []byte(body), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	p, err := resolveObserver("", "malindi", catalog)
	if err != nil {
		t.Fatalf("resolveObserver(site): %v", err)
	}
	if p.X != 5186.454 {
		t.Errorf("site position = %+v, want catalog coordinates", p)
	}

	p, err = resolveObserver("1,2,3", "", "")
	if err != nil {
		t.Fatalf("resolveObserver(obs): %v", err)
	}
	if p.X != 1 || p.Y != 2 || p.Z != 3 {
		t.Errorf("literal position = %+v, want {1 2 3}", p)
	}

	cases := []struct {
		name          string
		obs, site, ct string
	}{
		{"both forms", "1,2,3", "malindi", catalog},
		{"site without catalog", "", "malindi", ""},
		{"unknown site", "", "atlantis", catalog},
		{"no observer", "", "", ""},
	}
	for _, tc := range cases {
		if _, err := resolveObserver(tc.obs, tc.site, tc.ct); err == nil {
			t.Errorf("%s: resolveObserver succeeded, want error", tc.name)
		}
	}
}
