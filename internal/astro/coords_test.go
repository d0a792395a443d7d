package astro

import (
	"math"
	"testing"
)

func TestPositionFromEquatorial(t *testing.T) {
	tests := []struct {
		name    string
		ra, dec float64
		dist    float64
		want    Vec3
	}{
		{"vernal equinox", 0, 0, 1, Vec3{1, 0, 0}},
		{"RA 90", 90, 0, 2, Vec3{0, 2, 0}},
		{"RA 180", 180, 0, 1, Vec3{-1, 0, 0}},
		{"north pole", 0, 90, 3, Vec3{0, 0, 3}},
		{"south pole", 123, -90, 1, Vec3{0, 0, -1}},
		{"45 up", 0, 45, math.Sqrt2, Vec3{1, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PositionFromEquatorial(tt.ra, tt.dec, tt.dist)
			if !vecNear(got, tt.want, 1e-12) {
				t.Errorf("PositionFromEquatorial(%v, %v, %v) = %v, want %v",
					tt.ra, tt.dec, tt.dist, got, tt.want)
			}
		})
	}
}

func TestEquatorialRoundTrip(t *testing.T) {
	for ra := 0.0; ra < 360; ra += 45 {
		for dec := -80.0; dec <= 80; dec += 40 {
			v := PositionFromEquatorial(ra, dec, 7.5)
			gotRA, gotDec, gotDist := EquatorialFromPosition(v)

			if math.Abs(gotRA-ra) > 1e-9 && math.Abs(gotRA-ra-360) > 1e-9 {
				t.Errorf("RA round trip: %v -> %v", ra, gotRA)
			}
			if math.Abs(gotDec-dec) > 1e-9 {
				t.Errorf("Dec round trip: %v -> %v", dec, gotDec)
			}
			if math.Abs(gotDist-7.5) > 1e-12 {
				t.Errorf("distance round trip: 7.5 -> %v", gotDist)
			}
			if gotRA < 0 || gotRA >= 360 {
				t.Errorf("RA out of range: %v", gotRA)
			}
		}
	}
}

func TestEquatorialFromPosition_Zero(t *testing.T) {
	ra, dec, dist := EquatorialFromPosition(Vec3{})
	if ra != 0 || dec != 0 || dist != 0 {
		t.Errorf("EquatorialFromPosition(0) = %v, %v, %v, want zeros", ra, dec, dist)
	}
}

func TestInclinationMatchesDeclination(t *testing.T) {
	// For a unit vector, inclination from the equatorial plane is |Dec|.
	for _, dec := range []float64{10, 35, -60, 89} {
		p := PositionFromEquatorial(200, dec, 1)
		got := DegreesFromRadians(Inclination(p))
		if math.Abs(got-math.Abs(dec)) > 1e-6 {
			t.Errorf("Dec %v: inclination = %v°", dec, got)
		}
	}
}

func TestAngularSeparation(t *testing.T) {
	tests := []struct {
		name                 string
		ra1, dec1, ra2, dec2 float64
		want                 float64
	}{
		{"same point", 10, 20, 10, 20, 0},
		{"pole to equator", 0, 90, 123, 0, 90},
		{"antipodes", 0, 0, 180, 0, 180},
		{"along equator", 10, 0, 40, 0, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngularSeparation(tt.ra1, tt.dec1, tt.ra2, tt.dec2)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("AngularSeparation = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAngularSeparationMatchesDot(t *testing.T) {
	a := PositionFromEquatorial(101.287, -16.716, 1)
	b := PositionFromEquatorial(279.235, 38.784, 1)

	want := DegreesFromRadians(math.Acos(a.Dot(b)))
	got := AngularSeparation(101.287, -16.716, 279.235, 38.784)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("AngularSeparation = %v, want %v", got, want)
	}
}

func TestEclipticFromPosition(t *testing.T) {
	// The vernal equinox lies on both equators.
	lon, lat := EclipticFromPosition(Vec3{X: 2})
	if math.Abs(lon) > 1e-9 || math.Abs(lat) > 1e-9 {
		t.Errorf("equinox: lon=%v lat=%v, want 0, 0", lon, lat)
	}

	// The north celestial pole sits at ecliptic latitude 90 - obliquity.
	_, lat = EclipticFromPosition(Vec3{Z: 1})
	if math.Abs(lat-(90-23.439291)) > 1e-9 {
		t.Errorf("pole latitude = %v", lat)
	}

	// Rotation preserves length.
	v := Vec3{1, 3, 5}
	if math.Abs(EquatorialToEcliptic(v).Norm()-v.Norm()) > 1e-12 {
		t.Error("EquatorialToEcliptic changed the vector length")
	}
}
