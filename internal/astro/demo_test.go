package astro

import (
	"math"
	"testing"
)

func TestSphereDemo_Reference(t *testing.T) {
	got := SphereDemo(Vec3{1, 3, 5})

	tests := []struct {
		name string
		got  Vec3
		want Vec3
	}{
		{"point", got.Point, Vec3{0.1690308509457033, 0.50709255283711, 0.8451542547285166}},
		{"tangent", got.Tangent, Vec3{-0.26726124191242434, -0.8017837257372732, 0.5345224838248487}},
		{"tangent vector", got.TangentVector, Vec3{-0.43629209285812764, -1.3088762785743833, -0.3106317709036679}},
		{"rotated", got.RotatedTangent, Vec3{0.9486832980505138, -0.31622776601683794, 0}},
		{"tip", got.Tip, Vec3{1.117714148996217, 0.19086478682027203, 0.8451542547285166}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecNear(tt.got, tt.want, 1e-3) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}

	if math.Abs(got.Angle-1.0068536854342678) > 1e-3 {
		t.Errorf("Angle = %v, want 1.0069", got.Angle)
	}
}

func TestSphereDemo_RotatedTangentLiesInTangentPlane(t *testing.T) {
	got := SphereDemo(Vec3{2, -1, 4})
	if d := got.RotatedTangent.Dot(got.Point); math.Abs(d) > 1e-12 {
		t.Errorf("rotated·point = %v, want 0", d)
	}
}

func TestAngularSize_Sun(t *testing.T) {
	got := SunAngularSize()

	if math.Abs(got.Radians-0.009300735092811659) > 1e-15 {
		t.Errorf("Radians = %v", got.Radians)
	}
	if math.Abs(got.Degrees-0.5328928671873241) > 1e-12 {
		t.Errorf("Degrees = %v", got.Degrees)
	}
	// About 32 arc-minutes.
	if math.Abs(got.ArcSeconds-1918.4) > 0.1 {
		t.Errorf("ArcSeconds = %v, want ~1918.4", got.ArcSeconds)
	}
	if math.Abs(got.MilliArcSeconds-got.ArcSeconds*1000) > 1e-6 {
		t.Errorf("MilliArcSeconds = %v, want %v", got.MilliArcSeconds, got.ArcSeconds*1000)
	}
}
