package simulation

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/chen-qingyu/black-hole/internal/config"
	"github.com/chen-qingyu/black-hole/pkg/math"
)

func mustBody(t *testing.T, name string, pos math.DVec3, mass float64) *Body {
	t.Helper()
	b, err := NewBody(name, pos, mass, 0, math.Vec4{1, 1, 1, 1})
	if err != nil {
		t.Fatalf("NewBody(%s): %v", name, err)
	}
	return b
}

func relErr(got, want float64) float64 {
	return gomath.Abs(got-want) / gomath.Abs(want)
}

func TestSchwarzschildRadiusFormula(t *testing.T) {
	for _, m := range []float64{1, 1.98892e30, 8.54e36, 1e40} {
		want := 2 * 6.67430e-11 * m / (299792458.0 * 299792458.0)
		if got := SchwarzschildRadius(m); relErr(got, want) > 1e-12 {
			t.Errorf("SchwarzschildRadius(%g) = %g, want %g", m, got, want)
		}
	}
}

func TestSagittariusAHorizon(t *testing.T) {
	b := mustBody(t, "sgr-a", math.DVec3{}, 8.54e36)

	rs := b.SchwarzschildRadius()
	if relErr(rs, 1.27e10) > 0.01 {
		t.Errorf("r_s = %g, want ~1.27e10", rs)
	}
	if b.Radius != rs {
		t.Errorf("zero radius should default to r_s, got %g", b.Radius)
	}
}

func TestSetMassRecomputesHorizon(t *testing.T) {
	b := mustBody(t, "star", math.DVec3{}, 1.98892e30)
	before := b.SchwarzschildRadius()

	if err := b.SetMass(2 * 1.98892e30); err != nil {
		t.Fatalf("SetMass: %v", err)
	}
	if relErr(b.SchwarzschildRadius(), 2*before) > 1e-12 {
		t.Errorf("doubling mass should double r_s: %g -> %g", before, b.SchwarzschildRadius())
	}
}

func TestInvalidMassRejected(t *testing.T) {
	for _, m := range []float64{0, -1, gomath.NaN(), gomath.Inf(1)} {
		if _, err := NewBody("bad", math.DVec3{}, m, 0, math.Vec4{}); !errors.Is(err, ErrInvalidMass) {
			t.Errorf("NewBody(mass=%g) error = %v, want ErrInvalidMass", m, err)
		}
	}

	b := mustBody(t, "star", math.DVec3{}, 1e30)
	if err := b.SetMass(-5); !errors.Is(err, ErrInvalidMass) {
		t.Errorf("SetMass(-5) error = %v, want ErrInvalidMass", err)
	}
	if b.Mass() != 1e30 {
		t.Errorf("rejected SetMass must not change the mass, got %g", b.Mass())
	}
}

func TestIntercept(t *testing.T) {
	center := math.DVec3{X: 1e11, Y: 0, Z: -2e11}
	b := mustBody(t, "bh", center, 8.54e36)
	rs := b.SchwarzschildRadius()

	tests := []struct {
		name  string
		point math.DVec3
		want  bool
	}{
		{"center", center, true},
		{"just inside", center.Add(math.DVec3{X: 0.999 * rs}), true},
		{"on horizon", center.Add(math.DVec3{Y: rs}), false},
		{"just outside", center.Add(math.DVec3{Z: 1.001 * rs}), false},
		{"far away", math.DVec3{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Intercept(tt.point); got != tt.want {
				t.Errorf("Intercept(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}

func TestRegistryCentralFirst(t *testing.T) {
	central := mustBody(t, "bh", math.DVec3{}, 8.54e36)
	r := NewRegistry(central, mustBody(t, "a", math.DVec3{X: 4e11}, 1e30))

	for i := 0; i < 18; i++ {
		r.Add(mustBody(t, "extra", math.DVec3{Z: float64(i+1) * 1e11}, 1e30))
	}

	if r.Len() != 20 {
		t.Errorf("registry should accept bodies past 16, Len() = %d", r.Len())
	}
	if r.Central() != central || r.Bodies()[0] != central {
		t.Error("central body should be first")
	}
	if !r.Intercept(math.DVec3{X: 1}) {
		t.Error("point next to the origin should be inside the central horizon")
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default().Simulation
	cfg.Bodies[0].Velocity = [3]float64{0, 0, 1e3}

	r, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if r.Len() != 3 {
		t.Fatalf("expected central + 2 bodies, got %d", r.Len())
	}
	if !r.Central().Pinned {
		t.Error("default central body should be pinned")
	}
	yellow := r.Bodies()[1]
	if yellow.Name != "yellow" || yellow.Position.X != 4e11 || yellow.Velocity.Z != 1e3 {
		t.Errorf("unexpected first body %+v", yellow)
	}
	if yellow.Color != (math.Vec4{1, 1, 0, 1}) {
		t.Errorf("unexpected color %v", yellow.Color)
	}

	cfg.Bodies[1].Mass = 0
	if _, err := FromConfig(cfg); !errors.Is(err, ErrInvalidMass) {
		t.Errorf("expected ErrInvalidMass for massless body, got %v", err)
	}
}
