package simulation

import (
	"testing"

	"github.com/chen-qingyu/black-hole/pkg/math"
)

func traceRegistry(t *testing.T) *Registry {
	t.Helper()
	central, err := NewBody("c", math.DVec3{}, 8.54e36, 0, math.Vec4{})
	if err != nil {
		t.Fatal(err)
	}
	central.Pinned = true
	orbiter, err := NewBody("o", math.DVec3{X: 4e11}, 1.98892e30, 4e10, math.Vec4{1, 1, 0, 1})
	if err != nil {
		t.Fatal(err)
	}
	return NewRegistry(central, orbiter)
}

func TestRecordSampling(t *testing.T) {
	r := traceRegistry(t)
	tr := Record(r, NewIntegrator(), 10, 4)

	wantSteps := []int{0, 4, 8, 10}
	if len(tr.Steps) != len(wantSteps) {
		t.Fatalf("Steps = %v, want %v", tr.Steps, wantSteps)
	}
	for i, s := range wantSteps {
		if tr.Steps[i] != s {
			t.Errorf("Steps[%d] = %d, want %d", i, tr.Steps[i], s)
		}
	}
	if len(tr.Names) != 1 || tr.Names[0] != "o" {
		t.Errorf("Names = %v, want [o]", tr.Names)
	}
	if got := len(tr.Distances[0]); got != len(wantSteps) {
		t.Errorf("len(Distances[0]) = %d, want %d", got, len(wantSteps))
	}
	if tr.Distances[0][0] != 4e11 {
		t.Errorf("initial distance = %g, want 4e11", tr.Distances[0][0])
	}
}

func TestRecordFallsInward(t *testing.T) {
	r := traceRegistry(t)
	tr := Record(r, NewIntegrator(), 100, 10)

	d := tr.Distances[0]
	for i := 1; i < len(d); i++ {
		if d[i] >= d[i-1] {
			t.Fatalf("distance did not decrease at sample %d: %g -> %g", i, d[i-1], d[i])
		}
	}
	if tr.Captured[0] != -1 {
		t.Errorf("Captured = %d after 100 steps, want -1", tr.Captured[0])
	}
}

func TestRecordDetectsCapture(t *testing.T) {
	r := traceRegistry(t)
	// Start just outside the horizon, falling in.
	o := r.Bodies()[1]
	o.Position = math.DVec3{X: 1.3e10}
	o.Velocity = math.DVec3{X: -1e9}

	tr := Record(r, NewIntegrator(), 5, 1)
	if tr.Captured[0] != 1 {
		t.Errorf("Captured = %d, want 1", tr.Captured[0])
	}
}

func TestRecordZeroEvery(t *testing.T) {
	r := traceRegistry(t)
	tr := Record(r, NewIntegrator(), 3, 0)
	if len(tr.Steps) != 4 {
		t.Errorf("Steps = %v, want every step sampled", tr.Steps)
	}
}
