package grid

import (
	gomath "math"
	"testing"

	"github.com/chen-qingyu/black-hole/internal/simulation"
	"github.com/chen-qingyu/black-hole/pkg/math"
)

func body(t *testing.T, pos math.DVec3, mass float64) *simulation.Body {
	t.Helper()
	b, err := simulation.NewBody("b", pos, mass, 0, math.Vec4{})
	if err != nil {
		t.Fatalf("NewBody: %v", err)
	}
	return b
}

func TestDisplacementContinuousAtHorizon(t *testing.T) {
	for _, rs := range []float64{1e-3, 1, 2.95e3, 1.27e10} {
		const offset = 3e10
		at := Displacement(rs, rs, offset)
		inside := Displacement(rs*(1-1e-9), rs, offset)
		outside := Displacement(rs*(1+1e-9), rs, offset)

		// Outside grows like sqrt of the step; the offset adds float rounding
		tol := 2.02*gomath.Sqrt(rs*rs*1e-9) + 1e-5
		if gomath.Abs(at-inside) > tol || gomath.Abs(at-outside) > tol {
			t.Errorf("rs=%g: discontinuous, inside=%g at=%g outside=%g", rs, inside, at, outside)
		}
		if at != -offset {
			t.Errorf("rs=%g: value on horizon = %g, want %g", rs, at, -offset)
		}
	}
}

func TestDisplacementInsideIsFlat(t *testing.T) {
	rs := 1.27e10
	for _, d := range []float64{0, 0.25 * rs, 0.99 * rs} {
		if got := Displacement(d, rs, 3e10); got != -3e10 {
			t.Errorf("Displacement(%g) = %g, want flat floor -3e10", d, got)
		}
	}
}

func TestDisplacementAsymptote(t *testing.T) {
	rs := 1.27e10
	dist := 1e6 * rs
	got := Displacement(dist, rs, 3e10)
	want := 2*gomath.Sqrt(rs*dist) - 3e10
	if gomath.Abs(got-want)/want > 1e-6 {
		t.Errorf("far field = %g, want ~%g", got, want)
	}
}

func TestTopology(t *testing.T) {
	mesh := Generate(nil, DefaultConfig())

	if len(mesh.Vertices) != 26*26 {
		t.Errorf("expected 676 vertices, got %d", len(mesh.Vertices))
	}
	if len(mesh.Indices) != 4*25*25 {
		t.Errorf("expected 2500 indices, got %d", len(mesh.Indices))
	}
	for i, idx := range mesh.Indices {
		if int(idx) >= len(mesh.Vertices) {
			t.Fatalf("index %d out of range: %d", i, idx)
		}
	}

	// First cell: right neighbour then lower neighbour
	want := []uint32{0, 1, 0, 26}
	for i, w := range want {
		if mesh.Indices[i] != w {
			t.Errorf("index %d = %d, want %d", i, mesh.Indices[i], w)
		}
	}
}

func TestLatticeCentered(t *testing.T) {
	mesh := Generate(nil, DefaultConfig())

	first := mesh.Vertices[0]
	last := mesh.Vertices[len(mesh.Vertices)-1]
	if first.X != -last.X || first.Z != -last.Z {
		t.Errorf("lattice not centered: first=%v last=%v", first, last)
	}
	if first.X != -12.5e10 {
		t.Errorf("first.X = %g, want -1.25e11", first.X)
	}
	for _, v := range mesh.Vertices {
		if v.Y != 0 {
			t.Fatalf("no bodies should leave the grid flat, got y=%g", v.Y)
		}
	}
}

func TestWellDeepestUnderBody(t *testing.T) {
	cfg := DefaultConfig()
	mesh := Generate([]*simulation.Body{body(t, math.DVec3{}, 8.54e36)}, cfg)

	n := cfg.Size + 1
	// The four vertices around the origin sit inside the horizon, on the floor
	center := mesh.Vertices[(n/2)*n+n/2]
	for _, v := range mesh.Vertices {
		if v.Y < center.Y {
			t.Fatalf("vertex %v is deeper than the center %v", v, center)
		}
	}
}

func TestContributionsSum(t *testing.T) {
	cfg := DefaultConfig()
	a := body(t, math.DVec3{X: 4e11}, 1.989e30)
	b := body(t, math.DVec3{Z: 4e11}, 1.989e30)

	ma := Generate([]*simulation.Body{a}, cfg)
	mb := Generate([]*simulation.Body{b}, cfg)
	both := Generate([]*simulation.Body{a, b}, cfg)

	for i := range both.Vertices {
		sum := float64(ma.Vertices[i].Y) + float64(mb.Vertices[i].Y)
		if gomath.Abs(float64(both.Vertices[i].Y)-sum) > 1e-3*gomath.Abs(sum) {
			t.Fatalf("vertex %d: %g != %g + %g", i, both.Vertices[i].Y, ma.Vertices[i].Y, mb.Vertices[i].Y)
		}
	}
}

func TestUpdateFollowsBodies(t *testing.T) {
	g := New(DefaultConfig())
	b := body(t, math.DVec3{}, 8.54e36)

	before := g.Update([]*simulation.Body{b}).Vertices[0].Y
	b.Position = math.DVec3{X: -12.5e10, Z: -12.5e10}
	after := g.Update([]*simulation.Body{b}).Vertices[0].Y

	if after >= before {
		t.Errorf("moving the body onto vertex 0 should deepen it: %g -> %g", before, after)
	}
	if g.Mesh() != g.Update(nil) {
		t.Error("Update should reuse the same mesh")
	}
}
