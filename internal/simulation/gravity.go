package simulation

import "github.com/chen-qingyu/black-hole/pkg/math"

// Integrator advances bodies with pairwise Newtonian gravity.
//
// Each Step is one implicit unit of time: velocity += acceleration,
// position += velocity. Motion therefore depends on how often Step is
// called, not on wall-clock time.
type Integrator struct {
	G float64
}

// NewIntegrator returns an integrator using the SI gravitational constant.
func NewIntegrator() *Integrator {
	return &Integrator{G: G}
}

// Accelerations returns the gravitational acceleration on each body from
// all others. Coincident pairs contribute nothing.
func (in *Integrator) Accelerations(bodies []*Body) []math.DVec3 {
	acc := make([]math.DVec3, len(bodies))
	for i, bi := range bodies {
		for j, bj := range bodies {
			if i == j {
				continue
			}
			d := bj.Position.Sub(bi.Position)
			dist2 := d.LengthSquared()
			if dist2 == 0 {
				continue
			}
			// The body's own mass cancels out of F = ma
			acc[i] = acc[i].Add(d.Normalize().Scale(in.G * bj.mass / dist2))
		}
	}
	return acc
}

// Step advances every unpinned body by one unit step. Accelerations are
// taken from positions before the step so the update is order independent.
func (in *Integrator) Step(bodies []*Body) {
	acc := in.Accelerations(bodies)
	for i, b := range bodies {
		if b.Pinned {
			continue
		}
		b.Velocity = b.Velocity.Add(acc[i])
		b.Position = b.Position.Add(b.Velocity)
	}
}
