package simulation

import (
	"fmt"

	"github.com/chen-qingyu/black-hole/internal/config"
	"github.com/chen-qingyu/black-hole/pkg/math"
)

// Registry holds the central body and every simulated body in a stable order.
// The central body is always first.
type Registry struct {
	bodies []*Body
}

// NewRegistry creates a registry anchored on central.
func NewRegistry(central *Body, bodies ...*Body) *Registry {
	r := &Registry{bodies: make([]*Body, 0, 1+len(bodies))}
	r.bodies = append(r.bodies, central)
	r.bodies = append(r.bodies, bodies...)
	return r
}

// FromConfig builds the registry described by the simulation config.
func FromConfig(cfg config.SimulationConfig) (*Registry, error) {
	central, err := bodyFromConfig(cfg.Central)
	if err != nil {
		return nil, fmt.Errorf("central body: %w", err)
	}

	r := NewRegistry(central)
	for i, bc := range cfg.Bodies {
		b, err := bodyFromConfig(bc)
		if err != nil {
			return nil, fmt.Errorf("body %d: %w", i, err)
		}
		r.Add(b)
	}
	return r, nil
}

func bodyFromConfig(bc config.BodyConfig) (*Body, error) {
	pos := math.DVec3{X: bc.Position[0], Y: bc.Position[1], Z: bc.Position[2]}
	b, err := NewBody(bc.Name, pos, bc.Mass, bc.Radius, math.Vec4(bc.Color))
	if err != nil {
		return nil, err
	}
	b.Velocity = math.DVec3{X: bc.Velocity[0], Y: bc.Velocity[1], Z: bc.Velocity[2]}
	b.Pinned = bc.Pinned
	return b, nil
}

// Add appends a body. There is no capacity limit here; consumers with a
// fixed capacity truncate on their side.
func (r *Registry) Add(b *Body) {
	r.bodies = append(r.bodies, b)
}

// Central returns the body anchoring the accretion disk.
func (r *Registry) Central() *Body {
	return r.bodies[0]
}

// Bodies returns all bodies, central first. The slice must not be modified.
func (r *Registry) Bodies() []*Body {
	return r.bodies
}

// Len returns the number of bodies including the central one.
func (r *Registry) Len() int {
	return len(r.bodies)
}

// Intercept reports whether point lies inside any body's event horizon.
func (r *Registry) Intercept(point math.DVec3) bool {
	for _, b := range r.bodies {
		if b.Intercept(point) {
			return true
		}
	}
	return false
}
