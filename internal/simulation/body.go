// Package simulation holds the massive bodies and advances them under
// Newtonian gravity.
package simulation

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/chen-qingyu/black-hole/pkg/math"
)

// Physical constants in SI units.
const (
	G = 6.67430e-11  // gravitational constant, m^3 kg^-1 s^-2
	C = 299792458.0 // speed of light, m/s
)

// ErrInvalidMass is returned for masses that are not finite and positive.
// Such a body would have no event horizon and break the grid displacement.
var ErrInvalidMass = errors.New("mass must be finite and positive")

// SchwarzschildRadius returns 2Gm/c² for mass m.
func SchwarzschildRadius(mass float64) float64 {
	return 2 * G * mass / (C * C)
}

// Body is a massive object in the simulation.
type Body struct {
	Name     string
	Position math.DVec3
	Velocity math.DVec3
	Radius   float64 // visual radius sent to the kernel
	Color    math.Vec4
	Pinned   bool // pinned bodies attract others but never move

	mass float64
	rs   float64
}

// NewBody creates a body, rejecting masses without a horizon.
// A zero radius defaults to the Schwarzschild radius.
func NewBody(name string, position math.DVec3, mass, radius float64, color math.Vec4) (*Body, error) {
	b := &Body{
		Name:     name,
		Position: position,
		Color:    color,
	}
	if err := b.SetMass(mass); err != nil {
		return nil, err
	}
	b.Radius = radius
	if radius == 0 {
		b.Radius = b.rs
	}
	return b, nil
}

// Mass returns the body mass in kilograms.
func (b *Body) Mass() float64 {
	return b.mass
}

// SetMass updates the mass and recomputes the Schwarzschild radius.
func (b *Body) SetMass(mass float64) error {
	if !(mass > 0) || gomath.IsInf(mass, 0) {
		return fmt.Errorf("body %q: %w (got %g)", b.Name, ErrInvalidMass, mass)
	}
	b.mass = mass
	b.rs = SchwarzschildRadius(mass)
	return nil
}

// SchwarzschildRadius returns the event horizon radius.
func (b *Body) SchwarzschildRadius() float64 {
	return b.rs
}

// Intercept reports whether point lies strictly inside the event horizon.
func (b *Body) Intercept(point math.DVec3) bool {
	return point.Sub(b.Position).LengthSquared() < b.rs*b.rs
}
