// Package grid builds the curved-spacetime wireframe drawn under the bodies.
//
// The grid is an embedding diagram: each lattice vertex in the horizontal
// plane is pushed down by Flamm's paraboloid of every nearby mass.
package grid

import (
	gomath "math"

	"github.com/chen-qingyu/black-hole/internal/config"
	"github.com/chen-qingyu/black-hole/internal/simulation"
	"github.com/chen-qingyu/black-hole/pkg/math"
)

// Config describes the lattice.
type Config struct {
	Size    int     // cells per side; the lattice has Size+1 vertices per side
	Spacing float64 // distance between neighbouring vertices
	Offset  float64 // vertical centering constant subtracted per body
}

// DefaultConfig returns the 25x25 lattice at 1e10 m spacing.
func DefaultConfig() Config {
	return Config{Size: 25, Spacing: 1e10, Offset: 3e10}
}

// ConfigFrom converts the YAML grid section.
func ConfigFrom(c config.GridConfig) Config {
	return Config{Size: c.Size, Spacing: c.Spacing, Offset: c.Offset}
}

// Mesh is a line-list wireframe: every pair of indices is one segment.
type Mesh struct {
	Vertices []math.Vec3
	Indices  []uint32
}

// Displacement returns one body's vertical contribution at horizontal
// distance dist. Inside the horizon the surface holds at its value on the
// horizon, so the function is continuous at dist == rs.
func Displacement(dist, rs, offset float64) float64 {
	h := dist - rs
	if h < 0 {
		h = 0
	}
	return 2*gomath.Sqrt(rs*h) - offset
}

// Grid owns a mesh whose topology is fixed and whose heights follow the bodies.
type Grid struct {
	cfg  Config
	mesh Mesh
}

// New allocates the lattice and its line indices.
func New(cfg Config) *Grid {
	n := cfg.Size + 1
	g := &Grid{
		cfg: cfg,
		mesh: Mesh{
			Vertices: make([]math.Vec3, n*n),
			Indices:  make([]uint32, 0, 4*cfg.Size*cfg.Size),
		},
	}

	// Connect each vertex to its right and lower neighbour
	for z := 0; z < cfg.Size; z++ {
		for x := 0; x < cfg.Size; x++ {
			i := uint32(z*n + x)
			g.mesh.Indices = append(g.mesh.Indices,
				i, i+1,
				i, i+uint32(n),
			)
		}
	}

	g.Update(nil)
	return g
}

// Generate builds a fresh mesh for bodies in one call.
func Generate(bodies []*simulation.Body, cfg Config) *Mesh {
	return New(cfg).Update(bodies)
}

// Update recomputes every vertex from the current body state and returns the mesh.
func (g *Grid) Update(bodies []*simulation.Body) *Mesh {
	n := g.cfg.Size + 1
	half := float64(g.cfg.Size) / 2

	for z := 0; z < n; z++ {
		for x := 0; x < n; x++ {
			p := math.DVec3{
				X: (float64(x) - half) * g.cfg.Spacing,
				Z: (float64(z) - half) * g.cfg.Spacing,
			}
			for _, b := range bodies {
				p.Y += Displacement(p.HorizontalDistance(b.Position), b.SchwarzschildRadius(), g.cfg.Offset)
			}
			g.mesh.Vertices[z*n+x] = p.Vec3()
		}
	}
	return &g.mesh
}

// Mesh returns the mesh from the last Update.
func (g *Grid) Mesh() *Mesh {
	return &g.mesh
}

// Config returns the lattice configuration.
func (g *Grid) Config() Config {
	return g.cfg
}
