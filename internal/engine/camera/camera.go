// Package camera provides the orbit camera that circles the central mass.
package camera

import (
	gomath "math"

	"github.com/chen-qingyu/black-hole/internal/config"
	"github.com/chen-qingyu/black-hole/internal/engine/input"
	"github.com/chen-qingyu/black-hole/pkg/math"
)

// ElevationEpsilon keeps the elevation away from the poles, where the
// camera basis degenerates.
const ElevationEpsilon = 0.01

// State is the interaction state of the camera.
type State int

const (
	StateIdle State = iota
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// OrbitCamera orbits the origin on a sphere.
//
// The look-at target is always the origin. There is no pan transform, so
// the central mass stays in the middle of the view.
type OrbitCamera struct {
	// Spherical coordinates
	Radius    float32
	Azimuth   float32 // radians, unbounded
	Elevation float32 // radians from +Y, clamped to (eps, pi-eps)

	// Constraints
	MinRadius float32
	MaxRadius float32

	// Sensitivity
	OrbitSpeed float32 // radians per pixel
	ZoomSpeed  float32 // meters per scroll unit

	state        State
	lastX, lastY float64
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return FromConfig(config.Default().Camera)
}

// FromConfig creates an orbit camera from the camera config section.
func FromConfig(cfg config.CameraConfig) *OrbitCamera {
	c := &OrbitCamera{
		Radius:     cfg.Radius,
		Azimuth:    cfg.Azimuth,
		Elevation:  cfg.Elevation,
		MinRadius:  cfg.MinRadius,
		MaxRadius:  cfg.MaxRadius,
		OrbitSpeed: cfg.OrbitSpeed,
		ZoomSpeed:  cfg.ZoomSpeed,
	}
	c.Radius = clamp(c.Radius, c.MinRadius, c.MaxRadius)
	c.Elevation = clampElevation(c.Elevation)
	return c
}

// Target returns the look-at point.
func (c *OrbitCamera) Target() math.Vec3 {
	return math.Vec3{}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	elev := float64(clampElevation(c.Elevation))
	az := float64(c.Azimuth)
	r := float64(c.Radius)

	return math.Vec3{
		X: float32(r * gomath.Sin(elev) * gomath.Cos(az)),
		Y: float32(r * gomath.Cos(elev)),
		Z: float32(r * gomath.Sin(elev) * gomath.Sin(az)),
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target(), math.Vec3{X: 0, Y: 1, Z: 0})
}

// State returns the interaction state.
func (c *OrbitCamera) State() State {
	return c.state
}

// Moving reports whether the user is currently rotating the view.
func (c *OrbitCamera) Moving() bool {
	return c.state == StateDragging
}

// HandleEvents feeds a frame's worth of events to the camera.
func (c *OrbitCamera) HandleEvents(events []input.Event) {
	for _, e := range events {
		c.HandleEvent(e)
	}
}

// Drain consumes every queued event. Use it when the camera is the only
// consumer of the queue.
func (c *OrbitCamera) Drain(q *input.Queue) {
	c.HandleEvents(q.Drain())
}

// HandleEvent applies a single event. Events the camera does not use are ignored.
func (c *OrbitCamera) HandleEvent(e input.Event) {
	switch e.Type {
	case input.EventMouseButton:
		c.HandleButton(e.Button, e.Action, e.X, e.Y)
	case input.EventMouseMove:
		c.HandleMove(e.X, e.Y)
	case input.EventScroll:
		c.HandleZoom(e.ScrollY)
	}
}

// HandleButton drives the idle/dragging transitions. Left and middle
// buttons rotate; other buttons leave the camera alone.
func (c *OrbitCamera) HandleButton(button input.Button, action input.Action, x, y float64) {
	if button != input.ButtonLeft && button != input.ButtonMiddle {
		return
	}
	switch action {
	case input.ActionPress:
		c.state = StateDragging
		c.lastX, c.lastY = x, y
	case input.ActionRelease:
		c.state = StateIdle
	}
}

// HandleMove rotates by the pointer delta while dragging.
// The anchor tracks the pointer in every state.
func (c *OrbitCamera) HandleMove(x, y float64) {
	dx := float32(x - c.lastX)
	dy := float32(y - c.lastY)
	c.lastX, c.lastY = x, y

	if c.state != StateDragging {
		return
	}
	c.HandleDrag(dx, dy)
}

// HandleDrag updates azimuth and elevation from a drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Azimuth += deltaX * c.OrbitSpeed
	c.Elevation = clampElevation(c.Elevation - deltaY*c.OrbitSpeed)
}

// HandleZoom updates radius based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float64) {
	r := float64(c.Radius) - delta*float64(c.ZoomSpeed)
	c.Radius = clamp(float32(r), c.MinRadius, c.MaxRadius)
}

func clampElevation(e float32) float32 {
	return clamp(e, ElevationEpsilon, gomath.Pi-ElevationEpsilon)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
