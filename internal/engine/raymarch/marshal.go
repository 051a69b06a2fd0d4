package raymarch

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/chen-qingyu/black-hole/internal/config"
	"github.com/chen-qingyu/black-hole/internal/logger"
	"github.com/chen-qingyu/black-hole/internal/simulation"
	"github.com/chen-qingyu/black-hole/pkg/math"
)

// Disk radii in units of the central Schwarzschild radius.
const (
	DiskInnerFactor = 2.2
	DiskOuterFactor = 5.2
)

var worldUp = math.Vec3{X: 0, Y: 1, Z: 0}

// Basis returns the camera frame looking from position at target.
// forward points at the target, right = forward x up, up = right x forward.
func Basis(position, target math.Vec3) (right, up, forward math.Vec3) {
	forward = target.Sub(position).Normalize()
	right = forward.Cross(worldUp).Normalize()
	up = right.Cross(forward)
	return right, up, forward
}

// CameraView is what the marshaller needs to know about the camera.
type CameraView struct {
	Position   math.Vec3
	Target     math.Vec3
	TanHalfFov float32
	Aspect     float32
	Moving     bool
}

// NewCameraView builds a view from a vertical field of view in degrees.
func NewCameraView(position, target math.Vec3, fovDegrees, aspect float32, moving bool) CameraView {
	return CameraView{
		Position:   position,
		Target:     target,
		TanHalfFov: float32(gomath.Tan(float64(fovDegrees) * gomath.Pi / 360)),
		Aspect:     aspect,
		Moving:     moving,
	}
}

// Frame holds one frame's parameter blocks.
type Frame struct {
	Camera  GPUCameraParams
	Disk    GPUDiskParams
	Objects GPUObjectParams

	// Dropped is the number of bodies that did not fit in MaxObjects.
	Dropped int
}

// Buffer is an encoded parameter block and the binding it goes to.
type Buffer struct {
	Binding uint32
	Data    []byte
}

// Buffers encodes the frame in upload order: camera, disk, objects.
func (f *Frame) Buffers() []Buffer {
	return []Buffer{
		{Binding: BindingCamera, Data: f.Camera.Marshal()},
		{Binding: BindingDisk, Data: f.Disk.Marshal()},
		{Binding: BindingObjects, Data: f.Objects.Marshal()},
	}
}

// Marshaller packs simulation and camera state into GPU parameter blocks.
type Marshaller struct {
	NumRays   float32
	Thickness float32

	warnedOverflow bool
}

// NewMarshaller creates a marshaller from the compute config section.
func NewMarshaller(cfg config.ComputeConfig) *Marshaller {
	return &Marshaller{
		NumRays:   cfg.NumRays,
		Thickness: cfg.DiskThickness,
	}
}

// Pack fills every block for one frame. Disk radii come from central.
// Only the first MaxObjects bodies are packed.
func (m *Marshaller) Pack(view CameraView, central *simulation.Body, bodies []*simulation.Body) Frame {
	var f Frame
	f.Camera = PackCamera(view)

	rs := float32(central.SchwarzschildRadius())
	f.Disk = GPUDiskParams{
		InnerRadius: rs * DiskInnerFactor,
		OuterRadius: rs * DiskOuterFactor,
		NumRays:     m.NumRays,
		Thickness:   m.Thickness,
	}

	f.Objects = PackObjects(bodies)
	if len(bodies) > MaxObjects {
		f.Dropped = len(bodies) - MaxObjects
		if !m.warnedOverflow {
			m.warnedOverflow = true
			logger.Debug("bodies beyond kernel capacity are not rendered",
				zap.Int("bodies", len(bodies)),
				zap.Int("capacity", MaxObjects))
		}
	}
	return f
}

// PackCamera fills the camera block.
func PackCamera(view CameraView) GPUCameraParams {
	right, up, forward := Basis(view.Position, view.Target)
	p := GPUCameraParams{
		Position:   view.Position.Array(),
		Right:      right.Array(),
		Up:         up.Array(),
		Forward:    forward.Array(),
		TanHalfFov: view.TanHalfFov,
		Aspect:     view.Aspect,
	}
	if view.Moving {
		p.Moving = 1
	}
	return p
}

// PackObjects fills the objects block from at most MaxObjects bodies.
func PackObjects(bodies []*simulation.Body) GPUObjectParams {
	n := min(len(bodies), MaxObjects)

	var p GPUObjectParams
	p.NumObjects = int32(n)
	for i, b := range bodies[:n] {
		p.PosRadius[i] = b.Position.Vec3().Extend(float32(b.Radius))
		p.Color[i] = b.Color
		p.Mass[i].Value = float32(b.Mass())
	}
	return p
}
