package raymarch

import "fmt"

// Device is the GPU side of a dispatch. The OpenGL implementation lives in
// the compute package; tests use a recorder.
type Device interface {
	// AllocateImage (re)creates the RGBA8 output image.
	AllocateImage(res Resolution) error
	// UseProgram makes the geodesic kernel current.
	UseProgram()
	// UploadParams writes a parameter block to the uniform buffer at binding.
	UploadParams(binding uint32, data []byte)
	// BindImage binds the output image write-only at unit.
	BindImage(unit uint32)
	// Dispatch launches x*y*z workgroups.
	Dispatch(x, y, z uint32)
	// Barrier makes image writes visible to later reads.
	Barrier()
}

// DispatchStats describes one dispatch.
type DispatchStats struct {
	Resolution  Resolution
	GroupsX     uint32
	GroupsY     uint32
	Reallocated bool
	Objects     int
}

// Dispatcher runs the kernel over the output image, keeping track of the
// image size so it is only reallocated when the resolution changes.
type Dispatcher struct {
	current   Resolution
	allocated bool
}

// NewDispatcher creates a dispatcher with no image allocated yet.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Resolution returns the size of the current image, zero before the
// first dispatch.
func (d *Dispatcher) Resolution() Resolution {
	return d.current
}

// Groups returns the workgroup count covering size pixels.
func Groups(size int) uint32 {
	return uint32((size + WorkgroupSize - 1) / WorkgroupSize)
}

// Dispatch uploads frame and runs the kernel at res.
func (d *Dispatcher) Dispatch(dev Device, frame *Frame, res Resolution) (DispatchStats, error) {
	if err := res.Validate(); err != nil {
		return DispatchStats{}, err
	}

	stats := DispatchStats{
		Resolution: res,
		GroupsX:    Groups(res.Width),
		GroupsY:    Groups(res.Height),
		Objects:    int(frame.Objects.NumObjects),
	}

	if !d.allocated || res != d.current {
		if err := dev.AllocateImage(res); err != nil {
			return DispatchStats{}, fmt.Errorf("allocate %s image: %w", res, err)
		}
		d.current = res
		d.allocated = true
		stats.Reallocated = true
	}

	dev.UseProgram()
	for _, buf := range frame.Buffers() {
		dev.UploadParams(buf.Binding, buf.Data)
	}
	dev.BindImage(ImageUnit)
	dev.Dispatch(stats.GroupsX, stats.GroupsY, 1)
	dev.Barrier()

	return stats, nil
}
