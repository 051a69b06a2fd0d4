// Package compute runs the geodesic kernel on OpenGL 4.3 compute shaders.
package compute

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.3-core/gl"
	"go.uber.org/zap"

	"github.com/chen-qingyu/black-hole/internal/engine/raymarch"
	"github.com/chen-qingyu/black-hole/internal/engine/shader"
	"github.com/chen-qingyu/black-hole/internal/logger"
)

var _ raymarch.Device = (*Device)(nil)

// Device owns the kernel program, its uniform buffers and the output image.
// All methods must be called on the thread that owns the GL context.
type Device struct {
	program uint32
	ubos    map[uint32]uint32 // binding -> buffer
	texture uint32
	res     raymarch.Resolution
}

// New loads the kernel at kernelPath and allocates one uniform buffer per
// parameter block. The GL context must be current and initialized.
func New(kernelPath string) (*Device, error) {
	program, err := shader.LoadCompute(kernelPath)
	if err != nil {
		return nil, fmt.Errorf("load kernel: %w", err)
	}

	d := &Device{
		program: program,
		ubos:    make(map[uint32]uint32, 3),
	}

	sizes := map[uint32]int{
		raymarch.BindingCamera:  raymarch.CameraParamsSize,
		raymarch.BindingDisk:    raymarch.DiskParamsSize,
		raymarch.BindingObjects: raymarch.ObjectParamsSize,
	}
	for binding, size := range sizes {
		var ubo uint32
		gl.GenBuffers(1, &ubo)
		gl.BindBuffer(gl.UNIFORM_BUFFER, ubo)
		gl.BufferData(gl.UNIFORM_BUFFER, size, nil, gl.DYNAMIC_DRAW)
		gl.BindBufferBase(gl.UNIFORM_BUFFER, binding, ubo)
		d.ubos[binding] = ubo
	}
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)

	var maxGroups [2]int32
	gl.GetIntegeri_v(gl.MAX_COMPUTE_WORK_GROUP_COUNT, 0, &maxGroups[0])
	gl.GetIntegeri_v(gl.MAX_COMPUTE_WORK_GROUP_COUNT, 1, &maxGroups[1])
	logger.Info("compute kernel loaded",
		zap.String("path", kernelPath),
		zap.Int32("max_groups_x", maxGroups[0]),
		zap.Int32("max_groups_y", maxGroups[1]),
		zap.Int("schema", raymarch.SchemaVersion))

	return d, nil
}

// AllocateImage replaces the output texture with an RGBA8 one of size res.
func (d *Device) AllocateImage(res raymarch.Resolution) error {
	if d.texture != 0 {
		gl.DeleteTextures(1, &d.texture)
		d.texture = 0
	}

	gl.GenTextures(1, &d.texture)
	gl.BindTexture(gl.TEXTURE_2D, d.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(res.Width), int32(res.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("texture %s: gl error 0x%x", res, code)
	}
	d.res = res
	return nil
}

// UseProgram makes the kernel current.
func (d *Device) UseProgram() {
	gl.UseProgram(d.program)
}

// UploadParams writes data into the uniform buffer bound at binding.
func (d *Device) UploadParams(binding uint32, data []byte) {
	ubo, ok := d.ubos[binding]
	if !ok || len(data) == 0 {
		return
	}
	gl.BindBuffer(gl.UNIFORM_BUFFER, ubo)
	gl.BufferSubData(gl.UNIFORM_BUFFER, 0, len(data), gl.Ptr(data))
	gl.BindBufferBase(gl.UNIFORM_BUFFER, binding, ubo)
}

// BindImage binds the output texture write-only at unit.
func (d *Device) BindImage(unit uint32) {
	gl.BindImageTexture(unit, d.texture, 0, false, 0, gl.WRITE_ONLY, gl.RGBA8)
}

// Dispatch launches the kernel.
func (d *Device) Dispatch(x, y, z uint32) {
	gl.DispatchCompute(x, y, z)
}

// Barrier waits for image stores before the texture is sampled.
func (d *Device) Barrier() {
	gl.MemoryBarrier(gl.SHADER_IMAGE_ACCESS_BARRIER_BIT)
}

// Texture returns the output texture id, 0 before the first allocation.
func (d *Device) Texture() uint32 {
	return d.texture
}

// Resolution returns the output texture size.
func (d *Device) Resolution() raymarch.Resolution {
	return d.res
}

// ReadPixels copies the output texture back to the CPU, top row first.
func (d *Device) ReadPixels() (*image.RGBA, error) {
	if d.texture == 0 {
		return nil, fmt.Errorf("no output image allocated")
	}

	w, h := d.res.Width, d.res.Height
	pix := make([]byte, w*h*4)
	gl.BindTexture(gl.TEXTURE_2D, d.texture)
	gl.GetTexImage(gl.TEXTURE_2D, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	stride := w * 4
	// GL rows start at the bottom.
	for y := 0; y < h; y++ {
		src := pix[(h-1-y)*stride : (h-y)*stride]
		copy(img.Pix[y*img.Stride:], src)
	}
	return img, nil
}

// Close releases GL objects.
func (d *Device) Close() {
	if d.texture != 0 {
		gl.DeleteTextures(1, &d.texture)
	}
	for _, ubo := range d.ubos {
		gl.DeleteBuffers(1, &ubo)
	}
	if d.program != 0 {
		gl.DeleteProgram(d.program)
	}
}
