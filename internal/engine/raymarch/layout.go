// Package raymarch packs per-frame parameters for the geodesic kernel and
// dispatches it over the output image.
package raymarch

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

// SchemaVersion identifies the buffer layouts below. Bump it together with
// the kernel whenever a field moves.
const SchemaVersion = 1

// MaxObjects is the number of bodies the kernel can see per frame. The
// registry may hold more; the rest are not packed.
const MaxObjects = 16

// Uniform block bindings and the output image unit used by the kernel.
const (
	BindingCamera  = 1
	BindingDisk    = 2
	BindingObjects = 3
	ImageUnit      = 0
)

// WorkgroupSize is the kernel's local size in x and y.
const WorkgroupSize = 16

// Buffer sizes in bytes (std140).
const (
	CameraParamsSize = 80
	DiskParamsSize   = 16
	ObjectParamsSize = 784
)

// GPUCameraParams matches the kernel's Camera block (binding 1).
// Size: 80 bytes (std140).
type GPUCameraParams struct {
	Position   [3]float32 // offset  0
	_          float32    // offset 12
	Right      [3]float32 // offset 16
	_          float32    // offset 28
	Up         [3]float32 // offset 32
	_          float32    // offset 44
	Forward    [3]float32 // offset 48
	_          float32    // offset 60
	TanHalfFov float32    // offset 64
	Aspect     float32    // offset 68
	Moving     uint32     // offset 72: GLSL bool, 0 or 1
	_          int32      // offset 76
}

// GPUDiskParams matches the kernel's Disk block (binding 2).
// Size: 16 bytes (std140).
type GPUDiskParams struct {
	InnerRadius float32 // offset  0
	OuterRadius float32 // offset  4
	NumRays     float32 // offset  8
	Thickness   float32 // offset 12
}

// PaddedFloat is a float array element under std140, which rounds the
// stride of scalar arrays up to 16 bytes.
type PaddedFloat struct {
	Value float32
	_     [3]float32
}

// GPUObjectParams matches the kernel's Objects block (binding 3).
// Entries at or beyond NumObjects are zero.
// Size: 784 bytes (std140).
//
// Layout:
//
//	int   numObjects         (offset   0, 12 bytes pad)
//	vec4  posRadius[16]      (offset  16) xyz = position, w = radius
//	vec4  color[16]          (offset 272)
//	float mass[16]           (offset 528, stride 16)
type GPUObjectParams struct {
	NumObjects int32
	_          [3]int32
	PosRadius  [MaxObjects][4]float32
	Color      [MaxObjects][4]float32
	Mass       [MaxObjects]PaddedFloat
}

// Both directions: a negative array length does not compile.
var (
	_ [unsafe.Sizeof(GPUCameraParams{}) - CameraParamsSize]struct{}
	_ [CameraParamsSize - unsafe.Sizeof(GPUCameraParams{})]struct{}
	_ [unsafe.Sizeof(GPUDiskParams{}) - DiskParamsSize]struct{}
	_ [DiskParamsSize - unsafe.Sizeof(GPUDiskParams{})]struct{}
	_ [unsafe.Sizeof(GPUObjectParams{}) - ObjectParamsSize]struct{}
	_ [ObjectParamsSize - unsafe.Sizeof(GPUObjectParams{})]struct{}
	_ [unsafe.Sizeof(PaddedFloat{}) - 16]struct{}
	_ [16 - unsafe.Sizeof(PaddedFloat{})]struct{}
)

// Size returns the struct size in bytes.
func (p *GPUCameraParams) Size() int { return int(unsafe.Sizeof(*p)) }

// Size returns the struct size in bytes.
func (p *GPUDiskParams) Size() int { return int(unsafe.Sizeof(*p)) }

// Size returns the struct size in bytes.
func (p *GPUObjectParams) Size() int { return int(unsafe.Sizeof(*p)) }

// Marshal encodes the block little-endian, padding written as zero.
func (p *GPUCameraParams) Marshal() []byte { return marshal(p, CameraParamsSize) }

// Marshal encodes the block little-endian.
func (p *GPUDiskParams) Marshal() []byte { return marshal(p, DiskParamsSize) }

// Marshal encodes the block little-endian, padding written as zero.
func (p *GPUObjectParams) Marshal() []byte { return marshal(p, ObjectParamsSize) }

func marshal(v any, size int) []byte {
	buf, err := binary.Append(make([]byte, 0, size), binary.LittleEndian, v)
	if err != nil {
		// Only fixed-size types live in these structs.
		panic(fmt.Sprintf("raymarch: marshal %T: %v", v, err))
	}
	return buf
}
