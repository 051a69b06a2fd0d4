package raymarch

import "unsafe"

// Field is one member of a parameter block.
type Field struct {
	Name   string
	Offset uintptr
	Size   uintptr
}

// Block describes a parameter block as the kernel sees it.
type Block struct {
	Name    string
	Binding uint32
	Size    uintptr
	Fields  []Field
}

// Blocks returns the layout of every parameter block in binding order.
func Blocks() []Block {
	var cam GPUCameraParams
	var disk GPUDiskParams
	var obj GPUObjectParams

	return []Block{
		{
			Name:    "Camera",
			Binding: BindingCamera,
			Size:    unsafe.Sizeof(cam),
			Fields: []Field{
				{"position", unsafe.Offsetof(cam.Position), unsafe.Sizeof(cam.Position)},
				{"right", unsafe.Offsetof(cam.Right), unsafe.Sizeof(cam.Right)},
				{"up", unsafe.Offsetof(cam.Up), unsafe.Sizeof(cam.Up)},
				{"forward", unsafe.Offsetof(cam.Forward), unsafe.Sizeof(cam.Forward)},
				{"tanHalfFov", unsafe.Offsetof(cam.TanHalfFov), unsafe.Sizeof(cam.TanHalfFov)},
				{"aspect", unsafe.Offsetof(cam.Aspect), unsafe.Sizeof(cam.Aspect)},
				{"moving", unsafe.Offsetof(cam.Moving), unsafe.Sizeof(cam.Moving)},
			},
		},
		{
			Name:    "Disk",
			Binding: BindingDisk,
			Size:    unsafe.Sizeof(disk),
			Fields: []Field{
				{"innerRadius", unsafe.Offsetof(disk.InnerRadius), unsafe.Sizeof(disk.InnerRadius)},
				{"outerRadius", unsafe.Offsetof(disk.OuterRadius), unsafe.Sizeof(disk.OuterRadius)},
				{"numRays", unsafe.Offsetof(disk.NumRays), unsafe.Sizeof(disk.NumRays)},
				{"thickness", unsafe.Offsetof(disk.Thickness), unsafe.Sizeof(disk.Thickness)},
			},
		},
		{
			Name:    "Objects",
			Binding: BindingObjects,
			Size:    unsafe.Sizeof(obj),
			Fields: []Field{
				{"numObjects", unsafe.Offsetof(obj.NumObjects), unsafe.Sizeof(obj.NumObjects)},
				{"posRadius", unsafe.Offsetof(obj.PosRadius), unsafe.Sizeof(obj.PosRadius)},
				{"color", unsafe.Offsetof(obj.Color), unsafe.Sizeof(obj.Color)},
				{"mass", unsafe.Offsetof(obj.Mass), unsafe.Sizeof(obj.Mass)},
			},
		},
	}
}
