package raymarch

import "testing"

func TestBlocksAreOrderedAndInBounds(t *testing.T) {
	blocks := Blocks()
	wantBindings := []uint32{BindingCamera, BindingDisk, BindingObjects}
	wantSizes := []uintptr{CameraParamsSize, DiskParamsSize, ObjectParamsSize}

	if len(blocks) != len(wantBindings) {
		t.Fatalf("len(Blocks()) = %d, want %d", len(blocks), len(wantBindings))
	}
	for i, b := range blocks {
		if b.Binding != wantBindings[i] {
			t.Errorf("%s binding = %d, want %d", b.Name, b.Binding, wantBindings[i])
		}
		if b.Size != wantSizes[i] {
			t.Errorf("%s size = %d, want %d", b.Name, b.Size, wantSizes[i])
		}

		var end uintptr
		for _, f := range b.Fields {
			if f.Offset < end {
				t.Errorf("%s.%s at %d overlaps previous field ending at %d", b.Name, f.Name, f.Offset, end)
			}
			end = f.Offset + f.Size
		}
		if end > b.Size {
			t.Errorf("%s fields end at %d, past size %d", b.Name, end, b.Size)
		}
	}
}

func TestObjectArraysSpanCapacity(t *testing.T) {
	objects := Blocks()[2]
	for _, f := range objects.Fields[1:] {
		if f.Size != MaxObjects*16 {
			t.Errorf("%s size = %d, want %d", f.Name, f.Size, MaxObjects*16)
		}
	}
}
