package raymarch

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

// recorder is a Device that logs every call.
type recorder struct {
	calls    []string
	uploads  map[uint32]int
	allocErr error
}

func newRecorder() *recorder {
	return &recorder{uploads: make(map[uint32]int)}
}

func (r *recorder) AllocateImage(res Resolution) error {
	r.calls = append(r.calls, "alloc "+res.String())
	return r.allocErr
}

func (r *recorder) UseProgram() { r.calls = append(r.calls, "program") }

func (r *recorder) UploadParams(binding uint32, data []byte) {
	r.calls = append(r.calls, fmt.Sprintf("upload %d", binding))
	r.uploads[binding] = len(data)
}

func (r *recorder) BindImage(unit uint32) { r.calls = append(r.calls, fmt.Sprintf("image %d", unit)) }

func (r *recorder) Dispatch(x, y, z uint32) {
	r.calls = append(r.calls, fmt.Sprintf("dispatch %d %d %d", x, y, z))
}

func (r *recorder) Barrier() { r.calls = append(r.calls, "barrier") }

func TestGroups(t *testing.T) {
	tests := []struct {
		size int
		want uint32
	}{
		{1, 1},
		{15, 1},
		{16, 1},
		{17, 2},
		{150, 10},
		{200, 13},
		{300, 19},
		{400, 25},
	}
	for _, tt := range tests {
		if got := Groups(tt.size); got != tt.want {
			t.Errorf("Groups(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestDispatchCallOrder(t *testing.T) {
	dev := newRecorder()
	d := NewDispatcher()
	var f Frame
	f.Objects.NumObjects = 3

	stats, err := d.Dispatch(dev, &f, Resolution{200, 150})
	if err != nil {
		t.Fatalf("Dispatch() = %v", err)
	}

	want := []string{
		"alloc 200x150",
		"program",
		"upload 1",
		"upload 2",
		"upload 3",
		"image 0",
		"dispatch 13 10 1",
		"barrier",
	}
	if !reflect.DeepEqual(dev.calls, want) {
		t.Errorf("calls =\n%v\nwant\n%v", dev.calls, want)
	}
	if !stats.Reallocated || stats.GroupsX != 13 || stats.GroupsY != 10 || stats.Objects != 3 {
		t.Errorf("stats = %+v", stats)
	}
	if dev.uploads[BindingCamera] != CameraParamsSize ||
		dev.uploads[BindingDisk] != DiskParamsSize ||
		dev.uploads[BindingObjects] != ObjectParamsSize {
		t.Errorf("upload sizes = %v", dev.uploads)
	}
}

func TestDispatchReallocatesOnlyOnChange(t *testing.T) {
	dev := newRecorder()
	d := NewDispatcher()
	var f Frame

	steps := []struct {
		res         Resolution
		reallocated bool
	}{
		{Resolution{400, 300}, true},
		{Resolution{400, 300}, false},
		{Resolution{200, 150}, true},
		{Resolution{200, 150}, false},
		{Resolution{400, 300}, true},
	}
	for i, s := range steps {
		stats, err := d.Dispatch(dev, &f, s.res)
		if err != nil {
			t.Fatalf("step %d: Dispatch() = %v", i, err)
		}
		if stats.Reallocated != s.reallocated {
			t.Errorf("step %d: Reallocated = %v, want %v", i, stats.Reallocated, s.reallocated)
		}
		if d.Resolution() != s.res {
			t.Errorf("step %d: Resolution() = %v, want %v", i, d.Resolution(), s.res)
		}
	}
}

func TestDispatchRejectsInvalidResolution(t *testing.T) {
	dev := newRecorder()
	d := NewDispatcher()
	var f Frame

	_, err := d.Dispatch(dev, &f, Resolution{0, 150})
	if !errors.Is(err, ErrInvalidResolution) {
		t.Fatalf("Dispatch() = %v, want ErrInvalidResolution", err)
	}
	if len(dev.calls) != 0 {
		t.Errorf("device was called: %v", dev.calls)
	}
}

func TestDispatchAllocateError(t *testing.T) {
	dev := newRecorder()
	dev.allocErr = errors.New("out of memory")
	d := NewDispatcher()
	var f Frame

	if _, err := d.Dispatch(dev, &f, Resolution{200, 150}); !errors.Is(err, dev.allocErr) {
		t.Fatalf("Dispatch() = %v, want wrapped alloc error", err)
	}
	if len(dev.calls) != 1 {
		t.Errorf("calls after failed alloc = %v, want only alloc", dev.calls)
	}

	// A failed allocation is retried on the next frame.
	dev.allocErr = nil
	stats, err := d.Dispatch(dev, &f, Resolution{200, 150})
	if err != nil || !stats.Reallocated {
		t.Errorf("retry: stats = %+v, err = %v", stats, err)
	}
}
