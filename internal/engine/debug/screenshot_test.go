package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/bmp"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 30, 45, 123e6, time.UTC)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{"bmp", FormatBMP, false},
		{"jpg", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestGenerateFilename(t *testing.T) {
	sc := NewScreenshotCapture("shots", "blackhole", FormatBMP)
	sc.now = fixedClock
	want := filepath.Join("shots", "blackhole_2024-03-01_12-30-45.123.bmp")
	if got := sc.GenerateFilename(); got != want {
		t.Errorf("GenerateFilename() = %q, want %q", got, want)
	}
}

func TestCaptureFromPixelsFlips(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(filepath.Join(dir, "nested"), "frame", FormatPNG)
	sc.now = fixedClock

	// 1x2: bottom row red, top row blue
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	path, err := sc.CaptureFromPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels() = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top pixel = %v, want blue", got)
	}
	if got := color.RGBAModel.Convert(img.At(0, 1)).(color.RGBA); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom pixel = %v, want red", got)
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "frame", FormatPNG)
	if _, err := sc.CaptureFromPixels(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestCaptureBMP(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "frame", FormatBMP)
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{10, 20, 30, 255})

	path, err := sc.CaptureFromImage(img)
	if err != nil {
		t.Fatalf("CaptureFromImage() = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err := bmp.Decode(f)
	if err != nil {
		t.Fatalf("bmp decode: %v", err)
	}
	if b := got.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds = %v, want 4x3", b)
	}
	r, g, bl, _ := got.At(1, 1).RGBA()
	if r>>8 != 10 || g>>8 != 20 || bl>>8 != 30 {
		t.Errorf("pixel = (%d, %d, %d), want (10, 20, 30)", r>>8, g>>8, bl>>8)
	}
}

func TestDefaultFormatIsPNG(t *testing.T) {
	sc := NewScreenshotCapture("", "x", "")
	sc.now = fixedClock
	if got := sc.GenerateFilename(); filepath.Ext(got) != ".png" {
		t.Errorf("GenerateFilename() = %q, want .png", got)
	}
}
