package yuv

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestAsImagePacked(t *testing.T) {
	b := mustWrap(t, ARGB, 2, 2)
	copy(b.Plane().Bytes()[4:8], []byte{0x10, 0x20, 0x30, 0x40})

	img, err := AsImage(b)
	if err != nil {
		t.Fatalf("AsImage failed: %v", err)
	}
	if got, want := img.At(1, 0), (color.NRGBA{R: 0x30, G: 0x20, B: 0x10, A: 0x40}); got != want {
		t.Errorf("At(1, 0) = %v, want %v", got, want)
	}
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
}

func TestAsImageOpaque(t *testing.T) {
	b := mustWrap(t, RAW, 1, 1)
	copy(b.Plane().Bytes(), []byte{1, 2, 3})
	img, err := AsImage(b)
	if err != nil {
		t.Fatalf("AsImage failed: %v", err)
	}
	if got, want := img.At(0, 0), (color.NRGBA{R: 1, G: 2, B: 3, A: 0xff}); got != want {
		t.Errorf("At(0, 0) = %v, want %v", got, want)
	}
}

func TestAsImageCrop(t *testing.T) {
	b := mustWrap(t, I400, 4, 4, WithCrop(image.Rect(1, 2, 3, 4)))
	b.PlaneY().Bytes()[2*4+1] = 0x99

	img, err := AsImage(b)
	if err != nil {
		t.Fatalf("AsImage failed: %v", err)
	}
	if img.Bounds() != image.Rect(1, 2, 3, 4) {
		t.Errorf("Bounds() = %v, want %v", img.Bounds(), image.Rect(1, 2, 3, 4))
	}
	if got := img.(*image.Gray).GrayAt(1, 2).Y; got != 0x99 {
		t.Errorf("GrayAt(1, 2) = %#x, want 0x99", got)
	}
}

func TestAsImageYCbCr(t *testing.T) {
	b := mustWrap(t, I422, 4, 2)
	img, err := AsImage(b)
	if err != nil {
		t.Fatalf("AsImage failed: %v", err)
	}
	y, ok := img.(*image.YCbCr)
	if !ok {
		t.Fatalf("AsImage returned %T, want *image.YCbCr", img)
	}
	if y.SubsampleRatio != image.YCbCrSubsampleRatio422 {
		t.Errorf("SubsampleRatio = %v, want 4:2:2", y.SubsampleRatio)
	}
	if y.CStride != 2 {
		t.Errorf("CStride = %d, want 2", y.CStride)
	}

	a := mustWrap(t, I420A, 2, 2)
	if img, err := AsImage(a); err != nil {
		t.Errorf("AsImage(I420A) failed: %v", err)
	} else if _, ok := img.(*image.NYCbCrA); !ok {
		t.Errorf("AsImage(I420A) returned %T, want *image.NYCbCrA", img)
	}
}

func TestAsImageUnsupported(t *testing.T) {
	if _, err := AsImage(mustWrap(t, NV12, 2, 2)); !errors.Is(err, ErrUnsupported) {
		t.Errorf("AsImage(NV12) = %v, want %v", err, ErrUnsupported)
	}
	b, err := ABGR.Allocate(2, 2)
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	b.Close()
	if _, err := AsImage(b); !errors.Is(err, ErrClosed) {
		t.Errorf("AsImage(closed) = %v, want %v", err, ErrClosed)
	}
}
