package yuv

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/kevmo314/go-yuv/pkg/formats"
	"github.com/kevmo314/go-yuv/pkg/memory"
)

func TestReadFrame(t *testing.T) {
	raw := make([]byte, 5*3+3*2*2)
	for i := range raw {
		raw[i] = byte(i)
	}
	b, err := ReadFrame(bytes.NewReader(raw), formats.FormatI420, 5, 3)
	if err != nil {
		t.Fatalf("ReadFrame failed: %v", err)
	}
	defer b.Close()

	i420 := b.(*I420Buffer)
	if got := i420.PlaneY().Row(2, 5); !bytes.Equal(got, raw[10:15]) {
		t.Errorf("Y row 2 = %v, want %v", got, raw[10:15])
	}
	if got := i420.PlaneV().Row(1, 3); !bytes.Equal(got, raw[24:27]) {
		t.Errorf("V row 1 = %v, want %v", got, raw[24:27])
	}
}

func TestReadFrameShort(t *testing.T) {
	a := &countingAllocator{}
	useAllocator(t, a)
	_, err := ReadFrame(bytes.NewReader(make([]byte, 22)), formats.FormatNV12, 4, 4)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadFrame error = %v, want %v", err, io.ErrUnexpectedEOF)
	}
	if a.allocs != a.frees {
		t.Errorf("allocs = %d, frees = %d, want equal", a.allocs, a.frees)
	}
}

func TestReadFrameShortReportsReleaseError(t *testing.T) {
	a := &failingAllocator{}
	useAllocator(t, a)
	_, err := ReadFrame(bytes.NewReader(make([]byte, 3)), formats.FormatI400, 2, 2)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadFrame error = %v, want %v", err, io.ErrUnexpectedEOF)
	}
	if err == nil || !strings.Contains(err.Error(), "munmap") {
		t.Errorf("ReadFrame error = %v, want the release error too", err)
	}
	if a.frees != 1 {
		t.Errorf("frees = %d, want 1", a.frees)
	}
}

func TestWriteFrameDropsPadding(t *testing.T) {
	// 2x2 RGB24 with an 8 byte stride.
	mem := []byte{
		1, 2, 3, 4, 5, 6, 0, 0,
		7, 8, 9, 10, 11, 12, 0, 0,
	}
	p := mustWrapPlane(t, mem, 8)
	b, err := RGB24.WrapPlanes([]*Plane{p}, 2, 2)
	if err != nil {
		t.Fatalf("WrapPlanes failed: %v", err)
	}
	var out bytes.Buffer
	if err := WriteFrame(&out, b); err != nil {
		t.Fatalf("WriteFrame failed: %v", err)
	}
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	if !bytes.Equal(out.Bytes(), want) {
		t.Errorf("WriteFrame = %v, want %v", out.Bytes(), want)
	}

	back, err := ReadFrame(&out, formats.FormatRGB24, 2, 2)
	if err != nil {
		t.Fatalf("ReadFrame failed: %v", err)
	}
	defer back.Close()
	if got := back.Planes()[0].Bytes(); !bytes.Equal(got, want) {
		t.Errorf("round trip = %v, want %v", got, want)
	}

	b.Close()
	if err := WriteFrame(io.Discard, b); !errors.Is(err, ErrClosed) {
		t.Errorf("WriteFrame after Close = %v, want %v", err, ErrClosed)
	}
}

func mustWrapPlane(t *testing.T, mem []byte, stride int) *Plane {
	t.Helper()
	r, err := memory.Wrap(mem)
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewPlane(r, 0, len(mem), stride)
	if err != nil {
		t.Fatal(err)
	}
	return p
}
