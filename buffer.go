package yuv

import (
	"fmt"
	"image"
	"log/slog"
	"sync/atomic"

	"github.com/kevmo314/go-yuv/pkg/formats"
)

// Buffer is an image stored as one or more planes.
//
// Buffers carry no lock. Converting into or closing the same buffer from
// several goroutines at once must be synchronized by the caller.
type Buffer interface {
	Format() formats.Format
	Width() int
	Height() int
	// CropRect is the region operations apply to. It defaults to the full image.
	CropRect() image.Rectangle
	SetCropRect(r image.Rectangle) error
	Planes() []*Plane
	// Close runs the buffer's release action. Calls after the first return nil.
	Close() error
	Closed() bool
}

// LumaBuffer is implemented by buffers with a Y plane.
type LumaBuffer interface {
	Buffer
	PlaneY() *Plane
}

// PlanarBuffer is implemented by three-plane YUV buffers.
type PlanarBuffer interface {
	LumaBuffer
	PlaneU() *Plane
	PlaneV() *Plane
}

// SemiPlanarBuffer is implemented by buffers storing interleaved chroma in a
// second plane.
type SemiPlanarBuffer interface {
	LumaBuffer
	PlaneChroma() *Plane
}

// PackedBuffer is implemented by buffers interleaving every channel in a
// single plane.
type PackedBuffer interface {
	Buffer
	Plane() *Plane
}

type AlphaBuffer interface {
	Buffer
	PlaneA() *Plane
}

type buffer struct {
	format  formats.Format
	planes  []*Plane
	width   int
	height  int
	crop    image.Rectangle
	release func() error
	closed  atomic.Bool
}

func newBuffer(f formats.Format, planes []*Plane, width, height int, o options, release func() error) (*buffer, error) {
	b := &buffer{
		format:  f,
		planes:  planes,
		width:   width,
		height:  height,
		crop:    image.Rect(0, 0, width, height),
		release: release,
	}
	if o.release != nil {
		inner := b.release
		b.release = func() error {
			var err error
			if inner != nil {
				err = inner()
			}
			o.release()
			return err
		}
	}
	if o.crop != nil {
		if err := b.SetCropRect(*o.crop); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *buffer) Format() formats.Format {
	return b.format
}

func (b *buffer) Width() int {
	return b.width
}

func (b *buffer) Height() int {
	return b.height
}

func (b *buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

func (b *buffer) CropRect() image.Rectangle {
	return b.crop
}

// SetCropRect restricts operations to r, which must be non-empty and lie
// within the buffer.
func (b *buffer) SetCropRect(r image.Rectangle) error {
	if r.Empty() || !r.In(b.Bounds()) {
		return fmt.Errorf("%w: %v not within %v", ErrCropOutOfBounds, r, b.Bounds())
	}
	b.crop = r
	return nil
}

// ResetCropRect restores the crop rectangle to the full image.
func (b *buffer) ResetCropRect() {
	b.crop = b.Bounds()
}

func (b *buffer) Planes() []*Plane {
	return append([]*Plane(nil), b.planes...)
}

// Layout returns the layout the format prescribes for the buffer's size.
// Wrapped planes may use larger strides than this.
func (b *buffer) Layout() formats.Layout {
	return b.format.Layout(b.width, b.height)
}

func (b *buffer) Closed() bool {
	return b.closed.Load()
}

func (b *buffer) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}
	if b.release == nil {
		return nil
	}
	if err := b.release(); err != nil {
		Logger().Warn("yuv: release failed", slog.String("format", b.format.String()), slog.Any("err", err))
		return err
	}
	return nil
}

func (b *buffer) ConvertTo(dst Buffer) error {
	return Convert(b, dst)
}

func (b *buffer) MirrorTo(dst Buffer) error {
	return Mirror(b, dst)
}

func (b *buffer) RotateTo(dst Buffer, mode RotateMode) error {
	return Rotate(b, dst, mode)
}

func (b *buffer) ScaleTo(dst Buffer, filter FilterMode) error {
	return Scale(b, dst, filter)
}

func (b *buffer) String() string {
	return fmt.Sprintf("%s %dx%d crop %v", b.format, b.width, b.height, b.crop)
}
