package yuv

import (
	"fmt"
	"image"

	"github.com/kevmo314/go-yuv/pkg/formats"
	"github.com/kevmo314/go-yuv/pkg/memory"
)

// Option configures a buffer built by a Factory.
type Option func(*options)

type options struct {
	crop    *image.Rectangle
	release func()
}

// WithCrop sets the initial crop rectangle instead of the full image.
func WithCrop(r image.Rectangle) Option {
	return func(o *options) {
		o.crop = &r
	}
}

// WithRelease registers fn to run once when the buffer is closed. For wrapped
// memory this is how ownership is handed back to the caller.
func WithRelease(fn func()) Option {
	return func(o *options) {
		o.release = fn
	}
}

// Factory builds buffers of one format.
type Factory[B Buffer] struct {
	format formats.Format
	build  func(*buffer) B
}

func newFactory[B Buffer](f formats.Format, build func(*buffer) B) Factory[B] {
	return Factory[B]{format: f, build: build}
}

var (
	I400   = newFactory(formats.FormatI400, func(b *buffer) *I400Buffer { return &I400Buffer{luma{b}} })
	J400   = newFactory(formats.FormatJ400, func(b *buffer) *J400Buffer { return &J400Buffer{luma{b}} })
	I420   = newFactory(formats.FormatI420, func(b *buffer) *I420Buffer { return &I420Buffer{planar{b}} })
	J420   = newFactory(formats.FormatJ420, func(b *buffer) *J420Buffer { return &J420Buffer{planar{b}} })
	I422   = newFactory(formats.FormatI422, func(b *buffer) *I422Buffer { return &I422Buffer{planar{b}} })
	J422   = newFactory(formats.FormatJ422, func(b *buffer) *J422Buffer { return &J422Buffer{planar{b}} })
	I444   = newFactory(formats.FormatI444, func(b *buffer) *I444Buffer { return &I444Buffer{planar{b}} })
	J444   = newFactory(formats.FormatJ444, func(b *buffer) *J444Buffer { return &J444Buffer{planar{b}} })
	I420A  = newFactory(formats.FormatI420A, func(b *buffer) *I420ABuffer { return &I420ABuffer{planar{b}} })
	NV12   = newFactory(formats.FormatNV12, func(b *buffer) *NV12Buffer { return &NV12Buffer{semiPlanar{b}} })
	NV21   = newFactory(formats.FormatNV21, func(b *buffer) *NV21Buffer { return &NV21Buffer{semiPlanar{b}} })
	ARGB   = newFactory(formats.FormatARGB, func(b *buffer) *ARGBBuffer { return &ARGBBuffer{packed{b}} })
	ABGR   = newFactory(formats.FormatABGR, func(b *buffer) *ABGRBuffer { return &ABGRBuffer{packed{b}} })
	RGBA   = newFactory(formats.FormatRGBA, func(b *buffer) *RGBABuffer { return &RGBABuffer{packed{b}} })
	BGRA   = newFactory(formats.FormatBGRA, func(b *buffer) *BGRABuffer { return &BGRABuffer{packed{b}} })
	RGB24  = newFactory(formats.FormatRGB24, func(b *buffer) *RGB24Buffer { return &RGB24Buffer{packed{b}} })
	RAW    = newFactory(formats.FormatRAW, func(b *buffer) *RAWBuffer { return &RAWBuffer{packed{b}} })
	RGB565 = newFactory(formats.FormatRGB565, func(b *buffer) *RGB565Buffer { return &RGB565Buffer{packed{b}} })
	YUV24  = newFactory(formats.FormatYUV24, func(b *buffer) *YUV24Buffer { return &YUV24Buffer{packed{b}} })
)

var allocators = map[formats.Format]func(int, int, ...Option) (Buffer, error){
	formats.FormatI400:   allocator(I400),
	formats.FormatJ400:   allocator(J400),
	formats.FormatI420:   allocator(I420),
	formats.FormatJ420:   allocator(J420),
	formats.FormatI422:   allocator(I422),
	formats.FormatJ422:   allocator(J422),
	formats.FormatI444:   allocator(I444),
	formats.FormatJ444:   allocator(J444),
	formats.FormatI420A:  allocator(I420A),
	formats.FormatNV12:   allocator(NV12),
	formats.FormatNV21:   allocator(NV21),
	formats.FormatARGB:   allocator(ARGB),
	formats.FormatABGR:   allocator(ABGR),
	formats.FormatRGBA:   allocator(RGBA),
	formats.FormatBGRA:   allocator(BGRA),
	formats.FormatRGB24:  allocator(RGB24),
	formats.FormatRAW:    allocator(RAW),
	formats.FormatRGB565: allocator(RGB565),
	formats.FormatYUV24:  allocator(YUV24),
}

func allocator[B Buffer](f Factory[B]) func(int, int, ...Option) (Buffer, error) {
	return func(width, height int, opts ...Option) (Buffer, error) {
		b, err := f.Allocate(width, height, opts...)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
}

// Allocate allocates a buffer of a format chosen at run time. The result can
// be asserted to the format's concrete type, such as *NV12Buffer.
func Allocate(f formats.Format, width, height int, opts ...Option) (Buffer, error) {
	alloc, ok := allocators[f]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, f)
	}
	return alloc(width, height, opts...)
}

func (f Factory[B]) Format() formats.Format {
	return f.format
}

// Calculate returns the plane strides and capacities for width x height.
func (f Factory[B]) Calculate(width, height int) formats.Layout {
	return f.format.Layout(width, height)
}

// Allocate creates a buffer that owns a single freshly allocated region
// holding every plane. Closing the buffer frees the region.
func (f Factory[B]) Allocate(width, height int, opts ...Option) (B, error) {
	var zero B
	l, err := f.layout(width, height)
	if err != nil {
		return zero, err
	}
	r, err := memory.Allocate(l.Total())
	if err != nil {
		return zero, err
	}
	planes, err := slicePlanes(r, l)
	if err != nil {
		_ = r.Free()
		return zero, err
	}
	b, err := newBuffer(f.format, planes, width, height, applyOptions(opts), r.Free)
	if err != nil {
		_ = r.Free()
		return zero, err
	}
	return f.build(b), nil
}

// Wrap creates a buffer over caller memory without copying. The buffer does
// not own buf; closing it only runs a callback registered with WithRelease.
func (f Factory[B]) Wrap(buf []byte, width, height int, opts ...Option) (B, error) {
	r, err := memory.Wrap(buf)
	if err != nil {
		var zero B
		return zero, err
	}
	return f.WrapRegion(r, width, height, opts...)
}

// WrapRegion is like Wrap for an existing region. The planes start at offset
// zero of r. Ownership of r is not transferred.
func (f Factory[B]) WrapRegion(r *memory.Region, width, height int, opts ...Option) (B, error) {
	var zero B
	if r == nil {
		return zero, ErrNotAddressable
	}
	l, err := f.layout(width, height)
	if err != nil {
		return zero, err
	}
	planes, err := slicePlanes(r, l)
	if err != nil {
		return zero, err
	}
	b, err := newBuffer(f.format, planes, width, height, applyOptions(opts), nil)
	if err != nil {
		return zero, err
	}
	return f.build(b), nil
}

// WrapPlanes creates a buffer over existing planes, typically taken from
// another buffer. Each plane must hold at least stride x rows bytes for the
// format's geometry at width x height. The new buffer never frees the planes.
func (f Factory[B]) WrapPlanes(planes []*Plane, width, height int, opts ...Option) (B, error) {
	var zero B
	if width <= 0 || height <= 0 {
		return zero, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(planes) != f.format.NumPlanes() {
		return zero, fmt.Errorf("%w: %s needs %d, got %d", ErrPlaneCount, f.format, f.format.NumPlanes(), len(planes))
	}
	for i, p := range planes {
		if p == nil {
			return zero, fmt.Errorf("plane %d: %w", i, ErrNotAddressable)
		}
		g := f.format.Plane(i)
		if min := g.Columns(width) * g.BytesPerElement; p.RowStride() < min {
			return zero, fmt.Errorf("%w: plane %d stride %d below row size %d", ErrInvalidDimensions, i, p.RowStride(), min)
		}
		if need := p.RowStride() * g.Rows(height); p.Len() < need {
			return zero, fmt.Errorf("%w: plane %d has %d bytes, needs %d", ErrShortRegion, i, p.Len(), need)
		}
	}
	b, err := newBuffer(f.format, append([]*Plane(nil), planes...), width, height, applyOptions(opts), nil)
	if err != nil {
		return zero, err
	}
	return f.build(b), nil
}

func (f Factory[B]) layout(width, height int) (formats.Layout, error) {
	if width <= 0 || height <= 0 {
		return formats.Layout{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return f.format.Layout(width, height), nil
}

func slicePlanes(r *memory.Region, l formats.Layout) ([]*Plane, error) {
	spans, err := r.Slice(l.Capacities()...)
	if err != nil {
		return nil, fmt.Errorf("%s %dx%d: %w", l.Format, l.Width, l.Height, err)
	}
	planes := make([]*Plane, len(spans))
	for i, s := range spans {
		p, err := NewPlane(r, s.Offset, s.Length, l.Planes[i].Stride)
		if err != nil {
			return nil, err
		}
		planes[i] = p
	}
	return planes, nil
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
