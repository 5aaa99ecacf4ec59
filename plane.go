package yuv

import (
	"fmt"
	"image"

	"github.com/kevmo314/go-yuv/pkg/memory"
)

// Plane is a strided view of part of a region. Planes never own memory; the
// region they point into decides whether anything is released.
type Plane struct {
	region *memory.Region
	offset int
	length int
	stride int
}

// NewPlane returns a view of length bytes at offset within r.
func NewPlane(r *memory.Region, offset, length, stride int) (*Plane, error) {
	if r == nil {
		return nil, ErrNotAddressable
	}
	if offset < 0 || length < 0 || stride <= 0 {
		return nil, fmt.Errorf("%w: offset %d, length %d, stride %d", ErrInvalidDimensions, offset, length, stride)
	}
	if offset+length > r.Len() {
		return nil, fmt.Errorf("%w: plane ends at %d, region has %d bytes", ErrShortRegion, offset+length, r.Len())
	}
	return &Plane{region: r, offset: offset, length: length, stride: stride}, nil
}

func (p *Plane) Region() *memory.Region {
	return p.region
}

// RowStride is the distance in bytes between the starts of adjacent rows.
func (p *Plane) RowStride() int {
	return p.stride
}

// Offset is the position of the plane within its region.
func (p *Plane) Offset() int {
	return p.offset
}

func (p *Plane) Len() int {
	return p.length
}

// Bytes returns the plane memory. It returns nil once the backing region has
// been freed.
func (p *Plane) Bytes() []byte {
	b := p.region.Bytes()
	if b == nil {
		return nil
	}
	return b[p.offset : p.offset+p.length : p.offset+p.length]
}

// Rows returns the number of complete rows the plane holds.
func (p *Plane) Rows() int {
	return p.length / p.stride
}

// Row returns the first n bytes of row y.
func (p *Plane) Row(y, n int) []byte {
	b := p.Bytes()
	start := y * p.stride
	if b == nil || y < 0 || n < 0 || n > p.stride || start+n > len(b) {
		return nil
	}
	return b[start : start+n]
}

// SetValue fills r with v. The X coordinates of r are byte columns within a
// row, so for planes with multi-byte elements callers scale them accordingly.
func (p *Plane) SetValue(r image.Rectangle, v byte) error {
	if r.Empty() {
		return nil
	}
	if r.Min.X < 0 || r.Min.Y < 0 || r.Max.X > p.stride || (r.Max.Y-1)*p.stride+r.Max.X > p.length {
		return fmt.Errorf("%w: %v in plane of stride %d and %d bytes", ErrCropOutOfBounds, r, p.stride, p.length)
	}
	b := p.Bytes()
	if b == nil {
		return ErrClosed
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := b[y*p.stride+r.Min.X : y*p.stride+r.Max.X]
		for i := range row {
			row[i] = v
		}
	}
	return nil
}

func (p *Plane) String() string {
	return fmt.Sprintf("plane{offset: %d, length: %d, stride: %d}", p.offset, p.length, p.stride)
}
