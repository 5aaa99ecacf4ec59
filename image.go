package yuv

import (
	"fmt"
	"image"
	"image/color"

	"github.com/kevmo314/go-yuv/pkg/formats"
)

// PackedImage is an image.Image over interleaved 24 or 32-bit pixels in any
// channel order. Pixels without an alpha channel are opaque.
type PackedImage struct {
	// Pix holds the image's pixels. The pixel at (x, y) starts at
	// Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*BytesPerPixel].
	Pix []uint8
	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect          image.Rectangle
	BytesPerPixel int
	// R, G, B and A are channel indices within a pixel. A is -1 when the
	// format has no alpha.
	R, G, B, A int
}

var _ image.Image = &PackedImage{}

var packedChannels = map[formats.Format][4]int{
	formats.FormatARGB:  {2, 1, 0, 3},
	formats.FormatABGR:  {0, 1, 2, 3},
	formats.FormatRGBA:  {3, 2, 1, 0},
	formats.FormatBGRA:  {1, 2, 3, 0},
	formats.FormatRGB24: {2, 1, 0, -1},
	formats.FormatRAW:   {0, 1, 2, -1},
}

func (p *PackedImage) ColorModel() color.Model { return color.NRGBAModel }

func (p *PackedImage) Bounds() image.Rectangle { return p.Rect }

func (p *PackedImage) At(x, y int) color.Color {
	return p.NRGBAAt(x, y)
}

func (p *PackedImage) NRGBAAt(x, y int) color.NRGBA {
	if !(image.Point{x, y}.In(p.Rect)) {
		return color.NRGBA{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+p.BytesPerPixel : i+p.BytesPerPixel]
	c := color.NRGBA{s[p.R], s[p.G], s[p.B], 0xff}
	if p.A >= 0 {
		c.A = s[p.A]
	}
	return c
}

// PixOffset returns the index of the first element of Pix that corresponds to
// the pixel at (x, y).
func (p *PackedImage) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*p.BytesPerPixel
}

// SubImage returns an image representing the portion of the image p visible
// through r. The returned value shares pixels with the original image.
func (p *PackedImage) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return &PackedImage{BytesPerPixel: p.BytesPerPixel, R: p.R, G: p.G, B: p.B, A: p.A}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &PackedImage{
		Pix:           p.Pix[i:],
		Stride:        p.Stride,
		Rect:          r,
		BytesPerPixel: p.BytesPerPixel,
		R:             p.R,
		G:             p.G,
		B:             p.B,
		A:             p.A,
	}
}

// AsImage returns a view of the crop rectangle of b that shares its memory.
// Grey buffers become *image.Gray, planar YUV becomes *image.YCbCr (or
// *image.NYCbCrA for I420A) and 24/32-bit RGB becomes *PackedImage. Other
// formats return ErrUnsupported.
func AsImage(b Buffer) (image.Image, error) {
	if b.Closed() {
		return nil, ErrClosed
	}
	planes := b.Planes()
	for _, p := range planes {
		if p.Bytes() == nil {
			return nil, ErrClosed
		}
	}
	rect := image.Rect(0, 0, b.Width(), b.Height())
	f := b.Format()
	var img interface {
		image.Image
		SubImage(image.Rectangle) image.Image
	}
	switch f {
	case formats.FormatI400, formats.FormatJ400:
		img = &image.Gray{Pix: planes[0].Bytes(), Stride: planes[0].RowStride(), Rect: rect}
	case formats.FormatI420, formats.FormatJ420, formats.FormatI422, formats.FormatJ422, formats.FormatI444, formats.FormatJ444:
		y, err := ycbcr(f, planes, rect)
		if err != nil {
			return nil, err
		}
		img = y
	case formats.FormatI420A:
		y, err := ycbcr(f, planes, rect)
		if err != nil {
			return nil, err
		}
		img = &image.NYCbCrA{YCbCr: *y, A: planes[3].Bytes(), AStride: planes[3].RowStride()}
	default:
		ch, ok := packedChannels[f]
		if !ok {
			return nil, fmt.Errorf("%w: no image view for %s", ErrUnsupported, f)
		}
		img = &PackedImage{
			Pix:           planes[0].Bytes(),
			Stride:        planes[0].RowStride(),
			Rect:          rect,
			BytesPerPixel: f.BytesPerPixel(),
			R:             ch[0],
			G:             ch[1],
			B:             ch[2],
			A:             ch[3],
		}
	}
	if crop := b.CropRect(); crop != rect {
		return img.SubImage(crop), nil
	}
	return img, nil
}

func ycbcr(f formats.Format, planes []*Plane, rect image.Rectangle) (*image.YCbCr, error) {
	if planes[1].RowStride() != planes[2].RowStride() {
		return nil, fmt.Errorf("%w: chroma strides %d and %d differ", ErrUnsupported, planes[1].RowStride(), planes[2].RowStride())
	}
	ratio := image.YCbCrSubsampleRatio444
	switch g := f.Plane(1); {
	case g.ShiftX == 1 && g.ShiftY == 1:
		ratio = image.YCbCrSubsampleRatio420
	case g.ShiftX == 1:
		ratio = image.YCbCrSubsampleRatio422
	}
	return &image.YCbCr{
		Y:              planes[0].Bytes(),
		Cb:             planes[1].Bytes(),
		Cr:             planes[2].Bytes(),
		YStride:        planes[0].RowStride(),
		CStride:        planes[1].RowStride(),
		SubsampleRatio: ratio,
		Rect:           rect,
	}, nil
}
