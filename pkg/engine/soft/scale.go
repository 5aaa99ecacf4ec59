package soft

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/kevmo314/go-yuv/pkg/engine"
	"github.com/kevmo314/go-yuv/pkg/formats"
)

// boxKernel averages every source sample under the destination pixel.
var boxKernel = &draw.Kernel{Support: 1, At: func(t float64) float64 {
	if t <= 0.5 {
		return 1
	}
	return 0
}}

func scaler(f engine.FilterMode) draw.Scaler {
	switch f {
	case engine.FilterLinear:
		return draw.ApproxBiLinear
	case engine.FilterBilinear:
		return draw.BiLinear
	case engine.FilterBox:
		return boxKernel
	default:
		return draw.NearestNeighbor
	}
}

// scalePlanes resamples each plane channel by channel. RGB565 packs its
// channels into bits, so it is always scaled with nearest neighbor.
func scalePlanes(c *engine.Call) {
	s := scaler(engine.FilterMode(c.Mode))
	if c.Key.Src == formats.FormatRGB565 {
		s = draw.NearestNeighbor
	}
	for i := range c.Src {
		geo := c.Key.Src.Plane(i)
		sw, sh := geo.Columns(c.SrcWidth), geo.Rows(c.SrcHeight)
		dw, dh := geo.Columns(c.DstWidth), geo.Rows(c.DstHeight)
		if geo.BytesPerElement == 1 {
			dst := grayView(c.Dst[i], dw, dh)
			s.Scale(dst, dst.Rect, grayView(c.Src[i], sw, sh), image.Rect(0, 0, sw, sh), draw.Src, nil)
			continue
		}
		for ch := 0; ch < geo.BytesPerElement; ch++ {
			src := extract(c.Src[i], sw, sh, geo.BytesPerElement, ch)
			dst := image.NewGray(image.Rect(0, 0, dw, dh))
			s.Scale(dst, dst.Rect, src, src.Rect, draw.Src, nil)
			insert(c.Dst[i], dst, geo.BytesPerElement, ch)
		}
	}
}

// grayView aliases w x h one-byte samples of a plane as an image.
func grayView(a engine.PlaneArg, w, h int) *image.Gray {
	return &image.Gray{Pix: a.Data[a.Offset:], Stride: a.Stride, Rect: image.Rect(0, 0, w, h)}
}

func extract(a engine.PlaneArg, w, h, bpe, ch int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		r := row(a, y, w*bpe)
		out := img.Pix[y*img.Stride : y*img.Stride+w]
		for x := range out {
			out[x] = r[x*bpe+ch]
		}
	}
	return img
}

func insert(a engine.PlaneArg, img *image.Gray, bpe, ch int) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for y := 0; y < h; y++ {
		r := row(a, y, w*bpe)
		in := img.Pix[y*img.Stride : y*img.Stride+w]
		for x, v := range in {
			r[x*bpe+ch] = v
		}
	}
}
