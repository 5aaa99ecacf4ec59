package soft

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/kevmo314/go-yuv/pkg/engine"
	"github.com/kevmo314/go-yuv/pkg/formats"
)

// rgbLayout gives the byte index of each channel within a packed pixel.
// A negative alpha index means the format stores no alpha.
type rgbLayout struct {
	bpp        int
	r, g, b, a int
	rgb565     bool
}

var rgbLayouts = map[formats.Format]rgbLayout{
	formats.FormatARGB:   {bpp: 4, r: 2, g: 1, b: 0, a: 3},
	formats.FormatABGR:   {bpp: 4, r: 0, g: 1, b: 2, a: 3},
	formats.FormatRGBA:   {bpp: 4, r: 3, g: 2, b: 1, a: 0},
	formats.FormatBGRA:   {bpp: 4, r: 1, g: 2, b: 3, a: 0},
	formats.FormatRGB24:  {bpp: 3, r: 2, g: 1, b: 0, a: -1},
	formats.FormatRAW:    {bpp: 3, r: 0, g: 1, b: 2, a: -1},
	formats.FormatRGB565: {bpp: 2, a: -1, rgb565: true},
}

func (l rgbLayout) get(p []byte) (r, g, b, a uint8) {
	if l.rgb565 {
		v := uint16(p[0]) | uint16(p[1])<<8
		r5, g6, b5 := uint8(v>>11), uint8(v>>5)&0x3f, uint8(v)&0x1f
		return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2, 0xff
	}
	a = 0xff
	if l.a >= 0 {
		a = p[l.a]
	}
	return p[l.r], p[l.g], p[l.b], a
}

func (l rgbLayout) set(p []byte, r, g, b, a uint8) {
	if l.rgb565 {
		v := uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
		p[0], p[1] = byte(v), byte(v>>8)
		return
	}
	p[l.r], p[l.g], p[l.b] = r, g, b
	if l.a >= 0 {
		p[l.a] = a
	}
}

type chromaKind uint8

const (
	chromaNone chromaKind = iota
	chromaPlanar
	chromaInterleaved
	chromaPacked
)

// yuvLayout locates the Y, U, V and alpha samples of a YUV format.
type yuvLayout struct {
	kind   chromaKind
	sx, sy uint
	vFirst bool
	alpha  bool
	full   bool
}

var yuvLayouts = map[formats.Format]yuvLayout{
	formats.FormatI400:  {kind: chromaNone},
	formats.FormatJ400:  {kind: chromaNone, full: true},
	formats.FormatI420:  {kind: chromaPlanar, sx: 1, sy: 1},
	formats.FormatJ420:  {kind: chromaPlanar, sx: 1, sy: 1, full: true},
	formats.FormatI422:  {kind: chromaPlanar, sx: 1},
	formats.FormatJ422:  {kind: chromaPlanar, sx: 1, full: true},
	formats.FormatI444:  {kind: chromaPlanar},
	formats.FormatJ444:  {kind: chromaPlanar, full: true},
	formats.FormatI420A: {kind: chromaPlanar, sx: 1, sy: 1, alpha: true},
	formats.FormatNV12:  {kind: chromaInterleaved, sx: 1, sy: 1},
	formats.FormatNV21:  {kind: chromaInterleaved, sx: 1, sy: 1, vFirst: true},
	formats.FormatYUV24: {kind: chromaPacked},
}

func at(a engine.PlaneArg, x, y, bpe int) int {
	return a.Offset + y*a.Stride + x*bpe
}

func (l yuvLayout) y(p []engine.PlaneArg, x, y int) byte {
	if l.kind == chromaPacked {
		return p[0].Data[at(p[0], x, y, 3)+2]
	}
	return p[0].Data[at(p[0], x, y, 1)]
}

func (l yuvLayout) setY(p []engine.PlaneArg, x, y int, v byte) {
	if l.kind == chromaPacked {
		p[0].Data[at(p[0], x, y, 3)+2] = v
		return
	}
	p[0].Data[at(p[0], x, y, 1)] = v
}

// uv returns the chroma of luma position (x, y).
func (l yuvLayout) uv(p []engine.PlaneArg, x, y int) (u, v byte) {
	cx, cy := x>>l.sx, y>>l.sy
	switch l.kind {
	case chromaPlanar:
		return p[1].Data[at(p[1], cx, cy, 1)], p[2].Data[at(p[2], cx, cy, 1)]
	case chromaInterleaved:
		i := at(p[1], cx, cy, 2)
		if l.vFirst {
			return p[1].Data[i+1], p[1].Data[i]
		}
		return p[1].Data[i], p[1].Data[i+1]
	case chromaPacked:
		i := at(p[0], x, y, 3)
		return p[0].Data[i+1], p[0].Data[i]
	}
	return 0x80, 0x80
}

// setUV writes the chroma of chroma cell (cx, cy).
func (l yuvLayout) setUV(p []engine.PlaneArg, cx, cy int, u, v byte) {
	switch l.kind {
	case chromaPlanar:
		p[1].Data[at(p[1], cx, cy, 1)] = u
		p[2].Data[at(p[2], cx, cy, 1)] = v
	case chromaInterleaved:
		i := at(p[1], cx, cy, 2)
		if l.vFirst {
			u, v = v, u
		}
		p[1].Data[i], p[1].Data[i+1] = u, v
	case chromaPacked:
		i := at(p[0], cx, cy, 3)
		p[0].Data[i], p[0].Data[i+1] = v, u
	}
}

func (l yuvLayout) a(p []engine.PlaneArg, x, y int) byte {
	if !l.alpha {
		return 0xff
	}
	return p[3].Data[at(p[3], x, y, 1)]
}

func (l yuvLayout) setA(p []engine.PlaneArg, x, y int, v byte) {
	if l.alpha {
		p[3].Data[at(p[3], x, y, 1)] = v
	}
}

func (l yuvLayout) chromaSize(w, h int) (int, int) {
	if l.kind == chromaNone {
		return 0, 0
	}
	return (w + 1<<l.sx - 1) >> l.sx, (h + 1<<l.sy - 1) >> l.sy
}

// ratio returns the image.YCbCr subsample ratio for planar layouts.
func (l yuvLayout) ratio() (image.YCbCrSubsampleRatio, bool) {
	if l.kind != chromaPlanar {
		return 0, false
	}
	switch {
	case l.sx == 1 && l.sy == 1:
		return image.YCbCrSubsampleRatio420, true
	case l.sx == 1 && l.sy == 0:
		return image.YCbCrSubsampleRatio422, true
	case l.sx == 0 && l.sy == 0:
		return image.YCbCrSubsampleRatio444, true
	}
	return 0, false
}

func reorder(src, dst rgbLayout) engine.Func {
	return func(c *engine.Call) {
		for y := 0; y < c.Height; y++ {
			s, d := row(c.Src[0], y, c.Width*src.bpp), row(c.Dst[0], y, c.Width*dst.bpp)
			for x := 0; x < c.Width; x++ {
				r, g, b, a := src.get(s[x*src.bpp:])
				dst.set(d[x*dst.bpp:], r, g, b, a)
			}
		}
	}
}

// yuvToRGB draws planar sources through image.YCbCr and samples every other
// layout pixel by pixel.
func yuvToRGB(src yuvLayout, dst rgbLayout) engine.Func {
	return func(c *engine.Call) {
		if img, ok := ycbcrView(src, c); ok {
			rgba := image.NewRGBA(img.Rect)
			draw.Draw(rgba, rgba.Rect, img, image.Point{}, draw.Src)
			for y := 0; y < c.Height; y++ {
				d := row(c.Dst[0], y, c.Width*dst.bpp)
				p := rgba.Pix[y*rgba.Stride:]
				for x := 0; x < c.Width; x++ {
					dst.set(d[x*dst.bpp:], p[x*4], p[x*4+1], p[x*4+2], src.a(c.Src, x, y))
				}
			}
			return
		}
		for y := 0; y < c.Height; y++ {
			d := row(c.Dst[0], y, c.Width*dst.bpp)
			for x := 0; x < c.Width; x++ {
				u, v := src.uv(c.Src, x, y)
				r, g, b := color.YCbCrToRGB(src.y(c.Src, x, y), u, v)
				dst.set(d[x*dst.bpp:], r, g, b, src.a(c.Src, x, y))
			}
		}
	}
}

func ycbcrView(l yuvLayout, c *engine.Call) (*image.YCbCr, bool) {
	ratio, ok := l.ratio()
	if !ok || c.Src[1].Stride != c.Src[2].Stride {
		return nil, false
	}
	y, u, v := c.Src[0], c.Src[1], c.Src[2]
	return &image.YCbCr{
		Y:              y.Data[y.Offset:],
		Cb:             u.Data[u.Offset:],
		Cr:             v.Data[v.Offset:],
		YStride:        y.Stride,
		CStride:        u.Stride,
		SubsampleRatio: ratio,
		Rect:           image.Rect(0, 0, c.Width, c.Height),
	}, true
}

// rgbToYUV writes luma per pixel and averages chroma over each subsampled
// cell.
func rgbToYUV(src rgbLayout, dst yuvLayout) engine.Func {
	return func(c *engine.Call) {
		cw, ch := dst.chromaSize(c.Width, c.Height)
		sums := make([]int, cw*ch*3)
		for y := 0; y < c.Height; y++ {
			s := row(c.Src[0], y, c.Width*src.bpp)
			for x := 0; x < c.Width; x++ {
				r, g, b, a := src.get(s[x*src.bpp:])
				yy, cb, cr := color.RGBToYCbCr(r, g, b)
				dst.setY(c.Dst, x, y, yy)
				dst.setA(c.Dst, x, y, a)
				if cw > 0 {
					i := ((y>>dst.sy)*cw + x>>dst.sx) * 3
					sums[i] += int(cb)
					sums[i+1] += int(cr)
					sums[i+2]++
				}
			}
		}
		for cy := 0; cy < ch; cy++ {
			for cx := 0; cx < cw; cx++ {
				i := (cy*cw + cx) * 3
				n := sums[i+2]
				dst.setUV(c.Dst, cx, cy, byte((sums[i]+n/2)/n), byte((sums[i+1]+n/2)/n))
			}
		}
	}
}

// yuvToYUV copies luma and takes each destination chroma cell from the
// source chroma covering the cell's top left pixel.
func yuvToYUV(src, dst yuvLayout) engine.Func {
	return func(c *engine.Call) {
		for y := 0; y < c.Height; y++ {
			for x := 0; x < c.Width; x++ {
				dst.setY(c.Dst, x, y, src.y(c.Src, x, y))
				dst.setA(c.Dst, x, y, src.a(c.Src, x, y))
			}
		}
		cw, ch := dst.chromaSize(c.Width, c.Height)
		for cy := 0; cy < ch; cy++ {
			for cx := 0; cx < cw; cx++ {
				u, v := src.uv(c.Src, cx<<dst.sx, cy<<dst.sy)
				dst.setUV(c.Dst, cx, cy, u, v)
			}
		}
	}
}

// rotateYUV rotates luma pixel by pixel and moves each chroma cell to its
// rotated cell in the destination layout.
func rotateYUV(src, dst yuvLayout) engine.Func {
	return func(c *engine.Call) {
		mode := engine.RotateMode(c.Mode)
		for y := 0; y < c.Height; y++ {
			for x := 0; x < c.Width; x++ {
				dx, dy := rotatePoint(mode, x, y, c.Width, c.Height)
				dst.setY(c.Dst, dx, dy, src.y(c.Src, x, y))
			}
		}
		cw, ch := src.chromaSize(c.Width, c.Height)
		for cy := 0; cy < ch; cy++ {
			for cx := 0; cx < cw; cx++ {
				u, v := src.uv(c.Src, cx<<src.sx, cy<<src.sy)
				dx, dy := rotatePoint(mode, cx, cy, cw, ch)
				dst.setUV(c.Dst, dx, dy, u, v)
			}
		}
	}
}
