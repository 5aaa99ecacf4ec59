// Package soft is a portable engine written in Go. It covers every
// same-format copy, mirror, rotate and scale plus conversions between the YUV
// and RGB families, trading speed for having no native dependencies.
//
// YUV samples are interpreted with the JFIF equations from image/color for
// both the limited (I) and full (J) range formats. Source and destination
// memory must not overlap.
package soft

import (
	"github.com/kevmo314/go-yuv/pkg/engine"
	"github.com/kevmo314/go-yuv/pkg/formats"
)

// New returns a table holding every entry point of the engine.
func New() engine.Table {
	t := engine.Table{}
	for _, f := range formats.All() {
		t[engine.Key{Op: engine.OpConvert, Src: f, Dst: f}] = copyPlanes
		t[engine.Key{Op: engine.OpMirror, Src: f, Dst: f}] = mirrorPlanes
		t[engine.Key{Op: engine.OpScale, Src: f, Dst: f}] = scalePlanes
		if squareSubsampling(f) {
			t[engine.Key{Op: engine.OpRotate, Src: f, Dst: f}] = rotatePlanes
		}
	}
	for src, sl := range rgbLayouts {
		for dst, dl := range rgbLayouts {
			if src != dst {
				t[engine.Key{Op: engine.OpConvert, Src: src, Dst: dst}] = reorder(sl, dl)
			}
		}
		for dst, dl := range yuvLayouts {
			t[engine.Key{Op: engine.OpConvert, Src: src, Dst: dst}] = rgbToYUV(sl, dl)
		}
	}
	for src, sl := range yuvLayouts {
		for dst, dl := range rgbLayouts {
			t[engine.Key{Op: engine.OpConvert, Src: src, Dst: dst}] = yuvToRGB(sl, dl)
		}
		for dst, dl := range yuvLayouts {
			if src != dst && sl.full == dl.full {
				t[engine.Key{Op: engine.OpConvert, Src: src, Dst: dst}] = yuvToYUV(sl, dl)
			}
		}
	}
	for _, src := range rotate420 {
		for _, dst := range rotate420 {
			if src != dst {
				t[engine.Key{Op: engine.OpRotate, Src: src, Dst: dst}] = rotateYUV(yuvLayouts[src], yuvLayouts[dst])
			}
		}
	}
	return t
}

// rotate420 lists the 4:2:0 formats that rotate into each other while
// (de)interleaving chroma.
var rotate420 = []formats.Format{formats.FormatI420, formats.FormatNV12, formats.FormatNV21}

// squareSubsampling reports whether every plane is subsampled equally in
// both directions, which is what rotating by 90 degrees needs.
func squareSubsampling(f formats.Format) bool {
	for _, g := range f.Planes() {
		if g.ShiftX != g.ShiftY {
			return false
		}
	}
	return true
}

func row(a engine.PlaneArg, y, n int) []byte {
	s := a.Offset + y*a.Stride
	return a.Data[s : s+n]
}

func copyPlanes(c *engine.Call) {
	for i, src := range c.Src {
		geo := c.Key.Src.Plane(i)
		n := geo.Columns(c.Width) * geo.BytesPerElement
		for y := 0; y < geo.Rows(c.Height); y++ {
			copy(row(c.Dst[i], y, n), row(src, y, n))
		}
	}
}

func mirrorPlanes(c *engine.Call) {
	for i := range c.Src {
		geo := c.Key.Src.Plane(i)
		cols, bpe := geo.Columns(c.Width), geo.BytesPerElement
		for y := 0; y < geo.Rows(c.Height); y++ {
			s, d := row(c.Src[i], y, cols*bpe), row(c.Dst[i], y, cols*bpe)
			for x := 0; x < cols; x++ {
				copy(d[(cols-1-x)*bpe:(cols-x)*bpe], s[x*bpe:(x+1)*bpe])
			}
		}
	}
}

// rotatePoint maps (x, y) of a cols x rows grid to its position after a
// clockwise rotation: (rows-1-y, x) for 90 degrees and (y, cols-1-x) for 270.
func rotatePoint(mode engine.RotateMode, x, y, cols, rows int) (int, int) {
	switch mode {
	case engine.Rotate90:
		return rows - 1 - y, x
	case engine.Rotate180:
		return cols - 1 - x, rows - 1 - y
	case engine.Rotate270:
		return y, cols - 1 - x
	}
	return x, y
}

func rotatePlanes(c *engine.Call) {
	mode := engine.RotateMode(c.Mode)
	for i := range c.Src {
		geo := c.Key.Src.Plane(i)
		cols, rows, bpe := geo.Columns(c.Width), geo.Rows(c.Height), geo.BytesPerElement
		src, dst := c.Src[i], c.Dst[i]
		for y := 0; y < rows; y++ {
			s := row(src, y, cols*bpe)
			for x := 0; x < cols; x++ {
				dx, dy := rotatePoint(mode, x, y, cols, rows)
				o := dst.Offset + dy*dst.Stride + dx*bpe
				copy(dst.Data[o:o+bpe], s[x*bpe:(x+1)*bpe])
			}
		}
	}
}
