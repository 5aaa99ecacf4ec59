//go:build cgo && libyuv

package libyuv

/*
#include <stdint.h>
#include <libyuv.h>
*/
import "C"
import (
	"github.com/kevmo314/go-yuv/pkg/engine"
	"github.com/kevmo314/go-yuv/pkg/formats"
)

var argbFamily = []formats.Format{formats.FormatARGB, formats.FormatABGR, formats.FormatRGBA, formats.FormatBGRA}

// addGeometry registers mirror, rotate and scale. 32-bit formats share the
// ARGB kernels since those only move whole pixels.
func addGeometry(t engine.Table) {
	add := func(op engine.Op, f formats.Format, fn engine.Func) {
		t[engine.Key{Op: op, Src: f, Dst: f}] = fn
	}
	for _, f := range []formats.Format{formats.FormatI420, formats.FormatJ420} {
		add(engine.OpMirror, f, mirrorI420)
		add(engine.OpRotate, f, rotateI420)
		add(engine.OpScale, f, scaleI420)
	}
	for _, f := range []formats.Format{formats.FormatI444, formats.FormatJ444} {
		add(engine.OpRotate, f, rotateI444)
		add(engine.OpScale, f, scaleI444)
	}
	for _, f := range []formats.Format{formats.FormatI400, formats.FormatJ400} {
		add(engine.OpMirror, f, mirrorI400)
		add(engine.OpRotate, f, rotatePlane)
		add(engine.OpScale, f, scalePlane)
	}
	for _, f := range argbFamily {
		add(engine.OpMirror, f, mirrorARGB)
		add(engine.OpRotate, f, rotateARGB)
		add(engine.OpScale, f, scaleARGB)
	}
	// The NV12 kernels move chroma pairs whole, so they serve NV21 too.
	for _, f := range []formats.Format{formats.FormatNV12, formats.FormatNV21} {
		add(engine.OpMirror, f, mirrorNV12)
		add(engine.OpScale, f, scaleNV12)
	}
	t[engine.Key{Op: engine.OpRotate, Src: formats.FormatNV12, Dst: formats.FormatI420}] = rotateNV12ToI420(false)
	t[engine.Key{Op: engine.OpRotate, Src: formats.FormatNV21, Dst: formats.FormatI420}] = rotateNV12ToI420(true)
}

func mirrorNV12(c *engine.Call) {
	s, d := c.Src, c.Dst
	C.NV12Mirror(ptr(s[0]), stride(s[0]), ptr(s[1]), stride(s[1]),
		ptr(d[0]), stride(d[0]), ptr(d[1]), stride(d[1]),
		C.int(c.Width), C.int(c.Height))
}

// rotateNV12ToI420 swaps the destination chroma planes for NV21 sources.
func rotateNV12ToI420(swap bool) engine.Func {
	return func(c *engine.Call) {
		s, d := c.Src, c.Dst
		u, v := d[1], d[2]
		if swap {
			u, v = v, u
		}
		C.NV12ToI420Rotate(ptr(s[0]), stride(s[0]), ptr(s[1]), stride(s[1]),
			ptr(d[0]), stride(d[0]), ptr(u), stride(u), ptr(v), stride(v),
			C.int(c.Width), C.int(c.Height), C.enum_RotationMode(c.Mode))
	}
}

func scaleNV12(c *engine.Call) {
	s, d := c.Src, c.Dst
	C.NV12Scale(ptr(s[0]), stride(s[0]), ptr(s[1]), stride(s[1]),
		C.int(c.SrcWidth), C.int(c.SrcHeight),
		ptr(d[0]), stride(d[0]), ptr(d[1]), stride(d[1]),
		C.int(c.DstWidth), C.int(c.DstHeight), C.enum_FilterMode(c.Mode))
}

func mirrorI420(c *engine.Call) {
	s, d := c.Src, c.Dst
	C.I420Mirror(ptr(s[0]), stride(s[0]), ptr(s[1]), stride(s[1]), ptr(s[2]), stride(s[2]),
		ptr(d[0]), stride(d[0]), ptr(d[1]), stride(d[1]), ptr(d[2]), stride(d[2]),
		C.int(c.Width), C.int(c.Height))
}

func mirrorI400(c *engine.Call) {
	s, d := c.Src[0], c.Dst[0]
	C.I400Mirror(ptr(s), stride(s), ptr(d), stride(d), C.int(c.Width), C.int(c.Height))
}

func mirrorARGB(c *engine.Call) {
	s, d := c.Src[0], c.Dst[0]
	C.ARGBMirror(ptr(s), stride(s), ptr(d), stride(d), C.int(c.Width), C.int(c.Height))
}

func rotateI420(c *engine.Call) {
	s, d := c.Src, c.Dst
	C.I420Rotate(ptr(s[0]), stride(s[0]), ptr(s[1]), stride(s[1]), ptr(s[2]), stride(s[2]),
		ptr(d[0]), stride(d[0]), ptr(d[1]), stride(d[1]), ptr(d[2]), stride(d[2]),
		C.int(c.Width), C.int(c.Height), C.enum_RotationMode(c.Mode))
}

func rotateI444(c *engine.Call) {
	s, d := c.Src, c.Dst
	C.I444Rotate(ptr(s[0]), stride(s[0]), ptr(s[1]), stride(s[1]), ptr(s[2]), stride(s[2]),
		ptr(d[0]), stride(d[0]), ptr(d[1]), stride(d[1]), ptr(d[2]), stride(d[2]),
		C.int(c.Width), C.int(c.Height), C.enum_RotationMode(c.Mode))
}

func rotatePlane(c *engine.Call) {
	s, d := c.Src[0], c.Dst[0]
	C.RotatePlane(ptr(s), stride(s), ptr(d), stride(d), C.int(c.Width), C.int(c.Height), C.enum_RotationMode(c.Mode))
}

func rotateARGB(c *engine.Call) {
	s, d := c.Src[0], c.Dst[0]
	C.ARGBRotate(ptr(s), stride(s), ptr(d), stride(d), C.int(c.Width), C.int(c.Height), C.enum_RotationMode(c.Mode))
}

func scaleI420(c *engine.Call) {
	s, d := c.Src, c.Dst
	C.I420Scale(ptr(s[0]), stride(s[0]), ptr(s[1]), stride(s[1]), ptr(s[2]), stride(s[2]),
		C.int(c.SrcWidth), C.int(c.SrcHeight),
		ptr(d[0]), stride(d[0]), ptr(d[1]), stride(d[1]), ptr(d[2]), stride(d[2]),
		C.int(c.DstWidth), C.int(c.DstHeight), C.enum_FilterMode(c.Mode))
}

func scaleI444(c *engine.Call) {
	s, d := c.Src, c.Dst
	C.I444Scale(ptr(s[0]), stride(s[0]), ptr(s[1]), stride(s[1]), ptr(s[2]), stride(s[2]),
		C.int(c.SrcWidth), C.int(c.SrcHeight),
		ptr(d[0]), stride(d[0]), ptr(d[1]), stride(d[1]), ptr(d[2]), stride(d[2]),
		C.int(c.DstWidth), C.int(c.DstHeight), C.enum_FilterMode(c.Mode))
}

func scalePlane(c *engine.Call) {
	s, d := c.Src[0], c.Dst[0]
	C.ScalePlane(ptr(s), stride(s), C.int(c.SrcWidth), C.int(c.SrcHeight),
		ptr(d), stride(d), C.int(c.DstWidth), C.int(c.DstHeight), C.enum_FilterMode(c.Mode))
}

func scaleARGB(c *engine.Call) {
	s, d := c.Src[0], c.Dst[0]
	C.ARGBScale(ptr(s), stride(s), C.int(c.SrcWidth), C.int(c.SrcHeight),
		ptr(d), stride(d), C.int(c.DstWidth), C.int(c.DstHeight), C.enum_FilterMode(c.Mode))
}
