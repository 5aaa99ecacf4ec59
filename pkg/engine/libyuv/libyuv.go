//go:build cgo && libyuv

package libyuv

/*
#cgo CFLAGS: -I/usr/include -I/usr/local/include
#cgo LDFLAGS: -lyuv

#include <stdint.h>
#include <libyuv.h>
*/
import "C"
import (
	"unsafe"

	"github.com/kevmo314/go-yuv/pkg/engine"
	"github.com/kevmo314/go-yuv/pkg/formats"
)

type u8 = *C.uint8_t

func ptr(a engine.PlaneArg) u8 {
	return (u8)(unsafe.Pointer(&a.Data[a.Offset]))
}

func stride(a engine.PlaneArg) C.int {
	return C.int(a.Stride)
}

func Version() int {
	return int(C.LIBYUV_VERSION)
}

func New() (engine.Engine, error) {
	t := engine.Table{}
	convert := func(src, dst formats.Format, fn engine.Func) {
		t[engine.Key{Op: engine.OpConvert, Src: src, Dst: dst}] = fn
	}

	for _, f := range formats.All() {
		convert(f, f, copyPlanes)
	}

	convert(formats.FormatI420, formats.FormatARGB, planarToPacked(func(y u8, sy C.int, u u8, su C.int, v u8, sv C.int, d u8, sd, w, h C.int) C.int {
		return C.I420ToARGB(y, sy, u, su, v, sv, d, sd, w, h)
	}))
	convert(formats.FormatI420, formats.FormatABGR, planarToPacked(func(y u8, sy C.int, u u8, su C.int, v u8, sv C.int, d u8, sd, w, h C.int) C.int {
		return C.I420ToABGR(y, sy, u, su, v, sv, d, sd, w, h)
	}))
	convert(formats.FormatI420, formats.FormatBGRA, planarToPacked(func(y u8, sy C.int, u u8, su C.int, v u8, sv C.int, d u8, sd, w, h C.int) C.int {
		return C.I420ToBGRA(y, sy, u, su, v, sv, d, sd, w, h)
	}))
	convert(formats.FormatI420, formats.FormatRGBA, planarToPacked(func(y u8, sy C.int, u u8, su C.int, v u8, sv C.int, d u8, sd, w, h C.int) C.int {
		return C.I420ToRGBA(y, sy, u, su, v, sv, d, sd, w, h)
	}))
	convert(formats.FormatI420, formats.FormatRGB24, planarToPacked(func(y u8, sy C.int, u u8, su C.int, v u8, sv C.int, d u8, sd, w, h C.int) C.int {
		return C.I420ToRGB24(y, sy, u, su, v, sv, d, sd, w, h)
	}))
	convert(formats.FormatI420, formats.FormatRAW, planarToPacked(func(y u8, sy C.int, u u8, su C.int, v u8, sv C.int, d u8, sd, w, h C.int) C.int {
		return C.I420ToRAW(y, sy, u, su, v, sv, d, sd, w, h)
	}))
	convert(formats.FormatI420, formats.FormatRGB565, planarToPacked(func(y u8, sy C.int, u u8, su C.int, v u8, sv C.int, d u8, sd, w, h C.int) C.int {
		return C.I420ToRGB565(y, sy, u, su, v, sv, d, sd, w, h)
	}))
	convert(formats.FormatJ420, formats.FormatARGB, planarToPacked(func(y u8, sy C.int, u u8, su C.int, v u8, sv C.int, d u8, sd, w, h C.int) C.int {
		return C.J420ToARGB(y, sy, u, su, v, sv, d, sd, w, h)
	}))
	convert(formats.FormatJ420, formats.FormatABGR, planarToPacked(func(y u8, sy C.int, u u8, su C.int, v u8, sv C.int, d u8, sd, w, h C.int) C.int {
		return C.J420ToABGR(y, sy, u, su, v, sv, d, sd, w, h)
	}))
	convert(formats.FormatI422, formats.FormatARGB, planarToPacked(func(y u8, sy C.int, u u8, su C.int, v u8, sv C.int, d u8, sd, w, h C.int) C.int {
		return C.I422ToARGB(y, sy, u, su, v, sv, d, sd, w, h)
	}))
	convert(formats.FormatI444, formats.FormatARGB, planarToPacked(func(y u8, sy C.int, u u8, su C.int, v u8, sv C.int, d u8, sd, w, h C.int) C.int {
		return C.I444ToARGB(y, sy, u, su, v, sv, d, sd, w, h)
	}))
	convert(formats.FormatI420A, formats.FormatARGB, func(c *engine.Call) {
		y, u, v, a, d := c.Src[0], c.Src[1], c.Src[2], c.Src[3], c.Dst[0]
		C.I420AlphaToARGB(ptr(y), stride(y), ptr(u), stride(u), ptr(v), stride(v), ptr(a), stride(a),
			ptr(d), stride(d), C.int(c.Width), C.int(c.Height), 0)
	})

	convert(formats.FormatNV12, formats.FormatARGB, semiToPacked(func(y u8, sy C.int, uv u8, suv C.int, d u8, sd, w, h C.int) C.int {
		return C.NV12ToARGB(y, sy, uv, suv, d, sd, w, h)
	}))
	convert(formats.FormatNV21, formats.FormatARGB, semiToPacked(func(y u8, sy C.int, uv u8, suv C.int, d u8, sd, w, h C.int) C.int {
		return C.NV21ToARGB(y, sy, uv, suv, d, sd, w, h)
	}))
	convert(formats.FormatNV12, formats.FormatABGR, semiToPacked(func(y u8, sy C.int, uv u8, suv C.int, d u8, sd, w, h C.int) C.int {
		return C.NV12ToABGR(y, sy, uv, suv, d, sd, w, h)
	}))
	convert(formats.FormatNV21, formats.FormatABGR, semiToPacked(func(y u8, sy C.int, uv u8, suv C.int, d u8, sd, w, h C.int) C.int {
		return C.NV21ToABGR(y, sy, uv, suv, d, sd, w, h)
	}))

	convert(formats.FormatNV12, formats.FormatRGB24, semiToPacked(func(y u8, sy C.int, uv u8, suv C.int, d u8, sd, w, h C.int) C.int {
		return C.NV12ToRGB24(y, sy, uv, suv, d, sd, w, h)
	}))
	convert(formats.FormatNV12, formats.FormatRAW, semiToPacked(func(y u8, sy C.int, uv u8, suv C.int, d u8, sd, w, h C.int) C.int {
		return C.NV12ToRAW(y, sy, uv, suv, d, sd, w, h)
	}))
	convert(formats.FormatNV12, formats.FormatRGB565, semiToPacked(func(y u8, sy C.int, uv u8, suv C.int, d u8, sd, w, h C.int) C.int {
		return C.NV12ToRGB565(y, sy, uv, suv, d, sd, w, h)
	}))

	convert(formats.FormatARGB, formats.FormatI420, packedToPlanar(func(s u8, ss C.int, y u8, sy C.int, u u8, su C.int, v u8, sv C.int, w, h C.int) C.int {
		return C.ARGBToI420(s, ss, y, sy, u, su, v, sv, w, h)
	}))
	convert(formats.FormatABGR, formats.FormatI420, packedToPlanar(func(s u8, ss C.int, y u8, sy C.int, u u8, su C.int, v u8, sv C.int, w, h C.int) C.int {
		return C.ABGRToI420(s, ss, y, sy, u, su, v, sv, w, h)
	}))
	convert(formats.FormatBGRA, formats.FormatI420, packedToPlanar(func(s u8, ss C.int, y u8, sy C.int, u u8, su C.int, v u8, sv C.int, w, h C.int) C.int {
		return C.BGRAToI420(s, ss, y, sy, u, su, v, sv, w, h)
	}))
	convert(formats.FormatRGBA, formats.FormatI420, packedToPlanar(func(s u8, ss C.int, y u8, sy C.int, u u8, su C.int, v u8, sv C.int, w, h C.int) C.int {
		return C.RGBAToI420(s, ss, y, sy, u, su, v, sv, w, h)
	}))
	convert(formats.FormatRGB24, formats.FormatI420, packedToPlanar(func(s u8, ss C.int, y u8, sy C.int, u u8, su C.int, v u8, sv C.int, w, h C.int) C.int {
		return C.RGB24ToI420(s, ss, y, sy, u, su, v, sv, w, h)
	}))
	convert(formats.FormatRAW, formats.FormatI420, packedToPlanar(func(s u8, ss C.int, y u8, sy C.int, u u8, su C.int, v u8, sv C.int, w, h C.int) C.int {
		return C.RAWToI420(s, ss, y, sy, u, su, v, sv, w, h)
	}))
	convert(formats.FormatRGB565, formats.FormatI420, packedToPlanar(func(s u8, ss C.int, y u8, sy C.int, u u8, su C.int, v u8, sv C.int, w, h C.int) C.int {
		return C.RGB565ToI420(s, ss, y, sy, u, su, v, sv, w, h)
	}))
	convert(formats.FormatARGB, formats.FormatJ420, packedToPlanar(func(s u8, ss C.int, y u8, sy C.int, u u8, su C.int, v u8, sv C.int, w, h C.int) C.int {
		return C.ARGBToJ420(s, ss, y, sy, u, su, v, sv, w, h)
	}))
	convert(formats.FormatRAW, formats.FormatJ420, packedToPlanar(func(s u8, ss C.int, y u8, sy C.int, u u8, su C.int, v u8, sv C.int, w, h C.int) C.int {
		return C.RAWToJ420(s, ss, y, sy, u, su, v, sv, w, h)
	}))
	convert(formats.FormatRAW, formats.FormatJ400, packedToPacked(func(s u8, ss C.int, d u8, sd, w, h C.int) C.int {
		return C.RAWToJ400(s, ss, d, sd, w, h)
	}))
	convert(formats.FormatRGBA, formats.FormatJ400, packedToPacked(func(s u8, ss C.int, d u8, sd, w, h C.int) C.int {
		return C.RGBAToJ400(s, ss, d, sd, w, h)
	}))
	convert(formats.FormatARGB, formats.FormatNV12, func(c *engine.Call) {
		s, y, uv := c.Src[0], c.Dst[0], c.Dst[1]
		C.ARGBToNV12(ptr(s), stride(s), ptr(y), stride(y), ptr(uv), stride(uv), C.int(c.Width), C.int(c.Height))
	})
	convert(formats.FormatARGB, formats.FormatNV21, func(c *engine.Call) {
		s, y, vu := c.Src[0], c.Dst[0], c.Dst[1]
		C.ARGBToNV21(ptr(s), stride(s), ptr(y), stride(y), ptr(vu), stride(vu), C.int(c.Width), C.int(c.Height))
	})

	convert(formats.FormatNV12, formats.FormatI420, func(c *engine.Call) {
		y, uv, dy, du, dv := c.Src[0], c.Src[1], c.Dst[0], c.Dst[1], c.Dst[2]
		C.NV12ToI420(ptr(y), stride(y), ptr(uv), stride(uv), ptr(dy), stride(dy), ptr(du), stride(du), ptr(dv), stride(dv), C.int(c.Width), C.int(c.Height))
	})
	convert(formats.FormatNV21, formats.FormatI420, func(c *engine.Call) {
		y, vu, dy, du, dv := c.Src[0], c.Src[1], c.Dst[0], c.Dst[1], c.Dst[2]
		C.NV21ToI420(ptr(y), stride(y), ptr(vu), stride(vu), ptr(dy), stride(dy), ptr(du), stride(du), ptr(dv), stride(dv), C.int(c.Width), C.int(c.Height))
	})
	convert(formats.FormatI420, formats.FormatNV12, func(c *engine.Call) {
		y, u, v, dy, duv := c.Src[0], c.Src[1], c.Src[2], c.Dst[0], c.Dst[1]
		C.I420ToNV12(ptr(y), stride(y), ptr(u), stride(u), ptr(v), stride(v), ptr(dy), stride(dy), ptr(duv), stride(duv), C.int(c.Width), C.int(c.Height))
	})
	convert(formats.FormatI420, formats.FormatNV21, func(c *engine.Call) {
		y, u, v, dy, dvu := c.Src[0], c.Src[1], c.Src[2], c.Dst[0], c.Dst[1]
		C.I420ToNV21(ptr(y), stride(y), ptr(u), stride(u), ptr(v), stride(v), ptr(dy), stride(dy), ptr(dvu), stride(dvu), C.int(c.Width), C.int(c.Height))
	})
	convert(formats.FormatI400, formats.FormatNV21, func(c *engine.Call) {
		y, dy, dvu := c.Src[0], c.Dst[0], c.Dst[1]
		C.I400ToNV21(ptr(y), stride(y), ptr(dy), stride(dy), ptr(dvu), stride(dvu), C.int(c.Width), C.int(c.Height))
	})
	convert(formats.FormatI400, formats.FormatARGB, packedToPacked(func(s u8, ss C.int, d u8, sd, w, h C.int) C.int {
		return C.I400ToARGB(s, ss, d, sd, w, h)
	}))
	convert(formats.FormatJ400, formats.FormatARGB, packedToPacked(func(s u8, ss C.int, d u8, sd, w, h C.int) C.int {
		return C.J400ToARGB(s, ss, d, sd, w, h)
	}))

	convert(formats.FormatARGB, formats.FormatABGR, packedToPacked(func(s u8, ss C.int, d u8, sd, w, h C.int) C.int {
		return C.ARGBToABGR(s, ss, d, sd, w, h)
	}))
	convert(formats.FormatABGR, formats.FormatARGB, packedToPacked(func(s u8, ss C.int, d u8, sd, w, h C.int) C.int {
		return C.ABGRToARGB(s, ss, d, sd, w, h)
	}))
	convert(formats.FormatARGB, formats.FormatBGRA, packedToPacked(func(s u8, ss C.int, d u8, sd, w, h C.int) C.int {
		return C.ARGBToBGRA(s, ss, d, sd, w, h)
	}))
	convert(formats.FormatBGRA, formats.FormatARGB, packedToPacked(func(s u8, ss C.int, d u8, sd, w, h C.int) C.int {
		return C.BGRAToARGB(s, ss, d, sd, w, h)
	}))
	convert(formats.FormatARGB, formats.FormatRGBA, packedToPacked(func(s u8, ss C.int, d u8, sd, w, h C.int) C.int {
		return C.ARGBToRGBA(s, ss, d, sd, w, h)
	}))
	convert(formats.FormatRGBA, formats.FormatARGB, packedToPacked(func(s u8, ss C.int, d u8, sd, w, h C.int) C.int {
		return C.RGBAToARGB(s, ss, d, sd, w, h)
	}))
	convert(formats.FormatARGB, formats.FormatRGB24, packedToPacked(func(s u8, ss C.int, d u8, sd, w, h C.int) C.int {
		return C.ARGBToRGB24(s, ss, d, sd, w, h)
	}))
	convert(formats.FormatRGB24, formats.FormatARGB, packedToPacked(func(s u8, ss C.int, d u8, sd, w, h C.int) C.int {
		return C.RGB24ToARGB(s, ss, d, sd, w, h)
	}))
	convert(formats.FormatARGB, formats.FormatRAW, packedToPacked(func(s u8, ss C.int, d u8, sd, w, h C.int) C.int {
		return C.ARGBToRAW(s, ss, d, sd, w, h)
	}))
	convert(formats.FormatRAW, formats.FormatARGB, packedToPacked(func(s u8, ss C.int, d u8, sd, w, h C.int) C.int {
		return C.RAWToARGB(s, ss, d, sd, w, h)
	}))
	convert(formats.FormatRAW, formats.FormatRGB24, packedToPacked(func(s u8, ss C.int, d u8, sd, w, h C.int) C.int {
		return C.RAWToRGB24(s, ss, d, sd, w, h)
	}))
	convert(formats.FormatRAW, formats.FormatRGBA, packedToPacked(func(s u8, ss C.int, d u8, sd, w, h C.int) C.int {
		return C.RAWToRGBA(s, ss, d, sd, w, h)
	}))
	convert(formats.FormatARGB, formats.FormatRGB565, packedToPacked(func(s u8, ss C.int, d u8, sd, w, h C.int) C.int {
		return C.ARGBToRGB565(s, ss, d, sd, w, h)
	}))
	convert(formats.FormatRGB565, formats.FormatARGB, packedToPacked(func(s u8, ss C.int, d u8, sd, w, h C.int) C.int {
		return C.RGB565ToARGB(s, ss, d, sd, w, h)
	}))

	addGeometry(t)
	return t, nil
}

// copyPlanes copies every plane row by row, so it serves every format.
func copyPlanes(c *engine.Call) {
	for i, s := range c.Src {
		g := c.Key.Src.Plane(i)
		d := c.Dst[i]
		C.CopyPlane(ptr(s), stride(s), ptr(d), stride(d),
			C.int(g.Columns(c.Width)*g.BytesPerElement), C.int(g.Rows(c.Height)))
	}
}

func planarToPacked(fn func(y u8, sy C.int, u u8, su C.int, v u8, sv C.int, d u8, sd, w, h C.int) C.int) engine.Func {
	return func(c *engine.Call) {
		y, u, v, d := c.Src[0], c.Src[1], c.Src[2], c.Dst[0]
		fn(ptr(y), stride(y), ptr(u), stride(u), ptr(v), stride(v), ptr(d), stride(d), C.int(c.Width), C.int(c.Height))
	}
}

func semiToPacked(fn func(y u8, sy C.int, uv u8, suv C.int, d u8, sd, w, h C.int) C.int) engine.Func {
	return func(c *engine.Call) {
		y, uv, d := c.Src[0], c.Src[1], c.Dst[0]
		fn(ptr(y), stride(y), ptr(uv), stride(uv), ptr(d), stride(d), C.int(c.Width), C.int(c.Height))
	}
}

func packedToPlanar(fn func(s u8, ss C.int, y u8, sy C.int, u u8, su C.int, v u8, sv C.int, w, h C.int) C.int) engine.Func {
	return func(c *engine.Call) {
		s, y, u, v := c.Src[0], c.Dst[0], c.Dst[1], c.Dst[2]
		fn(ptr(s), stride(s), ptr(y), stride(y), ptr(u), stride(u), ptr(v), stride(v), C.int(c.Width), C.int(c.Height))
	}
}

func packedToPacked(fn func(s u8, ss C.int, d u8, sd, w, h C.int) C.int) engine.Func {
	return func(c *engine.Call) {
		s, d := c.Src[0], c.Dst[0]
		fn(ptr(s), stride(s), ptr(d), stride(d), C.int(c.Width), C.int(c.Height))
	}
}
