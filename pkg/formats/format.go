package formats

import (
	"fmt"
	"strings"
)

// Format identifies a pixel layout. The zero value is not a valid format.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatI400
	FormatJ400
	FormatI420
	FormatJ420
	FormatI422
	FormatJ422
	FormatI444
	FormatJ444
	FormatI420A
	FormatNV12
	FormatNV21
	FormatARGB
	FormatABGR
	FormatRGBA
	FormatBGRA
	FormatRGB24
	FormatRAW
	FormatRGB565
	FormatYUV24
)

// PlaneGeometry describes one plane of a format relative to the luma size.
// A plane with ShiftX = 1 has ceil(width/2) columns.
type PlaneGeometry struct {
	Name            string
	BytesPerElement int
	ShiftX, ShiftY  uint
}

// Columns returns the number of elements per row for an image of the given width.
func (g PlaneGeometry) Columns(width int) int {
	return (width + (1 << g.ShiftX) - 1) >> g.ShiftX
}

// Rows returns the number of rows for an image of the given height.
func (g PlaneGeometry) Rows(height int) int {
	return (height + (1 << g.ShiftY) - 1) >> g.ShiftY
}

type info struct {
	name   string
	fourcc [4]byte
	planes []PlaneGeometry
}

var (
	luma   = PlaneGeometry{Name: "Y", BytesPerElement: 1}
	u420   = PlaneGeometry{Name: "U", BytesPerElement: 1, ShiftX: 1, ShiftY: 1}
	v420   = PlaneGeometry{Name: "V", BytesPerElement: 1, ShiftX: 1, ShiftY: 1}
	u422   = PlaneGeometry{Name: "U", BytesPerElement: 1, ShiftX: 1}
	v422   = PlaneGeometry{Name: "V", BytesPerElement: 1, ShiftX: 1}
	u444   = PlaneGeometry{Name: "U", BytesPerElement: 1}
	v444   = PlaneGeometry{Name: "V", BytesPerElement: 1}
	alpha  = PlaneGeometry{Name: "A", BytesPerElement: 1}
	// uv and vu hold one pair per 2x2 cell, so odd sizes need
	// 2*ceil(w/2)*ceil(h/2) bytes rather than ceil(w/2)*h.
	uv     = PlaneGeometry{Name: "UV", BytesPerElement: 2, ShiftX: 1, ShiftY: 1}
	vu     = PlaneGeometry{Name: "VU", BytesPerElement: 2, ShiftX: 1, ShiftY: 1}
	packed = func(name string, bpp int) PlaneGeometry {
		return PlaneGeometry{Name: name, BytesPerElement: bpp}
	}
)

var infos = [...]info{
	FormatUnknown: {name: "unknown"},
	FormatI400:    {name: "I400", fourcc: [4]byte{'I', '4', '0', '0'}, planes: []PlaneGeometry{luma}},
	FormatJ400:    {name: "J400", fourcc: [4]byte{'J', '4', '0', '0'}, planes: []PlaneGeometry{luma}},
	FormatI420:    {name: "I420", fourcc: [4]byte{'I', '4', '2', '0'}, planes: []PlaneGeometry{luma, u420, v420}},
	FormatJ420:    {name: "J420", fourcc: [4]byte{'J', '4', '2', '0'}, planes: []PlaneGeometry{luma, u420, v420}},
	FormatI422:    {name: "I422", fourcc: [4]byte{'I', '4', '2', '2'}, planes: []PlaneGeometry{luma, u422, v422}},
	FormatJ422:    {name: "J422", fourcc: [4]byte{'J', '4', '2', '2'}, planes: []PlaneGeometry{luma, u422, v422}},
	FormatI444:    {name: "I444", fourcc: [4]byte{'I', '4', '4', '4'}, planes: []PlaneGeometry{luma, u444, v444}},
	FormatJ444:    {name: "J444", fourcc: [4]byte{'J', '4', '4', '4'}, planes: []PlaneGeometry{luma, u444, v444}},
	FormatI420A:   {name: "I420A", fourcc: [4]byte{'I', '4', '2', 'A'}, planes: []PlaneGeometry{luma, u420, v420, alpha}},
	FormatNV12:    {name: "NV12", fourcc: [4]byte{'N', 'V', '1', '2'}, planes: []PlaneGeometry{luma, uv}},
	FormatNV21:    {name: "NV21", fourcc: [4]byte{'N', 'V', '2', '1'}, planes: []PlaneGeometry{luma, vu}},
	FormatARGB:    {name: "ARGB", fourcc: [4]byte{'A', 'R', 'G', 'B'}, planes: []PlaneGeometry{packed("ARGB", 4)}},
	FormatABGR:    {name: "ABGR", fourcc: [4]byte{'A', 'B', 'G', 'R'}, planes: []PlaneGeometry{packed("ABGR", 4)}},
	FormatRGBA:    {name: "RGBA", fourcc: [4]byte{'R', 'G', 'B', 'A'}, planes: []PlaneGeometry{packed("RGBA", 4)}},
	FormatBGRA:    {name: "BGRA", fourcc: [4]byte{'B', 'G', 'R', 'A'}, planes: []PlaneGeometry{packed("BGRA", 4)}},
	FormatRGB24:   {name: "RGB24", fourcc: [4]byte{'2', '4', 'B', 'G'}, planes: []PlaneGeometry{packed("RGB", 3)}},
	FormatRAW:     {name: "RAW", fourcc: [4]byte{'r', 'a', 'w', ' '}, planes: []PlaneGeometry{packed("RAW", 3)}},
	FormatRGB565:  {name: "RGB565", fourcc: [4]byte{'R', 'G', 'B', 'P'}, planes: []PlaneGeometry{packed("RGB565", 2)}},
	FormatYUV24:   {name: "YUV24", fourcc: [4]byte{'Y', 'U', 'V', '3'}, planes: []PlaneGeometry{packed("YUV", 3)}},
}

// All returns every known format in declaration order.
func All() []Format {
	out := make([]Format, 0, len(infos)-1)
	for f := FormatI400; int(f) < len(infos); f++ {
		out = append(out, f)
	}
	return out
}

func (f Format) info() info {
	if int(f) >= len(infos) {
		return infos[FormatUnknown]
	}
	return infos[f]
}

func (f Format) Valid() bool {
	return f != FormatUnknown && int(f) < len(infos)
}

func (f Format) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
	return f.info().name
}

// FourCC returns the libyuv FourCC code of the format.
func (f Format) FourCC() [4]byte {
	return f.info().fourcc
}

// NumPlanes returns the number of planes the format stores.
func (f Format) NumPlanes() int {
	return len(f.info().planes)
}

// Plane returns the geometry of plane i. It panics if i is out of range.
func (f Format) Plane(i int) PlaneGeometry {
	return f.info().planes[i]
}

// Planes returns the geometry of all planes.
func (f Format) Planes() []PlaneGeometry {
	return append([]PlaneGeometry(nil), f.info().planes...)
}

func (f Format) IsPacked() bool {
	return f.Valid() && f.NumPlanes() == 1 && f != FormatI400 && f != FormatJ400
}

func (f Format) IsSemiPlanar() bool {
	return f == FormatNV12 || f == FormatNV21
}

// BytesPerPixel returns the element size for packed and grey formats and 0
// for formats with more than one plane.
func (f Format) BytesPerPixel() int {
	if f.NumPlanes() != 1 {
		return 0
	}
	return f.Plane(0).BytesPerElement
}

// Parse looks up a format by name, case-insensitively.
func Parse(name string) (Format, error) {
	for _, f := range All() {
		if strings.EqualFold(f.String(), name) {
			return f, nil
		}
	}
	return FormatUnknown, fmt.Errorf("unknown pixel format %q", name)
}

// FromFourCC looks up a format by its FourCC code.
func FromFourCC(fcc [4]byte) (Format, bool) {
	for _, f := range All() {
		if f.FourCC() == fcc {
			return f, true
		}
	}
	return FormatUnknown, false
}
