package soft

import (
	"bytes"
	"testing"

	"github.com/kevmo314/go-yuv/pkg/engine"
	"github.com/kevmo314/go-yuv/pkg/formats"
)

func arg(data []byte, stride int) engine.PlaneArg {
	return engine.PlaneArg{Data: data, Stride: stride}
}

func TestSupports(t *testing.T) {
	e := New()
	tests := []struct {
		key  engine.Key
		want bool
	}{
		{engine.Key{Op: engine.OpConvert, Src: formats.FormatI420, Dst: formats.FormatI420}, true},
		{engine.Key{Op: engine.OpConvert, Src: formats.FormatI420, Dst: formats.FormatARGB}, true},
		{engine.Key{Op: engine.OpConvert, Src: formats.FormatNV12, Dst: formats.FormatI420}, true},
		{engine.Key{Op: engine.OpConvert, Src: formats.FormatI400, Dst: formats.FormatNV21}, true},
		{engine.Key{Op: engine.OpConvert, Src: formats.FormatRGB24, Dst: formats.FormatRAW}, true},
		{engine.Key{Op: engine.OpConvert, Src: formats.FormatI420, Dst: formats.FormatJ420}, false},
		{engine.Key{Op: engine.OpRotate, Src: formats.FormatI420, Dst: formats.FormatI420}, true},
		{engine.Key{Op: engine.OpRotate, Src: formats.FormatI422, Dst: formats.FormatI422}, false},
		{engine.Key{Op: engine.OpRotate, Src: formats.FormatNV12, Dst: formats.FormatI420}, true},
		{engine.Key{Op: engine.OpRotate, Src: formats.FormatNV12, Dst: formats.FormatNV21}, true},
		{engine.Key{Op: engine.OpRotate, Src: formats.FormatI420, Dst: formats.FormatNV21}, true},
		{engine.Key{Op: engine.OpRotate, Src: formats.FormatNV12, Dst: formats.FormatJ420}, false},
		{engine.Key{Op: engine.OpScale, Src: formats.FormatRGB565, Dst: formats.FormatRGB565}, true},
		{engine.Key{Op: engine.OpScale, Src: formats.FormatI420, Dst: formats.FormatNV12}, false},
		{engine.Key{Op: engine.OpMirror, Src: formats.FormatNV21, Dst: formats.FormatNV21}, true},
	}
	for _, tt := range tests {
		if got := e.Supports(tt.key); got != tt.want {
			t.Errorf("Supports(%s) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestCopyHonorsOffsetAndStride(t *testing.T) {
	src := []byte{
		0, 0, 0, 0,
		0, 1, 2, 0,
		0, 3, 4, 0,
	}
	dst := make([]byte, 4)
	c := &engine.Call{
		Key:    engine.Key{Op: engine.OpConvert, Src: formats.FormatI400, Dst: formats.FormatI400},
		Src:    []engine.PlaneArg{{Data: src, Stride: 4, Offset: 5}},
		Dst:    []engine.PlaneArg{arg(dst, 2)},
		Width:  2,
		Height: 2,
	}
	New().Invoke(c)
	if want := []byte{1, 2, 3, 4}; !bytes.Equal(dst, want) {
		t.Errorf("dst = %v, want %v", dst, want)
	}
}

func TestMirror(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	dst := make([]byte, 8)
	c := &engine.Call{
		Key:    engine.Key{Op: engine.OpMirror, Src: formats.FormatRGB565, Dst: formats.FormatRGB565},
		Src:    []engine.PlaneArg{arg(src, 4)},
		Dst:    []engine.PlaneArg{arg(dst, 4)},
		Width:  2,
		Height: 2,
	}
	New().Invoke(c)
	if want := []byte{3, 4, 1, 2, 7, 8, 5, 6}; !bytes.Equal(dst, want) {
		t.Errorf("dst = %v, want %v", dst, want)
	}
}

func TestRotate(t *testing.T) {
	src := []byte{
		1, 2, 3,
		4, 5, 6,
	}
	tests := []struct {
		mode   engine.RotateMode
		stride int
		want   []byte
	}{
		{engine.Rotate0, 3, []byte{1, 2, 3, 4, 5, 6}},
		{engine.Rotate90, 2, []byte{4, 1, 5, 2, 6, 3}},
		{engine.Rotate180, 3, []byte{6, 5, 4, 3, 2, 1}},
		{engine.Rotate270, 2, []byte{3, 6, 2, 5, 1, 4}},
	}
	for _, tt := range tests {
		dst := make([]byte, 6)
		c := &engine.Call{
			Key:    engine.Key{Op: engine.OpRotate, Src: formats.FormatI400, Dst: formats.FormatI400},
			Src:    []engine.PlaneArg{arg(src, 3)},
			Dst:    []engine.PlaneArg{arg(dst, tt.stride)},
			Width:  3,
			Height: 2,
			Mode:   int(tt.mode),
		}
		New().Invoke(c)
		if !bytes.Equal(dst, tt.want) {
			t.Errorf("rotate %d = %v, want %v", tt.mode, dst, tt.want)
		}
	}
}

// nv12Frame returns a 6x4 NV12 frame with luma y*6+x, U 100+cell and V
// 200+cell for chroma cell cy*3+cx.
func nv12Frame() (y, uv []byte) {
	y = make([]byte, 24)
	for i := range y {
		y[i] = byte(i)
	}
	uv = make([]byte, 12)
	for cell := 0; cell < 6; cell++ {
		uv[cell*2] = byte(100 + cell)
		uv[cell*2+1] = byte(200 + cell)
	}
	return y, uv
}

func TestRotateNV12ToI420(t *testing.T) {
	sy, suv := nv12Frame()
	dy, du, dv := make([]byte, 24), make([]byte, 6), make([]byte, 6)
	c := &engine.Call{
		Key:       engine.Key{Op: engine.OpRotate, Src: formats.FormatNV12, Dst: formats.FormatI420},
		Src:       []engine.PlaneArg{arg(sy, 6), arg(suv, 6)},
		Dst:       []engine.PlaneArg{arg(dy, 4), arg(du, 2), arg(dv, 2)},
		Width:     6,
		Height:    4,
		DstWidth:  4,
		DstHeight: 6,
		Mode:      int(engine.Rotate90),
	}
	New().Invoke(c)

	if want := []byte{18, 12, 6, 0}; !bytes.Equal(dy[:4], want) {
		t.Errorf("Y row 0 = %v, want %v", dy[:4], want)
	}
	if want := []byte{23, 17, 11, 5}; !bytes.Equal(dy[20:], want) {
		t.Errorf("Y row 5 = %v, want %v", dy[20:], want)
	}
	if want := []byte{103, 100, 104, 101, 105, 102}; !bytes.Equal(du, want) {
		t.Errorf("U = %v, want %v", du, want)
	}
	if want := []byte{203, 200, 204, 201, 205, 202}; !bytes.Equal(dv, want) {
		t.Errorf("V = %v, want %v", dv, want)
	}
}

func TestRotateNV12ToNV21(t *testing.T) {
	sy, suv := nv12Frame()
	dy, dvu := make([]byte, 24), make([]byte, 12)
	c := &engine.Call{
		Key:       engine.Key{Op: engine.OpRotate, Src: formats.FormatNV12, Dst: formats.FormatNV21},
		Src:       []engine.PlaneArg{arg(sy, 6), arg(suv, 6)},
		Dst:       []engine.PlaneArg{arg(dy, 6), arg(dvu, 6)},
		Width:     6,
		Height:    4,
		DstWidth:  6,
		DstHeight: 4,
		Mode:      int(engine.Rotate180),
	}
	New().Invoke(c)

	if dy[0] != 23 || dy[23] != 0 {
		t.Errorf("Y corners = %d, %d, want 23, 0", dy[0], dy[23])
	}
	for cell := 0; cell < 6; cell++ {
		v, u := dvu[cell*2], dvu[cell*2+1]
		if want := byte(200 + 5 - cell); v != want {
			t.Errorf("V[%d] = %d, want %d", cell, v, want)
		}
		if want := byte(100 + 5 - cell); u != want {
			t.Errorf("U[%d] = %d, want %d", cell, u, want)
		}
	}
}

func TestReorder(t *testing.T) {
	src := []byte{1, 2, 3, 4}
	dst := make([]byte, 4)
	c := &engine.Call{
		Key:    engine.Key{Op: engine.OpConvert, Src: formats.FormatARGB, Dst: formats.FormatABGR},
		Src:    []engine.PlaneArg{arg(src, 4)},
		Dst:    []engine.PlaneArg{arg(dst, 4)},
		Width:  1,
		Height: 1,
	}
	New().Invoke(c)
	if want := []byte{3, 2, 1, 4}; !bytes.Equal(dst, want) {
		t.Errorf("dst = %v, want %v", dst, want)
	}

	raw := make([]byte, 3)
	c = &engine.Call{
		Key:    engine.Key{Op: engine.OpConvert, Src: formats.FormatARGB, Dst: formats.FormatRAW},
		Src:    []engine.PlaneArg{arg(src, 4)},
		Dst:    []engine.PlaneArg{arg(raw, 3)},
		Width:  1,
		Height: 1,
	}
	New().Invoke(c)
	if want := []byte{3, 2, 1}; !bytes.Equal(raw, want) {
		t.Errorf("raw = %v, want %v", raw, want)
	}
}

func TestRGB565(t *testing.T) {
	l := rgbLayouts[formats.FormatRGB565]
	p := make([]byte, 2)
	l.set(p, 0xff, 0xff, 0xff, 0xff)
	if p[0] != 0xff || p[1] != 0xff {
		t.Errorf("white = %#x %#x, want 0xff 0xff", p[0], p[1])
	}
	r, g, b, a := l.get(p)
	if r != 0xff || g != 0xff || b != 0xff || a != 0xff {
		t.Errorf("get(white) = %d %d %d %d, want 255 255 255 255", r, g, b, a)
	}
	l.set(p, 0xff, 0, 0, 0xff)
	if v := uint16(p[0]) | uint16(p[1])<<8; v != 0xf800 {
		t.Errorf("red = %#x, want 0xf800", v)
	}
}

func TestSemiPlanarToPlanar(t *testing.T) {
	for _, tt := range []struct {
		src   formats.Format
		wantU byte
		wantV byte
	}{
		{formats.FormatNV12, 10, 20},
		{formats.FormatNV21, 20, 10},
	} {
		y := []byte{1, 2, 3, 4}
		uv := []byte{10, 20}
		dy, du, dv := make([]byte, 4), make([]byte, 1), make([]byte, 1)
		c := &engine.Call{
			Key:    engine.Key{Op: engine.OpConvert, Src: tt.src, Dst: formats.FormatI420},
			Src:    []engine.PlaneArg{arg(y, 2), arg(uv, 2)},
			Dst:    []engine.PlaneArg{arg(dy, 2), arg(du, 1), arg(dv, 1)},
			Width:  2,
			Height: 2,
		}
		New().Invoke(c)
		if !bytes.Equal(dy, y) {
			t.Errorf("%s: y = %v, want %v", tt.src, dy, y)
		}
		if du[0] != tt.wantU || dv[0] != tt.wantV {
			t.Errorf("%s: u, v = %d, %d, want %d, %d", tt.src, du[0], dv[0], tt.wantU, tt.wantV)
		}
	}
}

func TestGreyToNV21(t *testing.T) {
	y := []byte{9, 9, 9, 9, 9, 9}
	dy, dvu := make([]byte, 6), make([]byte, 4)
	c := &engine.Call{
		Key:    engine.Key{Op: engine.OpConvert, Src: formats.FormatI400, Dst: formats.FormatNV21},
		Src:    []engine.PlaneArg{arg(y, 3)},
		Dst:    []engine.PlaneArg{arg(dy, 3), arg(dvu, 4)},
		Width:  3,
		Height: 2,
	}
	New().Invoke(c)
	if !bytes.Equal(dy, y) {
		t.Errorf("y = %v, want %v", dy, y)
	}
	if want := []byte{0x80, 0x80, 0x80, 0x80}; !bytes.Equal(dvu, want) {
		t.Errorf("vu = %v, want %v", dvu, want)
	}
}

func TestRGBToI420(t *testing.T) {
	// Two white pixels over two black ones.
	src := []byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0, 0, 0, 0xff, 0, 0, 0, 0xff,
	}
	dy, du, dv := make([]byte, 4), make([]byte, 1), make([]byte, 1)
	c := &engine.Call{
		Key:    engine.Key{Op: engine.OpConvert, Src: formats.FormatARGB, Dst: formats.FormatI420},
		Src:    []engine.PlaneArg{arg(src, 8)},
		Dst:    []engine.PlaneArg{arg(dy, 2), arg(du, 1), arg(dv, 1)},
		Width:  2,
		Height: 2,
	}
	New().Invoke(c)
	if want := []byte{0xff, 0xff, 0, 0}; !bytes.Equal(dy, want) {
		t.Errorf("y = %v, want %v", dy, want)
	}
	if du[0] != 0x80 || dv[0] != 0x80 {
		t.Errorf("u, v = %d, %d, want 128, 128", du[0], dv[0])
	}
}

func TestI420ToARGB(t *testing.T) {
	for _, dst := range []formats.Format{formats.FormatARGB, formats.FormatBGRA, formats.FormatRGB24} {
		y := []byte{0x80, 0x80, 0x80, 0x80}
		u, v := []byte{0x80}, []byte{0x80}
		bpp := dst.BytesPerPixel()
		out := make([]byte, 4*bpp)
		c := &engine.Call{
			Key:    engine.Key{Op: engine.OpConvert, Src: formats.FormatI420, Dst: dst},
			Src:    []engine.PlaneArg{arg(y, 2), arg(u, 1), arg(v, 1)},
			Dst:    []engine.PlaneArg{arg(out, 2*bpp)},
			Width:  2,
			Height: 2,
		}
		New().Invoke(c)
		l := rgbLayouts[dst]
		for i := 0; i < 4; i++ {
			r, g, b, a := l.get(out[i*bpp:])
			if r != 0x80 || g != 0x80 || b != 0x80 || a != 0xff {
				t.Errorf("%s pixel %d = %d %d %d %d, want 128 128 128 255", dst, i, r, g, b, a)
			}
		}
	}
}

func TestI420AKeepsAlpha(t *testing.T) {
	y := []byte{0x80}
	u, v, a := []byte{0x80}, []byte{0x80}, []byte{0x40}
	out := make([]byte, 4)
	c := &engine.Call{
		Key:    engine.Key{Op: engine.OpConvert, Src: formats.FormatI420A, Dst: formats.FormatABGR},
		Src:    []engine.PlaneArg{arg(y, 1), arg(u, 1), arg(v, 1), arg(a, 1)},
		Dst:    []engine.PlaneArg{arg(out, 4)},
		Width:  1,
		Height: 1,
	}
	New().Invoke(c)
	if out[3] != 0x40 {
		t.Errorf("alpha = %#x, want 0x40", out[3])
	}
}

func TestScaleNearest(t *testing.T) {
	src := []byte{1, 2, 3, 4}
	dst := make([]byte, 16)
	c := &engine.Call{
		Key:       engine.Key{Op: engine.OpScale, Src: formats.FormatI400, Dst: formats.FormatI400},
		Src:       []engine.PlaneArg{arg(src, 2)},
		Dst:       []engine.PlaneArg{arg(dst, 4)},
		SrcWidth:  2,
		SrcHeight: 2,
		DstWidth:  4,
		DstHeight: 4,
		Mode:      int(engine.FilterNone),
	}
	New().Invoke(c)
	want := []byte{
		1, 1, 2, 2,
		1, 1, 2, 2,
		3, 3, 4, 4,
		3, 3, 4, 4,
	}
	if !bytes.Equal(dst, want) {
		t.Errorf("dst = %v, want %v", dst, want)
	}
}

func TestScaleUniform(t *testing.T) {
	filters := []engine.FilterMode{engine.FilterNone, engine.FilterLinear, engine.FilterBilinear, engine.FilterBox}
	for _, f := range []formats.Format{formats.FormatI400, formats.FormatARGB} {
		bpp := f.BytesPerPixel()
		src := bytes.Repeat([]byte{77}, 4*4*bpp)
		for _, filter := range filters {
			for _, size := range []int{2, 7} {
				dst := make([]byte, size*size*bpp)
				c := &engine.Call{
					Key:       engine.Key{Op: engine.OpScale, Src: f, Dst: f},
					Src:       []engine.PlaneArg{arg(src, 4*bpp)},
					Dst:       []engine.PlaneArg{arg(dst, size*bpp)},
					SrcWidth:  4,
					SrcHeight: 4,
					DstWidth:  size,
					DstHeight: size,
					Mode:      int(filter),
				}
				New().Invoke(c)
				for i, v := range dst {
					if v != 77 {
						t.Errorf("%s %s to %d: byte %d = %d, want 77", f, filter, size, i, v)
						break
					}
				}
			}
		}
	}
}
