package yuv

import (
	"fmt"
	"image"
	"log/slog"
	"sync/atomic"

	"github.com/kevmo314/go-yuv/pkg/engine"
)

type (
	RotateMode = engine.RotateMode
	FilterMode = engine.FilterMode
)

const (
	Rotate0   = engine.Rotate0
	Rotate90  = engine.Rotate90
	Rotate180 = engine.Rotate180
	Rotate270 = engine.Rotate270

	FilterNone     = engine.FilterNone
	FilterLinear   = engine.FilterLinear
	FilterBilinear = engine.FilterBilinear
	FilterBox      = engine.FilterBox
)

// Converter reconciles buffer crops into engine calls.
type Converter struct {
	engine engine.Engine
}

func NewConverter(e engine.Engine) *Converter {
	return &Converter{engine: e}
}

func (c *Converter) Engine() engine.Engine {
	return c.engine
}

// Supports reports whether the engine has an entry for op from src to dst.
func (c *Converter) Supports(op engine.Op, src, dst Buffer) bool {
	return c.engine.Supports(engine.Key{Op: op, Src: src.Format(), Dst: dst.Format()})
}

// Convert converts the overlap of the src and dst crop rectangles, anchored
// at each crop origin.
func (c *Converter) Convert(src, dst Buffer) error {
	w, h := minSize(src.CropRect(), dst.CropRect())
	call := &engine.Call{Width: w, Height: h, DstWidth: w, DstHeight: h}
	return c.dispatch(engine.OpConvert, src, dst, call)
}

// Mirror writes src flipped horizontally into dst.
func (c *Converter) Mirror(src, dst Buffer) error {
	w, h := minSize(src.CropRect(), dst.CropRect())
	call := &engine.Call{Width: w, Height: h, DstWidth: w, DstHeight: h}
	return c.dispatch(engine.OpMirror, src, dst, call)
}

// Rotate writes src rotated clockwise by mode into dst. For 90 and 270 the
// source width is matched against the destination height.
func (c *Converter) Rotate(src, dst Buffer, mode RotateMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidRotation, int(mode))
	}
	sr, dr := src.CropRect(), dst.CropRect()
	var call *engine.Call
	if mode.Transposes() {
		w := min(sr.Dx(), dr.Dy())
		h := min(sr.Dy(), dr.Dx())
		call = &engine.Call{Width: w, Height: h, DstWidth: h, DstHeight: w}
	} else {
		w, h := minSize(sr, dr)
		call = &engine.Call{Width: w, Height: h, DstWidth: w, DstHeight: h}
	}
	call.Mode = int(mode)
	return c.dispatch(engine.OpRotate, src, dst, call)
}

// Scale resamples the whole src crop onto the whole dst crop.
func (c *Converter) Scale(src, dst Buffer, filter FilterMode) error {
	sr, dr := src.CropRect(), dst.CropRect()
	call := &engine.Call{
		Width:     dr.Dx(),
		Height:    dr.Dy(),
		SrcWidth:  sr.Dx(),
		SrcHeight: sr.Dy(),
		DstWidth:  dr.Dx(),
		DstHeight: dr.Dy(),
		Mode:      int(filter),
	}
	if call.SrcWidth <= 0 || call.SrcHeight <= 0 {
		return fmt.Errorf("%w: source %dx%d", ErrEmptyOperation, call.SrcWidth, call.SrcHeight)
	}
	return c.dispatch(engine.OpScale, src, dst, call)
}

func (c *Converter) dispatch(op engine.Op, src, dst Buffer, call *engine.Call) error {
	if call.Width <= 0 || call.Height <= 0 || call.DstWidth <= 0 || call.DstHeight <= 0 {
		return fmt.Errorf("%w: %s %dx%d", ErrEmptyOperation, op, call.Width, call.Height)
	}
	if src.Closed() || dst.Closed() {
		return ErrClosed
	}
	call.Key = engine.Key{Op: op, Src: src.Format(), Dst: dst.Format()}
	if !c.engine.Supports(call.Key) {
		return fmt.Errorf("%w: %s", ErrUnsupported, call.Key)
	}
	var err error
	if call.Src, err = planeArgs(src); err != nil {
		return err
	}
	if call.Dst, err = planeArgs(dst); err != nil {
		return err
	}
	Logger().Debug("yuv: dispatch",
		slog.String("key", call.Key.String()),
		slog.Int("width", call.Width),
		slog.Int("height", call.Height),
		slog.Int("dstWidth", call.DstWidth),
		slog.Int("dstHeight", call.DstHeight),
		slog.Int("mode", call.Mode))
	c.engine.Invoke(call)
	return nil
}

// planeArgs translates the crop origin of b into a byte offset within each
// plane, honoring the plane's subsampling.
func planeArgs(b Buffer) ([]engine.PlaneArg, error) {
	planes := b.Planes()
	if len(planes) != b.Format().NumPlanes() {
		return nil, fmt.Errorf("%w: %s has %d", ErrPlaneCount, b.Format(), len(planes))
	}
	origin := b.CropRect().Min
	args := make([]engine.PlaneArg, len(planes))
	for i, p := range planes {
		data := p.Bytes()
		if data == nil {
			return nil, ErrClosed
		}
		g := b.Format().Plane(i)
		args[i] = engine.PlaneArg{
			Data:   data,
			Stride: p.RowStride(),
			Offset: (origin.Y>>g.ShiftY)*p.RowStride() + (origin.X>>g.ShiftX)*g.BytesPerElement,
		}
	}
	return args, nil
}

func minSize(a, b image.Rectangle) (int, int) {
	return min(a.Dx(), b.Dx()), min(a.Dy(), b.Dy())
}

var defaultConverter atomic.Pointer[Converter]

// SetEngine replaces the engine used by the package-level operations and the
// buffer methods. Passing nil restores the engine selected by YUV_ENGINE.
func SetEngine(e engine.Engine) {
	if e == nil {
		e = engineFromEnv()
	}
	defaultConverter.Store(NewConverter(e))
}

// DefaultEngine returns the engine used by the package-level operations.
func DefaultEngine() engine.Engine {
	return defaultConverter.Load().engine
}

func defaultConv() *Converter {
	return defaultConverter.Load()
}

func Convert(src, dst Buffer) error {
	return defaultConv().Convert(src, dst)
}

func Mirror(src, dst Buffer) error {
	return defaultConv().Mirror(src, dst)
}

func Rotate(src, dst Buffer, mode RotateMode) error {
	return defaultConv().Rotate(src, dst, mode)
}

func Scale(src, dst Buffer, filter FilterMode) error {
	return defaultConv().Scale(src, dst, filter)
}
