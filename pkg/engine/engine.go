// Package engine defines the call contract between buffers and a pixel
// conversion engine.
//
// An engine is a set of functions keyed by operation, source format and
// destination format. Each call carries, for every plane involved, the plane
// memory, its row stride and the byte offset of the first pixel, together with
// the operating dimensions. Engines run synchronously and never fail; callers
// are responsible for passing in-bounds arguments.
package engine

import (
	"fmt"

	"github.com/kevmo314/go-yuv/pkg/formats"
)

type Op uint8

const (
	OpConvert Op = iota + 1
	OpMirror
	OpRotate
	OpScale
)

func (o Op) String() string {
	switch o {
	case OpConvert:
		return "convert"
	case OpMirror:
		return "mirror"
	case OpRotate:
		return "rotate"
	case OpScale:
		return "scale"
	default:
		return fmt.Sprintf("Op(%d)", uint8(o))
	}
}

// Key selects an engine entry point.
type Key struct {
	Op  Op
	Src formats.Format
	Dst formats.Format
}

func (k Key) String() string {
	return fmt.Sprintf("%s %s->%s", k.Op, k.Src, k.Dst)
}

// PlaneArg describes one plane handed to the engine. The first pixel of the
// operating region is Data[Offset].
type PlaneArg struct {
	Data   []byte
	Stride int
	Offset int
}

// Call is a fully constructed engine invocation.
//
// Convert and mirror use Width x Height for both operands. Rotate reads a
// Width x Height source and writes a DstWidth x DstHeight destination, which
// is transposed for 90 and 270 degrees. Scale reads SrcWidth x SrcHeight and
// writes DstWidth x DstHeight. Mode carries the rotation in degrees or the
// scale filter.
type Call struct {
	Key
	Src, Dst            []PlaneArg
	Width, Height       int
	SrcWidth, SrcHeight int
	DstWidth, DstHeight int
	Mode                int
}

type Engine interface {
	Supports(k Key) bool
	Invoke(c *Call)
}

// Func is a single engine entry point.
type Func func(c *Call)

// Table is an Engine backed by a map of entry points.
type Table map[Key]Func

func (t Table) Supports(k Key) bool {
	_, ok := t[k]
	return ok
}

func (t Table) Invoke(c *Call) {
	fn, ok := t[c.Key]
	if !ok {
		panic(fmt.Sprintf("engine: no entry for %s", c.Key))
	}
	fn(c)
}

// Keys returns every key registered in the table.
func (t Table) Keys() []Key {
	keys := make([]Key, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	return keys
}

// Chain tries each engine in order and uses the first that supports a key.
type Chain []Engine

func (c Chain) Supports(k Key) bool {
	for _, e := range c {
		if e.Supports(k) {
			return true
		}
	}
	return false
}

func (c Chain) Invoke(call *Call) {
	for _, e := range c {
		if e.Supports(call.Key) {
			e.Invoke(call)
			return
		}
	}
	panic(fmt.Sprintf("engine: no entry for %s", call.Key))
}
