// Package enginetest provides an engine that records calls instead of
// touching pixels, for testing argument construction.
package enginetest

import "github.com/kevmo314/go-yuv/pkg/engine"

// Recorder supports every key unless Only is set, in which case it supports
// exactly the keys listed there.
type Recorder struct {
	Only  map[engine.Key]bool
	Calls []engine.Call
}

func (r *Recorder) Supports(k engine.Key) bool {
	if r.Only == nil {
		return true
	}
	return r.Only[k]
}

func (r *Recorder) Invoke(c *engine.Call) {
	r.Calls = append(r.Calls, *c)
}

// Last returns the most recent call, or nil if none was recorded.
func (r *Recorder) Last() *engine.Call {
	if len(r.Calls) == 0 {
		return nil
	}
	return &r.Calls[len(r.Calls)-1]
}

func (r *Recorder) Reset() {
	r.Calls = nil
}
