//go:build !(cgo && libyuv)

package libyuv

import "github.com/kevmo314/go-yuv/pkg/engine"

func New() (engine.Engine, error) {
	return nil, ErrUnavailable
}

// Version reports the linked libyuv version, or 0 when the binding is not
// compiled in.
func Version() int {
	return 0
}
