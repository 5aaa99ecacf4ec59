// Package libyuv binds the libyuv conversion library as an engine.
//
// The binding is compiled only with cgo and the libyuv build tag, for
// example
//
//	go build -tags libyuv ./...
//
// Without the tag New returns ErrUnavailable and callers fall back to the
// soft engine.
package libyuv

import "errors"

var ErrUnavailable = errors.New("libyuv: not compiled in, build with -tags libyuv")
