package engine

import (
	"fmt"
	"strings"
)

// RotateMode is a clockwise rotation in degrees.
type RotateMode int

const (
	Rotate0   RotateMode = 0
	Rotate90  RotateMode = 90
	Rotate180 RotateMode = 180
	Rotate270 RotateMode = 270
)

func (m RotateMode) Valid() bool {
	switch m {
	case Rotate0, Rotate90, Rotate180, Rotate270:
		return true
	}
	return false
}

// Transposes reports whether the rotation swaps width and height.
func (m RotateMode) Transposes() bool {
	return m == Rotate90 || m == Rotate270
}

// FilterMode selects the resampling filter for scaling. The values match
// libyuv's enum FilterMode.
type FilterMode int

const (
	FilterNone FilterMode = iota
	FilterLinear
	FilterBilinear
	FilterBox
)

func (f FilterMode) String() string {
	switch f {
	case FilterNone:
		return "NONE"
	case FilterLinear:
		return "LINEAR"
	case FilterBilinear:
		return "BILINEAR"
	case FilterBox:
		return "BOX"
	default:
		return fmt.Sprintf("FilterMode(%d)", int(f))
	}
}

// ParseFilterMode accepts NONE, LINEAR, BILINEAR or BOX in any case.
func ParseFilterMode(s string) (FilterMode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE":
		return FilterNone, nil
	case "LINEAR":
		return FilterLinear, nil
	case "BILINEAR":
		return FilterBilinear, nil
	case "BOX":
		return FilterBox, nil
	}
	return FilterNone, fmt.Errorf("unknown filter mode %q", s)
}
