package yuv

import (
	"errors"

	"github.com/kevmo314/go-yuv/pkg/memory"
)

var (
	ErrNotAddressable    = memory.ErrNotAddressable
	ErrShortRegion       = memory.ErrShortRegion
	ErrInvalidDimensions = errors.New("invalid dimensions")
	ErrCropOutOfBounds   = errors.New("crop rectangle out of bounds")
	ErrEmptyOperation    = errors.New("empty operating size")
	ErrUnsupported       = errors.New("unsupported by engine")
	ErrInvalidRotation   = errors.New("invalid rotation mode")
	ErrPlaneCount        = errors.New("wrong number of planes")
	ErrClosed            = errors.New("buffer closed")
)
