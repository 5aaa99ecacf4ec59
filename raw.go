package yuv

import (
	"errors"
	"fmt"
	"io"

	"github.com/kevmo314/go-yuv/pkg/formats"
)

// ReadFrame reads one tightly packed frame of format f from r into a newly
// allocated buffer. Planes are read in order with no padding between rows,
// the layout raw .yuv dumps use.
func ReadFrame(r io.Reader, f formats.Format, width, height int, opts ...Option) (Buffer, error) {
	b, err := Allocate(f, width, height, opts...)
	if err != nil {
		return nil, err
	}
	l := f.Layout(width, height)
	for i, p := range b.Planes() {
		for y := 0; y < l.Planes[i].Rows; y++ {
			if _, err := io.ReadFull(r, p.Row(y, l.Planes[i].Stride)); err != nil {
				err = fmt.Errorf("reading %s plane %d row %d: %w", f, i, y, err)
				return nil, errors.Join(err, b.Close())
			}
		}
	}
	return b, nil
}

// WriteFrame writes the full frame of b to w in the layout ReadFrame reads,
// dropping any row padding.
func WriteFrame(w io.Writer, b Buffer) error {
	if b.Closed() {
		return ErrClosed
	}
	l := b.Format().Layout(b.Width(), b.Height())
	for i, p := range b.Planes() {
		for y := 0; y < l.Planes[i].Rows; y++ {
			row := p.Row(y, l.Planes[i].Stride)
			if row == nil {
				return fmt.Errorf("%w: %s plane %d row %d", ErrShortRegion, b.Format(), i, y)
			}
			if _, err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}
