// Package testpattern draws synthetic frames for the command line tools.
package testpattern

import (
	"image"
	"image/color"

	"github.com/kevmo314/go-yuv"
)

// Bars are the seven 75% SMPTE colour bars from left to right.
var Bars = []color.RGBA{
	{191, 191, 191, 255},
	{191, 191, 0, 255},
	{0, 191, 191, 255},
	{0, 191, 0, 255},
	{191, 0, 191, 255},
	{191, 0, 0, 255},
	{0, 0, 191, 255},
}

// I420 returns a frame with colour bars in the top two thirds and a
// horizontal luma ramp below them.
func I420(width, height int) (*yuv.I420Buffer, error) {
	b, err := yuv.I420.Allocate(width, height)
	if err != nil {
		return nil, err
	}
	Fill(b)
	return b, nil
}

// Fill draws the pattern into the crop rectangle of b.
func Fill(b yuv.PlanarBuffer) {
	r := b.CropRect()
	w, h := r.Dx(), r.Dy()
	split := h * 2 / 3
	b.PlaneU().SetValue(chroma(b, r), 0x80)
	b.PlaneV().SetValue(chroma(b, r), 0x80)
	for i, c := range Bars {
		x0, x1 := r.Min.X+i*w/len(Bars), r.Min.X+(i+1)*w/len(Bars)
		y, cb, cr := color.RGBToYCbCr(c.R, c.G, c.B)
		b.PlaneY().SetValue(image.Rect(x0, r.Min.Y, x1, r.Min.Y+split), y)
		cell := chroma(b, image.Rect(x0, r.Min.Y, x1, r.Min.Y+split))
		b.PlaneU().SetValue(cell, cb)
		b.PlaneV().SetValue(cell, cr)
	}
	for x := 0; x < w; x++ {
		v := byte(x * 255 / max(w-1, 1))
		b.PlaneY().SetValue(image.Rect(r.Min.X+x, r.Min.Y+split, r.Min.X+x+1, r.Max.Y), v)
	}
}

// chroma maps a luma rectangle onto the subsampled chroma grid.
func chroma(b yuv.Buffer, r image.Rectangle) image.Rectangle {
	g := b.Format().Plane(1)
	return image.Rect(r.Min.X>>g.ShiftX, r.Min.Y>>g.ShiftY, g.Columns(r.Max.X), g.Rows(r.Max.Y))
}
