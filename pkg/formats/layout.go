package formats

// PlaneLayout is the stride and capacity of one plane.
type PlaneLayout struct {
	Stride   int
	Rows     int
	Capacity int
}

// Layout holds the per-plane layout for a width and height.
type Layout struct {
	Format Format
	Width  int
	Height int
	Planes []PlaneLayout
}

// Layout computes the plane strides and capacities for a width x height image.
// Subsampled dimensions round up, so a 5x5 I420 image has 3x3 chroma planes.
func (f Format) Layout(width, height int) Layout {
	l := Layout{Format: f, Width: width, Height: height}
	if width <= 0 || height <= 0 {
		return l
	}
	for _, g := range f.info().planes {
		stride := g.Columns(width) * g.BytesPerElement
		rows := g.Rows(height)
		l.Planes = append(l.Planes, PlaneLayout{
			Stride:   stride,
			Rows:     rows,
			Capacity: stride * rows,
		})
	}
	return l
}

// Capacities returns the capacity of each plane in order.
func (l Layout) Capacities() []int {
	out := make([]int, len(l.Planes))
	for i, p := range l.Planes {
		out[i] = p.Capacity
	}
	return out
}

// Total returns the sum of all plane capacities.
func (l Layout) Total() int {
	n := 0
	for _, p := range l.Planes {
		n += p.Capacity
	}
	return n
}
