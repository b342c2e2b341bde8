// Package grid provides dense row-major 2-D arrays of float64 samples and
// boolean masks, the in-memory form of coordinate grids and pixel maps.
package grid

import "fmt"

// Grid is a W x H array of float64 values stored row-major: index (col, row)
// lives at row*W + col.
type Grid struct {
	W, H int
	Data []float64
}

// New allocates a zeroed grid. Dimensions must be positive.
func New(w, h int) *Grid {
	return &Grid{W: w, H: h, Data: make([]float64, w*h)}
}

// At returns the value at column x, row y.
func (g *Grid) At(x, y int) float64 { return g.Data[y*g.W+x] }

// Set stores v at column x, row y.
func (g *Grid) Set(x, y int, v float64) { g.Data[y*g.W+x] = v }

// SameShape reports whether g and o have identical dimensions.
func (g *Grid) SameShape(o *Grid) bool { return g.W == o.W && g.H == o.H }

func (g *Grid) String() string { return fmt.Sprintf("grid %dx%d", g.W, g.H) }

// Mask is a W x H boolean array, true where a mapping is defined.
type Mask struct {
	W, H int
	Data []bool
}

// NewMask allocates a mask with every cell set to valid.
func NewMask(w, h int) *Mask {
	m := &Mask{W: w, H: h, Data: make([]bool, w*h)}
	for i := range m.Data {
		m.Data[i] = true
	}
	return m
}

// At returns the mask value at column x, row y.
func (m *Mask) At(x, y int) bool { return m.Data[y*m.W+x] }

// Set stores v at column x, row y.
func (m *Mask) Set(x, y int, v bool) { m.Data[y*m.W+x] = v }

// Count returns the number of valid cells.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.Data {
		if v {
			n++
		}
	}
	return n
}

// Linspace returns n uniformly spaced samples from start to stop inclusive.
// n must be at least 1; a single sample sits at start.
func Linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	// Pin the endpoint to avoid accumulated rounding at the boundary.
	out[n-1] = stop
	return out
}

// Mesh builds the coordinate grids for the cartesian product of xs and ys:
// gx varies along columns, gy along rows. Both results are len(xs) wide and
// len(ys) tall.
func Mesh(xs, ys []float64) (gx, gy *Grid) {
	w, h := len(xs), len(ys)
	gx = New(w, h)
	gy = New(w, h)
	for iy, y := range ys {
		row := iy * w
		for ix, x := range xs {
			gx.Data[row+ix] = x
			gy.Data[row+ix] = y
		}
	}
	return gx, gy
}
