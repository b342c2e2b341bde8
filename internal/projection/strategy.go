// Package projection implements the transformation engine that converts
// raster images between an equirectangular representation and a family of
// planar map projections, in both directions. The sphere is the only
// supported Earth model; its radius is configurable.
//
// A projection family contributes a Strategy (the spherical/planar math),
// a GridGenerator (the sample grids it is evaluated on), and a Transformer
// (the coordinate-to-pixel mapping). The Registry binds those into named
// bundles; the Processor drives a bundle end to end.
package projection

import (
	"math"

	"github.com/rgarcia/sphereproj/internal/grid"
)

// Strategy is the spherical/planar coordinate math of one projection
// family. Both directions are pure functions over the input grids.
type Strategy interface {
	// SphericalToProjection maps latitude/longitude grids (degrees) to
	// planar x/y grids in units of the sphere radius. The mask is false
	// where the mapping is mathematically undefined; masked cells still
	// carry finite x/y values.
	SphericalToProjection(lat, lon *grid.Grid) (x, y *grid.Grid, mask *grid.Mask, err error)

	// ProjectionToSpherical maps planar x/y grids back to latitude and
	// longitude in degrees. It is the exact inverse of
	// SphericalToProjection on the interior of the valid domain.
	// Out-of-range inputs produce coordinates outside the normal ranges;
	// callers wrap or clamp as needed.
	ProjectionToSpherical(x, y *grid.Grid) (lat, lon *grid.Grid, err error)
}

// Extent is the planar window a projection naturally covers, in units of
// the sphere radius. Grid generation and pixel mapping share it.
type Extent struct {
	XMin, XMax float64
	YMin, YMax float64
}

// tiny substitutes for zero denominators at masked cells so the formulas
// stay finite without branching on validity.
const tiny = 1e-12

// boundaryEps is the noise floor for domain-boundary tests: trig of
// angles that are exactly on a singularity in real arithmetic lands
// within ~1e-16 of it in floats.
const boundaryEps = 1e-10

// checkShapes rejects mismatched input grids before any math runs.
func checkShapes(a, b *grid.Grid) error {
	if a == nil || b == nil || !a.SameShape(b) {
		return inputErr("gridShape", "input grids must share one shape")
	}
	return nil
}

// sincosDeg returns sin and cos of an angle given in degrees.
func sincosDeg(deg float64) (sin, cos float64) {
	return math.Sincos(deg * math.Pi / 180.0)
}
