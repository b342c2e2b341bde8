package projection

import (
	"math"

	"github.com/rgarcia/sphereproj/internal/grid"
)

// Gnomonic projects from the sphere's center onto a plane tangent at the
// configured center. Great circles map to straight lines; only the
// hemisphere within 90 degrees of the tangent point is defined. The one
// oblique formula covers the polar (center latitude +/-90) and equatorial
// (center latitude 0) aspects as limiting cases.
type Gnomonic struct {
	r       float64
	phi1    float64 // center latitude, radians
	lam0    float64 // center longitude, radians
	sinPhi1 float64
	cosPhi1 float64
}

// NewGnomonic builds the gnomonic strategy from a validated config.
func NewGnomonic(cfg Config) (Strategy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	phi1 := cfg.CenterLat * math.Pi / 180.0
	sin1, cos1 := math.Sincos(phi1)
	return &Gnomonic{
		r:       cfg.R,
		phi1:    phi1,
		lam0:    cfg.CenterLon * math.Pi / 180.0,
		sinPhi1: sin1,
		cosPhi1: cos1,
	}, nil
}

// SphericalToProjection applies the forward gnomonic map. Points at or
// beyond 90 degrees angular distance from the center (cos c <= 0) are
// masked; their planar values stay finite through an epsilon denominator.
func (g *Gnomonic) SphericalToProjection(lat, lon *grid.Grid) (*grid.Grid, *grid.Grid, *grid.Mask, error) {
	if err := checkShapes(lat, lon); err != nil {
		return nil, nil, nil, err
	}
	x := grid.New(lat.W, lat.H)
	y := grid.New(lat.W, lat.H)
	mask := grid.NewMask(lat.W, lat.H)

	for i := range lat.Data {
		sinPhi, cosPhi := sincosDeg(lat.Data[i])
		sinDL, cosDL := math.Sincos(lon.Data[i]*math.Pi/180.0 - g.lam0)

		cosC := g.sinPhi1*sinPhi + g.cosPhi1*cosPhi*cosDL
		// Rounding leaves points at exactly 90 degrees with cos c of
		// order 1e-16; treat anything below the noise floor as outside.
		if cosC < boundaryEps {
			mask.Data[i] = false
			cosC = tiny
		}
		k := g.r / cosC
		x.Data[i] = k * cosPhi * sinDL
		y.Data[i] = k * (g.cosPhi1*sinPhi - g.sinPhi1*cosPhi*cosDL)
	}
	return x, y, mask, nil
}

// ProjectionToSpherical applies the inverse gnomonic map. The plane origin
// returns the projection center (longitude is undefined there); the polar
// aspects use their closed-form longitude to avoid the degenerate division
// in the oblique formula.
func (g *Gnomonic) ProjectionToSpherical(x, y *grid.Grid) (*grid.Grid, *grid.Grid, error) {
	if err := checkShapes(x, y); err != nil {
		return nil, nil, err
	}
	lat := grid.New(x.W, x.H)
	lon := grid.New(x.W, x.H)

	northPolar := g.phi1 > math.Pi/2-1e-9
	southPolar := g.phi1 < -math.Pi/2+1e-9

	for i := range x.Data {
		xv, yv := x.Data[i], y.Data[i]
		rho := math.Hypot(xv, yv)
		if rho < tiny {
			lat.Data[i] = g.phi1 * 180.0 / math.Pi
			lon.Data[i] = g.lam0 * 180.0 / math.Pi
			continue
		}
		c := math.Atan(rho / g.r)
		sinC, cosC := math.Sincos(c)

		phi := math.Asin(cosC*g.sinPhi1 + yv*sinC*g.cosPhi1/rho)

		var lam float64
		switch {
		case northPolar:
			lam = g.lam0 + math.Atan2(xv, -yv)
		case southPolar:
			lam = g.lam0 + math.Atan2(xv, yv)
		default:
			lam = g.lam0 + math.Atan2(xv*sinC, rho*g.cosPhi1*cosC-yv*g.sinPhi1*sinC)
		}

		lat.Data[i] = phi * 180.0 / math.Pi
		lon.Data[i] = lam * 180.0 / math.Pi
	}
	return lat, lon, nil
}

// gnomonicExtent bounds the tangent plane at +/- R*tan(fov/2).
func gnomonicExtent(cfg Config) Extent {
	half := cfg.R * math.Tan(cfg.FOV/2*math.Pi/180.0)
	return Extent{XMin: -half, XMax: half, YMin: -half, YMax: half}
}

// GnomonicBundle assembles the registry entry for the gnomonic family.
func GnomonicBundle() Bundle {
	return Bundle{
		Defaults:       defaultConfig(),
		NewStrategy:    NewGnomonic,
		NewGrids:       extentGrids(gnomonicExtent),
		NewTransformer: extentTransformer(gnomonicExtent),
	}
}
