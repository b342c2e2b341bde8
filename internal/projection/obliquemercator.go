package projection

import (
	"math"

	"github.com/rgarcia/sphereproj/internal/grid"
	"github.com/rgarcia/sphereproj/internal/sphere"
)

// ObliqueMercator wraps the cylinder around an arbitrary great circle,
// given by a center point and an azimuth east of north (Snyder, USGS
// Professional Paper 1395). Coordinates are rotated into the auxiliary
// pole-relative system, run through the regular cylindrical formulas, and
// rotated back. The two auxiliary poles are the singular points.
type ObliqueMercator struct {
	rk0  float64
	pole sphere.Pole
}

// NewObliqueMercator builds the oblique Mercator strategy from a validated
// config.
func NewObliqueMercator(cfg Config) (Strategy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pole := sphere.PoleFromCenterAzimuth(
		sphere.Radians(cfg.CenterLat),
		sphere.Radians(cfg.CenterLon),
		sphere.Radians(cfg.Azimuth),
	)
	return &ObliqueMercator{rk0: cfg.R * cfg.ScaleK0, pole: pole}, nil
}

func (o *ObliqueMercator) SphericalToProjection(lat, lon *grid.Grid) (*grid.Grid, *grid.Grid, *grid.Mask, error) {
	if err := checkShapes(lat, lon); err != nil {
		return nil, nil, nil, err
	}
	x := grid.New(lat.W, lat.H)
	y := grid.New(lat.W, lat.H)
	mask := grid.NewMask(lat.W, lat.H)

	for i := range lat.Data {
		h, alpha := o.pole.ToAuxiliary(sphere.Radians(lat.Data[i]), sphere.Radians(lon.Data[i]))

		sinH := math.Sin(h)
		if sinH >= 1-1e-12 || sinH <= -1+1e-12 {
			mask.Data[i] = false
			sinH = math.Copysign(1-tiny, sinH)
		}
		x.Data[i] = o.rk0 * alpha
		y.Data[i] = o.rk0 * math.Atanh(sinH)
	}
	return x, y, mask, nil
}

func (o *ObliqueMercator) ProjectionToSpherical(x, y *grid.Grid) (*grid.Grid, *grid.Grid, error) {
	if err := checkShapes(x, y); err != nil {
		return nil, nil, err
	}
	lat := grid.New(x.W, x.H)
	lon := grid.New(x.W, x.H)

	for i := range x.Data {
		alpha := x.Data[i] / o.rk0
		h := math.Asin(math.Tanh(y.Data[i] / o.rk0))

		phi, lam := o.pole.FromAuxiliary(h, alpha)
		lat.Data[i] = sphere.Degrees(phi)
		lon.Data[i] = sphere.Degrees(sphere.WrapLon(lam))
	}
	return lat, lon, nil
}

// obliqueMercatorExtent spans the full central line in x and bounds y by
// the field of view applied to the auxiliary latitude; finite for any
// fov < 180.
func obliqueMercatorExtent(cfg Config) Extent {
	rk0 := cfg.R * cfg.ScaleK0
	yHalf := rk0 * math.Atanh(math.Sin(cfg.FOV/2*math.Pi/180.0))
	return Extent{
		XMin: -rk0 * math.Pi,
		XMax: rk0 * math.Pi,
		YMin: -yHalf,
		YMax: yHalf,
	}
}

// ObliqueMercatorBundle assembles the registry entry for the oblique
// Mercator family. Defaults follow Snyder's example central line.
func ObliqueMercatorBundle() Bundle {
	cfg := defaultConfig()
	WithCenter(40, -100)(&cfg)
	WithAzimuth(30)(&cfg)
	WithBounds(-180, -85, 180, 85)(&cfg)
	return Bundle{
		Defaults:       cfg,
		NewStrategy:    NewObliqueMercator,
		NewGrids:       extentGrids(obliqueMercatorExtent),
		NewTransformer: extentTransformer(obliqueMercatorExtent),
	}
}
