package projection

import (
	"math"

	"github.com/rgarcia/sphereproj/internal/grid"
)

// maxMercatorLat caps the conformal stretch: latitudes at or beyond 90
// degrees are masked, and masked cells are clamped here so the formulas
// stay finite. Matches the gnomonic masking convention rather than silent
// clamping.
const maxMercatorLat = 90.0 - 1e-9

// Mercator is the normal-aspect cylindrical conformal projection on the
// sphere: x = R*k0*dlam, y = R*k0*ln tan(pi/4 + phi/2).
type Mercator struct {
	rk0  float64
	lam0 float64
}

// NewMercator builds the Mercator strategy from a validated config.
func NewMercator(cfg Config) (Strategy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Mercator{
		rk0:  cfg.R * cfg.ScaleK0,
		lam0: cfg.CenterLon * math.Pi / 180.0,
	}, nil
}

func (m *Mercator) SphericalToProjection(lat, lon *grid.Grid) (*grid.Grid, *grid.Grid, *grid.Mask, error) {
	if err := checkShapes(lat, lon); err != nil {
		return nil, nil, nil, err
	}
	x := grid.New(lat.W, lat.H)
	y := grid.New(lat.W, lat.H)
	mask := grid.NewMask(lat.W, lat.H)

	for i := range lat.Data {
		phiDeg := lat.Data[i]
		if phiDeg >= 90 || phiDeg <= -90 {
			mask.Data[i] = false
			phiDeg = math.Copysign(maxMercatorLat, phiDeg)
		}
		phi := phiDeg * math.Pi / 180.0
		dlam := lon.Data[i]*math.Pi/180.0 - m.lam0

		x.Data[i] = m.rk0 * dlam
		y.Data[i] = m.rk0 * math.Log(math.Tan(math.Pi/4+phi/2))
	}
	return x, y, mask, nil
}

func (m *Mercator) ProjectionToSpherical(x, y *grid.Grid) (*grid.Grid, *grid.Grid, error) {
	if err := checkShapes(x, y); err != nil {
		return nil, nil, err
	}
	lat := grid.New(x.W, x.H)
	lon := grid.New(x.W, x.H)

	for i := range x.Data {
		phi := 2*math.Atan(math.Exp(y.Data[i]/m.rk0)) - math.Pi/2
		lam := m.lam0 + x.Data[i]/m.rk0

		lat.Data[i] = phi * 180.0 / math.Pi
		lon.Data[i] = lam * 180.0 / math.Pi
	}
	return lat, lon, nil
}

// mercatorY is the conformal ordinate of a latitude in degrees, per unit
// R*k0.
func mercatorY(latDeg float64) float64 {
	if latDeg > maxMercatorLat {
		latDeg = maxMercatorLat
	} else if latDeg < -maxMercatorLat {
		latDeg = -maxMercatorLat
	}
	return math.Log(math.Tan(math.Pi/4 + latDeg*math.Pi/360.0))
}

// mercatorExtent follows the configured geographic bounds: x spans the
// longitude window around the center, y the conformal ordinates of the
// latitude window.
func mercatorExtent(cfg Config) Extent {
	rk0 := cfg.R * cfg.ScaleK0
	return Extent{
		XMin: rk0 * (cfg.LonMin() - cfg.CenterLon) * math.Pi / 180.0,
		XMax: rk0 * (cfg.LonMax() - cfg.CenterLon) * math.Pi / 180.0,
		YMin: rk0 * mercatorY(cfg.LatMin()),
		YMax: rk0 * mercatorY(cfg.LatMax()),
	}
}

// MercatorBundle assembles the registry entry for the Mercator family.
// Its default bounds stop at +/-85 degrees, where the conformal stretch is
// still reasonable.
func MercatorBundle() Bundle {
	cfg := defaultConfig()
	WithBounds(-180, -85, 180, 85)(&cfg)
	return Bundle{
		Defaults:       cfg,
		NewStrategy:    NewMercator,
		NewGrids:       extentGrids(mercatorExtent),
		NewTransformer: extentTransformer(mercatorExtent),
	}
}
