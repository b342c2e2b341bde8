package projection

import (
	"math"

	"github.com/rgarcia/sphereproj/internal/grid"
)

// AzimuthalEquidistant preserves distance and direction from the center:
// rho = R*c. Defined everywhere except the exact antipode.
type AzimuthalEquidistant struct {
	r       float64
	phi1    float64
	lam0    float64
	sinPhi1 float64
	cosPhi1 float64
}

// NewAzimuthalEquidistant builds the azimuthal equidistant strategy from a
// validated config.
func NewAzimuthalEquidistant(cfg Config) (Strategy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	phi1 := cfg.CenterLat * math.Pi / 180.0
	sin1, cos1 := math.Sincos(phi1)
	return &AzimuthalEquidistant{
		r:       cfg.R,
		phi1:    phi1,
		lam0:    cfg.CenterLon * math.Pi / 180.0,
		sinPhi1: sin1,
		cosPhi1: cos1,
	}, nil
}

func (a *AzimuthalEquidistant) SphericalToProjection(lat, lon *grid.Grid) (*grid.Grid, *grid.Grid, *grid.Mask, error) {
	if err := checkShapes(lat, lon); err != nil {
		return nil, nil, nil, err
	}
	x := grid.New(lat.W, lat.H)
	y := grid.New(lat.W, lat.H)
	mask := grid.NewMask(lat.W, lat.H)

	for i := range lat.Data {
		sinPhi, cosPhi := sincosDeg(lat.Data[i])
		sinDL, cosDL := math.Sincos(lon.Data[i]*math.Pi/180.0 - a.lam0)

		cosC := a.sinPhi1*sinPhi + a.cosPhi1*cosPhi*cosDL
		c := math.Acos(clampUnit(cosC))

		// k = c/sin(c); the center (c=0) has limit 1, the antipode
		// (c=pi) is undefined.
		var k float64
		switch {
		case c < tiny:
			k = 1
		case c > math.Pi-1e-9:
			mask.Data[i] = false
			k = c / tiny
		default:
			k = c / math.Sin(c)
		}
		x.Data[i] = a.r * k * cosPhi * sinDL
		y.Data[i] = a.r * k * (a.cosPhi1*sinPhi - a.sinPhi1*cosPhi*cosDL)
	}
	return x, y, mask, nil
}

func (a *AzimuthalEquidistant) ProjectionToSpherical(x, y *grid.Grid) (*grid.Grid, *grid.Grid, error) {
	if err := checkShapes(x, y); err != nil {
		return nil, nil, err
	}
	lat := grid.New(x.W, x.H)
	lon := grid.New(x.W, x.H)

	for i := range x.Data {
		xv, yv := x.Data[i], y.Data[i]
		rho := math.Hypot(xv, yv)
		if rho < tiny {
			lat.Data[i] = a.phi1 * 180.0 / math.Pi
			lon.Data[i] = a.lam0 * 180.0 / math.Pi
			continue
		}
		c := rho / a.r
		sinC, cosC := math.Sincos(c)

		phi := math.Asin(clampUnit(cosC*a.sinPhi1 + yv*sinC*a.cosPhi1/rho))
		lam := a.lam0 + math.Atan2(xv*sinC, rho*a.cosPhi1*cosC-yv*a.sinPhi1*sinC)

		lat.Data[i] = phi * 180.0 / math.Pi
		lon.Data[i] = lam * 180.0 / math.Pi
	}
	return lat, lon, nil
}

// azimuthalExtent bounds the plane at rho = R * (fov/2 in radians).
func azimuthalExtent(cfg Config) Extent {
	half := cfg.R * cfg.FOV / 2 * math.Pi / 180.0
	return Extent{XMin: -half, XMax: half, YMin: -half, YMax: half}
}

// AzimuthalEquidistantBundle assembles the registry entry for the
// azimuthal equidistant family.
func AzimuthalEquidistantBundle() Bundle {
	return Bundle{
		Defaults:       defaultConfig(),
		NewStrategy:    NewAzimuthalEquidistant,
		NewGrids:       extentGrids(azimuthalExtent),
		NewTransformer: extentTransformer(azimuthalExtent),
	}
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
