package projection

import (
	"math"

	"github.com/rgarcia/sphereproj/internal/grid"
)

// Stereographic projects from the point antipodal to the center onto the
// tangent plane. Conformal; defined everywhere except the antipode itself.
type Stereographic struct {
	r       float64
	phi0    float64
	lam0    float64
	sinPhi0 float64
	cosPhi0 float64
}

// NewStereographic builds the stereographic strategy from a validated config.
func NewStereographic(cfg Config) (Strategy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	phi0 := cfg.CenterLat * math.Pi / 180.0
	sin0, cos0 := math.Sincos(phi0)
	return &Stereographic{
		r:       cfg.R,
		phi0:    phi0,
		lam0:    cfg.CenterLon * math.Pi / 180.0,
		sinPhi0: sin0,
		cosPhi0: cos0,
	}, nil
}

func (s *Stereographic) SphericalToProjection(lat, lon *grid.Grid) (*grid.Grid, *grid.Grid, *grid.Mask, error) {
	if err := checkShapes(lat, lon); err != nil {
		return nil, nil, nil, err
	}
	x := grid.New(lat.W, lat.H)
	y := grid.New(lat.W, lat.H)
	mask := grid.NewMask(lat.W, lat.H)

	for i := range lat.Data {
		sinPhi, cosPhi := sincosDeg(lat.Data[i])
		sinDL, cosDL := math.Sincos(lon.Data[i]*math.Pi/180.0 - s.lam0)

		denom := 1 + s.sinPhi0*sinPhi + s.cosPhi0*cosPhi*cosDL
		if denom < boundaryEps {
			mask.Data[i] = false
			denom = tiny
		}
		k := 2 * s.r / denom
		x.Data[i] = k * cosPhi * sinDL
		y.Data[i] = k * (s.cosPhi0*sinPhi - s.sinPhi0*cosPhi*cosDL)
	}
	return x, y, mask, nil
}

func (s *Stereographic) ProjectionToSpherical(x, y *grid.Grid) (*grid.Grid, *grid.Grid, error) {
	if err := checkShapes(x, y); err != nil {
		return nil, nil, err
	}
	lat := grid.New(x.W, x.H)
	lon := grid.New(x.W, x.H)

	for i := range x.Data {
		xv, yv := x.Data[i], y.Data[i]
		rho := math.Hypot(xv, yv)
		if rho < tiny {
			lat.Data[i] = s.phi0 * 180.0 / math.Pi
			lon.Data[i] = s.lam0 * 180.0 / math.Pi
			continue
		}
		c := 2 * math.Atan(rho/(2*s.r))
		sinC, cosC := math.Sincos(c)

		phi := math.Asin(cosC*s.sinPhi0 + yv*sinC*s.cosPhi0/rho)
		lam := s.lam0 + math.Atan2(xv*sinC, rho*s.cosPhi0*cosC-yv*s.sinPhi0*sinC)

		lat.Data[i] = phi * 180.0 / math.Pi
		lon.Data[i] = lam * 180.0 / math.Pi
	}
	return lat, lon, nil
}

// stereographicExtent bounds the plane at rho = 2R*tan(fov/4): the radius
// of the circle at angular distance fov/2 from the center.
func stereographicExtent(cfg Config) Extent {
	half := 2 * cfg.R * math.Tan(cfg.FOV/4*math.Pi/180.0)
	return Extent{XMin: -half, XMax: half, YMin: -half, YMax: half}
}

// StereographicBundle assembles the registry entry for the stereographic
// family.
func StereographicBundle() Bundle {
	return Bundle{
		Defaults:       defaultConfig(),
		NewStrategy:    NewStereographic,
		NewGrids:       extentGrids(stereographicExtent),
		NewTransformer: extentTransformer(stereographicExtent),
	}
}
