package projection

import (
	"image/color"

	"github.com/paulmach/orb"

	"github.com/rgarcia/sphereproj/internal/remap"
)

// Config is the validated parameter set for one processing session. It is a
// plain value: constructed once via a bundle's defaults plus options,
// checked by Validate, and never mutated afterwards. Overriding a parameter
// produces a new value.
type Config struct {
	// R is the sphere radius; planar x/y share its unit.
	R float64

	// CenterLat and CenterLon place the projection center (tangent point
	// or central-line midpoint), in degrees.
	CenterLat float64
	CenterLon float64

	// FOV bounds the planar extent of bounded projections, in degrees,
	// strictly inside (0, 180).
	FOV float64

	// Azimuth is the oblique Mercator central-line direction east of
	// north, in degrees. Ignored by azimuthal families.
	Azimuth float64

	// ScaleK0 is the scale factor along the central line of cylindrical
	// projections.
	ScaleK0 float64

	// XPoints and YPoints set the planar grid resolution (projected image
	// width and height).
	XPoints int
	YPoints int

	// LonPoints and LatPoints set the spherical grid resolution
	// (equirectangular image width and height).
	LonPoints int
	LatPoints int

	// Bounds is the geographic window in degrees: Min is (lonMin, latMin),
	// Max is (lonMax, latMax).
	Bounds orb.Bound

	// Interpolation and Border are passed through to the resampler.
	Interpolation remap.Mode
	Border        color.NRGBA
}

// Option overrides a single configuration parameter at build time.
type Option func(*Config)

// WithRadius sets the sphere radius.
func WithRadius(r float64) Option { return func(c *Config) { c.R = r } }

// WithCenter sets the projection center in degrees.
func WithCenter(lat, lon float64) Option {
	return func(c *Config) {
		c.CenterLat = lat
		c.CenterLon = lon
	}
}

// WithFOV sets the field of view in degrees.
func WithFOV(deg float64) Option { return func(c *Config) { c.FOV = deg } }

// WithAzimuth sets the oblique central-line azimuth in degrees.
func WithAzimuth(deg float64) Option { return func(c *Config) { c.Azimuth = deg } }

// WithScale sets the central-line scale factor.
func WithScale(k0 float64) Option { return func(c *Config) { c.ScaleK0 = k0 } }

// WithPlanarSize sets the planar grid resolution.
func WithPlanarSize(xPoints, yPoints int) Option {
	return func(c *Config) {
		c.XPoints = xPoints
		c.YPoints = yPoints
	}
}

// WithSphericalSize sets the spherical grid resolution.
func WithSphericalSize(lonPoints, latPoints int) Option {
	return func(c *Config) {
		c.LonPoints = lonPoints
		c.LatPoints = latPoints
	}
}

// WithBounds sets the geographic window in degrees.
func WithBounds(lonMin, latMin, lonMax, latMax float64) Option {
	return func(c *Config) {
		c.Bounds = orb.Bound{
			Min: orb.Point{lonMin, latMin},
			Max: orb.Point{lonMax, latMax},
		}
	}
}

// WithInterpolation sets the resampling mode.
func WithInterpolation(m remap.Mode) Option { return func(c *Config) { c.Interpolation = m } }

// WithBorder sets the fill color for masked or out-of-bounds destinations.
func WithBorder(c color.NRGBA) Option { return func(cfg *Config) { cfg.Border = c } }

// Validate checks every invariant of the configuration. It returns a
// configuration error naming the first offending parameter; a Config that
// fails validation is never used, so no partially valid state escapes.
func (c Config) Validate() error {
	if c.R <= 0 {
		return configErr("R", c.R)
	}
	if c.CenterLat < -90 || c.CenterLat > 90 {
		return configErr("centerLat", c.CenterLat)
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		return configErr("fov", c.FOV)
	}
	if c.ScaleK0 <= 0 {
		return configErr("k0", c.ScaleK0)
	}
	if c.XPoints <= 0 {
		return configErr("xPoints", c.XPoints)
	}
	if c.YPoints <= 0 {
		return configErr("yPoints", c.YPoints)
	}
	if c.LonPoints <= 0 {
		return configErr("lonPoints", c.LonPoints)
	}
	if c.LatPoints <= 0 {
		return configErr("latPoints", c.LatPoints)
	}
	if c.Bounds.Min[0] >= c.Bounds.Max[0] {
		return configErr("lonMin/lonMax", c.Bounds)
	}
	if c.Bounds.Min[1] >= c.Bounds.Max[1] {
		return configErr("latMin/latMax", c.Bounds)
	}
	return nil
}

// defaultConfig is the shared starting point for bundle defaults: unit
// sphere, equatorial center, 90 degree field of view, global bounds.
func defaultConfig() Config {
	return Config{
		R:             1.0,
		CenterLat:     0.0,
		CenterLon:     0.0,
		FOV:           90.0,
		Azimuth:       0.0,
		ScaleK0:       1.0,
		XPoints:       512,
		YPoints:       512,
		LonPoints:     1024,
		LatPoints:     512,
		Bounds:        orb.Bound{Min: orb.Point{-180, -90}, Max: orb.Point{180, 90}},
		Interpolation: remap.Bilinear,
		Border:        color.NRGBA{0, 0, 0, 255},
	}
}

// LonMin and friends name the corners of the geographic window.
func (c Config) LonMin() float64 { return c.Bounds.Min[0] }
func (c Config) LonMax() float64 { return c.Bounds.Max[0] }
func (c Config) LatMin() float64 { return c.Bounds.Min[1] }
func (c Config) LatMax() float64 { return c.Bounds.Max[1] }
