package projection

import (
	"image"

	"github.com/rgarcia/sphereproj/internal/remap"
)

// Processor orchestrates one forward and one backward transformation for a
// configured bundle. Each call is independent and stateless with respect
// to prior calls: grids and pixel maps are produced fresh and owned by the
// call, so Forward and Backward on separate processors, or repeated calls
// on one, may run fully in parallel.
type Processor struct {
	cfg       Config
	strategy  Strategy
	grids     GridGenerator
	transform Transformer
}

// NewProcessor instantiates a bundle's components from a configuration.
// Any constructor failure surfaces as a processing error carrying the
// cause.
func NewProcessor(cfg Config, b Bundle) (*Processor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !b.complete() {
		return nil, registrationErr("", "bundle is missing a component constructor")
	}

	strategy, err := b.NewStrategy(cfg)
	if err != nil {
		return nil, processErr("strategy", err)
	}
	grids, err := b.NewGrids(cfg)
	if err != nil {
		return nil, processErr("grids", err)
	}
	transform, err := b.NewTransformer(cfg)
	if err != nil {
		return nil, processErr("transformer", err)
	}
	return &Processor{cfg: cfg, strategy: strategy, grids: grids, transform: transform}, nil
}

// Config returns the processor's configuration value.
func (p *Processor) Config() Config { return p.cfg }

// Forward projects an equirectangular image into the planar projection,
// producing a YPoints x XPoints image. Pipeline: planar grid -> inverse
// strategy -> spherical-to-image pixel map against the input shape ->
// resample.
func (p *Processor) Forward(src *image.NRGBA) (*image.NRGBA, error) {
	if err := checkImage(src); err != nil {
		return nil, err
	}

	gx, gy, err := p.grids.PlanarGrid()
	if err != nil {
		return nil, processErr("planar grid", err)
	}
	lat, lon, err := p.strategy.ProjectionToSpherical(gx, gy)
	if err != nil {
		return nil, processErr("inverse projection", err)
	}
	pm, err := p.transform.SphericalToImage(lat, lon, src.Bounds().Dx(), src.Bounds().Dy())
	if err != nil {
		return nil, processErr("pixel mapping", err)
	}
	out, err := remap.Remap(src, pm.X, pm.Y, nil, p.cfg.Interpolation, p.cfg.Border)
	if err != nil {
		return nil, processErr("resampling", err)
	}
	return out, nil
}

// Backward projects a planar image back to equirectangular, producing a
// LatPoints x LonPoints image. Pipeline: spherical grid -> forward
// strategy with validity mask -> planar-to-image pixel map -> resample;
// masked destinations receive the border color instead of being sampled.
func (p *Processor) Backward(src *image.NRGBA) (*image.NRGBA, error) {
	if err := checkImage(src); err != nil {
		return nil, err
	}

	glon, glat, err := p.grids.SphericalGrid()
	if err != nil {
		return nil, processErr("spherical grid", err)
	}
	x, y, mask, err := p.strategy.SphericalToProjection(glat, glon)
	if err != nil {
		return nil, processErr("forward projection", err)
	}
	pm, err := p.transform.ProjectionToImage(x, y)
	if err != nil {
		return nil, processErr("pixel mapping", err)
	}
	out, err := remap.Remap(src, pm.X, pm.Y, mask, p.cfg.Interpolation, p.cfg.Border)
	if err != nil {
		return nil, processErr("resampling", err)
	}
	return out, nil
}

// checkImage rejects missing or empty inputs before any grid work begins.
func checkImage(img *image.NRGBA) error {
	if img == nil || img.Bounds().Dx() <= 0 || img.Bounds().Dy() <= 0 {
		return inputErr("image", "input image must be non-empty")
	}
	return nil
}
