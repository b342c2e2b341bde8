package projection

import "github.com/rgarcia/sphereproj/internal/grid"

// PixelMap gives, for every destination pixel, the fractional source-pixel
// coordinate to sample. It is the contract with the resampler.
type PixelMap struct {
	X *grid.Grid
	Y *grid.Grid
}

// Transformer maps spherical or planar coordinates into the pixel-index
// space of a target image. Both axes are affine; the vertical axis is
// inverted because image rows grow downward while latitude and planar y
// grow upward.
type Transformer interface {
	// SphericalToImage rescales latitude/longitude grids (degrees) into
	// pixel coordinates of a width x height equirectangular image.
	SphericalToImage(lat, lon *grid.Grid, width, height int) (PixelMap, error)

	// ProjectionToImage rescales planar x/y grids into pixel coordinates
	// of the projected image (XPoints x YPoints).
	ProjectionToImage(x, y *grid.Grid) (PixelMap, error)
}

// affineTransformer is the shared Transformer: longitude/x map linearly to
// [0, width-1], latitude/y to [height-1, 0].
type affineTransformer struct {
	cfg    Config
	extent Extent
}

// extentTransformer adapts an extent function into a Transformer
// constructor for a bundle.
func extentTransformer(extent func(Config) Extent) func(Config) (Transformer, error) {
	return func(cfg Config) (Transformer, error) {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return &affineTransformer{cfg: cfg, extent: extent(cfg)}, nil
	}
}

func (t *affineTransformer) SphericalToImage(lat, lon *grid.Grid, width, height int) (PixelMap, error) {
	if err := checkShapes(lat, lon); err != nil {
		return PixelMap{}, err
	}
	if width <= 0 || height <= 0 {
		return PixelMap{}, transformErr("imageShape", [2]int{width, height})
	}
	lonSpan := t.cfg.LonMax() - t.cfg.LonMin()
	latSpan := t.cfg.LatMax() - t.cfg.LatMin()
	if lonSpan == 0 {
		return PixelMap{}, transformErr("lonSpan", lonSpan)
	}
	if latSpan == 0 {
		return PixelMap{}, transformErr("latSpan", latSpan)
	}

	mx := grid.New(lat.W, lat.H)
	my := grid.New(lat.W, lat.H)
	sx := float64(width-1) / lonSpan
	sy := float64(height-1) / latSpan
	for i := range lat.Data {
		mx.Data[i] = (lon.Data[i] - t.cfg.LonMin()) * sx
		my.Data[i] = (t.cfg.LatMax() - lat.Data[i]) * sy
	}
	return PixelMap{X: mx, Y: my}, nil
}

func (t *affineTransformer) ProjectionToImage(x, y *grid.Grid) (PixelMap, error) {
	if err := checkShapes(x, y); err != nil {
		return PixelMap{}, err
	}
	xSpan := t.extent.XMax - t.extent.XMin
	ySpan := t.extent.YMax - t.extent.YMin
	if xSpan == 0 {
		return PixelMap{}, transformErr("xSpan", xSpan)
	}
	if ySpan == 0 {
		return PixelMap{}, transformErr("ySpan", ySpan)
	}

	mx := grid.New(x.W, x.H)
	my := grid.New(x.W, x.H)
	sx := float64(t.cfg.XPoints-1) / xSpan
	sy := float64(t.cfg.YPoints-1) / ySpan
	for i := range x.Data {
		mx.Data[i] = (x.Data[i] - t.extent.XMin) * sx
		my.Data[i] = (t.extent.YMax - y.Data[i]) * sy
	}
	return PixelMap{X: mx, Y: my}, nil
}
