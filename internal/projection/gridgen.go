package projection

import "github.com/rgarcia/sphereproj/internal/grid"

// GridGenerator produces the discretized sample grids a strategy is
// evaluated on. Both grids are uniformly spaced, row-major, and north-up:
// row 0 carries the maximum y or latitude, so grid ordering matches image
// row ordering with no post-flip.
type GridGenerator interface {
	// PlanarGrid returns x and y sample grids spanning the projection's
	// natural extent, shaped (YPoints, XPoints).
	PlanarGrid() (x, y *grid.Grid, err error)

	// SphericalGrid returns lon and lat sample grids in degrees spanning
	// the configured bounds, shaped (LatPoints, LonPoints).
	SphericalGrid() (lon, lat *grid.Grid, err error)
}

// uniformGrids generates both grids by linear subdivision of an extent and
// the geographic bounds. Every family uses it; only the extent differs.
type uniformGrids struct {
	cfg    Config
	extent Extent
}

// extentGrids adapts an extent function into a GridGenerator constructor
// for a bundle.
func extentGrids(extent func(Config) Extent) func(Config) (GridGenerator, error) {
	return func(cfg Config) (GridGenerator, error) {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		ext := extent(cfg)
		if ext.XMax <= ext.XMin {
			return nil, gridErr("xExtent", ext)
		}
		if ext.YMax <= ext.YMin {
			return nil, gridErr("yExtent", ext)
		}
		return &uniformGrids{cfg: cfg, extent: ext}, nil
	}
}

func (g *uniformGrids) PlanarGrid() (*grid.Grid, *grid.Grid, error) {
	xs := grid.Linspace(g.extent.XMin, g.extent.XMax, g.cfg.XPoints)
	ys := grid.Linspace(g.extent.YMax, g.extent.YMin, g.cfg.YPoints) // row 0 = yMax
	gx, gy := grid.Mesh(xs, ys)
	return gx, gy, nil
}

func (g *uniformGrids) SphericalGrid() (*grid.Grid, *grid.Grid, error) {
	lons := grid.Linspace(g.cfg.LonMin(), g.cfg.LonMax(), g.cfg.LonPoints)
	lats := grid.Linspace(g.cfg.LatMax(), g.cfg.LatMin(), g.cfg.LatPoints) // row 0 = latMax
	glon, glat := grid.Mesh(lons, lats)
	return glon, glat, nil
}
