package projection

import (
	"errors"
	"math"
	"testing"

	"github.com/rgarcia/sphereproj/internal/grid"
)

func fixedExtent(ext Extent) func(Config) Extent {
	return func(Config) Extent { return ext }
}

func TestSphericalToImage(t *testing.T) {
	newT := extentTransformer(fixedExtent(Extent{XMin: -1, XMax: 1, YMin: -1, YMax: 1}))
	tr, err := newT(testConfig(WithBounds(-180, -90, 180, 90)))
	if err != nil {
		t.Fatal(err)
	}

	lat, lon := pointGrids([][2]float64{
		{90, -180}, // top-left corner of the image
		{-90, 180}, // bottom-right corner
		{0, 0},     // center
	})
	pm, err := tr.SphericalToImage(lat, lon, 361, 181)
	if err != nil {
		t.Fatal(err)
	}

	wantX := []float64{0, 360, 180}
	wantY := []float64{0, 180, 90}
	for i := range wantX {
		if math.Abs(pm.X.Data[i]-wantX[i]) > 1e-12 {
			t.Errorf("point %d: px = %v, want %v", i, pm.X.Data[i], wantX[i])
		}
		if math.Abs(pm.Y.Data[i]-wantY[i]) > 1e-12 {
			t.Errorf("point %d: py = %v, want %v", i, pm.Y.Data[i], wantY[i])
		}
	}
}

// Latitude grows upward, rows grow downward: the maximum latitude must
// land on row zero.
func TestSphericalToImageVerticalInversion(t *testing.T) {
	newT := extentTransformer(fixedExtent(Extent{XMin: -1, XMax: 1, YMin: -1, YMax: 1}))
	tr, err := newT(testConfig(WithBounds(-180, -50, 180, 70)))
	if err != nil {
		t.Fatal(err)
	}
	lat, lon := pointGrids([][2]float64{{70, 0}, {-50, 0}})
	pm, err := tr.SphericalToImage(lat, lon, 100, 25)
	if err != nil {
		t.Fatal(err)
	}
	if pm.Y.Data[0] != 0 {
		t.Errorf("latMax mapped to row %v, want 0", pm.Y.Data[0])
	}
	if pm.Y.Data[1] != 24 {
		t.Errorf("latMin mapped to row %v, want 24", pm.Y.Data[1])
	}
}

func TestProjectionToImage(t *testing.T) {
	ext := Extent{XMin: -2, XMax: 2, YMin: -1, YMax: 1}
	tr, err := extentTransformer(fixedExtent(ext))(testConfig(WithPlanarSize(5, 3)))
	if err != nil {
		t.Fatal(err)
	}

	x, y := pointGrids([][2]float64{
		{-2, 1},  // top-left pixel
		{2, -1},  // bottom-right pixel
		{0, 0},   // center
		{-1, 0.5}, // quarter in
	})
	pm, err := tr.ProjectionToImage(x, y)
	if err != nil {
		t.Fatal(err)
	}
	wantX := []float64{0, 4, 2, 1}
	wantY := []float64{0, 2, 1, 0.5}
	for i := range wantX {
		if math.Abs(pm.X.Data[i]-wantX[i]) > 1e-12 {
			t.Errorf("point %d: px = %v, want %v", i, pm.X.Data[i], wantX[i])
		}
		if math.Abs(pm.Y.Data[i]-wantY[i]) > 1e-12 {
			t.Errorf("point %d: py = %v, want %v", i, pm.Y.Data[i], wantY[i])
		}
	}
}

func TestTransformerDegenerateSpans(t *testing.T) {
	flat := extentTransformer(fixedExtent(Extent{XMin: 1, XMax: 1, YMin: -1, YMax: 1}))
	tr, err := flat(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	x, y := pointGrids([][2]float64{{0, 0}})
	if _, err := tr.ProjectionToImage(x, y); !errors.Is(err, ErrTransformation) {
		t.Errorf("zero x span = %v, want transformation error", err)
	}

	if _, err := tr.SphericalToImage(x, y, 0, 10); !errors.Is(err, ErrTransformation) {
		t.Errorf("zero image width = %v, want transformation error", err)
	}
}

func TestTransformerShapeMismatch(t *testing.T) {
	tr, err := extentTransformer(fixedExtent(Extent{XMin: -1, XMax: 1, YMin: -1, YMax: 1}))(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	a := grid.New(3, 1)
	b := grid.New(4, 1)
	if _, err := tr.ProjectionToImage(a, b); !errors.Is(err, ErrProcessing) {
		t.Errorf("mismatched grid shapes = %v, want processing error", err)
	}
}
