package projection

import (
	"math"
	"testing"

	"github.com/rgarcia/sphereproj/internal/sphere"
)

// An equatorial central line with azimuth 90 is the ordinary Mercator
// cylinder; the oblique machinery has to collapse to it.
func TestObliqueMercatorReducesToMercator(t *testing.T) {
	cfg := testConfig(WithRadius(3), WithScale(0.9996), WithCenter(0, 0), WithAzimuth(90))
	oblique, err := NewObliqueMercator(cfg)
	if err != nil {
		t.Fatal(err)
	}
	plain, err := NewMercator(cfg)
	if err != nil {
		t.Fatal(err)
	}

	points := [][2]float64{
		{0, 0},
		{45, 30},
		{-60, -120},
		{80, 179},
	}
	lat, lon := pointGrids(points)
	ox, oy, _, err := oblique.SphericalToProjection(lat, lon)
	if err != nil {
		t.Fatal(err)
	}
	px, py, _, err := plain.SphericalToProjection(lat, lon)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range points {
		if d := math.Abs(ox.Data[i] - px.Data[i]); d > 1e-9 {
			t.Errorf("point %v: x differs by %v", p, d)
		}
		if d := math.Abs(oy.Data[i] - py.Data[i]); d > 1e-9 {
			t.Errorf("point %v: y differs by %v", p, d)
		}
	}
}

func TestObliqueMercatorRoundTrip(t *testing.T) {
	s, err := NewObliqueMercator(testConfig(WithCenter(40, -100), WithAzimuth(30)))
	if err != nil {
		t.Fatal(err)
	}

	// The auxiliary poles sit near (22.5, 149.7) and (-22.5, -30.3);
	// every point here keeps a healthy distance from both.
	points := [][2]float64{
		{40, -100},
		{0, 0},
		{60, 50},
		{-45, -60},
		{80, 10},
	}
	lat, lon := pointGrids(points)
	x, y, mask, err := s.SphericalToProjection(lat, lon)
	if err != nil {
		t.Fatal(err)
	}
	if mask.Count() != len(points) {
		t.Fatalf("interior points masked: %d of %d valid", mask.Count(), len(points))
	}
	gotLat, gotLon, err := s.ProjectionToSpherical(x, y)
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range points {
		if d := math.Abs(gotLat.Data[i] - p[0]); d > 1e-6 {
			t.Errorf("point %v: lat off by %v deg", p, d)
		}
		if d := lonDiffDeg(gotLon.Data[i], p[1]); d > 1e-6 {
			t.Errorf("point %v: lon off by %v deg", p, d)
		}
	}
}

// The center lies on the central line, so its ordinate is zero.
func TestObliqueMercatorCenterOnCentralLine(t *testing.T) {
	s, err := NewObliqueMercator(testConfig(WithCenter(47.5, 8.5), WithAzimuth(62)))
	if err != nil {
		t.Fatal(err)
	}
	lat, lon := pointGrids([][2]float64{{47.5, 8.5}})
	_, y, mask, err := s.SphericalToProjection(lat, lon)
	if err != nil {
		t.Fatal(err)
	}
	if !mask.Data[0] {
		t.Fatal("center masked")
	}
	if math.Abs(y.Data[0]) > 1e-9 {
		t.Errorf("y at center = %v, want 0", y.Data[0])
	}
}

// Walking along the central line away from the center must head in the
// configured azimuth: the line is the great circle through the center at
// that bearing.
func TestObliqueMercatorCentralLineAzimuth(t *testing.T) {
	tests := []struct {
		name                string
		centerLat, centerLon float64
		azimuth             float64
	}{
		{"snyder example", 40, -100, 30},
		{"equatorial due east", 0, 0, 90},
		{"southern oblique", -35, 140, 115},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := sphere.PoleFromCenterAzimuth(
				sphere.Radians(tt.centerLat), sphere.Radians(tt.centerLon), sphere.Radians(tt.azimuth))
			_, alpha0 := p.ToAuxiliary(sphere.Radians(tt.centerLat), sphere.Radians(tt.centerLon))

			// A point a short way along the line: auxiliary latitude 0,
			// auxiliary longitude advanced past the center's.
			lat2, lon2 := p.FromAuxiliary(0, alpha0+sphere.Radians(0.1))
			got := sphere.Azimuth(tt.centerLat, tt.centerLon, sphere.Degrees(lat2), sphere.Degrees(lon2))
			if d := math.Abs(sphere.Degrees(got) - tt.azimuth); d > 1e-6 {
				t.Errorf("bearing along central line = %v deg, want %v", sphere.Degrees(got), tt.azimuth)
			}
		})
	}
}

// The two auxiliary poles are the singular points of the cylinder.
func TestObliqueMercatorPoleMasking(t *testing.T) {
	const centerLat, centerLon, azimuth = 40, -100, 30
	s, err := NewObliqueMercator(testConfig(WithCenter(centerLat, centerLon), WithAzimuth(azimuth)))
	if err != nil {
		t.Fatal(err)
	}
	p := sphere.PoleFromCenterAzimuth(
		sphere.Radians(centerLat), sphere.Radians(centerLon), sphere.Radians(azimuth))

	lat, lon := pointGrids([][2]float64{
		{sphere.Degrees(p.Lat), sphere.Degrees(p.Lon)},
		{-sphere.Degrees(p.Lat), sphere.Degrees(sphere.WrapLon(p.Lon + math.Pi))},
		{centerLat, centerLon},
	})
	_, y, mask, err := s.SphericalToProjection(lat, lon)
	if err != nil {
		t.Fatal(err)
	}
	if mask.Data[0] || mask.Data[1] {
		t.Errorf("auxiliary poles not masked: %v %v", mask.Data[0], mask.Data[1])
	}
	if !mask.Data[2] {
		t.Error("center masked")
	}
	for i := 0; i < 2; i++ {
		if math.IsNaN(y.Data[i]) || math.IsInf(y.Data[i], 0) {
			t.Errorf("masked pole produced non-finite y = %v", y.Data[i])
		}
	}
}
