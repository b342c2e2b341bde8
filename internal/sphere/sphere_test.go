package sphere

import (
	"math"
	"testing"
)

func TestAngularDistance(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		wantDeg                float64
	}{
		{"same point", 47.3769, 8.5417, 47.3769, 8.5417, 0},
		{"equator quarter", 0, 0, 0, 90, 90},
		{"pole to equator", 90, 0, 0, 0, 90},
		{"antipodes", 0, 0, 0, 180, 180},
		{"45 along meridian", 0, 0, 45, 0, 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngularDistance(tt.lat1, tt.lon1, tt.lat2, tt.lon2).Degrees()
			if math.Abs(got-tt.wantDeg) > 1e-9 {
				t.Errorf("AngularDistance = %v deg, want %v", got, tt.wantDeg)
			}
		})
	}
}

func TestAzimuth(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		wantDeg                float64
	}{
		{"due north", 0, 0, 45, 0, 0},
		{"due east", 0, 0, 0, 45, 90},
		{"due south", 45, 0, 0, 0, 180},
		{"due west", 0, 45, 0, 0, -90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Degrees(Azimuth(tt.lat1, tt.lon1, tt.lat2, tt.lon2))
			if math.Abs(got-tt.wantDeg) > 1e-9 {
				t.Errorf("Azimuth = %v deg, want %v", got, tt.wantDeg)
			}
		})
	}
}

// TestAuxiliaryRoundTrip verifies FromAuxiliary inverts ToAuxiliary for a
// range of pole positions and sample points.
func TestAuxiliaryRoundTrip(t *testing.T) {
	poles := []Pole{
		{Lat: Radians(90), Lon: 0},
		{Lat: Radians(45), Lon: Radians(30)},
		{Lat: Radians(-30), Lon: Radians(-120)},
		{Lat: 0, Lon: Radians(80)},
		{Lat: Radians(22.5), Lon: Radians(-171)},
	}
	points := [][2]float64{ // lat, lon degrees
		{0, 0},
		{47.3769, 8.5417},
		{-33.9, 18.4},
		{71.2, -156.7},
		{-63.1, 95.0},
	}

	for _, p := range poles {
		for _, pt := range points {
			lat := Radians(pt[0])
			lon := Radians(pt[1])

			h, alpha := p.ToAuxiliary(lat, lon)
			gotLat, gotLon := p.FromAuxiliary(h, alpha)

			if math.Abs(gotLat-lat) > 1e-9 {
				t.Errorf("pole(%v,%v) point(%v,%v): lat roundtrip %v, want %v",
					Degrees(p.Lat), Degrees(p.Lon), pt[0], pt[1], Degrees(gotLat), pt[0])
			}
			dLon := math.Abs(WrapLon(gotLon - lon))
			if dLon > 1e-9 {
				t.Errorf("pole(%v,%v) point(%v,%v): lon roundtrip off by %v deg",
					Degrees(p.Lat), Degrees(p.Lon), pt[0], pt[1], Degrees(dLon))
			}
		}
	}
}

// TestAuxiliaryNorthPole checks that the auxiliary system degenerates to
// the true system when the auxiliary pole sits on the rotational pole.
func TestAuxiliaryNorthPole(t *testing.T) {
	p := Pole{Lat: math.Pi / 2, Lon: 0}
	lat := Radians(37.5)
	lon := Radians(-122.3)

	h, _ := p.ToAuxiliary(lat, lon)
	if math.Abs(h-lat) > 1e-12 {
		t.Errorf("auxiliary latitude = %v, want true latitude %v", h, lat)
	}
}

func TestPoleFromCenterAzimuth(t *testing.T) {
	// Central line due east along the equator puts the auxiliary pole on
	// the rotational pole.
	p := PoleFromCenterAzimuth(0, 0, Radians(90))
	if math.Abs(p.Lat-math.Pi/2) > 1e-9 {
		t.Errorf("pole lat = %v deg, want 90", Degrees(p.Lat))
	}

	// A due-north line through the equator is a meridian: its pole lies
	// on the equator.
	p = PoleFromCenterAzimuth(0, 0, 0)
	if math.Abs(p.Lat) > 1e-9 {
		t.Errorf("pole lat = %v deg, want 0", Degrees(p.Lat))
	}
}

func TestWrapLon(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{2 * math.Pi, 0},
	}
	for _, tt := range tests {
		if got := WrapLon(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("WrapLon(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
