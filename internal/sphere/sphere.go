// Package sphere provides the spherical trigonometry shared by the
// projection strategies: angular distances, azimuths, and the
// auxiliary-pole rotation used to derive oblique aspects.
//
// All angles are radians unless a function name says otherwise. Every
// inverse longitude/azimuth uses a two-argument arctangent so quadrants
// survive the round trip.
package sphere

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180.0 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180.0 / math.Pi }

// AngularDistance returns the great-circle arc between two points given in
// degrees.
func AngularDistance(lat1, lon1, lat2, lon2 float64) s1.Angle {
	a := s2.LatLngFromDegrees(lat1, lon1)
	b := s2.LatLngFromDegrees(lat2, lon2)
	return a.Distance(b)
}

// Azimuth returns the initial bearing from (lat1, lon1) to (lat2, lon2),
// measured clockwise from true north. Inputs in degrees, result in radians
// within (-pi, pi].
func Azimuth(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := Radians(lat1)
	phi2 := Radians(lat2)
	dlam := Radians(lon2 - lon1)
	y := math.Sin(dlam) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(dlam)
	return math.Atan2(y, x)
}

// Pole is the true-coordinate position of an auxiliary coordinate system's
// north pole. Oblique projections place it off the rotational pole.
type Pole struct {
	Lat float64 // radians
	Lon float64 // radians
}

// PoleFromCenterAzimuth derives the auxiliary pole for an oblique central
// line through (centerLat, centerLon) at the given azimuth east of north
// (Snyder, USGS Professional Paper 1395, eq. 9-1/9-2). Inputs in radians.
func PoleFromCenterAzimuth(centerLat, centerLon, azimuth float64) Pole {
	latP := math.Asin(math.Cos(centerLat) * math.Sin(azimuth))
	lonP := centerLon + math.Atan2(-math.Cos(azimuth), -math.Sin(centerLat)*math.Sin(azimuth))
	return Pole{Lat: latP, Lon: lonP}
}

// ToAuxiliary rotates a true (lat, lon) into the pole-relative system,
// returning the auxiliary latitude h and auxiliary longitude alpha.
// FromAuxiliary inverts it exactly.
func (p Pole) ToAuxiliary(lat, lon float64) (h, alpha float64) {
	sinP, cosP := math.Sincos(p.Lat)
	sinPhi, cosPhi := math.Sincos(lat)
	sinD, cosD := math.Sincos(lon - p.Lon)

	sinH := sinP*sinPhi + cosP*cosPhi*cosD
	h = math.Asin(clamp1(sinH))
	alpha = math.Atan2(cosP*sinPhi-sinP*cosPhi*cosD, cosPhi*sinD)
	return h, alpha
}

// FromAuxiliary rotates pole-relative (h, alpha) back to true coordinates.
func (p Pole) FromAuxiliary(h, alpha float64) (lat, lon float64) {
	sinP, cosP := math.Sincos(p.Lat)
	sinH, cosH := math.Sincos(h)
	sinA, cosA := math.Sincos(alpha)

	lat = math.Asin(clamp1(sinP*sinH + cosP*cosH*sinA))
	lon = p.Lon + math.Pi/2 + math.Atan2(sinP*sinA*cosH-cosP*sinH, cosH*cosA)
	return lat, lon
}

// WrapLon normalizes a longitude in radians to (-pi, pi].
func WrapLon(lon float64) float64 {
	lon = math.Mod(lon, 2*math.Pi)
	if lon > math.Pi {
		lon -= 2 * math.Pi
	} else if lon <= -math.Pi {
		lon += 2 * math.Pi
	}
	return lon
}

// clamp1 keeps asin arguments inside [-1, 1] against rounding drift.
func clamp1(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
