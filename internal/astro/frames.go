// Package astro provides astronomical coordinate transformations and sky math.
package astro

import (
	"math"
)

// DefaultObliquityDeg is the true obliquity of the ecliptic for 2022-01-01,
// in degrees.
const DefaultObliquityDeg = 23.4376

// Vec3 represents a 3D vector in any reference frame.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// EquatorialToEcliptic converts equatorial XYZ to ecliptic XYZ by rotating
// about the X axis (vernal equinox) by the obliquity.
// Input is in any units; output is in the same units.
func EquatorialToEcliptic(eq Vec3, obliquityDeg float64) Vec3 {
	eps := DegToRad(obliquityDeg)
	cosE := math.Cos(eps)
	sinE := math.Sin(eps)

	return Vec3{
		X: eq.X,
		Y: eq.Y*cosE + eq.Z*sinE,
		Z: -eq.Y*sinE + eq.Z*cosE,
	}
}

// EclipticLatitude returns the latitude in degrees of a vector above the XY plane.
// atan2 keeps precision near the poles where asin(z/r) degrades.
func EclipticLatitude(v Vec3) float64 {
	if v.Norm() == 0 {
		return 0
	}
	return RadToDeg(math.Atan2(v.Z, math.Hypot(v.X, v.Y)))
}

// EclipticLongitude returns the longitude in degrees (0-360) of a vector.
func EclipticLongitude(v Vec3) float64 {
	return NormalizeDeg(RadToDeg(math.Atan2(v.Y, v.X)))
}
