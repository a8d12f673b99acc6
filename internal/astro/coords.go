// Package astro provides astronomical coordinate transformations and sky math.
package astro

import (
	"math"
)

// Equatorial holds right ascension and declination in degrees.
type Equatorial struct {
	RAdeg  float64 // Right Ascension in degrees (0-360)
	DecDeg float64 // Declination in degrees (-90 to +90)
}

// Ecliptic holds ecliptic longitude and latitude in degrees.
type Ecliptic struct {
	LonDeg float64 // Longitude in degrees (0-360), measured from the vernal equinox
	LatDeg float64 // Latitude in degrees (-90 to +90)
}

// UnitVector returns the unit vector for spherical angles in degrees.
// The same helper serves both frames: (RA, Dec) or (lon, lat).
func UnitVector(lonDeg, latDeg float64) Vec3 {
	lon := DegToRad(lonDeg)
	lat := DegToRad(latDeg)
	return Vec3{
		X: math.Cos(lat) * math.Cos(lon),
		Y: math.Cos(lat) * math.Sin(lon),
		Z: math.Sin(lat),
	}
}

// ToEcliptic converts equatorial coordinates to ecliptic coordinates for the
// given obliquity.
func (e Equatorial) ToEcliptic(obliquityDeg float64) Ecliptic {
	v := EquatorialToEcliptic(UnitVector(e.RAdeg, e.DecDeg), obliquityDeg)
	return Ecliptic{
		LonDeg: EclipticLongitude(v),
		LatDeg: EclipticLatitude(v),
	}
}

// NormalizeDeg normalizes an angle to [0, 360).
func NormalizeDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	// math.Mod(-1e-15, 360) + 360 rounds to 360
	if a >= 360 {
		a -= 360
	}
	return a
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
