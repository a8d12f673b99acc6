// Package chart projects ecliptic coordinates onto the banner page and
// writes the SVG document.
package chart

import (
	"math"

	"github.com/litescript/ecliptic-banner/internal/astro"
	"github.com/litescript/ecliptic-banner/internal/config"
)

// Point is a position on the page in drawing units, y growing downward.
type Point struct {
	X, Y float64
}

// Projection is a plate carrée mapping from ecliptic longitude/latitude to
// page coordinates:
//
//	x = Wrap(lon)*ScaleX + OffsetX
//	y = -lat*ScaleY + OffsetY
//
// Longitudes are wrapped into (CenterLon-180, CenterLon+180] so the seam
// sits at the left and right sky edges.
type Projection struct {
	ScaleX    float64
	ScaleY    float64
	OffsetX   float64
	OffsetY   float64
	CenterLon float64
}

// NewProjection fits 360° of longitude between the page borders with
// longitude increasing to the left and latitude +90° at the top edge.
// centerLon lands on the horizontal centre of the page.
func NewProjection(page config.PageConfig, centerLon float64) Projection {
	scale := page.SkyWidth() / 360
	center := astro.NormalizeDeg(centerLon)
	return Projection{
		ScaleX:    -scale,
		ScaleY:    scale,
		OffsetX:   page.Width()/2 + center*scale,
		OffsetY:   90 * scale,
		CenterLon: center,
	}
}

// wrapEpsDeg absorbs rounding in CenterLon+180, so a longitude on the upper
// bound stays there instead of wrapping to the lower one.
const wrapEpsDeg = 1e-9

// Wrap maps lon into (CenterLon-180, CenterLon+180].
func (p Projection) Wrap(lon float64) float64 {
	hi := p.CenterLon + 180
	r := floorMod(hi-lon, 360)
	if r > 360-wrapEpsDeg {
		r = 0
	}
	return hi - r
}

// Project maps an ecliptic position to the page.
func (p Projection) Project(lon, lat float64) Point {
	return p.place(p.Wrap(lon), lat)
}

// Unproject returns the ecliptic position at a page point. The longitude is
// in the wrapped range.
func (p Projection) Unproject(pt Point) (lon, lat float64) {
	lon = (pt.X - p.OffsetX) / p.ScaleX
	lat = -(pt.Y - p.OffsetY) / p.ScaleY
	return lon, lat
}

// Segment projects the line from a to b. b's longitude is taken relative to
// a so the line never spans more than 180°: a line crossing the seam runs
// past the sky edge instead of across the whole page.
func (p Projection) Segment(a, b astro.Ecliptic) (Point, Point) {
	from := p.Wrap(a.LonDeg)
	to := from + deltaLon(a.LonDeg, b.LonDeg)
	return p.place(from, a.LatDeg), p.place(to, b.LatDeg)
}

func (p Projection) place(lon, lat float64) Point {
	return Point{
		X: lon*p.ScaleX + p.OffsetX,
		Y: -lat*p.ScaleY + p.OffsetY,
	}
}

// deltaLon returns b-a reduced to (-180, 180].
func deltaLon(a, b float64) float64 {
	return 180 - floorMod(180-(b-a), 360)
}

// floorMod returns x mod m in [0, m).
func floorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	if r >= m {
		r = 0
	}
	return r
}
