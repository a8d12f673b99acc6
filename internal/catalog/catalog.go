// Package catalog loads the star catalog and constellation figure files
// the chart is drawn from.
package catalog

import (
	"sort"

	"github.com/litescript/ecliptic-banner/internal/astro"
)

// Star represents a cataloged star with position and brightness.
type Star struct {
	HIP    int     // Hipparcos identifier
	RAdeg  float64 // Right Ascension in degrees (ICRS)
	DecDeg float64 // Declination in degrees (ICRS)
	LonDeg float64 // Ecliptic longitude in degrees (0-360)
	LatDeg float64 // Ecliptic latitude in degrees (-90 to +90)
	Mag    float64 // Apparent magnitude (lower = brighter)
}

// Ecliptic returns the star's ecliptic coordinates.
func (s Star) Ecliptic() astro.Ecliptic {
	return astro.Ecliptic{LonDeg: s.LonDeg, LatDeg: s.LatDeg}
}

// NewStar builds a star from equatorial coordinates, deriving its ecliptic
// position for the given obliquity.
func NewStar(hip int, raDeg, decDeg, mag, obliquityDeg float64) Star {
	ecl := astro.Equatorial{RAdeg: raDeg, DecDeg: decDeg}.ToEcliptic(obliquityDeg)
	return Star{
		HIP:    hip,
		RAdeg:  raDeg,
		DecDeg: decDeg,
		LonDeg: ecl.LonDeg,
		LatDeg: ecl.LatDeg,
		Mag:    mag,
	}
}

// Catalog holds loaded stars ordered by HIP id.
type Catalog struct {
	Stars []Star
	index map[int]int
}

// NewCatalog builds a catalog from stars. Stars are sorted by HIP id so that
// rendered output is repeatable; a repeated id keeps the last occurrence.
func NewCatalog(stars []Star) *Catalog {
	byID := make(map[int]Star, len(stars))
	for _, s := range stars {
		byID[s.HIP] = s
	}

	sorted := make([]Star, 0, len(byID))
	for _, s := range byID {
		sorted = append(sorted, s)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].HIP < sorted[j].HIP })

	c := &Catalog{
		Stars: sorted,
		index: make(map[int]int, len(sorted)),
	}
	for i, s := range sorted {
		c.index[s.HIP] = i
	}
	return c
}

// Lookup returns the star with the given HIP id.
func (c *Catalog) Lookup(hip int) (Star, bool) {
	if c == nil {
		return Star{}, false
	}
	i, ok := c.index[hip]
	if !ok {
		return Star{}, false
	}
	return c.Stars[i], true
}

// Len returns the number of stars in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Stars)
}

// Line is a constellation figure segment between two stars.
type Line struct {
	From int // HIP id
	To   int // HIP id
}

// Figure is a named constellation stick figure.
type Figure struct {
	Name  string // IAU abbreviation, e.g. "Ari"
	Lines []Line
}

// StarIDs returns the distinct HIP ids used by the figure, in first-seen order.
func (f Figure) StarIDs() []int {
	seen := make(map[int]bool)
	var ids []int
	for _, l := range f.Lines {
		for _, id := range [2]int{l.From, l.To} {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}
