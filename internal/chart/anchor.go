package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/litescript/ecliptic-banner/internal/catalog"
	"github.com/litescript/ecliptic-banner/internal/config"
)

// seamSpanDeg is the longitude span beyond which a figure is taken to be cut
// by the 0°/360° seam. No zodiac figure is wider.
const seamSpanDeg = 45.0

// EastLongitude returns the eastmost longitude reached by a figure's stars.
// A figure spanning more than seamSpanDeg straddles 0°; its western half is
// shifted up by 360° first, so the result may exceed 360.
func EastLongitude(fig catalog.Figure, stars StarLookup) (float64, error) {
	var lons []float64
	for _, id := range fig.StarIDs() {
		s, ok := stars.Lookup(id)
		if !ok {
			continue
		}
		lons = append(lons, s.LonDeg)
	}
	if len(lons) == 0 {
		return 0, fmt.Errorf("figure %s: no catalog stars", fig.Name)
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, lon := range lons {
		lo = math.Min(lo, lon)
		hi = math.Max(hi, lon)
	}
	if hi-lo <= seamSpanDeg {
		return hi, nil
	}

	mid := (lo + hi) / 2
	hi = math.Inf(-1)
	for _, lon := range lons {
		if lon < mid {
			lon += 360
		}
		hi = math.Max(hi, lon)
	}
	return hi, nil
}

// AnchorCenter returns the centre longitude that places the figure's eastern
// end on the left sky edge, so the chart begins with that figure.
func AnchorCenter(fig catalog.Figure, stars StarLookup) (float64, error) {
	east, err := EastLongitude(fig, stars)
	if err != nil {
		return 0, err
	}
	return east - 180, nil
}

// FindFigure returns the figure with the given name, ignoring case.
func FindFigure(figures []catalog.Figure, name string) (catalog.Figure, bool) {
	for _, f := range figures {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return catalog.Figure{}, false
}

// CenterFor resolves the chart centre: the anchor figure when one is
// configured, otherwise the configured centre longitude.
func CenterFor(cfg *config.Config, stars StarLookup, figures []catalog.Figure) (float64, error) {
	name := cfg.Projection.Anchor
	if name == "" {
		return cfg.Projection.CenterLon, nil
	}
	fig, ok := FindFigure(figures, name)
	if !ok {
		return 0, fmt.Errorf("anchor figure %q not found", name)
	}
	return AnchorCenter(fig, stars)
}
