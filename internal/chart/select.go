package chart

import (
	"github.com/litescript/ecliptic-banner/internal/catalog"
)

// StarLookup resolves HIP ids to stars. *catalog.Catalog implements it.
type StarLookup interface {
	Lookup(hip int) (catalog.Star, bool)
}

// StarFilter decides which catalog stars are drawn.
type StarFilter struct {
	// MaxMagnitude keeps stars strictly brighter than this value.
	MaxMagnitude float64

	// IncludeFigureStars keeps every star used by a drawn figure
	// regardless of magnitude.
	IncludeFigureStars bool
}

// SelectStars returns the catalog stars passing the filter, in catalog order.
func SelectStars(cat *catalog.Catalog, figures []catalog.Figure, filter StarFilter) []catalog.Star {
	used := make(map[int]bool)
	if filter.IncludeFigureStars {
		for _, f := range figures {
			for _, id := range f.StarIDs() {
				used[id] = true
			}
		}
	}

	var stars []catalog.Star
	if cat == nil {
		return stars
	}
	for _, s := range cat.Stars {
		if s.Mag < filter.MaxMagnitude || used[s.HIP] {
			stars = append(stars, s)
		}
	}
	return stars
}

// SelectFigures returns the named figures in the order of names, plus the
// names that matched nothing. An empty names list selects every figure.
func SelectFigures(figures []catalog.Figure, names []string) (selected []catalog.Figure, missing []string) {
	if len(names) == 0 {
		return append([]catalog.Figure(nil), figures...), nil
	}
	for _, name := range names {
		f, ok := FindFigure(figures, name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		selected = append(selected, f)
	}
	return selected, missing
}

// Lines flattens the lines of figures.
func Lines(figures []catalog.Figure) []catalog.Line {
	var lines []catalog.Line
	for _, f := range figures {
		lines = append(lines, f.Lines...)
	}
	return lines
}
