package chart

import (
	"io"
	"strings"

	"github.com/litescript/ecliptic-banner/internal/catalog"
	"github.com/litescript/ecliptic-banner/internal/config"
)

// Render draws one chart centred on centerLon: it selects the configured
// figures and the stars to show, then composes the document.
func Render(w io.Writer, cfg *config.Config, cat *catalog.Catalog, figures []catalog.Figure, centerLon float64) (Stats, error) {
	drawn, missing := SelectFigures(figures, cfg.Figures)
	stars := SelectStars(cat, drawn, StarFilter{
		MaxMagnitude:       cfg.Stars.MaxMagnitude,
		IncludeFigureStars: cfg.Stars.IncludeFigureStars,
	})

	scene := Scene{
		Stars:      stars,
		Lookup:     cat,
		Lines:      Lines(drawn),
		Projection: NewProjection(cfg.Page, centerLon),
	}

	stats, err := NewComposer(cfg).Compose(w, scene)
	stats.MissingFigures = missing
	return stats, err
}

// AnchorFileName is the file written for a chart beginning with the named
// figure.
func AnchorFileName(name string) string {
	return "ecliptic_chart_beginning_with_" + strings.ToLower(name) + ".svg"
}
