package chart

import (
	"fmt"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo/float"

	"github.com/litescript/ecliptic-banner/internal/catalog"
	"github.com/litescript/ecliptic-banner/internal/config"
	"github.com/litescript/ecliptic-banner/internal/morse"
)

// Scene is everything drawn on one chart.
type Scene struct {
	Stars      []catalog.Star
	Lookup     StarLookup
	Lines      []catalog.Line
	Projection Projection
}

// Stats summarizes a composed chart.
type Stats struct {
	Stars        int     // circles drawn
	Lines        int     // figure lines drawn
	SkippedLines int     // lines with an endpoint missing from the catalog
	MorseUnits   int     // length of the ecliptic message in Morse units
	Unit         float64 // drawing units per Morse unit
	Bytes        int64   // size of the SVG document
	CenterLon    float64

	MissingFigures []string // configured figures absent from the figure file

	// Unresolved has one UNKNOWN_STAR error per skipped line.
	Unresolved []*catalog.RecordError
}

// Composer writes chart SVG documents.
type Composer struct {
	page     config.PageConfig
	stars    config.StarsConfig
	ecliptic config.EclipticConfig
	style    config.StyleConfig
}

// NewComposer returns a composer for the given configuration.
func NewComposer(cfg *config.Config) *Composer {
	return &Composer{
		page:     cfg.Page,
		stars:    cfg.Stars,
		ecliptic: cfg.Ecliptic,
		style:    cfg.Style,
	}
}

// Compose writes the scene to w as one SVG document with background,
// figures, stars and ecliptic layers, bottom to top.
func (c *Composer) Compose(w io.Writer, scene Scene) (Stats, error) {
	var stats Stats

	segs, unit, err := c.encodeMessage()
	if err != nil {
		return stats, err
	}
	stats.MorseUnits = morse.Units(segs)
	stats.Unit = unit
	stats.CenterLon = scene.Projection.CenterLon

	cw := &countingWriter{w: w}
	doc := svg.New(cw)
	width, height := c.page.Width(), c.page.Height()
	doc.Start(width, height)

	doc.Gid("background")
	doc.Rect(0, 0, width, height, attr("fill", c.style.Background))
	doc.Gend()

	doc.Group(`id="figures"`,
		attr("stroke", c.style.LineColor),
		attr("stroke-width", num(c.style.LineWidth)),
		`stroke-linecap="round"`)
	for _, l := range scene.Lines {
		from, okFrom := lookup(scene.Lookup, l.From)
		to, okTo := lookup(scene.Lookup, l.To)
		if !okFrom || !okTo {
			missing := l.From
			if okFrom {
				missing = l.To
			}
			stats.SkippedLines++
			stats.Unresolved = append(stats.Unresolved, &catalog.RecordError{
				Source: "figures",
				Reason: catalog.ReasonUnknownStar,
				Field:  "hip",
				Value:  strconv.Itoa(missing),
			})
			continue
		}
		a, b := scene.Projection.Segment(from.Ecliptic(), to.Ecliptic())
		doc.Line(a.X, a.Y, b.X, b.Y)
		stats.Lines++
	}
	doc.Gend()

	doc.Group(`id="stars"`, attr("fill", c.style.StarColor))
	for _, s := range scene.Stars {
		p := scene.Projection.Project(s.LonDeg, s.LatDeg)
		doc.Circle(p.X, p.Y, c.stars.RadiusFor(s.Mag))
		stats.Stars++
	}
	doc.Gend()

	doc.Group(`id="ecliptic"`,
		`fill="none"`,
		attr("stroke", c.style.EclipticColor),
		attr("stroke-width", num(c.style.EclipticWidth)),
		`stroke-linecap="butt"`)
	y := scene.Projection.Project(scene.Projection.CenterLon, 0).Y
	d := fmt.Sprintf("M %s %s H %s", num(c.page.Border()), num(y), num(width-c.page.Border()))
	if dash := morse.DashArray(segs, unit); dash != nil {
		doc.Path(d, attr("stroke-dasharray", morse.FormatDashArray(dash)))
	} else {
		doc.Path(d)
	}
	doc.Gend()

	doc.End()

	stats.Bytes = cw.n
	if cw.err != nil {
		return stats, fmt.Errorf("write svg: %w", cw.err)
	}
	return stats, nil
}

// encodeMessage encodes the ecliptic message. A zero unit stretches the message
// to span the sky width.
func (c *Composer) encodeMessage() ([]morse.Segment, float64, error) {
	unit := c.ecliptic.Unit
	if unit == 0 {
		unit = 1
	}
	segs, err := morse.Encode(c.ecliptic.Message, unit)
	if err != nil {
		return nil, 0, fmt.Errorf("encode ecliptic message: %w", err)
	}
	if c.ecliptic.Unit != 0 {
		return segs, unit, nil
	}

	units := morse.Units(segs)
	if units == 0 {
		return segs, 0, nil
	}
	unit = c.page.SkyWidth() / float64(units)
	for i := range segs {
		segs[i].Length = float64(segs[i].Units) * unit
	}
	return segs, unit, nil
}

func lookup(stars StarLookup, hip int) (catalog.Star, bool) {
	if stars == nil {
		return catalog.Star{}, false
	}
	return stars.Lookup(hip)
}

func attr(name, value string) string {
	return name + `="` + value + `"`
}

// num formats an attribute value to thousandths of a drawing unit.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

// countingWriter records the bytes written and the first write error;
// the svg package does not report errors itself.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	cw.err = err
	return n, err
}
