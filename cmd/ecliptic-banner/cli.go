package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/litescript/ecliptic-banner/internal/catalog"
	"github.com/litescript/ecliptic-banner/internal/chart"
	"github.com/litescript/ecliptic-banner/internal/config"
	"github.com/litescript/ecliptic-banner/internal/logging"
	"github.com/litescript/ecliptic-banner/internal/morse"
	"github.com/litescript/ecliptic-banner/internal/report"
	"github.com/litescript/ecliptic-banner/internal/version"
)

// maxLoggedSkips caps per-record warnings; the rest are only counted.
const maxLoggedSkips = 20

// session carries what the global flags set up for a command.
type session struct {
	cfg   *config.Config
	log   *logging.Logger
	quiet bool
}

// newCLIApp creates the CLI application with all commands.
func newCLIApp(stdout, stderr io.Writer) *cli.App {
	s := &session{}

	app := &cli.App{
		Name:      "ecliptic-banner",
		Usage:     "Draw the ecliptic star chart banner as SVG",
		Version:   version.Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, EnvVars: []string{"ECLIPTIC_BANNER_CONFIG"}, Usage: "YAML config file overlaying the defaults"},
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "Log level (debug, info, warn, error)"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Suppress the run summary"},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}
			s.cfg = cfg
			s.log = logging.NewWithWriter(logging.ParseLevel(c.String("log-level")), c.App.ErrWriter)
			s.quiet = c.Bool("quiet")
			return nil
		},
		After: func(c *cli.Context) error {
			if s.log != nil {
				_ = s.log.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			renderCmd(s),
			morseCmd(s),
			configCmd(s),
		},
	}
	// Errors are returned to main, which prints them and sets the exit code
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// renderCmd creates the render command.
func renderCmd(s *session) *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Render the banner chart",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "stars", Aliases: []string{"s"}, Required: true, Usage: "Hipparcos hip2.dat catalog (plain or gzip)"},
			&cli.StringFlag{Name: "figures", Aliases: []string{"f"}, Required: true, Usage: "Stellarium constellationship.fab figure file"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "ecliptic_banner.svg", Usage: "Output SVG file (- for stdout)"},
			&cli.StringFlag{Name: "anchor", Aliases: []string{"a"}, Usage: "Begin the chart with this figure"},
			&cli.Float64Flag{Name: "center-lon", Usage: "Ecliptic longitude at the page centre, degrees"},
			&cli.StringSliceFlag{Name: "figure", Usage: "Figure to draw (repeatable, default the zodiac)"},
			&cli.Float64Flag{Name: "morse-unit", Usage: "Drawing units per Morse unit (0 fits the message to the sky)"},
			&cli.BoolFlag{Name: "all-anchors", Usage: "Write one chart beginning with each figure"},
			&cli.StringFlag{Name: "out-dir", Value: ".", Usage: "Directory for --all-anchors charts"},
		},
		Action: func(c *cli.Context) error {
			cfg := s.cfg
			if c.IsSet("anchor") {
				cfg.Projection.Anchor = c.String("anchor")
			}
			if c.IsSet("center-lon") {
				cfg.Projection.CenterLon = c.Float64("center-lon")
				if !c.IsSet("anchor") {
					cfg.Projection.Anchor = ""
				}
			}
			if c.IsSet("figure") {
				cfg.Figures = c.StringSlice("figure")
			}
			if c.IsSet("morse-unit") {
				cfg.Ecliptic.Unit = c.Float64("morse-unit")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			cat, figures, summary, err := loadInputs(s, c.String("stars"), c.String("figures"))
			if err != nil {
				return err
			}

			if c.Bool("all-anchors") {
				summary.Charts, err = renderAllAnchors(s, cat, figures, c.String("out-dir"))
			} else {
				var row report.ChartRow
				row, err = renderOne(s, cat, figures, c.String("out"), c.App.Writer)
				summary.Charts = append(summary.Charts, row)
			}
			if err != nil {
				return err
			}

			if !s.quiet {
				w := c.App.Writer
				if c.String("out") == "-" && !c.Bool("all-anchors") {
					w = c.App.ErrWriter
				}
				report.WriteSummaryTable(w, summary, isTerminal(w))
			}
			return nil
		},
	}
}

// loadInputs reads the star catalog and figure file, logging skipped records.
func loadInputs(s *session, starsPath, figuresPath string) (*catalog.Catalog, []catalog.Figure, report.Summary, error) {
	summary := report.Summary{
		StarsSource:   filepath.Base(starsPath),
		FiguresSource: filepath.Base(figuresPath),
	}

	opts := catalog.LoadOptions{
		MagnitudeLimit: s.cfg.Catalog.MagnitudeLimit,
		ObliquityDeg:   s.cfg.Catalog.ObliquityDeg,
	}
	s.log.Debug("Loading stars from %s", starsPath)
	cat, starStats, err := catalog.OpenStars(starsPath, opts)
	if err != nil {
		return nil, nil, summary, err
	}
	summary.Stars = starStats
	logSkipped(s.log, starStats.Skipped)
	s.log.Info("Loaded %d stars (%d faint, %d skipped)", starStats.Loaded, starStats.Filtered, starStats.Discarded)

	s.log.Debug("Loading figures from %s", figuresPath)
	figures, figStats, err := catalog.OpenFigures(figuresPath)
	if err != nil {
		return nil, nil, summary, err
	}
	summary.Figures = figStats
	logSkipped(s.log, figStats.Skipped)
	s.log.Info("Loaded %d figures with %d lines", figStats.Figures, figStats.Lines)

	return cat, figures, summary, nil
}

func logSkipped(log *logging.Logger, skipped []*catalog.RecordError) {
	for i, e := range skipped {
		if i == maxLoggedSkips {
			log.Warn("... %d more records skipped", len(skipped)-maxLoggedSkips)
			return
		}
		log.Warn("Skipped record: %v", e)
	}
}

// renderOne writes a single chart centred per the configuration.
func renderOne(s *session, cat *catalog.Catalog, figures []catalog.Figure, out string, stdout io.Writer) (report.ChartRow, error) {
	center, err := chart.CenterFor(s.cfg, cat, figures)
	if err != nil {
		return report.ChartRow{}, err
	}

	var stats chart.Stats
	if out == "-" {
		w := bufio.NewWriter(stdout)
		stats, err = chart.Render(w, s.cfg, cat, figures, center)
		if err == nil {
			err = w.Flush()
		}
	} else {
		stats, err = writeChart(out, func(w io.Writer) (chart.Stats, error) {
			return chart.Render(w, s.cfg, cat, figures, center)
		})
	}
	if err != nil {
		return report.ChartRow{}, err
	}

	logChart(s.log, out, stats, true)
	return report.NewChartRow(out, s.cfg.Projection.Anchor, stats), nil
}

// renderAllAnchors writes one chart beginning with each configured figure,
// in name order.
func renderAllAnchors(s *session, cat *catalog.Catalog, figures []catalog.Figure, dir string) ([]report.ChartRow, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	drawn, missing := chart.SelectFigures(figures, s.cfg.Figures)
	for _, name := range missing {
		s.log.Warn("Figure %s not in figure file", name)
	}
	sort.Slice(drawn, func(i, j int) bool { return drawn[i].Name < drawn[j].Name })

	var rows []report.ChartRow
	for _, fig := range drawn {
		center, err := chart.AnchorCenter(fig, cat)
		if err != nil {
			s.log.Warn("Skipping anchor %s: %v", fig.Name, err)
			continue
		}

		path := filepath.Join(dir, chart.AnchorFileName(fig.Name))
		stats, err := writeChart(path, func(w io.Writer) (chart.Stats, error) {
			return chart.Render(w, s.cfg, cat, figures, center)
		})
		if err != nil {
			return rows, err
		}

		logChart(s.log, path, stats, false)
		rows = append(rows, report.NewChartRow(path, fig.Name, stats))
	}
	return rows, nil
}

// writeChart creates path and renders into it.
func writeChart(path string, render func(io.Writer) (chart.Stats, error)) (chart.Stats, error) {
	f, err := os.Create(path)
	if err != nil {
		return chart.Stats{}, fmt.Errorf("create chart: %w", err)
	}

	w := bufio.NewWriter(f)
	stats, err := render(w)
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return stats, fmt.Errorf("write %s: %w", path, err)
	}
	return stats, nil
}

// logChart reports a written chart. Missing figures are logged only when
// the caller has not already reported them.
func logChart(log *logging.Logger, path string, stats chart.Stats, missing bool) {
	if missing {
		for _, name := range stats.MissingFigures {
			log.Warn("Figure %s not in figure file", name)
		}
	}
	if stats.SkippedLines > 0 {
		log.Warn("%s: %d figure lines reference stars missing from the catalog", path, stats.SkippedLines)
		if log.Enabled(logging.LevelDebug) {
			for _, e := range stats.Unresolved {
				log.Debug("Skipped line: %v", e)
			}
		}
	}
	log.Info("Created %s (%d stars, %d lines)", path, stats.Stars, stats.Lines)
}

// morseCmd creates the morse command.
func morseCmd(s *session) *cli.Command {
	return &cli.Command{
		Name:      "morse",
		Usage:     "Print the Morse code and dash array for a message",
		ArgsUsage: "[TEXT...]",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "unit", Aliases: []string{"u"}, Value: 1, Usage: "Length of one Morse unit"},
		},
		Action: func(c *cli.Context) error {
			text := strings.Join(c.Args().Slice(), " ")
			if text == "" {
				text = s.cfg.Ecliptic.Message
			}
			unit := c.Float64("unit")
			if unit <= 0 {
				return fmt.Errorf("unit must be positive, got %v", unit)
			}

			segs, err := morse.Encode(text, unit)
			if err != nil {
				return err
			}

			w := c.App.Writer
			fmt.Fprintln(w, morse.Dots(segs))
			fmt.Fprintf(w, "units: %d\n", morse.Units(segs))
			fmt.Fprintf(w, "stroke-dasharray: %s\n", morse.FormatDashArray(morse.DashArray(segs, unit)))
			return nil
		},
	}
}

// configCmd creates the config command.
func configCmd(s *session) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print the effective configuration as YAML",
		Action: func(c *cli.Context) error {
			data, err := s.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = c.App.Writer.Write(data)
			return err
		},
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
