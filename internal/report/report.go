// Package report prints the run summary: what was loaded and what each
// chart contains.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/litescript/ecliptic-banner/internal/catalog"
	"github.com/litescript/ecliptic-banner/internal/chart"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

const ruleWidth = 78

// ChartRow describes one written chart.
type ChartRow struct {
	File   string
	Anchor string
	Stats  chart.Stats
}

// Summary is everything reported after a run.
type Summary struct {
	StarsSource   string
	Stars         catalog.LoadStats
	FiguresSource string
	Figures       catalog.FigureStats
	Charts        []ChartRow
}

// NewChartRow builds a row from a rendered chart.
func NewChartRow(file, anchor string, stats chart.Stats) ChartRow {
	return ChartRow{File: file, Anchor: anchor, Stats: stats}
}

// WriteSummaryTable writes the summary to w. styled enables terminal colors.
func WriteSummaryTable(w io.Writer, s Summary, styled bool) {
	paint := func(st lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return st.Render(text)
	}

	fmt.Fprintln(w, paint(titleStyle, "Ecliptic banner"))
	fmt.Fprintln(w, paint(dimStyle, strings.Repeat("─", ruleWidth)))

	fmt.Fprintf(w, "%-10s %-22s %s records, %s loaded, %s faint, %s skipped\n",
		"Stars", truncateStr(s.StarsSource, 22),
		humanize.Comma(int64(s.Stars.Records)),
		humanize.Comma(int64(s.Stars.Loaded)),
		humanize.Comma(int64(s.Stars.Filtered)),
		humanize.Comma(int64(s.Stars.Discarded)))
	fmt.Fprintf(w, "%-10s %-22s %s figures, %s lines, %s skipped\n",
		"Figures", truncateStr(s.FiguresSource, 22),
		humanize.Comma(int64(s.Figures.Figures)),
		humanize.Comma(int64(s.Figures.Lines)),
		humanize.Comma(int64(len(s.Figures.Skipped))))
	fmt.Fprintln(w)

	if len(s.Charts) == 0 {
		fmt.Fprintln(w, "No charts written")
		return
	}

	header := fmt.Sprintf("%-44s %-6s %8s %6s %6s %8s %9s",
		"File", "Anchor", "Center", "Stars", "Lines", "Skipped", "Size")
	fmt.Fprintln(w, paint(headerStyle, header))
	fmt.Fprintln(w, paint(dimStyle, strings.Repeat("─", ruleWidth)))

	for _, r := range s.Charts {
		anchor := r.Anchor
		if anchor == "" {
			anchor = "-"
		}
		skipped := fmt.Sprintf("%8d", r.Stats.SkippedLines)
		if r.Stats.SkippedLines > 0 {
			skipped = paint(warnStyle, skipped)
		}
		fmt.Fprintf(w, "%-44s %-6s %7.2f° %6d %6d %s %9s\n",
			truncateStr(r.File, 44),
			truncateStr(anchor, 6),
			r.Stats.CenterLon,
			r.Stats.Stars,
			r.Stats.Lines,
			skipped,
			humanize.Bytes(uint64(r.Stats.Bytes)),
		)
		if len(r.Stats.MissingFigures) > 0 {
			fmt.Fprintln(w, paint(warnStyle, "  missing figures: "+strings.Join(r.Stats.MissingFigures, ", ")))
		}
	}

	fmt.Fprintf(w, "\nTotal: %d charts\n", len(s.Charts))
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
