package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/litescript/ecliptic-banner/internal/catalog"
	"github.com/litescript/ecliptic-banner/internal/chart"
)

func sampleSummary() Summary {
	return Summary{
		StarsSource: "hip2.dat.gz",
		Stars: catalog.LoadStats{
			Records:   117955,
			Loaded:    15630,
			Filtered:  102300,
			Discarded: 25,
		},
		FiguresSource: "constellationship.fab",
		Figures:       catalog.FigureStats{Figures: 88, Lines: 674},
		Charts: []ChartRow{
			NewChartRow("ecliptic_chart_beginning_with_ari.svg", "Ari", chart.Stats{
				CenterLon: 231.5, Stars: 180, Lines: 140, Bytes: 24576,
			}),
			NewChartRow("banner.svg", "", chart.Stats{
				Stars: 12, Lines: 3, SkippedLines: 2, Bytes: 900,
				MissingFigures: []string{"Oph"},
			}),
		},
	}
}

func TestWriteSummaryTable_Plain(t *testing.T) {
	var buf bytes.Buffer
	WriteSummaryTable(&buf, sampleSummary(), false)
	out := buf.String()

	for _, want := range []string{
		"Ecliptic banner",
		"117,955 records, 15,630 loaded, 102,300 faint, 25 skipped",
		"88 figures, 674 lines, 0 skipped",
		"ecliptic_chart_beginning_with_ari.svg",
		"231.50°",
		"25 kB",
		"900 B",
		"missing figures: Oph",
		"Total: 2 charts",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("plain summary contains escape sequences")
	}
}

func TestWriteSummaryTable_NoCharts(t *testing.T) {
	s := sampleSummary()
	s.Charts = nil

	var buf bytes.Buffer
	WriteSummaryTable(&buf, s, true)
	if !strings.Contains(buf.String(), "No charts written") {
		t.Errorf("expected empty-chart notice:\n%s", buf.String())
	}
}

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"constellationship.fab", 10, "constell.."},
		{"abcdef", 3, "abc"},
	}
	for _, tt := range tests {
		if got := truncateStr(tt.in, tt.max); got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
