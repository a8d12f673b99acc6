package catalog

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FigureStats summarizes a figure file load.
type FigureStats struct {
	Records int // non-comment records read
	Figures int // figures kept
	Lines   int // line segments across kept figures
	Stars   int // distinct stars referenced by kept figures
	Skipped []*RecordError
}

// LoadFigures parses a Stellarium constellationship.fab file:
//
//	# comment
//	Ari 4 13209 9884 9884 8903 8903 8832 ...
//
// Each record is an abbreviation, a segment count, then two HIP ids per
// segment. Malformed records are skipped and reported in the stats. Figures
// are returned in file order; a repeated name replaces the earlier figure.
func LoadFigures(r io.Reader, source string) ([]Figure, FigureStats, error) {
	if source == "" {
		source = "-"
	}

	var stats FigureStats
	var figures []Figure
	position := make(map[string]int)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxRecordLen)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		stats.Records++

		fig, rErr := parseFigureRecord(line)
		if rErr != nil {
			rErr.Source = source
			rErr.Line = lineNo
			stats.Skipped = append(stats.Skipped, rErr)
			continue
		}

		if i, ok := position[fig.Name]; ok {
			stats.Skipped = append(stats.Skipped, &RecordError{
				Source: source,
				Line:   lineNo,
				Reason: ReasonDuplicate,
				Field:  "name",
				Value:  fig.Name,
			})
			figures[i] = fig
			continue
		}
		position[fig.Name] = len(figures)
		figures = append(figures, fig)
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("read figure file %s: %w", source, err)
	}

	stars := make(map[int]bool)
	for _, f := range figures {
		stats.Lines += len(f.Lines)
		for _, id := range f.StarIDs() {
			stars[id] = true
		}
	}
	stats.Figures = len(figures)
	stats.Stars = len(stars)

	return figures, stats, nil
}

func parseFigureRecord(line string) (Figure, *RecordError) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Figure{}, &RecordError{
			Reason: ReasonTruncated,
			Err:    fmt.Errorf("want name and segment count, got %d fields", len(fields)),
		}
	}

	name := fields[0]
	count, err := strconv.Atoi(fields[1])
	if err != nil || count < 0 {
		if err == nil {
			err = fmt.Errorf("negative segment count")
		}
		return Figure{}, badField("count", fields[1], err)
	}

	ids := fields[2:]
	want := 2 * count
	switch {
	case len(ids) < want:
		return Figure{}, &RecordError{
			Reason: ReasonTruncated,
			Field:  "name",
			Value:  name,
			Err:    fmt.Errorf("%d segments need %d ids, got %d", count, want, len(ids)),
		}
	case len(ids) > want:
		return Figure{}, &RecordError{
			Reason: ReasonExtraFields,
			Field:  "name",
			Value:  name,
			Err:    fmt.Errorf("%d segments need %d ids, got %d", count, want, len(ids)),
		}
	}

	fig := Figure{Name: name, Lines: make([]Line, 0, count)}
	for i := 0; i < want; i += 2 {
		from, err := strconv.Atoi(ids[i])
		if err != nil {
			return Figure{}, badField("hip", ids[i], err)
		}
		to, err := strconv.Atoi(ids[i+1])
		if err != nil {
			return Figure{}, badField("hip", ids[i+1], err)
		}
		fig.Lines = append(fig.Lines, Line{From: from, To: to})
	}
	return fig, nil
}
