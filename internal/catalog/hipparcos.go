package catalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/litescript/ecliptic-banner/internal/astro"
)

// Byte ranges of the fields used from a hip2.dat record (Hipparcos, the New
// Reduction, van Leeuwen 2007). Ranges are 0-based and half-open. RA and Dec
// are in radians; the magnitude is Hp.
const (
	hipIDStart, hipIDEnd   = 0, 6
	hipRAStart, hipRAEnd   = 15, 28
	hipDecStart, hipDecEnd = 29, 42
	hipMagStart, hipMagEnd = 129, 136
)

// DefaultMagnitudeLimit drops stars too faint to matter on a printed banner.
const DefaultMagnitudeLimit = 7.0

var errNotFinite = errors.New("value is not finite")

// maxRecordLen bounds a single catalog line.
const maxRecordLen = 1 << 16

// LoadOptions configures star catalog loading.
type LoadOptions struct {
	// MagnitudeLimit filters stars fainter than this value. Zero disables the limit.
	MagnitudeLimit float64

	// ObliquityDeg is used for the equatorial to ecliptic rotation.
	// Zero selects astro.DefaultObliquityDeg.
	ObliquityDeg float64

	// Source names the input in diagnostics.
	Source string
}

// DefaultLoadOptions returns the options used for banner charts.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		MagnitudeLimit: DefaultMagnitudeLimit,
		ObliquityDeg:   astro.DefaultObliquityDeg,
		Source:         "-",
	}
}

// LoadStats summarizes a star catalog load.
type LoadStats struct {
	Records   int // non-blank lines read
	Loaded    int // stars kept
	Discarded int // malformed records skipped
	Filtered  int // valid records fainter than the magnitude limit
	Skipped   []*RecordError
}

// LoadStars parses a hip2.dat star catalog. Malformed records are skipped and
// reported in the stats; only a read failure returns an error.
func LoadStars(r io.Reader, opts LoadOptions) (*Catalog, LoadStats, error) {
	if opts.ObliquityDeg == 0 {
		opts.ObliquityDeg = astro.DefaultObliquityDeg
	}
	if opts.Source == "" {
		opts.Source = "-"
	}

	var stats LoadStats
	var stars []Star

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxRecordLen)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		stats.Records++

		star, rErr := parseHipRecord(line, opts.ObliquityDeg)
		if rErr != nil {
			rErr.Source = opts.Source
			rErr.Line = lineNo
			stats.Discarded++
			stats.Skipped = append(stats.Skipped, rErr)
			continue
		}

		if opts.MagnitudeLimit != 0 && star.Mag > opts.MagnitudeLimit {
			stats.Filtered++
			continue
		}
		stars = append(stars, star)
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("read star catalog %s: %w", opts.Source, err)
	}

	cat := NewCatalog(stars)
	stats.Loaded = cat.Len()
	return cat, stats, nil
}

// parseHipRecord parses one fixed-width record. Source and line are filled in
// by the caller.
func parseHipRecord(line string, obliquityDeg float64) (Star, *RecordError) {
	if len(line) <= hipMagStart {
		return Star{}, &RecordError{
			Reason: ReasonTruncated,
			Err:    fmt.Errorf("record has %d bytes, magnitude starts at %d", len(line), hipMagStart),
		}
	}

	idStr := fixedField(line, hipIDStart, hipIDEnd)
	hip, err := strconv.Atoi(idStr)
	if err != nil {
		return Star{}, badField("hip", idStr, err)
	}

	raRad, rErr := parseFloatField(line, hipRAStart, hipRAEnd, "ra")
	if rErr != nil {
		return Star{}, rErr
	}
	decRad, rErr := parseFloatField(line, hipDecStart, hipDecEnd, "dec")
	if rErr != nil {
		return Star{}, rErr
	}
	mag, rErr := parseFloatField(line, hipMagStart, hipMagEnd, "mag")
	if rErr != nil {
		return Star{}, rErr
	}

	return NewStar(hip, astro.RadToDeg(raRad), astro.RadToDeg(decRad), mag, obliquityDeg), nil
}

func parseFloatField(line string, start, end int, name string) (float64, *RecordError) {
	s := fixedField(line, start, end)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, badField(name, s, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, badField(name, s, errNotFinite)
	}
	return f, nil
}

// fixedField returns the trimmed bytes [start:end), clipped to the line.
func fixedField(line string, start, end int) string {
	if start >= len(line) {
		return ""
	}
	if end > len(line) {
		end = len(line)
	}
	return strings.TrimSpace(line[start:end])
}

func badField(name, value string, err error) *RecordError {
	return &RecordError{
		Reason: ReasonBadField,
		Field:  name,
		Value:  value,
		Err:    err,
	}
}
