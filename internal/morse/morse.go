// Package morse turns text into Morse code timing sequences and SVG dash
// patterns.
//
// Timing follows the ITU convention: a dot is one unit, a dash three; marks
// within a character are separated by one unit, characters by three and
// words by seven.
package morse

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Timing in units.
const (
	DotUnits       = 1
	DashUnits      = 3
	SymbolGapUnits = 1
	LetterGapUnits = 3
	WordGapUnits   = 7
)

// Segment is one mark (dot or dash) or gap of an encoded message.
type Segment struct {
	Mark   bool    // true for a dot or dash, false for a gap
	Units  int     // length in Morse units
	Length float64 // Units scaled by the unit length
}

// UnsupportedError reports a character with no Morse representation.
type UnsupportedError struct {
	Char rune
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("no morse code for %q", e.Char)
}

var alphabet = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".", 'F': "..-.",
	'G': "--.", 'H': "....", 'I': "..", 'J': ".---", 'K': "-.-", 'L': ".-..",
	'M': "--", 'N': "-.", 'O': "---", 'P': ".--.", 'Q': "--.-", 'R': ".-.",
	'S': "...", 'T': "-", 'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-",
	'Y': "-.--", 'Z': "--..",

	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",

	'.': ".-.-.-", ',': "--..--", '?': "..--..", '\'': ".----.", '!': "-.-.--",
	'/': "-..-.", '(': "-.--.", ')': "-.--.-", '&': ".-...", ':': "---...",
	';': "-.-.-.", '=': "-...-", '+': ".-.-.", '-': "-....-", '_': "..--.-",
	'"': ".-..-.", '$': "...-..-", '@': ".--.-.",
}

// Code returns the dot/dash string for a character after normalization.
func Code(r rune) (string, bool) {
	code, ok := alphabet[r]
	return code, ok
}

// Normalize prepares text for encoding: accents are stripped (é -> E),
// letters upper-cased with full case mapping (ß -> SS), and runs of
// whitespace collapsed to single spaces.
func Normalize(text string) (string, error) {
	fold := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
		cases.Upper(language.Und),
	)
	s, _, err := transform.String(fold, text)
	if err != nil {
		return "", fmt.Errorf("normalize message: %w", err)
	}
	return strings.Join(strings.Fields(s), " "), nil
}

// Encode converts text to a timing sequence with every length multiplied by
// unit. The sequence starts and ends with a mark; an empty message yields no
// segments.
func Encode(text string, unit float64) ([]Segment, error) {
	normalized, err := Normalize(text)
	if err != nil {
		return nil, err
	}

	var segs []Segment
	add := func(mark bool, units int) {
		segs = append(segs, Segment{Mark: mark, Units: units, Length: float64(units) * unit})
	}

	for wi, word := range strings.Split(normalized, " ") {
		if word == "" {
			continue
		}
		if wi > 0 {
			add(false, WordGapUnits)
		}
		for ci, r := range []rune(word) {
			code, ok := Code(r)
			if !ok {
				return nil, &UnsupportedError{Char: r}
			}
			if ci > 0 {
				add(false, LetterGapUnits)
			}
			for si, sym := range code {
				if si > 0 {
					add(false, SymbolGapUnits)
				}
				if sym == '-' {
					add(true, DashUnits)
				} else {
					add(true, DotUnits)
				}
			}
		}
	}
	return segs, nil
}

// Units returns the total length of a sequence in Morse units.
func Units(segs []Segment) int {
	total := 0
	for _, s := range segs {
		total += s.Units
	}
	return total
}

// DashArray returns stroke-dasharray values for segs. A trailing word gap is
// appended so that the array has even length: SVG repeats an odd-length array
// twice, which would swap marks and gaps on every other repetition.
func DashArray(segs []Segment, unit float64) []float64 {
	if len(segs) == 0 {
		return nil
	}
	values := make([]float64, 0, len(segs)+1)
	for _, s := range segs {
		values = append(values, s.Length)
	}
	if len(values)%2 == 1 {
		values = append(values, WordGapUnits*unit)
	}
	return values
}

// FormatDashArray renders dash values as an SVG attribute value, rounded to
// thousandths of a page unit.
func FormatDashArray(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

// Dots renders a sequence in dot/dash notation with '/' between words, for
// previews.
func Dots(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		switch {
		case s.Mark && s.Units == DashUnits:
			b.WriteByte('-')
		case s.Mark:
			b.WriteByte('.')
		case s.Units == LetterGapUnits:
			b.WriteByte(' ')
		case s.Units == WordGapUnits:
			b.WriteString(" / ")
		}
	}
	return b.String()
}
