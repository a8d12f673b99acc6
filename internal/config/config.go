// Package config holds the chart layout and style configuration.
//
// Defaults reproduce the LAS ecliptic banner: an 8.5 inch wide page at 100
// units per inch with half-inch borders, the twelve zodiac figures, and the
// ecliptic dashed with "the ecliptic -- lackawanna astronomical society".
// A YAML file overlays the defaults; keys it omits keep their default value.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/litescript/ecliptic-banner/internal/astro"
)

// Config is the complete chart configuration.
type Config struct {
	Page       PageConfig       `yaml:"page"`
	Catalog    CatalogConfig    `yaml:"catalog"`
	Stars      StarsConfig      `yaml:"stars"`
	Figures    []string         `yaml:"figures"`
	Projection ProjectionConfig `yaml:"projection"`
	Ecliptic   EclipticConfig   `yaml:"ecliptic"`
	Style      StyleConfig      `yaml:"style"`
}

// PageConfig sizes the output document. Drawing units are 1/DPI inch.
type PageConfig struct {
	WidthIn  float64 `yaml:"width_in"`
	DPI      float64 `yaml:"dpi"`
	BorderIn float64 `yaml:"border_in"`
}

// Width returns the page width in drawing units.
func (p PageConfig) Width() float64 { return p.WidthIn * p.DPI }

// Border returns the border width in drawing units.
func (p PageConfig) Border() float64 { return p.BorderIn * p.DPI }

// SkyWidth returns the width spanned by 360° of longitude.
func (p PageConfig) SkyWidth() float64 { return p.Width() - 2*p.Border() }

// Height returns the page height: 180° of latitude at the longitude scale.
func (p PageConfig) Height() float64 { return p.SkyWidth() / 2 }

// CatalogConfig controls star catalog loading.
type CatalogConfig struct {
	MagnitudeLimit float64 `yaml:"magnitude_limit"`
	ObliquityDeg   float64 `yaml:"obliquity_deg"`
}

// StarsConfig controls which stars are drawn and how large.
type StarsConfig struct {
	// MaxMagnitude draws stars brighter than this value.
	MaxMagnitude float64 `yaml:"max_magnitude"`

	// IncludeFigureStars also draws every star used by a drawn figure.
	IncludeFigureStars bool `yaml:"include_figure_stars"`

	// RadiusTable maps magnitude to dot radius, ordered by MaxMag.
	RadiusTable []RadiusStep `yaml:"radius_table"`
}

// RadiusStep gives the dot radius for stars with magnitude up to MaxMag.
type RadiusStep struct {
	MaxMag float64 `yaml:"max_mag"`
	Radius float64 `yaml:"radius"`
}

// RadiusFor returns the radius of the first step whose MaxMag is at least
// mag. Stars fainter than every step use the last step.
func (s StarsConfig) RadiusFor(mag float64) float64 {
	if len(s.RadiusTable) == 0 {
		return 0
	}
	for _, step := range s.RadiusTable {
		if mag <= step.MaxMag {
			return step.Radius
		}
	}
	return s.RadiusTable[len(s.RadiusTable)-1].Radius
}

// ProjectionConfig picks the longitude placed at the page centre.
type ProjectionConfig struct {
	// Anchor names a figure whose eastern end is placed at the left sky
	// edge. It takes precedence over CenterLon.
	Anchor string `yaml:"anchor"`

	// CenterLon is the ecliptic longitude at the horizontal centre, degrees.
	CenterLon float64 `yaml:"center_lon"`
}

// EclipticConfig controls the Morse-dashed ecliptic line.
type EclipticConfig struct {
	Message string `yaml:"message"`

	// Unit is the length of one Morse unit in drawing units. Zero stretches
	// the message to fill the sky width exactly.
	Unit float64 `yaml:"unit"`
}

// StyleConfig holds SVG presentation attributes.
type StyleConfig struct {
	Background    string  `yaml:"background"`
	StarColor     string  `yaml:"star_color"`
	LineColor     string  `yaml:"line_color"`
	LineWidth     float64 `yaml:"line_width"`
	EclipticColor string  `yaml:"ecliptic_color"`
	EclipticWidth float64 `yaml:"ecliptic_width"`
}

// Zodiac lists the figures drawn on the banner.
var Zodiac = []string{"Ari", "Tau", "Gem", "Cnc", "Leo", "Vir", "Lib", "Sco", "Sgr", "Aqr", "Psc", "Cap"}

// DefaultMessage is the text spelled along the ecliptic.
const DefaultMessage = "the ecliptic -- lackawanna astronomical society"

// DefaultConfig returns the banner configuration.
func DefaultConfig() *Config {
	return &Config{
		Page: PageConfig{
			WidthIn:  8.5,
			DPI:      100,
			BorderIn: 0.5,
		},
		Catalog: CatalogConfig{
			MagnitudeLimit: 7.0,
			ObliquityDeg:   astro.DefaultObliquityDeg,
		},
		Stars: StarsConfig{
			MaxMagnitude:       3.5,
			IncludeFigureStars: true,
			RadiusTable:        DefaultRadiusTable(),
		},
		Figures: append([]string(nil), Zodiac...),
		Ecliptic: EclipticConfig{
			Message: DefaultMessage,
		},
		Style: StyleConfig{
			Background:    "#060c64",
			StarColor:     "#ffffff",
			LineColor:     "#f0e12c",
			LineWidth:     0.75,
			EclipticColor: "#ffc000",
			EclipticWidth: 0.75,
		},
	}
}

// DefaultRadiusTable steps the dot radius down by roughly 0.24 units per
// magnitude, floor 0.42.
func DefaultRadiusTable() []RadiusStep {
	return []RadiusStep{
		{MaxMag: -0.5, Radius: 2.33},
		{MaxMag: 0.5, Radius: 2.09},
		{MaxMag: 1.5, Radius: 1.85},
		{MaxMag: 2.5, Radius: 1.61},
		{MaxMag: 3.5, Radius: 1.37},
		{MaxMag: 4.5, Radius: 1.13},
		{MaxMag: 5.5, Radius: 0.90},
		{MaxMag: 6.5, Radius: 0.66},
		{MaxMag: 7.5, Radius: 0.42},
	}
}

// Load returns DefaultConfig overlaid with the YAML file at path. An empty
// path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse overlays YAML data onto DefaultConfig and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// applyDefaults fills values a YAML file explicitly zeroed but that have no
// meaningful zero.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.Page.DPI == 0 {
		c.Page.DPI = def.Page.DPI
	}
	if c.Catalog.ObliquityDeg == 0 {
		c.Catalog.ObliquityDeg = def.Catalog.ObliquityDeg
	}
	if len(c.Stars.RadiusTable) == 0 {
		c.Stars.RadiusTable = def.Stars.RadiusTable
	}
	if c.Style.LineWidth == 0 {
		c.Style.LineWidth = def.Style.LineWidth
	}
	if c.Style.EclipticWidth == 0 {
		c.Style.EclipticWidth = def.Style.EclipticWidth
	}
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate rejects layouts that cannot be drawn.
func (c *Config) Validate() error {
	if c.Page.WidthIn <= 0 || c.Page.DPI <= 0 {
		return fmt.Errorf("%w: page width and dpi must be positive", ErrInvalid)
	}
	if c.Page.BorderIn < 0 || c.Page.SkyWidth() <= 0 {
		return fmt.Errorf("%w: border %.2fin leaves no sky on a %.2fin page", ErrInvalid, c.Page.BorderIn, c.Page.WidthIn)
	}
	if c.Ecliptic.Unit < 0 {
		return fmt.Errorf("%w: ecliptic unit must not be negative", ErrInvalid)
	}
	for i, step := range c.Stars.RadiusTable {
		if step.Radius <= 0 {
			return fmt.Errorf("%w: radius_table[%d] radius must be positive", ErrInvalid, i)
		}
		if i > 0 && step.MaxMag <= c.Stars.RadiusTable[i-1].MaxMag {
			return fmt.Errorf("%w: radius_table must be ordered by max_mag", ErrInvalid)
		}
	}
	return nil
}
