package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig_BannerLayout(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.Page.Width(); got != 850 {
		t.Errorf("Width() = %v, want 850", got)
	}
	if got := cfg.Page.Border(); got != 50 {
		t.Errorf("Border() = %v, want 50", got)
	}
	if got := cfg.Page.SkyWidth(); got != 750 {
		t.Errorf("SkyWidth() = %v, want 750", got)
	}
	if got := cfg.Page.Height(); got != 375 {
		t.Errorf("Height() = %v, want 375", got)
	}
	if len(cfg.Figures) != 12 {
		t.Errorf("default figures = %d, want the 12 zodiac figures", len(cfg.Figures))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestDefaultConfig_FiguresNotShared(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Figures[0] = "Oph"
	if Zodiac[0] != "Ari" {
		t.Error("modifying a config must not modify the Zodiac list")
	}
}

func TestRadiusFor(t *testing.T) {
	stars := DefaultConfig().Stars

	tests := []struct {
		mag  float64
		want float64
	}{
		{-1.46, 2.33}, // Sirius
		{-0.5, 2.33},
		{0.03, 2.09},
		{1.35, 1.85},
		{3.5, 1.37},
		{6.9, 0.42},
		{12, 0.42},
	}

	for _, tt := range tests {
		if got := stars.RadiusFor(tt.mag); got != tt.want {
			t.Errorf("RadiusFor(%v) = %v, want %v", tt.mag, got, tt.want)
		}
	}

	// brighter never draws smaller
	prev := math.Inf(1)
	for mag := -2.0; mag <= 9; mag += 0.25 {
		r := stars.RadiusFor(mag)
		if r > prev {
			t.Errorf("radius grows from %v to %v at mag %v", prev, r, mag)
		}
		prev = r
	}
}

func TestRadiusFor_EmptyTable(t *testing.T) {
	if got := (StarsConfig{}).RadiusFor(1); got != 0 {
		t.Errorf("RadiusFor on empty table = %v, want 0", got)
	}
}

func TestParse_OverlaysDefaults(t *testing.T) {
	data := []byte(`
page:
  width_in: 24
projection:
  anchor: Leo
ecliptic:
  message: sos
  unit: 2
figures: [Leo, Vir]
stars:
  include_figure_stars: false
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Page.WidthIn != 24 {
		t.Errorf("WidthIn = %v, want 24", cfg.Page.WidthIn)
	}
	if cfg.Page.DPI != 100 || cfg.Page.BorderIn != 0.5 {
		t.Errorf("omitted page keys should keep defaults, got %+v", cfg.Page)
	}
	if cfg.Projection.Anchor != "Leo" {
		t.Errorf("Anchor = %q, want Leo", cfg.Projection.Anchor)
	}
	if cfg.Ecliptic.Message != "sos" || cfg.Ecliptic.Unit != 2 {
		t.Errorf("Ecliptic = %+v", cfg.Ecliptic)
	}
	if len(cfg.Figures) != 2 || cfg.Figures[1] != "Vir" {
		t.Errorf("Figures = %v, want [Leo Vir]", cfg.Figures)
	}
	if cfg.Stars.IncludeFigureStars {
		t.Error("include_figure_stars: false should override the default")
	}
	if cfg.Stars.MaxMagnitude != 3.5 {
		t.Errorf("MaxMagnitude = %v, want default 3.5", cfg.Stars.MaxMagnitude)
	}
	if cfg.Style.Background != "#060c64" {
		t.Errorf("Background = %q, want default", cfg.Style.Background)
	}
}

func TestParse_ZeroedValuesRestored(t *testing.T) {
	cfg, err := Parse([]byte("page:\n  dpi: 0\nstars:\n  radius_table: []\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Page.DPI != 100 {
		t.Errorf("DPI = %v, want default 100", cfg.Page.DPI)
	}
	if len(cfg.Stars.RadiusTable) == 0 {
		t.Error("empty radius table should fall back to the default table")
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"negative width", "page:\n  width_in: -1\n"},
		{"border eats page", "page:\n  width_in: 1\n  border_in: 0.5\n"},
		{"negative unit", "ecliptic:\n  unit: -1\n"},
		{"unordered radius table", "stars:\n  radius_table:\n    - {max_mag: 3, radius: 1}\n    - {max_mag: 2, radius: 2}\n"},
		{"zero radius", "stars:\n  radius_table:\n    - {max_mag: 3, radius: 0}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParse_BadYAML(t *testing.T) {
	if _, err := Parse([]byte("page: [not, a, map")); err == nil {
		t.Error("expected YAML syntax error")
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Page.Width() != 850 {
		t.Error("empty path should return defaults")
	}

	path := filepath.Join(t.TempDir(), "chart.yaml")
	if err := os.WriteFile(path, []byte("projection:\n  center_lon: 120\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Projection.CenterLon != 120 {
		t.Errorf("CenterLon = %v, want 120", cfg.Projection.CenterLon)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Projection.Anchor = "Sco"

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if back.Projection.Anchor != "Sco" || len(back.Stars.RadiusTable) != len(cfg.Stars.RadiusTable) {
		t.Errorf("round trip lost data: %+v", back)
	}
}
