package chart

import (
	"math"
	"testing"

	"github.com/litescript/ecliptic-banner/internal/astro"
	"github.com/litescript/ecliptic-banner/internal/config"
)

const eps = 1e-9

func bannerPage() config.PageConfig {
	return config.DefaultConfig().Page
}

func TestNewProjection_Scale(t *testing.T) {
	p := NewProjection(bannerPage(), 0)

	// 750 units of sky for 360 degrees
	if math.Abs(p.ScaleY-750.0/360) > eps {
		t.Errorf("ScaleY = %v, want %v", p.ScaleY, 750.0/360)
	}
	if p.ScaleX != -p.ScaleY {
		t.Errorf("ScaleX = %v, want %v", p.ScaleX, -p.ScaleY)
	}
	if math.Abs(p.OffsetY-187.5) > eps {
		t.Errorf("OffsetY = %v, want 187.5", p.OffsetY)
	}
}

func TestProject_PageLayout(t *testing.T) {
	p := NewProjection(bannerPage(), 100)

	tests := []struct {
		name     string
		lon, lat float64
		want     Point
	}{
		{"centre", 100, 0, Point{425, 187.5}},
		{"north pole", 100, 90, Point{425, 0}},
		{"south pole", 100, -90, Point{425, 375}},
		{"left edge", 280, 0, Point{50, 187.5}},
		{"east of centre is left", 190, 0, Point{237.5, 187.5}},
		{"west of centre is right", 10, 0, Point{612.5, 187.5}},
		{"longitude beyond 360", 460, 0, Point{425, 187.5}},
		{"negative longitude", -260, 0, Point{425, 187.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Project(tt.lon, tt.lat)
			if math.Abs(got.X-tt.want.X) > 1e-6 || math.Abs(got.Y-tt.want.Y) > 1e-6 {
				t.Errorf("Project(%v, %v) = %+v, want %+v", tt.lon, tt.lat, got, tt.want)
			}
		})
	}
}

func TestWrap_Range(t *testing.T) {
	for _, center := range []float64{0, 45, 180, 359.5} {
		p := NewProjection(bannerPage(), center)
		for lon := -720.0; lon <= 720; lon += 7.5 {
			w := p.Wrap(lon)
			if w <= p.CenterLon-180 || w > p.CenterLon+180 {
				t.Errorf("center %v: Wrap(%v) = %v outside (%v, %v]", center, lon, w, p.CenterLon-180, p.CenterLon+180)
			}
			if d := math.Mod(w-lon, 360); math.Abs(d) > 1e-9 && math.Abs(math.Abs(d)-360) > 1e-9 {
				t.Errorf("center %v: Wrap(%v) = %v is not congruent", center, lon, w)
			}
		}
	}
}

func TestUnproject_RoundTrip(t *testing.T) {
	p := NewProjection(bannerPage(), 42)

	for lon := -137.0; lon < 223; lon += 11 {
		for lat := -80.0; lat <= 80; lat += 20 {
			pt := p.Project(lon, lat)
			gotLon, gotLat := p.Unproject(pt)
			if math.Abs(gotLon-lon) > 1e-9 || math.Abs(gotLat-lat) > 1e-9 {
				t.Errorf("round trip (%v, %v) -> %+v -> (%v, %v)", lon, lat, pt, gotLon, gotLat)
			}
		}
	}
}

func TestSegment_SeamCrossing(t *testing.T) {
	page := bannerPage()
	// seam at 0/360 sits on the sky edges
	p := NewProjection(page, 180)

	a := astro.Ecliptic{LonDeg: 355, LatDeg: 1}
	b := astro.Ecliptic{LonDeg: 5, LatDeg: -1}

	from, to := p.Segment(a, b)
	dx := math.Abs(to.X - from.X)
	if want := 10 * page.SkyWidth() / 360; math.Abs(dx-want) > 1e-9 {
		t.Errorf("seam segment width = %v, want %v", dx, want)
	}
	if dx >= page.SkyWidth()/2 {
		t.Errorf("seam segment spans %v units, more than half the sky", dx)
	}

	// drawn from either end, the line covers the same short arc
	back1, back2 := p.Segment(b, a)
	if math.Abs(math.Abs(back2.X-back1.X)-dx) > 1e-9 {
		t.Errorf("reverse segment width = %v, want %v", math.Abs(back2.X-back1.X), dx)
	}
}

func TestSegment_MatchesProjectInsideSky(t *testing.T) {
	p := NewProjection(bannerPage(), 90)
	a := astro.Ecliptic{LonDeg: 80, LatDeg: 5}
	b := astro.Ecliptic{LonDeg: 120, LatDeg: -3}

	from, to := p.Segment(a, b)
	if from != p.Project(a.LonDeg, a.LatDeg) || to != p.Project(b.LonDeg, b.LatDeg) {
		t.Errorf("Segment = %+v %+v, want the projected endpoints", from, to)
	}
}

func TestDeltaLon(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{0, 10, 10},
		{10, 0, -10},
		{355, 5, 10},
		{5, 355, -10},
		{0, 180, 180},
		{0, 181, -179},
	}
	for _, tt := range tests {
		if got := deltaLon(tt.a, tt.b); math.Abs(got-tt.want) > eps {
			t.Errorf("deltaLon(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
