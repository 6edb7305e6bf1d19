package catalog

import (
	"testing"
)

func TestProducts_Count(t *testing.T) {
	if got := len(Products()); got != 8 {
		t.Errorf("catalog has %d products; want 8", got)
	}
}

func TestProducts_SlugsDerivedAndUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Products() {
		if p.Slug == "" {
			t.Errorf("product %q has empty slug", p.Name)
			continue
		}
		if p.Slug != Slugify(p.Name) {
			t.Errorf("product %q slug = %q; want %q", p.Name, p.Slug, Slugify(p.Name))
		}
		if seen[p.Slug] {
			t.Errorf("duplicate slug %q", p.Slug)
		}
		seen[p.Slug] = true
	}
}

func TestProducts_KnownRecord(t *testing.T) {
	var found bool
	for _, p := range Products() {
		if p.Slug != "cafe-blend-matcha" {
			continue
		}
		found = true
		if p.Grade != GradeCulinary {
			t.Errorf("cafe-blend-matcha grade = %q; want Culinary", p.Grade)
		}
		if p.MOQ != "20 kg" {
			t.Errorf("cafe-blend-matcha MOQ = %q; want 20 kg", p.MOQ)
		}
	}
	if !found {
		t.Fatal("cafe-blend-matcha missing from catalog")
	}
}

func TestProducts_CopyIsIsolated(t *testing.T) {
	a := Products()
	a[0].Name = "mutated"
	if b := Products(); b[0].Name == "mutated" {
		t.Error("mutating a returned slice leaked into the catalog")
	}
}

func TestProducts_EmptyCertificationsExist(t *testing.T) {
	// Daily Matcha Kagoshima carries no certifications; the document
	// pipeline depends on that case existing.
	for _, p := range Products() {
		if p.Slug == "daily-matcha-kagoshima" {
			if len(p.Certifications) != 0 {
				t.Errorf("daily-matcha-kagoshima has %d certifications; want 0", len(p.Certifications))
			}
			return
		}
	}
	t.Fatal("daily-matcha-kagoshima missing from catalog")
}

func TestPaletteFor(t *testing.T) {
	tests := []struct {
		name  string
		grade Grade
		wantR uint8 // primary red channel
	}{
		{"ceremonial", GradeCeremonial, 76},
		{"premium", GradePremium, 85},
		{"culinary", GradeCulinary, 100},
		{"competition", GradeCompetition, 60},
		{"unknown falls back to premium", "Imaginary", 85},
		{"empty falls back to premium", "", 85},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PaletteFor(tt.grade); got.Primary.R != tt.wantR {
				t.Errorf("PaletteFor(%q).Primary.R = %d; want %d", tt.grade, got.Primary.R, tt.wantR)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Premium Ceremonial Uji", "premium-ceremonial-uji"},
		{"Cafe Blend Matcha", "cafe-blend-matcha"},
		{"Hello, World!", "hello-world"},
		{"Multiple   Spaces", "multiple-spaces"},
		{"under_scores", "under-scores"},
		{"--edges--", "edges"},
		{"Café au Lait", "café-au-lait"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}
