package theme

import "testing"

func TestForSchemeDark(t *testing.T) {
	opt := ForScheme("dark")

	if opt.ColorScheme != "dark" {
		t.Fatalf("expected dark scheme, got %q", opt.ColorScheme)
	}
	if opt.Color.Grayscale.Shade != -1 {
		t.Fatalf("expected shade -1, got %d", opt.Color.Grayscale.Shade)
	}
	if opt.Color.Accent.Primary != "#f1f5f9" {
		t.Fatalf("unexpected accent %q", opt.Color.Accent.Primary)
	}
}

func TestForSchemeLight(t *testing.T) {
	opt := ForScheme("light")

	if opt.ColorScheme != "light" {
		t.Fatalf("expected light scheme, got %q", opt.ColorScheme)
	}
	if opt.Color.Grayscale.Shade != -4 {
		t.Fatalf("expected shade -4, got %d", opt.Color.Grayscale.Shade)
	}
	if opt.Color.Accent.Primary != "#0f172a" {
		t.Fatalf("unexpected accent %q", opt.Color.Accent.Primary)
	}
}

func TestForSchemeUnknownFallsBackToLight(t *testing.T) {
	opt := ForScheme("solarized")

	if opt.ColorScheme != "light" {
		t.Fatalf("expected fallback to light, got %q", opt.ColorScheme)
	}
	if opt.Radius != "round" || opt.Density != "normal" || opt.Typography.BaseSize != 15 {
		t.Fatalf("unexpected shared tokens: %+v", opt)
	}
}
