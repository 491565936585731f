package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FillQuality != 'I' {
		t.Errorf("fill quality = %q, want 'I'", cfg.FillQuality)
	}
	if cfg.HistogramWidth != 60 {
		t.Errorf("histogram width = %d, want 60", cfg.HistogramWidth)
	}
	if cfg.Random.Num != 10 || cfg.Random.Len != 100 {
		t.Errorf("random defaults = %+v", cfg.Random)
	}
}

func TestLoad_Overrides(t *testing.T) {
	p := writeConfig(t, "fill_quality: \"#\"\nhistogram_width: 80\nrandom:\n  num: 5\n  len: 42.5\n  std: 3\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FillQuality != '#' {
		t.Errorf("fill quality = %q", cfg.FillQuality)
	}
	if cfg.HistogramWidth != 80 {
		t.Errorf("histogram width = %d", cfg.HistogramWidth)
	}
	if cfg.Random.Num != 5 || cfg.Random.Len != 42.5 || cfg.Random.Std != 3 {
		t.Errorf("random = %+v", cfg.Random)
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	p := writeConfig(t, "histogram_width: 100\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HistogramWidth != 100 {
		t.Errorf("histogram width = %d", cfg.HistogramWidth)
	}
	if cfg.FillQuality != 'I' {
		t.Errorf("fill quality should keep its default, got %q", cfg.FillQuality)
	}
}

func TestLoad_InvalidFillQuality(t *testing.T) {
	for _, in := range []string{"fill_quality: \"II\"\n", "fill_quality: \" \"\n"} {
		p := writeConfig(t, in)
		if _, err := Load(p); err == nil {
			t.Errorf("config %q: expected error", in)
		}
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	p := writeConfig(t, ": not yaml\n\t")
	if _, err := Load(p); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestLoad_NegativeRandom(t *testing.T) {
	p := writeConfig(t, "random:\n  std: -1\n")
	if _, err := Load(p); err == nil {
		t.Fatal("expected error for negative std")
	}
}
