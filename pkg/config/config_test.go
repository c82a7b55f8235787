package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/bloom/pkg/anim"
	"github.com/matzehuels/bloom/pkg/caption"
	"github.com/matzehuels/bloom/pkg/errors"
	"github.com/matzehuels/bloom/pkg/flower"
	"github.com/matzehuels/bloom/pkg/render"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if diff := cmp.Diff(flower.DefaultParams(), cfg.FlowerParams()); diff != "" {
		t.Errorf("FlowerParams mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(render.DefaultPalette(), cfg.RenderPalette()); diff != "" {
		t.Errorf("RenderPalette mismatch (-want +got):\n%s", diff)
	}
	want := anim.DefaultTiming()
	want.Frame = 16 * time.Millisecond
	if diff := cmp.Diff(want, cfg.AnimTiming()); diff != "" {
		t.Errorf("AnimTiming mismatch (-want +got):\n%s", diff)
	}
	if cfg.Profile() != caption.Standard {
		t.Errorf("Profile() = %v, want standard", cfg.Profile())
	}
	if len(cfg.CaptionRounds()) != len(caption.DefaultRounds) {
		t.Error("CaptionRounds() should fall back to the defaults")
	}
}

func TestParseOverrides(t *testing.T) {
	data := []byte(`
[geometry]
radius = 150

[timing]
petal = 1500
frame = 33

[palette]
petal = "#ff0000"

[viewport]
width = 390

[[rounds]]
blocks = [["one"], ["two", "lines"], ["three", "short", "lines"]]
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Geometry.Radius != 150 || cfg.Geometry.Offset != 158 {
		t.Errorf("geometry = %+v, want radius override only", cfg.Geometry)
	}
	tm := cfg.AnimTiming()
	if tm.Petal != 1500*time.Millisecond || tm.Frame != 33*time.Millisecond || tm.Hold != 3*time.Second {
		t.Errorf("timing = %+v", tm)
	}
	if cfg.Palette.Petal != "#ff0000" || cfg.Palette.Dark != "#3a7d44" {
		t.Errorf("palette = %+v", cfg.Palette)
	}
	if cfg.Profile() != caption.Compact {
		t.Errorf("Profile() = %v, want compact for a 390px viewport", cfg.Profile())
	}
	want := []caption.Round{{{"one"}, {"two", "lines"}, {"three", "short", "lines"}}}
	if diff := cmp.Diff(want, cfg.CaptionRounds()); diff != "" {
		t.Errorf("CaptionRounds mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", `[timing`},
		{"unknown key", "[timing]\nspeed = 2"},
		{"zero radius", "[geometry]\nradius = 0"},
		{"negative hold", "[timing]\nhold = -1"},
		{"zero frame", "[timing]\nframe = 0"},
		{"bad colour", "[palette]\ndark = \"green\""},
		{"colour with trailing attribute", "[palette]\npetal = '#6bbf59\" onload=\"alert(1)'"},
		{"caption fade as long as petal", "[timing]\npetal = 500\ncaption_fade = 500"},
		{"bad viewport", "[viewport]\nwidth = 0"},
		{"two blocks", "[[rounds]]\nblocks = [[\"a\"], [\"b\"]]"},
		{"four lines", "[[rounds]]\nblocks = [[\"a\",\"b\",\"c\",\"d\"], [\"b\"], [\"c\"]]"},
		{"empty line", "[[rounds]]\nblocks = [[\"\"], [\"b\"], [\"c\"]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Parse() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestValidateReportsFirstInvalidTiming(t *testing.T) {
	cfg := Default()
	cfg.Timing.Petal = -1
	cfg.Timing.Recovery = -1
	cfg.Timing.Pause = -1
	for i := 0; i < 20; i++ {
		err := cfg.Validate()
		if !errors.Is(err, errors.ErrCodeInvalidConfig) || !strings.Contains(err.Error(), "timing.petal") {
			t.Fatalf("Validate() = %v, want timing.petal reported", err)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bloom.toml")
	if err := os.WriteFile(path, []byte("[timing]\nhold = 5000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Timing.Hold != 5000 {
		t.Errorf("hold = %d, want 5000", cfg.Timing.Hold)
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}
