package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/bloom/pkg/anim"
	"github.com/matzehuels/bloom/pkg/config"
	"github.com/matzehuels/bloom/pkg/errors"
	"github.com/matzehuels/bloom/pkg/flower"
)

func TestParseProgress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    anim.Progress
		wantErr bool
	}{
		{"zeros", "0,0,0,0,0", anim.Progress{}, false},
		{"mixed with spaces", "1, 0.5,0 ,0.25,1", anim.Progress{1, 0.5, 0, 0.25, 1}, false},
		{"too few", "1,1,1", anim.Progress{}, true},
		{"too many", "1,1,1,1,1,1", anim.Progress{}, true},
		{"not a number", "1,x,1,1,1", anim.Progress{}, true},
		{"above one", "1,1,1,1,1.5", anim.Progress{}, true},
		{"negative", "-0.1,1,1,1,1", anim.Progress{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseProgress(tt.input)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidInput) {
					t.Errorf("parseProgress(%q) err = %v, want INVALID_INPUT", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseProgress(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseProgress(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStateFromProgress(t *testing.T) {
	f := flower.Build(flower.DefaultParams())

	// Petals 0 and 2 grown: captions 0 and 1 show, caption 2 needs petal 3.
	s := stateFromProgress(f, anim.Progress{1, 0, 1, 0.5, 0}, 1)
	if !s.Captions[0].Visible || !s.Captions[1].Visible || s.Captions[2].Visible {
		t.Errorf("captions = %+v, want 0 and 1 visible", s.Captions)
	}
	if s.Captions[0].Opacity != 1 {
		t.Errorf("caption opacity = %v, want 1", s.Captions[0].Opacity)
	}
	if !s.CenterVisible {
		t.Error("center hidden with grown petals")
	}
	if s.Round != 1 || s.Opacity != 1 {
		t.Errorf("round/opacity = %d/%v, want 1/1", s.Round, s.Opacity)
	}
	if s.Radii[0] != f.Petals[0].MaxExtent || s.Radii[1] != 0 {
		t.Errorf("radii = %v", s.Radii)
	}

	if s := stateFromProgress(f, anim.Progress{}, 0); s.CenterVisible || s.Captions[0].Visible {
		t.Error("empty progress should show nothing")
	}
}

func TestFrameOptionsProfile(t *testing.T) {
	if _, err := frameOptions(config.Default(), "huge", false); !errors.Is(err, errors.ErrCodeInvalidProfile) {
		t.Errorf("unknown profile: err = %v, want INVALID_PROFILE", err)
	}
	opts, err := frameOptions(config.Default(), "compact", true)
	if err != nil {
		t.Fatal(err)
	}
	if len(opts) != 5 {
		t.Errorf("len(opts) = %d, want 5 with captions disabled", len(opts))
	}
}

func TestRenderCommandStdout(t *testing.T) {
	out, err := runCLI(t, "render", "--progress", "1,1,1,1,1", "--round", "2")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !strings.HasPrefix(out, "<svg") || !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Errorf("output is not an SVG document: %.80q", out)
	}
	if !strings.Contains(out, "<text") {
		t.Error("full bloom should carry captions")
	}
}

func TestRenderCommandFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.svg")
	cfg := writeConfig(t, testConfig)
	if _, err := runCLI(t, "render", "--config", cfg, "--at", "450ms", "--no-captions", "-o", path); err != nil {
		t.Fatalf("render error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "<svg") || strings.Contains(string(data), "<text") {
		t.Errorf("unexpected frame: %.80q", data)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"at with progress", []string{"render", "--at", "1s", "--progress", "1,1,1,1,1"}, errors.ErrCodeInvalidInput},
		{"negative round", []string{"render", "--round", "-1"}, errors.ErrCodeInvalidInput},
		{"negative at", []string{"render", "--at", "-1s"}, errors.ErrCodeInvalidInput},
		{"bad profile", []string{"render", "--profile", "tiny"}, errors.ErrCodeInvalidProfile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runCLI(t, tt.args...); !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}
