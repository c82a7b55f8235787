// Package config loads bloom settings from TOML.
//
// Every field has a built-in default, so a file only needs the values it
// changes:
//
//	[timing]
//	petal = 1500
//
//	[viewport]
//	width = 390
//
//	[[rounds]]
//	blocks = [["Hello"], ["from", "the"], ["flower"]]
//
// Durations are milliseconds. A [[rounds]] table replaces the built-in
// captions entirely.
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/bloom/pkg/anim"
	"github.com/matzehuels/bloom/pkg/caption"
	"github.com/matzehuels/bloom/pkg/errors"
	"github.com/matzehuels/bloom/pkg/flower"
	"github.com/matzehuels/bloom/pkg/geometry"
	"github.com/matzehuels/bloom/pkg/render"
)

// Config is the complete configuration.
type Config struct {
	Geometry Geometry `toml:"geometry"`
	Timing   Timing   `toml:"timing"`
	Palette  Palette  `toml:"palette"`
	Viewport Viewport `toml:"viewport"`
	Rounds   []Round  `toml:"rounds"`
}

type Geometry struct {
	CenterX     float64 `toml:"center_x"`
	CenterY     float64 `toml:"center_y"`
	Offset      float64 `toml:"offset"`
	Radius      float64 `toml:"radius"`
	Padding     float64 `toml:"padding"`
	LogoPadding float64 `toml:"logo_padding"`
}

// Timing holds durations in milliseconds.
type Timing struct {
	Petal       int `toml:"petal"`
	CaptionFade int `toml:"caption_fade"`
	Hold        int `toml:"hold"`
	FadeOut     int `toml:"fade_out"`
	Pause       int `toml:"pause"`
	Recovery    int `toml:"recovery"`
	Frame       int `toml:"frame"`
}

type Palette struct {
	Petal    string `toml:"petal"`
	Vein     string `toml:"vein"`
	LogoVein string `toml:"logo_vein"`
	Dark     string `toml:"dark"`
	Text     string `toml:"text"`
}

// Viewport is the display the captions are laid out for.
type Viewport struct {
	Width            int `toml:"width"`
	MobileBreakpoint int `toml:"mobile_breakpoint"`
}

// Round is one caption round: exactly three blocks of one to three lines.
type Round struct {
	Blocks [][]string `toml:"blocks"`
}

// Default returns the built-in configuration.
func Default() Config {
	p := flower.DefaultParams()
	t := anim.DefaultTiming()
	pal := render.DefaultPalette()
	return Config{
		Geometry: Geometry{
			CenterX:     p.Center.X,
			CenterY:     p.Center.Y,
			Offset:      p.Offset,
			Radius:      p.Radius,
			Padding:     220,
			LogoPadding: 10,
		},
		Timing: Timing{
			Petal:       int(t.Petal.Milliseconds()),
			CaptionFade: int(t.CaptionFade.Milliseconds()),
			Hold:        int(t.Hold.Milliseconds()),
			FadeOut:     int(t.FadeOut.Milliseconds()),
			Pause:       int(t.Pause.Milliseconds()),
			Recovery:    int(t.Recovery.Milliseconds()),
			Frame:       16,
		},
		Palette: Palette{
			Petal:    pal.Petal,
			Vein:     pal.Vein,
			LogoVein: pal.LogoVein,
			Dark:     pal.Dark,
			Text:     pal.Text,
		},
		Viewport: Viewport{Width: 1024, MobileBreakpoint: caption.DefaultBreakpoint},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks ranges and caption shapes.
func (c Config) Validate() error {
	g := c.Geometry
	if g.Radius <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "geometry.radius must be positive, got %g", g.Radius)
	}
	if g.Offset <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "geometry.offset must be positive, got %g", g.Offset)
	}
	if g.Padding < 0 || g.LogoPadding < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "geometry padding must not be negative")
	}

	durations := []struct {
		name string
		ms   int
	}{
		{"petal", c.Timing.Petal}, {"caption_fade", c.Timing.CaptionFade}, {"hold", c.Timing.Hold},
		{"fade_out", c.Timing.FadeOut}, {"pause", c.Timing.Pause}, {"recovery", c.Timing.Recovery},
	}
	for _, d := range durations {
		if d.ms < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "timing.%s must not be negative, got %d", d.name, d.ms)
		}
	}
	if c.Timing.Petal > 0 && c.Timing.CaptionFade >= c.Timing.Petal {
		return errors.New(errors.ErrCodeInvalidConfig, "timing.caption_fade (%d) must be shorter than timing.petal (%d)",
			c.Timing.CaptionFade, c.Timing.Petal)
	}
	if c.Timing.Frame <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "timing.frame must be positive, got %d", c.Timing.Frame)
	}

	if err := c.RenderPalette().Validate(); err != nil {
		return err
	}

	if c.Viewport.Width <= 0 || c.Viewport.MobileBreakpoint <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "viewport width and mobile_breakpoint must be positive")
	}

	if len(c.Rounds) > 0 {
		rounds, err := c.captionRounds()
		if err != nil {
			return err
		}
		return caption.Validate(rounds)
	}
	return nil
}

// FlowerParams returns the circle arrangement.
func (c Config) FlowerParams() flower.Params {
	return flower.Params{
		Center: geometry.Point{X: c.Geometry.CenterX, Y: c.Geometry.CenterY},
		Offset: c.Geometry.Offset,
		Radius: c.Geometry.Radius,
	}
}

// AnimTiming converts the millisecond fields.
func (c Config) AnimTiming() anim.Timing {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }
	return anim.Timing{
		Petal:       ms(c.Timing.Petal),
		CaptionFade: ms(c.Timing.CaptionFade),
		Hold:        ms(c.Timing.Hold),
		FadeOut:     ms(c.Timing.FadeOut),
		Pause:       ms(c.Timing.Pause),
		Recovery:    ms(c.Timing.Recovery),
		Frame:       ms(c.Timing.Frame),
	}
}

func (c Config) RenderPalette() render.Palette {
	return render.Palette(c.Palette)
}

// Profile picks the caption profile for the configured viewport.
func (c Config) Profile() caption.Profile {
	return caption.ProfileFor(c.Viewport.Width, c.Viewport.MobileBreakpoint)
}

// CaptionRounds returns the configured rounds, or caption.DefaultRounds
// when none are set. Call it on a validated Config.
func (c Config) CaptionRounds() []caption.Round {
	if len(c.Rounds) == 0 {
		return caption.DefaultRounds
	}
	rounds, _ := c.captionRounds()
	return rounds
}

func (c Config) captionRounds() ([]caption.Round, error) {
	out := make([]caption.Round, len(c.Rounds))
	for i, r := range c.Rounds {
		if len(r.Blocks) != caption.BlocksPerRound {
			return nil, errors.New(errors.ErrCodeInvalidConfig,
				"rounds[%d] has %d blocks (must be %d)", i, len(r.Blocks), caption.BlocksPerRound)
		}
		for b, lines := range r.Blocks {
			out[i][b] = caption.Block(lines)
		}
	}
	return out, nil
}
