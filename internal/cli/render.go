package cli

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bloom/pkg/anim"
	"github.com/matzehuels/bloom/pkg/caption"
	"github.com/matzehuels/bloom/pkg/config"
	"github.com/matzehuels/bloom/pkg/errors"
	"github.com/matzehuels/bloom/pkg/flower"
	"github.com/matzehuels/bloom/pkg/observability"
	"github.com/matzehuels/bloom/pkg/render/svg"
)

// epoch is the cycle start used for offline sampling. Only offsets from it
// matter.
var epoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string        // output file path, stdout when empty
	at         time.Duration // offset into the cycle
	progress   string        // explicit progress vector, overrides at
	round      int           // caption round
	profile    string        // caption profile name, empty follows the viewport
	noCaptions bool          // leave caption text out
}

// renderCommand creates the render command for a single frame.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one frame of the animation as SVG",
		Long: `Render one frame of the animation as SVG.

The frame is either sampled from the timeline (--at, an offset from the start
of a cycle) or built from explicit petal progress values (--progress).`,
		Example: `  bloom render -o bloom.svg --at 9s
  bloom render --progress 1,0,1,0.5,0 --round 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("at") && opts.progress != "" {
				return errors.New(errors.ErrCodeInvalidInput, "--at and --progress are mutually exclusive")
			}
			if opts.round < 0 {
				return errors.New(errors.ErrCodeInvalidInput, "--round must not be negative, got %d", opts.round)
			}
			return c.runRender(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().DurationVar(&opts.at, "at", 9*time.Second, "offset into the cycle")
	cmd.Flags().StringVar(&opts.progress, "progress", "", "petal progress values, five comma-separated numbers in [0,1]")
	cmd.Flags().IntVar(&opts.round, "round", 0, "caption round")
	cmd.Flags().StringVar(&opts.profile, "profile", "", "caption profile: compact or standard (default from --width)")
	cmd.Flags().BoolVar(&opts.noCaptions, "no-captions", false, "omit caption text")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, cmd *cobra.Command, opts renderOpts) error {
	cfg, f, err := c.scene()
	if err != nil {
		return err
	}
	svgOpts, err := frameOptions(cfg, opts.profile, opts.noCaptions)
	if err != nil {
		return err
	}

	var state anim.VisualState
	if opts.progress != "" {
		p, err := parseProgress(opts.progress)
		if err != nil {
			return err
		}
		state = stateFromProgress(f, p, opts.round)
	} else {
		if opts.at < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "--at must not be negative, got %s", opts.at)
		}
		timing := cfg.AnimTiming()
		seq := anim.NewSequencer(f, len(cfg.CaptionRounds()), timing, anim.WithStartRound(opts.round))
		state = anim.Sample(seq, epoch, opts.at, timing.Frame)
	}
	c.Logger.Debug("Frame state", "stage", state.Stage, "round", state.Round, "progress", state.Progress)

	data := renderFrame(ctx, f, state, svgOpts)
	if err := writeOutput(cmd.OutOrStdout(), opts.output, data); err != nil {
		return err
	}
	if opts.output != "" && opts.output != "-" {
		printSuccess("Rendered frame")
		printFile(opts.output)
	}
	return nil
}

// renderFrame wraps svg.RenderFrame with render hooks.
func renderFrame(ctx context.Context, f *flower.Flower, state anim.VisualState, opts []svg.Option) []byte {
	start := time.Now()
	observability.Render().OnRenderStart(ctx, "frame")
	data := svg.RenderFrame(f, state, opts...)
	observability.Render().OnRenderComplete(ctx, "frame", len(data), time.Since(start), nil)
	return data
}

// frameOptions turns config and flags into SVG options.
func frameOptions(cfg config.Config, profileName string, noCaptions bool) ([]svg.Option, error) {
	profile := cfg.Profile()
	if profileName != "" {
		var err error
		if profile, err = caption.ProfileByName(profileName); err != nil {
			return nil, err
		}
	}
	opts := []svg.Option{
		svg.WithPalette(cfg.RenderPalette()),
		svg.WithProfile(profile),
		svg.WithRounds(cfg.CaptionRounds()),
		svg.WithPadding(cfg.Geometry.Padding),
	}
	if noCaptions {
		opts = append(opts, svg.WithoutCaptions())
	}
	return opts, nil
}

// parseProgress parses five comma-separated values in [0,1].
func parseProgress(s string) (anim.Progress, error) {
	var p anim.Progress
	parts := strings.Split(s, ",")
	if len(parts) != len(p) {
		return p, errors.New(errors.ErrCodeInvalidInput, "--progress needs %d values, got %d", len(p), len(parts))
	}
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return p, errors.Wrap(errors.ErrCodeInvalidInput, err, "--progress value %d", i)
		}
		if v < 0 || v > 1 {
			return p, errors.New(errors.ErrCodeInvalidInput, "--progress value %d must be in [0,1], got %g", i, v)
		}
		p[i] = v
	}
	return p, nil
}

// stateFromProgress builds a still frame from explicit progress values. A
// caption shows once every petal of the growth step that reveals it is
// fully grown.
func stateFromProgress(f *flower.Flower, p anim.Progress, round int) anim.VisualState {
	state := anim.VisualState{Round: round, Progress: p, Opacity: 1, Stage: anim.StageGrow}
	state.Derive(f.Extents(), anim.OverlapPairs(f))
	for _, step := range anim.DefaultGrowth {
		if step.Caption < 0 {
			continue
		}
		grown := true
		for _, i := range step.Petals {
			grown = grown && p[i] >= 1
		}
		if grown {
			state.Captions[step.Caption] = anim.CaptionState{Visible: true, Opacity: 1}
		}
	}
	return state
}
