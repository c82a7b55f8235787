package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/bloom/pkg/anim"
	"github.com/matzehuels/bloom/pkg/buildinfo"
	"github.com/matzehuels/bloom/pkg/cache"
	"github.com/matzehuels/bloom/pkg/caption"
	"github.com/matzehuels/bloom/pkg/config"
	"github.com/matzehuels/bloom/pkg/errors"
	"github.com/matzehuels/bloom/pkg/flower"
)

// maxFrames bounds a single export.
const maxFrames = 100_000

type framesOpts struct {
	output     string
	fps        int
	cycles     int
	jobs       int
	round      int
	profile    string
	noCaptions bool
	useCache   bool // persistent cache in cacheDir
}

// framesCommand creates the frames command for timeline export.
func (c *CLI) framesCommand() *cobra.Command {
	opts := framesOpts{fps: 30, cycles: 1, jobs: runtime.NumCPU()}

	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Export the animation timeline as numbered SVG frames",
		Long: `Export the animation timeline as numbered SVG frames.

Frames are sampled at --fps and rendered in parallel. Identical frames (the
hold and pause stages repeat a picture for seconds) are rendered once; with
--cache they are also reused across runs.`,
		Example: `  bloom frames -o out --fps 24
  ffmpeg -framerate 24 -i out/frame-%05d.svg bloom.webm`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output == "" {
				return errors.New(errors.ErrCodeInvalidPath, "--output directory is required")
			}
			if opts.fps <= 0 || opts.cycles <= 0 || opts.jobs <= 0 || opts.round < 0 {
				return errors.New(errors.ErrCodeInvalidInput, "--fps, --cycles and --jobs must be positive")
			}
			return c.runFrames(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory")
	cmd.Flags().IntVar(&opts.fps, "fps", opts.fps, "frames per second")
	cmd.Flags().IntVar(&opts.cycles, "cycles", opts.cycles, "number of cycles to export")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", opts.jobs, "parallel renders")
	cmd.Flags().IntVar(&opts.round, "round", 0, "caption round of the first cycle")
	cmd.Flags().StringVar(&opts.profile, "profile", "", "caption profile: compact or standard (default from --width)")
	cmd.Flags().BoolVar(&opts.noCaptions, "no-captions", false, "omit caption text")
	cmd.Flags().BoolVar(&opts.useCache, "cache", false, "reuse frames from previous runs")

	return cmd
}

func (c *CLI) runFrames(ctx context.Context, cmd *cobra.Command, opts framesOpts) error {
	cfg, f, err := c.scene()
	if err != nil {
		return err
	}
	svgOpts, err := frameOptions(cfg, opts.profile, opts.noCaptions)
	if err != nil {
		return err
	}
	if err := errors.ValidateOutputPath(opts.output); err != nil {
		return err
	}
	if err := os.MkdirAll(opts.output, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", opts.output)
	}

	states, err := timeline(f, cfg, opts)
	if err != nil {
		return err
	}
	c.Logger.Info("Exporting frames", "frames", len(states), "fps", opts.fps, "jobs", opts.jobs)

	store, err := c.frameCache(cfg, opts)
	if err != nil {
		return err
	}
	defer store.Close()

	prog := newProgress(c.Logger)
	spin := newSpinner(ctx, cmd.ErrOrStderr(), "Rendering frames")
	spin.Start()
	defer spin.Stop()

	var written, hits atomic.Int64
	rounds := len(cfg.CaptionRounds())
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs)
	for i, state := range states {
		i, state := i, state
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			key := cache.Key("frame", frameKeyOf(state, rounds))
			data, hit, err := store.Get(gctx, key)
			if err != nil {
				c.Logger.Warn("Cache read failed", "err", err)
			}
			if hit {
				hits.Add(1)
			} else {
				data = renderFrame(gctx, f, state, svgOpts)
				if err := store.Set(gctx, key, data, 0); err != nil {
					c.Logger.Warn("Cache write failed", "err", err)
				}
			}
			path := filepath.Join(opts.output, frameName(i))
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
			}
			n := written.Add(1)
			spin.SetMessage("Rendering frames %d/%d", n, len(states))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	spin.Stop()

	prog.done(fmt.Sprintf("Rendered %d frames", len(states)))
	printSuccess("Exported %d frames", len(states))
	printDetail("%d unique, %d reused", int64(len(states))-hits.Load(), hits.Load())
	printFile(opts.output)
	return nil
}

// timeline steps a sequencer at 1/fps until the requested number of cycles
// has completed. The first frame of the following cycle is not included.
func timeline(f *flower.Flower, cfg config.Config, opts framesOpts) ([]anim.VisualState, error) {
	timing := cfg.AnimTiming()
	seq := anim.NewSequencer(f, len(cfg.CaptionRounds()), timing, anim.WithStartRound(opts.round))
	interval := time.Second / time.Duration(opts.fps)

	var states []anim.VisualState
	for i := 0; ; i++ {
		if i >= maxFrames {
			return nil, errors.New(errors.ErrCodeInvalidInput, "export exceeds %d frames", maxFrames)
		}
		state := seq.Step(epoch.Add(time.Duration(i) * interval))
		if state.Cycle >= opts.cycles {
			return states, nil
		}
		states = append(states, state)
	}
}

// frameKey is everything in a VisualState that changes the rendered
// document. Cycle, stage and step do not.
type frameKey struct {
	Radii    [flower.NumPetals]float64
	Overlaps [flower.NumPetals]anim.OverlapState
	Center   bool
	Captions [caption.BlocksPerRound]anim.CaptionState
	Opacity  float64
	Round    int
}

func frameKeyOf(s anim.VisualState, rounds int) frameKey {
	return frameKey{
		Radii:    s.Radii,
		Overlaps: s.Overlaps,
		Center:   s.CenterVisible,
		Captions: s.Captions,
		Opacity:  s.Opacity,
		Round:    s.Round % max(rounds, 1),
	}
}

func frameName(i int) string {
	return fmt.Sprintf("frame-%05d.svg", i)
}

// frameCache returns an instrumented cache scoped to the settings that
// shape every frame.
func (c *CLI) frameCache(cfg config.Config, opts framesOpts) (cache.Cache, error) {
	var inner cache.Cache = cache.NewMemoryCache()
	if opts.useCache {
		dir, err := cacheDir()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "locate cache dir")
		}
		if inner, err = cache.NewFileCache(filepath.Join(dir, "frames")); err != nil {
			return nil, err
		}
		c.Logger.Debug("Using frame cache", "dir", dir)
	}
	scope := cache.Key("settings", cfg, opts.profile, opts.noCaptions, buildinfo.Version) + ":"
	return cache.NewInstrumented(cache.NewScoped(inner, scope)), nil
}
