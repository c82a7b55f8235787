package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bloom/pkg/errors"
	"github.com/matzehuels/bloom/pkg/observability"
	"github.com/matzehuels/bloom/pkg/render/raster"
	"github.com/matzehuels/bloom/pkg/render/svg"
)

const (
	formatSVG     = "svg"
	formatPNG     = "png"
	formatDataURI = "datauri"
)

type logoOpts struct {
	output string
	format string
	size   int
}

// logoCommand creates the logo command for the static flower.
func (c *CLI) logoCommand() *cobra.Command {
	opts := logoOpts{format: formatSVG, size: 64}

	cmd := &cobra.Command{
		Use:   "logo",
		Short: "Render the static logo as SVG, PNG or favicon data URI",
		Example: `  bloom logo -o logo.svg
  bloom logo --format png --size 32 -o favicon.png
  bloom logo --format datauri`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(opts.format, formatSVG, formatPNG, formatDataURI); err != nil {
				return err
			}
			return c.runLogo(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, png, datauri")
	cmd.Flags().IntVar(&opts.size, "size", opts.size, "edge length in pixels")

	return cmd
}

func (c *CLI) runLogo(ctx context.Context, cmd *cobra.Command, opts logoOpts) error {
	cfg, f, err := c.scene()
	if err != nil {
		return err
	}
	if opts.size <= 0 || opts.size > raster.MaxSize {
		return errors.New(errors.ErrCodeInvalidInput, "--size must be between 1 and %d, got %d", raster.MaxSize, opts.size)
	}

	start := time.Now()
	observability.Render().OnRenderStart(ctx, "logo-"+opts.format)

	var data []byte
	switch opts.format {
	case formatPNG:
		data, err = raster.RenderLogoPNG(f, opts.size,
			raster.WithPalette(cfg.RenderPalette()), raster.WithPadding(cfg.Geometry.LogoPadding))
	default:
		data = svg.RenderLogo(f,
			svg.WithPalette(cfg.RenderPalette()), svg.WithPadding(cfg.Geometry.LogoPadding), svg.WithSize(opts.size))
		if opts.format == formatDataURI {
			data = []byte(svg.DataURI(data) + "\n")
		}
	}
	observability.Render().OnRenderComplete(ctx, "logo-"+opts.format, len(data), time.Since(start), err)
	if err != nil {
		return err
	}

	if err := writeOutput(cmd.OutOrStdout(), opts.output, data); err != nil {
		return err
	}
	if opts.output != "" && opts.output != "-" {
		printSuccess("Rendered %s logo", opts.format)
		printFile(opts.output)
	}
	return nil
}
