// Package cli implements the bloom command-line interface.
//
// The commands render the animated flower outside a browser:
//   - render: one frame of the scene as SVG
//   - logo: the static logo as SVG, PNG or a favicon data URI
//   - frames: a whole timeline as numbered SVG files
//   - watch: the live sequencer in the terminal
//   - info: the computed geometry
//   - cache: manage the frame cache
//
// All commands support --verbose (-v) for debug-level logging and --config
// for a TOML settings file.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bloom/pkg/buildinfo"
	"github.com/matzehuels/bloom/pkg/config"
	"github.com/matzehuels/bloom/pkg/errors"
	"github.com/matzehuels/bloom/pkg/flower"
	"github.com/matzehuels/bloom/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "bloom"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	width      int // viewport override, 0 keeps the config value
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. At debug level the observability
// hooks log animation, render and cache events.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		h := &logHooks{logger: c.Logger}
		observability.SetAnimationHooks(h)
		observability.SetRenderHooks(h)
		observability.SetCacheHooks(h)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Bloom draws the five-petal flower animation",
		Long:         `Bloom builds the five-petal flower from overlapping circles, runs its growth animation and exports frames, logos and favicons.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML config file")
	root.PersistentFlags().IntVar(&c.width, "width", 0, "viewport width in pixels (selects the caption profile)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.logoCommand())
	root.AddCommand(c.framesCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig reads --config (or the defaults) and applies flag overrides.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg := config.Default()
	if c.configPath != "" {
		var err error
		if cfg, err = config.Load(c.configPath); err != nil {
			return cfg, err
		}
		c.Logger.Debug("Loaded config", "path", c.configPath)
	}
	if c.width != 0 {
		if c.width < 0 {
			return cfg, errors.New(errors.ErrCodeInvalidInput, "width must be positive, got %d", c.width)
		}
		cfg.Viewport.Width = c.width
	}
	return cfg, nil
}

// scene loads the config and builds the flower it describes.
func (c *CLI) scene() (config.Config, *flower.Flower, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return cfg, nil, err
	}
	return cfg, flower.Build(cfg.FlowerParams()), nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/bloom/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// writeOutput writes data to path, or to w when path is empty or "-".
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := w.Write(data)
		return err
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
