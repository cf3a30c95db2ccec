package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/constellation/pkg/buildinfo"
	"github.com/matzehuels/constellation/pkg/config"
	"github.com/matzehuels/constellation/pkg/errors"
	"github.com/matzehuels/constellation/pkg/fonts"
	"github.com/matzehuels/constellation/pkg/frame"
	"github.com/matzehuels/constellation/pkg/observability"
	"github.com/matzehuels/constellation/pkg/scene"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for output files and display.
const appName = "constellation"

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

	// configPath is the --config flag; empty means the default location.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Constellation draws a hover-revealed star map",
		Long:         `Constellation fits a small labeled star map to the terminal and reveals its lines one by one while the pointer rests on a star. Still frames can be exported to SVG, PNG, PDF, JSON and Graphviz.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (.toml or .yaml; default $XDG_CONFIG_HOME/constellation/config.toml)")

	root.AddCommand(c.playCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Setup Helpers
// =============================================================================

// loadConfig loads the --config file, or the default file if it exists.
// It returns the path that was read so play can watch it.
func (c *CLI) loadConfig() (*config.Config, string, error) {
	if c.configPath != "" {
		cfg, err := config.Load(c.configPath)
		return cfg, c.configPath, err
	}

	path, err := config.DefaultPath()
	if err != nil {
		c.Logger.Debug("No default config location", "err", err)
		return config.Default(), "", nil
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, "", err
	}
	c.Logger.Debug("Config resolved", "path", path)
	return cfg, path, nil
}

// newController builds the frame controller for the default scene, with
// labels measured in the embedded monospace font.
func (c *CLI) newController(cfg *config.Config) (*frame.Controller, error) {
	s := scene.Default()
	if err := s.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "default scene")
	}
	meas, err := fonts.NewMeasurer(cfg.Glyph.FontSize)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load label font")
	}
	return frame.New(s, cfg, meas), nil
}

// installHooks routes frame and render events to the logger.
func (c *CLI) installHooks() {
	observability.SetFrameHooks(&logFrameHooks{logger: c.Logger})
	observability.SetRenderHooks(&logRenderHooks{logger: c.Logger})
}
