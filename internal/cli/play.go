package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/constellation/internal/tui"
)

// playOpts holds the command-line flags for the play command.
type playOpts struct {
	logFile string // log destination while the alt-screen is active
	noWatch bool   // disable config hot reload
}

// playCommand creates the play command, which runs the interactive
// constellation in the terminal.
func (c *CLI) playCommand() *cobra.Command {
	var opts playOpts

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the constellation in the terminal",
		Long: `Play the constellation in the terminal.

Rest the mouse on any star to reveal the next line. The reveal never rewinds;
once every line is drawn the constellation glows. Press q to quit.

The config file is watched while playing; color, cadence and geometry
changes apply immediately without resetting the reveal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlay(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file while playing")
	cmd.Flags().BoolVar(&opts.noWatch, "no-watch", false, "do not reload the config file on change")

	return cmd
}

func (c *CLI) runPlay(cmd *cobra.Command, opts playOpts) error {
	ctx := cmd.Context()

	logOut, err := openLogFile(opts.logFile)
	if err != nil {
		return err
	}
	defer logOut.Close()
	c.Logger.SetOutput(logOut)
	// Hooks are captured by the controller, so install them first.
	c.installHooks()

	cfg, path, err := c.loadConfig()
	if err != nil {
		return err
	}
	ctrl, err := c.newController(cfg)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	watch := path
	if opts.noWatch {
		watch = ""
	}
	c.Logger.Info("Starting", "config", path, "watch", watch != "")

	return tui.Run(ctx, ctrl, tui.Options{
		ConfigPath: watch,
		OnWatchError: func(err error) {
			c.Logger.Warn("Config watch stopped", "err", err)
		},
	})
}
