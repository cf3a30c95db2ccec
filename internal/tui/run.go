package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/constellation/pkg/config"
	"github.com/matzehuels/constellation/pkg/frame"
)

// Options configures [Run].
type Options struct {
	// ConfigPath, when set, is watched and reloaded while the program runs.
	ConfigPath string
	// OnWatchError is called if the watcher stops with an error.
	OnWatchError func(error)
}

// Run takes over the terminal and plays the constellation until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, ctrl *frame.Controller, opts Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(New(ctrl),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	if opts.ConfigPath != "" {
		go func() {
			err := config.Watch(ctx, opts.ConfigPath, func(cfg *config.Config, err error) {
				p.Send(ConfigMsg{Config: cfg, Err: err})
			})
			if err != nil && !errors.Is(err, context.Canceled) && opts.OnWatchError != nil {
				opts.OnWatchError(err)
			}
		}()
	}

	_, err := p.Run()
	if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return ctx.Err()
	}
	return err
}
