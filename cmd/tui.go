package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/polyglotfm/plx/internal/shared"
	"github.com/polyglotfm/plx/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive library dashboard.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	logPath := r.config.TUI.LogPath
	if logPath == "" {
		logPath = "./tmp/plx-tui.log"
	}
	fileLogger, err := shared.NewFileLogger(logPath)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	r.engine.Initialize(ctx)
	if errText := r.authV.Error(); errText != "" {
		return fmt.Errorf("%w: %s", shared.ErrSessionExpired, errText)
	}

	model := ui.NewModel(ctx, r.engine)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
