package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertbloom/stockpix/internal/shared"
	"github.com/desertbloom/stockpix/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive gallery browser.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/stockpix-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	prefStore, err := r.openPrefs()
	if err != nil {
		r.logger.Warn("preferences unavailable, theme will not persist", "err", err)
		prefStore = nil
	}

	model := ui.NewModel(ctx, ui.ModelOpts{
		Store:     r.store,
		Auth:      r.auth,
		Engine:    r.engine,
		Buffer:    r.buffer,
		Submitter: r.submitter,
		Prefs:     prefStore,
	})
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
