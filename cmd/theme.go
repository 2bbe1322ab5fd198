package main

import (
	"context"
	"fmt"

	"github.com/desertbloom/stockpix/internal/shared"
	"github.com/urfave/cli/v3"
)

// ThemeShow prints the active display theme.
func (r *Runner) ThemeShow(ctx context.Context, cmd *cli.Command) error {
	store, err := r.openPrefs()
	if err != nil {
		return err
	}

	theme, err := store.Theme()
	if err != nil {
		return err
	}

	return r.writePlainln("%s", theme)
}

// ThemeSet persists the given theme.
func (r *Runner) ThemeSet(ctx context.Context, cmd *cli.Command) error {
	theme := cmd.StringArg("theme")
	if theme == "" {
		return fmt.Errorf("%w: theme argument is required (light or dark)", shared.ErrMissingArgument)
	}

	store, err := r.openPrefs()
	if err != nil {
		return err
	}

	if err := store.SetTheme(theme); err != nil {
		return err
	}

	return r.writePlain("✓ Theme set to %s\n", theme)
}

// ThemeToggle switches between light and dark.
func (r *Runner) ThemeToggle(ctx context.Context, cmd *cli.Command) error {
	store, err := r.openPrefs()
	if err != nil {
		return err
	}

	theme, err := store.ToggleTheme()
	if err != nil {
		return err
	}

	return r.writePlain("✓ Theme set to %s\n", theme)
}
