package main

import (
	"context"
	"fmt"

	"github.com/desertbloom/stockpix/internal/shared"
	"github.com/urfave/cli/v3"
)

// Upload stages the given files and submits them as a single batch. Titles
// pair with files by position; files beyond the last --title keep the title
// derived from their filename.
func (r *Runner) Upload(ctx context.Context, cmd *cli.Command) error {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("%w: at least one file path is required", shared.ErrMissingArgument)
	}

	titles := cmd.StringSlice("title")
	if len(titles) > len(paths) {
		return fmt.Errorf("%w: more titles than files", shared.ErrInvalidArgument)
	}

	if err := r.ensureSession(ctx, cmd); err != nil {
		return err
	}

	for i, path := range paths {
		staged, err := r.buffer.StageFile(path)
		if err != nil {
			r.buffer.Clear()
			return fmt.Errorf("failed to stage %s: %w", path, err)
		}
		if i < len(titles) {
			if err := r.buffer.Retitle(staged.LocalID, titles[i]); err != nil {
				r.buffer.Clear()
				return err
			}
		}
		r.logger.Info("staged file", "path", path, "title", staged.Title)
	}

	if cmd.Bool("dry-run") {
		for _, file := range r.buffer.Files() {
			if err := r.writePlainln("%-30s %s", file.Title, file.Name); err != nil {
				return err
			}
		}
		r.buffer.Clear()
		return r.writePlain("Dry run: %d files staged, nothing submitted\n", len(paths))
	}

	if err := r.submitter.Submit(ctx, r.buffer); err != nil {
		r.buffer.Clear()
		return err
	}

	return r.writePlain("✓ Uploaded %d images\n", len(paths))
}
