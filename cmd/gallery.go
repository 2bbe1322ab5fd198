package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/desertbloom/stockpix/internal/formatter"
	"github.com/desertbloom/stockpix/internal/models"
	"github.com/desertbloom/stockpix/internal/shared"
	"github.com/urfave/cli/v3"
)

// confirm asks the user to approve a destructive change. Commands with --yes
// skip the prompt.
func (r *Runner) confirm(cmd *cli.Command, prompt string) (bool, error) {
	if cmd.Bool("yes") {
		return true, nil
	}

	if err := r.writePlain("%s [y/N]: ", prompt); err != nil {
		return false, err
	}

	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}

// GalleryList prints the collection in display order.
func (r *Runner) GalleryList(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureSession(ctx, cmd); err != nil {
		return err
	}

	items, err := r.engine.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(items, cmd.Bool("pretty"))
	}

	if len(items) == 0 {
		return r.writePlainln("No images yet. Stage some with 'stockpix upload'.")
	}

	for _, item := range items {
		if err := r.writePlainln("%3d  %-30s %s", item.Order, item.Title, item.ID); err != nil {
			return err
		}
	}
	return nil
}

// GalleryReorder moves an image from one 1-based position to another.
func (r *Runner) GalleryReorder(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureSession(ctx, cmd); err != nil {
		return err
	}

	if _, err := r.engine.Load(ctx); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	from := int(cmd.Int("from"))
	to := int(cmd.Int("to"))
	if from < 1 || to < 1 {
		return fmt.Errorf("%w: positions are 1-based", shared.ErrInvalidArgument)
	}

	if err := r.engine.Reorder(ctx, from-1, to-1); err != nil {
		return err
	}

	return r.writePlain("✓ Moved position %d to %d\n", from, to)
}

// findImage looks up an image by id in the engine's loaded collection.
func (r *Runner) findImage(id string) (models.MediaItem, error) {
	for _, item := range r.engine.Items() {
		if item.ID == id {
			return item, nil
		}
	}
	return models.MediaItem{}, fmt.Errorf("%w: %s", shared.ErrImageNotFound, id)
}

// GalleryRetitle renames one image after confirmation.
func (r *Runner) GalleryRetitle(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureSession(ctx, cmd); err != nil {
		return err
	}

	id := cmd.String("id")
	title := cmd.String("title")

	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title cannot be blank", shared.ErrInvalidInput)
	}

	if _, err := r.engine.Load(ctx); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	item, err := r.findImage(id)
	if err != nil {
		return err
	}

	ok, err := r.confirm(cmd, fmt.Sprintf("Rename %q to %q?", item.Title, title))
	if err != nil {
		return err
	}
	if !ok {
		return r.writePlainln("Aborted.")
	}

	if err := r.engine.Retitle(ctx, id, title); err != nil {
		return err
	}

	return r.writePlain("✓ Renamed %s\n", id)
}

// GalleryDelete removes one image after confirmation.
func (r *Runner) GalleryDelete(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureSession(ctx, cmd); err != nil {
		return err
	}

	id := cmd.String("id")

	if _, err := r.engine.Load(ctx); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	item, err := r.findImage(id)
	if err != nil {
		return err
	}

	ok, err := r.confirm(cmd, fmt.Sprintf("Delete %q? This cannot be undone.", item.Title))
	if err != nil {
		return err
	}
	if !ok {
		return r.writePlainln("Aborted.")
	}

	if err := r.engine.Delete(ctx, id); err != nil {
		return err
	}

	return r.writePlain("✓ Deleted %s\n", id)
}

// GalleryExport writes the collection listing as csv, markdown or text.
func (r *Runner) GalleryExport(ctx context.Context, cmd *cli.Command) error {
	if err := r.ensureSession(ctx, cmd); err != nil {
		return err
	}

	items, err := r.engine.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	var data []byte
	switch format := cmd.String("format"); format {
	case "csv":
		if data, err = formatter.ExportToCSV(items); err != nil {
			return fmt.Errorf("failed to export CSV: %w", err)
		}
	case "markdown", "md":
		data = formatter.ExportToMarkdown("Gallery", items)
	case "text":
		data = formatter.ExportToText(items)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
	}

	outputPath := cmd.String("output")
	if outputPath == "" {
		_, err := r.output.Write(data)
		return err
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	return r.writePlain("✓ Exported %d images to %s\n", len(items), outputPath)
}
