package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertbloom/stockpix/internal/models"
	"github.com/desertbloom/stockpix/internal/staging"
)

var (
	_ list.Item = mediaItem{}
	_ list.Item = stagedItem{}
)

// mediaItem wraps [models.MediaItem] to implement [list.Item].
type mediaItem struct {
	item models.MediaItem
}

func (i mediaItem) FilterValue() string { return i.item.Title }
func (i mediaItem) Title() string       { return i.item.Title }
func (i mediaItem) Description() string {
	return fmt.Sprintf("#%d • %s", i.item.Order, i.item.ImageURL)
}

// stagedItem wraps [staging.StagedFile] to implement [list.Item].
type stagedItem struct {
	file *staging.StagedFile
}

func (i stagedItem) FilterValue() string { return i.file.Name }
func (i stagedItem) Title() string {
	if i.file.Title == "" {
		return "(untitled)"
	}
	return i.file.Title
}
func (i stagedItem) Description() string {
	return fmt.Sprintf("%s • %d bytes • preview %s", i.file.Name, len(i.file.Content), i.file.Preview.Path())
}
