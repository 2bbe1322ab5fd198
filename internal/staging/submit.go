package staging

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/desertbloom/stockpix/internal/services"
	"github.com/desertbloom/stockpix/internal/shared"
)

// Submitter serializes a staging buffer into a single batch upload.
//
// The batch is atomic from the client's perspective: on success the whole
// buffer is cleared, on failure it is left untouched so the user can retry or
// edit without re-selecting files.
type Submitter struct {
	api    services.GalleryAPI
	logger *log.Logger
}

// NewSubmitter creates a Submitter over the given gallery API.
func NewSubmitter(api services.GalleryAPI, logger *log.Logger) *Submitter {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Submitter{api: api, logger: logger}
}

// Submit uploads every staged file in buffer order as one multipart request.
//
// Files and titles stay positionally paired: entry i contributes the i-th
// "images" part and the "titles[i]" field.
func (s *Submitter) Submit(ctx context.Context, buffer *Buffer) error {
	staged := buffer.Files()
	if len(staged) == 0 {
		return shared.ErrNothingToSubmit
	}

	files := make([]services.UploadFile, len(staged))
	for i, file := range staged {
		files[i] = services.UploadFile{
			Name:    file.Name,
			Title:   file.Title,
			Content: file.Content,
		}
	}

	if err := s.api.UploadImages(ctx, files); err != nil {
		s.logger.Debug("batch upload failed, keeping buffer", "count", len(staged), "err", err)
		return err
	}

	s.logger.Info("batch upload succeeded", "count", len(staged))
	buffer.Clear()
	return nil
}
