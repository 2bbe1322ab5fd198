package staging

import (
	"context"
	"errors"
	"testing"

	"github.com/desertbloom/stockpix/internal/shared"
	mocks "github.com/desertbloom/stockpix/internal/testing"
)

func TestSubmitterSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("empty buffer returns without network call", func(t *testing.T) {
		api := &mocks.MockGalleryAPI{}
		submitter := NewSubmitter(api, nil)
		buffer := newTestBuffer(t, true)

		if err := submitter.Submit(ctx, buffer); !errors.Is(err, shared.ErrNothingToSubmit) {
			t.Errorf("Expected ErrNothingToSubmit, got %v", err)
		}
		if api.UploadCalls != 0 {
			t.Errorf("Expected no upload calls, got %d", api.UploadCalls)
		}
	})

	t.Run("submits files and titles positionally", func(t *testing.T) {
		api := &mocks.MockGalleryAPI{}
		submitter := NewSubmitter(api, nil)
		buffer := newTestBuffer(t, false)

		first, err := buffer.Stage("a.jpg", []byte("aaa"))
		if err != nil {
			t.Fatalf("Stage failed: %v", err)
		}
		if _, err := buffer.Stage("b.jpg", []byte("bbb")); err != nil {
			t.Fatalf("Stage failed: %v", err)
		}
		if err := buffer.Retitle(first.LocalID, "Alpha"); err != nil {
			t.Fatalf("Retitle failed: %v", err)
		}

		if err := submitter.Submit(ctx, buffer); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}

		if len(api.LastUpload) != 2 {
			t.Fatalf("Expected 2 files, got %d", len(api.LastUpload))
		}
		if api.LastUpload[0].Name != "a.jpg" || api.LastUpload[0].Title != "Alpha" {
			t.Errorf("Position 0 mismatch: %+v", api.LastUpload[0])
		}
		if api.LastUpload[1].Name != "b.jpg" || api.LastUpload[1].Title != "" {
			t.Errorf("Position 1 mismatch: %+v", api.LastUpload[1])
		}
		if string(api.LastUpload[0].Content) != "aaa" {
			t.Errorf("Unexpected content at position 0: %q", api.LastUpload[0].Content)
		}
	})

	t.Run("success clears the buffer and releases previews", func(t *testing.T) {
		api := &mocks.MockGalleryAPI{}
		submitter := NewSubmitter(api, nil)
		buffer := newTestBuffer(t, true)

		file, err := buffer.Stage("a.jpg", []byte("aaa"))
		if err != nil {
			t.Fatalf("Stage failed: %v", err)
		}
		previewPath := file.Preview.Path()

		if err := submitter.Submit(ctx, buffer); err != nil {
			t.Fatalf("Submit failed: %v", err)
		}

		if buffer.Len() != 0 {
			t.Errorf("Expected buffer cleared after success, got %d entries", buffer.Len())
		}
		mocks.AssertFileGone(t, previewPath)
	})

	t.Run("failure keeps the buffer intact for retry", func(t *testing.T) {
		api := &mocks.MockGalleryAPI{UploadErr: errors.New("413 payload too large")}
		submitter := NewSubmitter(api, nil)
		buffer := newTestBuffer(t, true)

		file, err := buffer.Stage("a.jpg", []byte("aaa"))
		if err != nil {
			t.Fatalf("Stage failed: %v", err)
		}

		if err := submitter.Submit(ctx, buffer); err == nil {
			t.Fatal("Expected submit error")
		}

		if buffer.Len() != 1 {
			t.Errorf("Expected buffer to keep its entry, got %d", buffer.Len())
		}
		if file.Preview.Released() {
			t.Error("Expected preview handle to survive a failed submit")
		}
		mocks.AssertFileExists(t, file.Preview.Path())

		// Retry against a recovered backend succeeds and clears.
		api.UploadErr = nil
		if err := submitter.Submit(ctx, buffer); err != nil {
			t.Fatalf("Retry failed: %v", err)
		}
		if buffer.Len() != 0 {
			t.Errorf("Expected buffer cleared after retry, got %d", buffer.Len())
		}
	})
}
