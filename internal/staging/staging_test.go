package staging

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/desertbloom/stockpix/internal/shared"
	mocks "github.com/desertbloom/stockpix/internal/testing"
)

func newTestBuffer(t *testing.T, titleFromFilename bool) *Buffer {
	t.Helper()
	return NewBuffer(BufferOpts{
		PreviewDir:        t.TempDir(),
		TitleFromFilename: titleFromFilename,
	})
}

func TestBufferStage(t *testing.T) {
	t.Run("assigns local id and writes preview", func(t *testing.T) {
		buffer := newTestBuffer(t, true)

		file, err := buffer.Stage("sunset.jpg", []byte("jpeg bytes"))
		if err != nil {
			t.Fatalf("Stage failed: %v", err)
		}

		if file.LocalID == "" {
			t.Error("Expected a non-empty local id")
		}
		if file.Title != "sunset.jpg" {
			t.Errorf("Expected title from filename, got %q", file.Title)
		}
		if filepath.Ext(file.Preview.Path()) != ".jpg" {
			t.Errorf("Expected preview to keep the extension, got %s", file.Preview.Path())
		}
		mocks.AssertFileExists(t, file.Preview.Path())
	})

	t.Run("empty title when filename policy is off", func(t *testing.T) {
		buffer := newTestBuffer(t, false)

		file, err := buffer.Stage("sunset.jpg", []byte("jpeg bytes"))
		if err != nil {
			t.Fatalf("Stage failed: %v", err)
		}

		if file.Title != "" {
			t.Errorf("Expected empty title, got %q", file.Title)
		}
	})

	t.Run("no deduplication of identical content", func(t *testing.T) {
		buffer := newTestBuffer(t, true)

		first, err := buffer.Stage("same.png", []byte("pixels"))
		if err != nil {
			t.Fatalf("Stage failed: %v", err)
		}
		second, err := buffer.Stage("same.png", []byte("pixels"))
		if err != nil {
			t.Fatalf("Stage failed: %v", err)
		}

		if first.LocalID == second.LocalID {
			t.Error("Expected distinct local ids for duplicate content")
		}
		if first.Preview.Path() == second.Preview.Path() {
			t.Error("Expected distinct preview files for duplicate content")
		}
		if buffer.Len() != 2 {
			t.Errorf("Expected 2 staged entries, got %d", buffer.Len())
		}
	})

	t.Run("preserves selection order", func(t *testing.T) {
		buffer := newTestBuffer(t, true)

		for _, name := range []string{"one.jpg", "two.jpg", "three.jpg"} {
			if _, err := buffer.Stage(name, []byte(name)); err != nil {
				t.Fatalf("Stage failed: %v", err)
			}
		}

		files := buffer.Files()
		for i, want := range []string{"one.jpg", "two.jpg", "three.jpg"} {
			if files[i].Name != want {
				t.Errorf("Position %d: expected %s, got %s", i, want, files[i].Name)
			}
		}
	})
}

func TestBufferStageFile(t *testing.T) {
	t.Run("reads content from disk", func(t *testing.T) {
		buffer := newTestBuffer(t, true)
		path := filepath.Join(t.TempDir(), "photo.png")
		mocks.MustWriteFile(t, path, []byte("png bytes"))

		file, err := buffer.StageFile(path)
		if err != nil {
			t.Fatalf("StageFile failed: %v", err)
		}

		if string(file.Content) != "png bytes" {
			t.Errorf("Unexpected content: %q", file.Content)
		}
		if file.Name != "photo.png" {
			t.Errorf("Expected base name, got %q", file.Name)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		buffer := newTestBuffer(t, true)

		if _, err := buffer.StageFile(filepath.Join(t.TempDir(), "nope.png")); err == nil {
			t.Error("Expected error for missing file")
		}
	})
}

func TestBufferUnstage(t *testing.T) {
	t.Run("removes entry and releases preview", func(t *testing.T) {
		buffer := newTestBuffer(t, true)
		file, err := buffer.Stage("gone.jpg", []byte("bytes"))
		if err != nil {
			t.Fatalf("Stage failed: %v", err)
		}
		previewPath := file.Preview.Path()

		if err := buffer.Unstage(file.LocalID); err != nil {
			t.Fatalf("Unstage failed: %v", err)
		}

		if buffer.Len() != 0 {
			t.Errorf("Expected empty buffer, got %d entries", buffer.Len())
		}
		if !file.Preview.Released() {
			t.Error("Expected preview handle to be released")
		}
		mocks.AssertFileGone(t, previewPath)
	})

	t.Run("unknown id", func(t *testing.T) {
		buffer := newTestBuffer(t, true)

		if err := buffer.Unstage("missing"); !errors.Is(err, shared.ErrNotStaged) {
			t.Errorf("Expected ErrNotStaged, got %v", err)
		}
	})
}

func TestBufferRetitle(t *testing.T) {
	buffer := newTestBuffer(t, true)
	file, err := buffer.Stage("pic.jpg", []byte("bytes"))
	if err != nil {
		t.Fatalf("Stage failed: %v", err)
	}

	t.Run("any string is accepted", func(t *testing.T) {
		for _, title := range []string{"New Title", "", "   "} {
			if err := buffer.Retitle(file.LocalID, title); err != nil {
				t.Errorf("Retitle(%q) failed: %v", title, err)
			}
			if got := buffer.Files()[0].Title; got != title {
				t.Errorf("Expected title %q, got %q", title, got)
			}
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if err := buffer.Retitle("missing", "x"); !errors.Is(err, shared.ErrNotStaged) {
			t.Errorf("Expected ErrNotStaged, got %v", err)
		}
	})
}

func TestBufferClear(t *testing.T) {
	buffer := newTestBuffer(t, true)

	var previews []string
	for _, name := range []string{"a.jpg", "b.jpg"} {
		file, err := buffer.Stage(name, []byte(name))
		if err != nil {
			t.Fatalf("Stage failed: %v", err)
		}
		previews = append(previews, file.Preview.Path())
	}

	buffer.Clear()

	if buffer.Len() != 0 {
		t.Errorf("Expected empty buffer, got %d entries", buffer.Len())
	}
	for _, path := range previews {
		mocks.AssertFileGone(t, path)
	}
}

func TestHandleRelease(t *testing.T) {
	t.Run("second release is an error", func(t *testing.T) {
		buffer := newTestBuffer(t, true)
		file, err := buffer.Stage("once.jpg", []byte("bytes"))
		if err != nil {
			t.Fatalf("Stage failed: %v", err)
		}

		if err := file.Preview.Release(); err != nil {
			t.Fatalf("First release failed: %v", err)
		}
		if err := file.Preview.Release(); !errors.Is(err, shared.ErrHandleReleased) {
			t.Errorf("Expected ErrHandleReleased, got %v", err)
		}
	})

	t.Run("path is empty after release", func(t *testing.T) {
		buffer := newTestBuffer(t, true)
		file, err := buffer.Stage("once.jpg", []byte("bytes"))
		if err != nil {
			t.Fatalf("Stage failed: %v", err)
		}

		if err := file.Preview.Release(); err != nil {
			t.Fatalf("Release failed: %v", err)
		}
		if got := file.Preview.Path(); got != "" {
			t.Errorf("Expected empty path after release, got %q", got)
		}
	})

	t.Run("clear after unstage does not double release", func(t *testing.T) {
		buffer := newTestBuffer(t, true)
		file, err := buffer.Stage("twice.jpg", []byte("bytes"))
		if err != nil {
			t.Fatalf("Stage failed: %v", err)
		}

		if err := buffer.Unstage(file.LocalID); err != nil {
			t.Fatalf("Unstage failed: %v", err)
		}
		buffer.Clear()

		if !file.Preview.Released() {
			t.Error("Expected handle to stay released")
		}
	})
}
