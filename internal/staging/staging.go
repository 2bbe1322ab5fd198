// package staging implements the client-local holding area for files selected
// for upload.
//
// Each staged file owns exactly one preview handle: a temp file on disk that a
// renderer can point at without re-reading the original bytes. Handles are
// released exactly once, and every removal path (explicit unstage, batch
// submit success, buffer close) funnels through the same release point.
package staging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertbloom/stockpix/internal/shared"
)

// Handle is a revocable local reference to a staged file's preview.
type Handle struct {
	mu       sync.Mutex
	path     string
	released bool
}

// Path returns the preview file location. Empty after release.
func (h *Handle) Path() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return ""
	}
	return h.path
}

// Released reports whether the handle has been released.
func (h *Handle) Released() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.released
}

// Release removes the preview file. Exactly-once: a second call is an error
// and touches nothing.
func (h *Handle) Release() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return shared.ErrHandleReleased
	}
	h.released = true

	if err := os.Remove(h.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove preview file: %w", err)
	}
	return nil
}

// StagedFile is one locally-selected file pending submission.
//
// Title stays editable until the containing batch is submitted.
type StagedFile struct {
	LocalID string
	Name    string
	Title   string
	Content []byte
	Preview *Handle
}

// BufferOpts contains configuration options for creating a Buffer.
type BufferOpts struct {
	// PreviewDir is where preview files are written. Empty means the OS temp dir.
	PreviewDir string
	// TitleFromFilename defaults a staged file's title to its base name.
	TitleFromFilename bool
	Logger            *log.Logger
}

// Buffer holds staged files in selection order. Purely local; no network I/O
// happens here.
type Buffer struct {
	previewDir        string
	titleFromFilename bool
	logger            *log.Logger

	mu    sync.Mutex
	files []*StagedFile
}

// NewBuffer creates an empty staging buffer.
func NewBuffer(opts BufferOpts) *Buffer {
	if opts.PreviewDir == "" {
		opts.PreviewDir = os.TempDir()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	return &Buffer{
		previewDir:        opts.PreviewDir,
		titleFromFilename: opts.TitleFromFilename,
		logger:            opts.Logger,
	}
}

// Stage appends a file to the buffer, writing its preview file and assigning a
// fresh local id.
//
// No de-duplication: staging the same content twice produces two independent
// entries, each with its own preview handle.
func (b *Buffer) Stage(name string, content []byte) (*StagedFile, error) {
	if err := os.MkdirAll(b.previewDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create preview directory: %w", err)
	}

	preview, err := os.CreateTemp(b.previewDir, "preview-*"+filepath.Ext(name))
	if err != nil {
		return nil, fmt.Errorf("failed to create preview file: %w", err)
	}
	if _, err := preview.Write(content); err != nil {
		preview.Close()
		os.Remove(preview.Name())
		return nil, fmt.Errorf("failed to write preview file: %w", err)
	}
	if err := preview.Close(); err != nil {
		os.Remove(preview.Name())
		return nil, fmt.Errorf("failed to close preview file: %w", err)
	}

	title := ""
	if b.titleFromFilename {
		title = filepath.Base(name)
	}

	file := &StagedFile{
		LocalID: shared.GenerateID(),
		Name:    filepath.Base(name),
		Title:   title,
		Content: content,
		Preview: &Handle{path: preview.Name()},
	}

	b.mu.Lock()
	b.files = append(b.files, file)
	b.mu.Unlock()

	b.logger.Debug("staged file", "name", file.Name, "local_id", file.LocalID)
	return file, nil
}

// StageFile reads a file from disk and stages it.
func (b *Buffer) StageFile(path string) (*StagedFile, error) {
	content, err := shared.VerifyAndReadFile(path)
	if err != nil {
		return nil, err
	}
	return b.Stage(path, content)
}

// Unstage removes the entry and releases its preview handle immediately.
func (b *Buffer) Unstage(localID string) error {
	b.mu.Lock()
	var removed *StagedFile
	for i, file := range b.files {
		if file.LocalID == localID {
			removed = file
			b.files = append(b.files[:i], b.files[i+1:]...)
			break
		}
	}
	b.mu.Unlock()

	if removed == nil {
		return fmt.Errorf("%w: %s", shared.ErrNotStaged, localID)
	}

	if err := removed.Preview.Release(); err != nil {
		b.logger.Warn("failed to release preview handle", "local_id", localID, "err", err)
	}
	return nil
}

// Retitle replaces the title of exactly one entry. Any string is accepted;
// the server may still reject an empty title at upload time.
func (b *Buffer) Retitle(localID, title string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, file := range b.files {
		if file.LocalID == localID {
			file.Title = title
			return nil
		}
	}
	return fmt.Errorf("%w: %s", shared.ErrNotStaged, localID)
}

// Files returns a positional snapshot of the staged entries.
func (b *Buffer) Files() []*StagedFile {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*StagedFile, len(b.files))
	copy(out, b.files)
	return out
}

// Len returns the number of staged entries.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.files)
}

// Clear empties the buffer, releasing every preview handle. Called after a
// successful batch submission and when abandoning the upload view.
func (b *Buffer) Clear() {
	b.mu.Lock()
	files := b.files
	b.files = nil
	b.mu.Unlock()

	for _, file := range files {
		if err := file.Preview.Release(); err != nil {
			b.logger.Warn("failed to release preview handle", "local_id", file.LocalID, "err", err)
		}
	}
}

// Close releases all remaining handles. Alias for Clear kept for defer sites.
func (b *Buffer) Close() {
	b.Clear()
}
