// package gallery maintains the authoritative ordered list of a user's
// persisted images.
//
// Reordering is optimistic: the new order is published locally before the
// backend confirms, and a failed submission is compensated by a full re-fetch
// rather than a diffed undo. Title edits and deletes are the opposite:
// confirm-before-mutate, so the user never sees a revert flash on discrete,
// infrequent actions.
package gallery

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/desertbloom/stockpix/internal/models"
	"github.com/desertbloom/stockpix/internal/services"
	"github.com/desertbloom/stockpix/internal/shared"
)

// Engine owns the in-memory mirror of the server-side collection.
//
// Invariant: the list is always sorted by Order, and after any committed
// local mutation the Order values are exactly 1..N in list position order.
type Engine struct {
	api    services.GalleryAPI
	logger *log.Logger

	mu    sync.Mutex
	items []models.MediaItem

	// loadToken discards stale fetch results: only the most recently issued
	// Load may publish its response.
	loadToken atomic.Uint64

	// submitMu serializes reorder submissions so concurrent drags cannot
	// commit out of order.
	submitMu sync.Mutex
}

// NewEngine creates an Engine with an empty collection.
func NewEngine(api services.GalleryAPI, logger *log.Logger) *Engine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Engine{api: api, logger: logger}
}

// Load fetches the full collection and replaces the in-memory list wholesale.
//
// Server input may be unsorted or non-contiguous; Load normalizes by sorting
// on Order but does not renumber. Renumbering only happens after local
// mutations.
func (e *Engine) Load(ctx context.Context) ([]models.MediaItem, error) {
	token := e.loadToken.Add(1)

	items, err := e.api.ListImages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gallery: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Order < items[j].Order
	})

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.loadToken.Load() != token {
		// A newer Load was issued while this one was in flight.
		e.logger.Debug("discarding stale gallery response", "token", token)
		return snapshot(e.items), nil
	}
	e.items = items
	return snapshot(e.items), nil
}

// Items returns a snapshot copy of the current list.
func (e *Engine) Items() []models.MediaItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(e.items)
}

// Len returns the number of items in the collection.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.items)
}

// Reorder moves the item at src to dst, optimistically and in two phases.
//
// Phase 1 removes the item, reinserts it, renumbers every Order to position+1
// and publishes the result immediately. Phase 2 submits the full new ordering;
// on failure the optimistic list is discarded by a corrective re-fetch so the
// displayed state never silently diverges from the server's.
//
// An in-range no-op move (src == dst) returns without network I/O.
// Submissions are serialized so a second drag issued mid-flight cannot commit
// ahead of the first.
func (e *Engine) Reorder(ctx context.Context, src, dst int) error {
	e.submitMu.Lock()
	defer e.submitMu.Unlock()

	e.mu.Lock()
	if src < 0 || src >= len(e.items) || dst < 0 || dst >= len(e.items) {
		e.mu.Unlock()
		return fmt.Errorf("%w: move %d -> %d out of range", shared.ErrInvalidArgument, src, dst)
	}
	if src == dst {
		e.mu.Unlock()
		return nil
	}

	reordered := snapshot(e.items)
	moved := reordered[src]
	reordered = append(reordered[:src], reordered[src+1:]...)
	reordered = append(reordered[:dst], append([]models.MediaItem{moved}, reordered[dst:]...)...)
	renumber(reordered)

	e.items = reordered
	orders := make([]models.ImageOrder, len(reordered))
	for i, item := range reordered {
		orders[i] = models.ImageOrder{ID: item.ID, Order: item.Order}
	}
	e.mu.Unlock()

	if err := e.api.ReorderImages(ctx, orders); err != nil {
		e.logger.Warn("reorder submission failed, restoring server order", "err", err)
		if _, loadErr := e.Load(ctx); loadErr != nil {
			return fmt.Errorf("%w (recovery fetch also failed: %v)", err, loadErr)
		}
		return err
	}

	return nil
}

// Retitle updates one item's title, confirm-before-mutate.
//
// A blank or whitespace-only title is rejected locally with no network I/O
// and no state change. The local title only changes once the server confirms.
func (e *Engine) Retitle(ctx context.Context, id, title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title cannot be empty", shared.ErrInvalidInput)
	}

	if err := e.api.UpdateImage(ctx, id, title); err != nil {
		return fmt.Errorf("failed to update title: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.items {
		if e.items[i].ID == id {
			e.items[i].Title = title
			return nil
		}
	}
	// Confirmed by the server but no longer present locally; the next Load
	// reconciles.
	return nil
}

// Delete removes one item, confirm-before-mutate like Retitle.
//
// After the server confirms, the remaining items are renumbered so the
// contiguity invariant holds after every committed mutation.
func (e *Engine) Delete(ctx context.Context, id string) error {
	if err := e.api.DeleteImage(ctx, id); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.items {
		if e.items[i].ID == id {
			e.items = append(e.items[:i], e.items[i+1:]...)
			renumber(e.items)
			return nil
		}
	}
	return nil
}

func snapshot(items []models.MediaItem) []models.MediaItem {
	out := make([]models.MediaItem, len(items))
	copy(out, items)
	return out
}

func renumber(items []models.MediaItem) {
	for i := range items {
		items[i].Order = i + 1
	}
}
