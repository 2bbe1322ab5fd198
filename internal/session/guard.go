package session

import (
	"fmt"

	"github.com/desertbloom/stockpix/internal/shared"
)

// Decision is the outcome of a guard check for a protected view.
type Decision int

const (
	// Pending means the session is still Unresolved; render a neutral
	// indicator and nothing else. Protected content must never flash before
	// resolution completes.
	Pending Decision = iota
	// Allow means the target view may render.
	Allow
	// RedirectLogin means the user must go through the login entry point.
	RedirectLogin
)

// Guard gates navigation on the Store's status.
type Guard struct {
	store *Store
}

// NewGuard creates a Guard over the given Store.
func NewGuard(store *Store) *Guard {
	return &Guard{store: store}
}

// Check maps the store's status to a navigation decision.
func (g *Guard) Check() Decision {
	switch g.store.Status() {
	case Authenticated:
		return Allow
	case Unauthenticated:
		return RedirectLogin
	default:
		return Pending
	}
}

// Require returns an error unless the session is Authenticated. Used by CLI
// actions, which have no login view to redirect to.
func (g *Guard) Require() error {
	switch g.Check() {
	case Allow:
		return nil
	case Pending:
		return fmt.Errorf("%w: session not yet resolved", shared.ErrNotAuthenticated)
	default:
		return fmt.Errorf("%w: run 'stockpix auth login' first", shared.ErrNotAuthenticated)
	}
}
