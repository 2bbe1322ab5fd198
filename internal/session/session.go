// package session holds the client's belief about who is logged in.
//
// A single Store exists per process. It starts Unresolved, resolves exactly
// once against the backend, and afterwards moves only between Authenticated
// and Unauthenticated through Login and Logout.
package session

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertbloom/stockpix/internal/models"
	"github.com/desertbloom/stockpix/internal/services"
	"github.com/desertbloom/stockpix/internal/shared"
)

// Status is the tri-state authentication status.
//
// Unresolved is a distinct third state rather than a boolean so that views can
// defer rendering until the initial session check has completed.
type Status int

const (
	Unresolved Status = iota
	Authenticated
	Unauthenticated
)

func (s Status) String() string {
	switch s {
	case Unresolved:
		return "unresolved"
	case Authenticated:
		return "authenticated"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Store owns the process-wide session state.
//
// Invariant: user is non-nil iff status is Authenticated.
type Store struct {
	api    services.AuthAPI
	logger *log.Logger

	// check latches the backend session check so concurrent first Resolve
	// calls issue a single request; later callers wait on the same attempt.
	check sync.Once

	mu       sync.Mutex
	status   Status
	user     *models.User
	resolved bool
}

// NewStore creates a Store in the Unresolved state.
func NewStore(api services.AuthAPI, logger *log.Logger) *Store {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Store{
		api:    api,
		logger: logger,
		status: Unresolved,
	}
}

// Resolve recovers an existing backend session, transitioning out of
// Unresolved exactly once per process. At most one check request is ever
// issued: concurrent first callers wait for the single in-flight attempt, and
// later calls return the current status without network I/O.
//
// A failed check resolves to Unauthenticated; it is logged but never returned
// as an error.
func (s *Store) Resolve(ctx context.Context) Status {
	s.check.Do(func() {
		s.mu.Lock()
		if s.resolved {
			// A Login or Logout already settled the state; no check needed.
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		user, err := s.api.CheckAuth(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()

		// A Login may have raced the check; the first resolution wins only
		// while the store is still Unresolved.
		if s.resolved {
			return
		}
		s.resolved = true

		if err != nil {
			s.logger.Debug("session check failed, treating as unauthenticated", "err", err)
			s.status = Unauthenticated
			s.user = nil
			return
		}

		s.status = Authenticated
		s.user = user
		s.logger.Debug("session resolved", "email", user.Email)
	})

	return s.Status()
}

// Login sets the store to Authenticated with the given user.
//
// Purely local: the network exchange has already succeeded by the time this
// runs. Calling Login while already Authenticated replaces the identity.
func (s *Store) Login(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resolved = true
	s.status = Authenticated
	s.user = &user
}

// Logout requests backend session termination and clears local state whether
// or not that request succeeds. The user must always be able to leave an
// authenticated view, so a failed logout is logged, not surfaced.
func (s *Store) Logout(ctx context.Context) {
	if err := s.api.Logout(ctx); err != nil {
		s.logger.Warn("backend logout failed, clearing local session anyway", "err", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.resolved = true
	s.status = Unauthenticated
	s.user = nil
}

// Status returns the current authentication status.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// User returns the authenticated user, and whether one is present.
func (s *Store) User() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}
