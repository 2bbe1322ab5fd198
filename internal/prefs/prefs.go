// package prefs persists client-side display preferences.
//
// Preferences live in a local sqlite table so they survive reloads. They are
// not part of the gallery's correctness surface.
package prefs

import (
	"database/sql"
	"fmt"
	"time"
)

// Theme preference values.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	themeKey = "theme"
)

// Store reads and writes preferences through a sqlite connection.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store with the given database connection.
// The prefs table is expected to exist (see shared.RunMigrations).
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the value for key, or fallback when no row exists.
func (s *Store) Get(key, fallback string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return fallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query pref %s: %w", key, err)
	}
	return value, nil
}

// Set upserts the value for key.
func (s *Store) Set(key, value string) error {
	query := `
		INSERT INTO prefs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := s.db.Exec(query, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to set pref %s: %w", key, err)
	}
	return nil
}

// Theme returns the persisted display theme, defaulting to light.
func (s *Store) Theme() (string, error) {
	return s.Get(themeKey, ThemeLight)
}

// SetTheme persists the display theme.
func (s *Store) SetTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme %q", theme)
	}
	return s.Set(themeKey, theme)
}

// ToggleTheme flips between light and dark, returning the new value.
func (s *Store) ToggleTheme() (string, error) {
	current, err := s.Theme()
	if err != nil {
		return "", err
	}

	next := ThemeLight
	if current == ThemeLight {
		next = ThemeDark
	}

	if err := s.SetTheme(next); err != nil {
		return "", err
	}
	return next, nil
}
