package shared

import (
	"path/filepath"
	"testing"
)

func TestNewDatabase(t *testing.T) {
	t.Run("opens and applies pragmas", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		var foreignKeys int
		if err := db.QueryRow("PRAGMA foreign_keys").Scan(&foreignKeys); err != nil {
			t.Fatalf("failed to query foreign_keys pragma: %v", err)
		}
		if foreignKeys != 1 {
			t.Errorf("expected foreign_keys on, got %d", foreignKeys)
		}

		var busyTimeout int
		if err := db.QueryRow("PRAGMA busy_timeout").Scan(&busyTimeout); err != nil {
			t.Fatalf("failed to query busy_timeout pragma: %v", err)
		}
		if busyTimeout != 5000 {
			t.Errorf("expected busy_timeout 5000, got %d", busyTimeout)
		}
	})

	t.Run("file-backed database", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.db")

		db, err := NewDatabase(path)
		if err != nil {
			t.Fatalf("failed to create database: %v", err)
		}
		defer db.Close()

		if _, err := db.Exec("CREATE TABLE t (id INTEGER)"); err != nil {
			t.Errorf("expected writable database: %v", err)
		}
	})

	t.Run("unreachable path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "nested", "test.db")

		if _, err := NewDatabase(path); err == nil {
			t.Error("expected error for a path with missing parent directories")
		}
	})
}
