package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := GenerateID()
		if id == "" {
			t.Fatal("expected non-empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestVerifyAndReadFile(t *testing.T) {
	t.Run("reads regular file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file.txt")
		if err := os.WriteFile(path, []byte("content"), 0644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		data, err := VerifyAndReadFile(path)
		if err != nil {
			t.Fatalf("VerifyAndReadFile failed: %v", err)
		}
		if string(data) != "content" {
			t.Errorf("unexpected content: %q", data)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := VerifyAndReadFile(filepath.Join(t.TempDir(), "nope.txt"))
		if !errors.Is(err, ErrFileNotFound) {
			t.Errorf("expected ErrFileNotFound, got %v", err)
		}
	})

	t.Run("directory", func(t *testing.T) {
		_, err := VerifyAndReadFile(t.TempDir())
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestValidateJSON(t *testing.T) {
	if err := ValidateJSON([]byte(`{"ok":true}`)); err != nil {
		t.Errorf("expected valid JSON to pass: %v", err)
	}
	if err := ValidateJSON([]byte(`{broken`)); err == nil {
		t.Error("expected invalid JSON to fail")
	}
}
