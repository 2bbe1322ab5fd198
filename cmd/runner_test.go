package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/desertbloom/stockpix/internal/models"
	"github.com/desertbloom/stockpix/internal/shared"
	tu "github.com/desertbloom/stockpix/internal/testing"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			auth := &tu.MockAuthAPI{}
			gal := &tu.MockGalleryAPI{}

			runner := NewRunner(RunnerOpts{
				Config:  config,
				Logger:  logger,
				Output:  output,
				Auth:    auth,
				Gallery: gal,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.auth != auth {
				t.Error("expected auth API to be set")
			}
			if runner.gal != gal {
				t.Error("expected gallery API to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
			if runner.config.Server.BaseURL == "" {
				t.Error("expected default base URL")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("wires session and staging dependencies", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Auth: &tu.MockAuthAPI{}, Gallery: &tu.MockGalleryAPI{}})

			if runner.store == nil || runner.guard == nil {
				t.Error("expected session store and guard")
			}
			if runner.engine == nil {
				t.Error("expected gallery engine")
			}
			if runner.buffer == nil || runner.submitter == nil {
				t.Error("expected staging buffer and submitter")
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Auth: &tu.MockAuthAPI{}, Gallery: &tu.MockGalleryAPI{}})
		commands := runner.register()

		names := make(map[string]bool)
		for _, cmd := range commands {
			names[cmd.Name] = true
		}

		for _, want := range []string{"setup", "auth", "gallery", "upload", "theme", "tui"} {
			if !names[want] {
				t.Errorf("expected %q command to be registered", want)
			}
		}
	})

	t.Run("writeJSON", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{
			Output:  output,
			Auth:    &tu.MockAuthAPI{},
			Gallery: &tu.MockGalleryAPI{},
		})

		item := models.MediaItem{ID: "a", Title: "Sunrise", Order: 1}
		if err := runner.writeJSON(item, false); err != nil {
			t.Fatalf("writeJSON failed: %v", err)
		}

		got := output.String()
		if !strings.Contains(got, `"_id":"a"`) {
			t.Errorf("expected backend field names in output, got %s", got)
		}
		if !strings.HasSuffix(got, "\n") {
			t.Error("expected trailing newline")
		}
	})

	t.Run("writeJSON pretty", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{
			Output:  output,
			Auth:    &tu.MockAuthAPI{},
			Gallery: &tu.MockGalleryAPI{},
		})

		if err := runner.writeJSON(map[string]string{"k": "v"}, true); err != nil {
			t.Fatalf("writeJSON failed: %v", err)
		}

		if !strings.Contains(output.String(), "  \"k\": \"v\"") {
			t.Errorf("expected indented output, got %s", output.String())
		}
	})

	t.Run("writePlain helpers", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{
			Output:  output,
			Auth:    &tu.MockAuthAPI{},
			Gallery: &tu.MockGalleryAPI{},
		})

		if err := runner.writePlain("hello %s", "world"); err != nil {
			t.Fatalf("writePlain failed: %v", err)
		}
		if err := runner.writePlainln("%d items", 3); err != nil {
			t.Fatalf("writePlainln failed: %v", err)
		}

		if output.String() != "hello world3 items\n" {
			t.Errorf("unexpected output: %q", output.String())
		}
	})
}
