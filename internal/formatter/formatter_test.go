package formatter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/desertbloom/stockpix/internal/models"
)

func sampleItems() []models.MediaItem {
	return []models.MediaItem{
		{ID: "a", Title: "Sunrise", ImageURL: "https://cdn.example.com/a.jpg", Order: 1},
		{ID: "b", Title: "Harbor, North", ImageURL: "https://cdn.example.com/b.jpg", Order: 2},
	}
}

func TestExportToCSV(t *testing.T) {
	data, err := ExportToCSV(sampleItems())
	if err != nil {
		t.Fatalf("ExportToCSV failed: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse generated CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(records))
	}
	if records[0][0] != "Order" || records[0][2] != "Title" {
		t.Errorf("unexpected header row: %v", records[0])
	}
	if records[2][2] != "Harbor, North" {
		t.Errorf("expected comma in title to survive quoting, got %q", records[2][2])
	}
}

func TestExportToMarkdown(t *testing.T) {
	data := string(ExportToMarkdown("Gallery", sampleItems()))

	if !strings.HasPrefix(data, "# Gallery\n") {
		t.Errorf("expected heading, got %q", data)
	}
	if !strings.Contains(data, "2 images") {
		t.Errorf("expected image count, got %q", data)
	}
	if !strings.Contains(data, "| 1 | Sunrise | https://cdn.example.com/a.jpg |") {
		t.Errorf("expected table row, got %q", data)
	}
}

func TestExportToText(t *testing.T) {
	t.Run("aligns titles", func(t *testing.T) {
		lines := strings.Split(strings.TrimRight(string(ExportToText(sampleItems())), "\n"), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}

		// Both URLs start at the same column because titles are padded.
		first := strings.Index(lines[0], "https://")
		second := strings.Index(lines[1], "https://")
		if first != second {
			t.Errorf("expected aligned URLs, got columns %d and %d", first, second)
		}
	})

	t.Run("empty collection", func(t *testing.T) {
		if got := ExportToText(nil); len(got) != 0 {
			t.Errorf("expected empty output, got %q", got)
		}
	})
}
