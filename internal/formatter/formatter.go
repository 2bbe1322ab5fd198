// package formatter provides functions to export gallery data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/desertbloom/stockpix/internal/models"
)

// ExportToCSV converts a collection to CSV format with columns: Order, ID, Title, URL
func ExportToCSV(items []models.MediaItem) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Order", "ID", "Title", "URL"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, item := range items {
		record := []string{
			strconv.Itoa(item.Order),
			item.ID,
			item.Title,
			item.ImageURL,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a collection to a Markdown table.
func ExportToMarkdown(title string, items []models.MediaItem) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("%d images\n\n", len(items)))
	buf.WriteString("| # | Title | URL |\n")
	buf.WriteString("|---|-------|-----|\n")

	for _, item := range items {
		buf.WriteString(fmt.Sprintf("| %d | %s | %s |\n", item.Order, item.Title, item.ImageURL))
	}

	return buf.Bytes()
}

// ExportToText converts a collection to aligned plain text, one image per line.
func ExportToText(items []models.MediaItem) []byte {
	var buf bytes.Buffer

	width := 0
	for _, item := range items {
		if len(item.Title) > width {
			width = len(item.Title)
		}
	}

	for _, item := range items {
		buf.WriteString(fmt.Sprintf("%3d  %-*s  %s\n", item.Order, width, item.Title, item.ImageURL))
	}

	return buf.Bytes()
}
