// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PlainTextConverter extracts the raw text of every page with no layout
// analysis. Pages are joined by blank lines. Faster than the structure
// engine but loses headings and reading-order corrections.
type PlainTextConverter struct{}

// OutputExt returns the save suffix for plain-text output.
func (p *PlainTextConverter) OutputExt() string { return ".txt" }

// Convert reads the PDF at path and returns its concatenated page text.
// The file handle is closed on every return path.
func (p *PlainTextConverter) Convert(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", path, err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page does not abort the document.
			continue
		}

		text = strings.TrimSpace(text)
		if text != "" {
			pages = append(pages, text)
		}
	}

	out := strings.Join(pages, "\n\n")
	if strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("%s: %w", path, ErrNoText)
	}
	return out, nil
}
