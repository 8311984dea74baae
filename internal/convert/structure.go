// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// StructureConverter produces Markdown from positioned text elements. It
// validates the document structure first, then walks each page: text runs
// are grouped into lines by vertical proximity and ordered top-to-bottom,
// left-to-right. In accurate mode, font-size statistics drive heading markup
// and word-gap spacing; fast mode takes the library's row reader as-is.
type StructureConverter struct {
	// Accurate enables the slower layout analysis pass.
	Accurate bool
}

// OutputExt returns the save suffix for Markdown output.
func (s *StructureConverter) OutputExt() string { return ".md" }

// Convert reads the PDF at path and returns Markdown. The file handle is
// closed on every return path.
func (s *StructureConverter) Convert(path string) (string, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(path, conf); err != nil {
		return "", fmt.Errorf("invalid PDF structure in %s: %w", path, err)
	}

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

		var text string
		if s.Accurate {
			text = accuratePageText(page)
		} else {
			text = fastPageText(page)
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

// fastPageText extracts a page through the library's row reader. Empty
// strings between words mark word boundaries.
func fastPageText(page pdf.Page) string {
	rows, err := page.GetTextByRow()
	if err != nil || len(rows) == 0 {
		return accuratePageText(page)
	}

	var b strings.Builder
	for _, row := range rows {
		var line strings.Builder
		sawGap := false
		for _, word := range row.Content {
			if word.S == "" {
				sawGap = true
				continue
			}
			if line.Len() > 0 && sawGap && !strings.HasSuffix(line.String(), " ") {
				line.WriteString(" ")
			}
			line.WriteString(word.S)
			sawGap = false
		}
		if text := strings.TrimSpace(line.String()); text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// textElement is one positioned text run on a page.
type textElement struct {
	x    float64
	y    float64
	size float64
	text string
}

// textLine groups elements that share a baseline.
type textLine struct {
	y        float64
	elements []textElement
}

// accuratePageText extracts a page from raw positioned content: elements are
// grouped into lines, ordered, spaced by gap analysis, and marked up as
// headings where the font size stands out from the body text.
func accuratePageText(page pdf.Page) string {
	content := page.Content()
	if len(content.Text) == 0 {
		return ""
	}

	var elements []textElement
	for _, t := range content.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		elements = append(elements, textElement{x: t.X, y: t.Y, size: t.FontSize, text: t.S})
	}
	if len(elements) == 0 {
		return ""
	}

	lines := groupLines(elements)
	body := bodyFontSize(elements)

	var b strings.Builder
	for _, ln := range lines {
		text := renderLine(ln)
		if text == "" {
			continue
		}
		b.WriteString(headingPrefix(ln, body))
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String()
}

// groupLines assigns elements to lines by Y proximity, then orders lines
// top-to-bottom (PDF Y grows upward) and elements left-to-right.
func groupLines(elements []textElement) []textLine {
	tolerance := 3.0
	if elements[0].size > 0 {
		tolerance = elements[0].size * 0.3
	}

	var lines []textLine
	for _, el := range elements {
		placed := false
		for i := range lines {
			if abs(lines[i].y-el.y) < tolerance {
				lines[i].elements = append(lines[i].elements, el)
				placed = true
				break
			}
		}
		if !placed {
			lines = append(lines, textLine{y: el.y, elements: []textElement{el}})
		}
	}

	sort.Slice(lines, func(i, j int) bool { return lines[i].y > lines[j].y })
	for _, ln := range lines {
		els := ln.elements
		sort.Slice(els, func(i, j int) bool { return els[i].x < els[j].x })
	}
	return lines
}

// renderLine joins a line's elements, inserting a space wherever the
// horizontal gap between runs exceeds a font-size-relative threshold.
func renderLine(ln textLine) string {
	var b strings.Builder
	var lastEnd float64
	for i, el := range ln.elements {
		if i > 0 {
			threshold := el.size * 0.2
			if threshold < 1.0 {
				threshold = 1.0
			}
			if el.x-lastEnd > threshold {
				b.WriteString(" ")
			}
		}
		b.WriteString(el.text)
		// Approximate run width from glyph count and font size.
		lastEnd = el.x + float64(len([]rune(el.text)))*el.size*0.55
	}
	return strings.TrimSpace(b.String())
}

// bodyFontSize returns the most common font size across the page, which
// stands in for the body text size when ranking headings.
func bodyFontSize(elements []textElement) float64 {
	counts := make(map[float64]int)
	for _, el := range elements {
		counts[el.size] += len(el.text)
	}
	var body float64
	var best int
	for size, n := range counts {
		if n > best {
			body = size
			best = n
		}
	}
	return body
}

// headingPrefix returns "# " or "## " for lines whose smallest font size
// clearly exceeds the body size, and "" otherwise. Long lines are never
// headings regardless of size.
func headingPrefix(ln textLine, body float64) string {
	if body <= 0 {
		return ""
	}

	lineLen := 0
	smallest := ln.elements[0].size
	for _, el := range ln.elements {
		lineLen += len(el.text)
		if el.size < smallest {
			smallest = el.size
		}
	}
	if lineLen > 120 {
		return ""
	}

	switch {
	case smallest >= body*1.5:
		return "# "
	case smallest >= body*1.2:
		return "## "
	default:
		return ""
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
