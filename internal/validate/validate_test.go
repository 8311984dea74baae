// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/paperdesk/pkg/types"
)

func writePDF(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPDF(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, dir string) string
		wantKind types.ErrorKind // "" means valid
		wantMsg  string
	}{
		{
			name: "valid pdf",
			setup: func(t *testing.T, dir string) string {
				return writePDF(t, dir, "paper.pdf", []byte("%PDF-1.7 fake"))
			},
		},
		{
			name: "uppercase suffix accepted",
			setup: func(t *testing.T, dir string) string {
				return writePDF(t, dir, "PAPER.PDF", []byte("%PDF-1.7 fake"))
			},
		},
		{
			name: "missing file",
			setup: func(t *testing.T, dir string) string {
				return filepath.Join(dir, "nonexistent.pdf")
			},
			wantKind: types.ErrNotFound,
			wantMsg:  "File not found:",
		},
		{
			name: "wrong suffix",
			setup: func(t *testing.T, dir string) string {
				return writePDF(t, dir, "notes.txt", []byte("plain text"))
			},
			wantKind: types.ErrWrongType,
			wantMsg:  "File is not a PDF:",
		},
		{
			name: "zero bytes",
			setup: func(t *testing.T, dir string) string {
				return writePDF(t, dir, "hollow.pdf", nil)
			},
			wantKind: types.ErrEmpty,
			wantMsg:  "PDF file is empty:",
		},
		{
			// A missing path short-circuits before the suffix check, even
			// when the suffix is also wrong.
			name: "missing file with wrong suffix reports not found",
			setup: func(t *testing.T, dir string) string {
				return filepath.Join(dir, "nonexistent.txt")
			},
			wantKind: types.ErrNotFound,
			wantMsg:  "File not found:",
		},
		{
			// An empty file with the wrong suffix stops at the suffix check.
			name: "empty file with wrong suffix reports wrong type",
			setup: func(t *testing.T, dir string) string {
				return writePDF(t, dir, "hollow.txt", nil)
			},
			wantKind: types.ErrWrongType,
			wantMsg:  "File is not a PDF:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.setup(t, t.TempDir())

			err := PDF(path)

			if tt.wantKind == "" {
				if err != nil {
					t.Fatalf("PDF(%q) = %v, want nil", path, err)
				}
				return
			}

			var cerr *types.ConversionError
			if !errors.As(err, &cerr) {
				t.Fatalf("PDF(%q) returned %T, want *types.ConversionError", path, err)
			}
			if cerr.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", cerr.Kind, tt.wantKind)
			}
			if !strings.Contains(cerr.Message, tt.wantMsg) {
				t.Errorf("message %q does not contain %q", cerr.Message, tt.wantMsg)
			}
			if !strings.Contains(cerr.Message, path) {
				t.Errorf("message %q does not name the path %q", cerr.Message, path)
			}
		})
	}
}
