// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate checks candidate input files before a conversion job is
// committed. Implements: prd001-validation (R1-R3);
//
//	docs/ARCHITECTURE § Validation.
package validate

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/paperdesk/pkg/types"
)

// PDF verifies that path names an existing, non-empty file with a .pdf
// suffix (case-insensitive). Checks run in order and stop at the first
// failure, so a missing file never reaches the suffix or size check. Only
// file metadata is touched; the check is cheap enough to run synchronously
// on the interactive thread.
//
// The returned error is nil or a *types.ConversionError with kind
// ErrNotFound, ErrWrongType, or ErrEmpty.
func PDF(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return types.Errf(types.ErrNotFound, "File not found: %s", path)
	}

	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return types.Errf(types.ErrWrongType, "File is not a PDF: %s", path)
	}

	if info.Size() == 0 {
		return types.Errf(types.ErrEmpty, "PDF file is empty: %s", path)
	}

	return nil
}
