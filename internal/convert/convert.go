// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns a PDF file into extracted Markdown or plain text.
// Implements: prd002-conversion (R1-R5);
//
//	docs/ARCHITECTURE § Conversion.
package convert

import (
	"errors"
	"fmt"

	"github.com/pdiddy/paperdesk/pkg/types"
)

// Converter transforms one PDF file into extracted text. The call is
// synchronous and potentially slow; callers run it off the interactive
// thread. Both engines (structure, plaintext) implement this interface.
type Converter interface {
	// Convert reads the PDF at path and returns the extracted content.
	Convert(path string) (string, error)

	// OutputExt returns the default filename suffix for saved output.
	OutputExt() string
}

// ErrNoText reports that an engine ran to completion but produced no usable
// text. The job runner reclassifies it as an empty-output failure.
var ErrNoText = errors.New("no text content extracted")

// New returns the converter selected by cfg for a single request. The
// accurate flag is sampled at submission time so toggling it mid-job has no
// effect on the running conversion.
func New(cfg types.ConversionConfig, accurate bool) (Converter, error) {
	switch cfg.Backend {
	case types.BackendPlaintext:
		return &PlainTextConverter{}, nil
	case types.BackendStructure, "":
		return &StructureConverter{Accurate: accurate}, nil
	default:
		return nil, fmt.Errorf("unknown conversion backend %q", cfg.Backend)
	}
}
