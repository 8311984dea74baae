// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// ErrorKind classifies a conversion failure by where it arose.
// Per prd001-validation R2 and prd003-jobs R3.2.
type ErrorKind string

const (
	// ErrNotFound: the input path does not exist on the filesystem.
	ErrNotFound ErrorKind = "not_found"

	// ErrWrongType: the input file does not carry a .pdf suffix.
	ErrWrongType ErrorKind = "wrong_type"

	// ErrEmpty: the input file exists but holds zero bytes.
	ErrEmpty ErrorKind = "empty"

	// ErrEmptyOutput: the backend ran but produced no usable text.
	ErrEmptyOutput ErrorKind = "empty_output"

	// ErrBackend: the conversion engine itself failed. The engine's
	// message is preserved verbatim for diagnostics.
	ErrBackend ErrorKind = "backend"

	// ErrSave: writing the converted output to disk failed.
	ErrSave ErrorKind = "save"
)

// ConversionError pairs an ErrorKind with a user-presentable message. All
// kinds are recoverable: the interface reports them and returns to a usable
// idle state.
type ConversionError struct {
	Kind    ErrorKind
	Message string
}

func (e *ConversionError) Error() string { return e.Message }

// Errf builds a ConversionError with a formatted message.
func Errf(kind ErrorKind, format string, args ...any) *ConversionError {
	return &ConversionError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ConversionRequest describes one committed conversion. Values are immutable
// once created and consumed exactly once by the job runner.
type ConversionRequest struct {
	// Path is the validated input PDF path.
	Path string

	// Accurate selects the slower, higher-quality table/layout analysis.
	Accurate bool
}

// ConversionOutcome is the one-shot result of a single job. Exactly one of
// Text or Err is set: Text is non-empty on success, and empty backend output
// is reported as an ErrEmptyOutput failure rather than a success.
type ConversionOutcome struct {
	Text string
	Err  *ConversionError
}

// Succeeded reports whether the job produced text.
func (o ConversionOutcome) Succeeded() bool { return o.Err == nil }

// ConversionStatus indicates how a recorded job ended.
// Per prd005-history R1.3.
type ConversionStatus string

const (
	ConversionDone   ConversionStatus = "done"
	ConversionFailed ConversionStatus = "failed"
)

// HistoryEntry is one finished job as persisted by the history store.
type HistoryEntry struct {
	// Path is the input PDF path as submitted.
	Path string `yaml:"path"`

	// Backend identifies the converter that ran ("structure", "plaintext").
	Backend string `yaml:"backend"`

	// Accurate records the quality/speed flag of the request.
	Accurate bool `yaml:"accurate"`

	// Status is done or failed.
	Status ConversionStatus `yaml:"status"`

	// Message holds the failure message; empty on success.
	Message string `yaml:"message,omitempty"`

	// Duration is the wall-clock time the backend call took.
	Duration time.Duration `yaml:"duration"`

	// CreatedAt is when the job finished.
	CreatedAt time.Time `yaml:"created_at"`
}
