// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package job runs one conversion at a time on a background goroutine and
// marshals the one-shot outcome back onto the interactive context.
// Implements: prd003-jobs (R1-R5);
//
//	docs/ARCHITECTURE § Job Runner.
package job

import (
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pdiddy/paperdesk/internal/convert"
	"github.com/pdiddy/paperdesk/pkg/types"
)

// Scheduler posts a function to run on the interactive context at its next
// opportunity. The GUI backs it with the toolkit's event queue; tests
// substitute a synchronous or channel-pumped implementation. This handoff is
// the one concurrency contract the application depends on: widget state is
// never mutated from the worker goroutine.
type Scheduler interface {
	Post(fn func())
}

// SchedulerFunc adapts a plain function to the Scheduler interface.
type SchedulerFunc func(func())

func (s SchedulerFunc) Post(fn func()) { s(fn) }

// Recorder persists a finished job. *history.Store implements it. Recording
// happens on the worker goroutine so the interactive context never waits on
// the database.
type Recorder interface {
	Record(entry types.HistoryEntry) error
}

// ErrBusy is returned by Submit while another request is in flight. The
// interface disables the triggering affordance before submitting, so hitting
// this is a programming error rather than an expected user path.
var ErrBusy = errors.New("a conversion is already in flight")

// Runner owns background execution of conversion requests. At most one
// request is in flight at a time.
type Runner struct {
	sched    Scheduler
	recorder Recorder // optional
	logger   *slog.Logger
	inFlight atomic.Bool
}

// NewRunner creates a Runner delivering outcomes through sched. recorder may
// be nil when history is unavailable.
func NewRunner(sched Scheduler, recorder Recorder, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{sched: sched, recorder: recorder, logger: logger}
}

// Submit begins background execution of req against c and returns without
// waiting. done is invoked exactly once with the outcome, on the interactive
// context, strictly after Submit returns. Returns ErrBusy when a request is
// already in flight.
func (r *Runner) Submit(req types.ConversionRequest, c convert.Converter, done func(types.ConversionOutcome)) error {
	if !r.inFlight.CompareAndSwap(false, true) {
		return ErrBusy
	}

	go func() {
		out := r.execute(req, c)
		r.sched.Post(func() {
			r.inFlight.Store(false)
			done(out)
		})
	}()

	return nil
}

// Busy reports whether a request is currently in flight.
func (r *Runner) Busy() bool { return r.inFlight.Load() }

// execute runs the blocking conversion on the worker goroutine, classifies
// the result, and records it.
func (r *Runner) execute(req types.ConversionRequest, c convert.Converter) types.ConversionOutcome {
	start := time.Now()
	text, err := c.Convert(req.Path)
	elapsed := time.Since(start)

	out := classify(text, err)
	if out.Succeeded() {
		r.logger.Info("conversion finished",
			"path", req.Path, "chars", len(out.Text), "duration", elapsed)
	} else {
		r.logger.Error("conversion failed",
			"path", req.Path, "kind", string(out.Err.Kind), "error", out.Err.Message, "duration", elapsed)
	}

	r.record(req, c, out, elapsed)
	return out
}

// classify maps a raw backend result to an outcome. Engine errors pass
// through with their message verbatim; empty text is a failure, never a
// success.
func classify(text string, err error) types.ConversionOutcome {
	if err != nil {
		kind := types.ErrBackend
		if errors.Is(err, convert.ErrNoText) {
			kind = types.ErrEmptyOutput
		}
		return types.ConversionOutcome{Err: &types.ConversionError{Kind: kind, Message: err.Error()}}
	}

	if strings.TrimSpace(text) == "" {
		return types.ConversionOutcome{
			Err: types.Errf(types.ErrEmptyOutput, "Conversion failed: Empty output"),
		}
	}

	return types.ConversionOutcome{Text: text}
}

func (r *Runner) record(req types.ConversionRequest, c convert.Converter, out types.ConversionOutcome, elapsed time.Duration) {
	if r.recorder == nil {
		return
	}

	entry := types.HistoryEntry{
		Path:      req.Path,
		Backend:   backendName(c),
		Accurate:  req.Accurate,
		Status:    types.ConversionDone,
		Duration:  elapsed,
		CreatedAt: time.Now().UTC(),
	}
	if !out.Succeeded() {
		entry.Status = types.ConversionFailed
		entry.Message = out.Err.Message
	}

	if err := r.recorder.Record(entry); err != nil {
		r.logger.Warn("could not record conversion history", "path", req.Path, "error", err)
	}
}

func backendName(c convert.Converter) string {
	switch c.(type) {
	case *convert.PlainTextConverter:
		return string(types.BackendPlaintext)
	case *convert.StructureConverter:
		return string(types.BackendStructure)
	default:
		return "unknown"
	}
}
