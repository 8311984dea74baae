// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ui owns all mutable interface state and drives the per-request
// state machine. Implements: prd004-interface (R1-R6);
//
//	docs/ARCHITECTURE § Interface.
//
// Every Controller method runs on the interactive context; background work
// reaches it only through the job runner's scheduled callback.
package ui

import (
	"log/slog"
	"path/filepath"

	"github.com/pdiddy/paperdesk/internal/convert"
	"github.com/pdiddy/paperdesk/internal/validate"
	"github.com/pdiddy/paperdesk/pkg/types"
)

// Status messages shown in the status line.
const (
	statusInitial = "Select a PDF file to convert"
	statusDone    = "Conversion completed!"
	statusSaved   = "File saved successfully!"
	statusNoSave  = "No content to save"
)

// View is the set of mutations the controller applies to the visible
// interface. internal/gui implements it with real widgets; tests use a
// recording fake. Implementations may assume every call arrives on the
// interactive context.
type View interface {
	SetStatus(text string)
	SetOutput(text string)
	SetBusy(busy bool)
	SetSelectEnabled(enabled bool)
	SetSaveEnabled(enabled bool)
	NotifyError(title, message string)
}

// InterfaceState is the single record of presentation state. It replaces
// the scattered per-widget flags of naive GUI code: the Controller owns it
// exclusively and pushes it to the View wholesale after each transition.
type InterfaceState struct {
	Status        string
	Output        string
	Busy          bool
	SelectEnabled bool
	SaveEnabled   bool
}

// Submitter starts background execution of one request. *job.Runner
// implements it.
type Submitter interface {
	Submit(req types.ConversionRequest, c convert.Converter, done func(types.ConversionOutcome)) error
}

// ConverterFactory builds the converter for one request. The GUI binds it
// to the configured backend; tests inject fakes.
type ConverterFactory func(accurate bool) (convert.Converter, error)

// Controller is the single owner of InterfaceState and the only component
// that reads or writes the View.
type Controller struct {
	view       View
	jobs       Submitter
	newConv    ConverterFactory
	save       types.SaveConfig
	logger     *slog.Logger
	state      InterfaceState
	lastOutExt string
}

// NewController wires a controller to its collaborators. logger may be nil.
func NewController(view View, jobs Submitter, newConv ConverterFactory, save types.SaveConfig, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		view:       view,
		jobs:       jobs,
		newConv:    newConv,
		save:       save,
		logger:     logger,
		lastOutExt: ".md",
	}
}

// Start applies the initial idle state.
func (c *Controller) Start() {
	c.state = InterfaceState{Status: statusInitial, SelectEnabled: true}
	c.apply()
}

// State returns a copy of the current interface state.
func (c *Controller) State() InterfaceState { return c.state }

// FileChosen handles a committed file selection: synchronous validation,
// then handoff to the background job. Runs on the interactive context.
func (c *Controller) FileChosen(path string, accurate bool) {
	if err := validate.PDF(path); err != nil {
		c.logger.Error("rejected input file", "path", path, "error", err)
		c.fail("File Error", err.Error())
		return
	}

	conv, err := c.newConv(accurate)
	if err != nil {
		c.logger.Error("no converter available", "error", err)
		c.fail("File Error", err.Error())
		return
	}
	c.lastOutExt = conv.OutputExt()

	c.state.Status = "Converting: " + filepath.Base(path)
	c.state.Output = ""
	c.state.Busy = true
	c.state.SelectEnabled = false
	c.state.SaveEnabled = false
	c.apply()

	c.logger.Info("conversion submitted", "path", path, "accurate", accurate)
	req := types.ConversionRequest{Path: path, Accurate: accurate}
	if err := c.jobs.Submit(req, conv, c.finish); err != nil {
		// Submission refused; restore a usable idle state.
		c.state.Busy = false
		c.state.SelectEnabled = true
		c.apply()
		c.fail("File Error", err.Error())
	}
}

// finish consumes the one-shot outcome. The job runner guarantees it runs
// on the interactive context, exactly once, while the affordances are still
// disabled.
func (c *Controller) finish(out types.ConversionOutcome) {
	c.state.Busy = false
	c.state.SelectEnabled = true

	if out.Succeeded() {
		c.state.Output = out.Text
		c.state.Status = statusDone
		c.state.SaveEnabled = true
		c.apply()
		return
	}

	// Output stays cleared; save remains disabled.
	c.state.Status = "Error: " + out.Err.Message
	c.apply()
	c.view.NotifyError("Conversion Error", out.Err.Message)
}

// fail reports a recoverable failure without leaving the current cycle.
func (c *Controller) fail(title, message string) {
	c.state.Status = "Error: " + message
	c.apply()
	c.view.NotifyError(title, message)
}

// apply pushes the whole state record to the view. Pushing every field on
// every transition keeps the record and the widgets from drifting apart.
func (c *Controller) apply() {
	c.view.SetStatus(c.state.Status)
	c.view.SetOutput(c.state.Output)
	c.view.SetBusy(c.state.Busy)
	c.view.SetSelectEnabled(c.state.SelectEnabled)
	c.view.SetSaveEnabled(c.state.SaveEnabled)
}
