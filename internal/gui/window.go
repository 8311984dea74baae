// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gui builds the application window and wires it to the controller.
// All widget construction and mutation lives here; the controller drives it
// through the ui.View interface, always on the event loop.
// Implements: prd004-interface (widget surface);
//
//	docs/ARCHITECTURE § Interface.
package gui

import (
	"fmt"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/pdiddy/paperdesk/internal/convert"
	"github.com/pdiddy/paperdesk/internal/history"
	"github.com/pdiddy/paperdesk/internal/job"
	"github.com/pdiddy/paperdesk/internal/resources"
	"github.com/pdiddy/paperdesk/internal/ui"
	"github.com/pdiddy/paperdesk/pkg/types"
)

// Window owns the Fyne application and widgets. It implements ui.View.
type Window struct {
	fyneApp fyne.App
	win     fyne.Window

	status    *widget.Label
	output    *widget.Entry
	selectBtn *widget.Button
	saveBtn   *widget.Button
	accurate  *widget.Check
	progress  *widget.ProgressBarInfinite

	controller *ui.Controller
	store      *history.Store
	logger     *slog.Logger
	version    string
}

// New constructs the main window. store may be nil when history is
// unavailable; the related menu entries then report so instead of failing.
func New(cfg types.AppConfig, store *history.Store, logger *slog.Logger, version string) (*Window, error) {
	// Probe the converter configuration up front so a bad backend name
	// fails at startup, not on first use.
	if _, err := convert.New(cfg.Conversion, false); err != nil {
		return nil, fmt.Errorf("constructing window: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}
	w := &Window{store: store, logger: logger, version: version}

	w.fyneApp = app.NewWithID("com.meshintelligence.paperdesk")
	w.win = w.fyneApp.NewWindow("paperdesk — PDF to Markdown")
	width, height := cfg.Window.Width, cfg.Window.Height
	if width <= 0 {
		width = 800
	}
	if height <= 0 {
		height = 600
	}
	w.win.Resize(fyne.NewSize(width, height))

	w.status = widget.NewLabel("")
	w.accurate = widget.NewCheck("Accurate Table Mode", nil)
	w.accurate.SetChecked(cfg.Conversion.Accurate)
	w.selectBtn = widget.NewButton("Select PDF", w.openSelectDialog)
	w.saveBtn = widget.NewButton("Save Output", w.openSaveDialog)
	w.progress = widget.NewProgressBarInfinite()
	w.progress.Hide()
	w.output = widget.NewMultiLineEntry()
	w.output.Wrapping = fyne.TextWrapWord

	var recorder job.Recorder
	if store != nil {
		recorder = store
	}
	runner := job.NewRunner(Scheduler{}, recorder, logger)
	factory := func(accurate bool) (convert.Converter, error) {
		return convert.New(cfg.Conversion, accurate)
	}
	w.controller = ui.NewController(w, runner, factory, cfg.Save, logger)

	controls := container.NewHBox(w.accurate, w.selectBtn, w.saveBtn)
	top := container.NewVBox(w.status, controls)
	bottom := container.NewVBox(w.progress)
	w.win.SetContent(container.NewBorder(top, bottom, nil, nil, w.output))
	w.win.SetMainMenu(w.buildMenu())

	return w, nil
}

// Run applies the initial state and enters the event loop. It blocks until
// the window closes.
func (w *Window) Run() {
	w.controller.Start()
	w.win.ShowAndRun()
}

// SetStatus implements ui.View.
func (w *Window) SetStatus(text string) { w.status.SetText(text) }

// SetOutput implements ui.View.
func (w *Window) SetOutput(text string) { w.output.SetText(text) }

// SetBusy implements ui.View.
func (w *Window) SetBusy(busy bool) {
	if busy {
		w.progress.Show()
		w.progress.Start()
		return
	}
	w.progress.Stop()
	w.progress.Hide()
}

// SetSelectEnabled implements ui.View.
func (w *Window) SetSelectEnabled(enabled bool) {
	if enabled {
		w.selectBtn.Enable()
	} else {
		w.selectBtn.Disable()
	}
}

// SetSaveEnabled implements ui.View.
func (w *Window) SetSaveEnabled(enabled bool) {
	if enabled {
		w.saveBtn.Enable()
	} else {
		w.saveBtn.Disable()
	}
}

// NotifyError implements ui.View with a modal notification.
func (w *Window) NotifyError(title, message string) {
	dialog.ShowInformation(title, message, w.win)
}

// openSelectDialog prompts for an input PDF and hands the chosen path to
// the controller. Cancellation is not an error.
func (w *Window) openSelectDialog() {
	fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			w.logger.Error("file selection failed", "error", err)
			dialog.ShowInformation("File Error", err.Error(), w.win)
			return
		}
		if rc == nil {
			return
		}
		path := rc.URI().Path()
		rc.Close()
		w.controller.FileChosen(path, w.accurate.Checked)
	}, w.win)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	fd.Show()
}

// openSaveDialog asks the controller whether there is anything to save and,
// if so, prompts for a destination.
func (w *Window) openSaveDialog() {
	w.controller.SaveRequested(func() {
		fd := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
			if err != nil || wc == nil {
				return
			}
			w.controller.WriteOutput(wc, wc.URI().Path())
		}, w.win)
		fd.SetFileName("output" + w.controller.OutputExt())
		fd.Show()
	})
}

func (w *Window) buildMenu() *fyne.MainMenu {
	recent := fyne.NewMenuItem("Recent Conversions", w.showHistory)
	export := fyne.NewMenuItem("Export History…", w.exportHistory)
	about := fyne.NewMenuItem("About", w.showAbout)

	return fyne.NewMainMenu(
		fyne.NewMenu("File", recent, export),
		fyne.NewMenu("Help", about),
	)
}

// showHistory lists the most recent conversions in a modal.
func (w *Window) showHistory() {
	if w.store == nil {
		dialog.ShowInformation("Recent Conversions", "History is unavailable.", w.win)
		return
	}

	entries, err := w.store.Recent(20)
	if err != nil {
		w.logger.Error("could not read history", "error", err)
		dialog.ShowInformation("Recent Conversions", "Could not read history: "+err.Error(), w.win)
		return
	}
	if len(entries) == 0 {
		dialog.ShowInformation("Recent Conversions", "No conversions recorded yet.", w.win)
		return
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s  %s  %s (%s)\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Status, e.Path, e.Backend)
	}
	dialog.ShowInformation("Recent Conversions", b.String(), w.win)
}

// exportHistory writes the retained history as YAML to a chosen file.
func (w *Window) exportHistory() {
	if w.store == nil {
		dialog.ShowInformation("Export History", "History is unavailable.", w.win)
		return
	}

	fd := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := w.store.ExportYAML(wc); err != nil {
			w.logger.Error("history export failed", "error", err)
			dialog.ShowInformation("Export History", "Export failed: "+err.Error(), w.win)
			return
		}
		w.SetStatus("History exported.")
	}, w.win)
	fd.SetFileName("history.yaml")
	fd.Show()
}

// showAbout displays the bundled about text when present.
func (w *Window) showAbout() {
	text := resources.ReadText("about.txt")
	if text == "" {
		text = "paperdesk " + w.version + "\nConvert PDF documents to Markdown or plain text."
	}
	dialog.ShowInformation("About paperdesk", text, w.win)
}
