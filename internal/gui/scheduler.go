// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gui

import "fyne.io/fyne/v2"

// Scheduler implements job.Scheduler on the toolkit's event queue. Posted
// functions run on the interactive thread at its next opportunity, which is
// the only safe way for a worker goroutine to reach widget state.
type Scheduler struct{}

// Post hands fn to the Fyne event loop.
func (Scheduler) Post(fn func()) {
	fyne.Do(fn)
}
