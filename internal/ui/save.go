// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ui

import (
	"fmt"
	"io"
	"strings"
)

// DefaultChunkSize bounds individual writes during save when no size is
// configured.
const DefaultChunkSize = 1 << 20

// SaveRequested handles the save affordance. When the buffered output is
// empty or whitespace-only it reports so and performs no I/O; the
// destination prompt is never shown. Otherwise prompt is invoked, and the
// GUI follows up with WriteOutput once the user picks a destination.
func (c *Controller) SaveRequested(prompt func()) {
	if strings.TrimSpace(c.state.Output) == "" {
		c.state.Status = statusNoSave
		c.apply()
		return
	}
	prompt()
}

// OutputExt returns the default filename suffix for the save dialog,
// matching the backend that produced the buffered output.
func (c *Controller) OutputExt() string { return c.lastOutExt }

// WriteOutput writes the trimmed buffered output to w in bounded chunks and
// closes w. The written bytes are identical to an unchunked write. name is
// the destination, used for status reporting only.
func (c *Controller) WriteOutput(w io.WriteCloser, name string) {
	content := strings.TrimSpace(c.state.Output)

	err := writeChunked(w, content, c.save.ChunkSize)
	if cerr := w.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		msg := fmt.Sprintf("Error saving file: %v", err)
		c.logger.Error("save failed", "destination", name, "error", err)
		c.state.Status = msg
		c.apply()
		c.view.NotifyError("Save Error", msg)
		return
	}

	c.logger.Info("output saved", "destination", name, "bytes", len(content))
	c.state.Status = statusSaved
	c.apply()
}

func writeChunked(w io.Writer, content string, chunkSize int) error {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	data := []byte(content)
	for len(data) > 0 {
		n := min(chunkSize, len(data))
		if _, err := w.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}
