// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperdesk/pkg/types"
)

func newTestStore(t *testing.T, maxEntries int) *Store {
	t.Helper()
	s, err := NewStore(types.HistoryConfig{
		Path:       filepath.Join(t.TempDir(), "history.db"),
		MaxEntries: maxEntries,
	})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleEntry(path string) types.HistoryEntry {
	return types.HistoryEntry{
		Path:      path,
		Backend:   "structure",
		Accurate:  true,
		Status:    types.ConversionDone,
		Duration:  1250 * time.Millisecond,
		CreatedAt: time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC),
	}
}

func TestRecordAndRecent(t *testing.T) {
	s := newTestStore(t, 0)

	require.NoError(t, s.Record(sampleEntry("first.pdf")))

	failed := sampleEntry("second.pdf")
	failed.Status = types.ConversionFailed
	failed.Message = "engine exploded"
	failed.Accurate = false
	require.NoError(t, s.Record(failed))

	entries, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "second.pdf", entries[0].Path)
	assert.Equal(t, types.ConversionFailed, entries[0].Status)
	assert.Equal(t, "engine exploded", entries[0].Message)
	assert.False(t, entries[0].Accurate)

	assert.Equal(t, "first.pdf", entries[1].Path)
	assert.Equal(t, types.ConversionDone, entries[1].Status)
	assert.True(t, entries[1].Accurate)
	assert.Equal(t, 1250*time.Millisecond, entries[1].Duration)
	assert.Equal(t, 2026, entries[1].CreatedAt.Year())
}

func TestRecordPrunesToCap(t *testing.T) {
	s := newTestStore(t, 3)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(sampleEntry(fmt.Sprintf("doc-%d.pdf", i))))
	}

	entries, err := s.Recent(0)
	require.NoError(t, err)
	require.Len(t, entries, 3, "store must retain only the configured cap")
	assert.Equal(t, "doc-4.pdf", entries[0].Path)
	assert.Equal(t, "doc-2.pdf", entries[2].Path)
}

func TestRecentOnEmptyStore(t *testing.T) {
	s := newTestStore(t, 0)

	entries, err := s.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExportYAML(t *testing.T) {
	s := newTestStore(t, 0)
	require.NoError(t, s.Record(sampleEntry("paper.pdf")))

	var buf bytes.Buffer
	require.NoError(t, s.ExportYAML(&buf))

	var doc struct {
		Conversions []types.HistoryEntry `yaml:"conversions"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Conversions, 1)
	assert.Equal(t, "paper.pdf", doc.Conversions[0].Path)
	assert.Equal(t, "structure", doc.Conversions[0].Backend)
	assert.Equal(t, types.ConversionDone, doc.Conversions[0].Status)
}

func TestStoreReopens(t *testing.T) {
	dir := t.TempDir()
	cfg := types.HistoryConfig{Path: filepath.Join(dir, "history.db")}

	s, err := NewStore(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Record(sampleEntry("persisted.pdf")))
	require.NoError(t, s.Close())

	s2, err := NewStore(cfg)
	require.NoError(t, err)
	defer s2.Close()

	entries, err := s2.Recent(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "persisted.pdf", entries[0].Path)
}
