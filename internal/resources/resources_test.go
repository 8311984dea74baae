// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resources

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir is t.Chdir from Go 1.24+, reimplemented for the Go 1.21 toolchain.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestDirFallsBackToWorkingDirectory(t *testing.T) {
	// The test binary has no resources directory next to it.
	chdir(t, t.TempDir())

	assert.Equal(t, "resources", Dir())
	assert.Equal(t, filepath.Join("resources", "about.txt"), File("about.txt"))
}

func TestReadTextMissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	assert.Empty(t, ReadText("about.txt"))
}

func TestReadTextTrims(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "resources"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "resources", "about.txt"), []byte("  paperdesk\n"), 0o644))

	assert.Equal(t, "paperdesk", ReadText("about.txt"))
}
