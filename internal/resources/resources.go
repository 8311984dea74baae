// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package resources locates files bundled alongside the application binary,
// falling back to the working directory during development.
package resources

import (
	"os"
	"path/filepath"
	"strings"
)

const dirName = "resources"

// Dir returns the resources directory next to the running executable when
// one exists there, and the working-directory "resources" otherwise.
func Dir() string {
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Join(filepath.Dir(exe), dirName)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return dirName
}

// File returns the path of a named resource file. The file may not exist.
func File(name string) string {
	return filepath.Join(Dir(), name)
}

// ReadText returns the trimmed contents of a resource file, or "" when the
// file is absent or unreadable. Optional resources use this so a missing
// file never surfaces as an error.
func ReadText(name string) string {
	data, err := os.ReadFile(File(name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
