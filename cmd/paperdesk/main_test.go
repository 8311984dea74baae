// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paperdesk/pkg/types"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	setDefaults()

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, types.BackendStructure, cfg.Conversion.Backend)
	assert.False(t, cfg.Conversion.Accurate)
	assert.Equal(t, 1<<20, cfg.Save.ChunkSize)
	assert.Equal(t, "converter.log", cfg.Logging.File)
	assert.Equal(t, "paperdesk.db", cfg.History.Path)
	assert.Equal(t, 200, cfg.History.MaxEntries)
	assert.Equal(t, float32(800), cfg.Window.Width)
	assert.Equal(t, float32(600), cfg.Window.Height)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("PAPERDESK_CONVERSION_BACKEND", "plaintext")

	viper.SetEnvPrefix("PAPERDESK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, types.BackendPlaintext, cfg.Conversion.Backend)
}
