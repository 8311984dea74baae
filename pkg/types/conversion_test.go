// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrf(t *testing.T) {
	err := Errf(ErrNotFound, "File not found: %s", "a.pdf")

	assert.Equal(t, ErrNotFound, err.Kind)
	assert.Equal(t, "File not found: a.pdf", err.Error())
}

func TestConversionOutcomeSucceeded(t *testing.T) {
	assert.True(t, ConversionOutcome{Text: "content"}.Succeeded())
	assert.False(t, ConversionOutcome{Err: Errf(ErrBackend, "boom")}.Succeeded())
}
