package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuntimeConfigFallsBackToDefaults(t *testing.T) {
	defer func(fps int, seed int64) { flagFPS, flagSeed = fps, seed }(flagFPS, flagSeed)

	// go test's stdout is not a terminal, so the default size applies
	flagFPS, flagSeed = 0, 7
	cfg := runtimeConfig()
	assert.Equal(t, 60, cfg.TickRate)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Positive(t, cfg.ScreenW)
	assert.Positive(t, cfg.ScreenH)

	flagFPS = 30
	assert.Equal(t, 30, runtimeConfig().TickRate)
}
