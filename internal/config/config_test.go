package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packdist/distmap/internal/config"
	"github.com/packdist/distmap/internal/scanner"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "dist", cfg.Output.OutDir)
	assert.True(t, cfg.Exports.Enabled)
	assert.Empty(t, cfg.Exports.Folders)
	assert.Equal(t, scanner.DefaultChunkPatterns, cfg.Scan.ChunkPatterns)
	assert.Equal(t, config.DefaultWorkers, cfg.Concurrency.Workers)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestConfig_Validate_FallsBackToDefaults(t *testing.T) {
	cfg := &config.Config{}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, config.DefaultOutDir, cfg.Output.OutDir)
	assert.Equal(t, config.DefaultWorkers, cfg.Concurrency.Workers)
	assert.Equal(t, config.DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, config.DefaultLogFormat, cfg.Logging.Format)
}

func TestConfig_Validate_KeepsExplicitValues(t *testing.T) {
	cfg := &config.Config{
		Output:      config.OutputConfig{OutDir: "build"},
		Concurrency: config.ConcurrencyConfig{Workers: 8},
	}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "build", cfg.Output.OutDir)
	assert.Equal(t, 8, cfg.Concurrency.Workers)
}
