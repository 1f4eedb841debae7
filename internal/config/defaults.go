package config

import (
	"os"
	"path/filepath"

	"github.com/packdist/distmap/internal/scanner"
)

// Default values
const (
	// Output defaults
	DefaultOutDir = "dist"

	// Concurrency defaults
	DefaultWorkers = 4

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".distmap"
	}
	return filepath.Join(home, ".distmap")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			OutDir: DefaultOutDir,
		},
		Exports: ExportsConfig{
			Enabled: true,
		},
		Scan: ScanConfig{
			ChunkPatterns: scanner.DefaultChunkPatterns,
		},
		Concurrency: ConcurrencyConfig{
			Workers: DefaultWorkers,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
